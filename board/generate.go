package board

// GenQueenMoves enumerates every (from, to) pair reachable by sliding
// any of side's four queens, with Stone left at -1. Used by rollouts,
// where a stone target is chosen separately after the queen move lands.
func GenQueenMoves(b *Board, q *Queens, side Side) []Move {
	var moves []Move
	for _, from := range q[side.Index()] {
		for dir := 0; dir < 8; dir++ {
			for _, to := range Slide(b, from, dir) {
				moves = append(moves, Move{From: from, To: to, Stone: -1})
			}
		}
	}
	return moves
}

// GenFullMoves enumerates every (from, to, stone) triple for side: a
// queen move followed by every stone placement reachable from the
// landing square, with the queen's origin treated as empty for that
// second slide. Ordering is queen-index x direction x distance x
// stone-direction x stone-distance; callers that need value order sort
// the result themselves, since candidates are always consumed sorted by
// static value, never by generation order.
func GenFullMoves(b *Board, q *Queens, side Side) []Move {
	var moves []Move
	for _, from := range q[side.Index()] {
		piece := b[from]
		b[from] = Empty // the moving queen no longer blocks its own stone slide
		for dir := 0; dir < 8; dir++ {
			for _, to := range Slide(b, from, dir) {
				for stoneDir := 0; stoneDir < 8; stoneDir++ {
					for _, stone := range Slide(b, to, stoneDir) {
						moves = append(moves, Move{From: from, To: to, Stone: stone})
					}
				}
			}
		}
		b[from] = piece
	}
	return moves
}

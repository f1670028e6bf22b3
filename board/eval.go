package board

import "math"

// unreached marks a cell no queen of a color can slide to. Occupied
// cells are left at 0 (never overwritten by the BFS below, since they
// are not seeded as frontier and are skipped by every summation) so a
// slide that runs into one stops the same way it stops at a cell
// already reached in an earlier layer: the frontier only advances past a cell whose stored distance is still
// >= the layer being processed.
const unreached = math.MaxInt32

// slideDistances runs a multi-source BFS from sources where the
// neighbor relation is "slide to any empty cell along a direction"
// (every cell reached by one slide sits in the same layer). Used by T1,
// the queen-distance territory term.
func slideDistances(b *Board, sources [4]int) [Size * Size]int {
	var dist [Size * Size]int
	for i, p := range b {
		if p == Empty {
			dist[i] = unreached
		}
	}

	frontier := append([]int(nil), sources[:]...)
	for d := 1; len(frontier) > 0; d++ {
		var next []int
		for _, pos := range frontier {
			r, c := RowCol(pos)
			for dir := 0; dir < 8; dir++ {
				x, y := r, c
				for {
					x += dRow[dir]
					y += dCol[dir]
					if !OnBoard(x, y) {
						break
					}
					np := Pos(x, y)
					if dist[np] < d {
						break
					}
					if dist[np] > d {
						dist[np] = d
						next = append(next, np)
					}
				}
			}
		}
		frontier = next
	}
	return dist
}

// stepDistances runs a multi-source BFS from sources with a true
// single-step 8-neighbor relation (no sliding). Used by T2, the
// king-distance territory term.
func stepDistances(b *Board, sources [4]int) [Size * Size]int {
	var dist [Size * Size]int
	for i, p := range b {
		if p == Empty {
			dist[i] = unreached
		}
	}

	frontier := append([]int(nil), sources[:]...)
	for d := 1; len(frontier) > 0; d++ {
		var next []int
		for _, pos := range frontier {
			r, c := RowCol(pos)
			for dir := 0; dir < 8; dir++ {
				x, y := r+dRow[dir], c+dCol[dir]
				if !OnBoard(x, y) {
					continue
				}
				np := Pos(x, y)
				if dist[np] < d {
					continue
				}
				if dist[np] > d {
					dist[np] = d
					next = append(next, np)
				}
			}
		}
		frontier = next
	}
	return dist
}

func sgn(x int) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// ValueT1 computes the queen-distance territory term and its contested
// mass w, both from red's perspective: t1 = sum(sgn(d_B(c)-d_R(c))) over
// empty cells, w = sum(2^-|d_R(c)-d_B(c)|) over empty cells both sides
// can reach. The returned value is signed by moveSide.
func ValueT1(b *Board, q *Queens, moveSide Side) (value, w float64) {
	distRed := slideDistances(b, q[0])
	distBlue := slideDistances(b, q[1])

	var t1 float64
	for i, p := range b {
		if p != Empty {
			continue
		}
		dr, db := distRed[i], distBlue[i]
		t1 += sgn(db - dr)
		if dr != unreached && db != unreached {
			w += math.Pow(2, -math.Abs(float64(dr-db)))
		}
	}

	if moveSide == Blue {
		t1 = -t1
	}
	return t1, w
}

// ValueT2 computes the king-distance territory term, signed by
// moveSide, with the single-step neighbor relation instead of T1's
// sliding one.
func ValueT2(b *Board, q *Queens, moveSide Side) float64 {
	distRed := stepDistances(b, q[0])
	distBlue := stepDistances(b, q[1])

	var t2 float64
	for i, p := range b {
		if p != Empty {
			continue
		}
		t2 += sgn(distBlue[i] - distRed[i])
	}

	if moveSide == Blue {
		t2 = -t2
	}
	return t2
}

// queenMobility walks up to two empty cells out from pos in each of the
// eight directions, weighting each visited cell's empty-neighbor count
// by 2^(1-k) at walk distance k.
func queenMobility(b *Board, pos int) float64 {
	r, c := RowCol(pos)
	var total float64
	for dir := 0; dir < 8; dir++ {
		x, y := r, c
		for k := 1; k <= 2; k++ {
			x += dRow[dir]
			y += dCol[dir]
			if !OnBoard(x, y) || b[Pos(x, y)] != Empty {
				break
			}
			n := countEmptyNeighbors(b, Pos(x, y))
			total += float64(n) * math.Pow(2, float64(1-k))
		}
	}
	return total
}

// mobilityScore maps a queen's raw mobility sum to its contribution:
// a gentle linear penalty for cramped queens, a hyperbolic taper for
// open ones.
func mobilityScore(x float64) float64 {
	if x <= 5 {
		return -0.4*x + 7
	}
	return 85 / (12 + x)
}

// ValueMobility computes the mobility term M, signed by moveSide.
func ValueMobility(b *Board, q *Queens, moveSide Side) float64 {
	var m float64
	for _, pos := range q[0] {
		m -= mobilityScore(queenMobility(b, pos))
	}
	for _, pos := range q[1] {
		m += mobilityScore(queenMobility(b, pos))
	}
	if moveSide == Blue {
		m = -m
	}
	return m
}

// weights returns (k1,k2,k3) for the contested-mass value w, per the
// tuned piecewise table: small w means territory sign is still settling
// and dominates the score; large w means territory has stabilized and
// mobility should weigh increasingly heavily.
func weights(w float64) (k1, k2, k3 float64) {
	switch {
	case w <= 14:
		return 1, 0, 0
	case w <= 25:
		return 1, 0, 0.2
	case w <= 40:
		return 1, 1, 1
	case w <= 55:
		return 1, 1, 2
	case w <= 63:
		return 1, 1, 3
	default:
		return 1, 1, 4
	}
}

// ValueAll returns the combined static evaluation of the position from
// moveSide's perspective: k1*T1 + k2*T2 + k3*M, with (k1,k2,k3) chosen
// by T1's contested mass w.
func ValueAll(b *Board, q *Queens, moveSide Side) float64 {
	t1, w := ValueT1(b, q, moveSide)
	t2 := ValueT2(b, q, moveSide)
	m := ValueMobility(b, q, moveSide)

	k1, k2, k3 := weights(w)
	return k1*t1 + k2*t2 + k3*m
}

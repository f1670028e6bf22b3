// Package board implements the Game of the Amazons position
// representation: the 10x10 grid, piece encoding, queen registry, the
// eight sliding directions, and the legality table used to bound every
// slide without per-step range checks.
package board

// Piece is the content of a single cell.
type Piece int8

const (
	Empty Piece = iota
	RedQueen
	BlueQueen
	Stone
)

// Side identifies the mover. Red is +1, Blue is -1 so that evaluator
// terms can be negated with a plain multiply instead of a branch.
type Side int8

const (
	Red  Side = 1
	Blue Side = -1
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	return -s
}

// Index returns the queen-registry row for this side: 0 for Red, 1 for
// Blue.
func (s Side) Index() int {
	if s == Red {
		return 0
	}
	return 1
}

// Piece returns the queen piece belonging to this side.
func (s Side) Piece() Piece {
	if s == Red {
		return RedQueen
	}
	return BlueQueen
}

const Size = 10

// Board is a row-major 10x10 grid of cells, pos = row*10+col.
type Board [Size * Size]Piece

// Queens is the side->ordered-quadruple-of-positions registry,
// Queens[0] for red, Queens[1] for blue.
type Queens [2][4]int

var dRow = [8]int{-1, -1, 0, 1, 1, 1, 0, -1}
var dCol = [8]int{0, -1, -1, -1, 0, 1, 1, 1}

// legal is a padded 12x12 lookup so slide bounds checks never need a
// branch on four separate comparisons: legal[r+1][c+1] is true iff
// (r,c) is on the 10x10 board.
var legal [Size + 2][Size + 2]bool

func init() {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			legal[r+1][c+1] = true
		}
	}
}

// OnBoard reports whether (r,c) is within the 10x10 grid.
func OnBoard(r, c int) bool {
	return legal[r+1][c+1]
}

// Pos encodes a (row, col) pair as a flat position.
func Pos(r, c int) int {
	return r*Size + c
}

// RowCol decodes a flat position back to (row, col).
func RowCol(pos int) (r, c int) {
	return pos / Size, pos % Size
}

// NewOpeningBoard returns the standard starting position: four queens
// per side on their canonical opening squares, everything else empty.
func NewOpeningBoard() (Board, Queens) {
	var b Board
	q := Queens{
		{60, 69, 93, 96},
		{3, 6, 30, 39},
	}
	for _, p := range q[0] {
		b[p] = RedQueen
	}
	for _, p := range q[1] {
		b[p] = BlueQueen
	}
	return b, q
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() Board {
	return *b
}

// Copy returns an independent copy of the queen registry.
func (q *Queens) Copy() Queens {
	return *q
}

// queenIndex returns the slot in side's quadruple holding position pos,
// or -1 if none does. Used only by Apply, where pos is always a legal
// queen position supplied by the move generator.
func (q *Queens) queenIndex(side Side, pos int) int {
	row := side.Index()
	for i, p := range q[row] {
		if p == pos {
			return i
		}
	}
	return -1
}

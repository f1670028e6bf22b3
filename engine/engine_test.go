package engine

import (
	"testing"

	"amazons/board"

	"github.com/stretchr/testify/require"
)

func openingInputs() ([10][10]int, [2][4]int) {
	b, q := board.NewOpeningBoard()
	var cells [10][10]int
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			cells[r][c] = int(b[board.Pos(r, c)])
		}
	}
	var queens [2][4]int
	queens[0] = q[0]
	queens[1] = q[1]
	return cells, queens
}

func TestSearchValidation(t *testing.T) {
	cells, queens := openingInputs()

	t.Run("rejects a side that is not +1 or -1", func(t *testing.T) {
		_, err := Search(cells, queens, 0, 0.1, false)
		require.Error(t, err)
	})

	t.Run("rejects an out-of-range cell value", func(t *testing.T) {
		bad := cells
		bad[0][0] = 9
		_, err := Search(bad, queens, 1, 0.1, false)
		require.Error(t, err)
	})

	t.Run("rejects a queen position that disagrees with the board", func(t *testing.T) {
		bad := queens
		bad[0][0] = 0 // cell 0 is empty on the opening board, not a red queen
		_, err := Search(cells, bad, 1, 0.1, false)
		require.Error(t, err)
	})

	t.Run("rejects a negative time budget", func(t *testing.T) {
		_, err := Search(cells, queens, 1, -1, false)
		require.Error(t, err)
	})
}

func TestSearchOpeningMove(t *testing.T) {
	t.Run("returns a legal opening action within budget", func(t *testing.T) {
		cells, queens := openingInputs()

		result, err := Search(cells, queens, 1, 0.5, false, WithSeed(1), WithWorkers(2))
		require.NoError(t, err)

		require.Contains(t, []int{60, 69, 93, 96}, result.From)
		require.Greater(t, result.Attempt, 0)
		require.GreaterOrEqual(t, result.Pro, 0.0)
		require.LessOrEqual(t, result.Pro, 100.0)

		b, _ := board.NewOpeningBoard()
		reachableTo := false
		for dir := 0; dir < 8; dir++ {
			for _, to := range board.Slide(&b, result.From, dir) {
				if to == result.To {
					reachableTo = true
				}
			}
		}
		require.True(t, reachableTo, "To must be slide-reachable from From")
	})
}

func TestSearchTerminalNoMove(t *testing.T) {
	t.Run("returns the no-move sentinel when red has no legal moves", func(t *testing.T) {
		var cells [10][10]int
		queens := [2][4]int{
			{board.Pos(0, 0), board.Pos(0, 9), board.Pos(9, 0), board.Pos(9, 9)},
			{board.Pos(5, 5), board.Pos(5, 6), board.Pos(6, 5), board.Pos(6, 6)},
		}
		for _, p := range queens[0] {
			r, c := board.RowCol(p)
			cells[r][c] = int(board.RedQueen)
		}
		for _, p := range queens[1] {
			r, c := board.RowCol(p)
			cells[r][c] = int(board.BlueQueen)
		}
		dRow := [8]int{-1, -1, 0, 1, 1, 1, 0, -1}
		dCol := [8]int{0, -1, -1, -1, 0, 1, 1, 1}
		for _, p := range queens[0] {
			r, c := board.RowCol(p)
			for dir := 0; dir < 8; dir++ {
				nr, nc := r+dRow[dir], c+dCol[dir]
				if board.OnBoard(nr, nc) {
					cells[nr][nc] = int(board.Stone)
				}
			}
		}

		result, err := Search(cells, queens, 1, 0.1, false)
		require.NoError(t, err)
		require.Equal(t, -1, result.From)
		require.Equal(t, -1, result.To)
		require.Equal(t, -1, result.Stone)
	})
}

func TestSearchDeterminism(t *testing.T) {
	t.Run("same seed produces identical chosen action across runs", func(t *testing.T) {
		cells, queens := openingInputs()

		r1, err := Search(cells, queens, 1, 0.3, false, WithSeed(99), WithWorkers(1), WithMaxAttempts(300))
		require.NoError(t, err)
		r2, err := Search(cells, queens, 1, 0.3, false, WithSeed(99), WithWorkers(1), WithMaxAttempts(300))
		require.NoError(t, err)

		require.Equal(t, r1.From, r2.From)
		require.Equal(t, r1.To, r2.To)
		require.Equal(t, r1.Stone, r2.Stone)
	})
}

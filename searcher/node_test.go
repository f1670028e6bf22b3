package searcher

import (
	"testing"

	"amazons/board"

	"github.com/stretchr/testify/require"
)

func TestUcbScore(t *testing.T) {
	t.Run("computes win_rate + 0.35*sqrt(ln(N)/n)", func(t *testing.T) {
		child := &Node{visits: 10, wins: 4}
		got := ucbScore(child, 100)

		winRate := (4.0 + 10.0) / 2 / 10.0
		want := winRate + ExplorationConstant*sqrtLogRatio(100, 10)
		require.InDelta(t, want, got, 1e-9)
	})

	t.Run("more parent visits increases the exploration term", func(t *testing.T) {
		child := &Node{visits: 10, wins: 4}
		require.Greater(t, ucbScore(child, 1000), ucbScore(child, 100))
	})

	t.Run("more child visits decreases the exploration term", func(t *testing.T) {
		a := &Node{visits: 10, wins: 4}
		b := &Node{visits: 20, wins: 8}
		require.Greater(t, ucbScore(a, 100), ucbScore(b, 100))
	})
}

func TestBestByUCB(t *testing.T) {
	t.Run("picks the highest-scoring child", func(t *testing.T) {
		low := &Node{visits: 10, wins: -8}
		high := &Node{visits: 10, wins: 8}
		n := &Node{visits: 20, children: []*Node{low, high}}

		require.Same(t, high, n.bestByUCB())
	})
}

func TestBestChild(t *testing.T) {
	t.Run("picks the most-visited child", func(t *testing.T) {
		a := &Node{visits: 5}
		b := &Node{visits: 50}
		c := &Node{visits: 20}
		n := &Node{children: []*Node{a, b, c}}

		require.Same(t, b, n.BestChild())
	})

	t.Run("ties broken by first occurrence", func(t *testing.T) {
		a := &Node{visits: 10}
		b := &Node{visits: 10}
		n := &Node{children: []*Node{a, b}}

		require.Same(t, a, n.BestChild())
	})

	t.Run("nil with no children", func(t *testing.T) {
		n := &Node{}
		require.Nil(t, n.BestChild())
	})
}

func TestWinProbability(t *testing.T) {
	t.Run("zero with no visits", func(t *testing.T) {
		n := &Node{}
		require.Zero(t, n.WinProbability())
	})

	t.Run("100 when every backprop was a win", func(t *testing.T) {
		n := &Node{visits: 10, wins: 10}
		require.InDelta(t, 100, n.WinProbability(), 1e-9)
	})

	t.Run("50 when wins is zero", func(t *testing.T) {
		n := &Node{visits: 10, wins: 0}
		require.InDelta(t, 50, n.WinProbability(), 1e-9)
	})
}

func TestBackup(t *testing.T) {
	t.Run("increments visits up the parent chain", func(t *testing.T) {
		root := &Node{side: board.Blue}
		child := &Node{side: board.Red, parent: root}

		backup(child, 1)

		require.Equal(t, 1, root.visits)
		require.Equal(t, 1, child.visits)
	})

	t.Run("adds isWin to matching-side nodes, subtracts from the rest", func(t *testing.T) {
		root := &Node{side: board.Blue}
		child := &Node{side: board.Red, parent: root}

		backup(child, 1)

		require.Equal(t, 1, child.wins, "child's side matches the winning side")
		require.Equal(t, -1, root.wins, "root's side is the opponent of the winning side")
	})

	t.Run("a losing backprop flips the sign", func(t *testing.T) {
		root := &Node{side: board.Blue}
		child := &Node{side: board.Red, parent: root}

		backup(child, -1)

		require.Equal(t, -1, child.wins)
		require.Equal(t, 1, root.wins)
	})
}

func TestNewRootAndNewChild(t *testing.T) {
	t.Run("root's side is the opposite of the side to move", func(t *testing.T) {
		b, q := board.NewOpeningBoard()
		root := newRoot(b, q, board.Red)
		require.Equal(t, board.Blue, root.side)
	})

	t.Run("child's snapshot reflects the candidate move applied", func(t *testing.T) {
		b, q := board.NewOpeningBoard()
		root := newRoot(b, q, board.Red)

		from := q[0][0]
		to := from - board.Size
		mv := board.Move{From: from, To: to, Stone: from}
		child := newChild(root, Candidate{Move: mv, Value: 1.5})

		require.Equal(t, board.RedQueen, child.b[to])
		require.Equal(t, board.Stone, child.b[from])
		require.Equal(t, 1.5, child.value)
		require.Equal(t, root.depth+1, child.depth)
		require.Same(t, root, child.parent)
	})
}

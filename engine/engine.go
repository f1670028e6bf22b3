// Package engine exposes the single-procedure search interface: feed it
// a board, the queen registry, and the side to move, and it returns the
// chosen action plus the statistics the caller needs to display it.
package engine

import (
	"fmt"
	"time"

	"amazons/board"
	"amazons/searcher"

	"github.com/rs/zerolog/log"
)

// Result is the outcome of one call to Search.
type Result struct {
	From, To, Stone int
	Attempt         int
	Value           float64
	Pro             float64
	Metrics         searcher.SearchMetrics
}

// noMove is the sentinel result for a root with no legal moves.
func noMove(attempt int) Result {
	return Result{From: -1, To: -1, Stone: -1, Attempt: attempt}
}

// Option configures a Search call. It wraps a searcher.Option so callers
// never need to import the searcher package directly.
type Option func(*searcher.MCTS)

func (o Option) apply(opts *[]searcher.Option) {
	*opts = append(*opts, searcher.Option(o))
}

// WithWorkers sets the worker-pool size used for parallel candidate
// evaluation during expansion.
func WithWorkers(n int) Option { return Option(searcher.WithWorkers(n)) }

// WithMaxAttempts overrides the root-visit cap (default 5,000,000).
func WithMaxAttempts(n int) Option { return Option(searcher.WithMaxAttempts(n)) }

// WithSeed makes the search's rollout randomness deterministic, for
// test-mode seed injection.
func WithSeed(seed uint64) Option { return Option(searcher.WithSeed(seed)) }

// WithMetrics enables the engine's search-metrics collector; the
// returned Result.Metrics is zero-valued without it.
func WithMetrics() Option { return Option(searcher.WithMetrics()) }

// Search validates the inputs, runs the UCT engine for calTimeSeconds
// (or until the root visit cap is reached), and returns the chosen
// action. It never panics on malformed input; it returns an error
// instead, before any search state is built. An illegal action applied
// during search is a programming bug and panics (see board.Apply)
// rather than returning a corrupted result.
func Search(cells [10][10]int, queens [2][4]int, moveSide int, calTimeSeconds float64, displayInfo bool, opts ...Option) (Result, error) {
	b, q, side, err := validate(cells, queens, moveSide)
	if err != nil {
		return Result{}, err
	}
	if calTimeSeconds < 0 {
		return Result{}, fmt.Errorf("engine: calTimeSeconds must be nonnegative, got %v", calTimeSeconds)
	}

	searcherOpts := make([]searcher.Option, 0, len(opts))
	for _, o := range opts {
		o.apply(&searcherOpts)
	}

	m := searcher.NewMCTS(searcherOpts...)
	root := m.Search(b, q, side, time.Duration(calTimeSeconds*float64(time.Second)))
	defer m.Release(root)

	best := root.BestChild()
	if best == nil {
		result := noMove(root.Visits())
		result.Metrics = m.Metrics()
		if displayInfo {
			log.Info().
				Int("attempt", result.Attempt).
				Msg("amazons: no legal moves at root")
		}
		return result, nil
	}

	action := best.Action()
	result := Result{
		From:    action.From,
		To:      action.To,
		Stone:   action.Stone,
		Attempt: root.Visits(),
		Value:   best.Value(),
		Pro:     best.WinProbability(),
		Metrics: m.Metrics(),
	}

	if displayInfo {
		rank := childRank(root, best)
		log.Info().
			Int("from", result.From).
			Int("to", result.To).
			Int("stone", result.Stone).
			Int("attempt", result.Attempt).
			Int("rank", rank).
			Float64("value", result.Value).
			Float64("pro", result.Pro).
			Msg("amazons: search complete")
	}

	return result, nil
}

// childRank reports best's position (0-based) among root's materialized
// children, for the displayInfo summary line.
func childRank(root, best *searcher.Node) int {
	for i, c := range root.Children() {
		if c == best {
			return i
		}
	}
	return -1
}

// validate converts the caller's plain arrays into board.Board/
// board.Queens, checking shape and side-agreement. It is the only place
// malformed input is rejected; nothing past this point returns an
// error.
func validate(cells [10][10]int, queens [2][4]int, moveSide int) (board.Board, board.Queens, board.Side, error) {
	if moveSide != 1 && moveSide != -1 {
		return board.Board{}, board.Queens{}, 0, fmt.Errorf("engine: moveSide must be +1 or -1, got %d", moveSide)
	}
	side := board.Side(moveSide)

	var b board.Board
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			v := cells[r][c]
			if v < int(board.Empty) || v > int(board.Stone) {
				return board.Board{}, board.Queens{}, 0, fmt.Errorf("engine: cell (%d,%d) has invalid piece %d", r, c, v)
			}
			b[board.Pos(r, c)] = board.Piece(v)
		}
	}

	var q board.Queens
	for s := 0; s < 2; s++ {
		for i := 0; i < 4; i++ {
			q[s][i] = queens[s][i]
		}
	}

	seen := map[int]bool{}
	for s, sd := range []board.Side{board.Red, board.Blue} {
		for _, pos := range q[s] {
			if pos < 0 || pos >= board.Size*board.Size {
				return board.Board{}, board.Queens{}, 0, fmt.Errorf("engine: queen position %d out of range", pos)
			}
			if seen[pos] {
				return board.Board{}, board.Queens{}, 0, fmt.Errorf("engine: queen position %d listed more than once", pos)
			}
			seen[pos] = true
			want := sd.Piece()
			if b[pos] != want {
				return board.Board{}, board.Queens{}, 0, fmt.Errorf("engine: board/queens disagree at %d: board has %d, queens says %s queen", pos, b[pos], sideName(sd))
			}
		}
	}

	return b, q, side, nil
}

func sideName(s board.Side) string {
	if s == board.Red {
		return "red"
	}
	return "blue"
}

package searcher

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"amazons/board"

	"golang.org/x/exp/rand"
)

// Option configures an MCTS.
type Option func(*MCTS)

// WithWorkers sets the worker-pool size used for the one-time, data-
// parallel evaluation of a node's candidate moves. It has no effect on
// the driver loop itself, which is single-threaded by design (spec's
// concurrency model parallelizes expansion, not selection).
func WithWorkers(n int) Option {
	return func(m *MCTS) {
		if n > 0 {
			m.workers = n
		}
	}
}

// WithMaxAttempts overrides the root-visit cap that terminates a search
// even if time remains.
func WithMaxAttempts(n int) Option {
	return func(m *MCTS) {
		if n > 0 {
			m.maxAttempts = n
		}
	}
}

// WithSeed makes rollout randomness deterministic, for test-mode seed
// injection. Rollouts are the only consumer of the random source.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMetrics enables metrics collection; without it, Search uses a
// zero-overhead no-op collector.
func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

// MCTS drives the select -> expand -> [rollout] -> backprop loop
// described by the UCT engine. A single MCTS value is single-use: call
// Search once, read the tree it returns, then discard it (or Release it
// back to the arena).
type MCTS struct {
	workers     int
	maxAttempts int
	rng         *rand.Rand
	metrics     Collector
	arena       *nodeArena
}

// NewMCTS builds an MCTS with the given options, defaulting to
// GOMAXPROCS workers, MaxAttempts root visits, a time-seeded RNG, and a
// no-op metrics collector.
func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{
		workers:     runtime.GOMAXPROCS(0),
		maxAttempts: MaxAttempts,
		metrics:     NewDummyCollector(),
		arena:       newNodeArena(),
	}
	for _, o := range options {
		o(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// Search runs the driver loop from the given position with moveSide to
// move, until budget elapses or the root visit cap is reached, and
// returns the root of the resulting tree.
func (m *MCTS) Search(b board.Board, q board.Queens, moveSide board.Side, budget time.Duration) *Node {
	root := m.arena.newRoot(b, q, moveSide)
	m.metrics.Start()

	deadline := time.Now().Add(budget)
	for root.visits <= m.maxAttempts && time.Now().Before(deadline) {
		leaf := m.selectLeaf(root)
		m.expand(leaf)
		m.metrics.AddAttempt()
	}
	return root
}

// Release returns the entire tree rooted at root to the arena it was
// allocated from. The caller must not use root or any of its
// descendants afterwards.
func (m *MCTS) Release(root *Node) {
	m.arena.release(root)
}

// Metrics returns the accumulated SearchMetrics for the most recently
// completed Search call. It is the zero value unless WithMetrics was
// passed to NewMCTS.
func (m *MCTS) Metrics() SearchMetrics {
	return m.metrics.Complete()
}

// selectLeaf descends from root to a node with no materialized
// children yet, widening each internal node it passes through if its
// visit count now entitles it to more candidates.
func (m *MCTS) selectLeaf(root *Node) *Node {
	node := root
	for len(node.children) > 0 {
		if node.expanded < node.maxChildren && widenTarget(node.visits) > node.expanded {
			m.widen(node)
		}
		node = node.bestByUCB()
	}
	return node
}

// expand implements the UCT engine's three-way expansion step for a
// leaf: immediate win detection, visit-gated rollout, or candidate
// generation plus a widening batch.
func (m *MCTS) expand(leaf *Node) {
	if board.HasWinner(&leaf.b, &leaf.q, leaf.side) {
		backup(leaf, 1)
		return
	}

	if leaf.visits > 0 && leaf.visits < RolloutGateMax {
		winner := m.rollout(leaf)
		if winner == leaf.side {
			backup(leaf, 1)
		} else {
			backup(leaf, -1)
		}
		return
	}

	m.widen(leaf)
}

// widen materializes the next batch of a node's children from its
// (lazily built) candidate list: up to WidenStart on a node's first
// expansion, up to WidenStep more on each later widening pass. Each new
// child's statistics are seeded by backpropagating +1 or -1 according
// to the sign of its own static value, imprinting the evaluator's prior
// into UCB before any rollout touches it.
func (m *MCTS) widen(n *Node) {
	if n.candidates == nil {
		n.candidates = m.buildCandidates(n)
		n.maxChildren = len(n.candidates)
		m.metrics.ObserveCandidates(len(n.candidates))
	}

	start := n.expanded
	end := start + WidenStep
	if start == 0 {
		end = WidenStart
	}
	if end > n.maxChildren {
		end = n.maxChildren
	}
	if end <= start {
		return
	}
	n.expanded = end
	if start > 0 {
		m.metrics.AddWiden()
	}

	for _, c := range n.candidates[start:end] {
		child := m.arena.newChild(n, c)
		n.children = append(n.children, child)
		if c.Value >= 0 {
			backup(child, 1)
		} else {
			backup(child, -1)
		}
	}
}

// buildCandidates generates every full move for the side opposite n,
// evaluates each resulting position in parallel, and returns them
// sorted by descending value, truncated to SelectLimit. Each worker
// owns a private board/queens copy; the only shared mutable state is
// the pre-sized cands slice, and each worker writes only its own index,
// so no synchronization is needed until the join below.
func (m *MCTS) buildCandidates(n *Node) []Candidate {
	mover := n.side.Opposite()
	moves := board.GenFullMoves(&n.b, &n.q, mover)
	cands := make([]Candidate, len(moves))

	sem := make(chan struct{}, m.workers)
	var wg sync.WaitGroup
	for i, mv := range moves {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, mv board.Move) {
			defer wg.Done()
			defer func() { <-sem }()

			b := n.b
			q := n.q
			board.Apply(&b, &q, mover, mv)
			cands[i] = Candidate{Move: mv, Value: board.ValueAll(&b, &q, mover)}
		}(i, mv)
	}
	wg.Wait()

	sort.Slice(cands, func(i, j int) bool { return cands[i].Value > cands[j].Value })
	if len(cands) > SelectLimit {
		cands = cands[:SelectLimit]
	}
	return cands
}

// rollout plays a shallow random game from leaf: up to RolloutDepth
// plies of uniformly-random queen move plus uniformly-random stone
// placement, returning the side that caused the other to run out of
// queen moves. If no side runs out of moves within the depth cutoff, it
// falls back to static evaluation from red's perspective.
func (m *MCTS) rollout(leaf *Node) board.Side {
	b := leaf.b
	q := leaf.q
	mover := leaf.side.Opposite()
	decisive := false

	for ply := 0; ply < RolloutDepth; ply++ {
		moves := board.GenQueenMoves(&b, &q, mover)
		if len(moves) == 0 {
			decisive = true
			m.metrics.AddRollout(decisive)
			return mover.Opposite()
		}
		mv := moves[m.rng.Intn(len(moves))]

		stones := board.ExpandTerritory(&b, mv.To)
		if len(stones) == 0 {
			// The queen's destination has no slide-reachable empty cell
			// to fire a stone into; place it on the vacated origin,
			// which is always empty right after the queen leaves.
			board.Apply(&b, &q, mover, board.Move{From: mv.From, To: mv.To, Stone: mv.From})
			mover = mover.Opposite()
			continue
		}
		stone := stones[m.rng.Intn(len(stones))]
		board.Apply(&b, &q, mover, board.Move{From: mv.From, To: mv.To, Stone: stone})
		mover = mover.Opposite()
	}

	m.metrics.AddRollout(decisive)
	if board.ValueAll(&b, &q, board.Red) >= 0 {
		return board.Red
	}
	return board.Blue
}

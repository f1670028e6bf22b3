package searcher

import (
	"sync"

	"amazons/board"
)

// nodeArena recycles *Node allocations across searches, since most of a
// search's nodes are small, short-lived, and shaped identically. The
// tree itself still owns its nodes exclusively (each node has exactly
// one parent, ownership is never shared); the arena just avoids handing
// every one of them to the allocator fresh.
type nodeArena struct {
	pool sync.Pool
}

func newNodeArena() *nodeArena {
	return &nodeArena{
		pool: sync.Pool{New: func() any { return new(Node) }},
	}
}

func (a *nodeArena) get() *Node {
	return a.pool.Get().(*Node)
}

// newRoot builds an arena-backed root node, see the package-level
// newRoot for the actual construction logic.
func (a *nodeArena) newRoot(b board.Board, q board.Queens, side board.Side) *Node {
	n := a.get()
	*n = *newRoot(b, q, side)
	return n
}

// newChild builds an arena-backed child node, see the package-level
// newChild for the actual construction logic.
func (a *nodeArena) newChild(parent *Node, c Candidate) *Node {
	n := a.get()
	*n = *newChild(parent, c)
	return n
}

// release returns node and, recursively, its entire subtree to the
// arena. Call once, on the root, after the driver has extracted its
// result and the tree is no longer needed.
func (a *nodeArena) release(n *Node) {
	if n == nil {
		return
	}
	for _, c := range n.children {
		a.release(c)
	}
	*n = Node{}
	a.pool.Put(n)
}

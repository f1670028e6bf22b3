package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes one call to MCTS.Search.
type SearchMetrics struct {
	Duration      time.Duration
	Attempts      int64
	Rollouts      int64 // visit-gated rollouts performed
	FullPlayouts  int64 // rollouts that reached a decisive ply before the depth cutoff
	WidenEvents   int64 // times a node's candidate list grew past its first batch
	CandidatesMax int64 // largest candidate list built by any single node
}

// Collector accumulates SearchMetrics during a search. NewCollector
// returns a real one; NewDummyCollector returns a zero-overhead no-op
// for callers that don't want the bookkeeping.
type Collector interface {
	Start()
	AddAttempt()
	AddRollout(decisive bool)
	AddWiden()
	ObserveCandidates(n int)
	Complete() SearchMetrics
}

type collector struct {
	startTime     time.Time
	attempts      atomic.Int64
	rollouts      atomic.Int64
	fullPlayouts  atomic.Int64
	widenEvents   atomic.Int64
	candidatesMax atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
}

func (c *collector) AddAttempt() {
	c.attempts.Add(1)
}

func (c *collector) AddRollout(decisive bool) {
	c.rollouts.Add(1)
	if decisive {
		c.fullPlayouts.Add(1)
	}
}

func (c *collector) AddWiden() {
	c.widenEvents.Add(1)
}

func (c *collector) ObserveCandidates(n int) {
	for {
		cur := c.candidatesMax.Load()
		if int64(n) <= cur || c.candidatesMax.CompareAndSwap(cur, int64(n)) {
			return
		}
	}
}

func (c *collector) Complete() SearchMetrics {
	return SearchMetrics{
		Duration:      time.Since(c.startTime),
		Attempts:      c.attempts.Load(),
		Rollouts:      c.rollouts.Load(),
		FullPlayouts:  c.fullPlayouts.Load(),
		WidenEvents:   c.widenEvents.Load(),
		CandidatesMax: c.candidatesMax.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start()                   {}
func (c *dummyCollector) AddAttempt()              {}
func (c *dummyCollector) AddRollout(decisive bool) {}
func (c *dummyCollector) AddWiden()                {}
func (c *dummyCollector) ObserveCandidates(n int)  {}
func (c *dummyCollector) Complete() SearchMetrics  { return SearchMetrics{} }

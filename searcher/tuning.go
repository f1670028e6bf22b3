package searcher

// Hyperparameters for the UCT search. These are tuned constants, not
// defaults meant to be swapped: changing them changes playing strength,
// and the spec this package implements requires them reproduced exactly.

// ExplorationConstant is deliberately lower than the textbook sqrt(2),
// reflecting the strong value prior the static evaluator already gives
// every freshly materialized child.
const ExplorationConstant = 0.35

// SelectLimit caps how many of a node's candidate moves are ever kept
// for progressive widening.
const SelectLimit = 250

// WidenStart is how many children a freshly expanded node gets on its
// first expansion (capped by its candidate count).
const WidenStart = 5

// WidenStep is how many additional children a widening pass adds.
const WidenStep = 5

// RolloutGateMax: a node with visits in (0, RolloutGateMax) gets a
// rollout instead of being widened, deliberately delaying branching for
// lightly-visited nodes.
const RolloutGateMax = 40

// RolloutDepth is the number of plies a rollout plays before falling
// back to static evaluation.
const RolloutDepth = 6

// MaxAttempts bounds total root visits regardless of remaining time
// budget.
const MaxAttempts = 5_000_000

// widenTarget returns how many children a node with N visits is
// entitled to have materialized, per floor(N/1000)*5 + 5.
func widenTarget(visits int) int {
	return (visits/1000)*WidenStep + WidenStart
}

// Package heuristic estimates the cost to reach a puzzle's goal from a
// given state.
package heuristic

import "pushworld/internal/domain/pushworld"

// Heuristic estimates the cost to reach the goal from a state. An infinite
// estimate means the goal is provably unreachable from the state.
//
// Implementations may be stateful: repeated calls can return different
// costs, and some heuristics record every state they observe.
type Heuristic interface {
	EstimateCostToGoal(relativeState pushworld.RelativeState) float64
}

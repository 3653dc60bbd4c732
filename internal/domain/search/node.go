package search

import (
	"errors"

	"pushworld/internal/domain/pushworld"
)

// ErrNoMatchingAction reports a broken parent chain during plan
// reconstruction: no action transitions a parent state into its child
// state. It indicates a programming error, never an unsolvable puzzle.
var ErrNoMatchingAction = errors.New("a parent state exists for which no action can transition to the state of a child search node")

// Node is one entry of the search frontier. Parent links form a chain back
// to the root, traversed only when a goal state is found.
type Node struct {
	Parent *Node
	State  pushworld.State
}

// BacktrackPlan reconstructs the action sequence from the root to endNode.
// With only four actions it is cheaper to re-derive each action during
// backtracking than to store one on every node of the search.
func BacktrackPlan(puzzle *pushworld.Puzzle, endNode *Node) (pushworld.Plan, error) {
	var plan pushworld.Plan

	for node := endNode; node.Parent != nil; node = node.Parent {
		found := false
		for action := pushworld.Action(0); action < pushworld.NumActions; action++ {
			if node.State.Equal(puzzle.Step(node.Parent.State, action).State) {
				plan = append(plan, action)
				found = true
				break
			}
		}
		if !found {
			return nil, ErrNoMatchingAction
		}
	}

	// The plan was collected child-first; reverse it.
	for i, j := 0, len(plan)-1; i < j; i, j = i+1, j-1 {
		plan[i], plan[j] = plan[j], plan[i]
	}
	return plan, nil
}

package search

import (
	"pushworld/internal/domain/heuristic"
	"pushworld/internal/domain/pushworld"
)

// BestFirst searches for a plan that solves the puzzle, always expanding
// the frontier state with the minimum estimated cost to the goal. The
// frontier and visited set are cleared when the search begins and hold the
// search's working state afterwards; inspecting visited after a search
// reveals how many states were explored.
//
// The returned bool is false when the goal is unreachable; that outcome is
// not an error. An error is only possible from plan reconstruction.
func BestFirst(
	puzzle *pushworld.Puzzle,
	h heuristic.Heuristic,
	frontier PriorityQueue[*Node, float64],
	visited pushworld.StateSet,
) (pushworld.Plan, bool, error) {
	initialState := puzzle.InitialState()

	if puzzle.SatisfiesGoal(initialState) {
		return pushworld.Plan{}, true, nil
	}

	actionIterator := NewRandomActionIterator(defaultNumActionGroups)

	for k := range visited {
		delete(visited, k)
	}
	visited.Add(initialState)

	// Every object counts as moved in the root state, so stateful
	// heuristics observe the complete initial configuration.
	rootRelative := pushworld.RelativeState{State: initialState}
	for i := range initialState {
		rootRelative.MovedObjectIndices = append(rootRelative.MovedObjectIndices, i)
	}

	frontier.Clear()
	frontier.Push(&Node{State: initialState}, h.EstimateCostToGoal(rootRelative))

	for !frontier.Empty() {
		parent := frontier.Top()
		frontier.Pop()

		for _, action := range actionIterator.Next() {
			next := puzzle.Step(parent.State, action)
			if visited.Contains(next.State) {
				continue
			}

			node := &Node{Parent: parent, State: next.State}
			if puzzle.SatisfiesGoal(next.State) {
				plan, err := BacktrackPlan(puzzle, node)
				if err != nil {
					return nil, false, err
				}
				return plan, true, nil
			}

			frontier.Push(node, h.EstimateCostToGoal(next))
			visited.Add(next.State)
		}
	}

	return nil, false, nil
}

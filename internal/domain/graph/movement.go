// Package graph builds per-object feasible movement graphs for a puzzle
// and answers path-distance queries over them.
package graph

import (
	"pushworld/internal/domain/pushworld"
)

// MovementGraph maps each reachable position of one object to the set of
// adjacent positions it may move to in a single step. A key with an empty
// successor set is a node with no feasible outgoing movement.
//
// The graph is a one-sided approximation: a transition missing from the
// graph is provably infeasible in every reachable state, while a present
// transition may still be blocked in any concrete state.
type MovementGraph map[pushworld.Position]pushworld.PositionSet

// transition is a single-step movement of one object.
type transition struct {
	objectID int
	start    pushworld.Position
	end      pushworld.Position
}

type frontierEntry struct {
	objectID int
	position pushworld.Position
}

type graphBuilder struct {
	graphs     []MovementGraph
	frontier   map[frontierEntry]struct{}
	dependents map[transition][]transition
}

// addTransition records the transition as feasible. The first time a
// transition is inserted, every transition waiting on it is recorded in
// turn, and a newly discovered end position joins the frontier.
func (b *graphBuilder) addTransition(t transition) {
	objectGraph := b.graphs[t.objectID]
	descendants := objectGraph[t.start]
	if descendants == nil {
		descendants = make(pushworld.PositionSet)
		objectGraph[t.start] = descendants
	}
	if !descendants.Add(t.end) {
		return
	}

	for _, dependent := range b.dependents[t] {
		b.addTransition(dependent)
	}
	delete(b.dependents, t)

	if _, ok := objectGraph[t.end]; !ok {
		objectGraph[t.end] = make(pushworld.PositionSet)
		b.frontier[frontierEntry{t.objectID, t.end}] = struct{}{}
	}
}

// BuildMovementGraphs computes a feasible movement graph for every object
// in the puzzle by expanding a fixed point from the initial state: a
// non-agent transition is feasible once some pusher transition that causes
// it is feasible, and pusher transitions discovered later wake the
// transitions that were waiting on them.
func BuildMovementGraphs(puzzle *pushworld.Puzzle) []MovementGraph {
	initial := puzzle.InitialState()
	collisions := puzzle.Collisions()
	numObjects := len(initial)

	b := &graphBuilder{
		graphs:     make([]MovementGraph, numObjects),
		frontier:   make(map[frontierEntry]struct{}),
		dependents: make(map[transition][]transition),
	}
	for i, position := range initial {
		b.graphs[i] = MovementGraph{position: make(pushworld.PositionSet)}
		b.frontier[frontierEntry{i, position}] = struct{}{}
	}

	for len(b.frontier) > 0 {
		var entry frontierEntry
		for entry = range b.frontier {
			break
		}
		delete(b.frontier, entry)
		objectID, position := entry.objectID, entry.position

		if objectID == pushworld.Agent {
			for action := pushworld.Action(0); action < pushworld.NumActions; action++ {
				if collisions.Static[action][objectID].Contains(position) {
					continue
				}
				b.addTransition(transition{
					objectID: pushworld.Agent,
					start:    position,
					end:      position + pushworld.ActionDisplacements[action],
				})
			}
			continue
		}

		// Consider pushing movements from all directions.
		for action := pushworld.Action(0); action < pushworld.NumActions; action++ {
			if collisions.Static[action][objectID].Contains(position) {
				continue
			}

			displacement := pushworld.ActionDisplacements[action]
			t := transition{objectID, position, position + displacement}

			// Consider every object that could push this one.
		pushers:
			for pusherID := 0; pusherID < numObjects; pusherID++ {
				if pusherID == objectID {
					continue
				}
				pusherGraph := b.graphs[pusherID]

				for relative := range collisions.Dynamic[action][pusherID][objectID] {
					start := position + relative
					end := start + displacement

					if pusherGraph[start].Contains(end) {
						// The pushing transition is feasible, so this
						// transition is too.
						b.addTransition(t)
						break pushers
					}
					// Record this transition as waiting on the pusher's.
					pt := transition{pusherID, start, end}
					b.dependents[pt] = append(b.dependents[pt], t)
				}
			}
		}
	}

	return b.graphs
}

// Reverse returns the graph with every edge inverted. Every node of the
// input appears as a node of the output.
func (g MovementGraph) Reverse() MovementGraph {
	reversed := make(MovementGraph, len(g))
	for start, ends := range g {
		if reversed[start] == nil {
			reversed[start] = make(pushworld.PositionSet)
		}
		for end := range ends {
			if reversed[end] == nil {
				reversed[end] = make(pushworld.PositionSet)
			}
			reversed[end].Add(start)
		}
	}
	return reversed
}

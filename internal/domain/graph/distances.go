package graph

import (
	"math"

	"pushworld/internal/domain/pushworld"
)

// singleSourceDistances is a lazy breadth-first search over a movement
// graph rooted at one position. The frontier is extended one breadth layer
// at a time, only as far as queries require, and every distance found along
// the way is retained.
type singleSourceDistances struct {
	graph         MovementGraph
	frontierDepth float64
	frontier      []pushworld.Position
	distances     map[pushworld.Position]float64
}

func newSingleSourceDistances(graph MovementGraph, start pushworld.Position) *singleSourceDistances {
	return &singleSourceDistances{
		graph:     graph,
		frontier:  []pushworld.Position{start},
		distances: map[pushworld.Position]float64{start: 0},
	}
}

func (s *singleSourceDistances) distance(target pushworld.Position) float64 {
	if d, ok := s.distances[target]; ok {
		return d
	}

	targetFound := false
	for len(s.frontier) > 0 {
		// Expand another depth of the breadth-first search.
		s.frontierDepth++

		var next []pushworld.Position
		for _, position := range s.frontier {
			for nextPosition := range s.graph[position] {
				if _, ok := s.distances[nextPosition]; ok {
					continue
				}
				next = append(next, nextPosition)
				s.distances[nextPosition] = s.frontierDepth
				if nextPosition == target {
					targetFound = true
				}
			}
		}
		s.frontier = next

		if targetFound {
			return s.frontierDepth
		}
	}

	// No path exists from the start to the target.
	return math.Inf(1)
}

// PathDistances answers distance queries between positions of one object's
// movement graph. Each target position owns a breadth-first search over the
// reversed graph, so that distances from many sources to the same target
// share one expansion.
type PathDistances struct {
	distances map[pushworld.Position]*singleSourceDistances
}

// NewPathDistances prepares lazy distance queries over the given graph.
func NewPathDistances(graph MovementGraph) *PathDistances {
	reversed := graph.Reverse()
	distances := make(map[pushworld.Position]*singleSourceDistances, len(reversed))
	for position := range reversed {
		distances[position] = newSingleSourceDistances(reversed, position)
	}
	return &PathDistances{distances: distances}
}

// Distance returns the number of single-step transitions on the shortest
// path from source to target, or +Inf if no path exists.
func (p *PathDistances) Distance(source, target pushworld.Position) float64 {
	s, ok := p.distances[target]
	if !ok {
		return math.Inf(1)
	}
	return s.distance(source)
}

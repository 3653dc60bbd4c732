package heuristic

import "pushworld/internal/domain/pushworld"

// positionPair is an ordered pair of object positions, stored with the
// smaller object index first.
type positionPair struct {
	first, second pushworld.Position
}

// Novelty scores how novel a state is relative to every state previously
// observed, as in best-first width search (Lipovetzky and Geffner, 2017):
//
//	1: some object occupies a position never seen before.
//	2: some pair of objects occupies a combination of positions never
//	   seen before.
//	3: otherwise.
//
// Every call records the observed positions, so the heuristic must see
// every moved object index even after the score is decided.
type Novelty struct {
	stateSize        int
	visitedPositions []pushworld.PositionSet
	visitedPairs     [][]map[positionPair]struct{}
}

// NewNovelty constructs a novelty heuristic for states holding stateSize
// object positions.
func NewNovelty(stateSize int) *Novelty {
	h := &Novelty{
		stateSize:        stateSize,
		visitedPositions: make([]pushworld.PositionSet, stateSize),
		visitedPairs:     make([][]map[positionPair]struct{}, stateSize),
	}
	for i := range h.visitedPositions {
		h.visitedPositions[i] = make(pushworld.PositionSet)
		h.visitedPairs[i] = make([]map[positionPair]struct{}, stateSize)
		for j := range h.visitedPairs[i] {
			h.visitedPairs[i][j] = make(map[positionPair]struct{})
		}
	}
	return h
}

// EstimateCostToGoal returns the novelty of the state, considering only the
// moved objects, and records all observed positions and pairs.
func (h *Novelty) EstimateCostToGoal(relativeState pushworld.RelativeState) float64 {
	novelty := 3.0
	state := relativeState.State

	for _, i := range relativeState.MovedObjectIndices {
		pi := state[i]
		if h.visitedPositions[i].Add(pi) {
			novelty = 1
		}

		// Pairs are keyed with the smaller object index first, halving the
		// visited-set storage.
		for j := 0; j < i; j++ {
			pair := positionPair{state[j], pi}
			if _, seen := h.visitedPairs[j][i][pair]; !seen {
				h.visitedPairs[j][i][pair] = struct{}{}
				if novelty > 2 {
					novelty = 2
				}
			}
		}
		for j := i + 1; j < h.stateSize; j++ {
			pair := positionPair{pi, state[j]}
			if _, seen := h.visitedPairs[i][j][pair]; !seen {
				h.visitedPairs[i][j][pair] = struct{}{}
				if novelty > 2 {
					novelty = 2
				}
			}
		}
	}
	return novelty
}

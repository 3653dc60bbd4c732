package heuristic

import (
	"errors"

	"pushworld/internal/domain/pushworld"
)

// ErrNoHeuristics reports an attempt to build a weighted sum of zero
// heuristics.
var ErrNoHeuristics = errors.New("at least one heuristic must be provided to compute a weighted sum of costs")

// Weighted pairs a heuristic with its weight in a WeightedSum.
type Weighted struct {
	Heuristic Heuristic
	Weight    float64
}

// WeightedSum combines several heuristics linearly. Giving the primary
// heuristic a weight larger than the greatest possible value of the
// secondary ones yields a lexicographic ordering.
type WeightedSum struct {
	heuristics []Weighted
}

// NewWeightedSum builds the combination, rejecting an empty list.
func NewWeightedSum(heuristics []Weighted) (*WeightedSum, error) {
	if len(heuristics) == 0 {
		return nil, ErrNoHeuristics
	}
	return &WeightedSum{heuristics: heuristics}, nil
}

// EstimateCostToGoal returns the weighted sum of every component estimate.
func (h *WeightedSum) EstimateCostToGoal(relativeState pushworld.RelativeState) float64 {
	cost := 0.0
	for _, wh := range h.heuristics {
		cost += wh.Heuristic.EstimateCostToGoal(relativeState) * wh.Weight
	}
	return cost
}

package heuristic

import (
	"errors"
	"testing"

	"pushworld/internal/domain/pushworld"
)

type constantHeuristic struct {
	cost float64
}

func (h constantHeuristic) EstimateCostToGoal(pushworld.RelativeState) float64 {
	return h.cost
}

func TestWeightedSumRejectsEmptyInput(t *testing.T) {
	if _, err := NewWeightedSum(nil); !errors.Is(err, ErrNoHeuristics) {
		t.Fatalf("NewWeightedSum(nil) error = %v, want ErrNoHeuristics", err)
	}
}

func TestWeightedSumCombines(t *testing.T) {
	h, err := NewWeightedSum([]Weighted{
		{Heuristic: constantHeuristic{cost: 3}, Weight: 1e6},
		{Heuristic: constantHeuristic{cost: 17}, Weight: 1},
	})
	if err != nil {
		t.Fatalf("NewWeightedSum: %v", err)
	}

	rs := pushworld.RelativeState{State: pushworld.State{1}}
	if got := h.EstimateCostToGoal(rs); got != 3e6+17 {
		t.Fatalf("estimate = %v, want %v", got, 3e6+17)
	}
}

// A large leading weight orders states first by the primary heuristic and
// breaks ties with the secondary one.
func TestWeightedSumLexicographicOrdering(t *testing.T) {
	mk := func(primary, secondary float64) float64 {
		h, err := NewWeightedSum([]Weighted{
			{Heuristic: constantHeuristic{cost: primary}, Weight: 1e6},
			{Heuristic: constantHeuristic{cost: secondary}, Weight: 1},
		})
		if err != nil {
			t.Fatalf("NewWeightedSum: %v", err)
		}
		return h.EstimateCostToGoal(pushworld.RelativeState{})
	}

	if !(mk(1, 999999) < mk(2, 0)) {
		t.Fatal("primary heuristic should dominate")
	}
	if !(mk(2, 5) < mk(2, 6)) {
		t.Fatal("secondary heuristic should break ties")
	}
}

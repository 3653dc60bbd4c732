package heuristic

import (
	"testing"

	"pushworld/internal/domain/pushworld"
)

func TestNoveltySequence(t *testing.T) {
	h := NewNovelty(4)

	cases := []struct {
		state pushworld.State
		moved []int
		want  float64
	}{
		{pushworld.State{1, 2, 3, 4}, []int{0, 1, 2, 3}, 1},
		{pushworld.State{2, 3, 4, 5}, []int{0, 1, 2, 3}, 1},
		{pushworld.State{1, 3, 4, 5}, []int{0}, 2},
		{pushworld.State{2, 3, 3, 5}, []int{2}, 2},
		{pushworld.State{1, 3, 3, 5}, []int{0, 2}, 3},
		{pushworld.State{1, 3, 3, 4}, []int{3}, 2},
		{pushworld.State{1, 3, 5, 4}, []int{2}, 1},
		{pushworld.State{1, 3, 5, 4}, nil, 3},
	}
	for i, c := range cases {
		rs := pushworld.RelativeState{State: c.state, MovedObjectIndices: c.moved}
		if got := h.EstimateCostToGoal(rs); got != c.want {
			t.Fatalf("case %d: novelty = %v, want %v", i, got, c.want)
		}
	}
}

func TestNoveltyObservesEveryMovedIndex(t *testing.T) {
	h := NewNovelty(3)

	// All three objects move; the score is decided by the first, but the
	// others' positions must still be recorded.
	first := pushworld.RelativeState{
		State:              pushworld.State{1, 10, 20},
		MovedObjectIndices: []int{0, 1, 2},
	}
	if got := h.EstimateCostToGoal(first); got != 1 {
		t.Fatalf("first novelty = %v, want 1", got)
	}

	// Revisiting any recorded single position cannot score 1 again.
	repeat := pushworld.RelativeState{
		State:              pushworld.State{1, 10, 20},
		MovedObjectIndices: []int{1, 2},
	}
	if got := h.EstimateCostToGoal(repeat); got != 3 {
		t.Fatalf("repeat novelty = %v, want 3", got)
	}
}

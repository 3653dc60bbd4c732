package search

import (
	"math/rand"

	"pushworld/internal/domain/pushworld"
)

// defaultNumActionGroups is how many pre-shuffled action orderings a
// RandomActionIterator holds.
const defaultNumActionGroups = 1000

// RandomActionIterator hands out orderings of the four actions without
// systematic tie-break bias. All orderings are shuffled once at
// construction with a fixed seed, so iteration is cheap and reproducible.
type RandomActionIterator struct {
	actionGroups [][]pushworld.Action
	next         int
}

// NewRandomActionIterator pre-shuffles numActionGroups orderings. A
// non-positive count falls back to the default.
func NewRandomActionIterator(numActionGroups int) *RandomActionIterator {
	if numActionGroups <= 0 {
		numActionGroups = defaultNumActionGroups
	}
	rng := rand.New(rand.NewSource(42))

	groups := make([][]pushworld.Action, numActionGroups)
	for i := range groups {
		group := make([]pushworld.Action, pushworld.NumActions)
		for a := range group {
			group[a] = pushworld.Action(a)
		}
		rng.Shuffle(len(group), func(x, y int) {
			group[x], group[y] = group[y], group[x]
		})
		groups[i] = group
	}
	return &RandomActionIterator{actionGroups: groups}
}

// Next returns the next pre-shuffled ordering, cycling through the groups.
// Callers must not modify the returned slice.
func (it *RandomActionIterator) Next() []pushworld.Action {
	group := it.actionGroups[it.next]
	it.next++
	if it.next == len(it.actionGroups) {
		it.next = 0
	}
	return group
}

package heuristic

import (
	"math"

	"pushworld/internal/domain/graph"
	"pushworld/internal/domain/pushworld"
)

// pushingCostKey memoizes RecursiveGraphDistance.pushingCosts.
type pushingCostKey struct {
	pusherID    int
	pusherPos   pushworld.Position
	pusheeID    int
	pusheeStart pushworld.Position
	pusheeEnd   pushworld.Position
}

// RecursiveGraphDistance estimates cost-to-goal from per-object movement
// graphs. It resembles the domain-transition-graph heuristic of the Fast
// Downward planner, with two changes suited to pushing puzzles: only the
// first transition of a path is charged for the cost of arranging its
// conditions, every later transition costs a flat 1; and the cost of moving
// several objects in one chain of contact is modeled directly instead of
// through a factored action encoding.
type RecursiveGraphDistance struct {
	puzzle         *pushworld.Puzzle
	fewestTools    bool
	movementGraphs []graph.MovementGraph
	pathDistances  []*graph.PathDistances

	pushingCostCache map[pushingCostKey]map[pushworld.Position]float64
}

// NewRecursiveGraphDistance builds the movement graphs and path-distance
// indexes for the puzzle.
//
// When fewestTools is true, the estimate for each goal object uses the
// smallest number of intermediate "tool" objects that yields a finite cost,
// even when a deeper tool chain would be cheaper. When false, every tool
// chain is considered, which tightens the estimate at exponential cost in
// the number of movable objects.
func NewRecursiveGraphDistance(puzzle *pushworld.Puzzle, fewestTools bool) *RecursiveGraphDistance {
	graphs := graph.BuildMovementGraphs(puzzle)
	distances := make([]*graph.PathDistances, len(graphs))
	for i, g := range graphs {
		distances[i] = graph.NewPathDistances(g)
	}
	return &RecursiveGraphDistance{
		puzzle:           puzzle,
		fewestTools:      fewestTools,
		movementGraphs:   graphs,
		pathDistances:    distances,
		pushingCostCache: make(map[pushingCostKey]map[pushworld.Position]float64),
	}
}

// EstimateCostToGoal sums the per-goal-object estimates, short-circuiting
// as soon as any goal object is provably stuck.
func (h *RecursiveGraphDistance) EstimateCostToGoal(relativeState pushworld.RelativeState) float64 {
	state := relativeState.State
	cost := 0.0

	for i, goalPosition := range h.puzzle.Goal() {
		objectID := i + 1
		if h.fewestTools {
			cost += h.fewestToolsGoalCost(state, objectID, goalPosition)
		} else {
			cost += h.goalCost(state, objectID, goalPosition, len(state)-2)
		}
		if math.IsInf(cost, 1) {
			break
		}
	}
	return cost
}

// fewestToolsGoalCost retries goalCost with an increasing pushing depth and
// returns the first finite estimate.
func (h *RecursiveGraphDistance) fewestToolsGoalCost(state pushworld.State, objectID int, goalPosition pushworld.Position) float64 {
	for pushingDepth := 0; pushingDepth < len(state)-1; pushingDepth++ {
		cost := h.goalCost(state, objectID, goalPosition, pushingDepth)
		if !math.IsInf(cost, 1) {
			return cost
		}
	}
	return math.Inf(1)
}

// goalCost estimates the cost to move one object to its goal position. Each
// feasible first step of the object is charged its full pushing cost; the
// remainder of the path is charged 1 per transition via the path-distance
// index.
func (h *RecursiveGraphDistance) goalCost(state pushworld.State, objectID int, goalPosition pushworld.Position, pushingDepth int) float64 {
	currentPosition := state[objectID]
	if currentPosition == goalPosition {
		return 0
	}

	minCost := math.Inf(1)
	for effectPosition := range h.movementGraphs[objectID][currentPosition] {
		goalDistanceCost := h.pathDistances[objectID].Distance(effectPosition, goalPosition)
		if goalDistanceCost >= minCost {
			continue
		}
		minCost = goalDistanceCost + h.recursivePushingCost(
			state, objectID, currentPosition, effectPosition,
			nil, pushingDepth, minCost-goalDistanceCost)
	}
	return minCost
}

// recursivePushingCost finds the cheapest way to cause the single
// transition of the object from currentPosition to the adjacent
// effectPosition. At depth 0 only the agent may push; at greater depths any
// other movable not yet on the chain may push, in which case the pusher's
// own movement is costed recursively with one less level of depth.
//
// costUpperBound caps the returned value; branches that cannot beat it are
// pruned.
func (h *RecursiveGraphDistance) recursivePushingCost(
	state pushworld.State, objectID int,
	currentPosition, effectPosition pushworld.Position,
	skippedObjectIDs map[int]bool, pushingDepth int, costUpperBound float64,
) float64 {
	minCost := costUpperBound

	nextSkipped := make(map[int]bool, len(skippedObjectIDs)+1)
	for id := range skippedObjectIDs {
		nextSkipped[id] = true
	}
	nextSkipped[objectID] = true

	startPusherID, endPusherID := 0, 1
	if pushingDepth > 0 {
		startPusherID, endPusherID = 1, len(state)
	}

	for pusherID := startPusherID; pusherID < endPusherID; pusherID++ {
		if nextSkipped[pusherID] {
			continue
		}

		pusherPosition := state[pusherID]
		pushingCosts := h.pushingCosts(pusherID, pusherPosition, objectID, currentPosition, effectPosition)

		for pusherEffectPosition, pusherDistanceCost := range pushingCosts {
			if pusherDistanceCost >= minCost {
				continue
			}

			if pusherID == pushworld.Agent {
				// The agent pushes directly; its final move onto the object
				// costs 1.
				if totalCost := pusherDistanceCost + 1; totalCost < minCost {
					minCost = totalCost
				}
			} else {
				minCost = pusherDistanceCost + h.recursivePushingCost(
					state, pusherID, pusherPosition, pusherEffectPosition,
					nextSkipped, pushingDepth-1, minCost-pusherDistanceCost)
			}
		}
	}
	return minCost
}

// pushingCosts maps each position adjacent to the pusher's current position
// to the cost of moving the pusher from there into contact with the pushee
// so that the pushee moves from its start to its end position. A pusher
// move that simultaneously repositions the pusher and effects the push
// costs zero. Results are memoized.
func (h *RecursiveGraphDistance) pushingCosts(
	pusherID int, pusherPosition pushworld.Position,
	pusheeID int, pusheeStartPosition, pusheeEndPosition pushworld.Position,
) map[pushworld.Position]float64 {
	key := pushingCostKey{pusherID, pusherPosition, pusheeID, pusheeStartPosition, pusheeEndPosition}
	if cached, ok := h.pushingCostCache[key]; ok {
		return cached
	}

	costs := make(map[pushworld.Position]float64)

	displacement := pusheeEndPosition - pusheeStartPosition
	action, ok := pushworld.ActionForDisplacement(displacement)
	if !ok {
		h.pushingCostCache[key] = costs
		return costs
	}

	pusherGraph := h.movementGraphs[pusherID]
	pusherNextPositions := pusherGraph[pusherPosition]
	relativePositions := h.puzzle.Collisions().Dynamic[action][pusherID][pusheeID]

	// Consider every relative position from which the pusher can push the
	// pushee toward its end position.
	for relativePosition := range relativePositions {
		pushingStart := pusheeStartPosition + relativePosition
		pushingEnd := pushingStart + displacement

		// The pusher must be able to perform the pushing movement itself.
		if !pusherGraph[pushingStart].Contains(pushingEnd) {
			continue
		}

		for pusherNextPosition := range pusherNextPositions {
			var distanceCost float64
			if pushingStart == pusherPosition && pushingEnd == pusherNextPosition {
				// A simultaneous push: the pusher's one move both
				// repositions it and effects the push.
				distanceCost = 0
			} else {
				distanceCost = h.pathDistances[pusherID].Distance(pusherNextPosition, pushingStart)
				if math.IsInf(distanceCost, 1) {
					continue
				}
				// Add 1 for the contact-making transition.
				distanceCost++
			}

			if best, ok := costs[pusherNextPosition]; !ok || distanceCost < best {
				costs[pusherNextPosition] = distanceCost
			}
		}
	}

	h.pushingCostCache[key] = costs
	return costs
}

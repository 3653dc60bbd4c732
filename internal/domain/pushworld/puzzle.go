package pushworld

// Puzzle is an immutable PushWorld puzzle: an initial configuration of
// objects, a goal, and the collision tables that constrain movement.
type Puzzle struct {
	initial    State
	goal       Goal
	collisions *ObjectCollisions
	numObjects int
}

// NewPuzzle constructs a puzzle from an initial state, a goal, and
// precomputed collision tables. The collision tables are widened if they
// hold fewer objects than the state.
func NewPuzzle(initial State, goal Goal, collisions *ObjectCollisions) *Puzzle {
	if collisions == nil {
		collisions = NewObjectCollisions(len(initial))
	}
	collisions.Resize(len(initial))
	return &Puzzle{
		initial:    initial.Clone(),
		goal:       goal,
		collisions: collisions,
		numObjects: len(initial),
	}
}

// InitialState returns the initial positions of all objects.
func (p *Puzzle) InitialState() State { return p.initial }

// Goal returns the goal positions. Goal[k] constrains state index k+1.
func (p *Puzzle) Goal() Goal { return p.goal }

// Collisions returns the collision tables.
func (p *Puzzle) Collisions() *ObjectCollisions { return p.collisions }

// NumObjects returns the number of objects in every state of this puzzle.
func (p *Puzzle) NumObjects() int { return p.numObjects }

// Step computes the state that results from performing the action in the
// given state. The returned moved indices identify every object whose
// position changed. If any object in the chain of contact collides with a
// static obstacle, nothing moves.
func (p *Puzzle) Step(state State, action Action) RelativeState {
	staticCollisions := p.collisions.Static[action]

	if staticCollisions[Agent].Contains(state[Agent]) {
		// The agent cannot move.
		return RelativeState{State: state}
	}

	// The frontier holds moved objects not yet checked for whether they
	// push other objects.
	frontier := make([]int, 1, p.numObjects)
	frontier[0] = Agent
	pushed := make([]bool, p.numObjects)
	pushed[Agent] = true

	dynamicCollisions := p.collisions.Dynamic[action]

	for len(frontier) > 0 {
		objectIdx := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		objectPos := state[objectIdx]
		objectDynamic := dynamicCollisions[objectIdx]

		for obstacleIdx := 1; obstacleIdx < p.numObjects; obstacleIdx++ {
			if pushed[obstacleIdx] {
				continue
			}
			obstaclePos := state[obstacleIdx]
			if !objectDynamic[obstacleIdx].Contains(objectPos - obstaclePos) {
				continue
			}
			if staticCollisions[obstacleIdx].Contains(obstaclePos) {
				// Transitive stopping; nothing can move.
				return RelativeState{State: state}
			}
			pushed[obstacleIdx] = true
			frontier = append(frontier, obstacleIdx)
		}
	}

	displacement := ActionDisplacements[action]
	next := RelativeState{State: make(State, p.numObjects)}
	for i := 0; i < p.numObjects; i++ {
		if pushed[i] {
			next.State[i] = state[i] + displacement
			next.MovedObjectIndices = append(next.MovedObjectIndices, i)
		} else {
			next.State[i] = state[i]
		}
	}
	return next
}

// SatisfiesGoal reports whether the state places every goal object at its
// goal position.
func (p *Puzzle) SatisfiesGoal(state State) bool {
	for i, goalPos := range p.goal {
		if state[i+1] != goalPos {
			return false
		}
	}
	return true
}

// IsValidPlan reports whether performing every action in the plan, starting
// from the initial state, reaches a state that satisfies the goal.
func (p *Puzzle) IsValidPlan(plan Plan) bool {
	state := p.initial
	for _, action := range plan {
		state = p.Step(state, action).State
	}
	return p.SatisfiesGoal(state)
}

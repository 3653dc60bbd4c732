package pushworld

import "testing"

func xy(x, y int) Position { return XYToPosition(x, y) }

func TestAgentMovement(t *testing.T) {
	initial := State{xy(1, 1)}
	collisions := NewObjectCollisions(1)
	puzzle := NewPuzzle(initial, Goal{}, collisions)

	cases := []struct {
		action Action
		want   Position
	}{
		{Left, xy(0, 1)},
		{Right, xy(2, 1)},
		{Up, xy(1, 0)},
		{Down, xy(1, 2)},
	}
	for _, c := range cases {
		next := puzzle.Step(initial, c.action)
		if next.State[Agent] != c.want {
			t.Fatalf("Step(%v) agent = %v, want %v", c.action, next.State[Agent], c.want)
		}
		if len(next.MovedObjectIndices) != 1 || next.MovedObjectIndices[0] != Agent {
			t.Fatalf("Step(%v) moved = %v, want [0]", c.action, next.MovedObjectIndices)
		}
	}

	// A static collision pins the agent in place.
	collisions.Static[Left][Agent].Add(xy(1, 1))
	blocked := NewPuzzle(initial, Goal{}, collisions)

	next := blocked.Step(initial, Left)
	if next.State[Agent] != xy(1, 1) {
		t.Fatalf("blocked Step(Left) agent = %v, want unchanged", next.State[Agent])
	}
	if len(next.MovedObjectIndices) != 0 {
		t.Fatalf("blocked Step(Left) moved = %v, want none", next.MovedObjectIndices)
	}
	if next.State[Agent] != blocked.Step(initial, Left).State[Agent] {
		t.Fatal("blocked step is not deterministic")
	}
}

func TestDirectPushing(t *testing.T) {
	initial := State{xy(1, 1), xy(3, 1)}
	collisions := NewObjectCollisions(2)
	collisions.Dynamic[Right][0][1].Add(xy(-1, 0))
	puzzle := NewPuzzle(initial, Goal{}, collisions)

	// Not in contact yet: only the agent moves.
	s := puzzle.Step(initial, Right)
	if s.State[0] != xy(2, 1) || s.State[1] != xy(3, 1) {
		t.Fatalf("first Step(Right) = %v", s.State)
	}

	// Contact: the agent pushes the object.
	s = puzzle.Step(s.State, Right)
	if s.State[0] != xy(3, 1) || s.State[1] != xy(4, 1) {
		t.Fatalf("second Step(Right) = %v", s.State)
	}
	if len(s.MovedObjectIndices) != 2 {
		t.Fatalf("moved = %v, want both objects", s.MovedObjectIndices)
	}
}

func TestTransitivePushing(t *testing.T) {
	initial := State{xy(1, 1), xy(3, 1), xy(5, 1)}
	collisions := NewObjectCollisions(3)
	collisions.Dynamic[Right][0][1].Add(xy(-1, 0))
	collisions.Dynamic[Right][1][2].Add(xy(-1, 0))
	puzzle := NewPuzzle(initial, Goal{}, collisions)

	s := puzzle.Step(initial, Down)
	if s.State[0] != xy(1, 2) || s.State[1] != xy(3, 1) || s.State[2] != xy(5, 1) {
		t.Fatalf("Step(Down) = %v", s.State)
	}

	s = puzzle.Step(initial, Right)
	s = puzzle.Step(s.State, Right)
	if s.State[0] != xy(3, 1) || s.State[1] != xy(4, 1) || s.State[2] != xy(5, 1) {
		t.Fatalf("after two Rights = %v", s.State)
	}

	// The whole chain moves together.
	s = puzzle.Step(s.State, Right)
	if s.State[0] != xy(4, 1) || s.State[1] != xy(5, 1) || s.State[2] != xy(6, 1) {
		t.Fatalf("chain push = %v", s.State)
	}
	if len(s.MovedObjectIndices) != 3 {
		t.Fatalf("chain moved = %v, want all three", s.MovedObjectIndices)
	}
}

func TestTransitiveStopping(t *testing.T) {
	initial := State{xy(1, 1), xy(2, 1), xy(3, 1)}
	collisions := NewObjectCollisions(3)
	collisions.Dynamic[Right][0][1].Add(xy(-1, 0))
	collisions.Dynamic[Right][1][2].Add(xy(-1, 0))
	// The last object in the chain is against a wall.
	collisions.Static[Right][2].Add(xy(3, 1))
	puzzle := NewPuzzle(initial, Goal{}, collisions)

	s := puzzle.Step(initial, Right)
	if !s.State.Equal(initial) {
		t.Fatalf("transitive stop: state changed to %v", s.State)
	}
	if len(s.MovedObjectIndices) != 0 {
		t.Fatalf("transitive stop: moved = %v, want none", s.MovedObjectIndices)
	}

	// Scratch state is reset: a legal action still works afterwards.
	s = puzzle.Step(initial, Down)
	if s.State[0] != xy(1, 2) {
		t.Fatalf("Step(Down) after stop = %v", s.State)
	}
}

func TestStepPreservesUnmovedIndices(t *testing.T) {
	initial := State{xy(1, 1), xy(5, 5), xy(7, 7)}
	puzzle := NewPuzzle(initial, Goal{}, NewObjectCollisions(3))

	for a := Action(0); a < NumActions; a++ {
		next := puzzle.Step(initial, a)
		if len(next.State) != len(initial) {
			t.Fatalf("Step(%v) changed state length", a)
		}
		moved := map[int]bool{}
		for _, i := range next.MovedObjectIndices {
			moved[i] = true
		}
		for i := range initial {
			if moved[i] {
				if next.State[i] != initial[i]+ActionDisplacements[a] {
					t.Fatalf("moved index %d = %v, want displaced", i, next.State[i])
				}
			} else if next.State[i] != initial[i] {
				t.Fatalf("unmoved index %d changed", i)
			}
		}
	}
}

func TestSatisfiesGoal(t *testing.T) {
	initial := State{xy(1, 1), xy(2, 2), xy(3, 3)}
	goal := Goal{xy(2, 5)}
	puzzle := NewPuzzle(initial, goal, nil)

	cases := []struct {
		state State
		want  bool
	}{
		{State{xy(1, 1), xy(2, 5), xy(3, 3)}, true},
		{State{xy(2, 1), xy(2, 5), xy(3, 5)}, true}, // agent and non-goal objects are free
		{State{xy(1, 1), xy(3, 5), xy(3, 3)}, false},
		{State{xy(2, 1), xy(2, 2), xy(3, 6)}, false},
	}
	for i, c := range cases {
		if got := puzzle.SatisfiesGoal(c.state); got != c.want {
			t.Fatalf("case %d: SatisfiesGoal = %v, want %v", i, got, c.want)
		}
	}

	multi := NewPuzzle(initial, Goal{xy(2, 5), xy(3, 6)}, nil)
	if !multi.SatisfiesGoal(State{xy(5, 1), xy(2, 5), xy(3, 6)}) {
		t.Fatal("multi-goal state should satisfy")
	}
	if multi.SatisfiesGoal(State{xy(1, 1), xy(2, 5), xy(3, 3)}) {
		t.Fatal("partially satisfied multi-goal should not satisfy")
	}
}

func TestTrivialPuzzleWalkthrough(t *testing.T) {
	puzzle, err := LoadPuzzle("testdata/trivial.pwp")
	if err != nil {
		t.Fatalf("LoadPuzzle: %v", err)
	}

	goal := puzzle.Goal()
	if len(goal) != 1 || goal[0] != xy(3, 1) {
		t.Fatalf("goal = %v, want [(3,1)]", goal)
	}
	initial := puzzle.InitialState()
	if len(initial) != 2 || initial[0] != xy(1, 2) || initial[1] != xy(2, 2) {
		t.Fatalf("initial = %v, want agent (1,2), movable (2,2)", initial)
	}

	collisions := puzzle.Collisions()
	wantAgentStatics := map[Action][]Position{
		Left:  {xy(2, 1), xy(1, 2), xy(2, 3)},
		Right: {xy(3, 1), xy(3, 2), xy(3, 3)},
		Up:    {xy(1, 2), xy(2, 1), xy(3, 1)},
		Down:  {xy(1, 2), xy(2, 3), xy(3, 3)},
	}
	for a, want := range wantAgentStatics {
		got := collisions.Static[a][Agent]
		if len(got) != len(want) {
			t.Fatalf("static[%v][agent] size = %d, want %d", a, len(got), len(want))
		}
		for _, p := range want {
			if !got.Contains(p) {
				t.Fatalf("static[%v][agent] missing %v", a, p)
			}
		}
	}
	wantDynamic := map[Action]Position{
		Left:  xy(1, 0),
		Right: xy(-1, 0),
		Up:    xy(0, 1),
		Down:  xy(0, -1),
	}
	for a, want := range wantDynamic {
		got := collisions.Dynamic[a][0][1]
		if len(got) != 1 || !got.Contains(want) {
			t.Fatalf("dynamic[%v][0][1] = %v, want {%v}", a, got, want)
		}
	}

	// Walk the only solution, checking walls and transitive stops on the way.
	state := initial
	steps := []struct {
		action Action
		agent  Position
		m0     Position
	}{
		{Left, xy(1, 2), xy(2, 2)},  // wall
		{Up, xy(1, 2), xy(2, 2)},    // wall
		{Down, xy(1, 2), xy(2, 2)},  // agent-only wall
		{Right, xy(2, 2), xy(3, 2)}, // push
		{Right, xy(2, 2), xy(3, 2)}, // transitive stop
		{Down, xy(2, 3), xy(3, 2)},
		{Down, xy(2, 3), xy(3, 2)}, // wall
		{Right, xy(3, 3), xy(3, 2)},
		{Right, xy(3, 3), xy(3, 2)}, // wall
		{Up, xy(3, 2), xy(3, 1)},    // push onto goal
	}
	for i, s := range steps {
		state = puzzle.Step(state, s.action).State
		if state[0] != s.agent || state[1] != s.m0 {
			t.Fatalf("step %d (%v): state = %v, want agent %v m0 %v", i, s.action, state, s.agent, s.m0)
		}
	}
	if !puzzle.SatisfiesGoal(state) {
		t.Fatal("walkthrough should end on the goal")
	}

	if !puzzle.IsValidPlan(Plan{Right, Down, Right, Up}) {
		t.Fatal("RDRU should be a valid plan")
	}
	if !puzzle.IsValidPlan(Plan{Right, Down, Right, Down, Right, Up}) {
		t.Fatal("plans may include no-op moves")
	}
	if puzzle.IsValidPlan(Plan{Right, Down, Left, Up}) {
		t.Fatal("RDLU should not be a valid plan")
	}
}

func TestCollisionsResizeNeverShrinks(t *testing.T) {
	c := NewObjectCollisions(3)
	c.Static[Left][2].Add(xy(1, 1))
	c.Resize(2)
	if c.NumObjects() != 3 {
		t.Fatalf("NumObjects after narrowing Resize = %d, want 3", c.NumObjects())
	}
	if !c.Static[Left][2].Contains(xy(1, 1)) {
		t.Fatal("Resize dropped an existing entry")
	}
	c.Resize(5)
	if c.NumObjects() != 5 || len(c.Dynamic[Down][4]) != 5 {
		t.Fatal("Resize(5) did not widen all tables")
	}
}

package pushworld

// ObjectCollisions precomputes how movable objects collide with static
// obstacles and with each other.
//
// Static[action][i] contains every position of object i at which moving in
// the direction of the action collides with a static obstacle.
//
// Dynamic[action][i][j] contains every relative position
// pos(i) - pos(j) at which moving object i in the direction of the action
// collides with, and therefore pushes, object j.
type ObjectCollisions struct {
	Static  [][]PositionSet
	Dynamic [][][]PositionSet
}

// NewObjectCollisions allocates collision tables for the given number of
// objects.
func NewObjectCollisions(numObjects int) *ObjectCollisions {
	c := &ObjectCollisions{}
	c.Resize(numObjects)
	return c
}

// Resize widens the collision tables to hold at least numObjects objects.
// Existing entries are preserved; tables never shrink.
func (c *ObjectCollisions) Resize(numObjects int) {
	for len(c.Static) < NumActions {
		c.Static = append(c.Static, nil)
		c.Dynamic = append(c.Dynamic, nil)
	}
	for a := 0; a < NumActions; a++ {
		for len(c.Static[a]) < numObjects {
			c.Static[a] = append(c.Static[a], make(PositionSet))
		}
		for len(c.Dynamic[a]) < numObjects {
			c.Dynamic[a] = append(c.Dynamic[a], nil)
		}
		for m := 0; m < numObjects; m++ {
			for len(c.Dynamic[a][m]) < numObjects {
				c.Dynamic[a][m] = append(c.Dynamic[a][m], make(PositionSet))
			}
		}
	}
}

// NumObjects returns the object capacity of the tables.
func (c *ObjectCollisions) NumObjects() int {
	if len(c.Static) == 0 {
		return 0
	}
	return len(c.Static[0])
}

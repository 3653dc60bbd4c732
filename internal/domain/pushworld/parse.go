package pushworld

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// point is an unpacked pixel coordinate used only while parsing.
type point struct {
	x, y int
}

type pointSet map[point]struct{}

func (s pointSet) add(p point) {
	s[p] = struct{}{}
}

func packPoint(p point) Position {
	return Position(p.x*PositionLimit + p.y)
}

// objectOrigin returns the component-wise minimum of the pixels.
func objectOrigin(pixels pointSet) point {
	first := true
	var origin point
	for px := range pixels {
		if first {
			origin = px
			first = false
			continue
		}
		if px.x < origin.x {
			origin.x = px.x
		}
		if px.y < origin.y {
			origin.y = px.y
		}
	}
	return origin
}

// objectSize returns the component-wise extent of the pixels.
func objectSize(pixels pointSet) point {
	var size point
	for px := range pixels {
		if px.x+1 > size.x {
			size.x = px.x + 1
		}
		if px.y+1 > size.y {
			size.y = px.y + 1
		}
	}
	return size
}

func offsetPixels(pixels pointSet, origin point) pointSet {
	out := make(pointSet, len(pixels))
	for px := range pixels {
		out.add(point{px.x - origin.x, px.y - origin.y})
	}
	return out
}

// pointsOverlap reports whether any pixel of s1, displaced by offset,
// coincides with a pixel of s2.
func pointsOverlap(s1, s2 pointSet, offset point) bool {
	for p := range s1 {
		if _, ok := s2[point{p.x + offset.x, p.y + offset.y}]; ok {
			return true
		}
	}
	return false
}

var pointDisplacements = [NumActions]point{
	Left:  {-1, 0},
	Right: {1, 0},
	Up:    {0, -1},
	Down:  {0, 1},
}

// populateCollisions adds to the set every position of the pusher relative
// to the pushee at which moving the pusher in the direction of the action
// makes contact with the pushee without the two overlapping beforehand.
func populateCollisions(collisions PositionSet, action Action, pusherPixels, pusheePixels pointSet) {
	d := pointDisplacements[action]
	relative := make(pointSet)
	for u := range pusherPixels {
		for v := range pusheePixels {
			relative.add(point{v.x - (u.x + d.x), v.y - (u.y + d.y)})
		}
	}
	for r := range relative {
		if !pointsOverlap(pusherPixels, pusheePixels, r) {
			collisions.Add(packPoint(r))
		}
	}
}

// populateBoundedCollisions is populateCollisions with the additional
// constraint that every pusher pixel stays inside [0,width) x [0,height)
// when positioned at the relative offset.
func populateBoundedCollisions(collisions PositionSet, action Action, pusherPixels, pusheePixels pointSet, width, height int) {
	d := pointDisplacements[action]
	size := objectSize(pusherPixels)
	maxX := width - size.x
	maxY := height - size.y

	relative := make(pointSet)
	for u := range pusherPixels {
		for v := range pusheePixels {
			relative.add(point{v.x - (u.x + d.x), v.y - (u.y + d.y)})
		}
	}
	for r := range relative {
		if r.x >= 0 && r.y >= 0 && r.x <= maxX && r.y <= maxY &&
			!pointsOverlap(pusherPixels, pusheePixels, r) {
			collisions.Add(packPoint(r))
		}
	}
}

// LoadPuzzle reads a .pwp puzzle file from disk.
func LoadPuzzle(path string) (*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPuzzle, err)
	}
	defer f.Close()
	return ParsePuzzle(f)
}

// ParsePuzzle parses the .pwp grid format: rows of whitespace-separated
// cells, each cell either "." or one or more entity tokens joined by "+".
// Tokens are case-insensitive: "a" is the agent, "w" a wall, "aw" a wall
// visible only to the agent, "mK" a movable, and "gK" the goal of movable
// K. An implicit one-cell wall border surrounds the grid.
func ParsePuzzle(r io.Reader) (*Puzzle, error) {
	pixels := make(map[string]pointSet)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	elemsPerRow := 0
	rows := 0
	for scanner.Scan() {
		cells := strings.Fields(scanner.Text())
		if len(cells) == 0 {
			continue // ignore blank lines
		}
		if elemsPerRow == 0 {
			elemsPerRow = len(cells)
		} else if len(cells) != elemsPerRow {
			return nil, fmt.Errorf("%w: rows do not contain the same number of elements", ErrInvalidPuzzle)
		}

		y := rows + 1
		for i, cell := range cells {
			x := i + 1
			for _, token := range strings.Split(cell, "+") {
				token = strings.ToLower(token)
				if token == "" || token == "." {
					continue
				}
				if pixels[token] == nil {
					pixels[token] = make(pointSet)
				}
				pixels[token].add(point{x, y})
			}
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPuzzle, err)
	}

	if _, ok := pixels["a"]; !ok {
		return nil, fmt.Errorf("%w: every puzzle must have an agent object whose pixels are indicated by 'a'", ErrInvalidPuzzle)
	}

	width := elemsPerRow + 2
	height := rows + 2
	if width >= PositionLimit || height >= PositionLimit {
		return nil, fmt.Errorf("%w: the maximum width and height of a puzzle is %d", ErrInvalidPuzzle, PositionLimit)
	}

	// Add walls at the boundaries of the puzzle.
	if pixels["w"] == nil {
		pixels["w"] = make(pointSet)
	}
	for x := 0; x < width; x++ {
		pixels["w"].add(point{x, 0})
		pixels["w"].add(point{x, height - 1})
	}
	for y := 0; y < height; y++ {
		pixels["w"].add(point{0, y})
		pixels["w"].add(point{width - 1, y})
	}

	// Entity ids in deterministic order.
	ids := make([]string, 0, len(pixels))
	for id := range pixels {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	objects := []string{"a"}
	var goalIDs []string
	positions := make(map[string]point)

	for _, id := range ids {
		if id != "w" && id != "aw" {
			origin := objectOrigin(pixels[id])
			positions[id] = origin
			pixels[id] = offsetPixels(pixels[id], origin)
		}

		if id[0] == 'g' {
			movableID := "m" + id[1:]
			if _, ok := pixels[movableID]; !ok {
				return nil, fmt.Errorf("%w: goal has no associated moveable object: %s", ErrInvalidPuzzle, movableID)
			}
			goalIDs = append(goalIDs, id)
			objects = append(objects, movableID)
		}
	}

	goal := make(Goal, len(goalIDs))
	for i, id := range goalIDs {
		goal[i] = packPoint(positions[id])
	}

	// Movables without goals come after the goal movables.
	for _, id := range ids {
		if id[0] == 'm' && !contains(objects, id) {
			objects = append(objects, id)
		}
	}

	initial := make(State, len(objects))
	for i, id := range objects {
		initial[i] = packPoint(positions[id])
	}

	collisions := NewObjectCollisions(len(objects))

	// Walls for the agent include both "aw" and "w" pixels.
	agentWalls := make(pointSet, len(pixels["w"])+len(pixels["aw"]))
	for px := range pixels["aw"] {
		agentWalls.add(px)
	}
	for px := range pixels["w"] {
		agentWalls.add(px)
	}

	for action := Action(0); action < NumActions; action++ {
		populateBoundedCollisions(collisions.Static[action][Agent], action,
			pixels["a"], agentWalls, width, height)
	}
	for m := 1; m < len(objects); m++ {
		for action := Action(0); action < NumActions; action++ {
			populateBoundedCollisions(collisions.Static[action][m], action,
				pixels[objects[m]], pixels["w"], width, height)
		}
	}

	// Collisions between object pairs. Nothing ever pushes the agent, so it
	// never appears as a pushee.
	for pusher := 0; pusher < len(objects); pusher++ {
		for pushee := 1; pushee < len(objects); pushee++ {
			if pusher == pushee {
				continue
			}
			for action := Action(0); action < NumActions; action++ {
				populateCollisions(collisions.Dynamic[action][pusher][pushee], action,
					pixels[objects[pusher]], pixels[objects[pushee]])
			}
		}
	}

	return NewPuzzle(initial, goal, collisions), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

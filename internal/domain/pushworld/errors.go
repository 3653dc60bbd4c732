package pushworld

import "errors"

// ErrInvalidPuzzle reports a puzzle file that cannot be parsed into a valid
// puzzle: unreadable input, ragged rows, a missing agent, a goal without a
// matching movable, or a grid too large to pack positions.
var ErrInvalidPuzzle = errors.New("invalid puzzle")

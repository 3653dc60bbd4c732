// Package benchmark solves every puzzle in a directory and records the
// outcomes.
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"pushworld/internal/app/solve"
)

// ErrNoPuzzles reports a benchmark directory containing no .pwp files.
var ErrNoPuzzles = errors.New("no puzzle files found")

// Request selects a directory of .pwp files and a planner mode.
type Request struct {
	Dir  string
	Mode string
}

// PuzzleResult is the outcome of one puzzle in a benchmark run.
type PuzzleResult struct {
	PuzzleName    string
	RunID         string
	Solved        bool
	PlanLength    int
	VisitedStates int
	Duration      time.Duration
}

// Response lists per-puzzle outcomes in file-name order.
type Response struct {
	Results []PuzzleResult
}

// UseCase runs the planner over a puzzle set, persisting one record per
// puzzle through the solver's repository.
type UseCase struct {
	Solver solve.UseCase
}

// Execute solves every .pwp file under the request directory, in sorted
// file-name order. A puzzle with no solution is an ordinary result; a
// puzzle that fails to parse aborts the run.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	entries, err := os.ReadDir(req.Dir)
	if err != nil {
		return Response{}, fmt.Errorf("read benchmark dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".pwp") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return Response{}, fmt.Errorf("%w: %s", ErrNoPuzzles, req.Dir)
	}
	sort.Strings(names)

	var resp Response
	for _, name := range names {
		result, err := u.Solver.Execute(ctx, solve.Request{
			PuzzlePath: filepath.Join(req.Dir, name),
			PuzzleName: name,
			Mode:       req.Mode,
		})
		if err != nil {
			return Response{}, fmt.Errorf("solve %s: %w", name, err)
		}
		resp.Results = append(resp.Results, PuzzleResult{
			PuzzleName:    name,
			RunID:         result.RunID,
			Solved:        result.Solved,
			PlanLength:    result.PlanLength,
			VisitedStates: result.VisitedStates,
			Duration:      result.Duration,
		})
	}
	return resp, nil
}

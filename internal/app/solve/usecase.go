// Package solve runs the planner over a single puzzle.
package solve

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pushworld/internal/app/ports"
	"pushworld/internal/domain/heuristic"
	"pushworld/internal/domain/pushworld"
	"pushworld/internal/domain/search"
)

// Planner modes.
const (
	ModeRGD        = "RGD"
	ModeNoveltyRGD = "N+RGD"
)

// noveltyWeight dominates any finite RGD cost, producing a lexicographic
// ordering of (novelty, RGD). Novelty is at most 3, so the product stays
// exactly representable in a float64.
const noveltyWeight = 1e6

// ErrUnknownMode reports an unsupported planner mode.
var ErrUnknownMode = errors.New("unrecognized mode")

// Request identifies a puzzle and how to solve it. Exactly one of
// PuzzlePath and PuzzleText must be set.
type Request struct {
	PuzzlePath string
	PuzzleText string
	PuzzleName string
	Mode       string
}

// Response carries the solve outcome. Solved false with a nil error means
// the goal is provably unreachable.
type Response struct {
	RunID         string
	Solved        bool
	Plan          string
	PlanLength    int
	VisitedStates int
	Duration      time.Duration
}

// UseCase wires the planner to an optional record repository and metrics
// recorder.
type UseCase struct {
	Records ports.SolveRecordRepository
	Metrics ports.SolveMetrics
	Now     func() time.Time
}

// Execute parses the puzzle, solves it in the requested mode, and records
// the outcome.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	puzzle, name, err := loadRequestPuzzle(req)
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		return Response{}, err
	}

	start := time.Now()
	plan, solved, visited, err := solveCounting(puzzle, req.Mode)
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		return Response{}, err
	}
	elapsed := time.Since(start)

	resp := Response{
		RunID:         uuid.NewString(),
		Solved:        solved,
		Plan:          plan.String(),
		PlanLength:    len(plan),
		VisitedStates: visited,
		Duration:      elapsed,
	}

	if u.Metrics != nil {
		if solved {
			u.Metrics.RecordSolved(req.Mode)
		} else {
			u.Metrics.RecordNoSolution(req.Mode)
		}
	}

	if u.Records != nil {
		now := time.Now()
		if u.Now != nil {
			now = u.Now()
		}
		record := ports.SolveRecord{
			RunID:         resp.RunID,
			PuzzleName:    name,
			Mode:          req.Mode,
			Solved:        solved,
			Plan:          resp.Plan,
			PlanLength:    resp.PlanLength,
			VisitedStates: visited,
			DurationMS:    elapsed.Milliseconds(),
			CreatedAt:     now,
		}
		if err := u.Records.Save(ctx, record); err != nil {
			return Response{}, fmt.Errorf("save solve record: %w", err)
		}
	}

	return resp, nil
}

func loadRequestPuzzle(req Request) (*pushworld.Puzzle, string, error) {
	switch {
	case req.PuzzlePath != "":
		p, err := pushworld.LoadPuzzle(req.PuzzlePath)
		if err != nil {
			return nil, "", err
		}
		name := req.PuzzleName
		if name == "" {
			name = req.PuzzlePath
		}
		return p, name, nil
	case req.PuzzleText != "":
		p, err := pushworld.ParsePuzzle(strings.NewReader(req.PuzzleText))
		if err != nil {
			return nil, "", err
		}
		return p, req.PuzzleName, nil
	default:
		return nil, "", fmt.Errorf("%w: request names no puzzle", pushworld.ErrInvalidPuzzle)
	}
}

// Solve runs best-first search over the puzzle with the heuristic stack
// selected by mode.
func Solve(puzzle *pushworld.Puzzle, mode string) (pushworld.Plan, bool, error) {
	plan, solved, _, err := solveCounting(puzzle, mode)
	return plan, solved, err
}

// solveCounting also reports how many states the search visited.
//
// RGD costs are integer-valued, so that mode uses the bucket frontier;
// the novelty-weighted sum produces a wider float spread and uses the
// Fibonacci frontier.
func solveCounting(puzzle *pushworld.Puzzle, mode string) (pushworld.Plan, bool, int, error) {
	visited := make(pushworld.StateSet)

	switch mode {
	case ModeRGD:
		rgd := heuristic.NewRecursiveGraphDistance(puzzle, true)
		frontier := search.NewBucketQueue[*search.Node, float64]()
		plan, solved, err := search.BestFirst(puzzle, rgd, frontier, visited)
		return plan, solved, len(visited), err
	case ModeNoveltyRGD:
		rgd := heuristic.NewRecursiveGraphDistance(puzzle, true)
		novelty := heuristic.NewNovelty(puzzle.NumObjects())
		h, err := heuristic.NewWeightedSum([]heuristic.Weighted{
			{Heuristic: novelty, Weight: noveltyWeight},
			{Heuristic: rgd, Weight: 1},
		})
		if err != nil {
			return nil, false, 0, err
		}
		frontier := search.NewFibonacciQueue[*search.Node, float64]()
		plan, solved, err := search.BestFirst(puzzle, h, frontier, visited)
		return plan, solved, len(visited), err
	default:
		return nil, false, 0, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

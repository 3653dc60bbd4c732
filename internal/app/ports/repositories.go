package ports

import (
	"context"
	"time"
)

// SolveRecord is the persisted outcome of one solve run.
type SolveRecord struct {
	RunID         string
	PuzzleName    string
	Mode          string
	Solved        bool
	Plan          string
	PlanLength    int
	VisitedStates int
	DurationMS    int64
	CreatedAt     time.Time
}

// SolveRecordRepository stores and retrieves solve outcomes.
type SolveRecordRepository interface {
	Save(ctx context.Context, record SolveRecord) error
	GetByRunID(ctx context.Context, runID string) (SolveRecord, error)
	ListByPuzzle(ctx context.Context, puzzleName string, limit int) ([]SolveRecord, error)
}

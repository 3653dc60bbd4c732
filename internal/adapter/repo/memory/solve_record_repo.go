// Package memory provides an in-process SolveRecordRepository for tests
// and single-binary deployments.
package memory

import (
	"context"
	"sync"

	"pushworld/internal/app/ports"
)

type SolveRecordRepo struct {
	mu      sync.RWMutex
	byRunID map[string]ports.SolveRecord
	order   []string
}

func NewSolveRecordRepo() *SolveRecordRepo {
	return &SolveRecordRepo{
		byRunID: make(map[string]ports.SolveRecord),
	}
}

func (r *SolveRecordRepo) Save(_ context.Context, record ports.SolveRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byRunID[record.RunID]; exists {
		return ports.ErrConflict
	}
	r.byRunID[record.RunID] = record
	r.order = append(r.order, record.RunID)
	return nil
}

func (r *SolveRecordRepo) GetByRunID(_ context.Context, runID string) (ports.SolveRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.byRunID[runID]
	if !ok {
		return ports.SolveRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r *SolveRecordRepo) ListByPuzzle(_ context.Context, puzzleName string, limit int) ([]ports.SolveRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []ports.SolveRecord
	// Newest first.
	for i := len(r.order) - 1; i >= 0; i-- {
		record := r.byRunID[r.order[i]]
		if record.PuzzleName != puzzleName {
			continue
		}
		out = append(out, record)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pushworld/internal/adapter/repo/gorm/model"
	"pushworld/internal/app/ports"
)

type SolveRecordRepo struct {
	db *gorm.DB
}

func NewSolveRecordRepo(db *gorm.DB) SolveRecordRepo {
	return SolveRecordRepo{db: db}
}

func (r SolveRecordRepo) Save(ctx context.Context, record ports.SolveRecord) error {
	m := model.SolveRecord{
		RunID:         record.RunID,
		PuzzleName:    record.PuzzleName,
		Mode:          record.Mode,
		Solved:        record.Solved,
		Plan:          record.Plan,
		PlanLength:    int32(record.PlanLength),
		VisitedStates: int32(record.VisitedStates),
		DurationMS:    record.DurationMS,
		CreatedAt:     record.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r SolveRecordRepo) GetByRunID(ctx context.Context, runID string) (ports.SolveRecord, error) {
	var m model.SolveRecord
	if err := r.db.WithContext(ctx).Where("run_id = ?", runID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SolveRecord{}, ports.ErrNotFound
		}
		return ports.SolveRecord{}, err
	}
	return toPort(m), nil
}

func (r SolveRecordRepo) ListByPuzzle(ctx context.Context, puzzleName string, limit int) ([]ports.SolveRecord, error) {
	q := r.db.WithContext(ctx).
		Where("puzzle_name = ?", puzzleName).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var ms []model.SolveRecord
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]ports.SolveRecord, 0, len(ms))
	for _, m := range ms {
		out = append(out, toPort(m))
	}
	return out, nil
}

func toPort(m model.SolveRecord) ports.SolveRecord {
	return ports.SolveRecord{
		RunID:         m.RunID,
		PuzzleName:    m.PuzzleName,
		Mode:          m.Mode,
		Solved:        m.Solved,
		Plan:          m.Plan,
		PlanLength:    int(m.PlanLength),
		VisitedStates: int(m.VisitedStates),
		DurationMS:    m.DurationMS,
		CreatedAt:     m.CreatedAt,
	}
}

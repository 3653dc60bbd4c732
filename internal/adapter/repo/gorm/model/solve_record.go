package model

import "time"

// SolveRecord is the persistence model of one solve run.
type SolveRecord struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RunID         string    `gorm:"column:run_id;uniqueIndex;size:36"`
	PuzzleName    string    `gorm:"column:puzzle_name;index"`
	Mode          string    `gorm:"column:mode;size:16"`
	Solved        bool      `gorm:"column:solved"`
	Plan          string    `gorm:"column:plan"`
	PlanLength    int32     `gorm:"column:plan_length"`
	VisitedStates int32     `gorm:"column:visited_states"`
	DurationMS    int64     `gorm:"column:duration_ms"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (SolveRecord) TableName() string { return "solve_records" }

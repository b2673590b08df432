package models

import "time"

const (
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// WorkflowRun represents the workflow_runs table, one row per dispatch run.
type WorkflowRun struct {
	ID              uint  `gorm:"primaryKey;autoIncrement"`
	ShipmentID      int64 `gorm:"index"`
	DispatchOrderID int64
	TrackingNumber  string `gorm:"size:100"`
	Status          string `gorm:"size:50;not null"`
	LabelPath       string `gorm:"size:256"`
	PrintoutPath    string `gorm:"size:256"`
	Error           string
	StartedAt       time.Time
	FinishedAt      *time.Time
}

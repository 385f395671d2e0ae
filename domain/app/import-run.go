package app

import (
	"context"
	"time"
)

// ImportRun is the relational audit row written once per finished job.
type ImportRun struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	JobID        string    `gorm:"size:64;index" json:"jobId"`
	TemplateName string    `gorm:"size:64" json:"templateName"`
	State        string    `gorm:"size:16" json:"state"`
	Processed    int       `json:"processed"`
	ErrorCount   int       `json:"errorCount"`
	FailedReason string    `json:"failedReason,omitempty"`
	DurationMs   int64     `json:"durationMs"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (ImportRun) TableName() string { return "import_runs" }

type RunHistory interface {
	Record(ctx context.Context, run *ImportRun) error
	Recent(ctx context.Context, limit int) ([]ImportRun, error)
}

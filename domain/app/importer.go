package app

import (
	"context"
	"fmt"

	"github.com/init-pkg/nova/errs"
)

type UploadStatus string

const (
	UploadStarted    UploadStatus = "started"
	UploadProcessing UploadStatus = "processing"
	UploadCompleted  UploadStatus = "completed"
	// UploadFailed completes the status domain for consumers decoding
	// events; run failures are delivered on the dedicated error event,
	// never as a progress status.
	UploadFailed UploadStatus = "failed"
)

// ProgressEvent is one milestone of a running import, pushed to the
// job's notification room. Progress never decreases within one job.
type ProgressEvent struct {
	JobID        string       `json:"jobId"`
	TemplateName string       `json:"templateName"`
	Status       UploadStatus `json:"status"`
	Progress     int          `json:"progress"`
	Message      string       `json:"message"`
	Processed    *int         `json:"processed,omitempty"`
	Total        *int         `json:"total,omitempty"`
	Errors       []string     `json:"errors,omitempty"`
}

// RowError is a single data row's validation failure. It is collected,
// never thrown past the row boundary.
type RowError struct {
	RowNumber int
	Message   string
}

// Error renders the row error the way it appears in ImportOutcome.Errors.
// RowNumber already accounts for the header line.
func (e RowError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.RowNumber, e.Message)
}

// ImportOutcome is the terminal value of one import run. It is stored as
// the job's return value and broadcast as the completion event.
type ImportOutcome struct {
	Message   string   `json:"message"`
	Processed int      `json:"processed"`
	Errors    []string `json:"errors"`
}

type ImportService interface {
	// ProcessUpload validates and persists one workbook. Row-level failures
	// are reported inside the outcome; run-level failures are returned.
	ProcessUpload(ctx context.Context, templateName string, file []byte, jobID string) (*ImportOutcome, errs.Error)
}

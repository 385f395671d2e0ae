package app

import (
	"context"

	"github.com/init-pkg/nova/errs"
)

// UploadJobName is the single job name carried on the durable queue.
const UploadJobName = "upload-excel"

type JobState string

const (
	JobStateWaiting   JobState = "waiting"
	JobStateActive    JobState = "active"
	JobStateCompleted JobState = "completed"
	JobStateFailed    JobState = "failed"
)

// UploadJobPayload is the wire form of one queued import.
// JobID is the caller-supplied correlation id, assigned before the job is
// queued so that clients can subscribe to progress ahead of execution.
type UploadJobPayload struct {
	TemplateName string `json:"templateName"`
	Buffer       string `json:"buffer"`
	JobID        string `json:"jobId"`
}

// JobInfo is the polled read model of one job.
type JobInfo struct {
	ID           string         `json:"id"`
	State        JobState       `json:"state"`
	Progress     int            `json:"progress"`
	AttemptsMade int            `json:"attemptsMade"`
	ReturnValue  *ImportOutcome `json:"returnvalue,omitempty"`
	FailedReason string         `json:"failedReason,omitempty"`
	TemplateName string         `json:"templateName,omitempty"`
}

type JobQueue interface {
	Enqueue(ctx context.Context, payload UploadJobPayload) errs.Error
}

type JobStore interface {
	// GetJob returns nil without error when the job is unknown.
	GetJob(ctx context.Context, id string) (*JobInfo, error)
}

// UploadJobHandler executes one delivered job attempt.
type UploadJobHandler interface {
	Handle(ctx context.Context, payload UploadJobPayload) (*ImportOutcome, error)
}

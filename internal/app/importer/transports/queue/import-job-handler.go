package import_job_handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/init-pkg/excel-import/domain/app"
)

// ImportJobHandler is the queue-facing adapter around the import run.
// It decodes one delivered payload, executes the run, and makes sure the
// notification room hears about the terminal result even when the run
// fails.
type ImportJobHandler struct {
	service  app.ImportService
	notifier app.UploadNotifier
	history  app.RunHistory
	log      *slog.Logger
}

var _ app.UploadJobHandler = &ImportJobHandler{}

func New(service app.ImportService, notifier app.UploadNotifier, history app.RunHistory, log *slog.Logger) *ImportJobHandler {
	return &ImportJobHandler{
		service:  service,
		notifier: notifier,
		history:  history,
		log:      log,
	}
}

func (this *ImportJobHandler) Handle(ctx context.Context, payload app.UploadJobPayload) (*app.ImportOutcome, error) {
	startedAt := time.Now()
	this.log.Info("queue.upload.received",
		"templateName", payload.TemplateName,
		"jobId", payload.JobID,
	)

	file, err := base64.StdEncoding.DecodeString(payload.Buffer)
	if err != nil {
		decodeErr := fmt.Errorf("decode file payload: %w", err)
		this.fail(ctx, payload, decodeErr, startedAt)
		return nil, decodeErr
	}

	outcome, e := this.service.ProcessUpload(ctx, payload.TemplateName, file, payload.JobID)
	if e != nil {
		this.fail(ctx, payload, e, startedAt)
		return nil, e
	}

	// The completion notification is distinct from the completed progress
	// event the run already emitted; subscribers choose which to consume.
	this.notifier.EmitCompletion(ctx, payload.JobID, outcome)
	this.record(ctx, payload, app.JobStateCompleted, outcome, "", startedAt)

	this.log.Info("queue.upload.processed",
		"templateName", payload.TemplateName,
		"jobId", payload.JobID,
		"processed", outcome.Processed,
		"errorsCount", len(outcome.Errors),
	)
	return outcome, nil
}

func (this *ImportJobHandler) fail(ctx context.Context, payload app.UploadJobPayload, cause error, startedAt time.Time) {
	this.notifier.EmitError(ctx, payload.JobID, cause.Error())
	this.record(ctx, payload, app.JobStateFailed, nil, cause.Error(), startedAt)
	this.log.Error("queue.upload.failed",
		"templateName", payload.TemplateName,
		"jobId", payload.JobID,
		"error", cause,
	)
}

func (this *ImportJobHandler) record(ctx context.Context, payload app.UploadJobPayload, state app.JobState, outcome *app.ImportOutcome, failedReason string, startedAt time.Time) {
	run := &app.ImportRun{
		JobID:        payload.JobID,
		TemplateName: payload.TemplateName,
		State:        string(state),
		FailedReason: failedReason,
		DurationMs:   time.Since(startedAt).Milliseconds(),
	}
	if outcome != nil {
		run.Processed = outcome.Processed
		run.ErrorCount = len(outcome.Errors)
	}

	if err := this.history.Record(ctx, run); err != nil {
		this.log.Error("queue.upload.history_failed", "jobId", payload.JobID, "error", err)
	}
}

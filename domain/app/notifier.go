package app

import (
	"context"
	"encoding/json"
)

// Notification channel event names, server to client.
const (
	EventUploadProgress  = "upload-progress"
	EventUploadCompleted = "upload-completed"
	EventUploadError     = "upload-error"
	EventPong            = "pong"
)

// RoomForJob derives the notification room of a job. Publishers and
// subscribers use the same derivation so they arrive independently.
func RoomForJob(jobID string) string {
	return "upload-" + jobID
}

type UploadResult struct {
	JobID     string         `json:"jobId"`
	Result    *ImportOutcome `json:"result"`
	Timestamp string         `json:"timestamp"`
}

type UploadError struct {
	JobID     string `json:"jobId"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// ChannelMessage is the envelope carried on a notification room.
type ChannelMessage struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// UploadNotifier pushes best-effort events to a job's room. Calls never
// block the import and never surface delivery failures to the caller;
// the authoritative outcome is the queue's stored return value.
type UploadNotifier interface {
	EmitProgress(ctx context.Context, jobID string, event ProgressEvent)
	EmitCompletion(ctx context.Context, jobID string, result *ImportOutcome)
	EmitError(ctx context.Context, jobID string, message string)
}

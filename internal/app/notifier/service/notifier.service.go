package notifier_service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/init-pkg/excel-import/domain/app"
	"github.com/redis/go-redis/v9"
)

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Service pushes upload events to per-job rooms over Redis pub/sub.
// Delivery is best-effort: no acknowledgment, no retry, no backlog.
// Clients that join a room late miss prior events.
type Service struct {
	rdb *redis.Client
	pub publisher
	log *slog.Logger
}

var _ app.UploadNotifier = &Service{}

func New(rdb *redis.Client, log *slog.Logger) *Service {
	return &Service{rdb: rdb, pub: rdb, log: log}
}

func (s *Service) EmitProgress(ctx context.Context, jobID string, event app.ProgressEvent) {
	s.publish(ctx, jobID, app.EventUploadProgress, event)
	s.log.Info("notify.progress.emit",
		"jobId", jobID,
		"status", string(event.Status),
		"progress", event.Progress,
	)
}

func (s *Service) EmitCompletion(ctx context.Context, jobID string, result *app.ImportOutcome) {
	s.publish(ctx, jobID, app.EventUploadCompleted, app.UploadResult{
		JobID:     jobID,
		Result:    result,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	s.log.Info("notify.completion.emit", "jobId", jobID, "processed", result.Processed)
}

func (s *Service) EmitError(ctx context.Context, jobID string, message string) {
	s.publish(ctx, jobID, app.EventUploadError, app.UploadError{
		JobID:     jobID,
		Error:     message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	s.log.Error("notify.error.emit", "jobId", jobID, "error", message)
}

// publish is fire-and-forget: a slow or failed channel must never stall
// or abort the import that produced the event.
func (s *Service) publish(ctx context.Context, jobID, event string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("notify.payload.marshal_failed", "jobId", jobID, "event", event, "error", err)
		return
	}

	envelope, err := json.Marshal(app.ChannelMessage{Event: event, Payload: raw})
	if err != nil {
		s.log.Error("notify.envelope.marshal_failed", "jobId", jobID, "event", event, "error", err)
		return
	}

	if err := s.pub.Publish(ctx, app.RoomForJob(jobID), envelope).Err(); err != nil {
		s.log.Error("notify.publish_failed", "jobId", jobID, "event", event, "error", err)
	}
}

// Subscribe joins a job's room and streams its events until the returned
// leave function is called. There is no replay for events already sent.
func (s *Service) Subscribe(ctx context.Context, jobID string) (<-chan app.ChannelMessage, func() error) {
	ps := s.rdb.Subscribe(ctx, app.RoomForJob(jobID))
	out := make(chan app.ChannelMessage)
	go s.forward(ctx, jobID, ps.Channel(), out)

	s.log.Info("notify.room.joined", "jobId", jobID, "room", app.RoomForJob(jobID))
	return out, ps.Close
}

// forward decodes raw room messages onto out until the source closes or
// the subscriber's context ends. Undecodable messages are skipped.
func (s *Service) forward(ctx context.Context, jobID string, in <-chan *redis.Message, out chan<- app.ChannelMessage) {
	defer close(out)
	for msg := range in {
		var m app.ChannelMessage
		if err := json.Unmarshal([]byte(msg.Payload), &m); err != nil {
			s.log.Error("notify.subscribe.decode_failed", "jobId", jobID, "error", err)
			continue
		}
		select {
		case out <- m:
		case <-ctx.Done():
			return
		}
	}
}

// Ping reports channel liveness; it carries no business data.
func (s *Service) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

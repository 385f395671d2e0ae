package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/init-pkg/excel-import/domain/app"
	"github.com/init-pkg/excel-import/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
)

type workerStore interface {
	MarkActive(ctx context.Context, id string) (int, error)
	MarkWaiting(ctx context.Context, id string) error
	Complete(ctx context.Context, id string, outcome *app.ImportOutcome) error
	Fail(ctx context.Context, id, reason string) error
}

// Worker pulls upload jobs off the durable queue and drives them through
// the handler. Delivery is at-least-once: a job is re-queued after a
// failed attempt only while attemptsMade < MaxAttempts.
type Worker struct {
	conn        *amqp.Connection
	store       workerStore
	handler     app.UploadJobHandler
	log         *slog.Logger
	queueName   string
	concurrency int
	maxAttempts int

	ch   *amqp.Channel
	once sync.Once
}

func NewWorker(conn *amqp.Connection, store *Store, handler app.UploadJobHandler, cfg *config.Config, log *slog.Logger) *Worker {
	concurrency := cfg.Import.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	maxAttempts := cfg.Import.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	return &Worker{
		conn:        conn,
		store:       store,
		handler:     handler,
		log:         log,
		queueName:   cfg.Import.QueueName,
		concurrency: concurrency,
		maxAttempts: maxAttempts,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	ch, err := w.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	w.ch = ch

	if _, err := ch.QueueDeclare(w.queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", w.queueName, err)
	}
	if err := ch.Qos(w.concurrency, 0, false); err != nil {
		return fmt.Errorf("set prefetch: %w", err)
	}

	deliveries, err := ch.Consume(w.queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume queue %s: %w", w.queueName, err)
	}

	w.once.Do(func() {
		for i := 0; i < w.concurrency; i++ {
			go w.loop(ctx, deliveries)
		}
	})

	w.log.Info("queue.worker.started", "queue", w.queueName, "concurrency", w.concurrency)
	return nil
}

func (w *Worker) Stop() error {
	if w.ch != nil {
		return w.ch.Close()
	}
	return nil
}

func (w *Worker) loop(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for d := range deliveries {
		w.handle(ctx, d)
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	var payload app.UploadJobPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		w.log.Error("queue.payload.decode_failed", "error", err)
		_ = d.Ack(false)
		return
	}
	if payload.JobID == "" {
		// Submission validation rejects these; a message without a job id
		// cannot be reported anywhere, so it is dropped.
		w.log.Error("queue.payload.missing_job_id", "templateName", payload.TemplateName)
		_ = d.Ack(false)
		return
	}

	attempts, err := w.store.MarkActive(ctx, payload.JobID)
	if err != nil {
		w.log.Error("queue.job.mark_active_failed", "jobId", payload.JobID, "error", err)
		attempts = w.maxAttempts
	}

	outcome, handleErr := w.handler.Handle(ctx, payload)
	if handleErr != nil {
		if attempts < w.maxAttempts {
			if err := w.store.MarkWaiting(ctx, payload.JobID); err != nil {
				w.log.Error("queue.job.requeue_state_failed", "jobId", payload.JobID, "error", err)
			}
			w.log.Warn("queue.job.requeued", "jobId", payload.JobID, "attempt", attempts)
			_ = d.Nack(false, true)
			return
		}

		if err := w.store.Fail(ctx, payload.JobID, handleErr.Error()); err != nil {
			w.log.Error("queue.job.fail_state_failed", "jobId", payload.JobID, "error", err)
		}
		_ = d.Ack(false)
		return
	}

	if err := w.store.Complete(ctx, payload.JobID, outcome); err != nil {
		w.log.Error("queue.job.complete_state_failed", "jobId", payload.JobID, "error", err)
	}
	_ = d.Ack(false)
}

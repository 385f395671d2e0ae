package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/init-pkg/excel-import/domain/app"
	"github.com/init-pkg/excel-import/internal/config"
	"github.com/init-pkg/nova/errs"
	amqp "github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type jobCreator interface {
	Create(ctx context.Context, id, templateName string) error
}

// Queue submits upload jobs: the read model entry is written first so a
// client can poll the job before a worker ever sees it, then the payload
// is published as a persistent message on the durable queue.
type Queue struct {
	pub       publisher
	store     jobCreator
	log       *slog.Logger
	queueName string
}

var _ app.JobQueue = &Queue{}

func NewQueue(conn *amqp.Connection, store *Store, cfg *config.Config, log *slog.Logger) (*Queue, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(cfg.Import.QueueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue %s: %w", cfg.Import.QueueName, err)
	}

	return newQueue(ch, store, cfg.Import.QueueName, log), nil
}

func newQueue(pub publisher, store jobCreator, queueName string, log *slog.Logger) *Queue {
	return &Queue{pub: pub, store: store, log: log, queueName: queueName}
}

func (q *Queue) Enqueue(ctx context.Context, payload app.UploadJobPayload) errs.Error {
	if err := q.enqueue(ctx, payload); err != nil {
		return errs.WrapAppError(err, &errs.ErrorOpts{})
	}

	return nil
}

func (q *Queue) enqueue(ctx context.Context, payload app.UploadJobPayload) error {
	// A correlation id is mandatory at submission time; degrading to a
	// sentinel would break room addressing for every subscriber.
	if payload.JobID == "" {
		return errors.New("job id is required")
	}
	if payload.TemplateName == "" {
		return errors.New("template name is required")
	}
	if payload.Buffer == "" {
		return errors.New("file payload is required")
	}

	if err := q.store.Create(ctx, payload.JobID, payload.TemplateName); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal job payload: %w", err)
	}

	err = q.pub.PublishWithContext(ctx, "", q.queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    payload.JobID,
		Type:         app.UploadJobName,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish job %s: %w", payload.JobID, err)
	}

	q.log.Info("queue.upload.enqueued", "jobId", payload.JobID, "templateName", payload.TemplateName)
	return nil
}

package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/init-pkg/excel-import/domain/app"
	amqp "github.com/rabbitmq/amqp091-go"
)

type fakePublisher struct {
	err       error
	published []amqp.Publishing
	keys      []string
}

func (f *fakePublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	f.keys = append(f.keys, key)
	return nil
}

type fakeJobCreator struct {
	err     error
	created []string
}

func (f *fakeJobCreator) Create(ctx context.Context, id, templateName string) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, id)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func validPayload() app.UploadJobPayload {
	return app.UploadJobPayload{
		TemplateName: app.TemplateUsers,
		Buffer:       "ZmlsZQ==",
		JobID:        "upload-1-abc",
	}
}

func TestEnqueuePublishesPersistentMessage(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{}
	creator := &fakeJobCreator{}
	q := newQueue(pub, creator, "upload-excel", discardLogger())

	if e := q.Enqueue(context.Background(), validPayload()); e != nil {
		t.Fatalf("unexpected error: %v", e)
	}

	if len(creator.created) != 1 || creator.created[0] != "upload-1-abc" {
		t.Errorf("created jobs: %v", creator.created)
	}
	if len(pub.published) != 1 {
		t.Fatalf("published: got %d, want 1", len(pub.published))
	}
	if pub.keys[0] != "upload-excel" {
		t.Errorf("routing key: got %s", pub.keys[0])
	}

	msg := pub.published[0]
	if msg.DeliveryMode != amqp.Persistent {
		t.Error("message is not persistent")
	}
	if msg.Type != app.UploadJobName {
		t.Errorf("message type: got %s", msg.Type)
	}
	if msg.MessageId != "upload-1-abc" {
		t.Errorf("message id: got %s", msg.MessageId)
	}

	var decoded app.UploadJobPayload
	if err := json.Unmarshal(msg.Body, &decoded); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if decoded != validPayload() {
		t.Errorf("body round trip: got %+v", decoded)
	}
}

func TestEnqueueValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*app.UploadJobPayload)
	}{
		{"missing job id", func(p *app.UploadJobPayload) { p.JobID = "" }},
		{"missing template", func(p *app.UploadJobPayload) { p.TemplateName = "" }},
		{"missing buffer", func(p *app.UploadJobPayload) { p.Buffer = "" }},
	}

	for _, tc := range cases {
		pub := &fakePublisher{}
		creator := &fakeJobCreator{}
		q := newQueue(pub, creator, "upload-excel", discardLogger())

		p := validPayload()
		tc.mutate(&p)

		if e := q.Enqueue(context.Background(), p); e == nil {
			t.Errorf("%s: expected error", tc.name)
		}
		if len(pub.published) != 0 {
			t.Errorf("%s: message published despite rejection", tc.name)
		}
		if len(creator.created) != 0 {
			t.Errorf("%s: read model written despite rejection", tc.name)
		}
	}
}

func TestEnqueueStoreFailureSkipsPublish(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{}
	creator := &fakeJobCreator{err: errors.New("redis down")}
	q := newQueue(pub, creator, "upload-excel", discardLogger())

	if e := q.Enqueue(context.Background(), validPayload()); e == nil {
		t.Fatal("expected error")
	}
	if len(pub.published) != 0 {
		t.Error("message published despite store failure")
	}
}

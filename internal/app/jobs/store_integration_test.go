package jobs

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/init-pkg/excel-import/domain/app"
	"github.com/redis/go-redis/v9"
)

func TestStoreJobLifecycleIntegration(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()

	ctx := context.Background()
	store := NewStore(rdb, discardLogger())
	jobID := "upload-test-" + uuid.NewString()
	defer rdb.Del(ctx, jobKey(jobID))

	if err := store.Create(ctx, jobID, app.TemplateUsers); err != nil {
		t.Fatalf("create: %v", err)
	}

	job, err := store.GetJob(ctx, jobID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if job == nil || job.State != app.JobStateWaiting || job.TemplateName != app.TemplateUsers {
		t.Fatalf("job after create: %+v", job)
	}

	attempt, err := store.MarkActive(ctx, jobID)
	if err != nil {
		t.Fatalf("mark active: %v", err)
	}
	if attempt != 1 {
		t.Errorf("attempt: got %d, want 1", attempt)
	}

	outcome := &app.ImportOutcome{Message: "Processed 3 of 3 rows", Processed: 3, Errors: []string{}}
	if err := store.Complete(ctx, jobID, outcome); err != nil {
		t.Fatalf("complete: %v", err)
	}

	job, err = store.GetJob(ctx, jobID)
	if err != nil {
		t.Fatalf("get after complete: %v", err)
	}
	if job.State != app.JobStateCompleted || job.Progress != 100 || job.AttemptsMade != 1 {
		t.Errorf("job after complete: %+v", job)
	}
	if job.ReturnValue == nil || job.ReturnValue.Processed != 3 {
		t.Errorf("return value: %+v", job.ReturnValue)
	}
}

func TestStoreGetJobUnknownIntegration(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()

	store := NewStore(rdb, discardLogger())

	job, err := store.GetJob(context.Background(), "upload-missing-"+uuid.NewString())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if job != nil {
		t.Errorf("unknown job: got %+v, want nil", job)
	}
}

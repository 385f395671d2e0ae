package history_service_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/init-pkg/excel-import/domain/app"
	history_service "github.com/init-pkg/excel-import/internal/app/history/service"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRecordAndRecentIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := db.AutoMigrate(&app.ImportRun{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	service := history_service.New(db, log)
	ctx := context.Background()

	jobID := "upload-test-" + uuid.NewString()
	run := &app.ImportRun{
		JobID:        jobID,
		TemplateName: app.TemplateUsers,
		State:        string(app.JobStateCompleted),
		Processed:    5,
		ErrorCount:   1,
		DurationMs:   120,
	}
	if err := service.Record(ctx, run); err != nil {
		t.Fatalf("record: %v", err)
	}
	defer db.Delete(&app.ImportRun{}, "job_id = ?", jobID)

	runs, err := service.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}

	found := false
	for _, r := range runs {
		if r.JobID == jobID {
			found = true
			if r.Processed != 5 || r.ErrorCount != 1 || r.State != string(app.JobStateCompleted) {
				t.Errorf("run: %+v", r)
			}
		}
	}
	if !found {
		t.Error("recorded run not returned by Recent")
	}
}

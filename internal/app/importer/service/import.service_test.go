package importer_service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/init-pkg/excel-import/domain/app"
	importer_service "github.com/init-pkg/excel-import/internal/app/importer/service"
	template_service "github.com/init-pkg/excel-import/internal/app/template/service"
	"github.com/init-pkg/excel-import/internal/config"
	"github.com/init-pkg/nova/errs"
	"github.com/xuri/excelize/v2"
)

type fakeNotifier struct {
	progress    []app.ProgressEvent
	completions []*app.ImportOutcome
	errMessages []string
}

func (f *fakeNotifier) EmitProgress(ctx context.Context, jobID string, event app.ProgressEvent) {
	f.progress = append(f.progress, event)
}

func (f *fakeNotifier) EmitCompletion(ctx context.Context, jobID string, result *app.ImportOutcome) {
	f.completions = append(f.completions, result)
}

func (f *fakeNotifier) EmitError(ctx context.Context, jobID string, message string) {
	f.errMessages = append(f.errMessages, message)
}

type fakeRecordStore struct {
	insertErr   error
	insertCalls int
	index       string
	inserted    []app.MappedRecord
}

func (f *fakeRecordStore) BulkInsert(ctx context.Context, index string, records []app.MappedRecord) error {
	f.insertCalls++
	f.index = index
	f.inserted = append(f.inserted, records...)
	return f.insertErr
}

func (f *fakeRecordStore) List(ctx context.Context, index string, page, limit int) ([]map[string]any, error) {
	return nil, nil
}

// fakeTemplates serves a template the row mapper has no entry for.
type fakeTemplates struct {
	tpl app.Template
}

func (f *fakeTemplates) List() []app.Template { return []app.Template{f.tpl} }

func (f *fakeTemplates) Get(name string) (*app.Template, errs.Error) { return &f.tpl, nil }

func (f *fakeTemplates) BuildWorkbook(name string, includeSample bool) ([]byte, errs.Error) {
	return nil, nil
}

func (f *fakeTemplates) Schema(name string) ([]byte, errs.Error) { return nil, nil }

func (f *fakeTemplates) Export(ctx context.Context, name string, limit int) ([]byte, errs.Error) {
	return nil, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newImportService(t *testing.T, records app.RecordStore, notifier app.UploadNotifier) *importer_service.ImportService {
	t.Helper()

	cfg := &config.Config{Import: config.ImportConfig{MaxRows: 10000}}
	templates := template_service.New(records, cfg, testLogger())
	return importer_service.New(templates, records, notifier, testLogger())
}

// buildWorkbook writes user rows into an xlsx buffer, cells in the users
// template column order.
func buildUserWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"First Name", "Last Name", "Email", "Phone", "Birth Date", "Is Active"}
	for j, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		f.SetCellValue("Sheet1", cell, header)
	}
	for i, row := range rows {
		for j, value := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue("Sheet1", cell, value)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestProcessUploadPartialSuccess(t *testing.T) {
	t.Parallel()

	file := buildUserWorkbook(t, [][]string{
		{"John", "Doe", "john@example.com"},
		{"Jane", "Smith", "jane@example.com"},
		{"", "Broken", "broken@example.com"},
	})

	store := &fakeRecordStore{}
	notifier := &fakeNotifier{}
	service := newImportService(t, store, notifier)

	outcome, e := service.ProcessUpload(context.Background(), app.TemplateUsers, file, "upload-1-abc")
	if e != nil {
		t.Fatalf("unexpected error: %v", e)
	}

	if outcome.Processed != 2 {
		t.Errorf("processed: got %d, want 2", outcome.Processed)
	}
	if outcome.Message != "Processed 2 of 3 rows" {
		t.Errorf("message: got %q", outcome.Message)
	}
	if len(outcome.Errors) != 1 || outcome.Errors[0] != "Row 4: Field 'firstName' is required" {
		t.Errorf("errors: got %v", outcome.Errors)
	}

	if store.insertCalls != 1 {
		t.Fatalf("insert calls: got %d, want 1", store.insertCalls)
	}
	if store.index != app.TemplateUsers {
		t.Errorf("index: got %s", store.index)
	}
	if len(store.inserted) != 2 {
		t.Errorf("inserted: got %d, want 2", len(store.inserted))
	}
}

func TestProcessUploadProgressMilestones(t *testing.T) {
	t.Parallel()

	file := buildUserWorkbook(t, [][]string{
		{"John", "Doe", "john@example.com"},
		{"Jane", "Smith", "jane@example.com"},
	})

	notifier := &fakeNotifier{}
	service := newImportService(t, &fakeRecordStore{}, notifier)

	if _, e := service.ProcessUpload(context.Background(), app.TemplateUsers, file, "upload-2-def"); e != nil {
		t.Fatalf("unexpected error: %v", e)
	}

	events := notifier.progress
	if len(events) == 0 {
		t.Fatal("expected progress events")
	}

	if events[0].Status != app.UploadStarted || events[0].Progress != 0 {
		t.Errorf("first event: got %s/%d, want started/0", events[0].Status, events[0].Progress)
	}
	last := events[len(events)-1]
	if last.Status != app.UploadCompleted || last.Progress != 100 {
		t.Errorf("last event: got %s/%d, want completed/100", last.Status, last.Progress)
	}

	completed := 0
	prev := -1
	for _, ev := range events {
		if ev.Progress < prev {
			t.Errorf("progress decreased: %d after %d", ev.Progress, prev)
		}
		prev = ev.Progress
		if ev.Status == app.UploadCompleted {
			completed++
		}
	}
	if completed != 1 {
		t.Errorf("completed events: got %d, want 1", completed)
	}

	// The 10..90 interpolation lands on 90 after the final row of two.
	sawSaving := false
	for _, ev := range events {
		if ev.Message == "Saving to database..." {
			sawSaving = true
			if ev.Progress != 90 {
				t.Errorf("saving milestone: got %d, want 90", ev.Progress)
			}
		}
	}
	if !sawSaving {
		t.Error("missing saving milestone")
	}
}

func TestProcessUploadEmptyWorkbook(t *testing.T) {
	t.Parallel()

	file := buildUserWorkbook(t, nil)

	store := &fakeRecordStore{}
	notifier := &fakeNotifier{}
	service := newImportService(t, store, notifier)

	outcome, e := service.ProcessUpload(context.Background(), app.TemplateUsers, file, "upload-3-ghi")
	if e != nil {
		t.Fatalf("unexpected error: %v", e)
	}

	if outcome.Processed != 0 {
		t.Errorf("processed: got %d, want 0", outcome.Processed)
	}
	if outcome.Errors == nil || len(outcome.Errors) != 0 {
		t.Errorf("errors: got %v, want empty non-nil", outcome.Errors)
	}
	if store.insertCalls != 0 {
		t.Errorf("insert calls: got %d, want 0", store.insertCalls)
	}

	if len(notifier.progress) != 2 {
		t.Fatalf("events: got %d, want started and completed", len(notifier.progress))
	}
	last := notifier.progress[1]
	if last.Status != app.UploadCompleted || last.Progress != 100 {
		t.Errorf("last event: got %s/%d", last.Status, last.Progress)
	}
}

func TestProcessUploadUnknownTemplate(t *testing.T) {
	t.Parallel()

	file := buildUserWorkbook(t, [][]string{{"John", "Doe", "john@example.com"}})

	notifier := &fakeNotifier{}
	service := newImportService(t, &fakeRecordStore{}, notifier)

	_, e := service.ProcessUpload(context.Background(), "widgets", file, "upload-4-jkl")
	if e == nil {
		t.Fatal("expected error")
	}
	if len(notifier.progress) != 0 {
		t.Errorf("no progress expected before template resolution, got %d events", len(notifier.progress))
	}
}

func TestProcessUploadPersistenceFailure(t *testing.T) {
	t.Parallel()

	file := buildUserWorkbook(t, [][]string{{"John", "Doe", "john@example.com"}})

	store := &fakeRecordStore{insertErr: errors.New("bulk refused")}
	notifier := &fakeNotifier{}
	service := newImportService(t, store, notifier)

	_, e := service.ProcessUpload(context.Background(), app.TemplateUsers, file, "upload-5-mno")
	if e == nil {
		t.Fatal("expected error")
	}

	for _, ev := range notifier.progress {
		if ev.Status == app.UploadCompleted {
			t.Error("completion emitted despite persistence failure")
		}
	}
}

func TestProcessUploadAllRowsInvalidSkipsInsert(t *testing.T) {
	t.Parallel()

	file := buildUserWorkbook(t, [][]string{
		{"", "Doe", "john@example.com"},
		{"Jane", "", "jane@example.com"},
	})

	store := &fakeRecordStore{}
	notifier := &fakeNotifier{}

	service := newImportService(t, store, notifier)

	outcome, e := service.ProcessUpload(context.Background(), app.TemplateUsers, file, "upload-6-pqr")
	if e != nil {
		t.Fatalf("unexpected error: %v", e)
	}

	if outcome.Processed != 0 {
		t.Errorf("processed: got %d, want 0", outcome.Processed)
	}
	if len(outcome.Errors) != 2 {
		t.Errorf("errors: got %v", outcome.Errors)
	}
	if store.insertCalls != 0 {
		t.Errorf("insert calls: got %d, want 0", store.insertCalls)
	}
	if outcome.Message != "Processed 0 of 2 rows" {
		t.Errorf("message: got %q", outcome.Message)
	}
}

func TestProcessUploadUnmappedCatalogEntry(t *testing.T) {
	t.Parallel()

	file := buildUserWorkbook(t, [][]string{
		{"John", "Doe", "john@example.com"},
		{"Jane", "Smith", "jane@example.com"},
	})

	store := &fakeRecordStore{}
	notifier := &fakeNotifier{}

	// A catalog entry without a mapper degrades to per-row errors rather
	// than a run-level failure.
	templates := &fakeTemplates{tpl: app.Template{
		Name: "widgets",
		Columns: []app.Column{
			{Header: "First Name", Key: "firstName"},
			{Header: "Last Name", Key: "lastName"},
			{Header: "Email", Key: "email"},
		},
	}}
	service := importer_service.New(templates, store, notifier, testLogger())

	outcome, e := service.ProcessUpload(context.Background(), "widgets", file, "upload-7-stu")
	if e != nil {
		t.Fatalf("unexpected error: %v", e)
	}

	if outcome.Processed != 0 {
		t.Errorf("processed: got %d, want 0", outcome.Processed)
	}
	if len(outcome.Errors) != 2 || outcome.Errors[0] != "Row 2: Unsupported template 'widgets'" {
		t.Errorf("errors: got %v", outcome.Errors)
	}
	if store.insertCalls != 0 {
		t.Errorf("insert calls: got %d, want 0", store.insertCalls)
	}
}

package importer_service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/init-pkg/excel-import/domain/app"
	"github.com/init-pkg/nova/errs"
	"github.com/xuri/excelize/v2"
)

// ImportService runs one import end to end: workbook parse, row-by-row
// transform, milestone progress emission, one batch persist.
type ImportService struct {
	templates app.TemplateService
	records   app.RecordStore
	notifier  app.UploadNotifier
	log       *slog.Logger
}

var _ app.ImportService = &ImportService{}

func New(templates app.TemplateService, records app.RecordStore, notifier app.UploadNotifier, log *slog.Logger) *ImportService {
	return &ImportService{
		templates: templates,
		records:   records,
		notifier:  notifier,
		log:       log,
	}
}

func (this *ImportService) ProcessUpload(ctx context.Context, templateName string, file []byte, jobID string) (*app.ImportOutcome, errs.Error) {
	outcome, err := this.run(ctx, templateName, file, jobID)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}

	return outcome, nil
}

func (this *ImportService) run(ctx context.Context, templateName string, file []byte, jobID string) (*app.ImportOutcome, error) {
	startedAt := time.Now()
	this.log.Info("upload.process.start",
		"templateName", templateName,
		"size", len(file),
		"jobId", jobID,
	)

	tpl, e := this.templates.Get(templateName)
	if e != nil {
		return nil, e
	}

	rows, err := readDataRows(file, tpl)
	if err != nil {
		return nil, err
	}
	total := len(rows)

	if jobID != "" {
		this.emit(ctx, jobID, app.ProgressEvent{
			JobID:        jobID,
			TemplateName: templateName,
			Status:       app.UploadStarted,
			Progress:     0,
			Message:      "Starting file processing...",
		})
	}

	if total == 0 {
		// Nothing to interpolate over; go straight to the terminal event.
		outcome := &app.ImportOutcome{
			Message:   "Processed 0 of 0 rows",
			Processed: 0,
			Errors:    []string{},
		}
		if jobID != "" {
			this.emit(ctx, jobID, app.ProgressEvent{
				JobID:        jobID,
				TemplateName: templateName,
				Status:       app.UploadCompleted,
				Progress:     100,
				Message:      "Successfully processed 0 rows",
				Processed:    intPtr(0),
				Total:        intPtr(0),
			})
		}
		this.log.Info("upload.process.success",
			"templateName", templateName,
			"processed", 0,
			"total", 0,
			"jobId", jobID,
		)
		return outcome, nil
	}

	if jobID != "" {
		this.emit(ctx, jobID, app.ProgressEvent{
			JobID:        jobID,
			TemplateName: templateName,
			Status:       app.UploadProcessing,
			Progress:     10,
			Message:      fmt.Sprintf("Processing %d rows...", total),
			Processed:    intPtr(0),
			Total:        intPtr(total),
		})
	}

	now := time.Now()
	batch := make([]app.MappedRecord, 0, total)
	var rowErrors []string

	for i, row := range rows {
		record, mapErr := MapRow(tpl.Name, row, now)
		if mapErr != nil {
			// One bad row never aborts the run. +2 accounts for the
			// header line and 1-based numbering.
			rowError := app.RowError{RowNumber: i + 2, Message: mapErr.Error()}
			rowErrors = append(rowErrors, rowError.Error())
		} else {
			batch = append(batch, record)
		}

		if jobID != "" && (i%10 == 0 || i == total-1) {
			progress := int(math.Round(float64(i+1)/float64(total)*80)) + 10
			this.emit(ctx, jobID, app.ProgressEvent{
				JobID:        jobID,
				TemplateName: templateName,
				Status:       app.UploadProcessing,
				Progress:     progress,
				Message:      fmt.Sprintf("Processed %d of %d rows", i+1, total),
				Processed:    intPtr(i + 1),
				Total:        intPtr(total),
			})
		}
	}

	if jobID != "" {
		this.emit(ctx, jobID, app.ProgressEvent{
			JobID:        jobID,
			TemplateName: templateName,
			Status:       app.UploadProcessing,
			Progress:     90,
			Message:      "Saving to database...",
			Processed:    intPtr(len(batch)),
			Total:        intPtr(total),
		})
	}

	if len(batch) > 0 {
		// A persistence failure is a run-level failure, distinct from the
		// row-level errors collected above.
		if err := this.records.BulkInsert(ctx, batch[0].Index(), batch); err != nil {
			return nil, err
		}
	}

	if rowErrors == nil {
		rowErrors = []string{}
	}
	outcome := &app.ImportOutcome{
		Message:   fmt.Sprintf("Processed %d of %d rows", len(batch), total),
		Processed: len(batch),
		Errors:    rowErrors,
	}

	if jobID != "" {
		event := app.ProgressEvent{
			JobID:        jobID,
			TemplateName: templateName,
			Status:       app.UploadCompleted,
			Progress:     100,
			Message:      fmt.Sprintf("Successfully processed %d rows", len(batch)),
			Processed:    intPtr(len(batch)),
			Total:        intPtr(total),
		}
		if len(rowErrors) > 0 {
			event.Errors = rowErrors
		}
		this.emit(ctx, jobID, event)
	}

	if len(rowErrors) > 0 {
		this.log.Warn("upload.process.partial",
			"templateName", templateName,
			"processed", len(batch),
			"total", total,
			"errorsCount", len(rowErrors),
			"durationMs", time.Since(startedAt).Milliseconds(),
			"jobId", jobID,
		)
	} else {
		this.log.Info("upload.process.success",
			"templateName", templateName,
			"processed", len(batch),
			"total", total,
			"durationMs", time.Since(startedAt).Milliseconds(),
			"jobId", jobID,
		)
	}

	return outcome, nil
}

func (this *ImportService) emit(ctx context.Context, jobID string, event app.ProgressEvent) {
	this.notifier.EmitProgress(ctx, jobID, event)
}

// readDataRows flattens the first sheet into raw rows keyed by the
// template's column keys, in column order, skipping the header row.
// Row order is preserved; it determines error attribution.
func readDataRows(file []byte, tpl *app.Template) ([]map[string]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(grid) <= 1 {
		return nil, nil
	}

	rows := make([]map[string]string, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		row := make(map[string]string, len(tpl.Columns))
		for j, col := range tpl.Columns {
			if j < len(cells) {
				row[col.Key] = strings.TrimSpace(cells[j])
			} else {
				row[col.Key] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func intPtr(v int) *int { return &v }

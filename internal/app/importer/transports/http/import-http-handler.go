package import_http_handler

import (
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/init-pkg/excel-import/domain/app"
	"github.com/init-pkg/excel-import/domain/dtos"
	nova_ctx "github.com/init-pkg/nova/shared/ctx"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const maxUploadSize = 10 * 1024 * 1024

type ImportHttpHandler struct {
	templates app.TemplateService
	queue     app.JobQueue
	store     app.JobStore
	records   app.RecordStore
	history   app.RunHistory
}

func New(templates app.TemplateService, queue app.JobQueue, store app.JobStore, records app.RecordStore, history app.RunHistory) *ImportHttpHandler {
	return &ImportHttpHandler{templates, queue, store, records, history}
}

func (this *ImportHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/file")

	app.Post("/upload/:templateName/async", this.uploadAsync)
	app.Get("/jobs/:id", this.getJobStatus)
	app.Get("/data/:templateName", this.getData)
	app.Get("/runs", this.getRuns)
}

// uploadAsync godoc
// @Summary Upload Excel asynchronously
// @Description Queues an Excel file for background import against a template
// @Tags file
// @Accept multipart/form-data
// @Param templateName path string true "Template name" example(users)
// @Param file formData file true "Excel file payload"
// @Success 200 {object} dtos.UploadAsyncResponse
// @Failure 400 {object} dtos.ErrorResponse
// @Router /file/upload/{templateName}/async [post]
func (this *ImportHttpHandler) uploadAsync(fctx fiber.Ctx) error {
	var ctx = nova_ctx.Wrap(fctx.Context())
	templateName := fctx.Params("templateName")

	header, err := fctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No file uploaded")
	}
	if header.Size > maxUploadSize {
		return fiber.NewError(fiber.StatusBadRequest, "File exceeds the 10MB limit")
	}
	if !isSpreadsheet(header.Filename) {
		return fiber.NewError(fiber.StatusBadRequest, "Only .xlsx and .xls files are accepted")
	}

	file, err := header.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unreadable file upload")
	}
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unreadable file upload")
	}

	// Correlation id assigned before the queue sees the job, so clients
	// can join the notification room first.
	jobID := fmt.Sprintf("upload-%d-%s", time.Now().UnixMilli(), strings.Split(uuid.NewString(), "-")[0])

	e := this.queue.Enqueue(ctx, app.UploadJobPayload{
		TemplateName: templateName,
		Buffer:       base64.StdEncoding.EncodeToString(buf),
		JobID:        jobID,
	})
	if e != nil {
		return fiber.NewError(fiber.StatusInternalServerError, e.Error())
	}

	return fctx.JSON(dtos.UploadAsyncResponse{JobID: jobID, Status: "queued"})
}

// getJobStatus godoc
// @Summary Get job status/result
// @Tags file
// @Param id path string true "Job ID"
// @Success 200 {object} app.JobInfo
// @Failure 404 {object} dtos.ErrorResponse
// @Router /file/jobs/{id} [get]
func (this *ImportHttpHandler) getJobStatus(fctx fiber.Ctx) error {
	var ctx = nova_ctx.Wrap(fctx.Context())

	job, err := this.store.GetJob(ctx, fctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if job == nil {
		return fiber.NewError(fiber.StatusNotFound, "Job not found")
	}

	return fctx.JSON(job)
}

// getData godoc
// @Summary Get paginated data from the document store
// @Tags file
// @Param templateName path string true "Template name" example(users)
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} object
// @Failure 404 {object} dtos.ErrorResponse
// @Router /file/data/{templateName} [get]
func (this *ImportHttpHandler) getData(fctx fiber.Ctx) error {
	var ctx = nova_ctx.Wrap(fctx.Context())
	templateName := fctx.Params("templateName")

	tpl, e := this.templates.Get(templateName)
	if e != nil {
		return fiber.NewError(fiber.StatusNotFound, e.Error())
	}

	page, _ := strconv.Atoi(fctx.Query("page", "1"))
	limit, _ := strconv.Atoi(fctx.Query("limit", "10"))

	docs, err := this.records.List(ctx, tpl.Name, page, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return fctx.JSON(docs)
}

// getRuns godoc
// @Summary List recent import runs
// @Tags file
// @Param limit query int false "Number of runs" default(20)
// @Success 200 {array} app.ImportRun
// @Router /file/runs [get]
func (this *ImportHttpHandler) getRuns(fctx fiber.Ctx) error {
	var ctx = nova_ctx.Wrap(fctx.Context())

	limit, _ := strconv.Atoi(fctx.Query("limit", "20"))
	runs, err := this.history.Recent(ctx, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return fctx.JSON(runs)
}

func isSpreadsheet(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".xlsx") || strings.HasSuffix(name, ".xls")
}

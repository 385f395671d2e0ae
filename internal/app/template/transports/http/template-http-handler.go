package template_http_handler

import (
	"fmt"
	"strconv"

	"github.com/init-pkg/excel-import/domain/app"
	nova_ctx "github.com/init-pkg/nova/shared/ctx"

	"github.com/gofiber/fiber/v3"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TemplateHttpHandler struct {
	service app.TemplateService
}

func New(service app.TemplateService) *TemplateHttpHandler {
	return &TemplateHttpHandler{service}
}

func (this *TemplateHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/file")

	app.Get("/templates", this.listTemplates)
	app.Get("/templates/:templateName", this.getTemplate)
	app.Get("/templates/:templateName/schema", this.getSchema)
	app.Get("/templates/:templateName/download", this.downloadTemplate)
	app.Get("/export/:templateName", this.exportData)
}

// listTemplates godoc
// @Summary List available Excel templates
// @Tags file
// @Success 200 {array} app.Template
// @Router /file/templates [get]
func (this *TemplateHttpHandler) listTemplates(fctx fiber.Ctx) error {
	return fctx.JSON(this.service.List())
}

// getTemplate godoc
// @Summary Get template info
// @Tags file
// @Param templateName path string true "Template name" example(users)
// @Success 200 {object} app.Template
// @Failure 404 {object} dtos.ErrorResponse
// @Router /file/templates/{templateName} [get]
func (this *TemplateHttpHandler) getTemplate(fctx fiber.Ctx) error {
	tpl, e := this.service.Get(fctx.Params("templateName"))
	if e != nil {
		return fiber.NewError(fiber.StatusNotFound, e.Error())
	}

	return fctx.JSON(tpl)
}

// getSchema godoc
// @Summary Get the JSON Schema of a template's mapped record
// @Tags file
// @Param templateName path string true "Template name" example(users)
// @Success 200 {object} object
// @Failure 404 {object} dtos.ErrorResponse
// @Router /file/templates/{templateName}/schema [get]
func (this *TemplateHttpHandler) getSchema(fctx fiber.Ctx) error {
	schema, e := this.service.Schema(fctx.Params("templateName"))
	if e != nil {
		return fiber.NewError(fiber.StatusNotFound, e.Error())
	}

	fctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return fctx.Send(schema)
}

// downloadTemplate godoc
// @Summary Download Excel template
// @Description Download an Excel template file, optionally with sample data
// @Tags file
// @Param templateName path string true "Template name" example(users)
// @Param includeSample query string false "Include sample data" Enums(true, false)
// @Success 200 {file} binary
// @Failure 404 {object} dtos.ErrorResponse
// @Router /file/templates/{templateName}/download [get]
func (this *TemplateHttpHandler) downloadTemplate(fctx fiber.Ctx) error {
	templateName := fctx.Params("templateName")
	includeSample := fctx.Query("includeSample") == "true"

	buf, e := this.service.BuildWorkbook(templateName, includeSample)
	if e != nil {
		return fiber.NewError(fiber.StatusNotFound, e.Error())
	}

	filename := templateName + "_template"
	if includeSample {
		filename += "_with_sample"
	}
	filename += ".xlsx"

	fctx.Set(fiber.HeaderContentType, xlsxContentType)
	fctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return fctx.Send(buf)
}

// exportData godoc
// @Summary Export stored data to Excel
// @Tags file
// @Param templateName path string true "Template name" example(users)
// @Param limit query int false "Maximum rows" default(1000)
// @Success 200 {file} binary
// @Failure 400 {object} dtos.ErrorResponse
// @Router /file/export/{templateName} [get]
func (this *TemplateHttpHandler) exportData(fctx fiber.Ctx) error {
	var ctx = nova_ctx.Wrap(fctx.Context())
	templateName := fctx.Params("templateName")

	limit, _ := strconv.Atoi(fctx.Query("limit", "1000"))
	buf, e := this.service.Export(ctx, templateName, limit)
	if e != nil {
		return fiber.NewError(fiber.StatusBadRequest, e.Error())
	}

	fctx.Set(fiber.HeaderContentType, xlsxContentType)
	fctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", templateName+"_export.xlsx"))
	return fctx.Send(buf)
}

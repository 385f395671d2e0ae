package template_service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/init-pkg/excel-import/domain/app"
	"github.com/init-pkg/excel-import/internal/config"
	"github.com/init-pkg/nova/errs"
	"github.com/invopop/jsonschema"
)

func generateSchema[T any]() *jsonschema.Schema {
	// Keep the emitted schema self-contained for API consumers.
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

var recordSchemas = map[string]*jsonschema.Schema{
	app.TemplateUsers:    generateSchema[app.UserRecord](),
	app.TemplateProducts: generateSchema[app.ProductRecord](),
}

type TemplateService struct {
	records app.RecordStore
	log     *slog.Logger
	maxRows int
}

var _ app.TemplateService = &TemplateService{}

func New(records app.RecordStore, cfg *config.Config, log *slog.Logger) *TemplateService {
	return &TemplateService{records: records, log: log, maxRows: cfg.Import.MaxRows}
}

func (this *TemplateService) List() []app.Template {
	return catalog
}

func (this *TemplateService) Get(name string) (*app.Template, errs.Error) {
	for i := range catalog {
		if catalog[i].Name == name {
			return &catalog[i], nil
		}
	}

	this.log.Warn("template.lookup.not_found", "templateName", name)
	return nil, errs.WrapAppError(fmt.Errorf("template '%s' not found", name), &errs.ErrorOpts{})
}

func (this *TemplateService) BuildWorkbook(name string, includeSample bool) ([]byte, errs.Error) {
	tpl, e := this.Get(name)
	if e != nil {
		return nil, e
	}

	buf, err := buildTemplateWorkbook(tpl, includeSample, this.maxRows)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}

	this.log.Info("template.generate.success",
		"templateName", name,
		"includeSample", includeSample,
		"size", len(buf),
	)
	return buf, nil
}

func (this *TemplateService) Schema(name string) ([]byte, errs.Error) {
	schema, ok := recordSchemas[name]
	if !ok {
		return nil, errs.WrapAppError(fmt.Errorf("template '%s' not found", name), &errs.ErrorOpts{})
	}

	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}

	return raw, nil
}

func (this *TemplateService) Export(ctx context.Context, name string, limit int) ([]byte, errs.Error) {
	tpl, e := this.Get(name)
	if e != nil {
		return nil, e
	}
	if limit < 1 {
		limit = 1000
	}

	docs, err := this.records.List(ctx, tpl.Name, 1, limit)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}

	buf, err := exportWorkbook(tpl, docs)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}

	this.log.Info("export.success",
		"templateName", name,
		"limit", limit,
		"exportedCount", len(docs),
		"size", len(buf),
	)
	return buf, nil
}

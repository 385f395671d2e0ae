package app

import (
	"context"

	"github.com/init-pkg/nova/errs"
)

const (
	TemplateUsers    = "users"
	TemplateProducts = "products"
)

// Column describes one expected spreadsheet column of a template.
type Column struct {
	Header   string  `json:"header"`
	Key      string  `json:"key"`
	Width    float64 `json:"width,omitempty"`
	Type     string  `json:"type,omitempty"`
	Required bool    `json:"required,omitempty"`
	Example  string  `json:"example,omitempty"`
}

// Template is a named schema for an importable spreadsheet.
type Template struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Columns     []Column         `json:"columns"`
	SampleData  []map[string]any `json:"sampleData,omitempty"`
}

type TemplateService interface {
	List() []Template
	Get(name string) (*Template, errs.Error)
	// BuildWorkbook renders an empty template workbook, optionally with sample rows.
	BuildWorkbook(name string, includeSample bool) ([]byte, errs.Error)
	// Schema returns the JSON Schema of the template's mapped record.
	Schema(name string) ([]byte, errs.Error)
	// Export renders persisted records back into a template-shaped workbook.
	Export(ctx context.Context, name string, limit int) ([]byte, errs.Error)
}

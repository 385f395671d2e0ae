package app

import (
	"context"
	"time"
)

// MappedRecord is a fully validated, typed record ready for persistence.
// The set of variants is closed: one per catalogued template.
type MappedRecord interface {
	// Index names the document-store index the record belongs to.
	Index() string
}

type UserRecord struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (UserRecord) Index() string { return TemplateUsers }

type ProductRecord struct {
	Name        string    `json:"name"`
	Sku         string    `json:"sku"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       float64   `json:"stock"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (ProductRecord) Index() string { return TemplateProducts }

type RecordStore interface {
	// BulkInsert persists the batch in one request. The batch is never
	// partially retried here; failures propagate to the caller.
	BulkInsert(ctx context.Context, index string, records []MappedRecord) error
	List(ctx context.Context, index string, page, limit int) ([]map[string]any, error)
}

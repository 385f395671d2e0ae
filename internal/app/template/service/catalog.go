package template_service

import "github.com/init-pkg/excel-import/domain/app"

// catalog is the static registry of importable templates. Data, not
// logic: mapping rules for each entry live in the importer service.
var catalog = []app.Template{
	{
		Name:        app.TemplateUsers,
		Description: "User Import Template",
		Columns: []app.Column{
			{Header: "First Name", Key: "firstName", Width: 15, Type: "string", Required: true, Example: "John"},
			{Header: "Last Name", Key: "lastName", Width: 15, Type: "string", Required: true, Example: "Doe"},
			{Header: "Email", Key: "email", Width: 25, Type: "string", Required: true, Example: "john.doe@example.com"},
			{Header: "Phone", Key: "phone", Width: 15, Type: "string", Example: "+995555123456"},
			{Header: "Birth Date", Key: "birthDate", Width: 12, Type: "date", Example: "1990-01-01"},
			{Header: "Is Active", Key: "isActive", Width: 10, Type: "boolean", Example: "true"},
		},
		SampleData: []map[string]any{
			{
				"firstName": "John",
				"lastName":  "Doe",
				"email":     "john.doe@example.com",
				"phone":     "+995555123456",
				"birthDate": "1990-01-01",
				"isActive":  true,
			},
			{
				"firstName": "Jane",
				"lastName":  "Smith",
				"email":     "jane.smith@example.com",
				"phone":     "+995555789012",
				"birthDate": "1985-05-15",
				"isActive":  true,
			},
		},
	},
	{
		Name:        app.TemplateProducts,
		Description: "Product Import Template",
		Columns: []app.Column{
			{Header: "Product Name", Key: "name", Width: 20, Type: "string", Required: true, Example: "Laptop Computer"},
			{Header: "SKU", Key: "sku", Width: 15, Type: "string", Required: true, Example: "LAP-001"},
			{Header: "Price", Key: "price", Width: 12, Type: "number", Required: true, Example: "999.99"},
			{Header: "Category", Key: "category", Width: 15, Type: "string", Required: true, Example: "Electronics"},
			{Header: "Stock Quantity", Key: "stock", Width: 12, Type: "number", Example: "50"},
			{Header: "Description", Key: "description", Width: 30, Type: "string", Example: "High-performance laptop for professionals"},
		},
		SampleData: []map[string]any{
			{
				"name":        "Laptop Computer",
				"sku":         "LAP-001",
				"price":       999.99,
				"category":    "Electronics",
				"stock":       50,
				"description": "High-performance laptop for professionals",
			},
			{
				"name":        "Wireless Mouse",
				"sku":         "MOU-001",
				"price":       29.99,
				"category":    "Accessories",
				"stock":       100,
				"description": "Ergonomic wireless mouse",
			},
		},
	},
}

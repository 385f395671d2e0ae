package importer_service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/init-pkg/excel-import/domain/app"
)

// rowMapper turns one raw row into the template's record variant.
// The set is closed: every catalogued template needs an entry here.
type rowMapper func(row map[string]string, now time.Time) (app.MappedRecord, error)

var rowMappers = map[string]rowMapper{
	app.TemplateUsers:    mapUserRow,
	app.TemplateProducts: mapProductRow,
}

// MapRow maps one raw spreadsheet row to a typed record, or fails with a
// row-level validation error. Pure function of its inputs.
func MapRow(templateName string, row map[string]string, now time.Time) (app.MappedRecord, error) {
	mapper, ok := rowMappers[templateName]
	if !ok {
		return nil, fmt.Errorf("Unsupported template '%s'", templateName)
	}

	return mapper(row, now)
}

func mapUserRow(row map[string]string, now time.Time) (app.MappedRecord, error) {
	firstName, err := requiredField(row, "firstName")
	if err != nil {
		return nil, err
	}
	lastName, err := requiredField(row, "lastName")
	if err != nil {
		return nil, err
	}
	email, err := requiredField(row, "email")
	if err != nil {
		return nil, err
	}

	record := app.UserRecord{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     row["phone"],
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if birthDate, ok := parseDate(row["birthDate"]); ok {
		record.BirthDate = &birthDate
	}
	if isActive, ok := parseBool(row["isActive"]); ok {
		record.IsActive = isActive
	}

	return record, nil
}

func mapProductRow(row map[string]string, now time.Time) (app.MappedRecord, error) {
	name, err := requiredField(row, "name")
	if err != nil {
		return nil, err
	}
	sku, err := requiredField(row, "sku")
	if err != nil {
		return nil, err
	}
	price, ok := parseNumber(row["price"])
	if !ok {
		return nil, errors.New("Field 'price' is required")
	}
	category, err := requiredField(row, "category")
	if err != nil {
		return nil, err
	}

	record := app.ProductRecord{
		Name:        name,
		Sku:         sku,
		Price:       price,
		Category:    category,
		Description: row["description"],
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if stock, ok := parseNumber(row["stock"]); ok {
		record.Stock = stock
	}

	return record, nil
}

func requiredField(row map[string]string, key string) (string, error) {
	value := row[key]
	if value == "" {
		return "", fmt.Errorf("Field '%s' is required", key)
	}

	return value, nil
}

func parseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	default:
		return false, false
	}
}

func parseNumber(value string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/2006",
	"01/02/2006",
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

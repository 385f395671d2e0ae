package template_service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/init-pkg/excel-import/domain/app"
	"github.com/xuri/excelize/v2"
)

const dataSheet = "Data"

func buildTemplateWorkbook(tpl *app.Template, includeSample bool, maxRows int) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return nil, err
	}

	for j, col := range tpl.Columns {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(dataSheet, cell, col.Header); err != nil {
			return nil, err
		}

		name, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return nil, err
		}
		width := col.Width
		if width == 0 {
			width = 15
		}
		if err := f.SetColWidth(dataSheet, name, name, width); err != nil {
			return nil, err
		}
	}

	if includeSample {
		if err := writeRows(f, tpl, tpl.SampleData, 2); err != nil {
			return nil, err
		}
	}

	if err := addInstructionsSheet(f, tpl, maxRows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func exportWorkbook(tpl *app.Template, docs []map[string]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return nil, err
	}

	for j, col := range tpl.Columns {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(dataSheet, cell, col.Header); err != nil {
			return nil, err
		}

		name, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return nil, err
		}
		width := col.Width
		if width == 0 {
			width = 15
		}
		if err := f.SetColWidth(dataSheet, name, name, width); err != nil {
			return nil, err
		}
	}

	if err := writeRows(f, tpl, docs, 2); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, tpl *app.Template, docs []map[string]any, startRow int) error {
	for i, doc := range docs {
		for j, col := range tpl.Columns {
			cell, err := excelize.CoordinatesToCellName(j+1, startRow+i)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(dataSheet, cell, displayValue(doc[col.Key])); err != nil {
				return err
			}
		}
	}

	return nil
}

func addInstructionsSheet(f *excelize.File, tpl *app.Template, maxRows int) error {
	const sheet = "Instructions"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]any{
		{"Excel Import Template Instructions"},
		{},
		{"Template:", tpl.Name},
		{"Description:", tpl.Description},
		{},
		{"Column Specifications:"},
		{"Column Name", "Required", "Type", "Example"},
	}
	for _, col := range tpl.Columns {
		required := "No"
		if col.Required {
			required = "Yes"
		}
		colType := col.Type
		if colType == "" {
			colType = "string"
		}
		rows = append(rows, []any{col.Header, required, colType, col.Example})
	}
	rows = append(rows,
		[]any{},
		[]any{"Instructions:"},
		[]any{"1. Fill in the \"Data\" sheet with your information following the column specifications above"},
		[]any{"2. Required columns must not be empty"},
		[]any{"3. Date format should be YYYY-MM-DD (e.g. 2023-12-31)"},
		[]any{"4. Boolean values should be true/false"},
		[]any{"5. Save the file and upload it to the system"},
		[]any{},
		[]any{"Notes:"},
		[]any{"- Do not modify the header row in the Data sheet"},
		[]any{"- You can delete this Instructions sheet before uploading"},
		[]any{fmt.Sprintf("- Maximum rows allowed: %d", maxRows)},
	)

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	widths := []float64{30, 15, 15, 25}
	for j, width := range widths {
		name, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}

	return nil
}

// displayValue renders a stored field the way the original cell was
// typed in, so exported workbooks round-trip coerced values.
func displayValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed.Format("2006-01-02")
		}
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

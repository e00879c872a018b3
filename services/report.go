package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"finance-assistant-api/models"
)

const (
	reportSheet   = "Expenses"
	maxColumnSize = 50
)

var reportHeader = []string{"Date", "Description", "Amount", "Category"}

// BuildWorkbook renders records into a styled xlsx workbook: one data
// row per record in input order, a bold total row two rows below the
// last data row. Identical input always yields identical layout,
// widths and totals. A nil byte slice with nil error signals an empty
// record list; callers must check before serving the artifact.
func BuildWorkbook(records []models.ExpenseRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, nil
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create bold style: %w", err)
	}

	header := make([]interface{}, len(reportHeader))
	for i, title := range reportHeader {
		header[i] = title
	}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(reportSheet, "A1", "D1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	var total float64
	for i, rec := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{rec.Date, rec.Description, rec.Amount, rec.Category}
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
		total += rec.Amount
	}

	for col := range reportHeader {
		width := len(reportHeader[col])
		for _, rec := range records {
			if l := len(columnText(rec, col)); l > width {
				width = l
			}
		}
		if width+2 < maxColumnSize {
			width += 2
		} else {
			width = maxColumnSize
		}
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(reportSheet, name, name, float64(width)); err != nil {
			return nil, fmt.Errorf("failed to size column %s: %w", name, err)
		}
	}

	// Total row sits two rows below the last data row.
	totalRow := len(records) + 3
	labelCell, _ := excelize.CoordinatesToCellName(3, totalRow)
	valueCell, _ := excelize.CoordinatesToCellName(4, totalRow)
	f.SetCellValue(reportSheet, labelCell, "Total:")
	f.SetCellValue(reportSheet, valueCell, fmt.Sprintf("₹%.2f", total))
	if err := f.SetCellStyle(reportSheet, labelCell, valueCell, boldStyle); err != nil {
		return nil, fmt.Errorf("failed to style total row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildCSV renders records as a plain CSV table. Fields are joined
// as-is; embedded commas are not escaped.
func BuildCSV(records []models.ExpenseRecord) []byte {
	var b strings.Builder
	b.WriteString("Date,Description,Amount,Category\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "%s,%s,%.2f,%s\n", rec.Date, rec.Description, rec.Amount, rec.Category)
	}
	return []byte(b.String())
}

// SumAmounts returns the arithmetic total of all record amounts.
func SumAmounts(records []models.ExpenseRecord) float64 {
	var total float64
	for _, rec := range records {
		total += rec.Amount
	}
	return total
}

func columnText(rec models.ExpenseRecord, col int) string {
	switch col {
	case 0:
		return rec.Date
	case 1:
		return rec.Description
	case 2:
		return strconv.FormatFloat(rec.Amount, 'f', -1, 64)
	default:
		return rec.Category
	}
}

package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	workbookSheet   = "Results"
	failedRowColor  = "FF5900"
	workbookColumns = 4
	columnWidth     = 40
)

// ExportWorkbook writes every result recorded so far to a new xlsx file, with failed rows
// highlighted and the run totals below the table.
func (r *Report) ExportWorkbook(path string) error {
	results := r.Results()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", workbookSheet); err != nil {
		return err
	}
	if err := f.SetColWidth(workbookSheet, "A", "D", columnWidth); err != nil {
		return err
	}
	failStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{failedRowColor}},
	})
	if err != nil {
		return err
	}

	if err := setRow(f, 1, csvHeader...); err != nil {
		return err
	}
	failed := 0
	for i, result := range results {
		row := i + 2
		if err := setRow(f, row, result.ID, result.Response, string(result.Status), result.Message); err != nil {
			return err
		}
		if result.Status != StatusPass {
			failed++
			first, _ := excelize.CoordinatesToCellName(1, row)
			last, _ := excelize.CoordinatesToCellName(workbookColumns, row)
			if err := f.SetCellStyle(workbookSheet, first, last, failStyle); err != nil {
				return err
			}
		}
	}

	summaryRow := len(results) + 3
	summary := []string{
		fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)),
		fmt.Sprintf("Total: %d", len(results)),
		fmt.Sprintf("Passed: %d", len(results)-failed),
		fmt.Sprintf("Failed: %d", failed),
	}
	for i, line := range summary {
		if err := setRow(f, summaryRow+i, line); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("could not save workbook %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values ...string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(workbookSheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/quentinrf/bp-tracker/internal/domain"
)

// BuildXLSX renders readings and their trend summary as a workbook
// with a readings sheet and a summary sheet.
func BuildXLSX(readings []*domain.Reading) ([]byte, error) {
	if len(readings) == 0 {
		return nil, domain.ErrNoReadings
	}

	summary, err := domain.Summarize(readings)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	readingsSheet := "readings"
	summarySheet := "summary"
	f.SetSheetName("Sheet1", readingsSheet)
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	headers := []string{"Date", "Time", "Systolic", "Diastolic", "BPM", "Category"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(readingsSheet, cell, h)
	}
	for i, r := range readings {
		row := i + 2
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("A%d", row), r.Timestamp.Format("2006-01-02"))
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("B%d", row), r.Timestamp.Format("15:04:05"))
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("C%d", row), r.Systolic)
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("D%d", row), r.Diastolic)
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("E%d", row), r.BPM)
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("F%d", row), r.Category.String())
	}

	_ = f.SetCellValue(summarySheet, "A1", "Blood Pressure Summary")
	_ = f.SetCellValue(summarySheet, "A3", "Readings")
	_ = f.SetCellValue(summarySheet, "B3", summary.Count)
	_ = f.SetCellValue(summarySheet, "A4", "From")
	_ = f.SetCellValue(summarySheet, "B4", summary.First.Format("2006-01-02 15:04:05"))
	_ = f.SetCellValue(summarySheet, "A5", "To")
	_ = f.SetCellValue(summarySheet, "B5", summary.Last.Format("2006-01-02 15:04:05"))

	_ = f.SetCellValue(summarySheet, "A7", "Field")
	_ = f.SetCellValue(summarySheet, "B7", "Min")
	_ = f.SetCellValue(summarySheet, "C7", "Avg")
	_ = f.SetCellValue(summarySheet, "D7", "Max")
	fields := []struct {
		name  string
		stats domain.FieldStats
	}{
		{"Systolic", summary.Systolic},
		{"Diastolic", summary.Diastolic},
		{"BPM", summary.BPM},
	}
	for i, fld := range fields {
		row := i + 8
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), fld.name)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), fld.stats.Min)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), fld.stats.Avg)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), fld.stats.Max)
	}

	_ = f.SetCellValue(summarySheet, "A12", "Category")
	_ = f.SetCellValue(summarySheet, "B12", "Count")
	for i, cat := range domain.Categories() {
		row := i + 13
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), cat.DisplayName())
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), summary.ByCategory[cat])
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Package report renders readings into chart and export documents.
// It consumes the ordered reading sequence as a black box and never
// mutates it.
package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/quentinrf/bp-tracker/internal/domain"
)

// Chart geometry in mm on a landscape A4 page.
const (
	chartLeft   = 25.0
	chartTop    = 30.0
	chartWidth  = 250.0
	chartHeight = 120.0

	// Pressure axis range in mmHg. Values are clamped to it.
	axisMin = 40.0
	axisMax = 200.0
)

// systolicZones maps the chart's background bands to categories by
// their systolic thresholds, bottom to top.
var systolicZones = []struct {
	from, to float64
	category domain.Category
}{
	{axisMin, 90, domain.CategoryLow},
	{90, 120, domain.CategoryNormal},
	{120, 130, domain.CategoryElevated},
	{130, 140, domain.CategoryHigh1},
	{140, 180, domain.CategoryHigh2},
	{180, axisMax, domain.CategoryCrisis},
}

// BuildTrendPDF renders a trend chart of systolic/diastolic/pulse
// over time with category-colored zones, followed by a readings table.
func BuildTrendPDF(readings []*domain.Reading) ([]byte, error) {
	if len(readings) == 0 {
		return nil, domain.ErrNoReadings
	}

	summary, err := domain.Summarize(readings)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Blood Pressure Trend")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("%s to %s, %d readings",
		summary.First.Format("2006-01-02"), summary.Last.Format("2006-01-02"), summary.Count))
	pdf.Ln(5)

	drawZones(pdf)
	drawAxis(pdf)
	drawSeries(pdf, readings, func(r *domain.Reading) int { return r.Systolic }, 192, 57, 43)
	drawSeries(pdf, readings, func(r *domain.Reading) int { return r.Diastolic }, 41, 128, 185)
	drawSeries(pdf, readings, func(r *domain.Reading) int { return r.BPM }, 127, 140, 141)
	drawLegend(pdf)

	pdf.AddPage()
	drawTable(pdf, readings)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawZones(pdf *gofpdf.Fpdf) {
	pdf.SetAlpha(0.2, "Normal")
	for _, z := range systolicZones {
		r, g, b := z.category.Color()
		pdf.SetFillColor(r, g, b)
		yTop := valueToY(z.to)
		yBottom := valueToY(z.from)
		pdf.Rect(chartLeft, yTop, chartWidth, yBottom-yTop, "F")
	}
	pdf.SetAlpha(1, "Normal")
}

func drawAxis(pdf *gofpdf.Fpdf) {
	pdf.SetDrawColor(60, 60, 60)
	pdf.Line(chartLeft, chartTop, chartLeft, chartTop+chartHeight)
	pdf.Line(chartLeft, chartTop+chartHeight, chartLeft+chartWidth, chartTop+chartHeight)

	pdf.SetFont("Arial", "", 7)
	for v := axisMin; v <= axisMax; v += 20 {
		y := valueToY(v)
		pdf.Line(chartLeft-1.5, y, chartLeft, y)
		pdf.Text(chartLeft-11, y+1, fmt.Sprintf("%3.0f", v))
	}
}

func drawSeries(pdf *gofpdf.Fpdf, readings []*domain.Reading, value func(*domain.Reading) int, r, g, b int) {
	pdf.SetDrawColor(r, g, b)
	pdf.SetFillColor(r, g, b)
	pdf.SetLineWidth(0.4)

	prevX, prevY := 0.0, 0.0
	for i, reading := range readings {
		x := pointX(i, len(readings))
		y := valueToY(clamp(float64(value(reading))))
		pdf.Circle(x, y, 0.8, "F")
		if i > 0 {
			pdf.Line(prevX, prevY, x, y)
		}
		prevX, prevY = x, y
	}
	pdf.SetLineWidth(0.2)
}

func drawLegend(pdf *gofpdf.Fpdf) {
	entries := []struct {
		label   string
		r, g, b int
	}{
		{"Systolic", 192, 57, 43},
		{"Diastolic", 41, 128, 185},
		{"Pulse", 127, 140, 141},
	}

	x := chartLeft
	y := chartTop + chartHeight + 6
	pdf.SetFont("Arial", "", 8)
	for _, e := range entries {
		pdf.SetFillColor(e.r, e.g, e.b)
		pdf.Rect(x, y-2, 3, 3, "F")
		pdf.Text(x+4, y+0.5, e.label)
		x += 30
	}
}

func drawTable(pdf *gofpdf.Fpdf, readings []*domain.Reading) {
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 8, "Readings")
	pdf.Ln(10)

	pdf.CellFormat(30, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Time", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Systolic", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Diastolic", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, "BPM", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 6, "Category", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, r := range readings {
		pdf.CellFormat(30, 6, r.Timestamp.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, r.Timestamp.Format("15:04:05"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", r.Systolic), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", r.Diastolic), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", r.BPM), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, r.Category.DisplayName(), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
}

func valueToY(v float64) float64 {
	frac := (v - axisMin) / (axisMax - axisMin)
	return chartTop + chartHeight - frac*chartHeight
}

func pointX(i, n int) float64 {
	if n == 1 {
		return chartLeft + chartWidth/2
	}
	return chartLeft + float64(i)*chartWidth/float64(n-1)
}

func clamp(v float64) float64 {
	if v < axisMin {
		return axisMin
	}
	if v > axisMax {
		return axisMax
	}
	return v
}

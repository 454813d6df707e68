// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

// Package report renders the single-page crop recommendation PDF.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tomtom215/indradhanu/internal/dataset"
	"github.com/tomtom215/indradhanu/internal/metrics"
	"github.com/tomtom215/indradhanu/internal/predictor"
)

// ContentType is the media type of a rendered report.
const ContentType = "application/pdf"

const (
	title             = "Crop Recommendation Report"
	paramsHeading     = "Soil & Climate Parameters"
	recommendHeading  = "Top 3 Crop Recommendations"
	generatedLayout   = "January 02, 2006 at 03:04 PM"
	filenameLayout    = "20060102_150405"
	mmPerInch         = 25.4
	headerCellHeight  = 9.0
	bodyCellHeight    = 7.5
	sectionSpacing    = mmPerInch * 0.5
	paragraphSpacing  = mmPerInch * 0.3
	headingTableSpace = mmPerInch * 0.1
)

var footerLines = []string{
	"Indra Dhanu - Smart Agriculture Platform",
	"Powered by Machine Learning | Climate-Resilient Farming Solutions",
	"This report is generated based on ML predictions and should be used as guidance only.",
}

type rgb struct{ r, g, b int }

var (
	titleColor     = rgb{0x2E, 0x7D, 0x32}
	paramsHeader   = rgb{0x4C, 0xAF, 0x50}
	recommendColor = rgb{0xFF, 0x98, 0x00}
	headerText     = rgb{245, 245, 245}
	beige          = rgb{245, 245, 220}
	rankShades     = []rgb{{0xFF, 0xD5, 0x4F}, {0xFF, 0xE0, 0x82}, {0xFF, 0xEC, 0xB3}}
)

var (
	paramWidths     = []float64{2.5 * mmPerInch, 1.5 * mmPerInch, 1 * mmPerInch}
	recommendWidths = []float64{0.6 * mmPerInch, 1.5 * mmPerInch, 1 * mmPerInch, 1.2 * mmPerInch, 1.3 * mmPerInch, 1.4 * mmPerInch}
)

// Report is the content of one PDF.
type Report struct {
	Conditions      dataset.FeatureVector
	Recommendations []predictor.Prediction
	GeneratedAt     time.Time
}

// Filename returns the attachment name for a report generated at t.
func Filename(t time.Time) string {
	return "crop_report_" + t.Format(filenameLayout) + ".pdf"
}

// Render writes the PDF for r to w.
func Render(w io.Writer, r Report) error {
	pdf := build(r)
	cw := &countingWriter{w: w}
	if err := pdf.Output(cw); err != nil {
		metrics.RecordReport(0)
		return fmt.Errorf("render report: %w", err)
	}
	metrics.RecordReport(cw.n)
	return nil
}

func build(r Report) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(mmPerInch, mmPerInch, mmPerInch)
	pdf.SetAutoPageBreak(true, mmPerInch)
	pdf.SetTitle(title, false)
	pdf.SetCreator("Indra Dhanu", false)
	pdf.SetCreationDate(r.GeneratedAt)
	pdf.SetModificationDate(r.GeneratedAt)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 24)
	setText(pdf, titleColor)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.Ln(paragraphSpacing + 10)

	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, rgb{})
	pdf.CellFormat(0, 6, "Generated on: "+r.GeneratedAt.Format(generatedLayout), "", 1, "L", false, 0, "")
	pdf.Ln(paragraphSpacing)

	heading(pdf, paramsHeading)
	table(pdf, tr, paramWidths, 12, paramsHeader, paramRows(r.Conditions), func(row, _ int) (rgb, bool) {
		return beige, true
	})
	pdf.Ln(sectionSpacing)

	heading(pdf, recommendHeading)
	table(pdf, tr, recommendWidths, 10, recommendColor, recommendationRows(r.Recommendations), func(row, col int) (rgb, bool) {
		if col == 0 && row < len(rankShades) {
			return rankShades[row], true
		}
		return rgb{}, false
	})
	pdf.Ln(sectionSpacing)

	setText(pdf, rgb{})
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, footerLines[0], "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, footerLines[1], "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 5, footerLines[2], "", 1, "C", false, 0, "")

	return pdf
}

func heading(pdf *fpdf.Fpdf, text string) {
	setText(pdf, rgb{})
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
	pdf.Ln(headingTableSpace)
}

// table draws a centered grid. rows[0] is the header; bodyFill picks the
// background of body cells by zero-based body row and column.
func table(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, headerSize float64,
	headerFill rgb, rows [][]string, bodyFill func(row, col int) (rgb, bool)) {
	var total float64
	for _, w := range widths {
		total += w
	}
	pageW, _ := pdf.GetPageSize()
	left := (pageW - total) / 2

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)

	for i, row := range rows {
		pdf.SetX(left)
		h := bodyCellHeight
		if i == 0 {
			h = headerCellHeight
			pdf.SetFont("Helvetica", "B", headerSize)
			setText(pdf, headerText)
			setFill(pdf, headerFill)
		} else {
			pdf.SetFont("Helvetica", "", 10)
			setText(pdf, rgb{})
		}
		for j, cell := range row {
			fill := i == 0
			if i > 0 {
				var c rgb
				c, fill = bodyFill(i-1, j)
				if fill {
					setFill(pdf, c)
				}
			}
			pdf.CellFormat(widths[j], h, tr(cell), "1", 0, "C", fill, 0, "")
		}
		pdf.Ln(-1)
	}
}

func setText(pdf *fpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func setFill(pdf *fpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }

// paramRows lists the measurements with their units, header first.
func paramRows(fv dataset.FeatureVector) [][]string {
	return [][]string{
		{"Parameter", "Value", "Unit"},
		{"Nitrogen", formatValue(fv.Nitrogen), "kg/ha"},
		{"Phosphorus", formatValue(fv.Phosphorus), "kg/ha"},
		{"Potassium", formatValue(fv.Potassium), "kg/ha"},
		{"Temperature", formatValue(fv.Temperature), "°C"},
		{"Humidity", formatValue(fv.Humidity), "%"},
		{"pH Value", formatValue(fv.PHValue), ""},
		{"Rainfall", formatValue(fv.Rainfall), "mm"},
	}
}

// recommendationRows lists ranked crops, header first. Money columns use
// "Rs" because the standard PDF fonts have no rupee glyph.
func recommendationRows(preds []predictor.Prediction) [][]string {
	rows := [][]string{{"Rank", "Crop", "Confidence", "Yield (kg/ha)", "Price (Rs/quintal)", "Revenue (Rs)"}}
	for i, p := range preds {
		rows = append(rows, []string{
			"#" + strconv.Itoa(i+1),
			p.Crop,
			formatValue(round2(p.Confidence)) + "%",
			formatAmount(p.Yield),
			"Rs " + formatAmount(p.Price),
			"Rs " + formatAmount(p.Revenue),
		})
	}
	return rows
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// formatValue prints the shortest representation, keeping one decimal for
// whole numbers.
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// formatAmount prints v with thousands separators and two decimals.
func formatAmount(v float64) string {
	return message.NewPrinter(language.English).Sprintf("%.2f", round2(v))
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

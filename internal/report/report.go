// Package report renders a calendar month to PDF.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/akyairhashvil/wcl/internal/calendar"
	"github.com/akyairhashvil/wcl/internal/config"
	"github.com/go-pdf/fpdf"
)

// Selection tells the report which cells to highlight. picker.Model
// satisfies it.
type Selection interface {
	IsSelected(day calendar.Day) bool
	InRange(day calendar.Day) bool
}

const (
	cellW   = 38.0
	cellH   = 24.0
	headerH = 8.0
	marginX = 15.5
)

type rgb struct{ r, g, b int }

var (
	colorSelected = rgb{236, 72, 153}
	colorInRange  = rgb{251, 207, 232}
	colorFiller   = rgb{160, 160, 160}
	colorText     = rgb{20, 20, 20}
	colorBorder   = rgb{200, 200, 200}
)

// WriteMonthPDF writes the displayed month of cal as a one-page PDF. sel
// may be nil.
func WriteMonthPDF(w io.Writer, cal *calendar.Calendar, sel Selection) error {
	pdf := build(cal, sel)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WriteMonthPDFFile writes the report to path, creating parent directories.
func WriteMonthPDFFile(path string, cal *calendar.Calendar, sel Selection) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	pdf := build(cal, sel)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

// FileName is the default report name for the displayed month.
func FileName(cal *calendar.Calendar) string {
	return fmt.Sprintf("%s_%04d-%02d.pdf", config.AppName, cal.Year(), cal.Month().Number())
}

func build(cal *calendar.Calendar, sel Selection) *fpdf.Fpdf {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(cal.Header(), true)
	pdf.SetCreator(config.AppName, true)
	pdf.SetMargins(marginX, 15, marginX)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	setText(pdf, colorText)
	pdf.CellFormat(0, 12, tr(cal.Header()), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetDrawColor(colorBorder.r, colorBorder.g, colorBorder.b)
	for _, name := range cal.WeekDays {
		pdf.CellFormat(cellW, headerH, tr(name), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	month := cal.Month()
	pdf.SetFont("Arial", "", 14)
	grid := cal.MonthDaysGrid()
	for i, day := range grid {
		filler := day.MonthNumber() != month.Number() || day.Year() != month.Year()
		fill := false
		switch {
		case sel != nil && sel.IsSelected(day):
			setFill(pdf, colorSelected)
			fill = true
		case sel != nil && sel.InRange(day):
			setFill(pdf, colorInRange)
			fill = true
		}
		if filler {
			setText(pdf, colorFiller)
		} else {
			setText(pdf, colorText)
		}
		pdf.CellFormat(cellW, cellH, strconv.Itoa(day.Date()), "1", 0, "RT", fill, 0, "")
		if (i+1)%config.GridColumns == 0 {
			pdf.Ln(-1)
		}
	}
	if rem := len(grid) % config.GridColumns; rem != 0 {
		for i := rem; i < config.GridColumns; i++ {
			pdf.CellFormat(cellW, cellH, "", "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf
}

func setFill(pdf *fpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
func setText(pdf *fpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }

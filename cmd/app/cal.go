package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akyairhashvil/wcl/internal/calendar"
	"github.com/akyairhashvil/wcl/internal/config"
	"github.com/akyairhashvil/wcl/internal/report"
	"github.com/akyairhashvil/wcl/internal/util"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

const pdfAuto = "auto"

func newCalCmd(opts *rootOptions) *cobra.Command {
	var pdfPath string
	cmd := &cobra.Command{
		Use:   "cal [month] [year]",
		Short: "Print a month, or export it to PDF",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, year, err := parseMonthYear(args)
			if err != nil {
				return err
			}
			locale := opts.locale
			if !cmd.Flags().Changed("locale") {
				s, err := loadSettings(cmd, opts)
				if err != nil {
					return err
				}
				locale = s.Locale
			}
			cal := calendar.New(year, month, locale)
			if pdfPath == "" {
				return writeMonthText(cmd.OutOrStdout(), cal, nil)
			}
			if pdfPath == pdfAuto {
				pdfPath = filepath.Join(util.ReportsDir(config.AppName), report.FileName(cal))
			}
			if err := report.WriteMonthPDFFile(pdfPath, cal, nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PDF report generated: %s\n", pdfPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Write the month to a PDF file instead of printing it")
	cmd.Flags().Lookup("pdf").NoOptDefVal = pdfAuto
	return cmd
}

// parseMonthYear reads the optional month and year arguments. Zero means
// the current one.
func parseMonthYear(args []string) (month, year int, err error) {
	if len(args) > 0 {
		month, err = strconv.Atoi(args[0])
		if err != nil || month < 1 || month > 12 {
			return 0, 0, fmt.Errorf("invalid month %q: want 1-12", args[0])
		}
	}
	if len(args) > 1 {
		year, err = strconv.Atoi(args[1])
		if err != nil || year < 1 {
			return 0, 0, fmt.Errorf("invalid year %q", args[1])
		}
	}
	return month, year, nil
}

// writeMonthText prints cal as a plain 7-column grid. Selected days are
// bracketed and days inside a range are starred.
func writeMonthText(w io.Writer, cal *calendar.Calendar, sel report.Selection) error {
	var b strings.Builder
	width := config.CellWidth * config.GridColumns
	header := cal.Header()
	if pad := (width - ansi.StringWidth(header)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(header)
	b.WriteString("\n")
	for _, name := range cal.WeekDays {
		label := ansi.Truncate(name, config.WeekdayLabelWidth, "")
		b.WriteString(strings.Repeat(" ", config.CellWidth-ansi.StringWidth(label)))
		b.WriteString(label)
	}
	b.WriteString("\n")

	month := cal.Month()
	grid := cal.MonthDaysGrid()
	for i, day := range grid {
		cell := "    "
		if day.MonthNumber() == month.Number() && day.Year() == month.Year() {
			cell = fmt.Sprintf("  %2d", day.Date())
			switch {
			case sel != nil && sel.IsSelected(day):
				cell = fmt.Sprintf("[%2d]", day.Date())
			case sel != nil && sel.InRange(day):
				cell = fmt.Sprintf(" %2d*", day.Date())
			}
		}
		b.WriteString(cell)
		if (i+1)%config.GridColumns == 0 {
			b.WriteString("\n")
		}
	}
	if len(grid)%config.GridColumns != 0 {
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

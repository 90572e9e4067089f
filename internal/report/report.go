// Package report exports a monthly safety summary as a PDF for posting next
// to the board.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/warit/safeboard/internal/models"
)

// statusMark is the printable mark for each day status.
func statusMark(s models.DayStatus) string {
	switch s {
	case models.StatusSafe:
		return "S"
	case models.StatusNearMiss:
		return "N"
	case models.StatusAccident:
		return "X"
	case models.StatusUnset:
		return "-"
	}
	return "?"
}

// GenerateMonthly writes the report for one month into dir and returns the
// file path.
func GenerateMonthly(dir, company string, month models.MonthlyData, summary models.MonthSummary, streak int, content models.BoardContent) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := time.Month(month.Month + 1).String()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	title := fmt.Sprintf("Safety Report: %s %d", name, month.Year)
	if company != "" {
		title = company + " - " + title
	}
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	if content.SloganEn != "" {
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, 8, content.SloganEn)
		pdf.Ln(10)
	}

	// Day grid, one row per week-sized chunk.
	pdf.SetFont("Courier", "", 11)
	for start := 0; start < len(month.Days); start += 7 {
		end := start + 7
		if end > len(month.Days) {
			end = len(month.Days)
		}
		line := ""
		for _, d := range month.Days[start:end] {
			line += fmt.Sprintf("%2d:%s  ", d.Day, statusMark(d.Status))
		}
		pdf.Cell(0, 7, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Safe days: %d   Near misses: %d   Accidents: %d", summary.Safe, summary.NearMiss, summary.Accident))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Recorded: %d of %d days", summary.Filled, summary.Total))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Days without accident: %d", streak))
	pdf.Ln(10)

	if len(content.Metrics) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Key figures")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		for _, m := range content.Metrics {
			pdf.Cell(0, 7, fmt.Sprintf("%s: %d %s", m.Label, m.Value, m.Unit))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if len(content.Announcements) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Announcements")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		for _, a := range content.Announcements {
			pdf.MultiCell(0, 7, fmt.Sprintf("[%s] %s", a.CreatedAt.Format("Jan 02"), a.Text), "", "", false)
		}
	}

	path := filepath.Join(dir, fmt.Sprintf("safety-%d-%02d.pdf", month.Year, month.Month+1))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}

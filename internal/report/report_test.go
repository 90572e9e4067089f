package report

import (
	"os"
	"strings"
	"testing"

	"github.com/warit/safeboard/internal/models"
	"github.com/warit/safeboard/internal/testutil"
)

func TestGenerateMonthlyWritesFile(t *testing.T) {
	dir := t.TempDir()

	year := testutil.NewYear(2026).
		WithDay(7, 0, models.StatusSafe).
		WithDay(7, 1, models.StatusNearMiss).
		WithDay(7, 2, models.StatusAccident).
		Build()
	month := year.Months[7]

	content := testutil.NewContent().
		WithSlogans("ปลอดภัยไว้ก่อน", "Safety First").
		WithAnnouncement("a1", "Fire drill on Friday").
		WithMetric("Man hours", 125000, "hrs").
		Build()

	summary := models.MonthSummary{Safe: 1, NearMiss: 1, Accident: 1, Filled: 3, Total: 31}

	path, err := GenerateMonthly(dir, "Acme Plant", month, summary, 12, content)
	if err != nil {
		t.Fatalf("GenerateMonthly() error = %v", err)
	}
	if !strings.HasSuffix(path, "safety-2026-08.pdf") {
		t.Errorf("unexpected report path %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("report file is empty")
	}
}

func TestGenerateMonthlyCreatesDir(t *testing.T) {
	dir := t.TempDir() + "/nested/reports"

	year := testutil.NewYear(2026).Build()
	month := year.Months[0]

	if _, err := GenerateMonthly(dir, "", month, models.MonthSummary{Total: 31}, 0, models.BoardContent{}); err != nil {
		t.Fatalf("GenerateMonthly() error = %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("report dir not created: %v", err)
	}
}

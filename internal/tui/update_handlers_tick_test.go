package tui

import (
	"testing"
	"time"

	"github.com/warit/safeboard/internal/models"
)

func TestHandleTickFollowsTodayAcrossMidnight(t *testing.T) {
	m := setupTestBoard(t)
	next, _ := m.handleTick(TickMsg(testNow.AddDate(0, 0, 1)))
	if next.view.cursorDay != 20 {
		t.Errorf("cursor = %d, want 20", next.view.cursorDay)
	}
}

func TestHandleTickLeavesNavigatedViewAlone(t *testing.T) {
	m := setupTestBoard(t)
	m, _ = m.handleMonthNav("<")
	next, _ := m.handleTick(TickMsg(testNow.AddDate(0, 0, 1)))
	if next.view.monthIdx != 6 {
		t.Errorf("monthIdx = %d, want 6 (operator navigation wins)", next.view.monthIdx)
	}
}

func TestHandleSweepFillsPastDays(t *testing.T) {
	m := setupTestBoard(t)
	next, _ := m.handleSweep(SweepMsg(testNow))

	if got := next.cal.DayStatus(7, 18); got != models.StatusSafe {
		t.Errorf("Aug 19 = %v, want safe", got)
	}
	if got := next.cal.DayStatus(7, 19); got != models.StatusUnset {
		t.Errorf("Aug 20 at 10:00 = %v, want unset", got)
	}
}

func TestHandleSweepMarksTodayAfterCutoff(t *testing.T) {
	m := setupTestBoard(t)
	evening := time.Date(2026, 8, 20, 16, 30, 0, 0, time.UTC)
	next, _ := m.handleSweep(SweepMsg(evening))

	if got := next.cal.DayStatus(7, 19); got != models.StatusSafe {
		t.Errorf("Aug 20 at 16:30 = %v, want safe", got)
	}
}

func TestHandleSweepAdvancesCompletedMonth(t *testing.T) {
	m := setupTestBoard(t)
	m, _ = m.handleMonthNav("<") // view July
	if m.view.monthIdx != 6 {
		t.Fatalf("monthIdx = %d, want 6", m.view.monthIdx)
	}

	// The sweep itself completes July (every day is in the past).
	next, _ := m.handleSweep(SweepMsg(testNow))
	if next.view.monthIdx != 7 {
		t.Errorf("monthIdx = %d, want 7 after completed month", next.view.monthIdx)
	}
	if next.view.cursorDay != 19 {
		t.Errorf("cursor = %d, want 19", next.view.cursorDay)
	}
}

func TestHandleSweepKeepsSchedule(t *testing.T) {
	m := setupTestBoard(t)
	_, cmd := m.handleSweep(SweepMsg(testNow))
	if cmd == nil {
		t.Fatal("sweep must reschedule itself")
	}
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"

	"github.com/warit/safeboard/internal/config"
	"github.com/warit/safeboard/internal/models"
	"github.com/warit/safeboard/internal/store/mockstore"
)

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestSplitterDragResizesColumns(t *testing.T) {
	m := setupTestBoard(t)

	m = m.handleMousePress(34, 10)
	if m.drag.kind != dragSplitter {
		t.Fatal("press on the column divider should start a resize")
	}
	m = m.handleMouseMotion(46, 10) // 12 cells right of a 120 wide board = +10%
	cols := m.layout.Sizing().Cols
	if cols[0] != 38 || cols[1] != 34 {
		t.Errorf("cols = %v, want [38 34 28]", cols)
	}

	m = m.handleMouseRelease(46, 10)
	if m.drag.kind != dragNone {
		t.Error("release should clear the gesture")
	}
}

func TestSplitterDragPersistsOnlyAtRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstore.NewMockStore(ctrl)
	st.EXPECT().Get(gomock.Any()).Return("", false).AnyTimes()
	st.EXPECT().Set(config.KeyLayout, gomock.Any()).Return(nil).Times(1)

	m := NewBoardModel(st, config.DefaultBoardConfig(), testNow)
	m.width, m.height = 120, 40

	m = m.handleMousePress(34, 10)
	m = m.handleMouseMotion(40, 10)
	m = m.handleMouseMotion(46, 10)
	m = m.handleMouseRelease(46, 10)
}

func TestPanelDragSwapsSlots(t *testing.T) {
	m := setupTestBoard(t)

	m = m.handleMousePress(5, 5) // leftTop (slogan)
	if m.drag.kind != dragPanel || m.drag.fromSlot != models.SlotLeftTop {
		t.Fatalf("drag state = %+v", m.drag)
	}
	m = m.handleMouseMotion(60, 5)
	m = m.handleMouseRelease(60, 5) // centerTop (calendar)

	if got := m.layout.PanelAt(models.SlotLeftTop); got != models.PanelCalendar {
		t.Errorf("leftTop = %s, want calendar", got)
	}
	if got := m.layout.PanelAt(models.SlotCenterTop); got != models.PanelSlogan {
		t.Errorf("centerTop = %s, want slogan", got)
	}
}

func TestPanelDragBackToOriginIsNoop(t *testing.T) {
	m := setupTestBoard(t)
	before := m.layout.Slots()

	m = m.handleMousePress(5, 5)
	m = m.handleMouseMotion(60, 5)
	m = m.handleMouseMotion(5, 5)
	m = m.handleMouseRelease(5, 5)

	for slot, panel := range m.layout.Slots() {
		if before[slot] != panel {
			t.Errorf("slot %s changed to %s", slot, panel)
		}
	}
}

func TestLockedBoardIgnoresResize(t *testing.T) {
	m := setupTestBoard(t)
	m, _, _ = m.handleLayoutKeys("L")

	m = m.handleMousePress(34, 10)
	if m.drag.kind != dragNone {
		t.Fatal("locked board must not start a resize")
	}
	cols := m.layout.Sizing().Cols
	if cols[0] != config.DefaultCols[0] {
		t.Errorf("cols = %v, want defaults", cols)
	}
}

func TestLockedBoardIgnoresSwap(t *testing.T) {
	m := setupTestBoard(t)
	m, _, _ = m.handleLayoutKeys("L")
	before := m.layout.Slots()

	m = m.handleMousePress(5, 5)
	m = m.handleMouseMotion(60, 5)
	m = m.handleMouseRelease(60, 5)

	for slot, panel := range m.layout.Slots() {
		if before[slot] != panel {
			t.Errorf("slot %s changed to %s while locked", slot, panel)
		}
	}
}

func TestCalendarTapCyclesDay(t *testing.T) {
	m := setupTestBoard(t)

	// Calendar sits at centerTop by default; Aug 1 renders at grid column 6.
	x := 34 + 2 + 6*calCellWidth
	y := 3 + 1 + calGridTop
	m = m.handleMousePress(x, y)
	m = m.handleMouseRelease(x, y)

	if got := m.cal.DayStatus(7, 0); got != models.StatusSafe {
		t.Errorf("Aug 1 after tap = %v, want safe", got)
	}
	if m.view.cursorDay != 0 {
		t.Errorf("cursor = %d, want 0", m.view.cursorDay)
	}
}

func TestMouseUpdateDispatch(t *testing.T) {
	m := setupTestBoard(t)
	next, _ := m.Update(mouse(tea.MouseActionPress, 34, 10))
	b := next.(BoardModel)
	if b.drag.kind != dragSplitter {
		t.Fatal("Update should route mouse presses to the drag handler")
	}
	next, _ = b.Update(mouse(tea.MouseActionRelease, 34, 10))
	if next.(BoardModel).drag.kind != dragNone {
		t.Error("Update should route mouse releases")
	}
}

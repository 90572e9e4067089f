package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/warit/safeboard/internal/models"
)

func (m BoardModel) handleMouse(msg tea.MouseMsg) (BoardModel, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handleMousePress(msg.X, msg.Y), nil
	case tea.MouseActionMotion:
		return m.handleMouseMotion(msg.X, msg.Y), nil
	case tea.MouseActionRelease:
		return m.handleMouseRelease(msg.X, msg.Y), nil
	}
	return m, nil
}

func (m BoardModel) handleMousePress(x, y int) BoardModel {
	sizing := m.layout.Sizing()

	if group, pair, vertical, ok := splitterAt(sizing, m.width, m.height, x, y); ok {
		if m.layoutLocked() {
			m.Message = "Layout is locked."
			return m
		}
		if m.layout.BeginResize(group, pair) {
			m.drag.kind = dragSplitter
			m.drag.group = group
			m.drag.pair = pair
			m.drag.vertical = vertical
			m.drag.startX, m.drag.startY = x, y
		}
		return m
	}

	geom := boardGeometry(sizing, m.width, m.height)
	if slot, ok := slotAt(geom, x, y); ok {
		m.drag.kind = dragPanel
		m.drag.fromSlot = slot
		m.drag.startX, m.drag.startY = x, y
	}
	return m
}

func (m BoardModel) handleMouseMotion(x, y int) BoardModel {
	switch m.drag.kind {
	case dragSplitter:
		area := boardArea(m.width, m.height)
		var delta float64
		if m.drag.vertical {
			if area.W > 0 {
				delta = float64(x-m.drag.startX) / float64(area.W) * 100
			}
		} else {
			if area.H > 0 {
				delta = float64(y-m.drag.startY) / float64(area.H) * 100
			}
		}
		m.layout.Resize(delta)
	case dragPanel:
		if x != m.drag.startX || y != m.drag.startY {
			m.drag.moved = true
		}
	}
	return m
}

func (m BoardModel) handleMouseRelease(x, y int) BoardModel {
	defer m.drag.Clear()

	switch m.drag.kind {
	case dragSplitter:
		m.layout.EndResize()
	case dragPanel:
		geom := boardGeometry(m.layout.Sizing(), m.width, m.height)
		target, ok := slotAt(geom, x, y)
		if !ok {
			return m
		}
		if m.drag.moved && target != m.drag.fromSlot {
			if m.layoutLocked() {
				m.Message = "Layout is locked."
				return m
			}
			m.layout.SwapSlots(m.drag.fromSlot, target)
			return m
		}
		// A press and release inside the calendar counts as a tap on a day.
		// A drag that wandered and came back is a cancelled swap, not a tap.
		if !m.drag.moved && target == m.drag.fromSlot && m.layout.PanelAt(target) == models.PanelCalendar {
			idx := calendarDayAt(geom[target], m.cal.Year(), m.view.monthIdx, x, y)
			if idx >= 0 {
				m.view.cursorDay = idx
				m.view.followToday = false
				m.cal.CycleDayStatus(m.view.monthIdx, idx)
			}
		}
	}
	return m
}

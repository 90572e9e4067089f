package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/warit/safeboard/internal/config"
)

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear transient messages on keypress
	if m.Message != "" {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.Message = ""
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case SweepMsg:
		return m.handleSweep(msg)
	case ConfigReloadedMsg:
		return m.applyConfig(config.BoardConfig(msg)), nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
		if m.security.lock.Unlocking {
			return m.handleUnlockInput(msg)
		}
		if m.editor.Active() {
			return m.handleEditorInput(msg)
		}
		next, cmd := m.handleNormalMode(msg)
		return next, cmd
	}
	return m, nil
}

func (m BoardModel) handleWindowSize(msg tea.WindowSizeMsg) (BoardModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 && m.width < config.CompactModeThreshold {
		m.inputs.editorInput.Width = m.width / 2
	}
	return m, nil
}

func (m BoardModel) handleTick(msg TickMsg) (BoardModel, tea.Cmd) {
	prev := m.now
	m.now = time.Time(msg)
	if m.view.followToday && (prev.Day() != m.now.Day() || prev.Month() != m.now.Month() || prev.Year() != m.now.Year()) {
		m = m.jumpToToday()
	}
	return m, tickCmd()
}

func (m BoardModel) handleSweep(msg SweepMsg) (BoardModel, tea.Cmd) {
	now := time.Time(msg)
	m.cal.AutoFillSweep(now)

	// A fully recorded past month stops being interesting; move the display
	// forward so the wall shows the month in progress.
	if m.cal.Year() == now.Year() &&
		m.view.monthIdx < int(now.Month())-1 &&
		m.cal.MonthComplete(m.view.monthIdx) {
		m.view.monthIdx = int(now.Month()) - 1
		m.view.cursorDay = now.Day() - 1
	}
	return m, sweepCmd()
}

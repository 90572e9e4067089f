package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/warit/safeboard/internal/models"
	"github.com/warit/safeboard/internal/report"
	"github.com/warit/safeboard/internal/util"
)

func (m BoardModel) handleNormalMode(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	key := msg.String()
	if next, handled := m.handleCursorKeys(key); handled {
		return next, nil
	}
	if next, handled := m.handleStatusKeys(key); handled {
		return next, nil
	}
	if next, handled := m.handleMonthNav(key); handled {
		return next, nil
	}
	if next, handled := m.handleYearNav(key); handled {
		return next, nil
	}
	if next, cmd, handled := m.handleEditorOpen(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleLayoutKeys(key); handled {
		return next, cmd
	}

	switch key {
	case "t":
		return m.jumpToToday(), nil
	case "T":
		next := "default"
		if m.cfg.Theme == "default" {
			next = "dracula"
		}
		m.cfg.Theme = next
		SetTheme(next)
	case "ctrl+r":
		month := m.cal.Month(m.view.monthIdx)
		summary := m.cal.MonthSummary(m.view.monthIdx)
		path, err := report.GenerateMonthly(
			util.ReportsDir("safeboard"), m.company,
			month, summary, m.cal.Streak(m.now), m.cal.Content())
		if err != nil {
			m.Message = fmt.Sprintf("Report failed: %v", err)
		} else {
			m.Message = fmt.Sprintf("Report saved: %s", path)
		}
		return m, nil
	}
	return m, nil
}

func (m BoardModel) handleCursorKeys(key string) (BoardModel, bool) {
	days := m.displayedDays()
	switch key {
	case "left":
		m.view.cursorDay = util.Clamp(m.view.cursorDay-1, 0, days-1)
	case "right":
		m.view.cursorDay = util.Clamp(m.view.cursorDay+1, 0, days-1)
	case "up", "k":
		m.view.cursorDay = util.Clamp(m.view.cursorDay-7, 0, days-1)
	case "down", "j":
		m.view.cursorDay = util.Clamp(m.view.cursorDay+7, 0, days-1)
	default:
		return m, false
	}
	m.view.followToday = false
	return m, true
}

func (m BoardModel) handleStatusKeys(key string) (BoardModel, bool) {
	switch key {
	case "enter", " ":
		m.cal.CycleDayStatus(m.view.monthIdx, m.view.cursorDay)
	case "s":
		m.cal.SetDayStatus(m.view.monthIdx, m.view.cursorDay, models.StatusSafe)
	case "n":
		m.cal.SetDayStatus(m.view.monthIdx, m.view.cursorDay, models.StatusNearMiss)
	case "a":
		m.cal.SetDayStatus(m.view.monthIdx, m.view.cursorDay, models.StatusAccident)
	case "c":
		m.cal.SetDayStatus(m.view.monthIdx, m.view.cursorDay, models.StatusUnset)
	default:
		return m, false
	}
	return m, true
}

func (m BoardModel) handleMonthNav(key string) (BoardModel, bool) {
	switch key {
	case "<", "h":
		if m.view.monthIdx > 0 {
			m.view.monthIdx--
		}
	case ">", "l":
		if m.view.monthIdx < 11 {
			m.view.monthIdx++
		}
	default:
		return m, false
	}
	m.view.cursorDay = util.Clamp(m.view.cursorDay, 0, m.displayedDays()-1)
	m.view.followToday = false
	return m, true
}

func (m BoardModel) handleYearNav(key string) (BoardModel, bool) {
	switch key {
	case "[":
		m.cal.SwitchYear(m.cal.Year() - 1)
	case "]":
		m.cal.SwitchYear(m.cal.Year() + 1)
	default:
		return m, false
	}
	m.view.cursorDay = util.Clamp(m.view.cursorDay, 0, m.displayedDays()-1)
	m.view.followToday = false
	return m, true
}

func (m BoardModel) handleLayoutKeys(key string) (BoardModel, tea.Cmd, bool) {
	switch key {
	case "L":
		if m.layoutLocked() {
			if m.security.lock.PassphraseHash == "" {
				m.security.lock.Locked = false
				m.Message = "Layout unlocked."
			} else {
				m.security.lock.Unlocking = true
				m.security.lock.Message = "Enter passphrase to unlock layout"
				m.inputs.passphraseInput.Reset()
				m.inputs.passphraseInput.Focus()
			}
		} else {
			m.security.lock.Locked = true
			m.Message = "Layout locked."
		}
		return m, nil, true
	case "R":
		if m.layoutLocked() {
			m.Message = "Layout is locked."
		} else {
			m.layout.Reset()
			m.Message = "Layout reset to defaults."
		}
		return m, nil, true
	}
	return m, nil, false
}

func (m BoardModel) handleUnlockInput(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.security.lock.Unlocking = false
		m.security.lock.Message = ""
		m.inputs.passphraseInput.Reset()
		return m, nil
	case tea.KeyEnter:
		entered := m.inputs.passphraseInput.Value()
		if limited, wait := m.security.lock.RateLimited(m.now); limited {
			m.security.lock.Message = fmt.Sprintf("Too many attempts. Try again in %s", wait.Round(time.Second))
			m.inputs.passphraseInput.Reset()
			return m, nil
		}
		if entered != "" && util.HashPassphrase(entered) == m.security.lock.PassphraseHash {
			m.security.lock.Locked = false
			m.security.lock.Unlocking = false
			m.security.lock.Message = ""
			m.security.lock.ClearFailures()
			m.Message = "Layout unlocked."
		} else {
			m.security.lock.RecordFailure(m.now)
			m.security.lock.Message = "Incorrect passphrase"
		}
		m.inputs.passphraseInput.Reset()
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs.passphraseInput, cmd = m.inputs.passphraseInput.Update(msg)
	return m, cmd
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/warit/safeboard/internal/calendar"
	"github.com/warit/safeboard/internal/config"
	"github.com/warit/safeboard/internal/layout"
	"github.com/warit/safeboard/internal/store"
)

var AppVersion = "0"

// --- Messages ---

// TickMsg drives the wall clock.
type TickMsg time.Time

// SweepMsg triggers the periodic auto-fill of past days.
type SweepMsg time.Time

// ConfigReloadedMsg carries a freshly parsed board config file.
type ConfigReloadedMsg config.BoardConfig

func tickCmd() tea.Cmd {
	return tea.Tick(config.ClockTickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func sweepCmd() tea.Cmd {
	return tea.Tick(config.AutoFillInterval, func(t time.Time) tea.Msg { return SweepMsg(t) })
}

// --- Model ---

type BoardModel struct {
	store  store.Store
	layout *layout.Engine
	cal    *calendar.Engine
	cfg    config.BoardConfig

	company string

	view     *ViewState
	inputs   *InputState
	editor   *EditorManager
	security *SecurityManager
	drag     *DragState

	now           time.Time
	err           error
	Message       string
	width, height int
}

func NewBoardModel(st store.Store, cfg config.BoardConfig, now time.Time) BoardModel {
	seed := cfg.SeedContent()
	cal := calendar.New(st, now.Year(), seed)
	cal.SetAutoSafeHour(cfg.AutoSafeHour)

	company, _ := st.Get(config.KeyCompany)
	hash, _ := st.Get(config.KeyPassHash)

	inputs := newInputState()
	m := BoardModel{
		store:    st,
		layout:   layout.New(st),
		cal:      cal,
		cfg:      cfg,
		company:  company,
		view:     newViewState(int(now.Month())-1, now.Day()-1),
		inputs:   inputs,
		editor:   newEditorManager(),
		security: newSecurityManager(NewLockModel(hash, inputs.passphraseInput)),
		drag:     newDragState(),
		now:      now,
	}
	SetTheme(cfg.Theme)
	return m
}

func (m BoardModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		func() tea.Msg { return SweepMsg(time.Now()) },
	)
}

// applyConfig folds a reloaded config file into the running board.
func (m BoardModel) applyConfig(cfg config.BoardConfig) BoardModel {
	m.cfg = cfg
	m.cal.SetAutoSafeHour(cfg.AutoSafeHour)
	SetTheme(cfg.Theme)
	return m
}

// displayedDays is the number of days in the displayed month.
func (m BoardModel) displayedDays() int {
	return len(m.cal.Month(m.view.monthIdx).Days)
}

// jumpToToday re-aligns the displayed month and cursor with the clock.
func (m BoardModel) jumpToToday() BoardModel {
	if m.cal.Year() != m.now.Year() {
		m.cal.SwitchYear(m.now.Year())
	}
	m.view.monthIdx = int(m.now.Month()) - 1
	m.view.cursorDay = m.now.Day() - 1
	m.view.followToday = true
	return m
}

// layoutLocked reports whether layout mutations are currently blocked.
func (m BoardModel) layoutLocked() bool {
	return m.security.lock.Locked
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/warit/safeboard/internal/config"
	"github.com/warit/safeboard/internal/store"
	"github.com/warit/safeboard/internal/util"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateInitializing SessionState = iota
	StateBoard
)

// MainModel is the root bubbletea model that switches between sub-models.
type MainModel struct {
	state     SessionState
	store     store.Store
	cfg       config.BoardConfig
	textInput textinput.Model
	board     BoardModel
	err       error
	width     int
	height    int
}

func NewMainModel(st store.Store, cfg config.BoardConfig) MainModel {
	m := MainModel{store: st, cfg: cfg}

	company, ok := st.Get(config.KeyCompany)
	if !ok && strings.TrimSpace(cfg.CompanyName) != "" {
		// The config file can skip the interactive setup entirely.
		util.LogError("save company name", st.Set(config.KeyCompany, cfg.CompanyName))
		company, ok = cfg.CompanyName, true
	}

	if ok && company != "" {
		m.state = StateBoard
		m.board = NewBoardModel(st, cfg, time.Now())
	} else {
		m.state = StateInitializing
		ti := textinput.New()
		ti.Placeholder = "Company name"
		ti.Focus()
		ti.CharLimit = 60
		ti.Width = 40
		m.textInput = ti
	}
	return m
}

func (m MainModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	cmds = append(cmds, textinput.Blink)

	// If we start directly on the board (company already set),
	// we must fire the board's Init() to start the clock and sweep.
	if m.state == StateBoard {
		cmds = append(cmds, m.board.Init())
	}
	return tea.Batch(cmds...)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateBoard {
			var next tea.Model
			next, cmd = m.board.Update(msg)
			m.board = next.(BoardModel)
			return m, cmd
		}
	}

	switch m.state {
	case StateInitializing:
		return m.updateInitializing(msg)
	case StateBoard:
		next, nextCmd := m.board.Update(msg)
		m.board = next.(BoardModel)
		return m, nextCmd
	}
	return m, cmd
}

func (m MainModel) updateInitializing(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			name := strings.TrimSpace(m.textInput.Value())
			if name == "" {
				m.err = fmt.Errorf("please enter a company name")
				return m, nil
			}
			if err := m.store.Set(config.KeyCompany, name); err != nil {
				m.err = err
				return m, nil
			}

			m.state = StateBoard
			m.board = NewBoardModel(m.store, m.cfg, time.Now())
			m.board.width = m.width
			m.board.height = m.height
			m.err = nil
			return m, m.board.Init()
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m MainModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\nPress Ctrl+C to quit.", m.err)
	}

	switch m.state {
	case StateInitializing:
		return fmt.Sprintf(
			"\n  %s\n\n  %s\n\n  %s\n",
			"Welcome. Let's set up your safety board.",
			"Whose board is this?",
			m.textInput.View(),
		)
	case StateBoard:
		return m.board.View()
	}
	return ""
}

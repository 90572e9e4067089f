package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/warit/safeboard/internal/config"
	"github.com/warit/safeboard/internal/testutil"
)

func TestNewMainModelFreshStoreStartsSetup(t *testing.T) {
	st := testutil.NewMemStore()
	m := NewMainModel(st, config.BoardConfig{Theme: "default", AutoSafeHour: 16})
	if m.state != StateInitializing {
		t.Fatalf("state = %v, want StateInitializing", m.state)
	}
}

func TestNewMainModelConfigNameSkipsSetup(t *testing.T) {
	st := testutil.NewMemStore()
	cfg := config.DefaultBoardConfig()
	cfg.CompanyName = "Acme Plant"
	m := NewMainModel(st, cfg)
	if m.state != StateBoard {
		t.Fatalf("state = %v, want StateBoard", m.state)
	}
	if got := st.Records[config.KeyCompany]; got != "Acme Plant" {
		t.Errorf("stored company = %q", got)
	}
}

func TestNewMainModelExistingCompanyStartsBoard(t *testing.T) {
	st := testutil.NewMemStore()
	st.Records[config.KeyCompany] = "Acme Plant"
	m := NewMainModel(st, config.DefaultBoardConfig())
	if m.state != StateBoard {
		t.Fatalf("state = %v, want StateBoard", m.state)
	}
	if m.board.company != "Acme Plant" {
		t.Errorf("board company = %q", m.board.company)
	}
}

func TestSetupTransitionsToBoardOnEnter(t *testing.T) {
	st := testutil.NewMemStore()
	m := NewMainModel(st, config.DefaultBoardConfig())

	m.textInput.SetValue("Acme Plant")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	mm := next.(MainModel)
	if mm.state != StateBoard {
		t.Fatalf("state = %v, want StateBoard", mm.state)
	}
	if cmd == nil {
		t.Error("board transition should fire the board Init")
	}
	if got := st.Records[config.KeyCompany]; got != "Acme Plant" {
		t.Errorf("stored company = %q", got)
	}
}

func TestSetupRejectsBlankCompany(t *testing.T) {
	st := testutil.NewMemStore()
	m := NewMainModel(st, config.DefaultBoardConfig())

	m.textInput.SetValue("   ")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	mm := next.(MainModel)
	if mm.state != StateInitializing {
		t.Fatal("blank name must not leave setup")
	}
	if mm.err == nil {
		t.Error("expected a validation error")
	}
}

func TestMainModelCtrlCQuits(t *testing.T) {
	st := testutil.NewMemStore()
	m := NewMainModel(st, config.DefaultBoardConfig())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
}

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/warit/safeboard/internal/config"
	"github.com/warit/safeboard/internal/layout"
	"github.com/warit/safeboard/internal/models"
)

// ViewState tracks the displayed month and the calendar cursor.
type ViewState struct {
	monthIdx    int
	cursorDay   int // zero-based day index inside the displayed month
	followToday bool
}

func newViewState(monthIdx, todayIdx int) *ViewState {
	return &ViewState{
		monthIdx:    monthIdx,
		cursorDay:   todayIdx,
		followToday: true,
	}
}

// Editor modes. EditorNone means normal key handling.
type EditorMode int

const (
	EditorNone EditorMode = iota
	EditorSlogan
	EditorAnnouncement
	EditorMetric
	EditorPolicy
)

// EditorManager tracks the open inline editor and its stage for the
// multi-field editors.
type EditorManager struct {
	mode  EditorMode
	stage int

	// Staged values collected across editor stages.
	sloganTh    string
	metricLabel string
	metricValue int
}

func newEditorManager() *EditorManager {
	return &EditorManager{}
}

func (e *EditorManager) Open(mode EditorMode) {
	e.mode = mode
	e.stage = 0
	e.sloganTh = ""
	e.metricLabel = ""
	e.metricValue = 0
}

func (e *EditorManager) Close() {
	e.mode = EditorNone
	e.stage = 0
}

func (e *EditorManager) Active() bool {
	return e.mode != EditorNone
}

// InputState stores all text input models.
type InputState struct {
	editorInput     textinput.Model
	passphraseInput textinput.Model
}

func newInputState() *InputState {
	ei := textinput.New()
	ei.CharLimit = config.MaxAnnouncementLength
	ei.Width = 50

	pi := textinput.New()
	pi.Placeholder = "Passphrase"
	pi.EchoMode = textinput.EchoPassword
	pi.Width = 30

	return &InputState{
		editorInput:     ei,
		passphraseInput: pi,
	}
}

// SecurityManager wraps the layout lock.
type SecurityManager struct {
	lock LockModel
}

func newSecurityManager(lock LockModel) *SecurityManager {
	return &SecurityManager{lock: lock}
}

// Drag kinds for active mouse gestures.
type dragKind int

const (
	dragNone dragKind = iota
	dragSplitter
	dragPanel
)

// DragState tracks an in-flight mouse gesture on the board.
type DragState struct {
	kind     dragKind
	group    layout.GroupID
	pair     int
	vertical bool
	startX   int
	startY   int
	fromSlot models.Slot
	moved    bool
}

func newDragState() *DragState {
	return &DragState{}
}

func (d *DragState) Clear() {
	*d = DragState{}
}

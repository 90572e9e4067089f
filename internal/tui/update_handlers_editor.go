package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/warit/safeboard/internal/content"
	"github.com/warit/safeboard/internal/models"
)

func (m BoardModel) handleEditorOpen(key string) (BoardModel, tea.Cmd, bool) {
	switch key {
	case "e":
		m.editor.Open(EditorSlogan)
		m.inputs.editorInput.Placeholder = "Slogan (Thai), blank keeps current"
		m.inputs.editorInput.SetValue("")
		m.inputs.editorInput.Focus()
		return m, nil, true
	case "A":
		m.editor.Open(EditorAnnouncement)
		m.inputs.editorInput.Placeholder = "New announcement..."
		m.inputs.editorInput.SetValue("")
		m.inputs.editorInput.Focus()
		return m, nil, true
	case "D":
		cur := m.cal.Content()
		if n := len(cur.Announcements); n > 0 {
			m.cal.SetContent(content.RemoveAnnouncement(cur, cur.Announcements[n-1].ID))
			m.Message = "Announcement removed."
		}
		return m, nil, true
	case "K":
		m.editor.Open(EditorMetric)
		m.inputs.editorInput.Placeholder = "Metric label (e.g. Man hours)"
		m.inputs.editorInput.SetValue("")
		m.inputs.editorInput.Focus()
		return m, nil, true
	case "P":
		m.editor.Open(EditorPolicy)
		m.inputs.editorInput.Placeholder = "New policy line..."
		m.inputs.editorInput.SetValue("")
		m.inputs.editorInput.Focus()
		return m, nil, true
	}
	return m, nil, false
}

func (m BoardModel) handleEditorInput(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editor.Close()
		m.inputs.editorInput.Reset()
		return m, nil
	case tea.KeyEnter:
		return m.commitEditorStage(), nil
	}
	var cmd tea.Cmd
	m.inputs.editorInput, cmd = m.inputs.editorInput.Update(msg)
	return m, cmd
}

// commitEditorStage consumes the current input value and either advances the
// editor to its next stage or applies the collected edit to the board.
func (m BoardModel) commitEditorStage() BoardModel {
	value := strings.TrimSpace(m.inputs.editorInput.Value())

	switch m.editor.mode {
	case EditorSlogan:
		if m.editor.stage == 0 {
			m.editor.sloganTh = value
			m.editor.stage = 1
			m.inputs.editorInput.Placeholder = "Slogan (English), blank keeps current"
			m.inputs.editorInput.SetValue("")
			return m
		}
		edit := models.BoardContent{SloganTh: m.editor.sloganTh, SloganEn: value}
		m.cal.SetContent(content.ApplyTextEdits(m.cal.Content(), edit))
		m.Message = "Slogans updated."

	case EditorAnnouncement:
		if value != "" {
			m.cal.SetContent(content.AddAnnouncement(m.cal.Content(), value, m.now))
			m.Message = "Announcement posted."
		}

	case EditorMetric:
		switch m.editor.stage {
		case 0:
			if value == "" {
				return m
			}
			m.editor.metricLabel = value
			m.editor.stage = 1
			m.inputs.editorInput.Placeholder = "Value (number)"
			m.inputs.editorInput.SetValue("")
			return m
		case 1:
			n, err := strconv.Atoi(value)
			if err != nil {
				m.Message = "Metric value must be a number."
				m.editor.Close()
				m.inputs.editorInput.Reset()
				return m
			}
			m.editor.metricValue = n
			m.editor.stage = 2
			m.inputs.editorInput.Placeholder = "Unit (blank keeps current)"
			m.inputs.editorInput.SetValue("")
			return m
		case 2:
			m.cal.SetContent(content.SetMetric(m.cal.Content(), m.editor.metricLabel, m.editor.metricValue, value))
			m.Message = "Metric updated."
		}

	case EditorPolicy:
		if value != "" {
			cur := m.cal.Content()
			cur.PolicyLines = append(cur.PolicyLines, value)
			m.cal.SetContent(cur)
			m.Message = "Policy line added."
		}
	}

	m.editor.Close()
	m.inputs.editorInput.Reset()
	return m
}

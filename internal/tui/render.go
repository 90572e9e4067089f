package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m BoardModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := m.renderHeader()
	board := m.renderBoard()
	footer := m.renderFooter()

	lines := strings.Split(header, "\n")
	if board != "" {
		lines = append(lines, strings.Split(board, "\n")...)
	}
	lines = append(lines, footer)

	if m.height > 0 {
		if len(lines) > m.height {
			lines = lines[:m.height]
		} else if len(lines) < m.height {
			lines = append(lines, make([]string, m.height-len(lines))...)
		}
	}
	return strings.Join(lines, "\n")
}

func (m BoardModel) renderHeader() string {
	left := m.company
	if left == "" {
		left = "Safety Board"
	}
	clock := m.now.Format("Mon 2 Jan 2006  15:04:05")
	right := fmt.Sprintf("%d days without accident", m.cal.Streak(m.now))
	if m.layoutLocked() {
		right += "  [LOCKED]"
	}

	content := fmt.Sprintf("%s  |  %s  |  %s", CurrentTheme.Title.Render(left), clock, CurrentTheme.Safe.Render(right))

	frame := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(0, 1)
	extra := lipgloss.Width(frame.Render(""))
	w := m.width - extra
	if w < 1 {
		w = 1
	}
	return frame.Width(w).Render(content)
}

func (m BoardModel) renderBoard() string {
	area := boardArea(m.width, m.height)
	if area.H <= 0 {
		return ""
	}
	geom := boardGeometry(m.layout.Sizing(), m.width, m.height)

	var cols []string
	for col := 0; col < 3; col++ {
		var cells []string
		for _, slot := range slotsByColumn[col] {
			rect := geom[slot]
			cells = append(cells, m.renderPanelFrame(slot, rect))
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, cells...))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	return lipgloss.NewStyle().Height(area.H).MaxHeight(area.H).Render(board)
}

func (m BoardModel) renderFooter() string {
	if m.security.lock.Unlocking {
		prompt := m.security.lock.Message
		if prompt == "" {
			prompt = "Passphrase"
		}
		return CurrentTheme.Focused.Render(prompt+": ") + m.inputs.passphraseInput.View()
	}
	if m.editor.Active() {
		return CurrentTheme.Input.Render(m.inputs.editorInput.View())
	}
	if m.Message != "" {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, CurrentTheme.Highlight.Render(m.Message))
	}
	help := "[arrows]Day|[enter]Cycle|[s/n/a/c]Mark|[</>]Month|[[/]]Year|[t]Today|[e]Slogan|[A]Post|[K]Metric|[P]Policy|[L]Lock|[R]Reset|[ctrl+r]Report|[q]Quit"
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, CurrentTheme.Dim.Render(help))
}

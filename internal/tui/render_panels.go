package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/warit/safeboard/internal/config"
	"github.com/warit/safeboard/internal/models"
	"github.com/warit/safeboard/internal/util"
)

func (m BoardModel) renderPanelFrame(slot models.Slot, rect Rect) string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Dim.GetForeground()).
		Padding(0, 1)
	if m.drag.kind == dragPanel && m.drag.fromSlot == slot {
		frame = frame.BorderForeground(CurrentTheme.Border).BorderStyle(lipgloss.ThickBorder())
	}

	extraW := lipgloss.Width(frame.Render(""))
	extraH := lipgloss.Height(frame.Render(""))
	contentW := rect.W - extraW
	contentH := rect.H - extraH
	if contentW < 0 {
		contentW = 0
	}
	if contentH < 0 {
		contentH = 0
	}

	content := m.renderPanel(m.layout.PanelAt(slot), contentW, contentH)
	return frame.Width(contentW).Height(contentH).MaxHeight(rect.H).Render(content)
}

func (m BoardModel) renderPanel(panel models.Panel, w, h int) string {
	switch panel {
	case models.PanelSlogan:
		return m.renderSlogan(w)
	case models.PanelSafetyData:
		return m.renderSafetyData(w)
	case models.PanelAnnouncements:
		return m.renderAnnouncements(w, h)
	case models.PanelCalendar:
		return m.renderCalendar(w)
	case models.PanelStreak:
		return m.renderStreak(w)
	case models.PanelPolicy:
		return m.renderPolicy(w, h)
	case models.PanelPoster:
		return m.renderPoster(w, h)
	}
	return ""
}

func (m BoardModel) renderSlogan(w int) string {
	c := m.cal.Content()
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Width(w).Render(util.Truncate(c.SloganTh, config.TruncationSuffix, config.MaxSloganLength)))
	b.WriteString("\n")
	b.WriteString(CurrentTheme.Title.Width(w).Align(lipgloss.Center).Render(util.Truncate(c.SloganEn, config.TruncationSuffix, config.MaxSloganLength)))
	return b.String()
}

func (m BoardModel) renderSafetyData(w int) string {
	c := m.cal.Content()
	var b strings.Builder
	b.WriteString(CurrentTheme.Title.Render("Safety Data") + "\n")
	if len(c.Metrics) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("  (no figures yet)"))
		return b.String()
	}
	for _, metric := range c.Metrics {
		line := fmt.Sprintf("%s: %s", metric.Label, CurrentTheme.Focused.Render(fmt.Sprintf("%d %s", metric.Value, metric.Unit)))
		b.WriteString(ansi.Truncate(line, w, config.TruncationSuffix) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m BoardModel) renderAnnouncements(w, h int) string {
	c := m.cal.Content()
	var b strings.Builder
	b.WriteString(CurrentTheme.Title.Render("Announcements") + "\n")
	if len(c.Announcements) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("  (nothing posted)"))
		return b.String()
	}
	visible := config.MaxVisibleAnnouncements
	if h > 1 && h-1 < visible {
		visible = h - 1
	}
	start := len(c.Announcements) - visible
	if start < 0 {
		start = 0
	}
	for _, a := range c.Announcements[start:] {
		line := fmt.Sprintf("%s %s", CurrentTheme.Dim.Render(a.CreatedAt.Format("02 Jan")), a.Text)
		b.WriteString(ansi.Truncate(line, w, config.TruncationSuffix) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m BoardModel) renderCalendar(w int) string {
	year := m.cal.Year()
	month := m.cal.Month(m.view.monthIdx)
	title := fmt.Sprintf("%s %d", time.Month(m.view.monthIdx+1), year)

	var b strings.Builder
	b.WriteString(CurrentTheme.Title.Render(title) + "\n")
	b.WriteString(CurrentTheme.Dim.Render("Sun Mon Tue Wed Thu Fri Sat") + "\n")

	today := -1
	if year == m.now.Year() && m.view.monthIdx == int(m.now.Month())-1 {
		today = m.now.Day() - 1
	}

	firstDay := int(time.Date(year, time.Month(m.view.monthIdx+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
	b.WriteString(strings.Repeat(" ", firstDay*calCellWidth))
	col := firstDay
	for i, d := range month.Days {
		cell := fmt.Sprintf("%3d ", d.Day)
		style := statusStyle(d.Status)
		switch {
		case i == m.view.cursorDay:
			cell = CurrentTheme.Cursor.Render(cell)
		case i == today:
			cell = CurrentTheme.Today.Render(cell)
		default:
			cell = style.Render(cell)
		}
		b.WriteString(cell)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}

	summary := m.cal.MonthSummary(m.view.monthIdx)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d  %s %d  %s %d",
		CurrentTheme.Safe.Render("safe"), summary.Safe,
		CurrentTheme.NearMiss.Render("near"), summary.NearMiss,
		CurrentTheme.Accident.Render("acc"), summary.Accident))
	return b.String()
}

func (m BoardModel) renderStreak(w int) string {
	streak := m.cal.Streak(m.now)
	var b strings.Builder
	b.WriteString(CurrentTheme.Title.Render("Streak") + "\n\n")
	b.WriteString(CurrentTheme.Safe.Width(w).Align(lipgloss.Center).Render(fmt.Sprintf("%d", streak)))
	b.WriteString("\n")
	b.WriteString(CurrentTheme.Dim.Width(w).Align(lipgloss.Center).Render("days without accident"))
	return b.String()
}

func (m BoardModel) renderPolicy(w, h int) string {
	c := m.cal.Content()
	var b strings.Builder
	title := c.PolicyTitle
	if title == "" {
		title = "Safety Policy"
	}
	b.WriteString(CurrentTheme.Title.Render(title) + "\n")
	max := len(c.PolicyLines)
	if h > 1 && h-1 < max {
		max = h - 1
	}
	for _, line := range c.PolicyLines[:max] {
		b.WriteString(util.Truncate("• "+line, config.TruncationSuffix, w) + "\n")
	}
	if len(c.PolicyLines) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("  (no policy lines)"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m BoardModel) renderPoster(w, h int) string {
	c := m.cal.Content()
	if c.PolicyPoster != "" {
		return CurrentTheme.Title.Render("Poster") + "\n" + CurrentTheme.Dim.Render(util.Truncate(c.PolicyPoster, config.TruncationSuffix, w))
	}
	art := []string{
		"  _____  ",
		" /     \\ ",
		"| STOP! |",
		" \\_____/ ",
		"THINK SAFETY",
	}
	var b strings.Builder
	for _, line := range art {
		if h > 0 && lipgloss.Height(b.String()) >= h {
			break
		}
		b.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Center, line) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func statusStyle(s models.DayStatus) lipgloss.Style {
	switch s {
	case models.StatusSafe:
		return CurrentTheme.Safe
	case models.StatusNearMiss:
		return CurrentTheme.NearMiss
	case models.StatusAccident:
		return CurrentTheme.Accident
	}
	return CurrentTheme.Unset
}

package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Title     lipgloss.Style
	Safe      lipgloss.Style
	NearMiss  lipgloss.Style
	Accident  lipgloss.Style
	Unset     lipgloss.Style
	Today     lipgloss.Style
	Cursor    lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Input     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(0, 1),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Safe:      lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
		NearMiss:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Accident:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Unset:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Today:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("63")).Bold(true),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(0, 1),
		Border:    lipgloss.Color("62"), // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Safe:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),  // Green
		NearMiss:  lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),  // Yellow
		Accident:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),  // Red
		Unset:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),              // Comment
		Today:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")).Bold(true),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Money     lipgloss.Style
	JobName   lipgloss.Style
	Working   lipgloss.Style
	Paused    lipgloss.Style
	Vacation  lipgloss.Style
	Input     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Money:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		JobName:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Working:   lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true),
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Vacation:  lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),                                                                   // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center), // Cyan
		Money:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),                       // Green
		JobName:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),                                  // White
		Working:   lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true),
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Vacation:  lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true), // Cyan
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
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

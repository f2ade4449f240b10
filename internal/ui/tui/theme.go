package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Label    lipgloss.Style
	Invalid  lipgloss.Style
	Button   lipgloss.Style
	Focused  lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
}

func DefaultTheme() Theme {
	button := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 2).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("25"))

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Label:   lipgloss.NewStyle().Bold(true),
		Invalid: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Button:  button,
		Focused: button.Background(lipgloss.Color("33")).Underline(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}

package tui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	SectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	SelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	MutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	HelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Hex styles text in a theme color.
func Hex(value string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

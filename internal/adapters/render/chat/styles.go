package chat

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	body    lipgloss.Style
	heading lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	hint    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		body:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		heading: lipgloss.NewStyle().Bold(true),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		hint:    lipgloss.NewStyle().Faint(true),
	}
}

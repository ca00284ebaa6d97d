package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("62")
	muted  = lipgloss.Color("241")
	danger = lipgloss.Color("203")
	drop   = lipgloss.Color("212")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	noticeStyle = lipgloss.NewStyle().Bold(true).Foreground(danger)
	hiddenStyle = lipgloss.NewStyle().Foreground(muted)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)
	inputFocusedStyle = inputStyle.BorderForeground(accent)
	inputErrorStyle   = inputStyle.BorderForeground(danger)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)
	columnActiveStyle = columnStyle.BorderForeground(accent)
	columnDropStyle   = columnStyle.BorderForeground(drop).BorderStyle(lipgloss.DoubleBorder())
	columnTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)

	cardStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cardSelectedStyle = lipgloss.NewStyle().Foreground(drop).Bold(true)
	// Faint stands in for the reduced opacity of a lifted card.
	cardLiftedStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

package tui

import "github.com/charmbracelet/lipgloss"

var (
	foreground = lipgloss.Color("#fafafa")
	muted      = lipgloss.Color("#a1a1aa")
	accent     = lipgloss.Color("#60a5fa")
	border     = lipgloss.Color("#27272a")

	loadingStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	progressStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(foreground)

	textStyle = lipgloss.NewStyle().
			Foreground(foreground)

	dimStyle = lipgloss.NewStyle().
			Foreground(muted)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(foreground)

	linkStyle = lipgloss.NewStyle().
			Foreground(accent)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1)
)

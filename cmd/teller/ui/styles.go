// Package ui provides the interactive teller window: a terminal chat
// front end that plays the chat-platform transport for the conversation
// core, delivering prompts and rendering reports and notices.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	tellerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFC107")).
			Bold(true)

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2196F3"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e53935")).
			Bold(true)

	reportStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFC107")).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7a89")).
			Italic(true)
)

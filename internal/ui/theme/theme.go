// Package theme holds the color palette and text styles of the
// terminal output.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — friendly classroom colors, readable on dark terminals
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Accent  = lipgloss.Color("#F97316") // Orange
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Question = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Correct = lipgloss.NewStyle().
		Bold(true).
		Foreground(Success)

	Wrong = lipgloss.NewStyle().
		Bold(true).
		Foreground(Error)

	Highlight = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)
)

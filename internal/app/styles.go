package app

import "github.com/charmbracelet/lipgloss"

// The dashboard inherits the terminal's palette; styling is limited to
// emphasis attributes.
var (
	hintStyle    = lipgloss.NewStyle().Faint(true)
	weatherStyle = lipgloss.NewStyle()
)

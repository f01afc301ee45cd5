package tui

import "github.com/charmbracelet/lipgloss"

// Dataset-curation palette: warm amber for flagged noise, cool teal for
// filenames, muted sand for secondary text.
var (
	ColorInk       = lipgloss.Color("#EBDBB2")
	ColorDim       = lipgloss.Color("#928374")
	ColorAccent    = lipgloss.Color("#8EC07C")
	ColorAccentAlt = lipgloss.Color("#83A598")
	ColorSuccess   = lipgloss.Color("#B8BB26")
	ColorWarn      = lipgloss.Color("#FABD2F")
)

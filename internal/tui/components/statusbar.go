package components

import (
	"strings"

	"github.com/theirongolddev/deeday/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// an optional flash message and the roster summary on the right.
func RenderStatusBar(width int, hints, flash, summary string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	flashStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	left := " " + hints
	right := ""
	if flash != "" {
		right = flashStyle.Render(flash) + "  "
	}
	if summary != "" {
		right += summary + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}

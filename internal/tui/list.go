package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/deeday/internal/birthday"
	"github.com/theirongolddev/deeday/internal/cli"
	"github.com/theirongolddev/deeday/internal/tui/components"
	"github.com/theirongolddev/deeday/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	rowHeight = 2 // name line + birthday line
	soonDays  = 7
)

func (a App) renderList(entries []birthday.Entry, w, h int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var body strings.Builder

	// Search line
	switch {
	case a.mode == modeSearch:
		body.WriteString(a.search.View())
	case a.query != "":
		body.WriteString(mutedStyle.Render("/ " + a.query))
		body.WriteString(dimStyle.Render("  [Esc] clear"))
	default:
		body.WriteString(dimStyle.Render("/ Search..."))
	}
	body.WriteString("\n")
	body.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	title := "Birthday List"
	if a.sortUpcoming {
		title += " · upcoming first"
	}

	if len(entries) == 0 {
		body.WriteString("\n")
		body.WriteString(mutedStyle.Render("No birthdays added yet"))
		return components.ContentCard(title, body.String(), w, a.mode == modeList)
	}

	visible := (h - 6) / rowHeight // card border (2) + title (1) + search (2) + slack
	if visible < 1 {
		visible = 1
	}

	cursor := a.cursor
	if cursor >= len(entries) {
		cursor = len(entries) - 1
	}
	offset := a.offset
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+visible {
		offset = cursor - visible + 1
	}
	end := offset + visible
	if end > len(entries) {
		end = len(entries)
	}

	for i := offset; i < end; i++ {
		body.WriteString(a.renderRow(entries[i], innerW, i == cursor))
		if i < end-1 {
			body.WriteString("\n")
		}
	}

	if len(entries) > visible {
		body.WriteString("\n")
		body.WriteString(dimStyle.Render(fmt.Sprintf("%d–%d of %d", offset+1, end, len(entries))))
	}

	return components.ContentCard(title, body.String(), w, a.mode == modeList)
}

func (a App) renderRow(e birthday.Entry, innerW int, selected bool) string {
	t := theme.Active

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	relStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	infoStyle := lipgloss.NewStyle().Foreground(t.Accent)
	switch {
	case e.Info.IsToday():
		infoStyle = lipgloss.NewStyle().Foreground(t.Celebrate).Bold(true)
	case e.Info.DaysUntil <= soonDays:
		infoStyle = lipgloss.NewStyle().Foreground(t.Soon)
	}

	marker := "  "
	if selected {
		marker = "▸ "
		nameStyle = nameStyle.Background(t.SurfaceHover)
	}

	m := e.Member
	rel := truncStr(m.Relationship, innerW/3)
	name := truncStr(m.Name, innerW-lipgloss.Width(rel)-4)
	line1 := marker + nameStyle.Render(name) + "  " + relStyle.Render(rel)

	info := cli.FormatBirthday(m.Birthdate) + " – " + e.Info.Message()
	line2 := "  " + infoStyle.Render(truncStr(info, innerW-2))

	return line1 + "\n" + line2
}

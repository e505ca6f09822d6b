// Package tui provides the interactive Bubble Tea interface for deeday.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/deeday/internal/birthday"
	"github.com/theirongolddev/deeday/internal/cli"
	"github.com/theirongolddev/deeday/internal/model"
	"github.com/theirongolddev/deeday/internal/roster"
	"github.com/theirongolddev/deeday/internal/tui/components"
	"github.com/theirongolddev/deeday/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeAdd
)

const (
	minTerminalWidth = 50
	splitWidth       = 100 // form and list side by side at or above this width
	maxContentWidth  = 160
	minContentHeight = 5
)

// Options configures a new App.
type Options struct {
	// Today returns the reference date; defaults to model.Today.
	Today func() model.Date
	// SortUpcoming orders the list by next birthday instead of insertion.
	SortUpcoming bool
}

// App is the root Bubble Tea model.
type App struct {
	roster       *roster.Store
	today        func() model.Date
	sortUpcoming bool

	// UI state
	width    int
	height   int
	mode     mode
	showHelp bool

	search textinput.Model
	query  string

	form addForm

	cursor int
	offset int
	flash  string
}

// NewApp creates the TUI model over r.
func NewApp(r *roster.Store, opts Options) App {
	today := opts.Today
	if today == nil {
		today = model.Today
	}
	return App{
		roster:       r,
		today:        today,
		sortUpcoming: opts.SortUpcoming,
		search:       newSearchInput(),
		form:         newAddForm(),
	}
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// entries returns the members currently shown: search-filtered, annotated
// with birthday info, and ordered per the sort toggle.
func (a App) entries() []birthday.Entry {
	members := roster.Filter(a.roster.List(), a.query)
	entries := birthday.Annotate(members, a.today())
	if a.sortUpcoming {
		birthday.SortByNext(entries)
	}
	return entries
}

func (a *App) clampCursor(n int) {
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.mode {
		case modeAdd:
			return a.updateForm(msg)
		case modeSearch:
			return a.updateSearch(msg)
		}
		return a.updateList(msg)
	}

	// Forward cursor blinks and the like to whichever input has focus.
	var cmd tea.Cmd
	switch a.mode {
	case modeAdd:
		a.form, cmd = a.form.update(msg)
	case modeSearch:
		a.search, cmd = a.search.Update(msg)
	}
	return a, cmd
}

func (a App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	a.flash = ""
	n := len(a.entries())

	switch key {
	case "q":
		return a, tea.Quit
	case "a":
		a.mode = modeAdd
		a.form.err = ""
		return a, a.form.focusField(fieldName)
	case "/":
		a.mode = modeSearch
		a.search.SetValue(a.query)
		a.search.CursorEnd()
		return a, a.search.Focus()
	case "esc":
		if a.query != "" {
			a.query = ""
			a.search.Reset()
			a.cursor = 0
			a.offset = 0
		}
	case "o":
		a.sortUpcoming = !a.sortUpcoming
		a.cursor = 0
		a.offset = 0
	case "j", "down":
		if a.cursor < n-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "g", "home":
		a.cursor = 0
		a.offset = 0
	case "G", "end":
		a.cursor = n - 1
		a.clampCursor(n)
	case "d", "x", "delete":
		a.deleteSelected()
	}
	return a, nil
}

func (a *App) deleteSelected() {
	entries := a.entries()
	if len(entries) == 0 {
		return
	}
	a.clampCursor(len(entries))
	m := entries[a.cursor].Member
	if a.roster.Delete(m.ID) {
		a.flash = "Deleted " + m.Name
	}
	a.clampCursor(len(entries) - 1)
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.mode = modeList
		a.search.Blur()
		return a, nil
	case "esc":
		a.mode = modeList
		a.search.Reset()
		a.search.Blur()
		a.query = ""
		a.cursor = 0
		a.offset = 0
		return a, nil
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	if q := a.search.Value(); q != a.query {
		a.query = q
		a.cursor = 0
		a.offset = 0
	}
	return a, cmd
}

func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeList
		a.form.blur()
		return a, nil
	case "tab", "down":
		return a, a.form.focusField(a.form.focus + 1)
	case "shift+tab", "up":
		return a, a.form.focusField(a.form.focus - 1)
	case "enter":
		a.submitForm()
		return a, nil
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.update(msg)
	return a, cmd
}

// submitForm hands the form to the roster. Fields are cleared only when a
// member was actually added.
func (a *App) submitForm() {
	name, rawDate, relationship := a.form.values()

	var birth model.Date
	if rawDate != "" {
		d, err := model.ParseDate(rawDate)
		if err != nil {
			a.form.err = "Birthday must be a date like 1990-03-20"
			return
		}
		birth = d
	}

	m, ok := a.roster.Add(name, birth, relationship)
	if !ok {
		a.form.err = "Name, birthday and relationship are all required"
		return
	}

	a.form.reset()
	a.form.blur()
	a.mode = modeList
	a.flash = "Added " + m.Name
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  deeday needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header
	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	taglineStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	header := " " + logoStyle.Render("◈ Deeday") + taglineStyle.Render(" · Never miss a special day again!") + "\n"

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.hints(), a.flash, cli.Plural(a.roster.Len(), "member", "members"))

	// 3. Content zone height
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Content
	entries := a.entries()
	var content string
	if cw >= splitWidth {
		widths := components.LayoutRow(cw, 3)
		formW := widths[0]
		listW := cw - formW
		content = components.CardRow([]string{
			a.form.view(formW, a.mode == modeAdd),
			a.renderList(entries, listW, contentH),
		})
	} else if a.mode == modeAdd {
		content = a.form.view(cw, true)
	} else {
		content = a.renderList(entries, cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) hints() string {
	switch a.mode {
	case modeAdd:
		return "[Tab] next field  [Enter] add  [Esc] back"
	case modeSearch:
		return "[Enter] keep filter  [Esc] clear"
	}
	return "[a]dd  [/]search  [d]elete  [o]rder  [?]help  [q]uit"
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"a", "Add a family member"},
		{"/", "Search by name or relationship"},
		{"Esc", "Clear search / back"},
		{"j k", "Move selection"},
		{"g G", "First / last"},
		{"d", "Delete selected member"},
		{"o", "Toggle order: added / upcoming"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-6s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

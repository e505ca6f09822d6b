package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/theirongolddev/deeday/internal/model"
	"github.com/theirongolddev/deeday/internal/roster"
	"github.com/theirongolddev/deeday/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedToday = model.NewDate(2024, time.March, 15)

func newTestApp(t *testing.T, seed ...model.Member) (App, *roster.Store) {
	t.Helper()

	n := 0
	r := roster.Open(store.NewMemory(nil), roster.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))
	for _, m := range seed {
		_, ok := r.Add(m.Name, m.Birthdate, m.Relationship)
		require.True(t, ok)
	}

	a := NewApp(r, Options{Today: func() model.Date { return fixedToday }})
	updated, _ := a.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return updated.(App), r
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(a App, keys ...string) App {
	for _, k := range keys {
		m, _ := a.Update(key(k))
		a = m.(App)
	}
	return a
}

var (
	ann = model.Member{Name: "Ann", Birthdate: model.NewDate(1990, time.March, 20), Relationship: "Sister"}
	bob = model.Member{Name: "Bob", Birthdate: model.NewDate(1988, time.January, 10), Relationship: "Brother"}
)

func TestAddFlow(t *testing.T) {
	a, r := newTestApp(t)

	a = press(a, "a")
	require.Equal(t, modeAdd, a.mode)

	a.form.inputs[fieldName].SetValue("Ann")
	a.form.inputs[fieldBirthdate].SetValue("1990-03-20")
	a.form.inputs[fieldRelationship].SetValue("Sister")
	a = press(a, "enter")

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, modeList, a.mode)
	assert.Equal(t, "Added Ann", a.flash)
	for i := range a.form.inputs {
		assert.Empty(t, a.form.inputs[i].Value(), "field %d not cleared", i)
	}
}

func TestAddFlow_TypingIntoFocusedField(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(a, "a", "Ann", "tab", "1990-03-20", "tab", "Sister")

	name, date, rel := a.form.values()
	assert.Equal(t, "Ann", name)
	assert.Equal(t, "1990-03-20", date)
	assert.Equal(t, "Sister", rel)
}

func TestAddFlow_MissingFieldKeepsInput(t *testing.T) {
	a, r := newTestApp(t)

	a = press(a, "a")
	a.form.inputs[fieldName].SetValue("Ann")
	a.form.inputs[fieldBirthdate].SetValue("1990-03-20")
	a = press(a, "enter")

	assert.Equal(t, 0, r.Len())
	assert.Equal(t, modeAdd, a.mode)
	assert.NotEmpty(t, a.form.err)
	assert.Equal(t, "Ann", a.form.inputs[fieldName].Value())
}

func TestAddFlow_BadDate(t *testing.T) {
	a, r := newTestApp(t)

	a = press(a, "a")
	a.form.inputs[fieldName].SetValue("Ann")
	a.form.inputs[fieldBirthdate].SetValue("1990-02-30")
	a.form.inputs[fieldRelationship].SetValue("Sister")
	a = press(a, "enter")

	assert.Equal(t, 0, r.Len())
	assert.Equal(t, modeAdd, a.mode)
	assert.Contains(t, a.form.err, "date")
}

func TestSearchFiltersDisplayOnly(t *testing.T) {
	a, r := newTestApp(t, ann, bob)

	a = press(a, "/", "bro")
	entries := a.entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Bob", entries[0].Member.Name)
	assert.Equal(t, 2, r.Len())

	// Enter keeps the filter, Esc in list mode clears it.
	a = press(a, "enter")
	assert.Equal(t, modeList, a.mode)
	assert.Len(t, a.entries(), 1)

	a = press(a, "esc")
	assert.Len(t, a.entries(), 2)
}

func TestDeleteSelected(t *testing.T) {
	a, r := newTestApp(t, ann, bob)

	a = press(a, "j", "d")

	assert.Equal(t, 1, r.Len())
	_, found := r.Get("id-2")
	assert.False(t, found)
	assert.Equal(t, "Deleted Bob", a.flash)
	assert.Equal(t, 0, a.cursor)
}

func TestDeleteRespectsSearchFilter(t *testing.T) {
	a, r := newTestApp(t, ann, bob)

	a = press(a, "/", "bob", "enter", "d")

	assert.Equal(t, 1, r.Len())
	_, found := r.Get("id-1")
	assert.True(t, found, "Ann must survive")
}

func TestSortToggle(t *testing.T) {
	a, _ := newTestApp(t, bob, ann)

	assert.Equal(t, "Bob", a.entries()[0].Member.Name)
	a = press(a, "o")
	assert.Equal(t, "Ann", a.entries()[0].Member.Name)
}

func TestViewShowsBirthdayInfo(t *testing.T) {
	a, _ := newTestApp(t, ann)

	out := a.View()
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "Sister")
	assert.Contains(t, out, "March 20 – 5 day(s) away – turning 34")
}

func TestViewEmptyState(t *testing.T) {
	a, _ := newTestApp(t)
	assert.Contains(t, a.View(), "No birthdays added yet")

	a, _ = newTestApp(t, ann)
	a = press(a, "/", "zzz")
	assert.Contains(t, a.View(), "No birthdays added yet")
}

func TestViewCompactLayout(t *testing.T) {
	a, _ := newTestApp(t, ann)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 70, Height: 30})
	a = m.(App)

	assert.NotContains(t, a.View(), "Add Family Member")
	a = press(a, "a")
	assert.Contains(t, a.View(), "Add Family Member")
}

func TestHelpToggle(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(a, "?")
	assert.True(t, a.showHelp)
	assert.Contains(t, a.View(), "Keyboard Shortcuts")

	a = press(a, "j")
	assert.False(t, a.showHelp)
}

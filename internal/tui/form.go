package tui

import (
	"strings"

	"github.com/theirongolddev/deeday/internal/tui/components"
	"github.com/theirongolddev/deeday/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldName = iota
	fieldBirthdate
	fieldRelationship
	fieldCount // sentinel
)

var fieldLabels = [fieldCount]string{"Name", "Birthday", "Relationship"}

// addForm is the three-field "Add Family Member" form.
type addForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    string // shown under the form after a rejected submit
}

func newAddForm() addForm {
	var f addForm
	placeholders := [fieldCount]string{"Enter name", "yyyy-mm-dd", "e.g., Sister, Brother, Mom"}
	limits := [fieldCount]int{64, 10, 32}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = 30
		ti.Prompt = ""
		f.inputs[i] = ti
	}
	return f
}

// focusField moves focus to field i and returns the cursor blink command.
func (f *addForm) focusField(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return f.inputs[f.focus].Cursor.BlinkCmd()
}

func (f *addForm) blur() {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
}

// reset clears every field.
func (f *addForm) reset() {
	for j := range f.inputs {
		f.inputs[j].Reset()
	}
	f.err = ""
}

func (f addForm) values() (name, birthdate, relationship string) {
	return f.inputs[fieldName].Value(),
		strings.TrimSpace(f.inputs[fieldBirthdate].Value()),
		f.inputs[fieldRelationship].Value()
}

func (f addForm) update(msg tea.Msg) (addForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f addForm) view(w int, active bool) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	activeLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i := range f.inputs {
		if active && i == f.focus {
			b.WriteString(activeLabelStyle.Render("▸ " + fieldLabels[i]))
		} else {
			b.WriteString(labelStyle.Render("  " + fieldLabels[i]))
		}
		b.WriteString("\n  ")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n\n")
	}

	if f.err != "" {
		b.WriteString(errStyle.Render(f.err))
		b.WriteString("\n")
	}
	if active {
		b.WriteString(hintStyle.Render("[Tab] next  [Enter] add member  [Esc] back"))
	} else {
		b.WriteString(hintStyle.Render("[a] add a family member"))
	}

	return components.ContentCard("Add Family Member", b.String(), w, active)
}

// Package theme defines color themes for the deeday TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	SurfaceHover lipgloss.Color // Selected row
	Border       lipgloss.Color // Subtle borders
	BorderAccent lipgloss.Color // Focused card border
	TextDim      lipgloss.Color // Hints, disabled
	TextMuted    lipgloss.Color // Labels, relationship
	TextPrimary  lipgloss.Color // Names, values
	Accent       lipgloss.Color // Titles, active input
	AccentBright lipgloss.Color
	Celebrate    lipgloss.Color // Birthday-today highlight
	Soon         lipgloss.Color // Birthday within a week
	Red          lipgloss.Color
}

// Deeday is the default theme - purple accents with pink for celebrations.
var Deeday = Theme{
	Name:         "deeday",
	SurfaceHover: lipgloss.Color("#33284A"),
	Border:       lipgloss.Color("#3B2F4A"),
	BorderAccent: lipgloss.Color("#A66CFF"),
	TextDim:      lipgloss.Color("#6B6475"),
	TextMuted:    lipgloss.Color("#9A93A6"),
	TextPrimary:  lipgloss.Color("#F7F3FB"),
	Accent:       lipgloss.Color("#A66CFF"),
	AccentBright: lipgloss.Color("#C9A5FF"),
	Celebrate:    lipgloss.Color("#F472B6"),
	Soon:         lipgloss.Color("#22D3EE"),
	Red:          lipgloss.Color("#EF4444"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	SurfaceHover: lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Celebrate:    lipgloss.Color("#CE5D97"),
	Soon:         lipgloss.Color("#D0A215"),
	Red:          lipgloss.Color("#D14D41"),
}

// CatppuccinMocha is a warm pastel theme.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	SurfaceHover: lipgloss.Color("#45475A"),
	Border:       lipgloss.Color("#585B70"),
	BorderAccent: lipgloss.Color("#CBA6F7"),
	TextDim:      lipgloss.Color("#6C7086"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#CBA6F7"),
	AccentBright: lipgloss.Color("#E0C8FB"),
	Celebrate:    lipgloss.Color("#F5C2E7"),
	Soon:         lipgloss.Color("#94E2D5"),
	Red:          lipgloss.Color("#F38BA8"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("5"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("5"),
	AccentBright: lipgloss.Color("13"),
	Celebrate:    lipgloss.Color("13"),
	Soon:         lipgloss.Color("6"),
	Red:          lipgloss.Color("1"),
}

// Active is the currently selected theme.
var Active = Deeday

// All available themes.
var All = []Theme{Deeday, FlexokiDark, CatppuccinMocha, Terminal}

// ByName returns a theme by its name, defaulting to Deeday.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Deeday
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Names returns the names of all themes.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

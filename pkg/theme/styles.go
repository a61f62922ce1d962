package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Styles is the lipgloss form of a theme, consumed by the month view.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Event    lipgloss.Style
	Today    lipgloss.Style
	Weekend  lipgloss.Style
	Faint    lipgloss.Style
	Selected lipgloss.Style
}

// Enabled reports whether the terminal renders color at all.
func Enabled() bool {
	return termenv.ColorProfile() != termenv.Ascii
}

func (d *Definition) Styles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Underline(true),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color(d.Faint)),
		Event:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(d.Accent)),
		Today:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(d.Today)).Underline(true),
		Weekend:  lipgloss.NewStyle().Foreground(lipgloss.Color(d.Weekend)),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color(d.Faint)),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color(d.Accent)).Foreground(textOn(d.Accent)),
	}
}

// textOn picks black or white for legibility on the given background.
func textOn(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color("#ffffff")
	}
	if _, _, l := c.Hsl(); l > 0.5 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

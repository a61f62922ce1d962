// Package theme holds the named color themes used by the terminal
// renderers and the month view.
package theme

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Definition names the colors for each rendering role. Built-in themes
// ship with the binary; user themes live in the settings store under the
// same namespace and shadow a built-in with the same name.
type Definition struct {
	Name    string `json:"name"`
	Accent  string `json:"accent"`
	Today   string `json:"today"`
	Weekend string `json:"weekend"`
	Faint   string `json:"faint"`
}

// DefaultName is the theme used when nothing is configured.
const DefaultName = "default"

func Builtins() []*Definition {
	return []*Definition{
		{
			Name:    DefaultName,
			Accent:  "#00afff",
			Today:   "#ffffff",
			Weekend: "#875fff",
			Faint:   "#626262",
		},
		{
			Name:    "dark",
			Accent:  "#5f87af",
			Today:   "#d0d0d0",
			Weekend: "#5f5f87",
			Faint:   "#444444",
		},
		{
			Name:    "solarized",
			Accent:  "#268bd2",
			Today:   "#fdf6e3",
			Weekend: "#b58900",
			Faint:   "#586e75",
		},
	}
}

func Default() *Definition {
	return Builtins()[0]
}

// Find resolves a theme name against user themes first, then built-ins.
func Find(user []*Definition, name string) (*Definition, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Default(), true
	}
	for _, d := range user {
		if d != nil && strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	for _, d := range Builtins() {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return nil, false
}

// Validate checks every color of the definition parses as hex.
func (d *Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("theme: name required")
	}
	for role, hex := range map[string]string{
		"accent":  d.Accent,
		"today":   d.Today,
		"weekend": d.Weekend,
		"faint":   d.Faint,
	} {
		if hex == "" {
			continue
		}
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("theme: bad %s color %q: %w", role, hex, err)
		}
	}
	return nil
}

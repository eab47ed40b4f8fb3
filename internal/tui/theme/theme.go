// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is loaded when no theme, or an unknown one, is requested.
const DefaultName = "frappe"

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Header, panels
	BgSelection string `toml:"bg_selection"` // Cursor row highlight
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Quarter-hour labels, hints
	Accent      string `toml:"accent"`       // Title, borders
	Preview     string `toml:"preview"`      // In-progress gesture
	Cursor      string `toml:"cursor"`       // Keyboard cursor
	Warning     string `toml:"warning"`      // Overlap warnings
	Success     string `toml:"success"`      // "Copied!" and saves

	// Context menu palette (can override base theme values)
	MenuBg     string `toml:"menu_bg"`
	MenuBorder string `toml:"menu_border"`
	MenuText   string `toml:"menu_text"`
	MenuActive string `toml:"menu_active"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to DefaultName if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	t.MenuBg = coalesce(t.MenuBg, t.BgHighlight, t.Bg)
	t.MenuBorder = coalesce(t.MenuBorder, t.Accent)
	t.MenuText = coalesce(t.MenuText, t.Fg)
	t.MenuActive = coalesce(t.MenuActive, t.BgSelection, t.Accent)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}

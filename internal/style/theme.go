package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/w31r4/gprocs/internal/config"
)

// Theme is the resolved dark or light theme.
type Theme uint8

const (
	Dark Theme = iota
	Light
)

func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// hasDarkBackground is swapped in tests.
var hasDarkBackground = lipgloss.HasDarkBackground

// ResolveTheme turns the configured theme into Dark or Light, querying the
// terminal background for auto.
func ResolveTheme(t config.Theme) Theme {
	switch t {
	case config.ThemeDark:
		return Dark
	case config.ThemeLight:
		return Light
	default:
		if hasDarkBackground() {
			return Dark
		}
		return Light
	}
}

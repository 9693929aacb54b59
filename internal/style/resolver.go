package style

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Resolver paints text for one theme and palette. Colour output can be
// switched off, in which case text is returned unchanged.
type Resolver struct {
	theme    Theme
	palette  Palette
	renderer *lipgloss.Renderer
}

func NewResolver(theme Theme, palette Palette) *Resolver {
	r := &Resolver{
		theme:    theme,
		palette:  palette,
		renderer: lipgloss.NewRenderer(io.Discard),
	}
	r.SetColorEnabled(true)
	return r
}

// SetColorEnabled switches escape sequences on or off.
func (r *Resolver) SetColorEnabled(on bool) {
	if on {
		r.renderer.SetColorProfile(termenv.TrueColor)
		return
	}
	r.renderer.SetColorProfile(termenv.Ascii)
}

func (r *Resolver) Theme() Theme     { return r.theme }
func (r *Resolver) Palette() Palette { return r.palette }

// Resolve paints text with the theme side of a colour pair.
func (r *Resolver) Resolve(text string, c ByTheme, faded bool) string {
	return r.renderer.NewStyle().
		Foreground(c.pick(r.theme).terminal(faded)).
		Render(text)
}

// ResolveColumn paints a cell according to its column style.
func (r *Resolver) ResolveColumn(text string, cs ColumnStyle, faded bool) string {
	switch cs.Mode {
	case ModeByPercentage:
		return r.Resolve(text, r.byPercentage(text), faded)
	case ModeByState:
		return r.Resolve(text, r.byState(text), faded)
	case ModeByUnit:
		return r.Resolve(text, r.byUnit(text), faded)
	default:
		return r.Resolve(text, cs.Fixed, faded)
	}
}

func (r *Resolver) byState(text string) ByTheme {
	s := r.palette.ByState
	switch stateCategory(text) {
	case 'D':
		return s.ColorD
	case 'R':
		return s.ColorR
	case 'S':
		return s.ColorS
	case 'T':
		return s.ColorT
	case 'Z':
		return s.ColorZ
	case 'K':
		return s.ColorK
	case 'W':
		return s.ColorW
	case 'P':
		return s.ColorP
	default:
		return s.ColorX
	}
}

func (r *Resolver) byUnit(text string) ByTheme {
	u := r.palette.ByUnit
	switch unitCategory(text) {
	case 'K':
		return u.ColorK
	case 'M':
		return u.ColorM
	case 'G':
		return u.ColorG
	case 'T':
		return u.ColorT
	case 'P':
		return u.ColorP
	default:
		return u.ColorX
	}
}

func (r *Resolver) byPercentage(text string) ByTheme {
	p := r.palette.ByPercentage
	switch percentageBucket(parsePercentage(text)) {
	case 100:
		return p.Color100
	case 75:
		return p.Color075
	case 50:
		return p.Color050
	case 25:
		return p.Color025
	default:
		return p.Color000
	}
}

// stateCategory returns the first state letter found, scanning in priority
// order. A lower-case t (tracing stop) counts as T; no match is X.
func stateCategory(text string) byte {
	for _, c := range []byte("DRSTtZXKWP") {
		if strings.IndexByte(text, c) >= 0 {
			if c == 't' {
				return 'T'
			}
			return c
		}
	}
	return 'X'
}

// unitCategory returns the first unit letter found; no match is X.
func unitCategory(text string) byte {
	for _, c := range []byte("KMGTP") {
		if strings.IndexByte(text, c) >= 0 {
			return c
		}
	}
	return 'X'
}

// percentageBucket names the bucket by its lower bound. Bounds are strict.
func percentageBucket(v float64) int {
	switch {
	case v > 100:
		return 100
	case v > 75:
		return 75
	case v > 50:
		return 50
	case v > 25:
		return 25
	default:
		return 0
	}
}

// parseFloat is the single place numeric cell text is parsed.
func parseFloat(text string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(text), 64)
}

// parsePercentage falls back to 0 for text that is not a number.
func parsePercentage(text string) float64 {
	v, err := parseFloat(text)
	if err != nil {
		return 0
	}
	return v
}

// Package style turns semantic cell values into coloured terminal text.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Name is one of the eight base terminal colours.
type Name uint8

const (
	Black Name = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{"Black", "Red", "Green", "Yellow", "Blue", "Magenta", "Cyan", "White"}

func (n Name) String() string {
	if int(n) < len(colorNames) {
		return colorNames[n]
	}
	return fmt.Sprintf("Name(%d)", uint8(n))
}

// colorTable maps the 16 named colours to terminal colours, indexed by
// [bright][name]. It is built once and never written afterwards.
var colorTable = func() [2][8]lipgloss.Color {
	var t [2][8]lipgloss.Color
	for i := range colorNames {
		t[0][i] = lipgloss.Color(strconv.Itoa(i))
		t[1][i] = lipgloss.Color(strconv.Itoa(i + 8))
	}
	return t
}()

type colorKind uint8

const (
	kindNamed colorKind = iota
	kindFixed
	kindRGB
)

// Color is a configured colour: a named colour (plain or bright), an 8-bit
// palette index or an RGB hex string.
type Color struct {
	kind   colorKind
	name   Name
	bright bool
	index  uint8
	hex    string
}

func NamedColor(n Name, bright bool) Color { return Color{kind: kindNamed, name: n, bright: bright} }
func Fixed256(index uint8) Color            { return Color{kind: kindFixed, index: index} }
func RGB(hex string) Color                  { return Color{kind: kindRGB, hex: hex} }

// terminal returns the colour to paint with. Faded degrades bright named
// colours to their plain form; palette indexes and RGB values are used as
// given.
func (c Color) terminal(faded bool) lipgloss.Color {
	switch c.kind {
	case kindFixed:
		return lipgloss.Color(strconv.Itoa(int(c.index)))
	case kindRGB:
		r, g, b := ParseHex(c.hex)
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
	default:
		bright := 0
		if c.bright && !faded {
			bright = 1
		}
		return colorTable[bright][c.name]
	}
}

func (c Color) String() string {
	switch c.kind {
	case kindFixed:
		return fmt.Sprintf("Color256(%d)", c.index)
	case kindRGB:
		return c.hex
	default:
		if c.bright {
			return "Bright" + c.name.String()
		}
		return c.name.String()
	}
}

// ParseHex reads a "#RRGGBB" string. Each channel is parsed on its own and a
// missing or malformed channel is 0.
func ParseHex(s string) (r, g, b uint8) {
	return hexChannel(s, 1), hexChannel(s, 3), hexChannel(s, 5)
}

func hexChannel(s string, at int) uint8 {
	if len(s) < at+2 {
		return 0
	}
	v, err := strconv.ParseUint(s[at:at+2], 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// ParseColor accepts a colour name ("Red", "BrightRed", case-insensitive), a
// palette index ("200" or "Color256(200)") or a hex string ("#ff8800").
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return RGB(s), nil
	}

	lower := strings.ToLower(s)
	num := lower
	if strings.HasPrefix(num, "color256(") && strings.HasSuffix(num, ")") {
		num = strings.TrimSuffix(strings.TrimPrefix(num, "color256("), ")")
	}
	if v, err := strconv.ParseUint(num, 10, 8); err == nil {
		return Fixed256(uint8(v)), nil
	}

	bright := strings.HasPrefix(lower, "bright")
	base := strings.TrimPrefix(lower, "bright")
	for i, name := range colorNames {
		if base == strings.ToLower(name) {
			return NamedColor(Name(i), bright), nil
		}
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

// ByTheme is a colour pair, one per theme.
type ByTheme struct {
	Dark  Color
	Light Color
}

func (c ByTheme) pick(t Theme) Color {
	if t == Light {
		return c.Light
	}
	return c.Dark
}

// ParseByTheme accepts "dark|light" or a single colour used for both.
func ParseByTheme(s string) (ByTheme, error) {
	dark, light, found := strings.Cut(s, "|")
	d, err := ParseColor(dark)
	if err != nil {
		return ByTheme{}, err
	}
	if !found {
		return ByTheme{Dark: d, Light: d}, nil
	}
	l, err := ParseColor(light)
	if err != nil {
		return ByTheme{}, err
	}
	return ByTheme{Dark: d, Light: l}, nil
}

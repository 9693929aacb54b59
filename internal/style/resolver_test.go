package style

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/w31r4/gprocs/internal/config"
)

var ansiEscapeRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiEscapeRE.ReplaceAllString(s, "")
}

func mustPair(t *testing.T, s string) ByTheme {
	t.Helper()
	c, err := ParseByTheme(s)
	if err != nil {
		t.Fatalf("ParseByTheme(%q): %v", s, err)
	}
	return c
}

func newTestResolver(t *testing.T, theme Theme) *Resolver {
	t.Helper()
	p, err := NewPalette(config.Default().Style)
	if err != nil {
		t.Fatalf("default palette: %v", err)
	}
	return NewResolver(theme, p)
}

// paint renders text the way the resolver should for a raw terminal colour.
func paint(r *Resolver, c lipgloss.Color, text string) string {
	return r.renderer.NewStyle().Foreground(c).Render(text)
}

func TestPercentageBuckets(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"100.0", 50},
		{"100.1", 100},
		{"75.0", 50},
		{"75.1", 75},
		{"50.0", 25},
		{"25.0", 0},
		{"24.9", 0},
		{"  80.5 ", 75},
		{"n/a", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := percentageBucket(parsePercentage(tc.text)); got != tc.want {
			t.Fatalf("bucket(%q)=%d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestStateCategoryPriority(t *testing.T) {
	cases := []struct {
		text string
		want byte
	}{
		{"R", 'R'},
		{"S", 'S'},
		{"DR", 'D'},
		{"RS", 'R'},
		{"t", 'T'},
		{"Z", 'Z'},
		{"I", 'X'},
		{"", 'X'},
		{"W", 'W'},
		{"P", 'P'},
	}
	for _, tc := range cases {
		if got := stateCategory(tc.text); got != tc.want {
			t.Fatalf("stateCategory(%q)=%c, want %c", tc.text, got, tc.want)
		}
	}
}

func TestUnitCategory(t *testing.T) {
	cases := []struct {
		text string
		want byte
	}{
		{"12 KiB", 'K'},
		{"3.4 MiB", 'M'},
		{"1.0 GiB", 'G'},
		{"2 TiB", 'T'},
		{"1 PiB", 'P'},
		{"512 B", 'X'},
	}
	for _, tc := range cases {
		if got := unitCategory(tc.text); got != tc.want {
			t.Fatalf("unitCategory(%q)=%c, want %c", tc.text, got, tc.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	cases := []struct {
		in      string
		r, g, b uint8
	}{
		{"#ff0000", 255, 0, 0},
		{"#zz0000", 0, 0, 0},
		{"#00ff7f", 0, 255, 127},
		{"#12", 18, 0, 0},
		{"", 0, 0, 0},
	}
	for _, tc := range cases {
		r, g, b := ParseHex(tc.in)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("ParseHex(%q)=(%d,%d,%d), want (%d,%d,%d)", tc.in, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Red", "Red"},
		{"brightred", "BrightRed"},
		{"BrightWhite", "BrightWhite"},
		{"200", "Color256(200)"},
		{"Color256(17)", "Color256(17)"},
		{"#ff8800", "#ff8800"},
	}
	for _, tc := range cases {
		c, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.in, err)
		}
		if c.String() != tc.want {
			t.Fatalf("ParseColor(%q)=%s, want %s", tc.in, c, tc.want)
		}
	}
	for _, bad := range []string{"Purple", "Bright", "300"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestParseColumnStyle(t *testing.T) {
	cs, err := ParseColumnStyle("ByUnit")
	if err != nil || cs.Mode != ModeByUnit {
		t.Fatalf("ParseColumnStyle(ByUnit)=%+v,%v", cs, err)
	}
	cs, err = ParseColumnStyle("BrightGreen|Green")
	if err != nil || cs.Mode != ModeFixed {
		t.Fatalf("ParseColumnStyle(pair)=%+v,%v", cs, err)
	}
	if cs.Fixed.Dark.String() != "BrightGreen" || cs.Fixed.Light.String() != "Green" {
		t.Fatalf("unexpected pair %s|%s", cs.Fixed.Dark, cs.Fixed.Light)
	}
	if _, err := ParseColumnStyle("ByMood"); err == nil {
		t.Fatal("expected error for unknown style")
	}
}

func TestResolveSelectsThemeSide(t *testing.T) {
	pair := mustPair(t, "BrightRed|Blue")

	dark := newTestResolver(t, Dark)
	if got, want := dark.Resolve("x", pair, false), paint(dark, "9", "x"); got != want {
		t.Fatalf("dark: got %q, want %q", got, want)
	}
	light := newTestResolver(t, Light)
	if dark.Theme() != Dark || light.Theme() != Light {
		t.Fatalf("themes=%s,%s", dark.Theme(), light.Theme())
	}
	if got, want := light.Resolve("x", pair, false), paint(light, "4", "x"); got != want {
		t.Fatalf("light: got %q, want %q", got, want)
	}
}

func TestResolveFadedOnlyAffectsNamedColors(t *testing.T) {
	r := newTestResolver(t, Dark)

	cases := []struct {
		spec  string
		faded lipgloss.Color
	}{
		{"BrightRed", "1"},
		{"Red", "1"},
		{"BrightWhite", "7"},
		{"Color256(200)", "200"},
		{"#ff0000", "#ff0000"},
	}
	for _, tc := range cases {
		pair := mustPair(t, tc.spec)
		if got, want := r.Resolve("v", pair, true), paint(r, tc.faded, "v"); got != want {
			t.Fatalf("faded %s: got %q, want %q", tc.spec, got, want)
		}
	}

	bright := mustPair(t, "BrightRed")
	if r.Resolve("v", bright, true) == r.Resolve("v", bright, false) {
		t.Fatal("faded bright colour should differ from unfaded")
	}
	fixed := mustPair(t, "Color256(200)")
	if r.Resolve("v", fixed, true) != r.Resolve("v", fixed, false) {
		t.Fatal("faded should not change a palette index")
	}
}

func TestResolveRGBEscape(t *testing.T) {
	r := newTestResolver(t, Dark)
	out := r.Resolve("hot", mustPair(t, "#ff0000"), false)
	if !strings.Contains(out, "38;2;255;0;0") {
		t.Fatalf("expected truecolor escape, got %q", out)
	}
	out = r.Resolve("cold", mustPair(t, "#zz0000"), false)
	if !strings.Contains(out, "38;2;0;0;0") {
		t.Fatalf("malformed hex should paint black, got %q", out)
	}
}

func TestResolveColorDisabled(t *testing.T) {
	r := newTestResolver(t, Dark)
	r.SetColorEnabled(false)
	if got := r.Resolve("plain", mustPair(t, "BrightRed"), false); got != "plain" {
		t.Fatalf("expected plain text, got %q", got)
	}
	r.SetColorEnabled(true)
	if got := r.Resolve("plain", mustPair(t, "BrightRed"), false); got == "plain" {
		t.Fatal("expected escapes once colour is enabled again")
	}
}

func TestResolveColumnModes(t *testing.T) {
	r := newTestResolver(t, Dark)
	p := r.Palette()

	cases := []struct {
		mode Mode
		text string
		want ByTheme
	}{
		{ModeByPercentage, "99.0", p.ByPercentage.Color075},
		{ModeByPercentage, "garbage", p.ByPercentage.Color000},
		{ModeByState, "Z", p.ByState.ColorZ},
		{ModeByState, "I", p.ByState.ColorX},
		{ModeByUnit, "3 GiB", p.ByUnit.ColorG},
		{ModeByUnit, "0 B", p.ByUnit.ColorX},
	}
	for _, tc := range cases {
		got := r.ResolveColumn(tc.text, ColumnStyle{Mode: tc.mode}, false)
		want := r.Resolve(tc.text, tc.want, false)
		if got != want {
			t.Fatalf("mode %d text %q: got %q, want %q", tc.mode, tc.text, got, want)
		}
		if stripANSI(got) != tc.text {
			t.Fatalf("text changed: %q", stripANSI(got))
		}
	}

	fixed := FixedStyle(mustPair(t, "Cyan"))
	if got, want := r.ResolveColumn("c", fixed, false), r.Resolve("c", fixed.Fixed, false); got != want {
		t.Fatalf("fixed: got %q, want %q", got, want)
	}
}

func TestResolveTheme(t *testing.T) {
	orig := hasDarkBackground
	defer func() { hasDarkBackground = orig }()

	hasDarkBackground = func() bool { return false }
	if got := ResolveTheme(config.ThemeAuto); got != Light {
		t.Fatalf("auto on light background = %s", got)
	}
	hasDarkBackground = func() bool { return true }
	if got := ResolveTheme(config.ThemeAuto); got != Dark {
		t.Fatalf("auto on dark background = %s", got)
	}
	if got := ResolveTheme(config.ThemeLight); got != Light {
		t.Fatalf("explicit light = %s", got)
	}
}

func TestNewPaletteReportsField(t *testing.T) {
	cfg := config.Default().Style
	cfg.ByUnit.ColorG = "Chartreuse"
	_, err := NewPalette(cfg)
	if err == nil || !strings.Contains(err.Error(), "by_unit.color_g") {
		t.Fatalf("expected error naming by_unit.color_g, got %v", err)
	}
}

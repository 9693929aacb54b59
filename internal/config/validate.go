package config

import "fmt"

func (t Theme) valid() bool {
	switch t {
	case ThemeAuto, ThemeDark, ThemeLight:
		return true
	}
	return false
}

// ParsePagerMode accepts auto, always or disable.
func ParsePagerMode(s string) (PagerMode, error) {
	switch m := PagerMode(s); m {
	case PagerAuto, PagerAlways, PagerDisable:
		return m, nil
	}
	return "", fmt.Errorf("invalid pager mode %q (want auto|always|disable)", s)
}

// ParseColorMode accepts auto, always or disable.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorDisable:
		return m, nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto|always|disable)", s)
}

// ParseTheme accepts auto, dark or light.
func ParseTheme(s string) (Theme, error) {
	if t := Theme(s); t.valid() {
		return t, nil
	}
	return "", fmt.Errorf("invalid theme %q (want auto|dark|light)", s)
}

// Validate checks the enumerated options. Column styles are checked when the
// style resolver parses them.
func (c *Config) Validate() error {
	if !c.Display.Theme.valid() {
		return fmt.Errorf("display.theme: invalid value %q", c.Display.Theme)
	}
	if _, err := ParsePagerMode(string(c.Pager.Mode)); err != nil {
		return fmt.Errorf("pager.mode: %w", err)
	}
	if _, err := ParseColorMode(string(c.Display.ColorMode)); err != nil {
		return fmt.Errorf("display.color_mode: %w", err)
	}
	switch c.Sort.Order {
	case Ascending, Descending:
	default:
		return fmt.Errorf("sort.order: invalid value %q", c.Sort.Order)
	}
	if c.Sort.Column < 0 {
		return fmt.Errorf("sort.column: must not be negative")
	}
	switch c.Search.Logic {
	case LogicAnd, LogicOr, LogicNand, LogicNor:
	default:
		return fmt.Errorf("search.logic: invalid value %q", c.Search.Logic)
	}
	for _, k := range []SearchKind{c.Search.NumericSearch, c.Search.NonnumericSearch} {
		switch k {
		case SearchExact, SearchPartial, SearchFuzzy:
		default:
			return fmt.Errorf("search: invalid kind %q", k)
		}
	}
	for i, col := range c.Columns {
		switch col.Align {
		case AlignLeft, AlignRight, AlignCenter:
		case "":
			c.Columns[i].Align = AlignLeft
		default:
			return fmt.Errorf("columns[%d].align: invalid value %q", i, col.Align)
		}
	}
	return nil
}

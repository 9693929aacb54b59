package style

import (
	"fmt"

	"github.com/w31r4/gprocs/internal/config"
)

// Mode is how a column picks its colour.
type Mode uint8

const (
	ModeFixed Mode = iota
	ModeByPercentage
	ModeByState
	ModeByUnit
)

// ColumnStyle is a fixed colour pair or one of the classification modes.
type ColumnStyle struct {
	Mode  Mode
	Fixed ByTheme
}

// FixedStyle wraps a colour pair as a column style.
func FixedStyle(c ByTheme) ColumnStyle { return ColumnStyle{Mode: ModeFixed, Fixed: c} }

// ParseColumnStyle accepts "ByPercentage", "ByState", "ByUnit" or a colour pair.
func ParseColumnStyle(s string) (ColumnStyle, error) {
	switch s {
	case "ByPercentage":
		return ColumnStyle{Mode: ModeByPercentage}, nil
	case "ByState":
		return ColumnStyle{Mode: ModeByState}, nil
	case "ByUnit":
		return ColumnStyle{Mode: ModeByUnit}, nil
	}
	c, err := ParseByTheme(s)
	if err != nil {
		return ColumnStyle{}, err
	}
	return FixedStyle(c), nil
}

type ByPercentage struct {
	Color000, Color025, Color050, Color075, Color100 ByTheme
}

type ByState struct {
	ColorD, ColorR, ColorS, ColorT, ColorZ, ColorX, ColorK, ColorW, ColorP ByTheme
}

type ByUnit struct {
	ColorK, ColorM, ColorG, ColorT, ColorP, ColorX ByTheme
}

// Palette is the parsed [style] section.
type Palette struct {
	Header       ByTheme
	Unit         ByTheme
	Tree         ByTheme
	ByPercentage ByPercentage
	ByState      ByState
	ByUnit       ByUnit
}

// NewPalette parses every colour pair of the [style] section.
func NewPalette(cfg config.StyleConfig) (Palette, error) {
	var p Palette
	var firstErr error
	parse := func(field, s string, dst *ByTheme) {
		if firstErr != nil {
			return
		}
		c, err := ParseByTheme(s)
		if err != nil {
			firstErr = fmt.Errorf("style.%s: %w", field, err)
			return
		}
		*dst = c
	}

	parse("header", cfg.Header, &p.Header)
	parse("unit", cfg.Unit, &p.Unit)
	parse("tree", cfg.Tree, &p.Tree)

	parse("by_percentage.color_000", cfg.ByPercentage.Color000, &p.ByPercentage.Color000)
	parse("by_percentage.color_025", cfg.ByPercentage.Color025, &p.ByPercentage.Color025)
	parse("by_percentage.color_050", cfg.ByPercentage.Color050, &p.ByPercentage.Color050)
	parse("by_percentage.color_075", cfg.ByPercentage.Color075, &p.ByPercentage.Color075)
	parse("by_percentage.color_100", cfg.ByPercentage.Color100, &p.ByPercentage.Color100)

	parse("by_state.color_d", cfg.ByState.ColorD, &p.ByState.ColorD)
	parse("by_state.color_r", cfg.ByState.ColorR, &p.ByState.ColorR)
	parse("by_state.color_s", cfg.ByState.ColorS, &p.ByState.ColorS)
	parse("by_state.color_t", cfg.ByState.ColorT, &p.ByState.ColorT)
	parse("by_state.color_z", cfg.ByState.ColorZ, &p.ByState.ColorZ)
	parse("by_state.color_x", cfg.ByState.ColorX, &p.ByState.ColorX)
	parse("by_state.color_k", cfg.ByState.ColorK, &p.ByState.ColorK)
	parse("by_state.color_w", cfg.ByState.ColorW, &p.ByState.ColorW)
	parse("by_state.color_p", cfg.ByState.ColorP, &p.ByState.ColorP)

	parse("by_unit.color_k", cfg.ByUnit.ColorK, &p.ByUnit.ColorK)
	parse("by_unit.color_m", cfg.ByUnit.ColorM, &p.ByUnit.ColorM)
	parse("by_unit.color_g", cfg.ByUnit.ColorG, &p.ByUnit.ColorG)
	parse("by_unit.color_t", cfg.ByUnit.ColorT, &p.ByUnit.ColorT)
	parse("by_unit.color_p", cfg.ByUnit.ColorP, &p.ByUnit.ColorP)
	parse("by_unit.color_x", cfg.ByUnit.ColorX, &p.ByUnit.ColorX)

	return p, firstErr
}

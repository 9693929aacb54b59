package view

import (
	"os"
	"runtime"

	"github.com/w31r4/gprocs/internal/config"
)

// Policy is how one refresh reaches its output.
type Policy struct {
	Pager    bool
	Color    bool
	Truncate bool
}

// Policy decides pager, colour and truncation for the current snapshot.
// Command-line overrides beat the configuration, which beats the defaults.
func (v *View) Policy(opts *config.Options) Policy {
	pager := usePager(opts.Watch, runtime.GOOS == "windows", opts.Pager, v.cfg.Pager.Mode, v.Term.Height, len(v.VisiblePids))
	_, noColor := os.LookupEnv("NO_COLOR")
	return Policy{
		Pager:    pager,
		Color:    useColor(opts.Color, v.cfg.Display.ColorMode, pager, v.Term.Attended, v.Term.Attended && !noColor),
		Truncate: useTruncate(v.Term.Attended, pager, v.cfg.Display),
	}
}

// usePager never pages in watch mode or on Windows. In auto mode it pages
// when the header, unit line, rows and the next prompt do not fit.
func usePager(watch, windows bool, override, configured config.PagerMode, height, visible int) bool {
	if watch || windows {
		return false
	}
	mode := configured
	if override != "" {
		mode = override
	}
	switch mode {
	case config.PagerAlways:
		return true
	case config.PagerDisable:
		return false
	default:
		return height < visible+3
	}
}

// useColor in auto mode colours pager output on a terminal and otherwise
// falls back to fallback, the terminal's own default.
func useColor(override, configured config.ColorMode, pager, attended, fallback bool) bool {
	mode := configured
	if override != "" {
		mode = override
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorDisable:
		return false
	default:
		return (pager && attended) || fallback
	}
}

func useTruncate(attended, pager bool, d config.DisplayConfig) bool {
	return (attended && pager && d.CutToPager) ||
		(attended && !pager && d.CutToTerminal) ||
		(!attended && d.CutToPipe)
}

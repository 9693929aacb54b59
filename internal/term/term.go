// Package term describes the output terminal: its size, whether a person is
// watching it, and how lines are written to it.
package term

import (
	"io"
	"math"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	xterm "golang.org/x/term"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Unbounded is the line width used when truncation is off.
const Unbounded = math.MaxInt

// Info is the output target of one refresh.
type Info struct {
	Width    int
	Height   int
	Attended bool
	Out      io.Writer
}

// For describes w. Only an *os.File attached to a terminal is attended;
// anything else gets the 80x24 fallback size.
func For(w io.Writer) Info {
	info := Info{Width: defaultWidth, Height: defaultHeight, Out: w}
	f, ok := w.(*os.File)
	if !ok {
		return info
	}
	fd := f.Fd()
	info.Attended = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if cols, rows, err := xterm.GetSize(int(fd)); err == nil && cols > 0 && rows > 0 {
		info.Width, info.Height = cols, rows
	}
	return info
}

// WriteLine truncates s to the current width and writes it with a newline.
func (t Info) WriteLine(s string) error {
	_, err := io.WriteString(t.Out, Truncate(s, t.Width)+"\n")
	return err
}

// Truncate cuts s to width visible cells, keeping escape sequences intact.
func Truncate(s string, width int) string {
	if width == Unbounded || ansi.StringWidth(s) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}

package view

import (
	"strings"

	"github.com/w31r4/gprocs/internal/config"
	"github.com/w31r4/gprocs/internal/term"
)

// Apply makes p take effect on the resolver and the output width.
func (v *View) Apply(p Policy) {
	v.resolver.SetColorEnabled(p.Color)
	if !p.Truncate {
		v.Term.Width = term.Unbounded
	}
}

// Render returns the header, unit and content lines, untruncated.
// Auxiliary rows are faded.
func (v *View) Render() []string {
	lines := make([]string, 0, len(v.VisiblePids)+2)
	lines = append(lines, v.headerLine(), v.unitLine())
	for _, pid := range v.VisiblePids {
		_, aux := v.AuxiliaryPids[pid]
		lines = append(lines, v.contentLine(pid, aux))
	}
	return lines
}

func (v *View) headerLine() string {
	palette := v.resolver.Palette()
	cells := make([]string, len(v.Columns))
	for i, c := range v.Columns {
		var order *config.SortOrder
		if i == v.Sort.Idx {
			o := v.Sort.Order
			order = &o
		}
		cells[i] = v.resolver.Resolve(c.Column.DisplayHeader(c.Align, order, v.cfg), palette.Header, false)
	}
	return joinRow(cells)
}

func (v *View) unitLine() string {
	palette := v.resolver.Palette()
	cells := make([]string, len(v.Columns))
	for i, c := range v.Columns {
		cells[i] = v.resolver.Resolve(c.Column.DisplayUnit(c.Align), palette.Unit, false)
	}
	return joinRow(cells)
}

func (v *View) contentLine(pid int32, faded bool) string {
	cells := make([]string, len(v.Columns))
	for i, c := range v.Columns {
		text, ok := c.Column.DisplayContent(pid, c.Align)
		if !ok {
			text = strings.Repeat(" ", c.Column.Width())
		}
		cells[i] = v.resolver.ResolveColumn(text, c.Style, faded)
	}
	return joinRow(cells)
}

func joinRow(cells []string) string {
	return strings.TrimRight(strings.Join(cells, " "), " ")
}

// Display writes the snapshot to the terminal, through a pager when the
// policy asks for one. Write errors are ignored: a pager that quits early
// closes the pipe and that is not a failure.
func (v *View) Display(opts *config.Options) error {
	p := v.Policy(opts)
	v.Apply(p)
	v.Log.V(1).Info("display policy", "pager", p.Pager, "color", p.Color, "truncate", p.Truncate)

	out := v.Term
	var pg *pager
	if p.Pager && v.Term.Attended {
		var err error
		pg, err = startPager(v.cfg.Pager.Command, v.Term.Out)
		if err != nil {
			v.Log.Error(err, "pager unavailable, writing to terminal")
		} else {
			v.Log.V(1).Info("started pager", "command", pg.command)
			out.Out = pg
		}
	}

	v.write(out)
	if pg != nil {
		return pg.Close()
	}
	return nil
}

func (v *View) write(out term.Info) {
	for _, line := range v.Render() {
		if err := out.WriteLine(line); err != nil {
			v.Log.V(1).Info("write failed", "err", err.Error())
			return
		}
	}
}

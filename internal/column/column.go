// Package column turns process records into formatted, sortable cells.
package column

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/w31r4/gprocs/internal/config"
	"github.com/w31r4/gprocs/internal/process"
)

// Column is one column of the process table.
type Column interface {
	// Add ingests one process.
	Add(r *process.Record)
	Available() bool
	Sortable() bool
	// SortedPids lists every ingested pid in display order.
	SortedPids(order config.SortOrder) []int32
	// ApplyVisible tells the column which pids will be shown.
	ApplyVisible(pids []int32)
	// ResetWidth sizes the column from its header and unit. order is nil
	// unless the column is the active sort column.
	ResetWidth(order *config.SortOrder, cfg *config.Config, maxWidth, minWidth *int)
	// UpdateWidth grows the column to fit pid, up to maxWidth.
	UpdateWidth(pid int32, maxWidth *int)
	Width() int
	DisplayHeader(align config.Align, order *config.SortOrder, cfg *config.Config) string
	DisplayUnit(align config.Align) string
	// DisplayContent returns the padded cell of pid.
	DisplayContent(pid int32, align config.Align) (string, bool)
	// Text returns the unpadded cell of pid for searching.
	Text(pid int32) (string, bool)
}

// cells holds what every column kind shares: header, unit, formatted
// contents and the negotiated width.
type cells struct {
	header  string
	unit    string
	content map[int32]string
	width   int
}

func newCells(header, unit string) cells {
	return cells{header: header, unit: unit, content: make(map[int32]string)}
}

func (c *cells) headerText(order *config.SortOrder, cfg *config.Config) string {
	if order == nil {
		return c.header
	}
	if *order == config.Descending {
		return c.header + ":" + cfg.Display.Descending
	}
	return c.header + ":" + cfg.Display.Ascending
}

func (c *cells) ResetWidth(order *config.SortOrder, cfg *config.Config, maxWidth, minWidth *int) {
	c.width = max(runewidth.StringWidth(c.headerText(order, cfg)), runewidth.StringWidth(c.unit))
	if minWidth != nil {
		c.width = max(c.width, *minWidth)
	}
	if maxWidth != nil {
		c.width = min(c.width, *maxWidth)
	}
}

func (c *cells) UpdateWidth(pid int32, maxWidth *int) {
	if s, ok := c.content[pid]; ok {
		c.width = max(c.width, runewidth.StringWidth(s))
	}
	if maxWidth != nil {
		c.width = min(c.width, *maxWidth)
	}
}

func (c *cells) Width() int { return c.width }

func (c *cells) DisplayHeader(align config.Align, order *config.SortOrder, cfg *config.Config) string {
	return fit(c.headerText(order, cfg), c.width, align)
}

func (c *cells) DisplayUnit(align config.Align) string {
	return fit(c.unit, c.width, align)
}

func (c *cells) DisplayContent(pid int32, align config.Align) (string, bool) {
	s, ok := c.content[pid]
	if !ok {
		return "", false
	}
	return fit(s, c.width, align), true
}

func (c *cells) Text(pid int32) (string, bool) {
	s, ok := c.content[pid]
	return s, ok
}

func (c *cells) ApplyVisible([]int32) {}

// fit pads or cuts s to exactly width cells.
func fit(s string, width int, align config.Align) string {
	w := runewidth.StringWidth(s)
	if w > width {
		return runewidth.Truncate(s, width, "")
	}
	switch align {
	case config.AlignRight:
		return runewidth.FillLeft(s, width)
	case config.AlignCenter:
		left := (width - w) / 2
		return strings.Repeat(" ", left) + runewidth.FillRight(s, width-left)
	default:
		return runewidth.FillRight(s, width)
	}
}

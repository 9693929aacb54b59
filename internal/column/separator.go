package column

import (
	"github.com/w31r4/gprocs/internal/config"
	"github.com/w31r4/gprocs/internal/process"
)

// separator draws the same divider on every line.
type separator struct {
	cells
	pids []int32
}

func newSeparator(symbol string) *separator {
	return &separator{cells: newCells(symbol, symbol)}
}

func (c *separator) Add(r *process.Record) {
	c.content[r.Pid] = c.header
	c.pids = append(c.pids, r.Pid)
}

func (c *separator) Available() bool { return true }
func (c *separator) Sortable() bool  { return false }

func (c *separator) SortedPids(config.SortOrder) []int32 { return c.pids }

// Text hides the divider from searches.
func (c *separator) Text(int32) (string, bool) { return "", false }

package column

import (
	"cmp"
	"slices"

	"github.com/w31r4/gprocs/internal/config"
	"github.com/w31r4/gprocs/internal/process"
)

// valueColumn is a column whose cells are derived from one ordered value
// per process. Ties sort by pid.
type valueColumn[T cmp.Ordered] struct {
	cells
	raw       map[int32]T
	extract   func(*process.Record) (T, string)
	available bool
}

func newValueColumn[T cmp.Ordered](header, unit string, extract func(*process.Record) (T, string)) *valueColumn[T] {
	return &valueColumn[T]{
		cells:     newCells(header, unit),
		raw:       make(map[int32]T),
		extract:   extract,
		available: true,
	}
}

func (c *valueColumn[T]) Add(r *process.Record) {
	v, s := c.extract(r)
	c.raw[r.Pid] = v
	c.content[r.Pid] = s
}

func (c *valueColumn[T]) Available() bool { return c.available }
func (c *valueColumn[T]) Sortable() bool  { return true }

func (c *valueColumn[T]) SortedPids(order config.SortOrder) []int32 {
	pids := make([]int32, 0, len(c.raw))
	for pid := range c.raw {
		pids = append(pids, pid)
	}
	slices.SortFunc(pids, func(a, b int32) int {
		if n := cmp.Compare(c.raw[a], c.raw[b]); n != 0 {
			return n
		}
		return cmp.Compare(a, b)
	})
	if order == config.Descending {
		slices.Reverse(pids)
	}
	return pids
}

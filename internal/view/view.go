// Package view turns one process snapshot into the lines gprocs prints:
// which processes are shown, in which order, how wide each column is and
// how the result reaches the terminal.
package view

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"

	"github.com/w31r4/gprocs/internal/column"
	"github.com/w31r4/gprocs/internal/config"
	"github.com/w31r4/gprocs/internal/process"
	"github.com/w31r4/gprocs/internal/style"
	"github.com/w31r4/gprocs/internal/term"
)

// ColumnInfo is a column together with its configured presentation.
type ColumnInfo struct {
	Column           column.Column
	Kind             config.ColumnKind
	Style            style.ColumnStyle
	NonnumericSearch bool
	NumericSearch    bool
	Align            config.Align
	MaxWidth         *int
	MinWidth         *int
}

// SortInfo is the active sort column and direction.
type SortInfo struct {
	Idx   int
	Order config.SortOrder
}

// View is bound to one snapshot. Call Filter, Adjust and Display in that
// order, then discard it.
type View struct {
	Columns       []ColumnInfo
	Term          term.Info
	Sort          SortInfo
	VisiblePids   []int32
	AuxiliaryPids map[int32]struct{}
	Log           logr.Logger

	ppids    map[int32]int32
	cfg      *config.Config
	resolver *style.Resolver
	selfPid  int32
}

// New builds the columns for cfg and opts and feeds records into them.
// Columns that are not available on this system are left out.
func New(opts *config.Options, cfg *config.Config, records []process.Record, info term.Info, resolver *style.Resolver) (*View, error) {
	cols, err := buildColumns(opts, cfg, resolver.Palette())
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, errors.New("no columns available")
	}

	ppids := make(map[int32]int32, len(records))
	for i := range records {
		r := &records[i]
		ppids[r.Pid] = r.Ppid
		for _, c := range cols {
			c.Column.Add(r)
		}
	}

	return &View{
		Columns:       cols,
		Term:          info,
		Sort:          resolveSort(opts, cfg, cols),
		AuxiliaryPids: map[int32]struct{}{},
		Log:           logr.Discard(),
		ppids:         ppids,
		cfg:           cfg,
		resolver:      resolver,
		selfPid:       int32(os.Getpid()),
	}, nil
}

func buildColumns(opts *config.Options, cfg *config.Config, palette style.Palette) ([]ColumnInfo, error) {
	var cols []ColumnInfo
	if opts.Tree {
		if c, ok := column.New(config.KindTree, "", cfg); ok && c.Available() {
			cols = append(cols, ColumnInfo{
				Column: c,
				Kind:   config.KindTree,
				Style:  style.FixedStyle(palette.Tree),
				Align:  config.AlignLeft,
			})
		}
	}

	slot := 0
	for i, cc := range cfg.Columns {
		kind := cc.Kind
		if kind == config.KindSlot {
			if slot >= len(opts.Insert) {
				slot++
				continue
			}
			k, ok := column.FindKind(opts.Insert[slot])
			slot++
			if !ok {
				continue
			}
			kind = k
		}

		c, ok := column.New(kind, cc.Header, cfg)
		if !ok {
			return nil, fmt.Errorf("columns[%d]: unknown kind %q", i, cc.Kind)
		}
		if !c.Available() {
			continue
		}
		cs, err := style.ParseColumnStyle(cc.Style)
		if err != nil {
			return nil, fmt.Errorf("columns[%d].style: %w", i, err)
		}
		cols = append(cols, ColumnInfo{
			Column:           c,
			Kind:             kind,
			Style:            cs,
			NonnumericSearch: cc.NonnumericSearch,
			NumericSearch:    cc.NumericSearch,
			Align:            cc.Align,
			MaxWidth:         cc.MaxWidth,
			MinWidth:         cc.MinWidth,
		})
	}
	return cols, nil
}

// resolveSort picks the sort column: a --sorta/--sortd name match first,
// then the configured default. Tree mode always sorts by the tree.
func resolveSort(opts *config.Options, cfg *config.Config, cols []ColumnInfo) SortInfo {
	info := SortInfo{Idx: cfg.Sort.Column, Order: cfg.Sort.Order}

	name, order := opts.SortAsc, config.Ascending
	if name == "" {
		name, order = opts.SortDesc, config.Descending
	}
	if name != "" {
		name = strings.ToLower(name)
		for i, c := range cols {
			if strings.Contains(strings.ToLower(column.Name(c.Kind)), name) {
				info = SortInfo{Idx: i, Order: order}
				break
			}
		}
	}

	if opts.Tree || info.Idx >= len(cols) {
		info.Idx = 0
	}
	return info
}

// IncSortColumn returns the next sortable column after the current one,
// wrapping around, or the current index when there is none.
func (v *View) IncSortColumn() int {
	n := len(v.Columns)
	for i := 1; i < n; i++ {
		idx := (v.Sort.Idx + i) % n
		if v.Columns[idx].Column.Sortable() {
			return idx
		}
	}
	return v.Sort.Idx
}

// DecSortColumn is IncSortColumn scanning backwards.
func (v *View) DecSortColumn() int {
	n := len(v.Columns)
	for i := 1; i < n; i++ {
		idx := (v.Sort.Idx + n - i) % n
		if v.Columns[idx].Column.Sortable() {
			return idx
		}
	}
	return v.Sort.Idx
}

// Adjust sizes every column for the visible pids. A width in minWidths,
// keyed by column index, replaces that column's configured minimum.
func (v *View) Adjust(minWidths map[int]int) {
	for i, c := range v.Columns {
		var order *config.SortOrder
		if i == v.Sort.Idx {
			o := v.Sort.Order
			order = &o
		}
		c.Column.ApplyVisible(v.VisiblePids)

		minWidth := c.MinWidth
		if w, ok := minWidths[i]; ok {
			minWidth = &w
		}
		c.Column.ResetWidth(order, v.cfg, c.MaxWidth, minWidth)
		for _, pid := range v.VisiblePids {
			c.Column.UpdateWidth(pid, c.MaxWidth)
		}
	}
}

// Widths returns the current width of each column, keyed by index, for use
// as the minimum widths of the next refresh.
func (v *View) Widths() map[int]int {
	out := make(map[int]int, len(v.Columns))
	for i, c := range v.Columns {
		out[i] = c.Column.Width()
	}
	return out
}

package view

import (
	"github.com/w31r4/gprocs/internal/column"
	"github.com/w31r4/gprocs/internal/config"
)

// Filter selects the pids to display, in sort order. In tree mode the
// ancestors of every match are added as auxiliary pids.
func (v *View) Filter(opts *config.Options) {
	var colsNonnumeric, colsNumeric []column.Column
	for _, c := range v.Columns {
		if c.NonnumericSearch {
			colsNonnumeric = append(colsNonnumeric, c.Column)
		}
		if c.NumericSearch {
			colsNumeric = append(colsNumeric, c.Column)
		}
	}

	var kwNonnumeric, kwNumeric []string
	for _, k := range opts.Keywords {
		if Classify(k) == Numeric {
			kwNumeric = append(kwNumeric, k)
		} else {
			kwNonnumeric = append(kwNonnumeric, k)
		}
	}

	logic := searchLogic(opts, v.cfg.Search.Logic)
	pids := v.Columns[v.Sort.Idx].Column.SortedPids(v.Sort.Order)
	matchNonnumeric := matcherFor(v.cfg.Search.NonnumericSearch, v.cfg.Search.SmartCase, colsNonnumeric, pids)
	matchNumeric := matcherFor(v.cfg.Search.NumericSearch, false, colsNumeric, pids)

	candidates := make(map[int32]struct{}, len(pids))
	for _, pid := range pids {
		if !v.cfg.Display.ShowSelf && pid == v.selfPid {
			continue
		}
		if len(opts.Keywords) > 0 {
			nonnumeric := findAll(colsNonnumeric, pid, kwNonnumeric, logic, matchNonnumeric)
			numeric := findAll(colsNumeric, pid, kwNumeric, logic, matchNumeric)
			if !combine(logic, nonnumeric, numeric) {
				continue
			}
		}
		candidates[pid] = struct{}{}
	}

	auxiliary := make(map[int32]struct{})
	if opts.Tree {
		for pid := range candidates {
			for _, a := range v.ancestors(pid) {
				if _, ok := candidates[a]; !ok {
					auxiliary[a] = struct{}{}
				}
			}
		}
		for pid := range auxiliary {
			candidates[pid] = struct{}{}
		}
	}

	limit := -1
	if opts.Watch {
		limit = max(v.Term.Height-5, 0)
	}
	visible := make([]int32, 0, len(candidates))
	for _, pid := range pids {
		if limit >= 0 && len(visible) >= limit {
			break
		}
		if _, ok := candidates[pid]; ok {
			visible = append(visible, pid)
		}
	}

	v.VisiblePids = visible
	v.AuxiliaryPids = auxiliary
	v.Log.V(1).Info("filtered", "keywords", len(opts.Keywords), "logic", logic, "visible", len(visible), "auxiliary", len(auxiliary))
}

// searchLogic prefers an explicit flag over the configured logic.
func searchLogic(opts *config.Options, configured config.SearchLogic) config.SearchLogic {
	switch {
	case opts.And:
		return config.LogicAnd
	case opts.Or:
		return config.LogicOr
	case opts.Nand:
		return config.LogicNand
	case opts.Nor:
		return config.LogicNor
	}
	return configured
}

// ancestors returns the strict ancestors of pid, nearest first. The walk
// stops at a parent that is not in the snapshot and on any cycle.
func (v *View) ancestors(pid int32) []int32 {
	var out []int32
	seen := map[int32]bool{pid: true}
	for {
		ppid, ok := v.ppids[pid]
		if !ok || seen[ppid] {
			return out
		}
		if _, known := v.ppids[ppid]; !known {
			return out
		}
		seen[ppid] = true
		out = append(out, ppid)
		pid = ppid
	}
}

package column

import (
	"slices"
	"strings"

	"github.com/w31r4/gprocs/internal/config"
	"github.com/w31r4/gprocs/internal/process"
)

// Symbol positions in config.DisplayConfig.TreeSymbols.
const (
	symVertical = iota
	symHorizontal
	symBranch
	symTee
	symCorner
)

// tree draws the parent/child hierarchy. Its cells depend on which pids are
// visible, so they are only filled by ApplyVisible.
type tree struct {
	cells
	ppids   map[int32]int32
	symbols [5]string
}

func newTree(symbols []string) *tree {
	t := &tree{cells: newCells("", ""), ppids: make(map[int32]int32)}
	t.symbols = [5]string{"│", "─", "┬", "├", "└"}
	for i := 0; i < len(symbols) && i < len(t.symbols); i++ {
		t.symbols[i] = symbols[i]
	}
	return t
}

func (c *tree) Add(r *process.Record) { c.ppids[r.Pid] = r.Ppid }

func (c *tree) Available() bool { return true }
func (c *tree) Sortable() bool  { return true }

// Text hides the drawing from searches.
func (c *tree) Text(int32) (string, bool) { return "", false }

// SortedPids walks the whole forest depth first. Siblings are ordered by pid
// in the requested direction; parents always precede their subtree.
func (c *tree) SortedPids(order config.SortOrder) []int32 {
	return c.walkOrder(c.ppids, order == config.Descending)
}

// ApplyVisible draws the branches of the forest formed by pids alone, with
// siblings in the order they appear in pids.
func (c *tree) ApplyVisible(pids []int32) {
	visible := make(map[int32]int32, len(pids))
	pos := make(map[int32]int, len(pids))
	for i, pid := range pids {
		visible[pid] = c.ppids[pid]
		pos[pid] = i
	}
	byPos := func(a, b int32) int { return pos[a] - pos[b] }
	children := childrenOf(visible)
	for _, kids := range children {
		slices.SortFunc(kids, byPos)
	}
	top := roots(visible)
	slices.SortFunc(top, byPos)
	c.content = make(map[int32]string, len(pids))

	seen := make(map[int32]bool, len(pids))
	var draw func(pid int32, indent string, root, last bool)
	draw = func(pid int32, indent string, root, last bool) {
		if seen[pid] {
			return
		}
		seen[pid] = true
		kids := children[pid]

		var line strings.Builder
		line.WriteString(indent)
		if !root {
			if last {
				line.WriteString(c.symbols[symCorner])
			} else {
				line.WriteString(c.symbols[symTee])
			}
		}
		if len(kids) > 0 {
			line.WriteString(c.symbols[symBranch])
		} else {
			line.WriteString(c.symbols[symHorizontal])
		}
		c.content[pid] = line.String()

		next := indent
		if !root {
			if last {
				next += " "
			} else {
				next += c.symbols[symVertical]
			}
		}
		for i, kid := range kids {
			draw(kid, next, false, i == len(kids)-1)
		}
	}
	for _, pid := range top {
		draw(pid, "", true, true)
	}
	for _, pid := range pids {
		draw(pid, "", true, true)
	}
}

func (c *tree) walkOrder(parents map[int32]int32, desc bool) []int32 {
	children := childrenOf(parents)
	if desc {
		for _, kids := range children {
			slices.Reverse(kids)
		}
	}
	out := make([]int32, 0, len(parents))
	seen := make(map[int32]bool, len(parents))
	var walk func(pid int32)
	walk = func(pid int32) {
		if seen[pid] {
			return
		}
		seen[pid] = true
		out = append(out, pid)
		for _, kid := range children[pid] {
			walk(kid)
		}
	}
	top := roots(parents)
	if desc {
		slices.Reverse(top)
	}
	for _, pid := range top {
		walk(pid)
	}
	// Pids caught in a parent cycle have no root; list them last.
	if len(out) < len(parents) {
		var rest []int32
		for pid := range parents {
			if !seen[pid] {
				rest = append(rest, pid)
			}
		}
		slices.Sort(rest)
		if desc {
			slices.Reverse(rest)
		}
		for _, pid := range rest {
			walk(pid)
		}
	}
	return out
}

// childrenOf maps each pid to its known children in ascending order.
func childrenOf(parents map[int32]int32) map[int32][]int32 {
	children := make(map[int32][]int32)
	for pid, ppid := range parents {
		if ppid == pid {
			continue
		}
		if _, ok := parents[ppid]; ok {
			children[ppid] = append(children[ppid], pid)
		}
	}
	for _, kids := range children {
		slices.Sort(kids)
	}
	return children
}

// roots lists, ascending, the pids whose parent is not part of the set.
func roots(parents map[int32]int32) []int32 {
	var out []int32
	for pid, ppid := range parents {
		if _, ok := parents[ppid]; !ok || ppid == pid {
			out = append(out, pid)
		}
	}
	slices.Sort(out)
	return out
}

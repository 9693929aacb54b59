package view

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"

	"github.com/w31r4/gprocs/internal/column"
	"github.com/w31r4/gprocs/internal/config"
)

// KeywordClass tells which columns a keyword is matched against.
type KeywordClass uint8

const (
	NonNumeric KeywordClass = iota
	Numeric
)

// Classify reports Numeric for keywords that parse as a base-10 integer.
func Classify(keyword string) KeywordClass {
	if _, err := strconv.ParseInt(keyword, 10, 64); err == nil {
		return Numeric
	}
	return NonNumeric
}

// combine applies logic to the results of the two keyword classes.
func combine(logic config.SearchLogic, nonnumeric, numeric bool) bool {
	switch logic {
	case config.LogicOr:
		return nonnumeric || numeric
	case config.LogicNand:
		return !(nonnumeric && numeric)
	case config.LogicNor:
		return !(nonnumeric || numeric)
	default:
		return nonnumeric && numeric
	}
}

// matcher reports whether keyword matches the cell of pid in column col.
type matcher func(col int, pid int32, text, keyword string) bool

func matcherFor(kind config.SearchKind, smartCase bool, cols []column.Column, pids []int32) matcher {
	switch kind {
	case config.SearchExact:
		return func(_ int, _ int32, text, keyword string) bool { return text == keyword }
	case config.SearchFuzzy:
		idx := &fuzzyIndex{cols: cols, pids: pids, hits: make(map[fuzzyKey]map[int32]struct{})}
		return func(col int, pid int32, _, keyword string) bool { return idx.match(col, pid, keyword) }
	default:
		return func(_ int, _ int32, text, keyword string) bool {
			if smartCase && !hasUpper(keyword) {
				return strings.Contains(strings.ToLower(text), keyword)
			}
			return strings.Contains(text, keyword)
		}
	}
}

// cellSource exposes the searchable cells of one column to fuzzy.FindFrom.
type cellSource struct {
	pids  []int32
	texts []string
}

func (s cellSource) String(i int) string { return s.texts[i] }
func (s cellSource) Len() int            { return len(s.texts) }

type fuzzyKey struct {
	col     int
	keyword string
}

// fuzzyIndex runs one fuzzy search per column and keyword, on first use.
type fuzzyIndex struct {
	cols []column.Column
	pids []int32
	hits map[fuzzyKey]map[int32]struct{}
}

func (f *fuzzyIndex) match(col int, pid int32, keyword string) bool {
	key := fuzzyKey{col: col, keyword: keyword}
	set, ok := f.hits[key]
	if !ok {
		var src cellSource
		for _, p := range f.pids {
			if text, ok := f.cols[col].Text(p); ok {
				src.pids = append(src.pids, p)
				src.texts = append(src.texts, text)
			}
		}
		matches := fuzzy.FindFrom(keyword, src)
		set = make(map[int32]struct{}, len(matches))
		for _, m := range matches {
			set[src.pids[m.Index]] = struct{}{}
		}
		f.hits[key] = set
	}
	_, hit := set[pid]
	return hit
}

// findAll folds the keywords of one class. And and Nand need every keyword
// to match; Or and Nor need one. A keyword matches when any column does.
func findAll(cols []column.Column, pid int32, keywords []string, logic config.SearchLogic, match matcher) bool {
	all := logic == config.LogicAnd || logic == config.LogicNand
	ret := all
	for _, k := range keywords {
		hit := false
		for i, c := range cols {
			if text, ok := c.Text(pid); ok && match(i, pid, text, k) {
				hit = true
				break
			}
		}
		if all {
			ret = ret && hit
		} else {
			ret = ret || hit
		}
	}
	return ret
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

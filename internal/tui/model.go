// Package tui is the watch mode: it refreshes the process table on an
// interval until the user quits.
package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/w31r4/gprocs/internal/config"
	"github.com/w31r4/gprocs/internal/process"
	"github.com/w31r4/gprocs/internal/style"
	"github.com/w31r4/gprocs/internal/term"
	"github.com/w31r4/gprocs/internal/view"
)

// A message carrying a fresh snapshot.
type snapshotMsg struct {
	records []process.Record
	at      time.Time
}

// A message asking for the next snapshot.
type tickMsg time.Time

// A message containing an error.
type errMsg struct{ err error }

// Deps are what the watch loop needs from the command line.
type Deps struct {
	Options   *config.Options
	Config    *config.Config
	Resolver  *style.Resolver
	Collector *process.Collector
	Term      term.Info
	Log       logr.Logger
}

type model struct {
	deps Deps

	width  int
	height int

	records []process.Record
	view    *view.View
	// sort and minWidths survive refreshes so the table does not jump.
	sort      *view.SortInfo
	minWidths map[int]int
	lines     []string
	updated   time.Time
	err       error

	keys keyMap
	help help.Model
}

func newModel(deps Deps) model {
	return model{
		deps:   deps,
		width:  deps.Term.Width,
		height: deps.Term.Height,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return m.collect()
}

// collect is a tea.Cmd factory that samples processes off the UI loop.
func (m model) collect() tea.Cmd {
	c := m.deps.Collector
	return func() tea.Msg {
		records, err := c.Collect(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return snapshotMsg{records: records, at: time.Now()}
	}
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.deps.Options.WatchInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// rebuild renders the cached snapshot with the current size and sort.
func (m *model) rebuild() {
	if m.records == nil {
		return
	}
	info := m.deps.Term
	info.Width, info.Height, info.Out = m.width, m.height, io.Discard

	v, err := view.New(m.deps.Options, m.deps.Config, m.records, info, m.deps.Resolver)
	if err != nil {
		m.err = err
		return
	}
	v.Log = m.deps.Log
	if m.sort != nil && m.sort.Idx < len(v.Columns) {
		v.Sort = *m.sort
	}
	v.Filter(m.deps.Options)
	v.Adjust(m.minWidths)
	v.Apply(v.Policy(m.deps.Options))

	lines := v.Render()
	for i, l := range lines {
		lines[i] = term.Truncate(l, v.Term.Width)
	}

	sort := v.Sort
	m.view, m.sort, m.lines = v, &sort, lines
	m.minWidths = v.Widths()
	m.err = nil
}

// Start runs the watch loop until the user quits.
func Start(deps Deps) error {
	p := tea.NewProgram(newModel(deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}

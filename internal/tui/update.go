package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/w31r4/gprocs/internal/config"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.records = msg.records
		m.updated = msg.at
		m.rebuild()
		return m, m.tick()

	case tickMsg:
		return m, m.collect()

	case errMsg:
		// Keep the last table and try again on the next tick.
		m.err = msg.err
		m.deps.Log.Error(msg.err, "collect failed")
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.minWidths = nil
		m.rebuild()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.setSortColumn(m.nextSortColumn(true))
		case key.Matches(msg, m.keys.Prev):
			m.setSortColumn(m.nextSortColumn(false))
		case key.Matches(msg, m.keys.Ascending):
			m.setSortOrder(config.Ascending)
		case key.Matches(msg, m.keys.Descending):
			m.setSortOrder(config.Descending)
		}
		return m, nil
	}
	return m, nil
}

func (m model) nextSortColumn(forward bool) int {
	if m.view == nil {
		return 0
	}
	if forward {
		return m.view.IncSortColumn()
	}
	return m.view.DecSortColumn()
}

func (m *model) setSortColumn(idx int) {
	if m.sort == nil || m.sort.Idx == idx {
		return
	}
	m.sort.Idx = idx
	// The indicator moves to another header; let widths shrink back.
	m.minWidths = nil
	m.rebuild()
}

func (m *model) setSortOrder(order config.SortOrder) {
	if m.sort == nil || m.sort.Order == order {
		return
	}
	m.sort.Order = order
	m.rebuild()
}

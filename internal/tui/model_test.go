package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/go-logr/logr"

	"github.com/w31r4/gprocs/internal/config"
	"github.com/w31r4/gprocs/internal/process"
	"github.com/w31r4/gprocs/internal/style"
	"github.com/w31r4/gprocs/internal/term"
)

func testModel(t *testing.T) model {
	t.Helper()
	cfg := config.Default()
	p, err := style.NewPalette(cfg.Style)
	if err != nil {
		t.Fatal(err)
	}
	r := style.NewResolver(style.Dark, p)
	return newModel(Deps{
		Options:   &config.Options{Watch: true, WatchInterval: time.Second},
		Config:    cfg,
		Resolver:  r,
		Collector: &process.Collector{},
		Term:      term.Info{Width: 120, Height: 30, Attended: true},
		Log:       logr.Discard(),
	})
}

func snapshot() snapshotMsg {
	return snapshotMsg{
		records: []process.Record{
			{Pid: 1, Ppid: 0, Name: "init", Command: "/sbin/init", Username: "root", State: "S"},
			{Pid: 42, Ppid: 1, Name: "sshd", Command: "/usr/sbin/sshd -D", Username: "root", State: "S"},
			{Pid: 77, Ppid: 42, Name: "bash", Command: "-bash", Username: "alice", State: "R"},
		},
		at: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate(t *testing.T) {
	m := testModel(t)

	next, cmd := m.Update(snapshot())
	m = next.(model)
	if cmd == nil {
		t.Fatal("a snapshot should schedule the next tick")
	}
	if len(m.lines) != 5 {
		t.Fatalf("expected header, unit and 3 rows, got %d lines", len(m.lines))
	}
	if m.sort == nil || m.sort.Idx != 0 || m.sort.Order != config.Ascending {
		t.Fatalf("unexpected initial sort %+v", m.sort)
	}

	// Test switching to the next sortable column
	next, _ = m.Update(runes("n"))
	m = next.(model)
	if m.sort.Idx != 1 {
		t.Errorf("sort column should be 1, but got %d", m.sort.Idx)
	}

	// Test switching back
	next, _ = m.Update(runes("p"))
	m = next.(model)
	if m.sort.Idx != 0 {
		t.Errorf("sort column should be 0, but got %d", m.sort.Idx)
	}

	// Test descending order, which survives a refresh
	next, _ = m.Update(runes("d"))
	m = next.(model)
	next, _ = m.Update(snapshot())
	m = next.(model)
	if m.sort.Order != config.Descending {
		t.Errorf("order should be descending, but got %s", m.sort.Order)
	}
	first := ansi.Strip(m.lines[2])
	if !strings.HasPrefix(strings.TrimSpace(first), "77") {
		t.Errorf("descending pid order should start with 77, got %q", first)
	}

	// Test quitting
	_, cmd = m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestWindowResizeCapsRows(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(snapshot())
	m = next.(model)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 7})
	m = next.(model)
	// Height 7 leaves room for two rows plus header and unit line.
	if len(m.lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(m.lines))
	}
	for _, l := range m.lines {
		if w := len([]rune(ansi.Strip(l))); w > 40 {
			t.Fatalf("line wider than terminal (%d): %q", w, ansi.Strip(l))
		}
	}
}

func TestErrorKeepsTable(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(snapshot())
	m = next.(model)

	next, cmd := m.Update(errMsg{errors.New("boom")})
	m = next.(model)
	if cmd == nil {
		t.Fatal("an error should still schedule the next tick")
	}
	if len(m.lines) != 5 {
		t.Fatalf("table should be kept, got %d lines", len(m.lines))
	}
	if out := m.View(); !strings.Contains(out, "boom") {
		t.Fatalf("view should show the error, got %q", out)
	}
}

func TestViewBeforeFirstSnapshot(t *testing.T) {
	m := testModel(t)
	if out := m.View(); !strings.Contains(out, "collecting") {
		t.Fatalf("unexpected view %q", out)
	}
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/w31r4/gprocs/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// isolate points config lookup at an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("GPROCS_CONFIG", "")
	t.Setenv("GPROCS_THEME", "")
	t.Setenv("GPROCS_PAGER", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestListKinds(t *testing.T) {
	out, _, err := execute(t, "--list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"Pid", "UsageMem", "Command", "Tree"} {
		if !strings.Contains(out, name) {
			t.Fatalf("--list output missing %s:\n%s", name, out)
		}
	}
}

func TestMutuallyExclusiveLogic(t *testing.T) {
	if _, _, err := execute(t, "--and", "--or", "x"); err == nil {
		t.Fatal("--and with --or should fail")
	}
}

func TestInvalidModes(t *testing.T) {
	cases := [][]string{
		{"--pager", "sometimes"},
		{"--color", "never"},
		{"--theme", "sepia"},
	}
	for _, args := range cases {
		if _, _, err := execute(t, args...); err == nil {
			t.Fatalf("%v should fail", args)
		}
	}
}

func TestOneShotToPipe(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[[columns]]
kind = "pid"
style = "Yellow"
numeric_search = true
align = "right"

[[columns]]
kind = "command"
style = "White"
nonnumeric_search = true

[display]
show_self = true
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "--config", path, "--pager", "disable", "--color", "disable", "--interval", "0s", "--", strconvPid())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header, unit and own process, got:\n%s", out)
	}
	if !strings.Contains(lines[0], "PID") || !strings.Contains(lines[0], "Command") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[2]), strconvPid()) {
		t.Fatalf("expected own pid row, got %q", lines[2])
	}
}

func TestMissingConfigFails(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("explicit missing config should fail")
	}
}

func TestUsesPorts(t *testing.T) {
	cfg := config.Default()
	if usesPorts(cfg, nil) {
		t.Fatal("default layout has no port column")
	}
	if !usesPorts(cfg, []string{"tcp"}) {
		t.Fatal("inserted port column should enable scanning")
	}
	cfg.Columns = append(cfg.Columns, config.ColumnConfig{Kind: config.KindTCPPort})
	if !usesPorts(cfg, nil) {
		t.Fatal("configured port column should enable scanning")
	}
}

func TestAutoModesFollowOutputWriter(t *testing.T) {
	isolate(t)
	t.Setenv("NO_COLOR", "")

	out, errOut, err := execute(t, "--debug", "--theme", "light", "--interval", "0s", "--", strconvPid())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("output to a buffer should not be coloured:\n%q", out)
	}
	if !strings.Contains(out, strconvPid()) {
		t.Fatalf("own process missing:\n%s", out)
	}
	if !strings.Contains(errOut, `"resolved"="light"`) {
		t.Fatalf("debug log should report the resolved theme:\n%s", errOut)
	}
	if strings.Contains(errOut, "started pager") {
		t.Fatalf("pager spawned for a buffer:\n%s", errOut)
	}
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, false)
	log.V(1).Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("V(1) should be off by default, got %q", buf.String())
	}
	log = newLogger(&buf, true).WithName("gprocs")
	log.V(1).Info("shown", "n", 3)
	if got := buf.String(); !strings.Contains(got, "shown") || !strings.Contains(got, "gprocs") {
		t.Fatalf("unexpected log line %q", got)
	}
}

func strconvPid() string { return strconv.Itoa(os.Getpid()) }

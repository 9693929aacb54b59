package process

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestStateLetters(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{[]string{"running"}, "R"},
		{[]string{"sleep"}, "S"},
		{[]string{"blocked"}, "D"},
		{[]string{"zombie"}, "Z"},
		{[]string{"stop"}, "T"},
		{[]string{"idle"}, "I"},
		{[]string{"sleep", "lock"}, "SL"},
		{[]string{"K"}, "K"},
		{[]string{"mystery"}, "?"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := stateLetters(tc.in); got != tc.want {
			t.Fatalf("stateLetters(%v)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPorts(t *testing.T) {
	if got := FormatPorts(nil); got != "" {
		t.Fatalf("FormatPorts(nil)=%q", got)
	}
	if got := FormatPorts([]uint32{22, 80, 8080}); got != "22,80,8080" {
		t.Fatalf("FormatPorts=%q", got)
	}
}

func TestPortsEnabled(t *testing.T) {
	cases := []struct {
		env  string
		want bool
	}{
		{"", true},
		{"1", true},
		{"YES", true},
		{"0", false},
		{"off", false},
	}
	for _, tc := range cases {
		t.Setenv("GPROCS_SCAN_PORTS", tc.env)
		if got := PortsEnabled(); got != tc.want {
			t.Fatalf("PortsEnabled(%q)=%v, want %v", tc.env, got, tc.want)
		}
	}
}

func TestPortScanTimeout(t *testing.T) {
	t.Setenv("GPROCS_PORT_TIMEOUT_MS", "")
	if got := portScanTimeout(); got != 300*time.Millisecond {
		t.Fatalf("default timeout=%v", got)
	}
	t.Setenv("GPROCS_PORT_TIMEOUT_MS", "50")
	if got := portScanTimeout(); got != 50*time.Millisecond {
		t.Fatalf("timeout=%v, want 50ms", got)
	}
	t.Setenv("GPROCS_PORT_TIMEOUT_MS", "abc")
	if got := portScanTimeout(); got != 300*time.Millisecond {
		t.Fatalf("invalid value should fall back, got %v", got)
	}
}

func TestCollectIncludesSelf(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := &Collector{Interval: 10 * time.Millisecond}
	records, err := c.Collect(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	self := int32(os.Getpid())
	for _, r := range records {
		if r.Pid == self {
			if r.Name == "" {
				t.Fatal("expected own process name")
			}
			if r.Ppid != int32(os.Getppid()) {
				t.Fatalf("ppid=%d, want %d", r.Ppid, os.Getppid())
			}
			return
		}
	}
	t.Fatalf("own pid %d not found among %d records", self, len(records))
}

func TestCollectHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Collector{Interval: time.Hour}
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	if _, err := c.Collect(ctx); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func BenchmarkCollect(b *testing.B) {
	c := &Collector{}
	for i := 0; i < b.N; i++ {
		if _, err := c.Collect(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}

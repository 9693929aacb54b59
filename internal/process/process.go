// Package process collects a snapshot of the running processes.
package process

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/shirou/gopsutil/v3/process"
)

// Record is one process of a snapshot, already reduced to the values the
// columns display.
type Record struct {
	Pid        int32
	Ppid       int32
	Name       string
	Command    string
	Username   string
	State      string
	Nice       int32
	Threads    int32
	CPUPercent float64
	MemPercent float64
	RSS        uint64
	VMS        uint64
	StartTime  time.Time
	CPUTime    time.Duration
	Ports      []uint32
}

// Collector samples processes twice, Interval apart, so CPU usage reflects
// that window rather than the whole process lifetime.
type Collector struct {
	Interval time.Duration
	// Ports enables listening-port collection, which is noticeably slower.
	Ports bool
	Log   logr.Logger
}

// Collect returns one Record per process still alive at the second sample.
// Processes that exit between the samples are skipped.
func (c *Collector) Collect(ctx context.Context) ([]Record, error) {
	started := time.Now()
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	before := make(map[int32]float64, len(procs))
	for _, p := range procs {
		if t, err := p.TimesWithContext(ctx); err == nil {
			before[p.Pid] = t.User + t.System
		}
	}

	sampled := time.Now()
	if c.Interval > 0 {
		timer := time.NewTimer(c.Interval)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}
	elapsed := time.Since(sampled).Seconds()

	scanPorts := c.Ports && PortsEnabled()
	records := make([]Record, 0, len(procs))
	for _, p := range procs {
		rec, err := readRecord(ctx, p)
		if err != nil {
			continue
		}
		if prev, ok := before[p.Pid]; ok && elapsed > 0 {
			rec.CPUPercent = (rec.CPUTime.Seconds() - prev) / elapsed * 100
			if rec.CPUPercent < 0 {
				rec.CPUPercent = 0
			}
		}
		if scanPorts {
			rec.Ports = getProcessPorts(ctx, p)
		}
		records = append(records, rec)
	}

	c.Log.V(1).Info("collected processes", "count", len(records), "listed", len(procs), "took", time.Since(started))
	return records, nil
}

// readRecord fails only when the process is gone; every other attribute is
// best effort and left zero when unreadable.
func readRecord(ctx context.Context, p *process.Process) (Record, error) {
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return Record{}, err
	}
	rec := Record{Pid: p.Pid, Name: name}

	rec.Ppid, _ = p.PpidWithContext(ctx)
	rec.Username, _ = p.UsernameWithContext(ctx)
	rec.Nice, _ = p.NiceWithContext(ctx)
	rec.Threads, _ = p.NumThreadsWithContext(ctx)

	if cmd, err := p.CmdlineWithContext(ctx); err == nil && cmd != "" {
		rec.Command = cmd
	} else {
		rec.Command = "[" + name + "]"
	}
	if st, err := p.StatusWithContext(ctx); err == nil {
		rec.State = stateLetters(st)
	}
	if mp, err := p.MemoryPercentWithContext(ctx); err == nil {
		rec.MemPercent = float64(mp)
	}
	if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
		rec.RSS = mi.RSS
		rec.VMS = mi.VMS
	}
	if ct, err := p.CreateTimeWithContext(ctx); err == nil {
		rec.StartTime = time.UnixMilli(ct)
	}
	if t, err := p.TimesWithContext(ctx); err == nil && t != nil {
		rec.CPUTime = time.Duration((t.User + t.System) * float64(time.Second))
	}
	return rec, nil
}

// stateLetters maps gopsutil status names to the usual one-letter codes.
func stateLetters(status []string) string {
	var b strings.Builder
	for _, s := range status {
		switch s {
		case "running":
			b.WriteByte('R')
		case "sleep":
			b.WriteByte('S')
		case "blocked":
			b.WriteByte('D')
		case "stop":
			b.WriteByte('T')
		case "zombie":
			b.WriteByte('Z')
		case "idle":
			b.WriteByte('I')
		case "wait":
			b.WriteByte('W')
		case "lock":
			b.WriteByte('L')
		default:
			if len(s) == 1 {
				b.WriteString(s)
			} else {
				b.WriteByte('?')
			}
		}
	}
	return b.String()
}

package column

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/w31r4/gprocs/internal/config"
	"github.com/w31r4/gprocs/internal/process"
)

// Info describes one column kind for listings.
type Info struct {
	Kind        config.ColumnKind
	Name        string
	Description string
}

// kindList is ordered by display name; FindKind returns the first match.
var kindList = []Info{
	{config.KindCommand, "Command", "Command with all arguments"},
	{config.KindCPUTime, "CpuTime", "Cumulative CPU time"},
	{config.KindNice, "Nice", "Nice value"},
	{config.KindParentPid, "ParentPid", "Parent process ID"},
	{config.KindPid, "Pid", "Process ID"},
	{config.KindSeparator, "Separator", "Column separator"},
	{config.KindSlot, "Slot", "Placeholder filled by --insert"},
	{config.KindStartTime, "StartTime", "Start time"},
	{config.KindState, "State", "Process state"},
	{config.KindTCPPort, "TcpPort", "Listening TCP/UDP ports"},
	{config.KindThreads, "Threads", "Thread count"},
	{config.KindTree, "Tree", "Process tree"},
	{config.KindUsageCPU, "UsageCpu", "CPU utilization"},
	{config.KindUsageMem, "UsageMem", "Memory utilization"},
	{config.KindUsername, "Username", "User name"},
	{config.KindVMRss, "VmRss", "Resident set size"},
	{config.KindVMSize, "VmSize", "Virtual memory size"},
}

// Kinds returns every column kind.
func Kinds() []Info { return slices.Clone(kindList) }

// Name returns the display name of kind, or the kind itself when unknown.
func Name(kind config.ColumnKind) string {
	for _, k := range kindList {
		if k.Kind == kind {
			return k.Name
		}
	}
	return string(kind)
}

// FindKind resolves a column name given on the command line. The match is
// a case-insensitive substring of the display name. Layout-only kinds are
// never returned.
func FindKind(pattern string) (config.ColumnKind, bool) {
	pattern = strings.ToLower(pattern)
	for _, k := range kindList {
		switch k.Kind {
		case config.KindSeparator, config.KindSlot, config.KindTree:
			continue
		}
		if strings.Contains(strings.ToLower(k.Name), pattern) {
			return k.Kind, true
		}
	}
	return "", false
}

// New builds an empty column of kind. header overrides the default header
// when not empty. Slot and unknown kinds report false.
func New(kind config.ColumnKind, header string, cfg *config.Config) (Column, bool) {
	var c Column
	switch kind {
	case config.KindPid:
		c = newValueColumn("PID", "", func(r *process.Record) (int32, string) {
			return r.Pid, strconv.Itoa(int(r.Pid))
		})
	case config.KindParentPid:
		c = newValueColumn("Parent", "", func(r *process.Record) (int32, string) {
			return r.Ppid, strconv.Itoa(int(r.Ppid))
		})
	case config.KindUsername:
		c = newValueColumn("User", "", func(r *process.Record) (string, string) {
			return r.Username, r.Username
		})
	case config.KindState:
		c = newValueColumn("State", "", func(r *process.Record) (string, string) {
			return r.State, r.State
		})
	case config.KindNice:
		c = newValueColumn("Nice", "", func(r *process.Record) (int32, string) {
			return r.Nice, strconv.Itoa(int(r.Nice))
		})
	case config.KindThreads:
		c = newValueColumn("Threads", "", func(r *process.Record) (int32, string) {
			return r.Threads, strconv.Itoa(int(r.Threads))
		})
	case config.KindUsageCPU:
		c = newValueColumn("CPU", "[%]", func(r *process.Record) (float64, string) {
			return r.CPUPercent, strconv.FormatFloat(r.CPUPercent, 'f', 1, 64)
		})
	case config.KindUsageMem:
		c = newValueColumn("MEM", "[%]", func(r *process.Record) (float64, string) {
			return r.MemPercent, strconv.FormatFloat(r.MemPercent, 'f', 1, 64)
		})
	case config.KindVMRss:
		c = newValueColumn("VmRSS", "[bytes]", func(r *process.Record) (uint64, string) {
			return r.RSS, humanize.IBytes(r.RSS)
		})
	case config.KindVMSize:
		c = newValueColumn("VmSize", "[bytes]", func(r *process.Record) (uint64, string) {
			return r.VMS, humanize.IBytes(r.VMS)
		})
	case config.KindStartTime:
		c = newValueColumn("Start", "", func(r *process.Record) (int64, string) {
			if r.StartTime.IsZero() {
				return 0, ""
			}
			return r.StartTime.Unix(), r.StartTime.Format("2006/01/02 15:04")
		})
	case config.KindCPUTime:
		c = newValueColumn("CPU Time", "", func(r *process.Record) (time.Duration, string) {
			return r.CPUTime, formatCPUTime(r.CPUTime)
		})
	case config.KindCommand:
		c = newValueColumn("Command", "", func(r *process.Record) (string, string) {
			return r.Command, r.Command
		})
	case config.KindTCPPort:
		col := newValueColumn("TCP", "", func(r *process.Record) (uint32, string) {
			if len(r.Ports) == 0 {
				return 0, ""
			}
			return r.Ports[0], process.FormatPorts(r.Ports)
		})
		col.available = process.PortsEnabled()
		c = col
	case config.KindSeparator:
		c = newSeparator(cfg.Display.Separator)
	case config.KindTree:
		c = newTree(cfg.Display.TreeSymbols)
	default:
		return nil, false
	}
	if header != "" {
		setHeader(c, header)
	}
	return c, true
}

func setHeader(c Column, header string) {
	type headed interface{ setHeader(string) }
	if h, ok := c.(headed); ok {
		h.setHeader(header)
	}
}

func (c *cells) setHeader(h string) { c.header = h }

// formatCPUTime renders d as h:mm:ss.
func formatCPUTime(d time.Duration) string {
	s := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
}

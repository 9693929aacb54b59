package process

import (
	"context"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// getProcessPorts returns the sorted, de-duplicated local ports the process
// listens on, bounded by portScanTimeout.
func getProcessPorts(ctx context.Context, p *process.Process) []uint32 {
	ctx, cancel := context.WithTimeout(ctx, portScanTimeout())
	defer cancel()

	conns, err := p.ConnectionsWithContext(ctx)
	if err != nil {
		return nil
	}

	unique := make(map[uint32]struct{})
	for _, conn := range conns {
		if conn.Laddr.Port == 0 {
			continue
		}
		// Some platforms report "NONE" or nothing for listening sockets.
		if conn.Status != "LISTEN" && conn.Status != "NONE" && conn.Status != "" {
			continue
		}
		unique[conn.Laddr.Port] = struct{}{}
	}
	if len(unique) == 0 {
		return nil
	}

	ports := make([]uint32, 0, len(unique))
	for port := range unique {
		ports = append(ports, port)
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i] < ports[j] })
	return ports
}

// FormatPorts joins ports with commas.
func FormatPorts(ports []uint32) string {
	if len(ports) == 0 {
		return ""
	}
	parts := make([]string, len(ports))
	for i, port := range ports {
		parts[i] = strconv.FormatUint(uint64(port), 10)
	}
	return strings.Join(parts, ",")
}

// PortsEnabled honours GPROCS_SCAN_PORTS; unset means enabled.
func PortsEnabled() bool {
	v := os.Getenv("GPROCS_SCAN_PORTS")
	if v == "" {
		return true
	}
	s := strings.ToLower(v)
	return s == "1" || s == "true" || s == "yes"
}

// portScanTimeout reads GPROCS_PORT_TIMEOUT_MS, defaulting to 300ms.
func portScanTimeout() time.Duration {
	const fallback = 300 * time.Millisecond
	v := os.Getenv("GPROCS_PORT_TIMEOUT_MS")
	if v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

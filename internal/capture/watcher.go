package capture

import (
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// DaemonStatus describes one running capture daemon process
type DaemonStatus struct {
	PID           int32   `json:"pid"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryMB      float64 `json:"memory_mb"`
	UptimeMinutes int     `json:"uptime_minutes"`
}

// FindDaemons scans the process table for running capture daemons by name.
// Returns an empty slice when none are running.
func FindDaemons(name string) ([]DaemonStatus, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	var found []DaemonStatus
	for _, p := range procs {
		procName, err := p.Name()
		if err != nil || !strings.Contains(procName, name) {
			continue
		}
		cmdline, err := p.Cmdline()
		if err != nil || !strings.Contains(cmdline, "capture") {
			continue
		}

		status := DaemonStatus{PID: p.Pid}
		if cpu, err := p.CPUPercent(); err == nil {
			status.CPUPercent = cpu
		}
		if mem, err := p.MemoryInfo(); err == nil && mem != nil {
			status.MemoryMB = float64(mem.RSS) / 1024 / 1024
		}
		if created, err := p.CreateTime(); err == nil {
			uptime := time.Since(time.UnixMilli(created))
			status.UptimeMinutes = int(uptime.Minutes())
		}
		found = append(found, status)
	}
	return found, nil
}

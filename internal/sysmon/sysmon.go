// Package sysmon samples host load so a run report can show how busy the
// machine was while the distribution was computed.
package sysmon

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one snapshot of host resource usage.
type Stats struct {
	CPUPercent  float64 // 0.0 .. 100.0, averaged over all cores
	MemPercent  float64 // 0.0 .. 100.0
	MemTotal    uint64  // bytes
	LogicalCPUs int
}

// Sample collects a host snapshot. CPU usage is the delta since the previous
// call, so the first sample of a process may read 0. Fields that cannot be
// read on this platform are left at zero; ok is false when nothing could be
// read at all.
func Sample(ctx context.Context) (s Stats, ok bool) {
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
		ok = true
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		s.LogicalCPUs = n
		ok = true
	}
	if vmem, err := mem.VirtualMemoryWithContext(ctx); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemTotal = vmem.Total
		ok = true
	}
	return s, ok
}

// Package sysinfo discovers host properties used to size worker pools.
package sysinfo

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// CPUCounter reports how many logical CPUs are available to the process.
type CPUCounter interface {
	CPUCount() int
}

// CPUCounterFunc adapts a function to the CPUCounter interface.
type CPUCounterFunc func() int

func (f CPUCounterFunc) CPUCount() int {
	return f()
}

// HostCPUs is a CPUCounter backed by gopsutil. It falls back to
// runtime.NumCPU when the platform query fails.
type HostCPUs struct{}

var _ CPUCounter = HostCPUs{}

// CPUCount returns the number of logical CPUs, never less than 1.
func (HostCPUs) CPUCount() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		n = runtime.NumCPU()
	}
	if n < 1 {
		return 1
	}
	return n
}

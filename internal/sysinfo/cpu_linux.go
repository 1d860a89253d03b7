//go:build linux

package sysinfo

import (
	"runtime"

	"github.com/prometheus/procfs"
)

var procMount = procfs.DefaultMountPoint

// processorCount counts the online CPUs listed in /proc/stat. This is the
// machine's count and ignores the affinity mask of this process.
func processorCount() int {
	return onlineCPUs(procMount)
}

func onlineCPUs(mount string) int {
	fs, err := procfs.NewFS(mount)
	if err != nil {
		return runtime.NumCPU()
	}
	stat, err := fs.Stat()
	if err != nil || len(stat.CPU) == 0 {
		return runtime.NumCPU()
	}
	return len(stat.CPU)
}

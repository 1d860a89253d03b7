//go:build !linux

package sysinfo

import "runtime"

func processorCount() int {
	return runtime.NumCPU()
}

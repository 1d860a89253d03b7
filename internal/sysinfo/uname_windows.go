//go:build windows

package sysinfo

import "os"

func osName() string {
	return "Windows NT"
}

// osArchitecture reports the native architecture. PROCESSOR_ARCHITEW6432 is
// set for 32-bit processes running under WOW64.
func osArchitecture() string {
	if arch := os.Getenv("PROCESSOR_ARCHITEW6432"); arch != "" {
		return arch
	}
	return os.Getenv("PROCESSOR_ARCHITECTURE")
}

//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !solaris && !windows

package sysinfo

func osName() string { return "" }

func osArchitecture() string { return "" }

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris

package sysinfo

import "golang.org/x/sys/unix"

func uname() (unix.Utsname, bool) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return u, false
	}
	return u, true
}

func osName() string {
	u, ok := uname()
	if !ok {
		return ""
	}
	return unix.ByteSliceToString(u.Sysname[:])
}

func osArchitecture() string {
	u, ok := uname()
	if !ok {
		return ""
	}
	return unix.ByteSliceToString(u.Machine[:])
}

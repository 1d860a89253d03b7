// Package sysinfo answers the read-only host queries: OS name, build type,
// architecture, processor count and the OS version.
package sysinfo

import (
	"runtime"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
)

// Unknown is returned when the OS cannot produce a value.
const Unknown = "unknown"

// Build types reported by Type.
const (
	Type32Bit = "32bit"
	Type64Bit = "64bit"
)

// VersionSource supplies the OS version string. platform.Platform satisfies it.
type VersionSource interface {
	Version() (string, error)
}

// Info answers host queries. The OS version is computed once per Info and
// reused for its lifetime; everything else is read live on each call.
type Info struct {
	version func() string
}

// New returns an Info whose version is taken from src on first use.
func New(src VersionSource, logger zerolog.Logger) *Info {
	return &Info{
		version: sync.OnceValue(func() string {
			v, err := src.Version()
			if err != nil || v == "" {
				logger.Warn().Err(err).Msg("os version unavailable")
				return Unknown
			}
			return v
		}),
	}
}

// Type reports whether this binary was built for a 32-bit or 64-bit target.
func (i *Info) Type() string {
	return buildType(strconv.IntSize)
}

func buildType(intSize int) string {
	if intSize == 64 {
		return Type64Bit
	}
	return Type32Bit
}

// Name returns the OS name as reported by the kernel ("Linux", "Darwin",
// "Windows NT").
func (i *Info) Name() string {
	return orFallback(osName(), runtime.GOOS)
}

// Version returns the memoized OS version.
func (i *Info) Version() string {
	return i.version()
}

// Architecture returns the processor architecture ("x86_64", "arm64").
func (i *Info) Architecture() string {
	return orFallback(osArchitecture(), runtime.GOARCH)
}

// ProcessorCount returns the number of online logical processors on the
// machine, at least 1. CPU pinning of this process does not lower it.
func (i *Info) ProcessorCount() int {
	if n := processorCount(); n > 0 {
		return n
	}
	return 1
}

func orFallback(v, fallback string) string {
	if v != "" {
		return v
	}
	if fallback != "" {
		return fallback
	}
	return Unknown
}

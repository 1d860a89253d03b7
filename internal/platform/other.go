//go:build !darwin && !linux && !windows

package platform

import (
	"fmt"
	"runtime"
)

// unsupportedPlatform backs targets without a native implementation. Every
// action fails with ErrUnsupported; the facade reports false or no-ops.
type unsupportedPlatform struct{}

// New returns the fallback Platform for this target.
func New() Platform {
	return unsupportedPlatform{}
}

func (unsupportedPlatform) OpenApplication(string) error { return ErrUnsupported }

func (unsupportedPlatform) OpenURL(string) error { return ErrUnsupported }

func (unsupportedPlatform) TakeScreenshot(string) error { return ErrUnsupported }

func (unsupportedPlatform) Version() (string, error) {
	return "", fmt.Errorf("%s: %w", runtime.GOOS, ErrUnsupported)
}

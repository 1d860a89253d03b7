package platform

import "errors"

// ErrUnsupported is returned by operations the current OS cannot perform.
var ErrUnsupported = errors.New("operation not supported on this platform")

// Platform abstracts the OS-specific actions behind the facade.
// Exactly one implementation is compiled in per target; see New.
type Platform interface {
	// OpenApplication launches an executable or opens a file with its
	// default handler.
	OpenApplication(path string) error

	// OpenURL opens a URL in the system default browser or handler.
	OpenURL(rawURL string) error

	// TakeScreenshot captures the desktop and writes it to filename as PNG.
	TakeScreenshot(filename string) error

	// Version returns the OS version string.
	Version() (string, error)
}

//go:build darwin || linux || windows

package platform

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/kbinani/screenshot"

	"github.com/reclaim/platformhost/internal/fsutil"
)

var errNoDisplays = errors.New("no active displays")

// desktopBounds returns the rectangle covering every active display.
func desktopBounds() (image.Rectangle, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return image.Rectangle{}, errNoDisplays
	}
	bounds := screenshot.GetDisplayBounds(0)
	for i := 1; i < n; i++ {
		bounds = bounds.Union(screenshot.GetDisplayBounds(i))
	}
	return bounds, nil
}

// captureDesktop grabs all active displays and writes them to filename as PNG.
func captureDesktop(filename string) error {
	cleanPath, err := validateOutputPath(filename)
	if err != nil {
		return fmt.Errorf("invalid screenshot path: %w", err)
	}

	bounds, err := desktopBounds()
	if err != nil {
		return fmt.Errorf("capture desktop: %w", err)
	}

	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return fmt.Errorf("capture desktop: %w", err)
	}

	return fsutil.WriteAtomic(cleanPath, 0o644, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

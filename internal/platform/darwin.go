//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

type darwinPlatform struct{}

func newDarwinPlatform() *darwinPlatform {
	return &darwinPlatform{}
}

// New returns the Platform implementation for macOS.
func New() Platform {
	return newDarwinPlatform()
}

// OpenApplication opens an .app bundle, executable or document with
// LaunchServices. A bare name such as "Calculator" is looked up with -a.
func (p *darwinPlatform) OpenApplication(target string) error {
	path, name, err := resolveTarget(target)
	if err != nil {
		return err
	}
	if name != "" {
		return exec.Command("open", "-a", name).Run()
	}
	return exec.Command("open", path).Run()
}

// OpenURL opens rawURL with the default handler for its scheme.
func (p *darwinPlatform) OpenURL(rawURL string) error {
	u, err := validateURL(rawURL)
	if err != nil {
		return err
	}
	return exec.Command("open", u).Run()
}

func (p *darwinPlatform) TakeScreenshot(filename string) error {
	return captureDesktop(filename)
}

// Version returns the macOS product version (e.g. "14.5").
func (p *darwinPlatform) Version() (string, error) {
	out, err := exec.Command("sw_vers", "-productVersion").Output()
	if err != nil {
		return "", fmt.Errorf("sw_vers: %w", err)
	}
	v := strings.TrimSpace(string(out))
	if v == "" {
		return "", fmt.Errorf("sw_vers: empty output")
	}
	return v, nil
}

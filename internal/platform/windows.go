//go:build windows

package platform

import (
	"fmt"
	"os/exec"

	"golang.org/x/sys/windows"
)

type windowsPlatform struct {
	// shellOpen hands a file, directory or program name to the shell's
	// "open" verb.
	shellOpen func(target string) error
}

func newWindowsPlatform() *windowsPlatform {
	return &windowsPlatform{shellOpen: shellExecuteOpen}
}

// New returns the Platform implementation for Windows.
func New() Platform {
	return newWindowsPlatform()
}

// OpenApplication passes the target to ShellExecute so documents open with
// their registered handler and bare names resolve via PATH and App Paths.
// No command interpreter sees the string.
func (p *windowsPlatform) OpenApplication(target string) error {
	path, name, err := resolveTarget(target)
	if err != nil {
		return err
	}
	if name != "" {
		path = name
	}
	return p.shellOpen(path)
}

func shellExecuteOpen(target string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return fmt.Errorf("open %q: %w", target, err)
	}
	if err := windows.ShellExecute(0, verb, file, nil, nil, windows.SW_SHOWNORMAL); err != nil {
		return fmt.Errorf("open %q: %w", target, err)
	}
	return nil
}

func (p *windowsPlatform) OpenURL(rawURL string) error {
	u, err := validateURL(rawURL)
	if err != nil {
		return err
	}
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", u).Run()
}

func (p *windowsPlatform) TakeScreenshot(filename string) error {
	return captureDesktop(filename)
}

// Version reports major.minor.build from RtlGetVersion, which is not subject
// to the compatibility shims applied to GetVersionEx.
func (p *windowsPlatform) Version() (string, error) {
	v := windows.RtlGetVersion()
	if v == nil || v.MajorVersion == 0 {
		return "", fmt.Errorf("RtlGetVersion returned no version")
	}
	return fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber), nil
}

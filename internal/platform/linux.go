//go:build linux

package platform

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// osReleasePaths are checked in order, per os-release(5).
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

type linuxPlatform struct {
	opener      string
	releaseFile []string
}

func newLinuxPlatform() *linuxPlatform {
	return &linuxPlatform{
		opener:      "xdg-open",
		releaseFile: osReleasePaths,
	}
}

// New returns the Platform implementation for Linux.
func New() Platform {
	return newLinuxPlatform()
}

// OpenApplication starts an executable file detached and hands any other
// path to the desktop's default opener. A bare name is resolved on PATH and
// started detached.
func (p *linuxPlatform) OpenApplication(target string) error {
	path, name, err := resolveTarget(target)
	if err != nil {
		return err
	}
	if name == "" {
		if isExecutable(path) {
			return startDetached(path)
		}
		return exec.Command(p.opener, path).Run()
	}

	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("application %q not found: %w", name, err)
	}
	return startDetached(bin)
}

// isExecutable reports whether path is a regular file with an execute bit.
func isExecutable(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular() && fi.Mode().Perm()&0o111 != 0
}

func startDetached(bin string) error {
	cmd := exec.Command(bin)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", bin, err)
	}
	// reap the child; its exit status is not reported
	go func() { _ = cmd.Wait() }()
	return nil
}

func (p *linuxPlatform) OpenURL(rawURL string) error {
	u, err := validateURL(rawURL)
	if err != nil {
		return err
	}
	return exec.Command(p.opener, u).Run()
}

// TakeScreenshot captures the X11 root window.
func (p *linuxPlatform) TakeScreenshot(filename string) error {
	return captureDesktop(filename)
}

// Version returns the distribution VERSION_ID, or the kernel release when no
// os-release file is available.
func (p *linuxPlatform) Version() (string, error) {
	for _, path := range p.releaseFile {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if v := parseOSRelease(data)["VERSION_ID"]; v != "" {
			return v, nil
		}
	}

	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}
	release := unix.ByteSliceToString(u.Release[:])
	if release == "" {
		return "", fmt.Errorf("uname: empty release")
	}
	return release, nil
}

// parseOSRelease reads KEY=value lines, stripping optional quotes.
func parseOSRelease(data []byte) map[string]string {
	out := map[string]string{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		out[strings.TrimSpace(key)] = value
	}
	return out
}

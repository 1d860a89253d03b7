//go:build darwin

package identity

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// installationID returns the IOPlatformUUID from the I/O Registry.
func installationID() (string, error) {
	out, err := exec.Command("ioreg", "-rd1", "-c", "IOPlatformExpertDevice").Output()
	if err != nil {
		return "", fmt.Errorf("ioreg: %w", err)
	}
	return parseIOPlatformUUID(string(out))
}

// parseIOPlatformUUID extracts the value from a line such as
//
//	"IOPlatformUUID" = "564D1E2A-...."
func parseIOPlatformUUID(out string) (string, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, `"IOPlatformUUID"`) {
			continue
		}
		_, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if id := strings.Trim(strings.TrimSpace(value), `"`); id != "" {
			return id, nil
		}
	}
	return "", errors.New("IOPlatformUUID not found")
}

//go:build !linux && !darwin && !windows

package identity

import (
	"errors"
	"os"
	"strings"
)

// installationID reads /etc/hostid where the BSDs keep one.
func installationID() (string, error) {
	data, err := os.ReadFile("/etc/hostid")
	if err != nil {
		return "", err
	}
	if id := strings.TrimSpace(string(data)); id != "" {
		return id, nil
	}
	return "", errors.New("empty /etc/hostid")
}

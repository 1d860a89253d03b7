package platform

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// allowedSchemes lists the URL schemes handed to the system opener.
var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"ftp":    true,
	"file":   true,
}

// validatePath ensures a path is safe for command execution
// Returns the cleaned absolute path and an error if validation fails
func validatePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	cleanPath := filepath.Clean(absPath)

	// Ensure the path doesn't contain null bytes or other control characters
	if hasControlChars(cleanPath) {
		return "", fmt.Errorf("path contains invalid characters")
	}

	return cleanPath, nil
}

// existingPath validates path and checks that it exists.
func existingPath(path string) (string, error) {
	cleanPath, err := validatePath(path)
	if err != nil {
		return "", fmt.Errorf("invalid file path: %w", err)
	}
	if _, err := os.Stat(cleanPath); err != nil {
		return "", fmt.Errorf("file not accessible: %w", err)
	}
	return cleanPath, nil
}

// resolveTarget classifies an OpenApplication argument. An existing path is
// returned as path; otherwise a bare application name (no separators) is
// returned as name for the platform to look up.
func resolveTarget(target string) (path, name string, err error) {
	if p, pathErr := existingPath(target); pathErr == nil {
		return p, "", nil
	} else if !isBareName(target) {
		return "", "", pathErr
	}
	return "", target, nil
}

func isBareName(s string) bool {
	if s == "" || s == "." || s == ".." || hasControlChars(s) {
		return false
	}
	return !strings.ContainsAny(s, `/\`)
}

// validateURL parses rawURL and rejects anything that is not a complete URL
// with an allowed scheme.
func validateURL(rawURL string) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", fmt.Errorf("empty url")
	}
	if hasControlChars(rawURL) {
		return "", fmt.Errorf("url contains invalid characters")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	scheme := strings.ToLower(u.Scheme)
	if !allowedSchemes[scheme] {
		return "", fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}
	switch scheme {
	case "mailto":
		if u.Opaque == "" {
			return "", fmt.Errorf("invalid url: missing address")
		}
	case "file":
		if u.Path == "" {
			return "", fmt.Errorf("invalid url: missing path")
		}
	default:
		if u.Host == "" {
			return "", fmt.Errorf("invalid url: missing host")
		}
	}
	return u.String(), nil
}

// validateOutputPath checks that filename can be created: its directory must
// already exist.
func validateOutputPath(filename string) (string, error) {
	cleanPath, err := validatePath(filename)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(filepath.Dir(cleanPath))
	if err != nil {
		return "", fmt.Errorf("output directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("output directory is not a directory")
	}
	return cleanPath, nil
}

func hasControlChars(s string) bool {
	for _, r := range s {
		if r < 32 || r == 127 {
			return true
		}
	}
	return false
}

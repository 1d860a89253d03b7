package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePath(t *testing.T) {
	_, err := validatePath("")
	assert.Error(t, err, "empty path")

	_, err = validatePath("bad\x00name")
	assert.Error(t, err, "control characters")

	got, err := validatePath("a/../b")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "b", filepath.Base(got))
}

func TestExistingPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	got, err := existingPath(file)
	require.NoError(t, err)
	assert.Equal(t, file, got)

	_, err = existingPath(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestResolveTarget(t *testing.T) {
	file := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	path, name, err := resolveTarget(file)
	require.NoError(t, err)
	assert.Equal(t, file, path)
	assert.Empty(t, name)

	path, name, err = resolveTarget("Calculator")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, "Calculator", name)

	_, _, err = resolveTarget(filepath.Join(t.TempDir(), "missing", "app"))
	assert.Error(t, err)

	for _, bad := range []string{"", "a\x00b", `dir\app`} {
		_, _, err = resolveTarget(bad)
		assert.Error(t, err, "%q", bad)
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "https", in: "https://example.com/path?q=1"},
		{name: "http upper scheme", in: "HTTP://example.com"},
		{name: "mailto", in: "mailto:someone@example.com"},
		{name: "file", in: "file:///tmp/report.pdf"},
		{name: "empty", in: "", wantErr: true},
		{name: "blank", in: "   ", wantErr: true},
		{name: "no scheme", in: "example.com", wantErr: true},
		{name: "missing host", in: "https://", wantErr: true},
		{name: "javascript", in: "javascript:alert(1)", wantErr: true},
		{name: "control chars", in: "https://example.com/\n", wantErr: true},
		{name: "unparseable", in: "http://[::1", wantErr: true},
		{name: "empty mailto", in: "mailto:", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()

	got, err := validateOutputPath(filepath.Join(dir, "shot.png"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shot.png"), got)

	_, err = validateOutputPath(filepath.Join(dir, "missing", "shot.png"))
	assert.Error(t, err)

	file := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	_, err = validateOutputPath(filepath.Join(file, "shot.png"))
	assert.Error(t, err, "parent is a file")
}

func TestNew_ReturnsImplementation(t *testing.T) {
	assert.NotNil(t, New())
}

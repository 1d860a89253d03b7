//go:build windows

package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteAtomic writes the output of fn to a temp file in the target directory
// and renames it over path.
func WriteAtomic(path string, perm os.FileMode, fn WriteFunc) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := fn(tmp); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync pending file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close pending file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod pending file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	committed = true
	return nil
}

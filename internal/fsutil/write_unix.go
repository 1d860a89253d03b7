//go:build !windows

package fsutil

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// WriteAtomic writes the output of fn to path so that readers see either the
// old content or the complete new content.
func WriteAtomic(path string, perm os.FileMode, fn WriteFunc) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(perm))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	// no-op once committed
	defer func() { _ = pendingFile.Cleanup() }()

	if err := fn(pendingFile); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}

// Package fsutil holds small file helpers shared by the platform and identity
// packages.
package fsutil

import (
	"io"
	"os"
)

// WriteFunc streams file content into w.
type WriteFunc func(w io.Writer) error

// WriteFileAtomic replaces path with data.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return WriteAtomic(path, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

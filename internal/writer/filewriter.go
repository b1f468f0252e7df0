// Package writer exposes sinks for rewritten pairing records.
package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Writer stores a complete file image at path.
type Writer interface {
	WriteFile(path string, buf []byte) error
}

// DefaultPerm is used when the target does not exist yet. BlueZ keeps its
// storage readable by root only.
const DefaultPerm fs.FileMode = 0o600

// FileWriter writes files atomically via temp file + rename. An existing
// target keeps its permission bits and, where the platform allows, its
// owner.
type FileWriter struct{}

// WriteFile writes buf to path atomically.
func (w *FileWriter) WriteFile(path string, buf []byte) error {
	perm := DefaultPerm
	prev, err := os.Stat(path)
	switch {
	case err == nil:
		perm = prev.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat target: %w", err)
	}

	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".btdualboot-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}

	if chmodErr := tmpFile.Chmod(perm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}
	if prev != nil {
		if ownErr := copyOwner(tmpFile, prev); ownErr != nil {
			return fmt.Errorf("chown temp file: %w", ownErr)
		}
	}

	if syncErr := fdatasync(tmpFile); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return syncDir(dir)
}

// syncDir makes the rename durable.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open dir: %w", err)
	}
	defer d.Close()
	if err := d.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return fmt.Errorf("sync dir: %w", err)
	}
	return nil
}

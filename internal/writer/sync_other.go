//go:build !linux

package writer

import (
	"io/fs"
	"os"
)

func fdatasync(f *os.File) error {
	return f.Sync()
}

func copyOwner(_ *os.File, _ fs.FileInfo) error {
	return nil
}

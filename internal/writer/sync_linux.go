//go:build linux

package writer

import (
	"io/fs"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// fdatasync flushes file data without forcing a metadata-only update.
func fdatasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}

// copyOwner gives f the uid and gid of prev. Only root may do this; for
// anyone else the file already belongs to them, so EPERM is ignored.
func copyOwner(f *os.File, prev fs.FileInfo) error {
	st, ok := prev.Sys().(*syscall.Stat_t)
	if !ok {
		return nil
	}
	if err := unix.Fchown(int(f.Fd()), int(st.Uid), int(st.Gid)); err != nil && err != unix.EPERM {
		return err
	}
	return nil
}

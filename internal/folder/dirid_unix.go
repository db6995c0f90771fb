//go:build !windows

package folder

import (
	"io/fs"
	"syscall"
)

// dirID identifies a directory independently of the path it was reached by.
type dirID struct {
	Dev uint64
	Ino uint64
}

// identify returns the device and inode behind info.
func identify(_ string, info fs.FileInfo) (dirID, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return dirID{}, false
	}

	return dirID{Dev: uint64(st.Dev), Ino: st.Ino}, true //nolint:unconvert // Dev is int32 on darwin
}

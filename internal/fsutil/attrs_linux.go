//go:build linux

package fsutil

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// FS_IMMUTABLE_FL from linux/fs.h. x/sys/unix exposes the FS_IOC_*FLAGS
// ioctls but not the inode flag bits themselves.
const fsImmutableFl = 0x10

// platformAttributes probes the statx attribute flags for path. Filesystems
// that do not implement statx report nothing.
func platformAttributes(path string) Attribute {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BASIC_STATS, &stx); err != nil {
		return 0
	}
	var attrs Attribute
	if stx.Attributes_mask&unix.STATX_ATTR_IMMUTABLE != 0 && stx.Attributes&unix.STATX_ATTR_IMMUTABLE != 0 {
		attrs |= AttrSystem
	}
	if stx.Attributes_mask&unix.STATX_ATTR_ENCRYPTED != 0 && stx.Attributes&unix.STATX_ATTR_ENCRYPTED != 0 {
		attrs |= AttrEncrypted
	}
	return attrs
}

// fileBirthTime returns the creation time of path when the filesystem
// records one.
func fileBirthTime(path string) (time.Time, bool) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stx); err != nil {
		return time.Time{}, false
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, false
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), true
}

// setImmutable toggles the immutable inode flag on path.
func setImmutable(path string, on bool) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	flags, err := unix.IoctlGetInt(int(file.Fd()), unix.FS_IOC_GETFLAGS)
	if err != nil {
		return err
	}
	if on {
		flags |= fsImmutableFl
	} else {
		flags &^= fsImmutableFl
	}
	return unix.IoctlSetPointerInt(int(file.Fd()), unix.FS_IOC_SETFLAGS, flags)
}

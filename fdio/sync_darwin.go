//go:build darwin

package fdio

import "golang.org/x/sys/unix"

// Fdatasync falls back to fsync; macOS has no fdatasync.
func Fdatasync(fd int) error {
	return unix.Fsync(fd)
}

// Fsync flushes file data and metadata to the drive.
//
// On macOS this does not force the drive cache to disk; use FsyncFull when
// power-loss durability matters.
func Fsync(fd int) error {
	return unix.Fsync(fd)
}

// FsyncFull issues F_FULLFSYNC, ensuring data reaches the physical disk and
// not just the drive cache.
func FsyncFull(fd int) error {
	_, err := unix.FcntlInt(uintptr(fd), unix.F_FULLFSYNC, 0)
	return err
}

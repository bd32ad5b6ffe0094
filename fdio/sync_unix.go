//go:build linux || freebsd

package fdio

import "golang.org/x/sys/unix"

// Fdatasync flushes file data to disk without forcing a metadata write-out.
//
// On Linux/FreeBSD, fdatasync() provides sufficient guarantees for data
// durability.
func Fdatasync(fd int) error {
	return unix.Fdatasync(fd)
}

// Fsync flushes file data and metadata to disk.
func Fsync(fd int) error {
	return unix.Fsync(fd)
}

// FsyncFull is Fsync; this platform has no stronger barrier.
func FsyncFull(fd int) error {
	return unix.Fsync(fd)
}

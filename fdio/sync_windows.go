//go:build windows

package fdio

import "golang.org/x/sys/windows"

// Fdatasync flushes file data and metadata; Windows has a single barrier.
func Fdatasync(fd int) error {
	return windows.FlushFileBuffers(windows.Handle(fd))
}

// Fsync flushes file data and metadata via FlushFileBuffers.
func Fsync(fd int) error {
	return windows.FlushFileBuffers(windows.Handle(fd))
}

// FsyncFull is Fsync on Windows.
func FsyncFull(fd int) error {
	return Fsync(fd)
}

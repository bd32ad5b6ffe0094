//go:build !linux && !freebsd && !darwin && !windows

package fdio

func Fdatasync(fd int) error { return ErrUnsupported }

func Fsync(fd int) error { return ErrUnsupported }

func FsyncFull(fd int) error { return ErrUnsupported }

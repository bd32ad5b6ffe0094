//go:build unix

package fdio

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Syscall indirection so tests can simulate interruption and zero-progress
// descriptors.
var (
	sysRead  = unix.Read
	sysWrite = unix.Write
)

// Read reads from fd into p, transparently restarting the call when it is
// interrupted or the descriptor reports it would block. A return of 0 with a
// nil error means end of input; short reads come back as the kernel produced
// them. Nothing is read for an empty p.
func Read(fd int, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := sysRead(fd, p)
		if err == unix.EINTR || err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("fdio: read: %w", err)
		}
		if n < 0 {
			n = 0
		}
		return n, nil
	}
}

// Write writes p to fd, transparently restarting interrupted calls the same
// way Read does. Short writes come back as the kernel produced them.
func Write(fd int, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := sysWrite(fd, p)
		if err == unix.EINTR || err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("fdio: write: %w", err)
		}
		if n < 0 {
			n = 0
		}
		return n, nil
	}
}

// ReadFull reads len(p) bytes into p unless the input ends early. It loops
// Read, advancing through p; the return is the byte count placed in p plus
// the error that stopped the loop, if any. Early end of input is a short
// count with a nil error, so callers distinguish truncation from failure by
// comparing the count to len(p).
func ReadFull(fd int, p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := Read(fd, p[total:])
		if err != nil {
			return total, err
		}
		if n == 0 {
			break
		}
		total += n
	}
	return total, nil
}

// WriteFull writes all of p to fd, looping Write. It returns the bytes
// written before any failure. A write that accepts zero bytes against a
// non-empty remainder means the descriptor can take no more; that is
// reported as an error wrapping unix.ENOSPC.
func WriteFull(fd int, p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := Write(fd, p[total:])
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, fmt.Errorf("fdio: write made no progress: %w", unix.ENOSPC)
		}
		total += n
	}
	return total, nil
}

// Dup duplicates fd and returns the new descriptor, or -1 with an error.
func Dup(fd int) (int, error) {
	nfd, err := unix.Dup(fd)
	if err != nil {
		return -1, fmt.Errorf("fdio: dup: %w", err)
	}
	return nfd, nil
}

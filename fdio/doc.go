// Package fdio wraps raw file-descriptor reads and writes so that
// recoverable interruption is invisible to callers.
//
// Read and Write restart the underlying call on EINTR, EAGAIN, and
// EWOULDBLOCK; they are meant for blocking descriptors, since a nonblocking
// descriptor that never becomes ready would spin. ReadFull and WriteFull
// loop until the whole buffer is transferred or an unrecoverable condition
// stops them: end of input for reads (a short count, not an error) and a
// zero-progress write for writes (reported as ENOSPC).
//
// Fsync, Fdatasync, and FsyncFull pick the strongest flush the platform
// offers: fdatasync on Linux and FreeBSD, F_FULLFSYNC on macOS,
// FlushFileBuffers on Windows.
package fdio

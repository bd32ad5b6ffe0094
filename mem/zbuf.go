package mem

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/syskit/internal/buf"
)

// AllocZeroTerminated allocates size bytes plus a trailing zero byte. The
// returned slice has len size+1; bytes [0,size) are unspecified and byte
// size is zero. A size where size+1 overflows fails with ErrSizeOverflow.
func (a *Allocator) AllocZeroTerminated(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("mem: zero-terminated alloc %d: %w", size, ErrInvalidSize)
	}
	total, ok := buf.AddOverflowSafe(size, 1)
	if !ok {
		return nil, fmt.Errorf("mem: data too large to fit into memory (%d bytes): %w", size, ErrSizeOverflow)
	}
	b, err := a.retry("zero-terminated alloc", total, a.heap.Alloc)
	if err != nil {
		return nil, err
	}
	b[size] = 0
	return b, nil
}

// DupZeroTerminated copies data into a fresh buffer with a trailing zero
// byte. The result has len(data)+1 bytes.
func (a *Allocator) DupZeroTerminated(data []byte) ([]byte, error) {
	b, err := a.AllocZeroTerminated(len(data))
	if err != nil {
		return nil, err
	}
	copy(b, data)
	return b, nil
}

// DupBounded duplicates at most n bytes of data, stopping early at an
// embedded zero byte, and zero-terminates the result. The scan window is
// min(n, len(data)) bytes, so the embedded terminator wins over the bound:
//
//	DupBounded([]byte("ab\x00cd"), 5) -> {'a', 'b', 0}
func (a *Allocator) DupBounded(data []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("mem: bounded dup %d: %w", n, ErrInvalidSize)
	}
	win := data
	if n < len(win) {
		win = win[:n]
	}
	if i := bytes.IndexByte(win, 0); i >= 0 {
		win = win[:i]
	}
	return a.DupZeroTerminated(win)
}

package mem

import (
	"fmt"
	"sync"

	"modernc.org/memory"
)

// A Heap hands out byte buffers and may refuse. It is the fallible layer
// underneath Allocator; most callers want Allocator instead.
//
// The checked layer never passes a size smaller than 1; implementations may
// reject out-of-range sizes with ErrInvalidSize. Free accepts the slice
// returned by Alloc or Realloc, possibly re-sliced to a shorter length: the
// base pointer and capacity identify the block.
type Heap interface {
	// Alloc returns a buffer of len size. Contents are unspecified.
	Alloc(size int) ([]byte, error)

	// AllocZeroed returns a buffer of len size with all bytes zero.
	AllocZeroed(size int) ([]byte, error)

	// Realloc resizes b, preserving min(len(b), size) bytes. A nil or
	// zero-capacity b acts like Alloc. On failure b stays valid.
	Realloc(b []byte, size int) ([]byte, error)

	// Free releases b. Free of a nil or zero-capacity slice is a no-op.
	Free(b []byte)
}

// SystemHeap allocates from a modernc.org/memory pool. All methods are safe
// for concurrent use; the pool itself is not, so a single mutex guards it.
type SystemHeap struct {
	mu sync.Mutex
	a  memory.Allocator
}

// NewSystemHeap returns an empty heap. Close releases everything it still
// holds.
func NewSystemHeap() *SystemHeap {
	return &SystemHeap{}
}

func (h *SystemHeap) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mem: system heap alloc %d: %w", size, ErrInvalidSize)
	}
	h.mu.Lock()
	b, err := h.a.Malloc(size)
	h.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("mem: system heap alloc %d: %w", size, err)
	}
	// Trim the pool's rounded capacity so byte accounting by cap is exact;
	// the pool finds the block again through the base pointer.
	return b[:size:size], nil
}

func (h *SystemHeap) AllocZeroed(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mem: system heap alloc %d: %w", size, ErrInvalidSize)
	}
	h.mu.Lock()
	b, err := h.a.Calloc(size)
	h.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("mem: system heap alloc %d: %w", size, err)
	}
	return b[:size:size], nil
}

func (h *SystemHeap) Realloc(b []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mem: system heap realloc %d: %w", size, ErrInvalidSize)
	}
	if cap(b) == 0 {
		return h.Alloc(size)
	}
	if len(b) == 0 {
		// The pool needs a non-empty slice to find the block.
		b = b[:cap(b)]
	}
	h.mu.Lock()
	nb, err := h.a.Realloc(b, size)
	h.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("mem: system heap realloc %d: %w", size, err)
	}
	return nb[:size:size], nil
}

func (h *SystemHeap) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	if len(b) == 0 {
		b = b[:cap(b)]
	}
	h.mu.Lock()
	_ = h.a.Free(b)
	h.mu.Unlock()
}

// Close releases all memory still held by the pool. Buffers obtained from
// the heap are invalid afterwards.
func (h *SystemHeap) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.a.Close()
}

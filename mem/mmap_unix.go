//go:build unix

package mem

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/syskit/internal/buf"
)

// MmapHeap places every buffer in its own anonymous mapping. Sizes are
// rounded up to the page size, so it suits large or long-lived buffers;
// small ones waste most of a page. The zero value is ready to use.
type MmapHeap struct{}

// NewMmapHeap returns an MmapHeap. On platforms without mmap the fallback
// implementation returns ErrUnsupported instead.
func NewMmapHeap() (*MmapHeap, error) {
	return &MmapHeap{}, nil
}

func (h *MmapHeap) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mem: mmap heap alloc %d: %w", size, ErrInvalidSize)
	}
	rounded, ok := roundToPage(size)
	if !ok {
		return nil, fmt.Errorf("mem: mmap heap alloc %d: %w", size, ErrSizeOverflow)
	}
	b, err := unix.Mmap(-1, 0, rounded, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mem: mmap heap alloc %d: %w", size, err)
	}
	// Keep the full mapping reachable through cap so Free can unmap it.
	return b[:size], nil
}

// AllocZeroed is Alloc: the kernel zero-fills anonymous pages.
func (h *MmapHeap) AllocZeroed(size int) ([]byte, error) {
	return h.Alloc(size)
}

func (h *MmapHeap) Realloc(b []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mem: mmap heap realloc %d: %w", size, ErrInvalidSize)
	}
	if cap(b) == 0 {
		return h.Alloc(size)
	}
	if size <= cap(b) {
		// Still fits in the existing mapping.
		return b[:size], nil
	}
	nb, err := h.Alloc(size)
	if err != nil {
		return nil, err
	}
	copy(nb, b[:min(len(b), size)])
	h.Free(b)
	return nb, nil
}

func (h *MmapHeap) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	// Munmap wants the whole mapping, len == cap.
	_ = unix.Munmap(b[:cap(b)])
}

func roundToPage(size int) (int, bool) {
	page := os.Getpagesize()
	sum, ok := buf.AddOverflowSafe(size, page-1)
	if !ok {
		return 0, false
	}
	return sum &^ (page - 1), true
}

//go:build !unix

package mem

// MmapHeap is only available on unix platforms.
type MmapHeap struct{}

// NewMmapHeap reports ErrUnsupported on this platform.
func NewMmapHeap() (*MmapHeap, error) {
	return nil, ErrUnsupported
}

func (h *MmapHeap) Alloc(size int) ([]byte, error) { return nil, ErrUnsupported }

func (h *MmapHeap) AllocZeroed(size int) ([]byte, error) { return nil, ErrUnsupported }

func (h *MmapHeap) Realloc(b []byte, size int) ([]byte, error) { return nil, ErrUnsupported }

func (h *MmapHeap) Free(b []byte) {}

package mem

import (
	"fmt"
	"sync"
)

// QuotaHeap caps the bytes outstanding from an inner heap. Requests that
// would push usage past the budget fail with ErrQuotaExceeded before the
// inner heap is consulted; Free credits the budget back.
//
// Usage is accounted by the capacity the inner heap actually returned, so a
// page-rounding heap charges whole pages. The pre-flight check uses the
// requested size; inner rounding can therefore overshoot the budget by less
// than one block.
type QuotaHeap struct {
	mu    sync.Mutex
	inner Heap
	max   int
	used  int
}

// NewQuotaHeap wraps inner with a budget of max bytes. A nil inner selects a
// fresh SystemHeap; max <= 0 means unlimited.
func NewQuotaHeap(inner Heap, max int) *QuotaHeap {
	if inner == nil {
		inner = NewSystemHeap()
	}
	return &QuotaHeap{inner: inner, max: max}
}

func (h *QuotaHeap) Alloc(size int) ([]byte, error) {
	if err := h.reserve(size); err != nil {
		return nil, err
	}
	b, err := h.inner.Alloc(size)
	h.settle(b, err)
	return b, err
}

func (h *QuotaHeap) AllocZeroed(size int) ([]byte, error) {
	if err := h.reserve(size); err != nil {
		return nil, err
	}
	b, err := h.inner.AllocZeroed(size)
	h.settle(b, err)
	return b, err
}

func (h *QuotaHeap) Realloc(b []byte, size int) ([]byte, error) {
	if cap(b) == 0 {
		return h.Alloc(size)
	}
	old := cap(b)
	h.mu.Lock()
	if h.max > 0 && size > old && h.used-old+size > h.max {
		h.mu.Unlock()
		return nil, fmt.Errorf("mem: quota heap realloc %d: %w", size, ErrQuotaExceeded)
	}
	h.mu.Unlock()
	nb, err := h.inner.Realloc(b, size)
	if err != nil {
		return nil, err
	}
	h.mu.Lock()
	h.used += cap(nb) - old
	h.mu.Unlock()
	return nb, nil
}

func (h *QuotaHeap) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	h.mu.Lock()
	h.used -= cap(b)
	if h.used < 0 {
		h.used = 0
	}
	h.mu.Unlock()
	h.inner.Free(b)
}

// Used reports the bytes currently charged against the budget.
func (h *QuotaHeap) Used() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.used
}

// SetQuota replaces the budget. It does not evict anything; an over-budget
// heap simply refuses further requests until enough is freed.
func (h *QuotaHeap) SetQuota(max int) {
	h.mu.Lock()
	h.max = max
	h.mu.Unlock()
}

// reserve is the pre-flight budget check against the requested size.
func (h *QuotaHeap) reserve(size int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.max > 0 && size > 0 && h.used+size > h.max {
		return fmt.Errorf("mem: quota heap alloc %d: %w", size, ErrQuotaExceeded)
	}
	return nil
}

// settle records the capacity actually returned by the inner heap.
func (h *QuotaHeap) settle(b []byte, err error) {
	if err != nil {
		return
	}
	h.mu.Lock()
	h.used += cap(b)
	h.mu.Unlock()
}

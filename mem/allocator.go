package mem

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/joshuapare/syskit/internal/buf"
)

// Runtime debug flag for allocation tracing - controlled by SYSKIT_LOG_ALLOC env var.
var logAlloc = os.Getenv("SYSKIT_LOG_ALLOC") != ""

// ReclaimFunc is the hook the checked layer runs when the heap refuses a
// request. size is the allocation that failed, as a hint for how much to
// free; it is the caller's original request and may be zero.
type ReclaimFunc func(size int)

func noReclaim(int) {}

// Allocator layers the checked-allocation protocol over a Heap: every
// operation asks the heap, and on refusal runs the reclaim hook and asks
// exactly once more before reporting ErrNoMemory. The hook slot is atomic,
// so an Allocator is safe for concurrent use as long as its heap is.
//
// Create instances with NewAllocator. The package-level functions operate on
// a process-wide default instance.
type Allocator struct {
	heap    Heap
	reclaim atomic.Pointer[ReclaimFunc]
	stats   allocatorStats
}

// allocatorStats holds the allocator counters.
type allocatorStats struct {
	allocs   atomic.Int64
	frees    atomic.Int64
	reclaims atomic.Int64
	retries  atomic.Int64
	failures atomic.Int64
	bytes    atomic.Int64
}

// Stats is a point-in-time snapshot of allocator counters.
type Stats struct {
	Allocs         int64 // buffers handed out, including realloc results
	Frees          int64 // buffers returned, including realloc sources
	Reclaims       int64 // times the reclaim hook ran
	Retries        int64 // heap retries after the hook
	Failures       int64 // requests that failed after the retry
	BytesAllocated int64 // cumulative capacity handed out
}

// NewAllocator returns a checked allocator over heap. A nil heap selects the
// process-wide shared SystemHeap.
func NewAllocator(heap Heap) *Allocator {
	if heap == nil {
		heap = sharedSystemHeap()
	}
	a := &Allocator{heap: heap}
	f := ReclaimFunc(noReclaim)
	a.reclaim.Store(&f)
	return a
}

// SetReclaim installs f as the reclaim hook and returns the hook it
// replaced. A nil f installs a no-op. The returned hook is never nil, so
// re-installing it restores the prior behavior exactly.
func (a *Allocator) SetReclaim(f ReclaimFunc) ReclaimFunc {
	if f == nil {
		f = noReclaim
	}
	prev := a.reclaim.Swap(&f)
	if prev == nil {
		return noReclaim
	}
	return *prev
}

// Alloc allocates size bytes. Contents are unspecified. A zero size succeeds
// and returns an empty slice backed by a one-byte allocation.
func (a *Allocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("mem: alloc %d: %w", size, ErrInvalidSize)
	}
	b, err := a.retry("alloc", size, a.heap.Alloc)
	if err != nil {
		return nil, err
	}
	return b[:size], nil
}

// AllocZeroed allocates count elements of elemSize bytes each, zeroed. The
// product is checked for overflow before it reaches the heap.
func (a *Allocator) AllocZeroed(count, elemSize int) ([]byte, error) {
	if count < 0 || elemSize < 0 {
		return nil, fmt.Errorf("mem: zeroed alloc %d x %d: %w", count, elemSize, ErrInvalidSize)
	}
	total, ok := buf.MulOverflowSafe(count, elemSize)
	if !ok {
		return nil, fmt.Errorf("mem: zeroed alloc %d x %d: %w", count, elemSize, ErrSizeOverflow)
	}
	b, err := a.retry("zeroed alloc", total, a.heap.AllocZeroed)
	if err != nil {
		return nil, err
	}
	return b[:total], nil
}

// Realloc resizes b, preserving min(len(b), size) bytes. A nil b behaves
// like Alloc. On failure b stays valid and untouched; on success callers
// must adopt the returned slice and drop b.
func (a *Allocator) Realloc(b []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("mem: realloc %d: %w", size, ErrInvalidSize)
	}
	if cap(b) == 0 {
		return a.Alloc(size)
	}
	nb, err := a.retry("realloc", size, func(n int) ([]byte, error) {
		return a.heap.Realloc(b, n)
	})
	if err != nil {
		return nil, err
	}
	a.stats.frees.Add(1)
	return nb[:size], nil
}

// DupString copies s into a fresh zero-terminated buffer. The returned slice
// includes the terminator: len is len(s)+1.
func (a *Allocator) DupString(s string) ([]byte, error) {
	size, ok := buf.AddOverflowSafe(len(s), 1)
	if !ok {
		return nil, fmt.Errorf("mem: string dup: %w", ErrSizeOverflow)
	}
	b, err := a.retry("string dup", size, a.heap.Alloc)
	if err != nil {
		return nil, err
	}
	copy(b, s)
	b[len(s)] = 0
	return b, nil
}

// Free returns b to the heap. Free of a nil or zero-capacity slice is a
// no-op. b must have come from this allocator, possibly re-sliced shorter.
func (a *Allocator) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	a.stats.frees.Add(1)
	a.heap.Free(b)
}

// Stats returns a snapshot of the allocator counters.
func (a *Allocator) Stats() Stats {
	return Stats{
		Allocs:         a.stats.allocs.Load(),
		Frees:          a.stats.frees.Load(),
		Reclaims:       a.stats.reclaims.Load(),
		Retries:        a.stats.retries.Load(),
		Failures:       a.stats.failures.Load(),
		BytesAllocated: a.stats.bytes.Load(),
	}
}

// retry is the shared protocol. op names the operation for diagnostics;
// size is the caller's request before the zero-size bump; alloc performs
// one heap attempt.
func (a *Allocator) retry(op string, size int, alloc func(int) ([]byte, error)) ([]byte, error) {
	need := size
	if need == 0 {
		need = 1
	}
	b, err := alloc(need)
	if err != nil {
		a.stats.reclaims.Add(1)
		if logAlloc {
			debugLogf("%s(%d): heap refused, running reclaim hook: %v", op, size, err)
		}
		a.reclaimHook()(size)
		a.stats.retries.Add(1)
		b, err = alloc(need)
		if err != nil {
			a.stats.failures.Add(1)
			if logAlloc {
				debugLogf("%s(%d): FAILED after reclaim retry: %v", op, size, err)
			}
			return nil, fmt.Errorf("%w, %s failed (tried to allocate %d bytes): %w", ErrNoMemory, op, need, err)
		}
	}
	a.stats.allocs.Add(1)
	a.stats.bytes.Add(int64(cap(b)))
	return b, nil
}

func (a *Allocator) reclaimHook() ReclaimFunc {
	if p := a.reclaim.Load(); p != nil {
		return *p
	}
	return noReclaim
}

// debugLogf prints allocation trace messages to stderr.
func debugLogf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[MEM] "+format+"\n", args...)
}

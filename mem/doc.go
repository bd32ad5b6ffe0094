// Package mem provides checked byte-buffer allocation with a reclaim-and-retry
// protocol over pluggable fallible heaps.
//
// # Overview
//
// Go's built-in allocation cannot fail, but buffers taken from an off-GC heap
// (a manual allocator pool, anonymous mappings, a quota arena) can. This
// package layers the classic checked-allocation contract over such heaps: ask
// the heap, and when it refuses, run a caller-installed reclaim hook and ask
// exactly once more. The lowest layer reports failure as an error; the Must
// wrappers at the package boundary convert persistent failure into a panic.
//
// # Heaps
//
// A Heap is the fallible backing store. Three implementations ship:
//
//   - SystemHeap: a mutex-guarded modernc.org/memory pool. The default.
//   - MmapHeap: one anonymous mapping per buffer, page-rounded. Unix only.
//   - QuotaHeap: wraps another heap with a byte budget, for deterministic
//     failure injection and memory capping.
//
// Heap buffers live outside the garbage collector's accounting, so every
// Alloc must eventually be paired with a Free.
//
// # The checked layer
//
// Allocator carries the heap, the reclaim hook, and counters. Operations
// mirror the malloc family: Alloc, Realloc, AllocZeroed (calloc with an
// overflow-checked product), DupString (strdup), plus the zero-terminated
// helpers AllocZeroTerminated, DupZeroTerminated, and DupBounded.
//
// Zero-size requests are defined to succeed: they are backed by a one-byte
// allocation and return an empty slice with capacity at least 1.
//
// # Reclaim hook
//
// SetReclaim installs a hook invoked with the size of a request the heap just
// refused, as a hint for how much to free; the previous hook is returned and
// can be re-installed to restore it. ReclaimCache is a ready-made hook: a
// FIFO cache of freed buffers by size class that releases its contents back
// to the heap under pressure.
//
// # Usage Example
//
//	heap := mem.NewQuotaHeap(nil, 1<<20)
//	a := mem.NewAllocator(heap)
//
//	cache := mem.NewReclaimCache(a)
//	cache.Install()
//
//	b, err := a.Alloc(4096)
//	if err != nil {
//	    return err
//	}
//	defer a.Free(b)
//
// Package-level Alloc, Free, and friends operate on a process-wide default
// allocator over a shared SystemHeap; MustAlloc and the other Must wrappers
// panic instead of returning an error.
//
// # Debug Tracing
//
// Set SYSKIT_LOG_ALLOC to any non-empty value to trace reclaim retries and
// allocation failures on stderr. The success path never logs.
package mem

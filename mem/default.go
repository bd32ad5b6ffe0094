package mem

import "sync"

var (
	systemOnce sync.Once
	systemHeap *SystemHeap

	defaultOnce      sync.Once
	defaultAllocator *Allocator
)

// sharedSystemHeap is the heap behind NewAllocator(nil) and Default.
func sharedSystemHeap() *SystemHeap {
	systemOnce.Do(func() { systemHeap = NewSystemHeap() })
	return systemHeap
}

// Default returns the process-wide allocator over the shared system heap.
func Default() *Allocator {
	defaultOnce.Do(func() { defaultAllocator = NewAllocator(nil) })
	return defaultAllocator
}

// Alloc allocates size bytes from the default allocator.
func Alloc(size int) ([]byte, error) { return Default().Alloc(size) }

// AllocZeroed allocates a zeroed count x elemSize buffer from the default
// allocator.
func AllocZeroed(count, elemSize int) ([]byte, error) {
	return Default().AllocZeroed(count, elemSize)
}

// Realloc resizes b through the default allocator.
func Realloc(b []byte, size int) ([]byte, error) { return Default().Realloc(b, size) }

// DupString duplicates s through the default allocator.
func DupString(s string) ([]byte, error) { return Default().DupString(s) }

// AllocZeroTerminated allocates a zero-terminated buffer from the default
// allocator.
func AllocZeroTerminated(size int) ([]byte, error) {
	return Default().AllocZeroTerminated(size)
}

// DupZeroTerminated duplicates data with a trailing zero byte through the
// default allocator.
func DupZeroTerminated(data []byte) ([]byte, error) {
	return Default().DupZeroTerminated(data)
}

// DupBounded duplicates at most n bytes of data through the default
// allocator, honoring an embedded zero byte.
func DupBounded(data []byte, n int) ([]byte, error) { return Default().DupBounded(data, n) }

// Free returns b to the default allocator.
func Free(b []byte) { Default().Free(b) }

// SetReclaim installs the reclaim hook on the default allocator and returns
// the previous hook.
func SetReclaim(f ReclaimFunc) ReclaimFunc { return Default().SetReclaim(f) }

// The Must variants are the application-boundary wrappers: they panic when
// the checked layer reports an error, preserving the "never silently returns
// an unusable buffer" contract for callers that cannot recover anyway.

// MustAlloc is Alloc, panicking on failure.
func MustAlloc(size int) []byte {
	b, err := Alloc(size)
	if err != nil {
		panic(err)
	}
	return b
}

// MustAllocZeroed is AllocZeroed, panicking on failure.
func MustAllocZeroed(count, elemSize int) []byte {
	b, err := AllocZeroed(count, elemSize)
	if err != nil {
		panic(err)
	}
	return b
}

// MustRealloc is Realloc, panicking on failure.
func MustRealloc(b []byte, size int) []byte {
	nb, err := Realloc(b, size)
	if err != nil {
		panic(err)
	}
	return nb
}

// MustDupString is DupString, panicking on failure.
func MustDupString(s string) []byte {
	b, err := DupString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// MustAllocZeroTerminated is AllocZeroTerminated, panicking on failure.
func MustAllocZeroTerminated(size int) []byte {
	b, err := AllocZeroTerminated(size)
	if err != nil {
		panic(err)
	}
	return b
}

// MustDupZeroTerminated is DupZeroTerminated, panicking on failure.
func MustDupZeroTerminated(data []byte) []byte {
	b, err := DupZeroTerminated(data)
	if err != nil {
		panic(err)
	}
	return b
}

// MustDupBounded is DupBounded, panicking on failure.
func MustDupBounded(data []byte, n int) []byte {
	b, err := DupBounded(data, n)
	if err != nil {
		panic(err)
	}
	return b
}

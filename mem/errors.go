package mem

import "errors"

var (
	// ErrNoMemory indicates the heap refused a request even after the reclaim
	// hook ran and the request was retried.
	ErrNoMemory = errors.New("mem: out of memory")

	// ErrSizeOverflow indicates a size computation (a calloc product, or
	// size+1 for a terminated buffer) does not fit in int.
	ErrSizeOverflow = errors.New("mem: allocation size overflows")

	// ErrInvalidSize indicates a negative size or count.
	ErrInvalidSize = errors.New("mem: invalid allocation size")

	// ErrQuotaExceeded indicates a QuotaHeap rejected a request that would
	// exceed its budget.
	ErrQuotaExceeded = errors.New("mem: allocation quota exceeded")

	// ErrUnsupported indicates the requested heap is not available on this
	// platform.
	ErrUnsupported = errors.New("mem: not supported on this platform")
)

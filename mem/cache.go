package mem

import (
	"sync"

	"github.com/eapache/queue"
)

const (
	// cacheMinBits is the smallest cached class, 32 bytes.
	cacheMinBits = 5

	// cacheClasses is the number of power-of-two classes, 32 B through 1 MiB.
	cacheClasses = 16
)

// ReclaimCache parks freed buffers in per-size-class FIFO queues for cheap
// reuse, and doubles as a reclaim hook: under memory pressure it releases
// cached buffers back to the heap, largest classes first, until the failed
// request is covered or the cache is empty.
//
// Get and Put replace Alloc and Free for callers that churn through
// similarly sized buffers. Buffers outside the cached range pass straight
// through to the allocator.
type ReclaimCache struct {
	a *Allocator

	mu      sync.Mutex
	classes [cacheClasses]*queue.Queue
	cached  int // bytes parked across all classes
	prev    ReclaimFunc
}

// NewReclaimCache returns an empty cache over a. A nil a selects the default
// allocator.
func NewReclaimCache(a *Allocator) *ReclaimCache {
	if a == nil {
		a = Default()
	}
	c := &ReclaimCache{a: a}
	for i := range c.classes {
		c.classes[i] = queue.New()
	}
	return c
}

// Get returns a buffer of len size with at least size bytes of capacity,
// reusing a cached buffer when one is parked in the request's class or any
// larger one. On a miss the full class size is allocated so the buffer
// caches well when it comes back. Contents are unspecified.
func (c *ReclaimCache) Get(size int) ([]byte, error) {
	cls := classFor(size)
	if cls < 0 {
		return c.a.Alloc(size)
	}
	c.mu.Lock()
	for i := cls; i < cacheClasses; i++ {
		if q := c.classes[i]; q.Length() > 0 {
			b := q.Remove().([]byte)
			c.cached -= cap(b)
			c.mu.Unlock()
			return b[:size], nil
		}
	}
	c.mu.Unlock()
	b, err := c.a.Alloc(classSize(cls))
	if err != nil {
		return nil, err
	}
	return b[:size], nil
}

// Put parks b for reuse. Buffers below the smallest class go straight back
// to the heap; a nil or zero-capacity b is a no-op.
func (c *ReclaimCache) Put(b []byte) {
	if cap(b) == 0 {
		return
	}
	cls := classForCap(cap(b))
	if cls < 0 {
		c.a.Free(b)
		return
	}
	c.mu.Lock()
	c.classes[cls].Add(b)
	c.cached += cap(b)
	c.mu.Unlock()
}

// Reclaim releases cached buffers back to the heap, largest classes first,
// until at least size bytes are released or the cache is empty. A size <= 0
// releases everything.
func (c *ReclaimCache) Reclaim(size int) {
	c.release(size)
}

// Install registers the cache as the allocator's reclaim hook. When the
// cache cannot cover a request on its own, the previously installed hook
// runs as well.
func (c *ReclaimCache) Install() {
	prev := c.a.SetReclaim(c.hook)
	c.mu.Lock()
	c.prev = prev
	c.mu.Unlock()
}

// Drain empties the cache back to the heap.
func (c *ReclaimCache) Drain() {
	c.release(0)
}

// Len reports how many buffers are parked.
func (c *ReclaimCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, q := range c.classes {
		n += q.Length()
	}
	return n
}

// Bytes reports how many bytes are parked.
func (c *ReclaimCache) Bytes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cached
}

func (c *ReclaimCache) hook(size int) {
	released := c.release(size)
	if released >= size && size > 0 {
		return
	}
	c.mu.Lock()
	prev := c.prev
	c.mu.Unlock()
	if prev != nil {
		prev(size)
	}
}

func (c *ReclaimCache) release(size int) int {
	c.mu.Lock()
	released := 0
	for i := len(c.classes) - 1; i >= 0; i-- {
		q := c.classes[i]
		for q.Length() > 0 {
			if size > 0 && released >= size {
				break
			}
			b := q.Remove().([]byte)
			c.cached -= cap(b)
			released += cap(b)
			c.a.Free(b)
		}
		if size > 0 && released >= size {
			break
		}
	}
	c.mu.Unlock()
	return released
}

// classFor returns the class whose size covers a request of size bytes, or
// -1 when the size is outside the cached range.
func classFor(size int) int {
	if size <= 0 {
		return -1
	}
	c := 0
	s := 1 << cacheMinBits
	for s < size {
		s <<= 1
		c++
	}
	if c >= cacheClasses {
		return -1
	}
	return c
}

// classForCap returns the class a buffer of the given capacity belongs in:
// the largest class not exceeding the capacity, clamped to the top class.
// Capacities below the smallest class are not cached.
func classForCap(capacity int) int {
	if capacity < 1<<cacheMinBits {
		return -1
	}
	c := 0
	for s := 1 << (cacheMinBits + 1); s <= capacity && c < cacheClasses-1; s <<= 1 {
		c++
	}
	return c
}

// classSize is the buffer capacity allocated for a class.
func classSize(c int) int {
	return 1 << (cacheMinBits + c)
}

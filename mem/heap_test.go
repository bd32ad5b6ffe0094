package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemHeap_AllocFree(t *testing.T) {
	h := NewSystemHeap()
	defer h.Close()

	b, err := h.Alloc(128)
	require.NoError(t, err)
	require.Equal(t, 128, len(b))

	b[0] = 1
	b[127] = 2
	h.Free(b)
}

func TestSystemHeap_RejectsBadSizes(t *testing.T) {
	h := NewSystemHeap()
	defer h.Close()

	_, err := h.Alloc(0)
	require.ErrorIs(t, err, ErrInvalidSize)
	_, err = h.Alloc(-5)
	require.ErrorIs(t, err, ErrInvalidSize)
	_, err = h.Realloc(nil, -5)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestSystemHeap_ReallocMoves(t *testing.T) {
	h := NewSystemHeap()
	defer h.Close()

	b, err := h.Alloc(4)
	require.NoError(t, err)
	copy(b, "abcd")

	nb, err := h.Realloc(b, 1024)
	require.NoError(t, err)
	require.Equal(t, 1024, len(nb))
	require.Equal(t, "abcd", string(nb[:4]))
	h.Free(nb)
}

func TestSystemHeap_CapacityExact(t *testing.T) {
	h := NewSystemHeap()
	defer h.Close()

	// The pool rounds block sizes internally; the heap must not leak that
	// rounding through cap, or byte accounting drifts.
	b, err := h.Alloc(60)
	require.NoError(t, err)
	require.Equal(t, 60, cap(b))

	z, err := h.AllocZeroed(33)
	require.NoError(t, err)
	require.Equal(t, 33, cap(z))
	h.Free(z)

	// Shrinking in place must shed the old capacity too.
	sb, err := h.Realloc(b, 8)
	require.NoError(t, err)
	require.Equal(t, 8, cap(sb))

	gb, err := h.Realloc(sb, 100)
	require.NoError(t, err)
	require.Equal(t, 100, cap(gb))
	h.Free(gb)
}

func TestSystemHeap_FreeOfShortenedSlice(t *testing.T) {
	h := NewSystemHeap()
	defer h.Close()

	b, err := h.Alloc(32)
	require.NoError(t, err)

	// The checked layer hands out zero-size buffers as b[:0]; Free must
	// still find the block through the capacity.
	h.Free(b[:0])
}

func TestQuotaHeap_Budget(t *testing.T) {
	h := NewQuotaHeap(NewSystemHeap(), 100)

	a, err := h.Alloc(60)
	require.NoError(t, err)
	assert.Equal(t, 60, h.Used())

	_, err = h.Alloc(50)
	require.ErrorIs(t, err, ErrQuotaExceeded)

	b, err := h.Alloc(40)
	require.NoError(t, err)
	assert.Equal(t, 100, h.Used())

	h.Free(a)
	assert.Equal(t, 40, h.Used())

	c, err := h.Alloc(60)
	require.NoError(t, err)

	h.Free(b)
	h.Free(c)
	assert.Equal(t, 0, h.Used())
}

func TestQuotaHeap_Realloc(t *testing.T) {
	h := NewQuotaHeap(NewSystemHeap(), 64)

	b, err := h.Alloc(16)
	require.NoError(t, err)

	nb, err := h.Realloc(b, 48)
	require.NoError(t, err)
	assert.Equal(t, 48, h.Used())

	_, err = h.Realloc(nb, 80)
	require.ErrorIs(t, err, ErrQuotaExceeded)

	// Shrinking credits the difference back.
	sb, err := h.Realloc(nb, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, h.Used())

	h.Free(sb)
}

func TestQuotaHeap_SetQuota(t *testing.T) {
	h := NewQuotaHeap(NewSystemHeap(), 16)

	_, err := h.Alloc(32)
	require.ErrorIs(t, err, ErrQuotaExceeded)

	h.SetQuota(64)
	b, err := h.Alloc(32)
	require.NoError(t, err)
	h.Free(b)
}

func TestQuotaHeap_UnlimitedWhenZero(t *testing.T) {
	h := NewQuotaHeap(NewSystemHeap(), 0)

	b, err := h.Alloc(1 << 16)
	require.NoError(t, err)
	h.Free(b)
}

package mem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocZeroTerminated(t *testing.T) {
	a := NewAllocator(NewSystemHeap())

	b, err := a.AllocZeroTerminated(5)
	require.NoError(t, err)
	require.Equal(t, 6, len(b))
	require.Equal(t, byte(0), b[5])
	a.Free(b)

	// Zero logical size still yields the terminator byte.
	z, err := a.AllocZeroTerminated(0)
	require.NoError(t, err)
	require.Equal(t, []byte{0}, z)
	a.Free(z)
}

func TestAllocZeroTerminated_TooLarge(t *testing.T) {
	a := NewAllocator(NewSystemHeap())

	// size+1 overflows: the distinct "too large" condition, not a wrapped
	// size reaching the heap.
	_, err := a.AllocZeroTerminated(math.MaxInt)
	require.ErrorIs(t, err, ErrSizeOverflow)
	require.NotErrorIs(t, err, ErrNoMemory)

	_, err = a.AllocZeroTerminated(-1)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestDupZeroTerminated(t *testing.T) {
	a := NewAllocator(NewSystemHeap())

	data := []byte{1, 2, 3, 4}
	b, err := a.DupZeroTerminated(data)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4, 0}, b)

	// The copy is independent of the source.
	data[0] = 9
	require.Equal(t, byte(1), b[0])
	a.Free(b)

	e, err := a.DupZeroTerminated(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0}, e)
	a.Free(e)
}

func TestDupBounded(t *testing.T) {
	a := NewAllocator(NewSystemHeap())

	cases := []struct {
		name string
		data []byte
		n    int
		want []byte
	}{
		{"embedded terminator wins", []byte("ab\x00cd"), 5, []byte{'a', 'b', 0}},
		{"bound before terminator", []byte("ab\x00cd"), 1, []byte{'a', 0}},
		{"no terminator in window", []byte("abcdef"), 3, []byte{'a', 'b', 'c', 0}},
		{"bound beyond data", []byte("ab"), 10, []byte{'a', 'b', 0}},
		{"empty data", nil, 4, []byte{0}},
		{"zero bound", []byte("abc"), 0, []byte{0}},
		{"leading terminator", []byte("\x00abc"), 4, []byte{0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := a.DupBounded(tc.data, tc.n)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			a.Free(got)
		})
	}

	_, err := a.DupBounded([]byte("x"), -1)
	require.ErrorIs(t, err, ErrInvalidSize)
}

package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		elems []string
		want  string
	}{
		{"separator inserted", []string{"a", "b"}, "a/b"},
		{"duplicate separator collapsed", []string{"a/", "/b"}, "a/b"},
		{"empty first segment skipped", []string{"", "b"}, "b"},
		{"empty last segment keeps trailing separator", []string{"a", ""}, "a/"},
		{"trailing separator not doubled", []string{"a/", "b"}, "a/b"},
		{"three segments", []string{"a", "b", "c"}, "a/b/c"},
		{"mixed empties", []string{"", "a", "", "b"}, "a/b"},
		{"internal doubles preserved", []string{"a//b", "c"}, "a//b/c"},
		{"segment of only a separator", []string{"a", "/", "b"}, "a/b"},
		{"leading root", []string{"/", "etc"}, "/etc"},
		{"no segments", nil, ""},
		{"all empty", []string{"", ""}, ""},
		{"single", []string{"x"}, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.elems...))
		})
	}
}

func TestJoinPair(t *testing.T) {
	assert.Equal(t, "dir/file", JoinPair("dir", "file"))
	assert.Equal(t, "dir/file", JoinPair("dir/", "/file"))
}

func TestJoinInto(t *testing.T) {
	dst := make([]byte, 64)

	n, err := JoinInto(dst, "a/", "/b")
	require.NoError(t, err)
	require.Equal(t, 3, n)
	assert.Equal(t, "a/b", string(dst[:n]))
	assert.Equal(t, byte(0), dst[n])
}

func TestJoinInto_ExactFit(t *testing.T) {
	// "a/b" needs 3 bytes plus the terminator.
	dst := make([]byte, 4)
	n, err := JoinInto(dst, "a", "b")
	require.NoError(t, err)
	require.Equal(t, 3, n)
	assert.Equal(t, []byte{'a', '/', 'b', 0}, dst)
}

func TestJoinInto_TooSmall(t *testing.T) {
	dst := make([]byte, 3) // one byte short of "a/b\x00"
	_, err := JoinInto(dst, "a", "b")
	require.ErrorIs(t, err, ErrPathTooLong)

	_, err = JoinInto(nil, "a")
	require.ErrorIs(t, err, ErrPathTooLong)

	// Even the empty join needs room for the terminator.
	_, err = JoinInto(nil)
	require.ErrorIs(t, err, ErrPathTooLong)
}

func TestJoinInto_EmptyJoin(t *testing.T) {
	dst := make([]byte, 1)
	n, err := JoinInto(dst, "", "")
	require.NoError(t, err)
	require.Equal(t, 0, n)
	assert.Equal(t, byte(0), dst[0])
}

func TestJoinInto_MatchesJoin(t *testing.T) {
	cases := [][]string{
		{"a", "b"},
		{"a/", "/b"},
		{"", "b"},
		{"a", ""},
		{"usr", "local", "bin"},
		{"a//b", "/c/"},
	}
	dst := make([]byte, 128)
	for _, elems := range cases {
		n, err := JoinInto(dst, elems...)
		require.NoError(t, err)
		assert.Equal(t, Join(elems...), string(dst[:n]))
	}
}

func TestJoinPairInto(t *testing.T) {
	dst := make([]byte, 16)
	n, err := JoinPairInto(dst, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a/b", string(dst[:n]))
}

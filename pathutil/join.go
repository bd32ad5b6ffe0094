package pathutil

import (
	"github.com/joshuapare/syskit/internal/buf"
)

// Separator is the path separator produced at join seams, on every platform.
const Separator = '/'

// Join concatenates elems into a single path. Empty elements are skipped
// entirely and contribute no separator. A separator is appended after each
// non-final element unless the output already ends with one, and an
// element's single leading separator is dropped when it does, so doubled
// separators never appear at a seam. Separators inside an element are
// preserved as given.
//
//	Join("a", "b")    -> "a/b"
//	Join("a/", "/b")  -> "a/b"
//	Join("", "b")     -> "b"
//	Join("a", "")     -> "a/"
func Join(elems ...string) string {
	n := 0
	for _, e := range elems {
		n += len(e) + 1
	}
	out := make([]byte, 0, n)
	for i, e := range elems {
		if e == "" {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == Separator && e[0] == Separator {
			e = e[1:]
		}
		out = append(out, e...)
		if i < len(elems)-1 && (len(out) == 0 || out[len(out)-1] != Separator) {
			out = append(out, Separator)
		}
	}
	return string(out)
}

// JoinInto joins elems with the Join algorithm into dst, appending a
// trailing zero byte. It returns the logical length of the path, terminator
// excluded. When the result plus its terminator does not fit in dst it
// returns (0, ErrPathTooLong) with the contents of dst unspecified; it never
// writes past len(dst).
func JoinInto(dst []byte, elems ...string) (int, error) {
	n := 0
	for i, e := range elems {
		if e == "" {
			continue
		}
		if n > 0 && dst[n-1] == Separator && e[0] == Separator {
			e = e[1:]
		}
		end, ok := buf.AddOverflowSafe(n, len(e))
		if !ok || !buf.CheckCap(end, len(dst)) {
			return 0, ErrPathTooLong
		}
		n += copy(dst[n:], e)
		if i < len(elems)-1 && (n == 0 || dst[n-1] != Separator) {
			if !buf.CheckCap(n+1, len(dst)) {
				return 0, ErrPathTooLong
			}
			dst[n] = Separator
			n++
		}
	}
	if !buf.CheckCap(n, len(dst)) {
		return 0, ErrPathTooLong
	}
	dst[n] = 0
	return n, nil
}

// JoinPair joins exactly two path elements.
func JoinPair(a, b string) string {
	return Join(a, b)
}

// JoinPairInto joins exactly two path elements into dst, JoinInto-style.
func JoinPairInto(dst []byte, a, b string) (int, error) {
	return JoinInto(dst, a, b)
}

// Package cstr reads zero-terminated byte buffers: the consuming side of
// the buffers the mem package produces. Length, String, and Terminated scan
// for the first zero byte; the Decode functions convert legacy C-string
// encodings to UTF-8.
package cstr

import "bytes"

// Length returns the logical length of b: the index of the first zero byte,
// or len(b) when it has none. The strnlen of the package.
func Length(b []byte) int {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return i
	}
	return len(b)
}

// String returns the bytes of b before its first zero byte as a Go string.
func String(b []byte) string {
	return string(b[:Length(b)])
}

// Terminated reports whether b contains a zero byte.
func Terminated(b []byte) bool {
	return bytes.IndexByte(b, 0) >= 0
}

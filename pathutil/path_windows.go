//go:build windows

package pathutil

import "strings"

// IsAbs reports whether path is absolute: a leading slash of either kind, or
// a drive letter followed by a colon and a slash of either kind.
func IsAbs(path string) bool {
	if len(path) > 0 && isSlash(path[0]) {
		return true
	}
	if len(path) >= 3 && isDriveLetter(path[0]) && path[1] == ':' && isSlash(path[2]) {
		return true
	}
	return false
}

// normalizeSlashes rewrites backslashes to forward slashes.
func normalizeSlashes(name string) string {
	return strings.ReplaceAll(name, `\`, "/")
}

func isSlash(c byte) bool {
	return c == '/' || c == '\\'
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

//go:build !windows

package pathutil

// IsAbs reports whether path is absolute: a leading forward slash.
func IsAbs(path string) bool {
	return len(path) > 0 && path[0] == Separator
}

// normalizeSlashes is the identity on unix platforms.
func normalizeSlashes(name string) string {
	return name
}

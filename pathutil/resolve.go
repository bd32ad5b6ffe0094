package pathutil

// ResolveWithPrefix qualifies name against prefix. An empty prefix or an
// absolute name returns name as-is; anything else returns the direct
// concatenation prefix + name, with no separator inserted — callers keep a
// trailing separator on the prefix themselves when they want one.
//
// On Windows, backslashes in the name portion are normalized to forward
// slashes; the prefix is passed through untouched. The result is always a
// fresh string.
func ResolveWithPrefix(prefix, name string) string {
	if prefix == "" || IsAbs(name) {
		return normalizeSlashes(name)
	}
	return prefix + normalizeSlashes(name)
}

// Package pathutil composes paths the way version-control tools do: the
// forward slash is the separator on every platform, and joining collapses
// doubled separators at the seams only, leaving the segments' own internals
// untouched.
//
// Join returns a fresh string; JoinInto writes into a caller-supplied buffer
// with an explicit capacity check and a trailing zero byte, for callers that
// hand the result to zero-terminated consumers. ResolveWithPrefix prepends a
// prefix to relative names and leaves absolute ones alone.
//
// Absolute-path detection and backslash handling are the only pieces that
// differ per platform: on Windows a drive letter or a leading backslash also
// counts as absolute, and backslashes in resolved names are normalized to
// forward slashes.
package pathutil

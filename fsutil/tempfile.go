// Package fsutil provides temp-file creation with explicit modes and
// removal helpers that warn through a swappable slog logger.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrPattern indicates a temp-file pattern without the XXXXXX placeholder.
var ErrPattern = errors.New("fsutil: pattern has no XXXXXX placeholder")

const (
	tempPlaceholder = "XXXXXX"
	tempLetters     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// tempStride advances the candidate-name counter between collisions. A
	// large odd stride walks the whole name space without repeating.
	tempStride = 7777

	tempAttempts = 16384
)

// TempFile creates a unique file with mode 0600. See TempFileMode.
func TempFile(dir, pattern string) (*os.File, error) {
	return TempFileMode(dir, pattern, 0o600)
}

// TempFileMode creates a unique file in dir, opened O_RDWR with the given
// mode. pattern must contain XXXXXX, which is replaced with letters until an
// unused name is found; anything after the placeholder is kept as a suffix,
// so "lock-XXXXXX.tmp" works. An empty dir falls back to the system temp
// directory. After tempAttempts colliding names the search gives up with an
// error wrapping fs.ErrExist.
func TempFileMode(dir, pattern string, mode os.FileMode) (*os.File, error) {
	// The last occurrence is the placeholder; earlier ones are literal.
	i := strings.LastIndex(pattern, tempPlaceholder)
	if i < 0 {
		return nil, fmt.Errorf("fsutil: temp pattern %q: %w", pattern, ErrPattern)
	}
	prefix, suffix := pattern[:i], pattern[i+len(tempPlaceholder):]
	if dir == "" {
		dir = os.TempDir()
	}

	v := uint64(time.Now().UnixMicro()) ^ uint64(os.Getpid())
	for try := 0; try < tempAttempts; try++ {
		var name [len(tempPlaceholder)]byte
		x := v
		for j := range name {
			name[j] = tempLetters[x%uint64(len(tempLetters))]
			x /= uint64(len(tempLetters))
		}
		path := filepath.Join(dir, prefix+string(name[:])+suffix)
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, mode)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("fsutil: create temp file: %w", err)
		}
		v += tempStride
	}
	return nil, fmt.Errorf("fsutil: create temp file in %s: %w", dir, fs.ErrExist)
}

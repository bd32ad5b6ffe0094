package pathutil

import "errors"

// ErrPathTooLong indicates the joined path plus its terminator does not fit
// in the destination buffer.
var ErrPathTooLong = errors.New("pathutil: path too long for buffer")

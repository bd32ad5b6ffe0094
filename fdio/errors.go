package fdio

import "errors"

// ErrUnsupported indicates the operation is not available on this platform.
var ErrUnsupported = errors.New("fdio: not supported on this platform")

package codec

import "errors"

// ErrTruncated is returned when the input ends before a field or section
// the format declares is fully read.
var ErrTruncated = errors.New("codec: truncated input")

package record

import "errors"

// ErrTooMany is returned by a new<Kind>Segment factory when the kind's
// segment list already holds 999 entries (the NUM<kind> field's width
// ceiling, I1).
var ErrTooMany = errors.New("record: segment kind already holds the maximum of 999 segments")

// ErrIndexOutOfRange is returned by remove/move operations given an index
// outside [0, len).
var ErrIndexOutOfRange = errors.New("record: segment index out of range")

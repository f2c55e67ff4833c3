package complexity

import "errors"

// ErrCheckFailed is returned by Measure when a sub-check cannot read a field
// it needs (a blank or unparseable numeric field) — kCheckFailed in §4.7,
// §7. Measure aborts at the first such failure rather than continuing with
// a partial maximum.
var ErrCheckFailed = errors.New("complexity: check failed: could not read a required field")

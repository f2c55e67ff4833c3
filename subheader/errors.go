package subheader

import "errors"

// ErrUnsupportedByVersion is returned when a caller tries to construct a
// segment kind the given Version does not support (LabelSubheader under
// V21).
var ErrUnsupportedByVersion = errors.New("subheader: segment kind unsupported by this version")

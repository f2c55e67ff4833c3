package field

import "errors"

var (
	// ErrFieldLengthExceeded indicates a value could not fit (or a raw byte
	// slice did not exactly match) a field's declared width.
	ErrFieldLengthExceeded = errors.New("field: length exceeded")
	// ErrInvalidContent indicates a field's bytes are not a valid
	// representation of its declared logical type.
	ErrInvalidContent = errors.New("field: invalid content")
)

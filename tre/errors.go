package tre

import "errors"

var (
	// ErrUnknownField indicates a path does not name a field the handler
	// recognizes.
	ErrUnknownField = errors.New("tre: unknown field")
	// ErrFieldLengthExceeded indicates a set_field call supplied more bytes
	// than the named field (or the default handler's single anonymous field)
	// can hold.
	ErrFieldLengthExceeded = errors.New("tre: field length exceeded")
	// ErrHandlerRejected indicates a handler-specific parse/set failure not
	// covered by the two sentinels above.
	ErrHandlerRejected = errors.New("tre: handler rejected operation")
	// ErrTagTooLong indicates a tag longer than the 6-byte CETAG width.
	ErrTagTooLong = errors.New("tre: tag exceeds 6 characters")
)

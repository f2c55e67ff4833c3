// Package nitferr defines the core-wide typed error used across the NITF
// record model, so callers can branch on error kind instead of matching
// message text.
package nitferr

import "fmt"

// Kind classifies an error so callers can branch on intent rather than text.
type Kind int

const (
	// KindMemory indicates an allocation failure.
	KindMemory Kind = iota
	// KindParse indicates a fixed-width field did not contain a value valid
	// for its declared logical type.
	KindParse
	// KindInvalidObject indicates an invariant violated by the caller: a nil
	// receiver, an out-of-range segment index, or too many segments of a kind.
	KindInvalidObject
	// KindNoHandler indicates a plugin lookup returned nothing where one was
	// required (compression/decompression).
	KindNoHandler
	// KindHandlerRejected indicates a TRE handler refused a set/parse call.
	KindHandlerRejected
	// KindInvalidOverflow indicates a DES marked TRE_OVERFLOW has an
	// unrecognized DESOFLW or an out-of-range DESITEM.
	KindInvalidOverflow
	// KindOpeningFile indicates the plugin loader could not open a file.
	KindOpeningFile
	// KindLoadingDLL indicates the plugin loader could not load a shared
	// object or resolve its exported symbols.
	KindLoadingDLL
)

// String renders the kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindMemory:
		return "memory"
	case KindParse:
		return "parse"
	case KindInvalidObject:
		return "invalid_object"
	case KindNoHandler:
		return "no_handler"
	case KindHandlerRejected:
		return "handler_rejected"
	case KindInvalidOverflow:
		return "invalid_overflow"
	case KindOpeningFile:
		return "opening_file"
	case KindLoadingDLL:
		return "loading_dll"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Error is the structured error value returned across API boundaries: no
// exceptions, no global errno, just a kind, a short message, and an optional
// wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error without a wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap builds an *Error wrapping an underlying cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Is reports whether err is an *Error of the given kind, unwrapping along the
// way like errors.Is would for a sentinel.
func Is(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Kind == kind {
				return true
			}
			err = e.Err
			continue
		}
		type unwrapper interface{ Unwrap() error }
		u, ok := err.(unwrapper)
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

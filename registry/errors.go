package registry

import "errors"

var (
	// ErrUnsupportedPlatform indicates dynamic plugin loading is not
	// available on this GOOS (Go's plugin package only supports linux).
	ErrUnsupportedPlatform = errors.New("registry: dynamic plugin loading unsupported on this platform")
	// ErrMissingSymbol indicates a shared object lacked one of the three
	// required exported symbols for its advertised kind.
	ErrMissingSymbol = errors.New("registry: plugin missing required exported symbol")
	// ErrBadInit indicates a plugin's <stem>_init symbol had the wrong type
	// or returned an empty identifier list.
	ErrBadInit = errors.New("registry: plugin init symbol malformed")
	// ErrUnknownKind indicates <stem>_init's element 0 was not one of
	// "TRE", "COMPRESSION", "DECOMPRESSION".
	ErrUnknownKind = errors.New("registry: plugin advertised unknown kind")
)

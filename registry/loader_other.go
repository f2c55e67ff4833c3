//go:build !linux

package registry

// Go's plugin package only supports linux, so on every other platform
// dynamic plugin loading is unavailable; LoadDir/LoadPlugin report
// ErrUnsupportedPlatform and callers fall back to programmatic registration
// and the default raw TRE handler, exactly as an empty plugin path would.

func isSharedLibrary(name string) bool { return false }

type libraryInfo struct{}

func loadLibrary(file string) (*libraryInfo, error) {
	return nil, ErrUnsupportedPlatform
}

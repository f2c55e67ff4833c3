//go:build linux

package registry

import (
	"fmt"
	"plugin"
	"strings"

	"github.com/nitfgo/nitfgo/tre"
)

// sharedLibraryExt is the extension Go's plugin package expects on linux.
const sharedLibraryExt = ".so"

func isSharedLibrary(name string) bool {
	return strings.HasSuffix(name, sharedLibraryExt)
}

type libraryInfo struct {
	kind              Kind
	identifiers       []string
	treCtor           tre.Constructor
	compressionCtor   CompressionConstructor
	decompressionCtor DecompressionConstructor
	cleanup           func()
}

// loadLibrary opens a shared object and resolves its <stem>_init,
// <stem>_handler/<stem>_construct, and optional <stem>_cleanup symbols per
// the ABI in §6.2.
func loadLibrary(file string) (*libraryInfo, error) {
	p, err := plugin.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file, err)
	}

	stem := stemOf(file)

	initSym, err := p.Lookup(stem + "_init")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingSymbol, file, err)
	}
	initFn, ok := initSym.(func() []string)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %s_init has unexpected type", ErrBadInit, file, stem)
	}
	advertised := initFn()
	if len(advertised) < 1 {
		return nil, fmt.Errorf("%w: %s: %s_init returned no kind key", ErrBadInit, file, stem)
	}

	info := &libraryInfo{kind: Kind(advertised[0]), identifiers: advertised[1:]}

	switch info.kind {
	case KindTRE:
		sym, err := p.Lookup(stem + "_handler")
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMissingSymbol, file, err)
		}
		fn, ok := sym.(func() (tre.Handler, error))
		if !ok {
			return nil, fmt.Errorf("%w: %s: %s_handler has unexpected type", ErrMissingSymbol, file, stem)
		}
		info.treCtor = func(_, _ string) (tre.Handler, error) { return fn() }
	case KindCompression:
		sym, err := p.Lookup(stem + "_construct")
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMissingSymbol, file, err)
		}
		fn, ok := sym.(func(string) (CompressionInterface, error))
		if !ok {
			return nil, fmt.Errorf("%w: %s: %s_construct has unexpected type", ErrMissingSymbol, file, stem)
		}
		info.compressionCtor = fn
	case KindDecompression:
		sym, err := p.Lookup(stem + "_construct")
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMissingSymbol, file, err)
		}
		fn, ok := sym.(func(string) (DecompressionInterface, error))
		if !ok {
			return nil, fmt.Errorf("%w: %s: %s_construct has unexpected type", ErrMissingSymbol, file, stem)
		}
		info.decompressionCtor = fn
	default:
		return nil, fmt.Errorf("%w: %s: %q", ErrUnknownKind, file, info.kind)
	}

	if cleanupSym, err := p.Lookup(stem + "_cleanup"); err == nil {
		if fn, ok := cleanupSym.(func()); ok {
			info.cleanup = fn
		}
	}

	return info, nil
}

func stemOf(file string) string {
	base := file
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	return strings.TrimSuffix(base, sharedLibraryExt)
}

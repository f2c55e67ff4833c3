package registry

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/nitfgo/nitfgo/internal/nitferr"
	"github.com/nitfgo/nitfgo/tre"
)

// PluginRegistry is the process-wide singleton mapping TRE/compression/
// decompression identifiers to handler constructors. Obtain it with
// GetInstance; do not construct one directly.
type PluginRegistry struct {
	mu sync.Mutex

	treHandlers          map[string]treConstructorEntry
	compressionHandlers  map[string]CompressionConstructor
	decompressionHandlers map[string]DecompressionConstructor

	loadedLibs []*loadedLibrary

	initialized bool
}

type loadedLibrary struct {
	path    string
	cleanup func()
}

var (
	instance     *PluginRegistry
	instanceOnce sync.Once
)

// GetInstance returns the process-wide registry, performing first-time,
// double-checked singleton initialization (scoping the package mutex around
// construction and guaranteeing release on every exit path) and scanning
// DefaultConfig()'s plugin path exactly once.
func GetInstance() *PluginRegistry {
	instanceOnce.Do(func() {
		instance = newRegistry()
		cfg := DefaultConfig()
		if cfg.PluginPath != "" {
			// Best-effort: a missing/unreadable default directory is not
			// fatal to registry construction, only to the plugins it would
			// have supplied (§4.2, §6.3 — "or operate with no file-loaded
			// plugins").
			_ = instance.LoadDir(cfg.PluginPath)
		}
	})
	return instance
}

func newRegistry() *PluginRegistry {
	return &PluginRegistry{
		treHandlers:           make(map[string]treConstructorEntry),
		compressionHandlers:   make(map[string]CompressionConstructor),
		decompressionHandlers: make(map[string]DecompressionConstructor),
		initialized:           true,
	}
}

// newTestRegistry builds an un-shared registry instance for tests that want
// isolation from process-wide state (package-private: production code must
// always go through GetInstance).
func newTestRegistry() *PluginRegistry {
	return newRegistry()
}

// LoadDir scans dir for platform shared libraries and registers every
// identifier they advertise. Scoped acquisition of the registry mutex for
// the duration of the scan.
func (r *PluginRegistry) LoadDir(dir string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dir = ensureTrailingSeparator(dir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nitferr.Wrap(nitferr.KindOpeningFile, fmt.Sprintf("registry: open plugin dir %s", dir), err)
	}

	var firstErr error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !isSharedLibrary(entry.Name()) {
			continue
		}
		if err := r.loadPluginLocked(dir + entry.Name()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// LoadPlugin loads a single shared library file and registers its
// advertised identifiers.
func (r *PluginRegistry) LoadPlugin(file string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadPluginLocked(file)
}

func (r *PluginRegistry) loadPluginLocked(file string) error {
	info, err := loadLibrary(file)
	if err != nil {
		return nitferr.Wrap(nitferr.KindLoadingDLL, fmt.Sprintf("registry: load %s", file), err)
	}

	switch info.kind {
	case KindTRE:
		ctor, ok := info.treCtor, info.treCtor != nil
		if !ok {
			return fmt.Errorf("%w: %s missing handler constructor", ErrMissingSymbol, file)
		}
		for _, id := range info.identifiers {
			r.setTREHandlerLocked(id, ctor, false)
		}
	case KindCompression:
		if info.compressionCtor == nil {
			return fmt.Errorf("%w: %s missing compression constructor", ErrMissingSymbol, file)
		}
		for _, id := range info.identifiers {
			r.compressionHandlers[normalizeIdentifier(id)] = info.compressionCtor
		}
	case KindDecompression:
		if info.decompressionCtor == nil {
			return fmt.Errorf("%w: %s missing decompression constructor", ErrMissingSymbol, file)
		}
		for _, id := range info.identifiers {
			r.decompressionHandlers[normalizeIdentifier(id)] = info.decompressionCtor
		}
	default:
		return fmt.Errorf("%w: %s advertised %q", ErrUnknownKind, file, info.kind)
	}

	r.loadedLibs = append(r.loadedLibs, &loadedLibrary{path: file, cleanup: info.cleanup})
	return nil
}

// RegisterTREHandler registers a statically linked TRE handler constructor,
// bypassing the dynamic loader. init lists the identifiers it serves;
// programmatic registration overrides any file-loaded handler with the same
// identifier (the override is logged, not rejected, per §4.2 Ordering).
func (r *PluginRegistry) RegisterTREHandler(identifiers []string, ctor tre.Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range identifiers {
		r.setTREHandlerLocked(id, ctor, true)
	}
}

func (r *PluginRegistry) setTREHandlerLocked(id string, ctor tre.Constructor, programmatic bool) {
	id = normalizeIdentifier(id)
	if existing, ok := r.treHandlers[id]; ok && existing.programmatic && !programmatic {
		// A programmatic registration already holds this identifier; a
		// later file-loaded plugin does not override it.
		fmt.Fprintf(os.Stderr, "registry: ignoring file-loaded handler for %q, programmatic registration takes precedence\n", id)
		return
	}
	if existing, ok := r.treHandlers[id]; ok && !existing.programmatic && programmatic {
		fmt.Fprintf(os.Stderr, "registry: programmatic registration overriding file-loaded handler for %q\n", id)
	}
	r.treHandlers[id] = treConstructorEntry{ctor: ctor, programmatic: programmatic}
}

// RegisterCompressionHandler registers a statically linked compression
// constructor for the given identifiers.
func (r *PluginRegistry) RegisterCompressionHandler(identifiers []string, ctor CompressionConstructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range identifiers {
		r.compressionHandlers[normalizeIdentifier(id)] = ctor
	}
}

// RegisterDecompressionHandler registers a statically linked decompression
// constructor for the given identifiers.
func (r *PluginRegistry) RegisterDecompressionHandler(identifiers []string, ctor DecompressionConstructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range identifiers {
		r.decompressionHandlers[normalizeIdentifier(id)] = ctor
	}
}

// RetrieveTREHandler looks up a TRE constructor by tag. A miss is not fatal
// (returns ok=false); callers fall back to the default raw handler.
func (r *PluginRegistry) RetrieveTREHandler(tagName string) (tre.Constructor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.treHandlers[normalizeIdentifier(tagName)]
	if !ok {
		return nil, false
	}
	return entry.ctor, true
}

// Lookup implements tre.Resolver.
func (r *PluginRegistry) Lookup(tagName string) (tre.Constructor, bool) {
	return r.RetrieveTREHandler(tagName)
}

// TREHandlerExists reports whether a TRE constructor is registered for tag.
func (r *PluginRegistry) TREHandlerExists(tagName string) bool {
	_, ok := r.RetrieveTREHandler(tagName)
	return ok
}

// TREIdentifiers returns every currently registered TRE identifier in
// sorted order. Not part of spec.md's C2 operation list directly, but a
// natural read-only extension of it for tooling (e.g. a CLI "plugins"
// command) that needs to enumerate, not just probe, what is registered.
func (r *PluginRegistry) TREIdentifiers() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.treHandlers))
	for id := range r.treHandlers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RetrieveCompConstructor looks up a compression constructor. Unlike TRE
// lookups, a miss here is fatal to the caller (§4.2).
func (r *PluginRegistry) RetrieveCompConstructor(ident string) (CompressionConstructor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ctor, ok := r.compressionHandlers[normalizeIdentifier(ident)]
	if !ok {
		return nil, nitferr.New(nitferr.KindNoHandler, fmt.Sprintf("registry: no compression handler for %q", ident))
	}
	return ctor, nil
}

// RetrieveDecompConstructor looks up a decompression constructor. A miss is
// fatal to the caller (§4.2).
func (r *PluginRegistry) RetrieveDecompConstructor(ident string) (DecompressionConstructor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ctor, ok := r.decompressionHandlers[normalizeIdentifier(ident)]
	if !ok {
		return nil, nitferr.New(nitferr.KindNoHandler, fmt.Sprintf("registry: no decompression handler for %q", ident))
	}
	return ctor, nil
}

// Shutdown invokes every loaded library's optional cleanup hook and clears
// the registry's maps. Go's plugin package cannot truly unload a shared
// object once opened (there is no dlclose equivalent), so this only runs
// the libraries' own teardown and forgets the registrations; it does not
// unmap the code from the process, unlike the source's atexit hook.
func (r *PluginRegistry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, lib := range r.loadedLibs {
		if lib.cleanup != nil {
			lib.cleanup()
		}
	}
	r.loadedLibs = nil
	r.treHandlers = make(map[string]treConstructorEntry)
	r.compressionHandlers = make(map[string]CompressionConstructor)
	r.decompressionHandlers = make(map[string]DecompressionConstructor)
}

// normalizeIdentifier replaces embedded spaces with underscores before
// lookup, per §6.2.
func normalizeIdentifier(id string) string {
	out := make([]byte, len(id))
	for i := 0; i < len(id); i++ {
		if id[i] == ' ' {
			out[i] = '_'
		} else {
			out[i] = id[i]
		}
	}
	return string(out)
}

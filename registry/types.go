package registry

import (
	"os"
	"path/filepath"

	"github.com/nitfgo/nitfgo/tre"
)

// Kind identifies which of the three handler maps a plugin's identifiers
// belong to.
type Kind string

const (
	KindTRE            Kind = "TRE"
	KindCompression    Kind = "COMPRESSION"
	KindDecompression  Kind = "DECOMPRESSION"
)

// CompressionInterface is the capability a compression plugin's constructed
// value must provide. Actual band/pixel encoding is out of scope for this
// core (§1 Non-goals); the registry only needs enough surface to resolve and
// hand the interface back to the external collaborator that does the real
// work.
type CompressionInterface interface {
	// Identifier returns the compression identifier this instance handles
	// (e.g. "C3", "C8").
	Identifier() string
}

// DecompressionInterface mirrors CompressionInterface for the decompression
// direction.
type DecompressionInterface interface {
	Identifier() string
}

// CompressionConstructor builds a CompressionInterface for a specific
// identifier (a single plugin may advertise several identifiers sharing one
// constructor).
type CompressionConstructor func(ident string) (CompressionInterface, error)

// DecompressionConstructor mirrors CompressionConstructor.
type DecompressionConstructor func(ident string) (DecompressionInterface, error)

// Config controls where LoadDir looks for plugins when none is specified
// explicitly.
type Config struct {
	// PluginPath is the directory to scan. Trailing separator is optional;
	// ensureTrailingSeparator is applied before use.
	PluginPath string
}

// pluginPathEnvVar is the environment variable §6.3 names.
const pluginPathEnvVar = "NITF_PLUGIN_PATH"

// compileTimeDefaultDir is the fallback search path when the environment
// variable is unset. Empty means "no file-loaded plugins" unless the
// directory exists.
const compileTimeDefaultDir = ""

// DefaultConfig resolves NITF_PLUGIN_PATH, falling back to the compile-time
// default directory if it is set and exists, or to no file-loaded plugins.
func DefaultConfig() Config {
	if p := os.Getenv(pluginPathEnvVar); p != "" {
		return Config{PluginPath: p}
	}
	if compileTimeDefaultDir != "" {
		if info, err := os.Stat(compileTimeDefaultDir); err == nil && info.IsDir() {
			return Config{PluginPath: compileTimeDefaultDir}
		}
	}
	return Config{}
}

// ensureTrailingSeparator appends the platform separator if missing, per §6.3.
func ensureTrailingSeparator(dir string) string {
	if dir == "" {
		return dir
	}
	if dir[len(dir)-1] == filepath.Separator {
		return dir
	}
	return dir + string(filepath.Separator)
}

// treConstructorEntry records a TRE constructor plus whether it was
// registered programmatically (which takes priority over file-loaded
// entries with the same tag, per §4.2 Ordering).
type treConstructorEntry struct {
	ctor        tre.Constructor
	programmatic bool
}

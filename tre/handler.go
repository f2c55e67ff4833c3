package tre

import "github.com/nitfgo/nitfgo/field"

// NamedField pairs a field with the dotted path name a handler exposes it
// under, the unit Enumerate and Find deal in.
type NamedField struct {
	Path  string
	Field *field.Field
}

// Handler is the capability set a TRE delegates to: parse/serialize the
// handler's private state to/from bytes, report its current serialized size,
// and get/set/enumerate/find its named fields. Every handler — the built-in
// default raw handler, a descriptive (static-schema) handler, or a plugin's
// custom vtable — implements exactly this interface, and callers never
// branch on which kind they hold.
type Handler interface {
	// Parse decodes declaredLen bytes of in as this handler's state. in may
	// be longer than declaredLen; implementations must only consume
	// declaredLen bytes.
	Parse(in []byte, declaredLen int) error

	// Serialize encodes the handler's current state to wire bytes (the TRE
	// payload, excluding the 11-byte CETAG+CEL prefix).
	Serialize() ([]byte, error)

	// Size returns the current serialized size in bytes, excluding the
	// 11-byte prefix. It must be recomputed from state, never cached across
	// a mutation.
	Size() (uint32, error)

	// SetField sets the named field's raw content. Paths are dotted names;
	// the default handler accepts only its single anonymous field name.
	SetField(path string, raw []byte) error

	// GetField retrieves the named field, or ok=false if path is unknown.
	GetField(path string) (f *field.Field, ok bool)

	// Exists reports whether path names a field this handler has.
	Exists(path string) bool

	// Find returns every field whose path matches pattern (a simple glob:
	// "*" matches any run of characters).
	Find(pattern string) []NamedField

	// Enumerate yields every (path, field) pair in definition order.
	Enumerate() []NamedField

	// Clone returns a deep, independent copy of the handler's state.
	Clone() Handler
}

// Resolver looks up a Handler constructor for a TRE tag. Implemented by
// registry.PluginRegistry; kept as a narrow interface here so this package
// never imports registry (registry imports tre, not the reverse).
type Resolver interface {
	Lookup(tag string) (Constructor, bool)
}

// Constructor builds a fresh, empty Handler instance for a tag, optionally
// specialized by a sub-variant id (the id the TRE was created with, or ""
// for the tag's default variant).
type Constructor func(tag string, id string) (Handler, error)

package tre

import (
	"bytes"
	"fmt"

	"github.com/nitfgo/nitfgo/field"
)

// RawSentinel is the id value meaning "use the tag's raw/default handler
// variant even if a plugin is registered", per §4.1.
const RawSentinel = "raw"

// TRE is a single Tagged Record Extension value: a tag, an optional
// sub-variant id, and the handler instance holding its decoded state.
type TRE struct {
	Tag     string
	ID      string
	handler Handler
}

// Create resolves a handler for tag via resolver (falling back to the
// built-in default raw handler when no plugin claims the tag, or when id is
// the raw sentinel), and returns a fresh, empty TRE.
func Create(tagName string, id string, resolver Resolver) (*TRE, error) {
	if len(tagName) > 6 {
		return nil, fmt.Errorf("%w: %q", ErrTagTooLong, tagName)
	}
	var ctor Constructor
	if id != RawSentinel && resolver != nil {
		if c, ok := resolver.Lookup(tagName); ok {
			ctor = c
		}
	}
	if ctor == nil {
		ctor = NewDefaultHandler
	}
	h, err := ctor(tagName, id)
	if err != nil {
		return nil, fmt.Errorf("%w: tag %s: %v", ErrHandlerRejected, tagName, err)
	}
	return &TRE{Tag: tagName, ID: id, handler: h}, nil
}

// Handler exposes the TRE's underlying capability set.
func (t *TRE) Handler() Handler { return t.handler }

// SetField delegates to the handler.
func (t *TRE) SetField(pathName string, raw []byte) error {
	return t.handler.SetField(pathName, raw)
}

// GetField delegates to the handler.
func (t *TRE) GetField(pathName string) (*field.Field, bool) {
	return t.handler.GetField(pathName)
}

// Exists delegates to the handler.
func (t *TRE) Exists(pathName string) bool { return t.handler.Exists(pathName) }

// Find delegates to the handler.
func (t *TRE) Find(pattern string) []NamedField { return t.handler.Find(pattern) }

// Enumerate delegates to the handler.
func (t *TRE) Enumerate() []NamedField { return t.handler.Enumerate() }

// Size returns the TRE's current serialized size, excluding the 11-byte
// CETAG+CEL prefix. It is always recomputed from handler state.
func (t *TRE) Size() (uint32, error) {
	return t.handler.Size()
}

// TotalSize returns Size() plus the 11-byte tag+length prefix every TRE
// carries on the wire.
func (t *TRE) TotalSize() (uint32, error) {
	sz, err := t.Size()
	if err != nil {
		return 0, err
	}
	return sz + prefixWidth, nil
}

const (
	tagWidth    = 6
	lengthWidth = 5
	prefixWidth = tagWidth + lengthWidth
)

// Serialize writes the full wire form (CETAG, CEL, payload) to a buffer.
func (t *TRE) Serialize() ([]byte, error) {
	payload, err := t.handler.Serialize()
	if err != nil {
		return nil, fmt.Errorf("%w: tag %s: %v", ErrHandlerRejected, t.Tag, err)
	}
	if len(payload) > maxTREPayload {
		return nil, fmt.Errorf("%w: tag %s payload %d bytes", ErrFieldLengthExceeded, t.Tag, len(payload))
	}
	tagField := field.New("CETAG", tagWidth, field.String)
	if err := tagField.SetString(t.Tag); err != nil {
		return nil, err
	}
	lenField := field.New("CEL", lengthWidth, field.Integer)
	if err := lenField.SetUint(uint64(len(payload))); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	out.Write(tagField.Bytes())
	out.Write(lenField.Bytes())
	out.Write(payload)
	return out.Bytes(), nil
}

// Parse decodes a TRE from its payload bytes (the CETAG/CEL prefix is
// assumed already consumed by the caller, which is what tells it declaredLen
// and tag in the first place).
func Parse(tagName string, id string, payload []byte, declaredLen int, resolver Resolver) (*TRE, error) {
	t, err := Create(tagName, id, resolver)
	if err != nil {
		return nil, err
	}
	if err := t.handler.Parse(payload, declaredLen); err != nil {
		return nil, fmt.Errorf("%w: tag %s: %v", ErrHandlerRejected, tagName, err)
	}
	return t, nil
}

// Clone returns a deep, independent copy of t.
func (t *TRE) Clone() *TRE {
	return &TRE{Tag: t.Tag, ID: t.ID, handler: t.handler.Clone()}
}

// Equal reports whether two TREs have the same tag, id, and serialized
// bytes, per the data-model equality rule in §3.
func (t *TRE) Equal(other *TRE) bool {
	if other == nil || t.Tag != other.Tag || t.ID != other.ID {
		return false
	}
	a, errA := t.handler.Serialize()
	b, errB := other.handler.Serialize()
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(a, b)
}

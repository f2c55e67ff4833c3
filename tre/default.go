package tre

import (
	"fmt"
	"path"

	"github.com/nitfgo/nitfgo/field"
)

// rawFieldPath is the single anonymous field name the default handler
// exposes, per spec §4.1 ("the default handler stores one anonymous field").
const rawFieldPath = "RAW"

// maxTREPayload is the largest value the 5-digit CEL length field can encode.
const maxTREPayload = 99999

// DefaultHandler is the fallback handler installed when no plugin claims a
// TRE's tag: it stores the TRE's payload as an opaque byte buffer and
// round-trips it unchanged.
type DefaultHandler struct {
	raw []byte
}

// NewDefaultHandler constructs an empty default handler. The tag parameter
// is accepted to satisfy Constructor's signature; the default handler is tag
// agnostic.
func NewDefaultHandler(_ string, _ string) (Handler, error) {
	return &DefaultHandler{}, nil
}

func (d *DefaultHandler) Parse(in []byte, declaredLen int) error {
	if declaredLen < 0 || declaredLen > len(in) {
		return fmt.Errorf("%w: declared length %d exceeds available %d bytes", ErrHandlerRejected, declaredLen, len(in))
	}
	d.raw = append([]byte(nil), in[:declaredLen]...)
	return nil
}

func (d *DefaultHandler) Serialize() ([]byte, error) {
	return append([]byte(nil), d.raw...), nil
}

func (d *DefaultHandler) Size() (uint32, error) {
	return uint32(len(d.raw)), nil
}

func (d *DefaultHandler) SetField(pathName string, raw []byte) error {
	if pathName != rawFieldPath && pathName != "" {
		return fmt.Errorf("%w: %s", ErrUnknownField, pathName)
	}
	if len(raw) > maxTREPayload {
		return fmt.Errorf("%w: %d bytes exceeds CEL width", ErrFieldLengthExceeded, len(raw))
	}
	d.raw = append([]byte(nil), raw...)
	return nil
}

func (d *DefaultHandler) GetField(pathName string) (*field.Field, bool) {
	if pathName != rawFieldPath && pathName != "" {
		return nil, false
	}
	f := field.New(rawFieldPath, len(d.raw), field.Binary)
	_ = f.SetBytes(d.raw)
	return f, true
}

func (d *DefaultHandler) Exists(pathName string) bool {
	return pathName == rawFieldPath || pathName == ""
}

func (d *DefaultHandler) Find(pattern string) []NamedField {
	ok, err := path.Match(pattern, rawFieldPath)
	if err != nil || !ok {
		return nil
	}
	f, _ := d.GetField(rawFieldPath)
	return []NamedField{{Path: rawFieldPath, Field: f}}
}

func (d *DefaultHandler) Enumerate() []NamedField {
	f, _ := d.GetField(rawFieldPath)
	return []NamedField{{Path: rawFieldPath, Field: f}}
}

func (d *DefaultHandler) Clone() Handler {
	cp := &DefaultHandler{raw: append([]byte(nil), d.raw...)}
	return cp
}

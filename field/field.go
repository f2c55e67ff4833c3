// Package field implements the NITF "Field" abstraction: a fixed-width
// textual value that round-trips through a known padding/justification rule.
//
// The NITF 2.1 standard stores every structural value — whether logically a
// string, an integer, a real number, or raw binary — as a fixed number of
// ASCII bytes. Never parse a subheader or TRE value with a language's native
// integer parsing without going through this type first: the declared width
// determines semantics (an unset numeric field is legitimately "blank", not
// zero, even though its raw bytes are indistinguishable from zero once
// zero-padded).
package field

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/nitfgo/nitfgo/internal/buf"
)

// Type is the logical type a Field's bytes are interpreted as.
type Type int

const (
	// String is BCS-A/BCS-N free text, left-justified and space-filled.
	String Type = iota
	// Integer is a right-justified, zero-filled decimal integer (BCS-N).
	Integer
	// Real is a right-justified, zero-filled fixed-point or scientific
	// decimal value.
	Real
	// Binary is an opaque fixed-width byte string, padded like String
	// (left-justified, space-filled).
	Binary
)

// Justify selects which side of the field absorbs the pad character.
type Justify int

const (
	// Left justification pads on the right (used by String).
	Left Justify = iota
	// Right justification pads on the left (used by Integer and Real).
	Right
)

// Field is a fixed-width textual field. The zero value is not usable; build
// one with New.
type Field struct {
	name    string
	width   int
	typ     Type
	justify Justify
	pad     byte
	raw     []byte

	// written distinguishes "never explicitly set" from "set to a value
	// whose zero-padded wire form happens to equal the pad fill" (e.g.
	// SetInt(0) on a 3-byte field writes "000", byte-identical to a fresh
	// field's fill). Blank() reports !written; raw content alone cannot
	// carry this distinction for zero-padded numeric fields.
	written bool
}

// New constructs a Field of the given name, width and logical type, with the
// conventional justification/padding for that type: String and Binary are
// left-justified and space-filled; Integer and Real are right-justified and
// zero-filled. The field starts blank (all pad bytes, unwritten).
func New(name string, width int, typ Type) *Field {
	f := &Field{name: name, width: width, typ: typ, raw: make([]byte, width)}
	switch typ {
	case Integer, Real:
		f.justify = Right
		f.pad = '0'
	default:
		f.justify = Left
		f.pad = ' '
	}
	f.reset()
	return f
}

func (f *Field) reset() {
	for i := range f.raw {
		f.raw[i] = f.pad
	}
}

// Name returns the field's declared name (e.g. "NROWS", "IDLVL").
func (f *Field) Name() string { return f.name }

// Width returns the field's fixed byte width.
func (f *Field) Width() int { return f.width }

// Type returns the field's declared logical type.
func (f *Field) Type() Type { return f.typ }

// Bytes returns a copy of the field's raw, padded, fixed-width content.
func (f *Field) Bytes() []byte {
	out := make([]byte, len(f.raw))
	copy(out, f.raw)
	return out
}

// SetBytes installs raw bytes as the field's content verbatim (used when
// populating a Field from already-decoded file bytes). The slice must be
// exactly Width() bytes.
func (f *Field) SetBytes(b []byte) error {
	if len(b) != f.width {
		return fmt.Errorf("%w: field %s wants %d bytes, got %d", ErrFieldLengthExceeded, f.name, f.width, len(b))
	}
	copy(f.raw, b)
	f.written = true
	return nil
}

// SetString sets a String/Binary field's content, left-justified and
// space-padded (or truncated-rejected if it overflows the width). Content is
// validated as encodable in the NITF basic character set (ISO-8859-1)
// because the file format is a fixed 8-bit text encoding, not UTF-8.
func (f *Field) SetString(s string) error {
	if len(s) > f.width {
		return fmt.Errorf("%w: field %s wants <=%d bytes, got %d", ErrFieldLengthExceeded, f.name, f.width, len(s))
	}
	encoded, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return fmt.Errorf("%w: field %s: %v", ErrInvalidContent, f.name, err)
	}
	f.reset()
	switch f.justify {
	case Left:
		copy(f.raw, encoded)
	case Right:
		copy(f.raw[f.width-len(encoded):], encoded)
	}
	f.written = true
	return nil
}

// String trims the field's padding and returns the textual content.
func (f *Field) String() string {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(f.raw)
	if err != nil {
		decoded = f.raw
	}
	switch f.justify {
	case Left:
		return strings.TrimRight(string(decoded), " ")
	default:
		s := strings.TrimLeft(string(decoded), string(f.pad))
		if s == "" {
			return "0"
		}
		return s
	}
}

// Blank reports whether the field has never had a value explicitly set —
// the NITF convention for "unset" (e.g. CLEVEL blank means the complexity
// engine still needs to fill it in; UDHOFL explicitly set to 0 is a real
// value, "no overflow", not blank).
func (f *Field) Blank() bool {
	return !f.written
}

// SetInt formats v as a right-justified, zero-padded decimal integer. It
// fails with ErrFieldLengthExceeded if v (with sign) does not fit in Width().
func (f *Field) SetInt(v int64) error {
	s := strconv.FormatInt(v, 10)
	if len(s) > f.width {
		return fmt.Errorf("%w: field %s cannot hold %d in %d bytes", ErrFieldLengthExceeded, f.name, v, f.width)
	}
	neg := v < 0
	digits := s
	if neg {
		digits = s[1:]
	}
	pad := f.width - len(digits)
	if neg {
		pad--
	}
	if pad < 0 {
		return fmt.Errorf("%w: field %s cannot hold %d in %d bytes", ErrFieldLengthExceeded, f.name, v, f.width)
	}
	var b strings.Builder
	if neg {
		b.WriteString(strings.Repeat("0", pad))
		b.WriteByte('-')
		b.WriteString(digits)
	} else {
		b.WriteString(strings.Repeat("0", pad))
		b.WriteString(digits)
	}
	copy(f.raw, b.String())
	f.written = true
	return nil
}

// SetUint is a convenience wrapper for non-negative integer fields, the
// common case for lengths/counts/indices.
func (f *Field) SetUint(v uint64) error {
	if v > uint64(1<<63-1) {
		return fmt.Errorf("%w: field %s value %d out of range", ErrFieldLengthExceeded, f.name, v)
	}
	return f.SetInt(int64(v))
}

// Int parses the field's content as a base-10 integer. It fails with
// ErrInvalidContent (wrapped as kParse by callers) if the field has never
// been set (Blank()) or its content is not a valid representation.
func (f *Field) Int() (int64, error) {
	if f.Blank() {
		return 0, fmt.Errorf("%w: field %s is blank", ErrInvalidContent, f.name)
	}
	s := strings.TrimSpace(f.String())
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %s: %v", ErrInvalidContent, f.name, err)
	}
	return v, nil
}

// Uint is Int restricted to non-negative values.
func (f *Field) Uint() (uint64, error) {
	v, err := f.Int()
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: field %s is negative", ErrInvalidContent, f.name)
	}
	return uint64(v), nil
}

// SetReal formats v as a right-justified, zero-padded decimal with the given
// number of digits after the decimal point.
func (f *Field) SetReal(v float64, decimals int) error {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if len(s) > f.width {
		return fmt.Errorf("%w: field %s cannot hold %g in %d bytes", ErrFieldLengthExceeded, f.name, v, f.width)
	}
	pad := f.width - len(s)
	f.reset()
	copy(f.raw[pad:], s)
	f.written = true
	return nil
}

// Real parses the field's content as a floating point value. It fails if the
// field has never been set.
func (f *Field) Real() (float64, error) {
	if f.Blank() {
		return 0, fmt.Errorf("%w: field %s is blank", ErrInvalidContent, f.name)
	}
	s := strings.TrimSpace(f.String())
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %s: %v", ErrInvalidContent, f.name, err)
	}
	return v, nil
}

// SliceFrom returns a bounds-checked view into b at [off, off+width), the
// way callers decoding a subheader from a raw buffer should read each field.
func SliceFrom(b []byte, off, width int) ([]byte, bool) {
	return buf.Slice(b, off, width)
}

// Clone returns a deep copy of f.
func (f *Field) Clone() *Field {
	cp := &Field{name: f.name, width: f.width, typ: f.typ, justify: f.justify, pad: f.pad, written: f.written}
	cp.raw = make([]byte, len(f.raw))
	copy(cp.raw, f.raw)
	return cp
}

// Equal reports whether two fields have identical declared shape and content.
func (f *Field) Equal(other *Field) bool {
	if other == nil {
		return false
	}
	if f.name != other.name || f.width != other.width || f.typ != other.typ {
		return false
	}
	return string(f.raw) == string(other.raw)
}

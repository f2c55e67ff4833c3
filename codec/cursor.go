package codec

import (
	"bytes"
	"fmt"

	"github.com/nitfgo/nitfgo/field"
)

// cursor is a forward-only read position over a byte slice, the mirror of
// bytes.Buffer for decoding fixed-width fields.
type cursor struct {
	data []byte
	off  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

// take returns the next n bytes and advances the cursor, or fails if fewer
// than n bytes remain.
func (c *cursor) take(n int) ([]byte, error) {
	b, ok := field.SliceFrom(c.data, c.off, n)
	if !ok {
		return nil, fmt.Errorf("%w: offset %d wants %d bytes, %d remain", ErrTruncated, c.off, n, len(c.data)-c.off)
	}
	c.off += n
	return b, nil
}

func writeField(buf *bytes.Buffer, f *field.Field) {
	buf.Write(f.Bytes())
}

func readField(c *cursor, f *field.Field) error {
	b, err := c.take(f.Width())
	if err != nil {
		return err
	}
	return f.SetBytes(b)
}

// writeFixedUint appends v as a right-justified, zero-padded decimal of the
// given width — the form ComponentInfo's variable-width length pairs need.
func writeFixedUint(buf *bytes.Buffer, width int, v uint64) error {
	f := field.New("", width, field.Integer)
	if err := f.SetUint(v); err != nil {
		return err
	}
	buf.Write(f.Bytes())
	return nil
}

func readFixedUint(c *cursor, width int) (uint64, error) {
	b, err := c.take(width)
	if err != nil {
		return 0, err
	}
	f := field.New("", width, field.Integer)
	if err := f.SetBytes(b); err != nil {
		return 0, err
	}
	return f.Uint()
}

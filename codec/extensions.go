package codec

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/nitfgo/nitfgo/tre"
)

// writeExtensions appends e's wire form (each TRE's CETAG+CEL+payload, in
// order) to buf.
func writeExtensions(buf *bytes.Buffer, e *tre.Extensions) error {
	b, err := e.Serialize()
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// readExtensions decodes exactly length bytes as a run of TRE triplets,
// using resolver to look up each tag's handler (nil falls back to the
// default raw handler for every tag, per §4.1).
func readExtensions(c *cursor, length int, resolver tre.Resolver) (*tre.Extensions, error) {
	if length == 0 {
		return tre.NewExtensions(), nil
	}
	end := c.off + length
	if end > len(c.data) {
		return nil, fmt.Errorf("%w: extension section of %d bytes exceeds input", ErrTruncated, length)
	}

	ext := tre.NewExtensions()
	for c.off < end {
		tagBytes, err := c.take(6)
		if err != nil {
			return nil, err
		}
		tag := strings.TrimRight(string(tagBytes), " ")

		celBytes, err := c.take(5)
		if err != nil {
			return nil, err
		}
		payloadLen, err := parseCEL(celBytes)
		if err != nil {
			return nil, err
		}

		payload, err := c.take(payloadLen)
		if err != nil {
			return nil, err
		}

		t, err := tre.Parse(tag, "", payload, payloadLen, resolver)
		if err != nil {
			return nil, err
		}
		ext.Append(t)
	}
	return ext, nil
}

func parseCEL(b []byte) (int, error) {
	s := strings.TrimLeft(string(b), "0")
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

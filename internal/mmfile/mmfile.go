// Package mmfile memory-maps a NITF/NSIF file so codec.Read can decode it
// without copying the whole thing into a second buffer, falling back to a
// plain read on platforms without a usable mmap syscall.
package mmfile

import (
	"fmt"

	"github.com/nitfgo/nitfgo/internal/nitferr"
)

// minFileSize is the shortest a byte sequence could possibly be and still
// hold a valid NITF/NSIF file: the 4-byte FHDR plus 5-byte FVER
// identification fields every FileHeader begins with, before even CLEVEL.
const minFileSize = 9

// checkSize rejects a nonempty file too short to possibly contain a NITF
// file header, so a truncated or unrelated file fails fast here with a
// clear message instead of failing deep inside codec.Read's field cursor.
// A zero-length file is let through unchanged: Map has always mapped it to
// an empty, valid slice, and some callers (building a Record from scratch
// against a freshly created, empty backing file) rely on that.
func checkSize(size int64) error {
	if size > 0 && size < minFileSize {
		return nitferr.New(nitferr.KindParse,
			fmt.Sprintf("mmfile: file is %d bytes, too short for a NITF file (need at least %d)", size, minFileSize))
	}
	return nil
}

//go:build windows

package mmfile

import (
	"os"
)

// Map reads the whole file on Windows, where NITF readers in this module
// don't attempt a native mmap (see DESIGN.md for why only the unix path
// carries one; the generic fallback also reads the whole file).
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	if err := checkSize(int64(len(data))); err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}

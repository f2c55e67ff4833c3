//go:build !unix && !windows

package mmfile

import "os"

// Map reads the whole file when mmap is not available on this platform.
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

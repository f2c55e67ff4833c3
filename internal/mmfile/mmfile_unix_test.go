//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nitfgo/nitfgo/internal/nitferr"
)

// minimalHeaderPrefix is the shortest possible legal prefix of a NITF file:
// FHDR="NITF" + FVER="02.10", the first nine bytes every FileHeader carries
// before CLEVEL.
var minimalHeaderPrefix = []byte("NITF02.10")

func TestMapReadOnlyUnix(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "test.ntf")
	if err := os.WriteFile(path, minimalHeaderPrefix, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	defer func() {
		if cleanupErr := cleanup(); cleanupErr != nil {
			t.Fatalf("cleanup: %v", cleanupErr)
		}
	}()
	if len(data) != len(minimalHeaderPrefix) {
		t.Fatalf("len mismatch: got %d want %d", len(data), len(minimalHeaderPrefix))
	}
	for i, b := range minimalHeaderPrefix {
		if data[i] != b {
			t.Fatalf("byte %d mismatch: got 0x%x want 0x%x", i, data[i], b)
		}
	}
}

func TestMapReadOnlyUnixZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.ntf")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected zero-length mapping, got %d", len(data))
	}
	if cleanup == nil {
		t.Fatalf("expected cleanup function")
	}
	if cleanupErr := cleanup(); cleanupErr != nil {
		t.Fatalf("cleanup: %v", cleanupErr)
	}
}

func TestMapRejectsFileShorterThanFileHeaderPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated.ntf")
	// Shorter than FHDR+FVER (9 bytes): could never be a real NITF file.
	if err := os.WriteFile(path, minimalHeaderPrefix[:4], 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, _, err := Map(path)
	if err == nil {
		t.Fatalf("Map: want error for a truncated file, got nil")
	}
	if !nitferr.Is(err, nitferr.KindParse) {
		t.Errorf("Map error = %v, want a nitferr.KindParse error", err)
	}
}

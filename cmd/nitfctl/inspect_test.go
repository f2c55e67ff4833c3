package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nitfgo/nitfgo/codec"
	"github.com/nitfgo/nitfgo/record"
	"github.com/nitfgo/nitfgo/subheader"
)

// writeFixture builds a minimal valid Record with one image segment,
// serializes it via codec.Write, and writes it to a temp file, returning the
// path.
func writeFixture(t *testing.T) string {
	t.Helper()
	r := record.New(subheader.V21)
	img, err := r.NewImageSegment()
	if err != nil {
		t.Fatalf("NewImageSegment: %v", err)
	}
	_ = img.Subheader.NROWS.SetInt(256)
	_ = img.Subheader.NCOLS.SetInt(256)
	_ = img.Subheader.NPPBH.SetInt(256)
	_ = img.Subheader.NPPBV.SetInt(256)
	_ = img.Subheader.IREP.SetString("MONO")
	_ = img.Subheader.NBANDS.SetInt(1)
	_ = img.Subheader.NBPP.SetInt(8)
	_ = img.Subheader.IMODE.SetString("B")

	data, err := codec.Write(r)
	if err != nil {
		t.Fatalf("codec.Write: %v", err)
	}
	path := filepath.Join(t.TempDir(), "fixture.ntf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestOpenRecordRoundTrip(t *testing.T) {
	path := writeFixture(t)
	r, closeFn, err := openRecord(path)
	if err != nil {
		t.Fatalf("openRecord: %v", err)
	}
	defer closeFn()

	if len(r.Images) != 1 {
		t.Fatalf("expected 1 image segment, got %d", len(r.Images))
	}
	if r.Header.CLEVEL.Blank() {
		t.Fatalf("expected CLEVEL to be filled by the write path")
	}
}

func TestRunValidateClean(t *testing.T) {
	path := writeFixture(t)
	if err := runValidate([]string{path}); err != nil {
		t.Fatalf("runValidate: %v", err)
	}
}

func TestRunInspect(t *testing.T) {
	path := writeFixture(t)
	if err := runInspect([]string{path}); err != nil {
		t.Fatalf("runInspect: %v", err)
	}
}

func TestCollectTRERowsEmpty(t *testing.T) {
	path := writeFixture(t)
	r, closeFn, err := openRecord(path)
	if err != nil {
		t.Fatalf("openRecord: %v", err)
	}
	defer closeFn()

	rows, err := collectTRERows(r)
	if err != nil {
		t.Fatalf("collectTRERows: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no TREs in a fresh record, got %d", len(rows))
	}
}

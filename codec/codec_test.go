package codec

import (
	"bytes"
	"testing"

	"github.com/nitfgo/nitfgo/record"
	"github.com/nitfgo/nitfgo/subheader"
	"github.com/nitfgo/nitfgo/tre"
)

func buildSimpleRecord(t *testing.T) *record.Record {
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
	img.Data = []byte("pixel-bytes")

	t1, err := tre.Create("AAAAAA", "", nil)
	if err != nil {
		t.Fatalf("tre.Create: %v", err)
	}
	if err := t1.SetField("", []byte("hello")); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	img.Subheader.ExtendedSection.Append(t1)

	des, err := r.NewDataExtensionSegment()
	if err != nil {
		t.Fatalf("NewDataExtensionSegment: %v", err)
	}
	des.Data = []byte("extension-payload")

	return r
}

// TestWriteReadRoundTrip checks that encoding a record and decoding it back
// reproduces the segments, their data payloads and the CLEVEL filled in
// along the way.
func TestWriteReadRoundTrip(t *testing.T) {
	r := buildSimpleRecord(t)

	out, err := Write(r)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("Write produced no bytes")
	}

	fl, err := r.Header.FL.Int()
	if err != nil {
		t.Fatalf("FL.Int: %v", err)
	}
	if int(fl) != len(out) {
		t.Fatalf("FL = %d, want %d (len of output)", fl, len(out))
	}
	if r.Header.CLEVEL.Blank() {
		t.Fatalf("CLEVEL left blank after Write")
	}

	got, err := Read(out, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if len(got.Images) != 1 {
		t.Fatalf("Images = %d, want 1", len(got.Images))
	}
	if !bytes.Equal(got.Images[0].Data, r.Images[0].Data) {
		t.Fatalf("image data = %q, want %q", got.Images[0].Data, r.Images[0].Data)
	}
	if got.Images[0].Subheader.ExtendedSection.Len() != 1 {
		t.Fatalf("image extended section length = %d, want 1", got.Images[0].Subheader.ExtendedSection.Len())
	}
	if got.Images[0].Subheader.ExtendedSection.At(0).Tag != "AAAAAA" {
		t.Fatalf("TRE tag = %q, want AAAAAA", got.Images[0].Subheader.ExtendedSection.At(0).Tag)
	}

	if len(got.DataExtensions) != 1 {
		t.Fatalf("DataExtensions = %d, want 1", len(got.DataExtensions))
	}
	if !bytes.Equal(got.DataExtensions[0].Data, r.DataExtensions[0].Data) {
		t.Fatalf("DES data = %q, want %q", got.DataExtensions[0].Data, r.DataExtensions[0].Data)
	}

	if got.Header.CLEVEL.String() != r.Header.CLEVEL.String() {
		t.Fatalf("CLEVEL = %q, want %q", got.Header.CLEVEL.String(), r.Header.CLEVEL.String())
	}
}

// TestWriteReadRoundTripWithOverflow follows the same shape as the unmerge/
// merge scenario but drives it through the full Write/Read path: an image
// extended section big enough to force TRE_OVERFLOW must come back merged.
func TestWriteReadRoundTripWithOverflow(t *testing.T) {
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

	a, err := tre.Create("AAAAAA", "", nil)
	if err != nil {
		t.Fatalf("tre.Create: %v", err)
	}
	if err := a.SetField("", make([]byte, 99991-11)); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	b, err := tre.Create("BBBBBB", "", nil)
	if err != nil {
		t.Fatalf("tre.Create: %v", err)
	}
	if err := b.SetField("", make([]byte, 59-11)); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	img.Subheader.ExtendedSection.Append(a)
	img.Subheader.ExtendedSection.Append(b)

	out, err := Write(r)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n, _ := r.Header.NUMDES.Int(); n != 1 {
		t.Fatalf("NUMDES after Write = %d, want 1 (unmerge split the oversized section into a DES)", n)
	}

	got, err := Read(out, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.DataExtensions) != 0 {
		t.Fatalf("DataExtensions after Read = %d, want 0", len(got.DataExtensions))
	}
	if got.Images[0].Subheader.ExtendedSection.Len() != 2 {
		t.Fatalf("merged extended section length = %d, want 2", got.Images[0].Subheader.ExtendedSection.Len())
	}
}

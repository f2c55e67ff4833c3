package merge

import (
	"strings"
	"testing"

	"github.com/nitfgo/nitfgo/record"
	"github.com/nitfgo/nitfgo/subheader"
	"github.com/nitfgo/nitfgo/tre"
)

// rawTRE builds a default-handler TRE whose total wire size (11-byte prefix
// plus payload) is exactly size bytes.
func rawTRE(t *testing.T, tag string, size int) *tre.TRE {
	t.Helper()
	tr, err := tre.Create(tag, "", nil)
	if err != nil {
		t.Fatalf("tre.Create(%s): %v", tag, err)
	}
	if err := tr.SetField("", make([]byte, size-11)); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	return tr
}

// TestUnmergeMergeRoundTrip follows §8 scenario S4: an image subheader whose
// IXSHD section holds TREs totalling 100050 bytes (over the 99999 limit).
func TestUnmergeMergeRoundTrip(t *testing.T) {
	r := record.New(subheader.V21)
	img, err := r.NewImageSegment()
	if err != nil {
		t.Fatalf("NewImageSegment: %v", err)
	}

	a := rawTRE(t, "AAAAAA", 99991) // retained
	b := rawTRE(t, "BBBBBB", 59)    // spills
	img.Subheader.ExtendedSection.Append(a)
	img.Subheader.ExtendedSection.Append(b)

	if err := UnmergeTREs(r); err != nil {
		t.Fatalf("UnmergeTREs: %v", err)
	}

	if n, _ := r.Header.NUMDES.Int(); n != 1 {
		t.Fatalf("NUMDES after unmerge = %d, want 1", n)
	}
	if v, _ := img.Subheader.IXSOFL.Int(); v != 1 {
		t.Fatalf("IXSOFL = %d, want 1", v)
	}
	if l, _ := img.Subheader.IXSHDL.Int(); l > 99999 {
		t.Fatalf("IXSHDL = %d, want <= 99999", l)
	}
	if img.Subheader.ExtendedSection.Len() != 1 {
		t.Fatalf("retained section length = %d, want 1", img.Subheader.ExtendedSection.Len())
	}

	des := r.DataExtensions[0]
	if !des.Subheader.IsOverflow() {
		t.Fatalf("new DES is not marked TRE_OVERFLOW")
	}
	if got := strings.TrimSpace(des.Subheader.DESOFLW.String()); got != "IXSHD" {
		t.Fatalf("DESOFLW = %q, want IXSHD", got)
	}
	if item, _ := des.Subheader.DESITEM.Int(); item != 1 {
		t.Fatalf("DESITEM = %d, want 1", item)
	}

	origLen, err := (func() (uint32, error) {
		// original combined length before the split, recomputed for the assert.
		combined := tre.NewExtensions()
		combined.Append(a)
		combined.Append(b)
		return combined.SerializedLength()
	})()
	if err != nil {
		t.Fatalf("SerializedLength: %v", err)
	}

	if err := MergeTREs(r); err != nil {
		t.Fatalf("MergeTREs: %v", err)
	}

	if n, _ := r.Header.NUMDES.Int(); n != 0 {
		t.Fatalf("NUMDES after merge = %d, want 0", n)
	}
	if v, _ := img.Subheader.IXSOFL.Int(); v != 0 {
		t.Fatalf("IXSOFL after merge = %d, want 0", v)
	}
	if l, _ := img.Subheader.IXSHDL.Int(); l != 0 {
		t.Fatalf("IXSHDL after merge = %d, want 0 (zeroed by merge)", l)
	}
	if l, err := img.Subheader.ExtendedSection.SerializedLength(); err != nil || l != origLen {
		t.Fatalf("merged section length = %d (err %v), want %d (full original length)", l, err, origLen)
	}
	if img.Subheader.ExtendedSection.Len() != 2 {
		t.Fatalf("merged section length = %d, want 2", img.Subheader.ExtendedSection.Len())
	}
	if img.Subheader.ExtendedSection.At(0).Tag != "AAAAAA" || img.Subheader.ExtendedSection.At(1).Tag != "BBBBBB" {
		t.Fatalf("TRE order not preserved across merge")
	}
}

// TestUnmergeUsesExistingOverflowDES covers the "offset_field already set"
// branch of §4.6.1 step 3: a second unmerge pass must transfer into the DES
// the section already names, not allocate a new one.
func TestUnmergeUsesExistingOverflowDES(t *testing.T) {
	r := record.New(subheader.V21)
	img, err := r.NewImageSegment()
	if err != nil {
		t.Fatalf("NewImageSegment: %v", err)
	}
	img.Subheader.ExtendedSection.Append(rawTRE(t, "AAAAAA", 99991))
	img.Subheader.ExtendedSection.Append(rawTRE(t, "BBBBBB", 59))
	if err := UnmergeTREs(r); err != nil {
		t.Fatalf("first UnmergeTREs: %v", err)
	}

	// Growing the retained section past the limit again must reuse DES #1.
	img.Subheader.ExtendedSection.Append(rawTRE(t, "CCCCCC", 99991))
	if err := UnmergeTREs(r); err != nil {
		t.Fatalf("second UnmergeTREs: %v", err)
	}
	if n, _ := r.Header.NUMDES.Int(); n != 1 {
		t.Fatalf("NUMDES after second unmerge = %d, want 1 (reused DES)", n)
	}
	if v, _ := img.Subheader.IXSOFL.Int(); v != 1 {
		t.Fatalf("IXSOFL = %d, want 1", v)
	}
	if r.DataExtensions[0].Subheader.UserDefinedSection.Len() != 2 {
		t.Fatalf("overflow DES should now hold 2 TREs (B, C)")
	}
}

// TestRemovalRenumbersOverflows follows §8 scenario S5: three DES (an
// overflow of the file header UDHD, an ordinary DES, and an overflow of
// image 0's IXSHD); removing the middle ordinary DES must renumber only the
// offset fields pointing past it.
func TestRemovalRenumbersOverflows(t *testing.T) {
	r := record.New(subheader.V21)
	if _, err := r.NewImageSegment(); err != nil {
		t.Fatalf("NewImageSegment: %v", err)
	}

	des0, _ := r.NewDataExtensionSegment()
	// DESITEM=0 names the file header itself, per §4.6.1.
	des0.Subheader = subheader.NewOverflowDESubheader(subheader.V21, "UDHD", 0)
	_ = r.Header.UDHOFL.SetInt(1)

	if _, err := r.NewDataExtensionSegment(); err != nil { // des1: ordinary, non-overflow
		t.Fatalf("NewDataExtensionSegment: %v", err)
	}

	des2, _ := r.NewDataExtensionSegment()
	des2.Subheader = subheader.NewOverflowDESubheader(subheader.V21, "IXSHD", 1)
	_ = r.Images[0].Subheader.IXSOFL.SetInt(3)

	if _, err := r.RemoveDataExtensionSegment(1); err != nil {
		t.Fatalf("RemoveDataExtensionSegment: %v", err)
	}

	if n, _ := r.Header.NUMDES.Int(); n != 2 {
		t.Fatalf("NUMDES = %d, want 2", n)
	}
	if v, _ := r.Header.UDHOFL.Int(); v != 1 {
		t.Fatalf("UDHOFL = %d, want 1 (unchanged)", v)
	}
	if v, _ := r.Images[0].Subheader.IXSOFL.Int(); v != 2 {
		t.Fatalf("IXSOFL = %d, want 2 (renumbered)", v)
	}
}

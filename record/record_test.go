package record

import (
	"testing"

	"github.com/nitfgo/nitfgo/subheader"
)

func TestNewImageSegmentMaintainsCounts(t *testing.T) {
	r := New(subheader.V21)
	if _, err := r.NewImageSegment(); err != nil {
		t.Fatalf("NewImageSegment: %v", err)
	}
	if _, err := r.NewImageSegment(); err != nil {
		t.Fatalf("NewImageSegment: %v", err)
	}
	if n, _ := r.Header.NUMI.Int(); n != 2 {
		t.Errorf("NUMI = %d, want 2", n)
	}
	if len(r.Images) != 2 || len(r.Header.Images) != 2 {
		t.Errorf("Images/ComponentInfo length mismatch: %d/%d", len(r.Images), len(r.Header.Images))
	}
	if v, _ := r.Images[1].Subheader.IDLVL.Int(); v != 2 {
		t.Errorf("second image IDLVL = %d, want 2", v)
	}
}

func TestRemoveImageSegmentKeepsCountsConsistent(t *testing.T) {
	r := New(subheader.V21)
	_, _ = r.NewImageSegment()
	_, _ = r.NewImageSegment()
	_, _ = r.NewImageSegment()

	if _, err := r.RemoveImageSegment(1); err != nil {
		t.Fatalf("RemoveImageSegment: %v", err)
	}
	if n, _ := r.Header.NUMI.Int(); n != 2 {
		t.Errorf("NUMI after removal = %d, want 2", n)
	}
	if len(r.Images) != len(r.Header.Images) {
		t.Errorf("Images/ComponentInfo length diverged after removal")
	}
}

func TestMoveImageSegmentSwapsComponentInfo(t *testing.T) {
	r := New(subheader.V21)
	first, _ := r.NewImageSegment()
	second, _ := r.NewImageSegment()

	if err := r.MoveImageSegment(0, 1); err != nil {
		t.Fatalf("MoveImageSegment: %v", err)
	}
	if r.Images[0] != second || r.Images[1] != first {
		t.Errorf("MoveImageSegment did not swap segments")
	}
}

func TestNewLabelSegmentRejectedUnderV21(t *testing.T) {
	r := New(subheader.V21)
	if _, err := r.NewLabelSegment(); err != subheader.ErrUnsupportedByVersion {
		t.Fatalf("expected ErrUnsupportedByVersion, got %v", err)
	}
}

func TestNewLabelSegmentAllowedUnderV20(t *testing.T) {
	r := New(subheader.V20)
	if _, err := r.NewLabelSegment(); err != nil {
		t.Fatalf("unexpected error under V20: %v", err)
	}
}

func TestRemovalRenumbersOverflowIndexes(t *testing.T) {
	// Mirrors scenario S5: three DES, DES0 overflow of the file header's
	// UDHD, DES1 a plain (non-overflow) DES, DES2 overflow of image 0's
	// IXSHD. UDHOFL=1, IXSOFL=3. Removing the middle, non-overflow DES must
	// leave UDHOFL unchanged and renumber IXSOFL down to 2.
	r := New(subheader.V21)
	_, _ = r.NewImageSegment()

	des0 := subheader.NewOverflowDESubheader(subheader.V21, "UDHD", 0)
	des1 := subheader.NewDESubheader(subheader.V21, "XMLDATA")
	des2 := subheader.NewOverflowDESubheader(subheader.V21, "IXSHD", 1)
	r.DataExtensions = []*DESegment{{Subheader: des0}, {Subheader: des1}, {Subheader: des2}}
	r.Header.DataExtensions = []subheader.ComponentInfo{
		subheader.NewComponentInfo("dataExtension"),
		subheader.NewComponentInfo("dataExtension"),
		subheader.NewComponentInfo("dataExtension"),
	}
	_ = r.Header.NUMDES.SetInt(3)
	_ = r.Header.UDHOFL.SetInt(1)
	_ = r.Images[0].Subheader.IXSOFL.SetInt(3)

	if _, err := r.RemoveDataExtensionSegment(1); err != nil {
		t.Fatalf("RemoveDataExtensionSegment: %v", err)
	}

	if v, _ := r.Header.UDHOFL.Int(); v != 1 {
		t.Errorf("UDHOFL after removal = %d, want 1 (unchanged)", v)
	}
	if v, _ := r.Images[0].Subheader.IXSOFL.Int(); v != 2 {
		t.Errorf("IXSOFL after removal = %d, want 2", v)
	}
	if n, _ := r.Header.NUMDES.Int(); n != 2 {
		t.Errorf("NUMDES after removal = %d, want 2", n)
	}
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	r := New(subheader.V21)
	_, _ = r.NewImageSegment()
	_ = r.Images[0].Subheader.NROWS.SetInt(1024)

	c := r.Clone()
	_ = r.Images[0].Subheader.NROWS.SetInt(2048)

	if v, _ := c.Images[0].Subheader.NROWS.Int(); v != 1024 {
		t.Errorf("clone observed mutation of original: NROWS = %d, want 1024", v)
	}
	if c.Images[0] == r.Images[0] {
		t.Errorf("clone shares segment pointers with original")
	}
}

func TestVersionFromHeader(t *testing.T) {
	r := New(subheader.V21)
	if r.Version() != subheader.V21 {
		t.Errorf("Version() = %v, want V21", r.Version())
	}
}

func TestSetComplexityLevelIfUnsetSkipsWhenAlreadySet(t *testing.T) {
	r := New(subheader.V21)
	_ = r.Header.CLEVEL.SetString("05")
	called := false
	err := r.SetComplexityLevelIfUnset(func(*Record) (string, error) {
		called = true
		return "09", nil
	})
	if err != nil {
		t.Fatalf("SetComplexityLevelIfUnset: %v", err)
	}
	if called {
		t.Errorf("measure should not be invoked when CLEVEL is already set")
	}
	if r.Header.CLEVEL.String() != "5" && r.Header.CLEVEL.String() != "05" {
		t.Errorf("CLEVEL was overwritten: %q", r.Header.CLEVEL.String())
	}
}

func TestSetComplexityLevelIfUnsetFillsBlank(t *testing.T) {
	r := New(subheader.V21)
	err := r.SetComplexityLevelIfUnset(func(*Record) (string, error) {
		return "03", nil
	})
	if err != nil {
		t.Fatalf("SetComplexityLevelIfUnset: %v", err)
	}
	if r.Header.CLEVEL.String() != "3" && r.Header.CLEVEL.String() != "03" {
		t.Errorf("CLEVEL = %q, want 03", r.Header.CLEVEL.String())
	}
}

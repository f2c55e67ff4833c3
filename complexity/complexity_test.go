package complexity

import (
	"testing"

	"github.com/nitfgo/nitfgo/record"
	"github.com/nitfgo/nitfgo/subheader"
)

// buildImageRecord follows §8 scenario S1's literal field values, letting
// each test override what it needs to exercise a specific check.
func buildImageRecord(t *testing.T) (*record.Record, *record.ImageSegment) {
	t.Helper()
	r := record.New(subheader.V21)
	seg, err := r.NewImageSegment()
	if err != nil {
		t.Fatalf("NewImageSegment: %v", err)
	}
	set := func(f interface{ SetInt(int64) error }, v int64) {
		if err := f.SetInt(v); err != nil {
			t.Fatalf("SetInt(%d): %v", v, err)
		}
	}
	set(seg.Subheader.NROWS, 1024)
	set(seg.Subheader.NCOLS, 1024)
	set(seg.Subheader.NPPBH, 1024)
	set(seg.Subheader.NPPBV, 1024)
	set(seg.Subheader.NBANDS, 1)
	set(seg.Subheader.NBPP, 8)
	_ = seg.Subheader.IREP.SetString("MONO")
	_ = seg.Subheader.IMODE.SetString("B")
	_ = seg.Subheader.IC.SetString("NC")
	_ = seg.Subheader.ILOC.SetString("0000000000")
	set(r.Header.FL, 1048576)
	return r, seg
}

func TestMeasureSmallSingleImage(t *testing.T) {
	r, _ := buildImageRecord(t)
	level, err := Measure(r)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if level != Level03 {
		t.Errorf("Measure = %v, want 03", level)
	}
	if got := level.String(); got != "03" {
		t.Errorf("String = %q, want \"03\"", got)
	}
}

func TestMeasureBlockSizeRaisesLevel(t *testing.T) {
	r, seg := buildImageRecord(t)
	_ = seg.Subheader.NPPBH.SetInt(4096)
	_ = seg.Subheader.NPPBV.SetInt(4096)

	level, err := Measure(r)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if level != Level05 {
		t.Errorf("Measure = %v, want 05", level)
	}
}

func TestMeasureRectangularImageSizeChecksEachAxis(t *testing.T) {
	r, seg := buildImageRecord(t)
	// 4096x512: the product (2,097,152) is under 2048x2048 and would wrongly
	// pass as 03 if rows/cols were checked as a product rather than two
	// independent per-axis comparisons; NROWS alone exceeds 2048 so this
	// must raise to 05.
	_ = seg.Subheader.NROWS.SetInt(4096)
	_ = seg.Subheader.NCOLS.SetInt(512)

	level, err := Measure(r)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if level != Level05 {
		t.Errorf("Measure = %v, want 05 for a 4096x512 image", level)
	}
}

func TestMeasureRectangularBlockSizeChecksEachAxis(t *testing.T) {
	r, seg := buildImageRecord(t)
	_ = seg.Subheader.NPPBH.SetInt(4096)
	_ = seg.Subheader.NPPBV.SetInt(512)

	level, err := Measure(r)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if level != Level05 {
		t.Errorf("Measure = %v, want 05 for a 4096x512 block", level)
	}
}

func TestMeasureInvalidRGBForcesLevel09(t *testing.T) {
	r, seg := buildImageRecord(t)
	_ = seg.Subheader.IREP.SetString("RGB")
	_ = seg.Subheader.NBANDS.SetInt(4)

	level, err := Measure(r)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if level != Level09 {
		t.Errorf("Measure = %v, want 09", level)
	}
}

func TestMeasureUnrecognizedIREPDoesNotRaiseOrCap(t *testing.T) {
	r, seg := buildImageRecord(t)
	_ = seg.Subheader.IREP.SetString("NODISPLY")

	level, err := Measure(r)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if level != Level03 {
		t.Errorf("Measure = %v, want 03 (unrecognized IREP should not move the level)", level)
	}
}

func TestMeasureFailsOnUnreadableField(t *testing.T) {
	// NROWS/NCOLS and FL are all blank on a fresh record, so the first check
	// that reads one (the CCS extent check, on NROWS) must fail rather than
	// silently treat blank as zero.
	bare := record.New(subheader.V21)
	if _, err := bare.NewImageSegment(); err != nil {
		t.Fatalf("NewImageSegment: %v", err)
	}
	if _, err := Measure(bare); err == nil {
		t.Fatalf("Measure on a record with blank NROWS and FL: want error, got nil")
	}
}

func TestMeasureZeroBlockDimensionForces09(t *testing.T) {
	r, seg := buildImageRecord(t)
	_ = seg.Subheader.NPPBH.SetInt(0)

	level, err := Measure(r)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if level != Level09 {
		t.Errorf("Measure = %v, want 09 when NPPBH is 0", level)
	}
}

func TestGetPrefersAlreadySetCLEVEL(t *testing.T) {
	r, _ := buildImageRecord(t)
	if err := r.Header.CLEVEL.SetString("07"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	level, err := Get(r)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if level != Level07 {
		t.Errorf("Get = %v, want 07 (the already-set value, not a recomputation)", level)
	}
}

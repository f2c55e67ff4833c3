package subheader

import "testing"

func TestParseVersion(t *testing.T) {
	cases := []struct {
		fhdr, fver string
		want       Version
	}{
		{"NITF", "02.10", V21},
		{"NITF", "02.00", V20},
		{"NSIF", "01.00", V21},
		{"NITF", "99.99", Unknown},
		{"XXXX", "02.10", Unknown},
	}
	for _, c := range cases {
		if got := ParseVersion(c.fhdr, c.fver); got != c.want {
			t.Errorf("ParseVersion(%q,%q) = %v, want %v", c.fhdr, c.fver, got, c.want)
		}
	}
}

func TestVersionHasLabels(t *testing.T) {
	if !V20.HasLabels() {
		t.Fatalf("V20 must support labels")
	}
	if V21.HasLabels() {
		t.Fatalf("V21 must not support labels")
	}
}

func TestFileSecurityResizeIsLosslessUpward(t *testing.T) {
	s := NewFileSecurity(V20)
	if err := s.ClassificationAuthority().SetString("SOME AUTHORITY HERE"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	want := s.ClassificationAuthority().String()
	s.Resize(V21)
	if got := s.ClassificationAuthority().String(); got != want {
		t.Errorf("ClassificationAuthority after upward resize = %q, want %q", got, want)
	}
	if s.ClassificationAuthority().Width() != 40 {
		t.Errorf("width after resize to V21 = %d, want 40", s.ClassificationAuthority().Width())
	}
}

func TestFileSecurityResizeDownwardTruncates(t *testing.T) {
	s := NewFileSecurity(V21)
	long := "this authority string exceeds the v20 width of twenty chars"
	_ = s.ClassificationAuthority().SetString(long[:40])
	s.Resize(V20)
	if w := s.ClassificationAuthority().Width(); w != 20 {
		t.Errorf("width after downward resize = %d, want 20", w)
	}
	if len(s.ClassificationAuthority().String()) > 20 {
		t.Errorf("content not truncated to new width")
	}
}

func TestNewImageSubheaderMandatoryFields(t *testing.T) {
	s := NewImageSubheader(V21, 1)
	if s.IM.String() != "IM" {
		t.Errorf("IM = %q, want IM", s.IM.String())
	}
	if s.IC.String() != "NC" {
		t.Errorf("IC = %q, want NC", s.IC.String())
	}
	if v, _ := s.IDLVL.Int(); v != 1 {
		t.Errorf("IDLVL = %d, want 1", v)
	}
}

func TestNewLabelSubheaderRejectsV21(t *testing.T) {
	if _, err := NewLabelSubheader(V21, 1); err != ErrUnsupportedByVersion {
		t.Fatalf("expected ErrUnsupportedByVersion, got %v", err)
	}
	if _, err := NewLabelSubheader(V20, 1); err != nil {
		t.Fatalf("unexpected error under V20: %v", err)
	}
}

func TestOverflowDESubheader(t *testing.T) {
	s := NewOverflowDESubheader(V21, "UDHD", 3)
	if !s.IsOverflow() {
		t.Fatalf("expected IsOverflow true")
	}
	if s.DESOFLW.String() != "UDHD" {
		t.Errorf("DESOFLW = %q, want UDHD", s.DESOFLW.String())
	}
	if v, _ := s.DESITEM.Int(); v != 3 {
		t.Errorf("DESITEM = %d, want 3", v)
	}
}

func TestRegularDESubheaderIsNotOverflow(t *testing.T) {
	s := NewDESubheader(V21, "XMLDATA")
	if s.IsOverflow() {
		t.Fatalf("expected IsOverflow false for a non-overflow DES")
	}
}

func TestComponentInfoWidths(t *testing.T) {
	ci := NewComponentInfo("image")
	if ci.SubheaderLengthWidth != 6 || ci.DataLengthWidth != 10 {
		t.Errorf("image ComponentInfo widths = (%d,%d), want (6,10)", ci.SubheaderLengthWidth, ci.DataLengthWidth)
	}
}

package field

import (
	"errors"
	"testing"
)

func TestStringFieldRoundTrip(t *testing.T) {
	f := New("IREP", 8, String)
	if err := f.SetString("MONO"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	if got := f.String(); got != "MONO" {
		t.Fatalf("String() = %q, want MONO", got)
	}
	if string(f.Bytes()) != "MONO    " {
		t.Fatalf("Bytes() = %q, want left-justified, space-padded", f.Bytes())
	}
}

func TestStringFieldTooLong(t *testing.T) {
	f := New("IC", 2, String)
	if err := f.SetString("TOOLONG"); !errors.Is(err, ErrFieldLengthExceeded) {
		t.Fatalf("expected ErrFieldLengthExceeded, got %v", err)
	}
}

func TestIntegerFieldRoundTrip(t *testing.T) {
	f := New("NUMI", 3, Integer)
	if err := f.SetUint(7); err != nil {
		t.Fatalf("SetUint: %v", err)
	}
	if string(f.Bytes()) != "007" {
		t.Fatalf("Bytes() = %q, want 007", f.Bytes())
	}
	v, err := f.Uint()
	if err != nil || v != 7 {
		t.Fatalf("Uint() = %d, %v, want 7, nil", v, err)
	}
}

func TestIntegerFieldOverflow(t *testing.T) {
	f := New("NUMI", 3, Integer)
	if err := f.SetUint(1000); !errors.Is(err, ErrFieldLengthExceeded) {
		t.Fatalf("expected ErrFieldLengthExceeded, got %v", err)
	}
}

func TestIntegerFieldBlankIsParseError(t *testing.T) {
	f := New("UDHOFL", 3, Integer)
	if !f.Blank() {
		t.Fatalf("fresh field should be blank")
	}
	f.reset()
	if _, err := f.Int(); err == nil {
		t.Fatalf("expected parse error on blank field")
	}
	// UDHOFL=0 is a real, meaningful value ("no overflow"), distinct from blank.
	if err := f.SetUint(0); err != nil {
		t.Fatalf("SetUint(0): %v", err)
	}
	v, err := f.Uint()
	if err != nil || v != 0 {
		t.Fatalf("Uint() after SetUint(0) = %d, %v", v, err)
	}
}

func TestRealFieldRoundTrip(t *testing.T) {
	f := New("ANGLE", 8, Real)
	if err := f.SetReal(12.5, 3); err != nil {
		t.Fatalf("SetReal: %v", err)
	}
	v, err := f.Real()
	if err != nil || v != 12.5 {
		t.Fatalf("Real() = %v, %v, want 12.5", v, err)
	}
}

func TestSetBytesWidthMismatch(t *testing.T) {
	f := New("ENCRYP", 1, String)
	if err := f.SetBytes([]byte("ab")); !errors.Is(err, ErrFieldLengthExceeded) {
		t.Fatalf("expected ErrFieldLengthExceeded, got %v", err)
	}
}

func TestCloneIndependence(t *testing.T) {
	f := New("DESTAG", 6, String)
	_ = f.SetString("FOO")
	cp := f.Clone()
	_ = f.SetString("BAR")
	if cp.String() != "FOO" {
		t.Fatalf("clone mutated by original: %q", cp.String())
	}
	if !f.Equal(f.Clone()) {
		t.Fatalf("field should equal its own clone")
	}
	if f.Equal(cp) {
		t.Fatalf("diverged fields should not be equal")
	}
}

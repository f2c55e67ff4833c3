package tre

import (
	"testing"

	"github.com/nitfgo/nitfgo/field"
)

func TestCreateFallsBackToDefaultHandler(t *testing.T) {
	tre, err := Create("ACFTB", "", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, ok := tre.Handler().(*DefaultHandler); !ok {
		t.Fatalf("expected default handler when resolver is nil")
	}
}

func TestCreateTagTooLong(t *testing.T) {
	if _, err := Create("TOOLONGTAG", "", nil); err == nil {
		t.Fatalf("expected ErrTagTooLong")
	}
}

func TestDefaultHandlerSetGetField(t *testing.T) {
	tre, _ := Create("FOOBAR", "", nil)
	if err := tre.SetField("", []byte("hello")); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	f, ok := tre.GetField("RAW")
	if !ok {
		t.Fatalf("expected RAW field to exist")
	}
	if f.String() != "hello" {
		t.Fatalf("got %q want hello", f.String())
	}
	sz, err := tre.Size()
	if err != nil || sz != 5 {
		t.Fatalf("Size() = %d, %v, want 5", sz, err)
	}
}

func TestSerializeParseRoundTrip(t *testing.T) {
	tre, _ := Create("ABCDEF", "", nil)
	_ = tre.SetField("", []byte("payload-bytes"))

	wire, err := tre.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if len(wire) != 11+len("payload-bytes") {
		t.Fatalf("wire length = %d", len(wire))
	}
	if string(wire[:6]) != "ABCDEF" {
		t.Fatalf("tag mismatch: %q", wire[:6])
	}
	if string(wire[6:11]) != "00013" {
		t.Fatalf("length mismatch: %q", wire[6:11])
	}

	parsed, err := Parse("ABCDEF", "", wire[11:], len("payload-bytes"), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !tre.Equal(parsed) {
		t.Fatalf("round trip mismatch")
	}
}

func TestCloneIndependence(t *testing.T) {
	tre, _ := Create("ABCDEF", "", nil)
	_ = tre.SetField("", []byte("original"))
	cp := tre.Clone()
	_ = tre.SetField("", []byte("mutated!"))
	f, _ := cp.GetField("RAW")
	if f.String() != "original" {
		t.Fatalf("clone mutated by original: %q", f.String())
	}
}

func TestExtensionsOverflowSplit(t *testing.T) {
	ext := NewExtensions()
	for i := 0; i < 3; i++ {
		tr, _ := Create("ABCDEF", "", nil)
		_ = tr.SetField("", []byte("0123456789"))
		ext.Append(tr)
	}
	if ext.Len() != 3 {
		t.Fatalf("expected 3 TREs, got %d", ext.Len())
	}
	moved := ext.TakeFrom(1)
	if len(moved) != 2 || ext.Len() != 1 {
		t.Fatalf("TakeFrom split incorrectly: kept=%d moved=%d", ext.Len(), len(moved))
	}
}

type stubResolver struct {
	ctor Constructor
}

func (s stubResolver) Lookup(tagName string) (Constructor, bool) {
	if tagName == "CUSTOM" {
		return s.ctor, true
	}
	return nil, false
}

type stubHandler struct{ n int }

func (s *stubHandler) Parse(in []byte, declaredLen int) error { s.n = declaredLen; return nil }
func (s *stubHandler) Serialize() ([]byte, error)             { return make([]byte, s.n), nil }
func (s *stubHandler) Size() (uint32, error)                  { return uint32(s.n), nil }
func (s *stubHandler) SetField(string, []byte) error          { return nil }
func (s *stubHandler) GetField(string) (*field.Field, bool)   { return nil, false }
func (s *stubHandler) Exists(string) bool                     { return false }
func (s *stubHandler) Find(string) []NamedField               { return nil }
func (s *stubHandler) Enumerate() []NamedField                 { return nil }
func (s *stubHandler) Clone() Handler                          { return &stubHandler{n: s.n} }

func TestResolverOverride(t *testing.T) {
	r := stubResolver{ctor: func(tagName, id string) (Handler, error) { return &stubHandler{}, nil }}
	tre, err := Create("CUSTOM", "", r)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, ok := tre.Handler().(*stubHandler); !ok {
		t.Fatalf("expected resolver's handler to be used")
	}
}

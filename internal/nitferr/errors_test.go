package nitferr

import (
	"errors"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	e := New(KindParse, "bad numeric field")
	if e.Error() != "bad numeric field" {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	wrapped := Wrap(KindInvalidOverflow, "unmerge failed", errors.New("bad DESITEM"))
	if wrapped.Error() != "unmerge failed: bad DESITEM" {
		t.Fatalf("unexpected wrapped message: %s", wrapped.Error())
	}
	if wrapped.Unwrap().Error() != "bad DESITEM" {
		t.Fatalf("Unwrap did not return cause")
	}
}

func TestIs(t *testing.T) {
	base := errors.New("root cause")
	mid := Wrap(KindOpeningFile, "open plugin dir", base)
	outer := Wrap(KindLoadingDLL, "load plugin", mid)

	if !Is(outer, KindLoadingDLL) {
		t.Fatalf("expected outer kind match")
	}
	if !Is(outer, KindOpeningFile) {
		t.Fatalf("expected Is to unwrap to inner *Error kind")
	}
	if Is(outer, KindParse) {
		t.Fatalf("did not expect KindParse match")
	}
}

func TestKindString(t *testing.T) {
	if KindHandlerRejected.String() != "handler_rejected" {
		t.Fatalf("unexpected kind string: %s", KindHandlerRejected.String())
	}
}

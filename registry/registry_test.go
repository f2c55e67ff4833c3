package registry

import (
	"testing"

	"github.com/nitfgo/nitfgo/tre"
)

func stubCtor(tag, id string) (tre.Handler, error) {
	return tre.NewDefaultHandler(tag, id)
}

func TestRetrieveMissingIsNotFatal(t *testing.T) {
	r := newTestRegistry()
	if _, ok := r.RetrieveTREHandler("ZZZZZZ"); ok {
		t.Fatalf("expected miss for unregistered tag")
	}
}

func TestRegisterAndRetrieveTREHandler(t *testing.T) {
	r := newTestRegistry()
	r.RegisterTREHandler([]string{"FOO"}, stubCtor)
	ctor, ok := r.RetrieveTREHandler("FOO")
	if !ok || ctor == nil {
		t.Fatalf("expected registered handler to be retrievable")
	}
	if !r.TREHandlerExists("FOO") {
		t.Fatalf("TREHandlerExists should report true")
	}
}

func TestProgrammaticOverridesFileLoaded(t *testing.T) {
	r := newTestRegistry()
	// Simulate a file-loaded registration directly (bypassing the loader).
	r.setTREHandlerLocked("FOO", stubCtor, false)
	overrideCalled := func(tag, id string) (tre.Handler, error) { return tre.NewDefaultHandler(tag, id) }
	r.RegisterTREHandler([]string{"FOO"}, overrideCalled)

	entry, ok := r.treHandlers["FOO"]
	if !ok || !entry.programmatic {
		t.Fatalf("expected programmatic registration to win")
	}
}

func TestFileLoadedDoesNotOverrideProgrammatic(t *testing.T) {
	r := newTestRegistry()
	r.RegisterTREHandler([]string{"FOO"}, stubCtor)
	r.setTREHandlerLocked("FOO", stubCtor, false)

	entry := r.treHandlers["FOO"]
	if !entry.programmatic {
		t.Fatalf("file-loaded registration must not override programmatic")
	}
}

func TestCompressionRetrievalIsFatalOnMiss(t *testing.T) {
	r := newTestRegistry()
	if _, err := r.RetrieveCompConstructor("C8"); err == nil {
		t.Fatalf("expected error on missing compression handler")
	}
}

func TestNormalizeIdentifierReplacesSpaces(t *testing.T) {
	if got := normalizeIdentifier("NITF TRE"); got != "NITF_TRE" {
		t.Fatalf("normalizeIdentifier = %q, want NITF_TRE", got)
	}
}

func TestGetInstanceSingleton(t *testing.T) {
	a := GetInstance()
	b := GetInstance()
	if a != b {
		t.Fatalf("GetInstance should return the same singleton instance")
	}
}

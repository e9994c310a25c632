package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	e := &Error{
		Phase:  PhaseLookup,
		Kind:   KindNotFound,
		Symbol: "android/content/Intent",
		Detail: "class not found",
	}
	s := e.Error()
	for _, want := range []string{"[lookup]", "not_found", "android/content/Intent", "class not found"} {
		if !strings.Contains(s, want) {
			t.Fatalf("error string %q missing %q", s, want)
		}
	}
}

func TestErrorStringWithCause(t *testing.T) {
	cause := stderrors.New("transport torn down")
	e := Wrap(PhaseCall, KindHostFault, cause, "invocation failed")
	if !strings.Contains(e.Error(), "caused by: transport torn down") {
		t.Fatalf("error string %q missing cause", e.Error())
	}
}

func TestIsMatchesPhaseAndKind(t *testing.T) {
	err := FatalInit("java/lang/NoSuchMethodError", nil)

	if !stderrors.Is(err, &Error{Phase: PhaseInit, Kind: KindFatalInit}) {
		t.Fatal("expected match on phase and kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseCall, Kind: KindFatalInit}) {
		t.Fatal("matched despite differing phase")
	}
	if stderrors.Is(err, &Error{Phase: PhaseInit, Kind: KindNotFound}) {
		t.Fatal("matched despite differing kind")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(PhaseDispatch, KindHostFault, cause, "delivery failed")
	if !stderrors.Is(err, cause) {
		t.Fatal("expected unwrap to reach the cause")
	}
}

func TestConstructors(t *testing.T) {
	if e := NotFound(PhaseLookup, "class", "a/B"); e.Kind != KindNotFound || e.Symbol != "a/B" {
		t.Fatalf("unexpected error: %+v", e)
	}
	if e := BadSignature(PhaseCall, "bogus"); e.Kind != KindBadSignature || !strings.Contains(e.Detail, "bogus") {
		t.Fatalf("unexpected error: %+v", e)
	}
	if e := TypeMismatch(PhaseCall, "x", "have int"); e.Kind != KindTypeMismatch {
		t.Fatalf("unexpected error: %+v", e)
	}
	if e := InvalidInput(PhaseChannel, "empty id"); e.Kind != KindInvalidInput {
		t.Fatalf("unexpected error: %+v", e)
	}
}

// Package errors provides the structured error types used throughout the
// library. Errors carry the phase in which they occurred and a kind, so
// callers can match with errors.Is without string comparison.
package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseInit     Phase = "init"     // environment construction
	PhaseLookup   Phase = "lookup"   // class/field/method resolution
	PhaseCall     Phase = "call"     // cross-boundary invocation
	PhaseResource Phase = "resource" // resource identifier lookup
	PhaseChannel  Phase = "channel"  // notification channel registration
	PhaseBuild    Phase = "build"    // notification finalization
	PhaseDispatch Phase = "dispatch" // notification delivery
)

// Kind categorizes the error
type Kind string

const (
	KindFatalInit    Kind = "fatal_init"
	KindNotFound     Kind = "not_found"
	KindTypeMismatch Kind = "type_mismatch"
	KindBadSignature Kind = "bad_signature"
	KindHostFault    Kind = "host_fault"
	KindInvalidInput Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Symbol string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Symbol != "" {
		b.WriteString(" at ")
		b.WriteString(e.Symbol)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// FatalInit reports that a foundational symbol could not be resolved at
// setup. The facility that raised it is unusable.
func FatalInit(symbol string, cause error) *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindFatalInit,
		Symbol: symbol,
		Detail: "foundational symbol unavailable",
		Cause:  cause,
	}
}

// NotFound creates a not-found error for a symbol whose absence was not
// expected at the call site.
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Symbol: name,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, symbol, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Symbol: symbol,
		Detail: detail,
	}
}

// BadSignature creates an error for a malformed type-signature string
func BadSignature(phase Phase, sig string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBadSignature,
		Detail: fmt.Sprintf("malformed signature %q", sig),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

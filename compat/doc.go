// Package compat wraps a raw droidbridge.Env with the capability probe that
// makes version-dependent host surfaces safe to call.
//
// # Probe Outcome
//
// Every probed call has a three-way outcome expressed as (value, ok, err):
//
//	value, true, nil    the symbol exists and the call succeeded
//	zero, false, nil    the symbol does not exist on this host release
//	zero, false, err    the call failed for a real reason
//
// Only the middle leg drives fallback logic. A real failure always
// propagates, carrying the original host exception object when there was
// one (see HostException).
//
// # Pending-Fault Protocol
//
// The host signals a missing symbol with an exception that poisons the
// execution context until cleared. The probe fetches the pending exception,
// clears the slot unconditionally, and classifies the exception against the
// ignore set for the call kind. Code built on this package never observes a
// pending fault.
//
// # Ignore Sets
//
// Each call kind has a fixed ignore set:
//
//	class lookup           ClassNotFoundException, NoClassDefFoundError
//	field access           NoSuchFieldException, NoSuchFieldError
//	method call, construction  NoSuchMethodException, NoSuchMethodError
//
// Matching is an instance-of test, not exact-type equality, since the host
// may subclass these types.
package compat

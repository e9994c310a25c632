package compat

import (
	stderrors "errors"

	"go.uber.org/zap"

	bridge "github.com/hostbind/droid-bridge"
)

// HostException carries a host exception that did not match the probe's
// ignore set. The pending-fault slot has already been cleared; the original
// exception object is preserved here for the ultimate caller.
type HostException struct {
	Throwable bridge.Object
}

func (e *HostException) Error() string {
	return "unhandled host exception"
}

// classify resolves the outcome of a failed raw call. When the failure is a
// pending host exception, the slot is cleared unconditionally before
// anything else happens; the context must be clean before the next boundary
// call no matter how classification goes. Returns absent=true when the
// exception is an instance of an ignore-set entry.
func (e *Env) classify(err error, ignore ...bridge.Class) (bool, error) {
	if !stderrors.Is(err, bridge.ErrExceptionPending) {
		// Malformed signature, type mismatch or transport fault. The
		// pending-fault slot was never set; leave it alone.
		return false, err
	}

	ex, exErr := e.raw.ExceptionOccurred()
	e.raw.ExceptionClear()
	if exErr != nil {
		return false, exErr
	}

	for _, cls := range ignore {
		ok, instErr := e.raw.IsInstanceOf(ex, cls)
		if instErr != nil {
			return false, instErr
		}
		if ok {
			return true, nil
		}
	}

	return false, &HostException{Throwable: ex}
}

// tryDo converts a raw call result into the probe's three-way outcome.
func tryDo[T any](e *Env, val T, err error, ignore ...bridge.Class) (T, bool, error) {
	if err == nil {
		return val, true, nil
	}

	var zero T
	absent, err := e.classify(err, ignore...)
	if absent {
		return zero, false, nil
	}
	return zero, false, err
}

// TryFindClass probes for a class by fully-qualified name.
func (e *Env) TryFindClass(name string) (bridge.Class, bool, error) {
	cls, err := e.raw.FindClass(name)
	res, ok, err := tryDo(e, cls, err, e.classNotFoundEx, e.noClassDefErr)
	if !ok && err == nil {
		Logger().Debug("class absent on this host release", zap.String("class", name))
	}
	return res, ok, err
}

// TryGetField probes an instance field.
func (e *Env) TryGetField(obj bridge.Object, name, sig string) (bridge.Value, bool, error) {
	v, err := e.raw.GetField(obj, name, sig)
	return tryDo(e, v, err, e.noSuchFieldEx, e.noSuchFieldErr)
}

// TryGetStaticField probes a static field.
func (e *Env) TryGetStaticField(cls bridge.Class, name, sig string) (bridge.Value, bool, error) {
	v, err := e.raw.GetStaticField(cls, name, sig)
	res, ok, err := tryDo(e, v, err, e.noSuchFieldEx, e.noSuchFieldErr)
	if !ok && err == nil {
		Logger().Debug("field absent on this host release", zap.String("field", name))
	}
	return res, ok, err
}

// TryCallMethod probes an instance method invocation.
func (e *Env) TryCallMethod(obj bridge.Object, name, sig string, args ...bridge.Value) (bridge.Value, bool, error) {
	v, err := e.raw.CallMethod(obj, name, sig, args...)
	return tryDo(e, v, err, e.noSuchMethodEx, e.noSuchMethodErr)
}

// TryCallStaticMethod probes a static method invocation.
func (e *Env) TryCallStaticMethod(cls bridge.Class, name, sig string, args ...bridge.Value) (bridge.Value, bool, error) {
	v, err := e.raw.CallStaticMethod(cls, name, sig, args...)
	return tryDo(e, v, err, e.noSuchMethodEx, e.noSuchMethodErr)
}

// TryNewObject probes a constructor invocation.
func (e *Env) TryNewObject(cls bridge.Class, ctorSig string, args ...bridge.Value) (bridge.Object, bool, error) {
	obj, err := e.raw.NewObject(cls, ctorSig, args...)
	return tryDo(e, obj, err, e.noSuchMethodEx, e.noSuchMethodErr)
}

package compat

import (
	bridge "github.com/hostbind/droid-bridge"
	"github.com/hostbind/droid-bridge/errors"
)

// The six throwable types the host uses to signal a missing symbol. These
// are foundational runtime types and must resolve on every host release.
const (
	classNotFoundException = "java/lang/ClassNotFoundException"
	noSuchFieldException   = "java/lang/NoSuchFieldException"
	noSuchMethodException  = "java/lang/NoSuchMethodException"
	noClassDefFoundError   = "java/lang/NoClassDefFoundError"
	noSuchFieldError       = "java/lang/NoSuchFieldError"
	noSuchMethodError      = "java/lang/NoSuchMethodError"
)

// Env wraps a raw environment with the capability probe. It is bound to the
// thread that attached the underlying context and must not be shared.
type Env struct {
	raw     bridge.Env
	context bridge.Object

	classNotFoundEx bridge.Class
	noClassDefErr   bridge.Class
	noSuchFieldEx   bridge.Class
	noSuchFieldErr  bridge.Class
	noSuchMethodEx  bridge.Class
	noSuchMethodErr bridge.Class
}

// New wraps raw, resolving the missing-symbol signal types once. context is
// the calling application's root object. Failure to resolve any signal type
// is fatal: correct fault classification is impossible without them.
func New(raw bridge.Env, context bridge.Object) (*Env, error) {
	e := &Env{raw: raw, context: context}

	for _, s := range []struct {
		name string
		dst  *bridge.Class
	}{
		{classNotFoundException, &e.classNotFoundEx},
		{noSuchFieldException, &e.noSuchFieldEx},
		{noSuchMethodException, &e.noSuchMethodEx},
		{noClassDefFoundError, &e.noClassDefErr},
		{noSuchFieldError, &e.noSuchFieldErr},
		{noSuchMethodError, &e.noSuchMethodErr},
	} {
		cls, err := raw.FindClass(s.name)
		if err != nil {
			raw.ExceptionClear()
			return nil, errors.FatalInit(s.name, err)
		}
		*s.dst = cls
	}

	return e, nil
}

// Raw exposes the underlying environment.
func (e *Env) Raw() bridge.Env { return e.raw }

// Context returns the calling application's root object.
func (e *Env) Context() bridge.Object { return e.context }

// Unprobed pass-throughs for call sites where absence is not expected.

func (e *Env) FindClass(name string) (bridge.Class, error) {
	return e.raw.FindClass(name)
}

func (e *Env) GetField(obj bridge.Object, name, sig string) (bridge.Value, error) {
	return e.raw.GetField(obj, name, sig)
}

func (e *Env) GetStaticField(cls bridge.Class, name, sig string) (bridge.Value, error) {
	return e.raw.GetStaticField(cls, name, sig)
}

func (e *Env) CallMethod(obj bridge.Object, name, sig string, args ...bridge.Value) (bridge.Value, error) {
	return e.raw.CallMethod(obj, name, sig, args...)
}

func (e *Env) CallStaticMethod(cls bridge.Class, name, sig string, args ...bridge.Value) (bridge.Value, error) {
	return e.raw.CallStaticMethod(cls, name, sig, args...)
}

func (e *Env) NewObject(cls bridge.Class, ctorSig string, args ...bridge.Value) (bridge.Object, error) {
	return e.raw.NewObject(cls, ctorSig, args...)
}

func (e *Env) NewString(s string) (bridge.Object, error) {
	return e.raw.NewString(s)
}

func (e *Env) GetObjectClass(obj bridge.Object) (bridge.Class, error) {
	return e.raw.GetObjectClass(obj)
}

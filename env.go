package droidbridge

import (
	"errors"
	"fmt"
)

// ErrExceptionPending is returned by a raw Env call when the host raised an
// exception. The exception object sits in the context's pending-fault slot
// and must be fetched and cleared before any further call on the same Env.
var ErrExceptionPending = errors.New("droidbridge: host exception pending")

// ErrTypeMismatch is wrapped by Value accessor errors when a value is read
// as the wrong kind.
var ErrTypeMismatch = errors.New("droidbridge: value type mismatch")

// Object is an opaque reference to a host-side object. The nil Object is the
// null reference.
type Object any

// Class is an opaque reference to a host-side class.
type Class any

// Env is the reflective call surface exposed by the host runtime.
//
// Signatures use the host's string-based type-signature notation and must
// match exactly. A call that trips a host exception returns
// ErrExceptionPending; a malformed signature fails directly without touching
// the pending-fault slot.
//
// Implementations are bound to a single thread and are not safe for
// concurrent use.
type Env interface {
	FindClass(name string) (Class, error)
	GetField(obj Object, name, sig string) (Value, error)
	GetStaticField(cls Class, name, sig string) (Value, error)
	CallMethod(obj Object, name, sig string, args ...Value) (Value, error)
	CallStaticMethod(cls Class, name, sig string, args ...Value) (Value, error)
	NewObject(cls Class, ctorSig string, args ...Value) (Object, error)
	NewString(s string) (Object, error)
	GetObjectClass(obj Object) (Class, error)
	IsInstanceOf(obj Object, cls Class) (bool, error)

	// ExceptionOccurred returns the pending exception object without
	// clearing it. It may be called while a fault is pending.
	ExceptionOccurred() (Object, error)

	// ExceptionClear empties the pending-fault slot. It is a no-op when no
	// fault is pending.
	ExceptionClear()

	// Throw places ex into the pending-fault slot.
	Throw(ex Object) error
}

// ValueKind discriminates the variants of Value.
type ValueKind uint8

const (
	KindVoid ValueKind = iota
	KindInt
	KindBool
	KindObject
)

func (k ValueKind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a tagged union over the argument and result types crossing the
// host boundary.
type Value struct {
	obj  Object
	i    int32
	b    bool
	kind ValueKind
}

// Void is the result of a void call.
func Void() Value { return Value{kind: KindVoid} }

// Int wraps a 32-bit host integer.
func Int(v int32) Value { return Value{kind: KindInt, i: v} }

// Bool wraps a host boolean.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Obj wraps an object reference. A nil reference is a valid null argument.
func Obj(o Object) Value { return Value{kind: KindObject, obj: o} }

// ClassObj wraps a class reference as an object argument, for call sites
// that pass a class where the host expects an object.
func ClassObj(c Class) Value { return Value{kind: KindObject, obj: Object(c)} }

// Kind returns the variant of v.
func (v Value) Kind() ValueKind { return v.kind }

// Int reads v as a 32-bit integer.
func (v Value) Int() (int32, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("%w: have %s, want int", ErrTypeMismatch, v.kind)
	}
	return v.i, nil
}

// Bool reads v as a boolean.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, fmt.Errorf("%w: have %s, want bool", ErrTypeMismatch, v.kind)
	}
	return v.b, nil
}

// Object reads v as an object reference.
func (v Value) Object() (Object, error) {
	if v.kind != KindObject {
		return nil, fmt.Errorf("%w: have %s, want object", ErrTypeMismatch, v.kind)
	}
	return v.obj, nil
}

package droidbridge

import (
	"errors"
	"testing"
)

func TestValueAccessors(t *testing.T) {
	v := Int(42)
	if v.Kind() != KindInt {
		t.Fatalf("got kind %s, want int", v.Kind())
	}
	n, err := v.Int()
	if err != nil || n != 42 {
		t.Fatalf("Int() = %d, %v", n, err)
	}

	b, err := Bool(true).Bool()
	if err != nil || !b {
		t.Fatalf("Bool() = %v, %v", b, err)
	}

	type ref struct{ name string }
	o := &ref{name: "x"}
	got, err := Obj(o).Object()
	if err != nil {
		t.Fatalf("Object() failed: %v", err)
	}
	if got != Object(o) {
		t.Fatal("object identity not preserved")
	}

	if Void().Kind() != KindVoid {
		t.Fatal("expected void kind")
	}
}

func TestValueNullReference(t *testing.T) {
	o, err := Obj(nil).Object()
	if err != nil {
		t.Fatalf("Object() failed: %v", err)
	}
	if o != nil {
		t.Fatal("expected null reference")
	}
}

func TestValueTypeMismatch(t *testing.T) {
	if _, err := Int(1).Bool(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v, want type mismatch", err)
	}
	if _, err := Bool(true).Int(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v, want type mismatch", err)
	}
	if _, err := Void().Object(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v, want type mismatch", err)
	}
}

func TestValueKindString(t *testing.T) {
	for k, want := range map[ValueKind]string{
		KindVoid:   "void",
		KindInt:    "int",
		KindBool:   "bool",
		KindObject: "object",
	} {
		if got := k.String(); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}

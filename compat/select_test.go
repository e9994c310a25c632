package compat

import (
	stderrors "errors"
	"testing"
)

func TestSelect_RichWins(t *testing.T) {
	baseCalls := 0
	v, err := Select(
		func() (string, bool, error) { return "rich", true, nil },
		func() (string, error) { baseCalls++; return "base", nil },
	)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if v != "rich" {
		t.Fatalf("got %q, want %q", v, "rich")
	}
	if baseCalls != 0 {
		t.Fatalf("base ran %d times, want 0", baseCalls)
	}
}

func TestSelect_FallsBackOnAbsent(t *testing.T) {
	baseCalls := 0
	v, err := Select(
		func() (string, bool, error) { return "", false, nil },
		func() (string, error) { baseCalls++; return "base", nil },
	)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if v != "base" {
		t.Fatalf("got %q, want %q", v, "base")
	}
	if baseCalls != 1 {
		t.Fatalf("base ran %d times, want exactly 1", baseCalls)
	}
}

func TestSelect_FailurePropagatesWithoutFallback(t *testing.T) {
	boom := stderrors.New("host rejected the call")
	baseCalls := 0
	_, err := Select(
		func() (string, bool, error) { return "", false, boom },
		func() (string, error) { baseCalls++; return "base", nil },
	)
	if !stderrors.Is(err, boom) {
		t.Fatalf("got %v, want %v", err, boom)
	}
	if baseCalls != 0 {
		t.Fatal("base must not run when the rich strategy fails")
	}
}

func TestSelect_BaseErrorPropagates(t *testing.T) {
	boom := stderrors.New("plain strategy failed too")
	_, err := Select(
		func() (int, bool, error) { return 0, false, nil },
		func() (int, error) { return 0, boom },
	)
	if !stderrors.Is(err, boom) {
		t.Fatalf("got %v, want %v", err, boom)
	}
}

package resources

import (
	"errors"
	"testing"

	"github.com/hostbind/droid-bridge/compat"
	"github.com/hostbind/droid-bridge/hostsim"
)

func newManager(t *testing.T, profile *hostsim.Profile) (*hostsim.Device, *Manager) {
	t.Helper()
	device := hostsim.NewDevice(profile)
	env, err := compat.New(device, device.Context())
	if err != nil {
		t.Fatalf("compat.New failed: %v", err)
	}
	m, err := NewManager(env)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return device, m
}

func testProfile() *hostsim.Profile {
	return &hostsim.Profile{
		APILevel: 30,
		Package:  "com.test",
		Resources: []hostsim.ProfileResource{
			{Name: "icon_a", Kind: KindDrawable, ID: 7},
			{Name: "icon_a", Kind: KindMipmap, ID: 9},
			{Name: "icon_b", Kind: KindMipmap, ID: 12},
		},
	}
}

func TestID_Lookup(t *testing.T) {
	_, m := newManager(t, testProfile())

	id, err := m.ID("icon_a", KindDrawable)
	if err != nil {
		t.Fatalf("ID failed: %v", err)
	}
	if id != 7 {
		t.Fatalf("got id %d, want 7", id)
	}

	id, err = m.ID("icon_b", KindMipmap)
	if err != nil {
		t.Fatalf("ID failed: %v", err)
	}
	if id != 12 {
		t.Fatalf("got id %d, want 12", id)
	}
}

func TestID_CachedByNameAlone(t *testing.T) {
	// The cache key is the bare name. Asking for the same name under a
	// different kind returns whatever the first lookup resolved.
	device, m := newManager(t, testProfile())

	first, err := m.ID("icon_a", KindDrawable)
	if err != nil {
		t.Fatalf("ID failed: %v", err)
	}
	if first != 7 {
		t.Fatalf("got id %d, want 7", first)
	}

	second, err := m.ID("icon_a", KindMipmap)
	if err != nil {
		t.Fatalf("ID failed: %v", err)
	}
	if second != first {
		t.Fatalf("second kind bypassed the cache: got %d, want %d", second, first)
	}
	if n := device.CallCount("getIdentifier"); n != 1 {
		t.Fatalf("host lookup ran %d times, want 1", n)
	}
}

func TestID_UnknownNameResolvesZero(t *testing.T) {
	device, m := newManager(t, testProfile())

	id, err := m.ID("no_such_icon", KindDrawable)
	if err != nil {
		t.Fatalf("ID failed: %v", err)
	}
	if id != 0 {
		t.Fatalf("got id %d, want 0", id)
	}

	// Zero is a successful resolution and is cached like any other.
	if _, err := m.ID("no_such_icon", KindDrawable); err != nil {
		t.Fatalf("ID failed: %v", err)
	}
	if n := device.CallCount("getIdentifier"); n != 1 {
		t.Fatalf("host lookup ran %d times, want 1", n)
	}
}

func TestID_FailureNotCached(t *testing.T) {
	device, m := newManager(t, testProfile())

	boom := errors.New("host hiccup")
	device.FailNextCall(boom)

	if _, err := m.ID("icon_a", KindDrawable); !errors.Is(err, boom) {
		t.Fatalf("expected injected failure, got %v", err)
	}

	// The failed lookup left no cache entry; a retry reaches the host.
	id, err := m.ID("icon_a", KindDrawable)
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if id != 7 {
		t.Fatalf("got id %d, want 7", id)
	}
}

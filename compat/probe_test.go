package compat

import (
	stderrors "errors"
	"testing"

	bridge "github.com/hostbind/droid-bridge"
	bridgeerrors "github.com/hostbind/droid-bridge/errors"
	"github.com/hostbind/droid-bridge/hostsim"
)

func newEnv(t *testing.T, api int32) (*hostsim.Device, *Env) {
	t.Helper()
	device := hostsim.NewDevice(&hostsim.Profile{APILevel: api, Package: "com.test"})
	env, err := New(device, device.Context())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return device, env
}

func TestNew_ResolvesSignalTypes(t *testing.T) {
	_, env := newEnv(t, 30)
	if env.Context() == nil {
		t.Fatal("expected non-nil context")
	}
}

func TestNew_FatalInitOnTransportFault(t *testing.T) {
	device := hostsim.NewDevice(&hostsim.Profile{APILevel: 30, Package: "com.test"})
	device.FailNextCall(stderrors.New("context detached"))

	_, err := New(device, device.Context())
	if err == nil {
		t.Fatal("expected error")
	}
	want := &bridgeerrors.Error{Phase: bridgeerrors.PhaseInit, Kind: bridgeerrors.KindFatalInit}
	if !stderrors.Is(err, want) {
		t.Fatalf("expected fatal init error, got %v", err)
	}
}

func TestTryFindClass_Success(t *testing.T) {
	device, env := newEnv(t, 30)

	cls, ok, err := env.TryFindClass("android/content/Intent")
	if err != nil {
		t.Fatalf("TryFindClass failed: %v", err)
	}
	if !ok {
		t.Fatal("expected class to be found")
	}
	if cls == nil {
		t.Fatal("expected non-nil class")
	}
	if device.FaultPending() {
		t.Fatal("fault pending after successful probe")
	}
}

func TestTryFindClass_AbsentOnOldRelease(t *testing.T) {
	device, env := newEnv(t, 25)

	_, ok, err := env.TryFindClass("android/app/NotificationChannel")
	if err != nil {
		t.Fatalf("expected absent, got error: %v", err)
	}
	if ok {
		t.Fatal("NotificationChannel should be absent on api 25")
	}
	if device.FaultPending() {
		t.Fatal("fault left pending after absent classification")
	}
}

func TestTryFindClass_AbsentUnknownName(t *testing.T) {
	device, env := newEnv(t, 30)

	_, ok, err := env.TryFindClass("does/not/Exist")
	if err != nil || ok {
		t.Fatalf("expected (absent, nil), got ok=%v err=%v", ok, err)
	}
	if device.FaultPending() {
		t.Fatal("fault left pending")
	}
}

func TestTryGetStaticField_AbsentConstant(t *testing.T) {
	device, env := newEnv(t, 25)

	codes, ok, err := env.TryFindClass("android/os/Build$VERSION_CODES")
	if err != nil || !ok {
		t.Fatalf("VERSION_CODES should exist on api 25: ok=%v err=%v", ok, err)
	}

	_, ok, err = env.TryGetStaticField(codes, "O", "I")
	if err != nil {
		t.Fatalf("expected absent, got error: %v", err)
	}
	if ok {
		t.Fatal("constant O should be absent on api 25")
	}
	if device.FaultPending() {
		t.Fatal("fault left pending")
	}
}

func TestTryCallMethod_AbsentMethod(t *testing.T) {
	device, env := newEnv(t, 11)

	cls, err := env.FindClass("android/app/Notification$Builder")
	if err != nil {
		t.Fatalf("FindClass failed: %v", err)
	}
	builder, err := env.NewObject(cls, "(Landroid/content/Context;)V",
		bridge.Obj(env.Context()))
	if err != nil {
		t.Fatalf("NewObject failed: %v", err)
	}

	_, ok, err := env.TryCallMethod(builder, "build", "()Landroid/app/Notification;")
	if err != nil {
		t.Fatalf("expected absent, got error: %v", err)
	}
	if ok {
		t.Fatal("build should be absent on api 11")
	}
	if device.FaultPending() {
		t.Fatal("fault left pending")
	}
}

func TestProbe_NonIgnoredExceptionPropagates(t *testing.T) {
	device, env := newEnv(t, 30)

	cls, err := env.FindClass("android/app/Notification$Builder")
	if err != nil {
		t.Fatalf("FindClass failed: %v", err)
	}
	builder, _, err := env.TryNewObject(cls,
		"(Landroid/content/Context;Ljava/lang/String;)V",
		bridge.Obj(env.Context()), bridge.Obj(mustString(t, env, "ch")))
	if err != nil {
		t.Fatalf("TryNewObject failed: %v", err)
	}

	if err := device.RaiseOnCall("build", "java/lang/SecurityException"); err != nil {
		t.Fatalf("RaiseOnCall failed: %v", err)
	}

	_, ok, err := env.TryCallMethod(builder, "build", "()Landroid/app/Notification;")
	if ok {
		t.Fatal("expected failure, got success")
	}
	var hx *HostException
	if !stderrors.As(err, &hx) {
		t.Fatalf("expected HostException, got %v", err)
	}
	if hx.Throwable == nil {
		t.Fatal("expected the original throwable to be carried")
	}
	if device.FaultPending() {
		t.Fatal("fault left pending after failure classification")
	}

	// The carried throwable is the exact object that was pending: placing it
	// back into the slot and fetching it yields the same identity.
	if err := device.Throw(hx.Throwable); err != nil {
		t.Fatalf("Throw failed: %v", err)
	}
	again, err := device.ExceptionOccurred()
	if err != nil {
		t.Fatalf("ExceptionOccurred failed: %v", err)
	}
	if again != hx.Throwable {
		t.Fatal("pending exception is not the carried throwable")
	}
	device.ExceptionClear()
}

func TestProbe_WrongFamilyPropagates(t *testing.T) {
	// A class-not-found family error raised during a method call is not in
	// the method ignore set and must propagate, not classify as absent.
	device, env := newEnv(t, 30)

	cls, err := env.FindClass("android/app/Notification$Builder")
	if err != nil {
		t.Fatalf("FindClass failed: %v", err)
	}
	builder, err := env.NewObject(cls, "(Landroid/content/Context;)V",
		bridge.Obj(env.Context()))
	if err != nil {
		t.Fatalf("NewObject failed: %v", err)
	}

	if err := device.RaiseOnCall("build", "java/lang/NoClassDefFoundError"); err != nil {
		t.Fatalf("RaiseOnCall failed: %v", err)
	}

	_, ok, err := env.TryCallMethod(builder, "build", "()Landroid/app/Notification;")
	if ok || err == nil {
		t.Fatalf("expected failure, got ok=%v err=%v", ok, err)
	}
	var hx *HostException
	if !stderrors.As(err, &hx) {
		t.Fatalf("expected HostException, got %v", err)
	}
	if device.FaultPending() {
		t.Fatal("fault left pending")
	}
}

func TestProbe_SubclassMatchesIgnoreSet(t *testing.T) {
	device, env := newEnv(t, 30)

	if err := device.DefineThrowable("com/vendor/ExtendedNoSuchMethodError",
		"java/lang/NoSuchMethodError"); err != nil {
		t.Fatalf("DefineThrowable failed: %v", err)
	}

	cls, err := env.FindClass("android/app/Notification$Builder")
	if err != nil {
		t.Fatalf("FindClass failed: %v", err)
	}
	builder, err := env.NewObject(cls, "(Landroid/content/Context;)V",
		bridge.Obj(env.Context()))
	if err != nil {
		t.Fatalf("NewObject failed: %v", err)
	}

	if err := device.RaiseOnCall("build", "com/vendor/ExtendedNoSuchMethodError"); err != nil {
		t.Fatalf("RaiseOnCall failed: %v", err)
	}

	_, ok, err := env.TryCallMethod(builder, "build", "()Landroid/app/Notification;")
	if err != nil {
		t.Fatalf("subclass of an ignore-set entry must classify as absent: %v", err)
	}
	if ok {
		t.Fatal("expected absent")
	}
	if device.FaultPending() {
		t.Fatal("fault left pending")
	}
}

func TestProbe_TransportFaultBypassesPendingSlot(t *testing.T) {
	device, env := newEnv(t, 30)

	transport := stderrors.New("connection torn down")
	device.FailNextCall(transport)

	_, ok, err := env.TryFindClass("android/content/Intent")
	if ok {
		t.Fatal("expected failure")
	}
	if !stderrors.Is(err, transport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if device.FaultPending() {
		t.Fatal("transport fault must not touch the pending slot")
	}
}

func TestProbe_MalformedSignatureIsFailure(t *testing.T) {
	device, env := newEnv(t, 30)

	_, ok, err := env.TryCallMethod(env.Context(), "getPackageName", "bogus")
	if ok {
		t.Fatal("expected failure")
	}
	want := &bridgeerrors.Error{Phase: bridgeerrors.PhaseCall, Kind: bridgeerrors.KindBadSignature}
	if !stderrors.Is(err, want) {
		t.Fatalf("expected bad signature error, got %v", err)
	}
	if device.FaultPending() {
		t.Fatal("malformed signature must not touch the pending slot")
	}
}

func mustString(t *testing.T, env *Env, s string) bridge.Object {
	t.Helper()
	obj, err := env.NewString(s)
	if err != nil {
		t.Fatalf("NewString failed: %v", err)
	}
	return obj
}

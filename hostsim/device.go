package hostsim

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	bridge "github.com/hostbind/droid-bridge"
	bridgeerrors "github.com/hostbind/droid-bridge/errors"
)

var errNotSimObject = errors.New("hostsim: reference does not belong to this device")

// Delivery is a notification the simulated host accepted.
type Delivery struct {
	ID         int32
	ChannelID  string
	Title      string
	Text       string
	AutoCancel bool
	Icon       int32

	// Via names the finalize strategy the caller used, "build" or
	// "getNotification".
	Via string
}

// RegisteredChannel is a channel the simulated host registered.
type RegisteredChannel struct {
	ID          string
	Name        string
	Description string
	Importance  int32
}

type resourceKey struct {
	name string
	kind string
}

// Device is an in-memory host implementing droidbridge.Env.
//
// Boundary calls must be strictly sequential, as on a real host: a call
// issued while a fault is pending fails hard. Recorded state accessors
// (Delivered, Channels, CallCount) may be read from other goroutines.
type Device struct {
	api int32
	pkg string

	classes map[string]*class
	appCtx  *object
	service *object

	pending *object

	resourceIDs map[resourceKey]int32

	mu        sync.Mutex
	channels  []RegisteredChannel
	delivered []Delivery
	calls     map[string]int
	observers []Observer

	raiseOn  map[string]string
	failNext error
}

// NewDevice creates a simulated device from a profile.
func NewDevice(p *Profile) *Device {
	if p == nil {
		p = DefaultProfile()
	}

	d := &Device{
		api:         p.APILevel,
		pkg:         p.Package,
		resourceIDs: make(map[resourceKey]int32),
		calls:       make(map[string]int),
		raiseOn:     make(map[string]string),
	}
	for _, r := range p.Resources {
		d.resourceIDs[resourceKey{name: r.Name, kind: r.Kind}] = r.ID
	}

	d.classes = buildCatalog()
	d.appCtx = &object{class: d.classes[activityClass]}
	d.service = &object{class: d.classes[notificationManagerClass]}

	Logger().Debug("device created",
		zap.Int32("api_level", d.api),
		zap.String("package", d.pkg))

	return d
}

// API returns the host release level the device reports.
func (d *Device) API() int32 { return d.api }

// Context returns the application's root object, the receiver for
// context-scoped calls.
func (d *Device) Context() bridge.Object { return d.appCtx }

// Delivered returns a copy of the notifications accepted so far.
func (d *Device) Delivered() []Delivery {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Delivery, len(d.delivered))
	copy(out, d.delivered)
	return out
}

// Channels returns a copy of the channels registered so far.
func (d *Device) Channels() []RegisteredChannel {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]RegisteredChannel, len(d.channels))
	copy(out, d.channels)
	return out
}

// CallCount returns how many times the named method was dispatched.
func (d *Device) CallCount(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[name]
}

// FaultPending reports whether an exception sits in the pending slot.
func (d *Device) FaultPending() bool { return d.pending != nil }

// FailNextCall makes the next boundary call fail with err directly, without
// raising a host exception. Models an I/O-level transport fault.
func (d *Device) FailNextCall(err error) { d.failNext = err }

// RaiseOnCall arranges for the next dispatch of the named method to raise an
// instance of the given throwable class instead of running.
func (d *Device) RaiseOnCall(methodName, throwableClass string) error {
	if _, ok := d.classes[throwableClass]; !ok {
		return fmt.Errorf("hostsim: unknown throwable class %q", throwableClass)
	}
	d.raiseOn[methodName] = throwableClass
	return nil
}

// DefineThrowable registers an additional throwable class under the given
// superclass, for exercising subtype classification.
func (d *Device) DefineThrowable(name, super string) error {
	sup, ok := d.classes[super]
	if !ok {
		return fmt.Errorf("hostsim: unknown superclass %q", super)
	}
	if !sup.isSubclassOf(d.classes[throwableClass]) {
		return fmt.Errorf("hostsim: %q is not a throwable", super)
	}
	if _, exists := d.classes[name]; exists {
		return fmt.Errorf("hostsim: class %q already defined", name)
	}
	d.classes[name] = newClass(name, sup, 1)
	return nil
}

// check gates every boundary call: sequencing violations and injected
// transport faults surface here.
func (d *Device) check() error {
	if d.pending != nil {
		return fmt.Errorf("hostsim: call issued while fault pending (%s)", d.pending.class.name)
	}
	if d.failNext != nil {
		err := d.failNext
		d.failNext = nil
		return err
	}
	return nil
}

// raise places a new instance of the named throwable in the pending slot.
func (d *Device) raise(className, message string) error {
	d.pending = &object{class: d.classes[className], str: message}
	Logger().Debug("exception raised",
		zap.String("class", className),
		zap.String("message", message))
	return bridge.ErrExceptionPending
}

func (d *Device) countCall(name string) {
	d.mu.Lock()
	d.calls[name]++
	d.mu.Unlock()
}

// FindClass implements droidbridge.Env.
func (d *Device) FindClass(name string) (bridge.Class, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	cls, ok := d.classes[name]
	if !ok || cls.minAPI > d.api {
		return nil, d.raise(classNotFoundException, name)
	}
	return cls, nil
}

// GetField implements droidbridge.Env.
func (d *Device) GetField(obj bridge.Object, name, sig string) (bridge.Value, error) {
	if err := d.check(); err != nil {
		return bridge.Void(), err
	}
	if !validFieldSig(sig) {
		return bridge.Void(), bridgeerrors.BadSignature(bridgeerrors.PhaseLookup, sig)
	}
	o, ok := obj.(*object)
	if !ok {
		return bridge.Void(), errNotSimObject
	}
	f := o.class.fieldByName(name)
	if f == nil || f.minAPI > d.api || f.sig != sig {
		return bridge.Void(), d.raise(noSuchFieldError, o.class.name+"."+name)
	}
	if v, ok := o.fields[name]; ok {
		return v, nil
	}
	return zeroValue(sig), nil
}

// GetStaticField implements droidbridge.Env.
func (d *Device) GetStaticField(cls bridge.Class, name, sig string) (bridge.Value, error) {
	if err := d.check(); err != nil {
		return bridge.Void(), err
	}
	if !validFieldSig(sig) {
		return bridge.Void(), bridgeerrors.BadSignature(bridgeerrors.PhaseLookup, sig)
	}
	c, ok := cls.(*class)
	if !ok {
		return bridge.Void(), errNotSimObject
	}
	f := c.staticByName(name)
	if f == nil || f.minAPI > d.api || f.sig != sig {
		return bridge.Void(), d.raise(noSuchFieldError, c.name+"."+name)
	}
	return f.value(d), nil
}

// CallMethod implements droidbridge.Env.
func (d *Device) CallMethod(obj bridge.Object, name, sig string, args ...bridge.Value) (bridge.Value, error) {
	if err := d.check(); err != nil {
		return bridge.Void(), err
	}
	if !validMethodSig(sig) {
		return bridge.Void(), bridgeerrors.BadSignature(bridgeerrors.PhaseCall, sig)
	}
	o, ok := obj.(*object)
	if !ok {
		return bridge.Void(), errNotSimObject
	}
	m := o.class.methodBySig(name, sig)
	if m == nil || m.minAPI > d.api {
		return bridge.Void(), d.raise(noSuchMethodError, o.class.name+"."+name+sig)
	}
	if cls, injected := d.raiseOn[name]; injected {
		delete(d.raiseOn, name)
		return bridge.Void(), d.raise(cls, "injected fault in "+name)
	}
	d.countCall(name)
	return m.fn(d, o, args)
}

// CallStaticMethod implements droidbridge.Env.
func (d *Device) CallStaticMethod(cls bridge.Class, name, sig string, args ...bridge.Value) (bridge.Value, error) {
	if err := d.check(); err != nil {
		return bridge.Void(), err
	}
	if !validMethodSig(sig) {
		return bridge.Void(), bridgeerrors.BadSignature(bridgeerrors.PhaseCall, sig)
	}
	c, ok := cls.(*class)
	if !ok {
		return bridge.Void(), errNotSimObject
	}
	m := c.methodBySig(name, sig)
	if m == nil || m.minAPI > d.api {
		return bridge.Void(), d.raise(noSuchMethodError, c.name+"."+name+sig)
	}
	if tcls, injected := d.raiseOn[name]; injected {
		delete(d.raiseOn, name)
		return bridge.Void(), d.raise(tcls, "injected fault in "+name)
	}
	d.countCall(name)
	return m.fn(d, nil, args)
}

// NewObject implements droidbridge.Env.
func (d *Device) NewObject(cls bridge.Class, ctorSig string, args ...bridge.Value) (bridge.Object, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	if !validMethodSig(ctorSig) {
		return nil, bridgeerrors.BadSignature(bridgeerrors.PhaseCall, ctorSig)
	}
	c, ok := cls.(*class)
	if !ok {
		return nil, errNotSimObject
	}
	ct, ok := c.ctors[ctorSig]
	if !ok || ct.minAPI > d.api {
		return nil, d.raise(noSuchMethodError, c.name+".<init>"+ctorSig)
	}
	d.countCall(c.name + ".<init>")
	return ct.fn(d, args)
}

// NewString implements droidbridge.Env.
func (d *Device) NewString(s string) (bridge.Object, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	return &object{class: d.classes[stringClass], str: s}, nil
}

// GetObjectClass implements droidbridge.Env.
func (d *Device) GetObjectClass(obj bridge.Object) (bridge.Class, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	o, ok := obj.(*object)
	if !ok {
		return nil, errNotSimObject
	}
	return o.class, nil
}

// IsInstanceOf implements droidbridge.Env.
func (d *Device) IsInstanceOf(obj bridge.Object, cls bridge.Class) (bool, error) {
	if err := d.check(); err != nil {
		return false, err
	}
	o, ok := obj.(*object)
	if !ok {
		return false, errNotSimObject
	}
	c, ok := cls.(*class)
	if !ok {
		return false, errNotSimObject
	}
	return o.class.isSubclassOf(c), nil
}

// ExceptionOccurred implements droidbridge.Env. It is legal while a fault is
// pending and does not clear the slot.
func (d *Device) ExceptionOccurred() (bridge.Object, error) {
	if d.pending == nil {
		return nil, nil
	}
	return d.pending, nil
}

// ExceptionClear implements droidbridge.Env.
func (d *Device) ExceptionClear() {
	d.pending = nil
}

// Throw implements droidbridge.Env.
func (d *Device) Throw(ex bridge.Object) error {
	o, ok := ex.(*object)
	if !ok {
		return errNotSimObject
	}
	if !o.class.isSubclassOf(d.classes[throwableClass]) {
		return fmt.Errorf("hostsim: %s is not a throwable", o.class.name)
	}
	d.pending = o
	return nil
}

// Signature validation is shape-only: the host rejects strings that cannot
// be parsed at all before it ever consults the class table.

func validFieldSig(sig string) bool {
	if sig == "" {
		return false
	}
	switch sig[0] {
	case 'Z', 'B', 'C', 'S', 'I', 'J', 'F', 'D':
		return len(sig) == 1
	case 'L':
		return sig[len(sig)-1] == ';'
	case '[':
		return validFieldSig(sig[1:])
	default:
		return false
	}
}

func validMethodSig(sig string) bool {
	if len(sig) < 3 || sig[0] != '(' {
		return false
	}
	end := -1
	for i := 1; i < len(sig); i++ {
		if sig[i] == ')' {
			end = i
			break
		}
	}
	if end < 0 || end == len(sig)-1 {
		return false
	}
	ret := sig[end+1:]
	return ret == "V" || validFieldSig(ret)
}

func zeroValue(sig string) bridge.Value {
	switch sig[0] {
	case 'Z':
		return bridge.Bool(false)
	case 'L', '[':
		return bridge.Obj(nil)
	default:
		return bridge.Int(0)
	}
}

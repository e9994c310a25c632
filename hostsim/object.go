package hostsim

import (
	bridge "github.com/hostbind/droid-bridge"
)

// class is a simulated host class. Member lookup walks the super chain.
type class struct {
	name    string
	super   *class
	minAPI  int32
	statics map[string]*staticField
	fields  map[string]*instField
	methods map[string]*method // keyed by name + sig
	ctors   map[string]*ctor   // keyed by sig
}

type staticField struct {
	sig    string
	minAPI int32
	value  func(d *Device) bridge.Value
}

type instField struct {
	sig    string
	minAPI int32
}

type method struct {
	name   string
	sig    string
	minAPI int32
	fn     func(d *Device, recv *object, args []bridge.Value) (bridge.Value, error)
}

type ctor struct {
	sig    string
	minAPI int32
	fn     func(d *Device, args []bridge.Value) (*object, error)
}

// object is a simulated host object reference. String instances carry their
// text in str; throwables carry their detail message there.
type object struct {
	class  *class
	str    string
	fields map[string]bridge.Value
}

func newClass(name string, super *class, minAPI int32) *class {
	return &class{
		name:    name,
		super:   super,
		minAPI:  minAPI,
		statics: make(map[string]*staticField),
		fields:  make(map[string]*instField),
		methods: make(map[string]*method),
		ctors:   make(map[string]*ctor),
	}
}

func (c *class) isSubclassOf(other *class) bool {
	for cur := c; cur != nil; cur = cur.super {
		if cur == other {
			return true
		}
	}
	return false
}

func (c *class) staticByName(name string) *staticField {
	for cur := c; cur != nil; cur = cur.super {
		if f, ok := cur.statics[name]; ok {
			return f
		}
	}
	return nil
}

func (c *class) fieldByName(name string) *instField {
	for cur := c; cur != nil; cur = cur.super {
		if f, ok := cur.fields[name]; ok {
			return f
		}
	}
	return nil
}

func (c *class) methodBySig(name, sig string) *method {
	for cur := c; cur != nil; cur = cur.super {
		if m, ok := cur.methods[name+sig]; ok {
			return m
		}
	}
	return nil
}

func (c *class) addStatic(name, sig string, minAPI int32, value func(d *Device) bridge.Value) {
	c.statics[name] = &staticField{sig: sig, minAPI: minAPI, value: value}
}

func (c *class) addStaticInt(name string, minAPI int32, v int32) {
	c.addStatic(name, "I", minAPI, func(*Device) bridge.Value { return bridge.Int(v) })
}

func (c *class) addField(name, sig string, minAPI int32) {
	c.fields[name] = &instField{sig: sig, minAPI: minAPI}
}

func (c *class) addMethod(name, sig string, minAPI int32,
	fn func(d *Device, recv *object, args []bridge.Value) (bridge.Value, error)) {
	c.methods[name+sig] = &method{name: name, sig: sig, minAPI: minAPI, fn: fn}
}

func (c *class) addCtor(sig string, minAPI int32,
	fn func(d *Device, args []bridge.Value) (*object, error)) {
	c.ctors[sig] = &ctor{sig: sig, minAPI: minAPI, fn: fn}
}

// stringArg unwraps a string object argument; nil references yield "".
func stringArg(v bridge.Value) (string, error) {
	obj, err := v.Object()
	if err != nil {
		return "", err
	}
	if obj == nil {
		return "", nil
	}
	o, ok := obj.(*object)
	if !ok {
		return "", errNotSimObject
	}
	return o.str, nil
}

func objectArg(v bridge.Value) (*object, error) {
	obj, err := v.Object()
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	o, ok := obj.(*object)
	if !ok {
		return nil, errNotSimObject
	}
	return o, nil
}

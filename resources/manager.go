package resources

import (
	bridge "github.com/hostbind/droid-bridge"
	"github.com/hostbind/droid-bridge/compat"
)

// Resource kind qualifiers accepted by the host identifier lookup.
const (
	KindDrawable = "drawable"
	KindMipmap   = "mipmap"
)

// Manager performs name-to-identifier lookups against one host resource
// table. Not safe for concurrent use.
type Manager struct {
	env *compat.Env
	res bridge.Object
	pkg bridge.Object
	ids map[string]int32
}

// NewManager resolves the host resource table and owning-package name for
// the environment's application context.
func NewManager(env *compat.Env) (*Manager, error) {
	resVal, err := env.CallMethod(env.Context(), "getResources",
		"()Landroid/content/res/Resources;")
	if err != nil {
		return nil, err
	}
	res, err := resVal.Object()
	if err != nil {
		return nil, err
	}

	pkgVal, err := env.CallMethod(env.Context(), "getPackageName",
		"()Ljava/lang/String;")
	if err != nil {
		return nil, err
	}
	pkg, err := pkgVal.Object()
	if err != nil {
		return nil, err
	}

	return &Manager{
		env: env,
		res: res,
		pkg: pkg,
		ids: make(map[string]int32),
	}, nil
}

// ID resolves the integer identifier for a named resource of the given kind.
//
// Results are cached by name alone: a second lookup of the same name under a
// different kind returns the identifier cached for the first kind. Lookup
// failures are not cached, so a transient fault can be retried.
func (m *Manager) ID(name, kind string) (int32, error) {
	if id, ok := m.ids[name]; ok {
		return id, nil
	}

	nameStr, err := m.env.NewString(name)
	if err != nil {
		return 0, err
	}
	kindStr, err := m.env.NewString(kind)
	if err != nil {
		return 0, err
	}

	v, err := m.env.CallMethod(m.res, "getIdentifier",
		"(Ljava/lang/String;Ljava/lang/String;Ljava/lang/String;)I",
		bridge.Obj(nameStr), bridge.Obj(kindStr), bridge.Obj(m.pkg))
	if err != nil {
		return 0, err
	}

	id, err := v.Int()
	if err != nil {
		return 0, err
	}

	m.ids[name] = id
	return id, nil
}

package platform

import (
	"strings"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/wippyai/ctypes/ctype"
	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/typedef"
)

// Registry maps every type name of one profile to its resolved type.
// It is read-only and safe for concurrent use.
type Registry struct {
	types   map[string]ctype.Type
	names   []string
	arrays  sync.Map // "name[N]" -> ctype.Type
	profile Profile
	bits    int
}

func newRegistry(p Profile, tables *typedef.Tables) (*Registry, error) {
	b := p.Bits()
	types, err := tables.Resolve(p.Layer(), p.Order(), b)
	if err != nil {
		return nil, err
	}
	names := maps.Keys(types)
	slices.Sort(names)
	return &Registry{types: types, names: names, profile: p, bits: b}, nil
}

// Lookup returns the type for name. Besides the registered names it accepts
// array specs such as "uint16[4]" and "char[8]".
func (r *Registry) Lookup(name string) (ctype.Type, error) {
	if t, ok := r.types[name]; ok {
		return t, nil
	}
	if !strings.HasSuffix(name, "]") {
		return nil, errors.UnknownType(errors.PhaseResolve, name)
	}
	if t, ok := r.arrays.Load(name); ok {
		return t.(ctype.Type), nil
	}
	base, n, err := typedef.ParseTarget(name)
	if err != nil {
		return nil, err
	}
	elem, ok := r.types[base]
	if !ok {
		return nil, errors.UnknownType(errors.PhaseResolve, base)
	}
	t, err := typedef.MakeArray(base, elem, n)
	if err != nil {
		return nil, err
	}
	actual, _ := r.arrays.LoadOrStore(name, t)
	return actual.(ctype.Type), nil
}

// MustLookup is Lookup that panics on an unknown name.
func (r *Registry) MustLookup(name string) ctype.Type {
	t, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.types[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of registered names.
func (r *Registry) Len() int { return len(r.names) }

// Profile returns the profile the registry was resolved for.
func (r *Registry) Profile() Profile { return r.profile }

// Order returns the byte order of bare multi-byte names.
func (r *Registry) Order() ctype.Order { return r.profile.Order() }

// Bits returns the address width pointer-sized names were resolved with.
func (r *Registry) Bits() int { return r.bits }

package typedef

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/wippyai/ctypes/errors"
)

// Root is the name of the portable C layer every chain starts from.
const Root = "c"

// Entry maps Name to Target within a layer. Target is a type name or an array
// spec such as "uint8[16]". Bits limits the entry to one address width; zero
// applies it to both.
type Entry struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
	Bits   int    `yaml:"bits,omitempty"`
}

func (e Entry) applies(bits int) bool {
	return e.Bits == 0 || e.Bits == bits
}

// Layer is one named table of entries. Parent names the layer it inherits
// from; only the root layer has no parent.
type Layer struct {
	Name    string  `yaml:"name"`
	Parent  string  `yaml:"parent,omitempty"`
	Entries []Entry `yaml:"typedefs"`
}

// define appends e as the latest entry for its name. Earlier entries with
// the same width are dropped; a width-independent entry drops every earlier
// entry for the name.
func (l *Layer) define(e Entry) {
	kept := l.Entries[:0]
	for _, old := range l.Entries {
		if old.Name == e.Name && (e.Bits == 0 || old.Bits == e.Bits) {
			continue
		}
		kept = append(kept, old)
	}
	l.Entries = append(kept, e)
}

func (l *Layer) clone() *Layer {
	return &Layer{Name: l.Name, Parent: l.Parent, Entries: append([]Entry(nil), l.Entries...)}
}

// Tables is a set of layers addressed by name.
//
// Tables is not safe for concurrent mutation. Once handed to a resolver it
// must not be modified; use Clone to derive a new set.
type Tables struct {
	layers map[string]*Layer
}

// New returns tables holding only an empty root layer.
func New() *Tables {
	return &Tables{layers: map[string]*Layer{Root: {Name: Root}}}
}

// Builtin returns a fresh copy of the built-in layers.
func Builtin() *Tables {
	t := &Tables{layers: make(map[string]*Layer, len(builtinLayers))}
	for _, l := range builtinLayers {
		t.layers[l.Name] = l.clone()
	}
	return t
}

// Clone returns a deep copy.
func (t *Tables) Clone() *Tables {
	out := &Tables{layers: make(map[string]*Layer, len(t.layers))}
	for name, l := range t.layers {
		out.layers[name] = l.clone()
	}
	return out
}

// Has reports whether a layer exists.
func (t *Tables) Has(name string) bool {
	_, ok := t.layers[name]
	return ok
}

// Layer returns a copy of the named layer.
func (t *Tables) Layer(name string) (Layer, bool) {
	l, ok := t.layers[name]
	if !ok {
		return Layer{}, false
	}
	return *l.clone(), true
}

// Names returns the layer names in sorted order.
func (t *Tables) Names() []string {
	names := maps.Keys(t.layers)
	slices.Sort(names)
	return names
}

// AddLayer creates an empty layer under parent. An empty parent means Root.
func (t *Tables) AddLayer(name, parent string) error {
	if name == "" {
		return errors.InvalidInput(errors.PhaseConfig, "layer has no name")
	}
	if _, ok := t.layers[name]; ok {
		return errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("layer %q already exists", name))
	}
	if parent == "" && name != Root {
		parent = Root
	}
	t.layers[name] = &Layer{Name: name, Parent: parent}
	return nil
}

// Define registers name as an alias of target in layer, replacing any
// earlier entry for the same name in that layer.
func (t *Tables) Define(layer, name, target string) error {
	return t.DefineBits(layer, name, target, 0)
}

// DefineBits is Define restricted to an address width of 32 or 64 bits.
func (t *Tables) DefineBits(layer, name, target string, bits int) error {
	l, ok := t.layers[layer]
	if !ok {
		return errors.New(errors.PhaseConfig, errors.KindUnknownType).
			Detail("unknown layer %q", layer).
			Build()
	}
	if err := checkEntry(Entry{Name: name, Target: target, Bits: bits}); err != nil {
		return errors.WithPath(err, layer)
	}
	l.define(Entry{Name: name, Target: target, Bits: bits})
	return nil
}

func checkEntry(e Entry) error {
	if e.Name == "" || e.Target == "" {
		return errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("typedef %q -> %q: name and target are required", e.Name, e.Target))
	}
	if strings.ContainsAny(e.Name, "[] ") {
		return errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("typedef name %q is not an identifier", e.Name))
	}
	switch e.Bits {
	case 0, 32, 64:
	default:
		return errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("typedef %q: bits must be 32 or 64, got %d", e.Name, e.Bits))
	}
	if _, _, err := ParseTarget(e.Target); err != nil {
		return err
	}
	return nil
}

// Merge adds layers to t. A layer that already exists is extended: its
// entries are applied on top of the existing ones and a non-empty Parent
// replaces the old parent.
func (t *Tables) Merge(layers ...Layer) error {
	for _, in := range layers {
		l, ok := t.layers[in.Name]
		if !ok {
			if err := t.AddLayer(in.Name, in.Parent); err != nil {
				return err
			}
			l = t.layers[in.Name]
		} else if in.Parent != "" {
			l.Parent = in.Parent
		}
		for _, e := range in.Entries {
			if err := checkEntry(e); err != nil {
				return errors.WithPath(err, in.Name)
			}
			l.define(e)
		}
	}
	return nil
}

// Chain returns the layers from the root down to leaf. An empty leaf yields
// the root alone.
func (t *Tables) Chain(leaf string) ([]*Layer, error) {
	if leaf == "" {
		leaf = Root
	}
	var chain []*Layer
	seen := make(map[string]bool)
	for name := leaf; name != ""; {
		if seen[name] {
			return nil, errors.Cycle(append(layerNames(chain), name))
		}
		seen[name] = true
		l, ok := t.layers[name]
		if !ok {
			return nil, errors.New(errors.PhaseResolve, errors.KindUnknownType).
				Detail("unknown layer %q", name).
				Build()
		}
		chain = append(chain, l)
		name = l.Parent
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

func layerNames(chain []*Layer) []string {
	names := make([]string, len(chain))
	for i, l := range chain {
		names[i] = l.Name
	}
	return names
}

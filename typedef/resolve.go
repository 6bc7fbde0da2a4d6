package typedef

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/wippyai/ctypes/ctype"
	"github.com/wippyai/ctypes/errors"
)

var suffixes = []string{"_le", "_be", "_ne", "_net"}

// ParseTarget splits an entry target into its element name and array length.
// A plain name has length 0.
func ParseTarget(target string) (string, int, error) {
	if !strings.HasSuffix(target, "]") {
		if strings.ContainsAny(target, "[] ") {
			return "", 0, badTarget(target)
		}
		return target, 0, nil
	}
	open := strings.IndexByte(target, '[')
	if open <= 0 || open != strings.LastIndexByte(target, '[') {
		return "", 0, badTarget(target)
	}
	n, err := strconv.Atoi(target[open+1 : len(target)-1])
	if err != nil || n <= 0 {
		return "", 0, badTarget(target)
	}
	return target[:open], n, nil
}

func badTarget(target string) error {
	return errors.New(errors.PhaseResolve, errors.KindInvalidInput).
		Value(target).
		Detail("malformed type spec %q", target).
		Build()
}

// MakeArray builds the type for n elements of elem. Arrays of char are fixed
// strings.
func MakeArray(elemName string, elem ctype.Type, n int) (ctype.Type, error) {
	if elemName == "char" {
		return ctype.NewFixedString(n)
	}
	return ctype.NewArray(elem, n)
}

// Flatten applies the chain ending at leaf for an address width and returns
// the final alias map.
func (t *Tables) Flatten(leaf string, bits int) (map[string]string, error) {
	chain, err := t.Chain(leaf)
	if err != nil {
		return nil, err
	}
	aliases := make(map[string]string)
	for _, l := range chain {
		for _, e := range l.Entries {
			if e.applies(bits) {
				aliases[e.Name] = e.Target
			}
		}
	}
	return aliases, nil
}

// Resolve applies the chain ending at leaf on top of the scalar table for
// order and returns every name the platform defines.
func (t *Tables) Resolve(leaf string, order ctype.Order, bits int) (map[string]ctype.Type, error) {
	if bits != 32 && bits != 64 {
		return nil, errors.InvalidInput(errors.PhaseResolve, fmt.Sprintf("address width %d must be 32 or 64", bits))
	}
	aliases, err := t.Flatten(leaf, bits)
	if err != nil {
		return nil, err
	}
	types := ctype.ScalarTable(order)
	for name := range aliases {
		if _, ok := types[name]; ok {
			return nil, errors.New(errors.PhaseResolve, errors.KindInvalidInput).
				Path(name).
				Detail("typedef %q redefines a scalar type", name).
				Build()
		}
	}

	ordered, err := resolveOrder(aliases)
	if err != nil {
		return nil, err
	}
	for _, name := range ordered {
		base, n, err := ParseTarget(aliases[name])
		if err != nil {
			return nil, errors.WithPath(err, name)
		}
		target, ok := types[base]
		if !ok {
			return nil, errors.New(errors.PhaseResolve, errors.KindUnknownType).
				Path(name).
				TypeName(base).
				Detail("typedef %q: unknown type %q", name, base).
				Build()
		}
		if n > 0 {
			if target, err = MakeArray(base, target, n); err != nil {
				return nil, errors.WithPath(err, name)
			}
		}
		types[name] = target
	}

	for _, name := range ordered {
		for _, suf := range suffixes {
			if _, ok := types[name+suf]; ok {
				continue
			}
			if v := ctype.WithSuffix(types[name], name, suf); v != nil {
				types[name+suf] = v
			}
		}
	}
	return types, nil
}

// resolveOrder sorts alias names so every alias follows the alias it
// targets. Cycles are reported with the names involved.
func resolveOrder(aliases map[string]string) ([]string, error) {
	names := maps.Keys(aliases)
	slices.Sort(names)

	ids := make(map[string]int64, len(names))
	byID := make([]string, 0, len(names))
	node := func(name string) graph.Node {
		id, ok := ids[name]
		if !ok {
			id = int64(len(byID))
			ids[name] = id
			byID = append(byID, name)
		}
		return simple.Node(id)
	}

	g := simple.NewDirectedGraph()
	for _, name := range names {
		n := node(name)
		if g.Node(n.ID()) == nil {
			g.AddNode(n)
		}
		base, _, err := ParseTarget(aliases[name])
		if err != nil {
			return nil, errors.WithPath(err, name)
		}
		if _, isAlias := aliases[base]; !isAlias {
			continue
		}
		if base == name {
			return nil, errors.Cycle([]string{name, name})
		}
		g.SetEdge(simple.Edge{F: node(base), T: n})
	}

	sorted, err := topo.Sort(g)
	if err != nil {
		var cycles topo.Unorderable
		if stderrors.As(err, &cycles) && len(cycles) > 0 {
			members := make([]string, len(cycles[0]))
			for i, n := range cycles[0] {
				members[i] = byID[n.ID()]
			}
			slices.Sort(members)
			return nil, errors.Cycle(members)
		}
		return nil, errors.Wrap(errors.PhaseResolve, errors.KindCycle, err, "ordering typedefs")
	}

	out := make([]string, len(sorted))
	for i, n := range sorted {
		out[i] = byID[n.ID()]
	}
	return out, nil
}

package typedef

import (
	"reflect"
	"strings"
	"testing"

	"github.com/wippyai/ctypes/ctype"
	"github.com/wippyai/ctypes/errors"
)

func resolve(t *testing.T, tables *Tables, leaf string, bits int) map[string]ctype.Type {
	t.Helper()
	types, err := tables.Resolve(leaf, ctype.Little, bits)
	if err != nil {
		t.Fatalf("Resolve(%s, %d) failed: %v", leaf, bits, err)
	}
	return types
}

func TestChain(t *testing.T) {
	tables := Builtin()
	tests := []struct {
		leaf string
		want []string
	}{
		{"", []string{"c"}},
		{"c", []string{"c"}},
		{"linux", []string{"c", "unix", "linux"}},
		{"netbsd", []string{"c", "unix", "bsd", "netbsd"}},
		{"macos", []string{"c", "unix", "bsd", "macos"}},
		{"windows", []string{"c", "windows"}},
	}
	for _, tt := range tests {
		t.Run(tt.leaf, func(t *testing.T) {
			chain, err := tables.Chain(tt.leaf)
			if err != nil {
				t.Fatalf("Chain failed: %v", err)
			}
			if got := layerNames(chain); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Chain = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := tables.Chain("plan9"); !errors.IsKind(err, errors.KindUnknownType) {
		t.Errorf("unknown layer error = %v", err)
	}
}

func TestResolve_Layering(t *testing.T) {
	tables := Builtin()
	tests := []struct {
		name string
		leaf string
		bits int
		typ  string
		size int
	}{
		{"bsd size_t", "bsd", 64, "size_t", 4},
		{"netbsd refines size_t", "netbsd", 64, "size_t", 8},
		{"netbsd 32-bit keeps bsd size_t", "netbsd", 32, "size_t", 4},
		{"linux long LP64", "linux", 64, "long", 8},
		{"linux long ILP32", "linux", 32, "long", 4},
		{"windows long LLP64", "windows", 64, "long", 4},
		{"windows pointer", "windows", 64, "pointer", 8},
		{"windows DWORD_PTR chain", "windows", 64, "DWORD_PTR", 8},
		{"windows DWORD_PTR 32", "windows", 32, "DWORD_PTR", 4},
		{"unix caddr_t", "unix", 64, "caddr_t", 8},
		{"macos uuid_t", "macos", 64, "uuid_t", 16},
		{"windows GUID", "windows", 32, "GUID", 16},
		{"c wchar_t", "c", 64, "wchar_t", 4},
		{"windows wchar_t", "windows", 64, "wchar_t", 2},
		{"linux nlink_t 64", "linux", 64, "nlink_t", 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			types := resolve(t, tables, tt.leaf, tt.bits)
			typ, ok := types[tt.typ]
			if !ok {
				t.Fatalf("%s not defined", tt.typ)
			}
			if typ.Size() != tt.size {
				t.Errorf("%s size = %d, want %d", tt.typ, typ.Size(), tt.size)
			}
		})
	}
}

func TestResolve_AllBuiltins(t *testing.T) {
	tables := Builtin()
	for _, leaf := range tables.Names() {
		for _, bits := range []int{32, 64} {
			types := resolve(t, tables, leaf, bits)
			for name, typ := range types {
				if typ.Size() <= 0 {
					t.Errorf("%s/%d: %s has size %d", leaf, bits, name, typ.Size())
				}
			}
		}
	}
}

func TestResolve_Variants(t *testing.T) {
	types := resolve(t, Builtin(), "linux", 64)

	port := types["in_port_t"].(*ctype.Scalar)
	if port.Order() != ctype.Big {
		t.Errorf("in_port_t order = %s, want big", port.Order())
	}
	le, ok := types["in_port_t_le"].(*ctype.Scalar)
	if !ok || le.Order() != ctype.Little || le.Name() != "in_port_t_le" {
		t.Errorf("in_port_t_le = %v", types["in_port_t_le"])
	}
	if s, ok := types["size_t_be"].(*ctype.Scalar); !ok || s.Order() != ctype.Big || s.Size() != 8 {
		t.Errorf("size_t_be = %v", types["size_t_be"])
	}
	if _, ok := types["char_le"]; ok {
		t.Error("single-byte alias should have no order variants")
	}
	if _, ok := types["__le16_be"]; !ok {
		t.Error("explicitly ordered alias should still get variants")
	}

	b, err := types["__be32"].Pack(1)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if !reflect.DeepEqual(b, []byte{0, 0, 0, 1}) {
		t.Errorf("__be32 Pack(1) = % x", b)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		layers  []Layer
		leaf    string
		bits    int
		errKind errors.Kind
		detail  string
	}{
		{
			name:    "cycle",
			layers:  []Layer{{Name: "loop", Entries: []Entry{{Name: "a", Target: "b"}, {Name: "b", Target: "a"}}}},
			leaf:    "loop",
			bits:    64,
			errKind: errors.KindCycle,
			detail:  "a -> b",
		},
		{
			name:    "self alias",
			layers:  []Layer{{Name: "self", Entries: []Entry{{Name: "a", Target: "a"}}}},
			leaf:    "self",
			bits:    64,
			errKind: errors.KindCycle,
		},
		{
			name:    "unknown target",
			layers:  []Layer{{Name: "bad", Entries: []Entry{{Name: "a", Target: "not_a_real_type"}}}},
			leaf:    "bad",
			bits:    64,
			errKind: errors.KindUnknownType,
			detail:  "not_a_real_type",
		},
		{
			name:    "scalar redefined",
			layers:  []Layer{{Name: "shadow", Entries: []Entry{{Name: "uint32", Target: "uint64"}}}},
			leaf:    "shadow",
			bits:    64,
			errKind: errors.KindInvalidInput,
		},
		{
			name:    "bad width",
			leaf:    "linux",
			bits:    16,
			errKind: errors.KindInvalidInput,
		},
		{
			name: "parent loop",
			layers: []Layer{
				{Name: "x", Parent: "y"},
				{Name: "y", Parent: "x"},
			},
			leaf:    "x",
			bits:    64,
			errKind: errors.KindCycle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := Builtin()
			if err := tables.Merge(tt.layers...); err != nil {
				t.Fatalf("Merge failed: %v", err)
			}
			_, err := tables.Resolve(tt.leaf, ctype.Little, tt.bits)
			if !errors.IsKind(err, tt.errKind) {
				t.Fatalf("Resolve error = %v, want %s", err, tt.errKind)
			}
			if tt.detail != "" && !strings.Contains(err.Error(), tt.detail) {
				t.Errorf("error %q does not mention %q", err, tt.detail)
			}
		})
	}
}

func TestDefine(t *testing.T) {
	tables := New()
	if err := tables.AddLayer("dev", ""); err != nil {
		t.Fatalf("AddLayer failed: %v", err)
	}
	if err := tables.Define("dev", "reg_t", "uint16"); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	if err := tables.Define("dev", "reg_t", "uint32"); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	l, _ := tables.Layer("dev")
	if len(l.Entries) != 1 || l.Entries[0].Target != "uint32" {
		t.Errorf("redefinition should replace, got %v", l.Entries)
	}
	if err := tables.DefineBits("dev", "addr_t", "uint64", 64); err != nil {
		t.Fatalf("DefineBits failed: %v", err)
	}

	types := resolve(t, tables, "dev", 32)
	if types["reg_t"].Size() != 4 {
		t.Errorf("reg_t size = %d", types["reg_t"].Size())
	}
	if _, ok := types["addr_t"]; ok {
		t.Error("64-bit entry applied on a 32-bit target")
	}

	tests := []struct {
		name string
		err  error
	}{
		{"missing layer", tables.Define("nope", "a", "uint8")},
		{"empty target", tables.Define("dev", "a", "")},
		{"bad bits", tables.DefineBits("dev", "a", "uint8", 16)},
		{"bad spec", tables.Define("dev", "a", "uint8[x]")},
		{"duplicate layer", tables.AddLayer("dev", "")},
	}
	for _, tt := range tests {
		if tt.err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestMerge_ExtendsBuiltin(t *testing.T) {
	tables := Builtin()
	err := tables.Merge(Layer{Name: "linux", Entries: []Entry{{Name: "handle_t", Target: "uint16"}}})
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	types := resolve(t, tables, "linux", 64)
	if types["handle_t"].Size() != 2 {
		t.Error("merged entry missing")
	}
	if types["size_t"].Size() != 8 {
		t.Error("built-in entries lost on merge")
	}

	fresh := resolve(t, Builtin(), "linux", 64)
	if _, ok := fresh["handle_t"]; ok {
		t.Error("Builtin returned shared state")
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in   string
		base string
		n    int
		ok   bool
	}{
		{"uint8", "uint8", 0, true},
		{"uint8[16]", "uint8", 16, true},
		{"char[4]", "char", 4, true},
		{"uint8[0]", "", 0, false},
		{"uint8[-1]", "", 0, false},
		{"[4]", "", 0, false},
		{"uint8[2][2]", "", 0, false},
		{"uint 8", "", 0, false},
	}
	for _, tt := range tests {
		base, n, err := ParseTarget(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseTarget(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && (base != tt.base || n != tt.n) {
			t.Errorf("ParseTarget(%q) = %q, %d", tt.in, base, n)
		}
	}
}

func TestMakeArray_Char(t *testing.T) {
	types := resolve(t, Builtin(), "c", 64)
	typ, err := MakeArray("char", types["char"], 8)
	if err != nil {
		t.Fatalf("MakeArray failed: %v", err)
	}
	if typ.Kind() != ctype.KindString || typ.Size() != 8 {
		t.Errorf("char[8] = %s size %d", typ.Kind(), typ.Size())
	}
}

func TestDefine_LatestWins(t *testing.T) {
	tables := New()
	if err := tables.AddLayer("dev", ""); err != nil {
		t.Fatalf("AddLayer failed: %v", err)
	}
	steps := []struct {
		name, target string
		bits         int
	}{
		{"word_t", "int16", 0},
		{"word_t", "int32", 64},
		{"word_t", "int8", 0},
		{"len_t", "uint16", 0},
		{"len_t", "uint64", 64},
	}
	for _, s := range steps {
		if err := tables.DefineBits("dev", s.name, s.target, s.bits); err != nil {
			t.Fatalf("DefineBits(%s, %s, %d) failed: %v", s.name, s.target, s.bits, err)
		}
	}

	tests := []struct {
		bits int
		name string
		size int
	}{
		{64, "word_t", 1},
		{32, "word_t", 1},
		{64, "len_t", 8},
		{32, "len_t", 2},
	}
	for _, tt := range tests {
		types := resolve(t, tables, "dev", tt.bits)
		typ, ok := types[tt.name]
		if !ok {
			t.Fatalf("%s missing at %d bits", tt.name, tt.bits)
		}
		if typ.Size() != tt.size {
			t.Errorf("%s at %d bits: size = %d, want %d", tt.name, tt.bits, typ.Size(), tt.size)
		}
	}

	l, _ := tables.Layer("dev")
	var words int
	for _, e := range l.Entries {
		if e.Name == "word_t" {
			words++
		}
	}
	if words != 1 {
		t.Errorf("generic redefinition should drop width-specific entries, got %v", l.Entries)
	}
}

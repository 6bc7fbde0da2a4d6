package typedef

import (
	"strings"
	"testing"

	"github.com/wippyai/ctypes/ctype"
	"github.com/wippyai/ctypes/errors"
)

const acmeYAML = `
layers:
  - name: acme
    parent: linux
    typedefs:
      handle_t: uint32
      serial_t: char[12]
      regs_t: uint16[4]
  - name: acme32
    parent: acme
    typedefs:
      - {name: reg_t, target: uint32, bits: 32}
      - {name: reg_t, target: uint64, bits: 64}
`

func TestLoadYAML(t *testing.T) {
	layers, err := LoadYAML(strings.NewReader(acmeYAML))
	if err != nil {
		t.Fatalf("LoadYAML failed: %v", err)
	}
	if len(layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(layers))
	}
	if got := layers[0].Entries[1]; got.Name != "serial_t" || got.Target != "char[12]" {
		t.Errorf("mapping order lost: %+v", got)
	}

	tables := Builtin()
	if err := tables.Merge(layers...); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	types, err := tables.Resolve("acme32", ctype.Big, 64)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	checks := map[string]int{
		"handle_t": 4,
		"serial_t": 12,
		"regs_t":   8,
		"reg_t":    8,
		"size_t":   8,
	}
	for name, size := range checks {
		typ, ok := types[name]
		if !ok {
			t.Errorf("%s missing", name)
			continue
		}
		if typ.Size() != size {
			t.Errorf("%s size = %d, want %d", name, typ.Size(), size)
		}
	}
	if types["serial_t"].Kind() != ctype.KindString {
		t.Errorf("char array should be a string, got %s", types["serial_t"].Kind())
	}
}

func TestLoadYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind errors.Kind
	}{
		{"unknown field", "layers:\n  - name: a\n    colour: red\n", errors.KindInvalidData},
		{"no name", "layers:\n  - typedefs: {a: uint8}\n", errors.KindInvalidInput},
		{"bad target", "layers:\n  - name: a\n    typedefs: {a: \"uint8[0]\"}\n", errors.KindInvalidInput},
		{"scalar typedefs", "layers:\n  - name: a\n    typedefs: 3\n", errors.KindInvalidData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.doc))
			if !errors.IsKind(err, tt.kind) {
				t.Errorf("LoadYAML error = %v, want %s", err, tt.kind)
			}
		})
	}
}

func TestLoadYAML_Empty(t *testing.T) {
	layers, err := LoadYAML(strings.NewReader(""))
	if err != nil || layers != nil {
		t.Errorf("empty document = %v, %v", layers, err)
	}
}

package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wippyai/ctypes/errors"
)

const acmeConfig = `
endian: big
arch: mips
os: acme
layers:
  - name: acme
    parent: linux
    typedefs:
      handle_t: uint32
      serial_t: char[12]
`

func TestConfig_Resolve(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(acmeConfig))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	reg, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if reg.Bits() != 32 {
		t.Errorf("Bits = %d, want 32", reg.Bits())
	}
	b, err := reg.MustLookup("handle_t").Pack(1)
	if err != nil {
		t.Fatal(err)
	}
	if b[3] != 1 {
		t.Errorf("handle_t should be big endian: % x", b)
	}
	if reg.MustLookup("serial_t").Size() != 12 {
		t.Error("serial_t size")
	}
}

func TestConfig_Builtin(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("arch: x86\nos: freebsd\n"))
	if err != nil {
		t.Fatal(err)
	}
	cache, err := cfg.Cache()
	if err != nil {
		t.Fatal(err)
	}
	if cache != Default() {
		t.Error("config without layers should use the default cache")
	}
	reg, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if reg.MustLookup("size_t").Size() != 4 {
		t.Error("freebsd x86 size_t should be 4 bytes")
	}
}

func TestConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platform.yaml")
	if err := os.WriteFile(path, []byte(acmeConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}
	if cfg.OS != "acme" || len(cfg.Layers) != 1 {
		t.Errorf("config = %+v", cfg)
	}

	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.IsKind(err, errors.KindInvalidInput) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(strings.NewReader("arch: x86\nbogus: 1\n")); !errors.IsKind(err, errors.KindInvalidData) {
		t.Errorf("unknown key error = %v", err)
	}

	cfg, err := LoadConfig(strings.NewReader("arch: z80\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Resolve(); !errors.IsKind(err, errors.KindInvalidPlatform) {
		t.Errorf("bad arch error = %v", err)
	}
}

package platform

import (
	stderrors "errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/typedef"
)

// Config describes a profile and optional extra typedef layers:
//
//	endian: big
//	arch: mips
//	os: acme
//	layers:
//	  - name: acme
//	    parent: linux
//	    typedefs:
//	      handle_t: uint32
type Config struct {
	Endian string              `yaml:"endian,omitempty"`
	Arch   string              `yaml:"arch,omitempty"`
	OS     string              `yaml:"os,omitempty"`
	Layers []typedef.YAMLLayer `yaml:"layers,omitempty"`
}

// LoadConfig decodes a Config from r. Unknown keys are rejected.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "decoding platform config")
	}
	return &cfg, nil
}

// LoadConfigFile reads a Config from a YAML file.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "opening "+path)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Cache returns a cache over the built-in layers plus the config's layers.
// Without extra layers it is the default cache.
func (c *Config) Cache() (*Cache, error) {
	if len(c.Layers) == 0 {
		return Default(), nil
	}
	tables := typedef.Builtin()
	file := typedef.File{Layers: c.Layers}
	if err := tables.Merge(file.AsLayers()...); err != nil {
		return nil, err
	}
	return NewCache(tables), nil
}

// Resolve builds the config's cache and resolves its profile.
func (c *Config) Resolve() (*Registry, error) {
	cache, err := c.Cache()
	if err != nil {
		return nil, err
	}
	return cache.For(c.Endian, c.Arch, c.OS)
}

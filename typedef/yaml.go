package typedef

import (
	stderrors "errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/ctypes/errors"
)

// File is the YAML document form of a set of layers:
//
//	layers:
//	  - name: acme
//	    parent: linux
//	    typedefs:
//	      handle_t: uint32
//	      serial_t: char[12]
//	  - name: acme32
//	    parent: acme
//	    typedefs:
//	      - {name: reg_t, target: uint32, bits: 32}
//
// Typedefs may be written either as an ordered mapping of name to target or
// as a sequence of entries; the mapping form preserves document order.
type File struct {
	Layers []YAMLLayer `yaml:"layers"`
}

// YAMLLayer is one layer as it appears in a File.
type YAMLLayer struct {
	Name     string    `yaml:"name"`
	Parent   string    `yaml:"parent,omitempty"`
	Typedefs EntryList `yaml:"typedefs"`
}

// EntryList decodes from a YAML mapping or sequence.
type EntryList []Entry

func (l *EntryList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(EntryList, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, v := node.Content[i], node.Content[i+1]
			if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: typedef mapping values must be type names", k.Line)
			}
			out = append(out, Entry{Name: k.Value, Target: v.Value})
		}
		*l = out
		return nil
	case yaml.SequenceNode:
		var entries []Entry
		if err := node.Decode(&entries); err != nil {
			return err
		}
		*l = entries
		return nil
	}
	return fmt.Errorf("line %d: typedefs must be a mapping or a sequence", node.Line)
}

// AsLayers converts the document into layers.
func (f *File) AsLayers() []Layer {
	out := make([]Layer, len(f.Layers))
	for i, l := range f.Layers {
		out[i] = Layer{Name: l.Name, Parent: l.Parent, Entries: []Entry(l.Typedefs)}
	}
	return out
}

// LoadYAML reads a File from r. An empty document yields no layers.
func LoadYAML(r io.Reader) ([]Layer, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "decoding typedef layers")
	}
	layers := f.AsLayers()
	for _, l := range layers {
		if l.Name == "" {
			return nil, errors.InvalidInput(errors.PhaseConfig, "layer has no name")
		}
		for _, e := range l.Entries {
			if err := checkEntry(e); err != nil {
				return nil, errors.WithPath(err, l.Name)
			}
		}
	}
	return layers, nil
}

// MergeYAML loads layers from r and merges them into t.
func (t *Tables) MergeYAML(r io.Reader) error {
	layers, err := LoadYAML(r)
	if err != nil {
		return err
	}
	return t.Merge(layers...)
}

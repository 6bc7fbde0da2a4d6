// Command gen writes the per-scalar Stream methods.
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/wippyai/ctypes/ctype"
)

type method struct {
	Name   string // canonical type name, e.g. uint16_le
	Suffix string // method suffix, e.g. Uint16LE
	GoType string // decoded Go type, e.g. uint16
}

var suffixes = []struct{ name, method string }{
	{"_net", "Net"},
	{"_le", "LE"},
	{"_be", "BE"},
	{"_ne", "NE"},
}

func methodFor(name string) method {
	base, suffix := name, ""
	for _, s := range suffixes {
		if strings.HasSuffix(name, s.name) {
			base, suffix = strings.TrimSuffix(name, s.name), s.method
			break
		}
	}
	return method{
		Name:   name,
		Suffix: strings.ToUpper(base[:1]) + base[1:] + suffix,
		GoType: base,
	}
}

var tmpl = template.Must(template.New("methods").Parse(`// Code generated by internal/gen. DO NOT EDIT.

package stream
{{range .}}
// Read{{.Suffix}} reads a {{.Name}}. It returns nil at end of input.
func (s *Stream) Read{{.Suffix}}() (*{{.GoType}}, error) {
	return Read[{{.GoType}}](s, "{{.Name}}")
}

// Write{{.Suffix}} writes v as a {{.Name}}.
func (s *Stream) Write{{.Suffix}}(v {{.GoType}}) (*Stream, error) {
	return Write(s, "{{.Name}}", v)
}

// ReadArrayOf{{.Suffix}} reads n {{.Name}} values in one request.
func (s *Stream) ReadArrayOf{{.Suffix}}(n int) ([]*{{.GoType}}, error) {
	return ReadArray[{{.GoType}}](s, "{{.Name}}", n)
}

// WriteArrayOf{{.Suffix}} writes values as {{.Name}} in one request.
func (s *Stream) WriteArrayOf{{.Suffix}}(values []{{.GoType}}) (*Stream, error) {
	return WriteArray(s, "{{.Name}}", values)
}
{{end}}`))

func main() {
	out := flag.String("o", "methods_gen.go", "output file")
	flag.Parse()

	var methods []method
	for _, name := range ctype.ScalarNames() {
		if name == "string" {
			continue
		}
		methods = append(methods, methodFor(name))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, methods); err != nil {
		log.Fatalf("execute template: %v", err)
	}
	src, err := imports.Process(filepath.Base(*out), buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("format: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}

package main

import "testing"

func TestMethodFor(t *testing.T) {
	tests := []struct {
		name string
		want method
	}{
		{"int8", method{Name: "int8", Suffix: "Int8", GoType: "int8"}},
		{"uint16_le", method{Name: "uint16_le", Suffix: "Uint16LE", GoType: "uint16"}},
		{"int64_net", method{Name: "int64_net", Suffix: "Int64Net", GoType: "int64"}},
		{"float32_ne", method{Name: "float32_ne", Suffix: "Float32NE", GoType: "float32"}},
		{"float64_be", method{Name: "float64_be", Suffix: "Float64BE", GoType: "float64"}},
	}
	for _, tt := range tests {
		if got := methodFor(tt.name); got != tt.want {
			t.Errorf("methodFor(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

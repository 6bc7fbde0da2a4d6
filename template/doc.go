// Package template compiles a list of type specs into a record that packs
// and unpacks values back to back, without alignment padding.
//
// Entries may be registry type names ("uint32", "size_t", "char[8]"),
// explicit Spec values, resolved ctype.Type values, or pack directive
// strings:
//
//	t, err := template.ParseFormat("C n a4")
//	raw, err := t.Pack(1, 0x1234, "ab")
//
// A string that names no registered type is parsed as a directive string;
// when it is neither, compilation fails with an unknown_type error.
package template

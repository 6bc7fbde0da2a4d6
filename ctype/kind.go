package ctype

type Kind uint8

const (
	KindInt Kind = iota
	KindUint
	KindFloat
	KindString
	KindArray
	KindStruct
	KindUnion
)

var kindNames = [...]string{
	KindInt:    "int",
	KindUint:   "uint",
	KindFloat:  "float",
	KindString: "string",
	KindArray:  "array",
	KindStruct: "struct",
	KindUnion:  "union",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether values of this kind are not decomposable.
func (k Kind) IsScalar() bool {
	return k <= KindString
}

// IsNumeric reports whether the kind is an integer or float encoding.
func (k Kind) IsNumeric() bool {
	return k <= KindFloat
}

package ctype

import "encoding/binary"

// Order is the byte order of a multi-byte scalar encoding.
type Order uint8

const (
	// Native follows the byte order of the host running the program.
	Native Order = iota
	Little
	Big
)

func (o Order) String() string {
	switch o {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return "native"
	}
}

// Suffix returns the type-name suffix for the order: "_le", "_be" or "_ne".
func (o Order) Suffix() string {
	switch o {
	case Little:
		return "_le"
	case Big:
		return "_be"
	default:
		return "_ne"
	}
}

// ByteOrder returns the encoding/binary order the scalar codec uses.
func (o Order) ByteOrder() binary.ByteOrder {
	switch o {
	case Little:
		return binary.LittleEndian
	case Big:
		return binary.BigEndian
	default:
		return binary.NativeEndian
	}
}

// HostOrder returns Little or Big for the machine running the program.
func HostOrder() Order {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	if probe[0] == 1 {
		return Little
	}
	return Big
}

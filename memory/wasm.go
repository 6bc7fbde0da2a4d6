package memory

import (
	"math"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/ctypes"
	"github.com/wippyai/ctypes/errors"
)

// WrapWasm adapts a wazero linear memory to ctypes.Memory. It returns nil
// for a nil memory.
func WrapWasm(mem api.Memory) ctypes.Memory {
	if mem == nil {
		return nil
	}
	return &Wasm{Mem: mem}
}

// Wasm adapts wazero api.Memory to ctypes.Memory. Size tracks the memory's
// current length, so it changes when the module grows its memory.
type Wasm struct {
	Mem api.Memory
}

func (m *Wasm) Size() int {
	return int(m.Mem.Size())
}

// Read returns a view of length bytes at offset. The view is only valid
// until the memory grows.
func (m *Wasm) Read(offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || uint64(offset) > math.MaxUint32 || uint64(length) > math.MaxUint32 {
		return nil, errors.OutOfBounds(errors.PhaseRead, offset, length, m.Size())
	}
	data, ok := m.Mem.Read(uint32(offset), uint32(length))
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseRead, offset, length, m.Size())
	}
	return data, nil
}

// Write copies data into the memory at offset.
func (m *Wasm) Write(offset int, data []byte) error {
	if offset < 0 || uint64(offset) > math.MaxUint32 {
		return errors.OutOfBounds(errors.PhaseWrite, offset, len(data), m.Size())
	}
	if !m.Mem.Write(uint32(offset), data) {
		return errors.OutOfBounds(errors.PhaseWrite, offset, len(data), m.Size())
	}
	return nil
}

// Grow extends the memory by delta pages and returns the previous size in
// pages.
func (m *Wasm) Grow(delta uint32) (uint32, bool) {
	return m.Mem.Grow(delta)
}

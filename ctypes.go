package ctypes

import (
	"errors"
	"io"
)

// Memory is a fixed-size addressable byte region.
type Memory interface {
	Read(offset, length int) ([]byte, error)
	Write(offset int, data []byte) error
	Size() int
}

// Endpoint is a byte-oriented I/O endpoint that typed stream operations
// decorate. The library never creates or closes the underlying resource.
type Endpoint interface {
	// ReadN returns up to n bytes. It returns fewer than n bytes only when
	// input ended, and (nil, io.EOF) when no bytes were left at all.
	ReadN(n int) ([]byte, error)
	// WriteBytes writes all of p or returns an error. It must not retain p.
	WriteBytes(p []byte) error
}

// IO adapts an io.ReadWriter into an Endpoint.
func IO(rw io.ReadWriter) Endpoint {
	return &rwEndpoint{r: rw, w: rw}
}

// Reader adapts an io.Reader into a read-only Endpoint. Writes fail.
func Reader(r io.Reader) Endpoint {
	return &rwEndpoint{r: r}
}

// Writer adapts an io.Writer into a write-only Endpoint. Reads fail.
func Writer(w io.Writer) Endpoint {
	return &rwEndpoint{w: w}
}

// ErrNotReadable and ErrNotWritable are returned by adapters built from a
// one-directional stream.
var (
	ErrNotReadable = errors.New("ctypes: endpoint is not readable")
	ErrNotWritable = errors.New("ctypes: endpoint is not writable")
)

type rwEndpoint struct {
	r   io.Reader
	w   io.Writer
	one [1]byte
}

// ReadByte reads a single byte without allocating. It uses the reader's
// own ReadByte when available.
func (e *rwEndpoint) ReadByte() (byte, error) {
	if e.r == nil {
		return 0, ErrNotReadable
	}
	if br, ok := e.r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	if _, err := io.ReadFull(e.r, e.one[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, io.EOF
		}
		return 0, err
	}
	return e.one[0], nil
}

func (e *rwEndpoint) ReadN(n int) ([]byte, error) {
	if e.r == nil {
		return nil, ErrNotReadable
	}
	if n <= 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	got, err := io.ReadFull(e.r, buf)
	switch {
	case err == nil:
		return buf, nil
	case errors.Is(err, io.EOF):
		return nil, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return buf[:got], nil
	default:
		return buf[:got], err
	}
}

func (e *rwEndpoint) WriteBytes(p []byte) error {
	if e.w == nil {
		return ErrNotWritable
	}
	n, err := e.w.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return nil
}

package imgio

import "os"

// Input is a single image source: either a path on disk or an in-memory
// encoded buffer. Construct one with FromFile or FromBytes; the zero value
// carries neither and fails to resolve.
type Input struct {
	kind kind
	path string
	buf  []byte

	// ID is an optional caller-supplied label used in error messages.
	// It never takes part in any computation.
	ID string
}

type kind int

const (
	kindNone kind = iota
	kindPath
	kindBuffer
)

// FromFile returns an Input backed by a file on disk.
func FromFile(path string) Input {
	return Input{kind: kindPath, path: path}
}

// FromBytes returns an Input backed by already-encoded image bytes.
// The buffer is not copied and must not be modified afterwards.
func FromBytes(buf []byte) Input {
	return Input{kind: kindBuffer, buf: buf}
}

// WithID returns a copy of the input carrying the given label.
func (in Input) WithID(id string) Input {
	in.ID = id
	return in
}

// Resolve returns the encoded image bytes for the input. Path inputs are
// read fully in one blocking call and read errors are returned as-is, not
// wrapped. Buffer inputs are returned without copying.
func (in Input) Resolve() ([]byte, error) {
	switch in.kind {
	case kindPath:
		return os.ReadFile(in.path)
	case kindBuffer:
		return in.buf, nil
	default:
		return nil, &InvalidInputError{ID: in.ID}
	}
}

package container

import (
	bzipper "github.com/bjoernager/bzipper-sub001"
	"github.com/bjoernager/bzipper-sub001/stream"
)

// Buffer is a fixed-size byte buffer used as encode/decode scratch. Each
// Write and Read starts from offset zero, so one Buffer serves any number
// of independent encode/decode cycles; it is storage, not a stream.
type Buffer struct {
	data []byte
}

// NewBuffer creates a Buffer of the given size in bytes.
func NewBuffer(size int) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// BufferFor creates a Buffer sized to the value's encoded-size bound, so
// any instance of the value's shape is guaranteed to fit.
func BufferFor(v bzipper.SizedEncodable) *Buffer {
	return NewBuffer(v.MaxEncodedSize())
}

// Size returns the buffer's fixed size in bytes.
func (b *Buffer) Size() int {
	return len(b.data)
}

// Bytes returns the backing storage. The caller may hand the returned
// slice to an Input cursor or copy it out; the Buffer retains ownership.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Write encodes v into the buffer from offset zero and returns the number
// of bytes produced.
func (b *Buffer) Write(v bzipper.Encodable) (int, error) {
	out := stream.NewOutput(b.data)
	if err := v.Encode(out); err != nil {
		return out.Position(), err
	}
	return out.Position(), nil
}

// Read decodes v from the buffer starting at offset zero.
func (b *Buffer) Read(v bzipper.Decodable) error {
	return v.Decode(stream.NewInput(b.data))
}

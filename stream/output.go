package stream

import (
	"github.com/bjoernager/bzipper-sub001/errors"
)

// Output is a write cursor over a borrowed, mutable byte slice.
type Output struct {
	data []byte
	pos  int
}

// NewOutput creates an Output writing into the given slice, starting at
// position zero. The Output borrows the slice; it must not outlive it.
func NewOutput(data []byte) *Output {
	return &Output{data: data}
}

// Position returns the current byte position.
func (out *Output) Position() int {
	return out.pos
}

// Capacity returns the total length of the backing slice.
func (out *Output) Capacity() int {
	return len(out.data)
}

// Remaining returns the number of bytes still writable.
func (out *Output) Remaining() int {
	return len(out.data) - out.pos
}

// Bytes returns the written prefix of the backing slice.
func (out *Output) Bytes() []byte {
	return out.data[:out.pos]
}

// Reset moves the cursor back to position zero. Previously written bytes
// remain in the backing slice until overwritten.
func (out *Output) Reset() {
	out.pos = 0
}

// Write copies b into the backing slice at the current position and
// advances the cursor. If the write would exceed the capacity, it fails
// with an OutputError and no bytes are written.
func (out *Output) Write(b []byte) error {
	if out.pos+len(b) > len(out.data) {
		return &errors.OutputError{
			Capacity:  len(out.data),
			Position:  out.pos,
			Requested: len(b),
		}
	}
	copy(out.data[out.pos:], b)
	out.pos += len(b)
	return nil
}

// WriteByte writes a single byte and advances the cursor.
func (out *Output) WriteByte(b byte) error {
	if out.pos >= len(out.data) {
		return &errors.OutputError{
			Capacity:  len(out.data),
			Position:  out.pos,
			Requested: 1,
		}
	}
	out.data[out.pos] = b
	out.pos++
	return nil
}

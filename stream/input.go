package stream

import (
	"github.com/bjoernager/bzipper-sub001/errors"
)

// Input is a read cursor over a borrowed byte slice.
type Input struct {
	data []byte
	pos  int
}

// NewInput creates an Input reading from the given slice, starting at
// position zero. The Input borrows the slice; it must not outlive it.
func NewInput(data []byte) *Input {
	return &Input{data: data}
}

// Position returns the current byte position.
func (in *Input) Position() int {
	return in.pos
}

// Capacity returns the total length of the backing slice.
func (in *Input) Capacity() int {
	return len(in.data)
}

// Remaining returns the number of unread bytes.
func (in *Input) Remaining() int {
	return len(in.data) - in.pos
}

// Read returns the next n bytes as a view into the backing slice and
// advances the cursor. If fewer than n bytes remain, it fails with an
// InputError and the cursor does not move.
func (in *Input) Read(n int) ([]byte, error) {
	if in.pos+n > len(in.data) {
		return nil, &errors.InputError{
			Capacity:  len(in.data),
			Position:  in.pos,
			Requested: n,
		}
	}
	b := in.data[in.pos : in.pos+n]
	in.pos += n
	return b, nil
}

// ReadByte reads a single byte and advances the cursor.
func (in *Input) ReadByte() (byte, error) {
	if in.pos >= len(in.data) {
		return 0, &errors.InputError{
			Capacity:  len(in.data),
			Position:  in.pos,
			Requested: 1,
		}
	}
	b := in.data[in.pos]
	in.pos++
	return b, nil
}

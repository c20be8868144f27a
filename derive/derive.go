package derive

import (
	"github.com/bjoernager/bzipper-sub001/errors"
	"github.com/bjoernager/bzipper-sub001/stream"
)

var defaultCompiler = NewCompiler()

// Encode writes v's wire encoding through out using the default compiler.
func Encode(v any, out *stream.Output) error {
	return defaultCompiler.Encode(v, out)
}

// Decode reads v's wire encoding from in using the default compiler. v
// must be a non-nil pointer.
func Decode(v any, in *stream.Input) error {
	return defaultCompiler.Decode(v, in)
}

// MaxEncodedSize returns the upper bound on v's encoded byte length.
func MaxEncodedSize(v any) (int, error) {
	return defaultCompiler.MaxEncodedSize(v)
}

// EncodedSize returns the exact number of bytes Encode would produce for v.
func EncodedSize(v any) (int, error) {
	return defaultCompiler.EncodedSize(v)
}

// Marshal encodes v into a freshly allocated, exactly-sized byte slice.
func Marshal(v any) ([]byte, error) {
	return defaultCompiler.Marshal(v)
}

// Unmarshal decodes data into v, which must be a non-nil pointer.
func Unmarshal(data []byte, v any) error {
	return defaultCompiler.Unmarshal(data, v)
}

// Marshal encodes v into a freshly allocated, exactly-sized byte slice.
func (c *Compiler) Marshal(v any) ([]byte, error) {
	size, err := c.EncodedSize(v)
	if err != nil {
		return nil, &errors.EncodeError{Cause: err}
	}
	buf := make([]byte, size)
	out := stream.NewOutput(buf)
	if err := c.Encode(v, out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Unmarshal decodes data into v, which must be a non-nil pointer.
func (c *Compiler) Unmarshal(data []byte, v any) error {
	return c.Decode(v, stream.NewInput(data))
}

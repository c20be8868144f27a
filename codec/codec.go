package codec

import (
	"encoding/binary"
	"math"

	"github.com/bjoernager/bzipper-sub001/errors"
	"github.com/bjoernager/bzipper-sub001/stream"
)

// Encoded sizes of the primitive types, in bytes.
const (
	SizeBool  = 1
	SizeU8    = 1
	SizeU16   = 2
	SizeU32   = 4
	SizeU64   = 8
	SizeI8    = 1
	SizeI16   = 2
	SizeI32   = 4
	SizeI64   = 8
	SizeF32   = 4
	SizeF64   = 8
	SizeChar  = 4
	SizeUsize = 2
	SizeIsize = 2
)

// WriteBool writes a boolean as a single byte, 0x00 or 0x01.
func WriteBool(out *stream.Output, v bool) error {
	b := byte(0x00)
	if v {
		b = 0x01
	}
	return out.WriteByte(b)
}

// ReadBool reads a boolean. Any byte other than 0x00 or 0x01 fails with a
// BoolError naming the byte.
func ReadBool(in *stream.Input) (bool, error) {
	b, err := in.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, &errors.BoolError{Value: b}
	}
}

// WriteU8 writes an unsigned 8-bit integer.
func WriteU8(out *stream.Output, v uint8) error {
	return out.WriteByte(v)
}

// ReadU8 reads an unsigned 8-bit integer.
func ReadU8(in *stream.Input) (uint8, error) {
	return in.ReadByte()
}

// WriteU16 writes a big-endian unsigned 16-bit integer.
func WriteU16(out *stream.Output, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	return out.Write(buf[:])
}

// ReadU16 reads a big-endian unsigned 16-bit integer.
func ReadU16(in *stream.Input) (uint16, error) {
	b, err := in.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// WriteU32 writes a big-endian unsigned 32-bit integer.
func WriteU32(out *stream.Output, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return out.Write(buf[:])
}

// ReadU32 reads a big-endian unsigned 32-bit integer.
func ReadU32(in *stream.Input) (uint32, error) {
	b, err := in.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// WriteU64 writes a big-endian unsigned 64-bit integer.
func WriteU64(out *stream.Output, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return out.Write(buf[:])
}

// ReadU64 reads a big-endian unsigned 64-bit integer.
func ReadU64(in *stream.Input) (uint64, error) {
	b, err := in.Read(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// WriteI8 writes a signed 8-bit integer as its two's-complement byte.
func WriteI8(out *stream.Output, v int8) error {
	return out.WriteByte(byte(v))
}

// ReadI8 reads a signed 8-bit integer.
func ReadI8(in *stream.Input) (int8, error) {
	b, err := in.ReadByte()
	return int8(b), err
}

// WriteI16 writes a big-endian signed 16-bit integer.
func WriteI16(out *stream.Output, v int16) error {
	return WriteU16(out, uint16(v))
}

// ReadI16 reads a big-endian signed 16-bit integer.
func ReadI16(in *stream.Input) (int16, error) {
	v, err := ReadU16(in)
	return int16(v), err
}

// WriteI32 writes a big-endian signed 32-bit integer.
func WriteI32(out *stream.Output, v int32) error {
	return WriteU32(out, uint32(v))
}

// ReadI32 reads a big-endian signed 32-bit integer.
func ReadI32(in *stream.Input) (int32, error) {
	v, err := ReadU32(in)
	return int32(v), err
}

// WriteI64 writes a big-endian signed 64-bit integer.
func WriteI64(out *stream.Output, v int64) error {
	return WriteU64(out, uint64(v))
}

// ReadI64 reads a big-endian signed 64-bit integer.
func ReadI64(in *stream.Input) (int64, error) {
	v, err := ReadU64(in)
	return int64(v), err
}

// WriteF32 writes an IEEE-754 single-precision float, big-endian.
func WriteF32(out *stream.Output, v float32) error {
	return WriteU32(out, math.Float32bits(v))
}

// ReadF32 reads an IEEE-754 single-precision float.
func ReadF32(in *stream.Input) (float32, error) {
	bits, err := ReadU32(in)
	return math.Float32frombits(bits), err
}

// WriteF64 writes an IEEE-754 double-precision float, big-endian.
func WriteF64(out *stream.Output, v float64) error {
	return WriteU64(out, math.Float64bits(v))
}

// ReadF64 reads an IEEE-754 double-precision float.
func ReadF64(in *stream.Input) (float64, error) {
	bits, err := ReadU64(in)
	return math.Float64frombits(bits), err
}

// WriteChar writes a Unicode scalar value as a big-endian UTF-32 code
// point. A rune holding a surrogate or a value above U+10FFFF fails with a
// CharError; unlike the source of most runes, an arbitrary int32 converted
// to rune can hold either.
func WriteChar(out *stream.Output, r rune) error {
	if !isScalar(uint32(r)) || r < 0 {
		return &errors.CharError{CodePoint: uint32(r)}
	}
	return WriteU32(out, uint32(r))
}

// ReadChar reads a big-endian UTF-32 code point. Surrogates and values
// above U+10FFFF fail with a CharError naming the code point.
func ReadChar(in *stream.Input) (rune, error) {
	cp, err := ReadU32(in)
	if err != nil {
		return 0, err
	}
	if !isScalar(cp) {
		return 0, &errors.CharError{CodePoint: cp}
	}
	return rune(cp), nil
}

func isScalar(cp uint32) bool {
	if cp >= 0xD800 && cp <= 0xDFFF {
		return false
	}
	return cp <= 0x10FFFF
}

// WriteUsize writes an unsigned size as a big-endian 16-bit integer.
// Values above 65535 fail with a UsizeError rather than truncating.
func WriteUsize(out *stream.Output, v uint) error {
	if v > math.MaxUint16 {
		return &errors.UsizeError{Value: v}
	}
	return WriteU16(out, uint16(v))
}

// ReadUsize reads an unsigned size, widening the 16-bit wire value. It
// never fails on range.
func ReadUsize(in *stream.Input) (uint, error) {
	v, err := ReadU16(in)
	return uint(v), err
}

// WriteIsize writes a signed size as a big-endian 16-bit integer. Values
// outside the 16-bit signed range fail with an IsizeError.
func WriteIsize(out *stream.Output, v int) error {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return &errors.IsizeError{Value: v}
	}
	return WriteI16(out, int16(v))
}

// ReadIsize reads a signed size, widening the 16-bit wire value. It never
// fails on range.
func ReadIsize(in *stream.Input) (int, error) {
	v, err := ReadI16(in)
	return int(v), err
}

package errors

import (
	"fmt"
)

// InputError reports a read past the end of an Input cursor.
type InputError struct {
	Capacity  int
	Position  int
	Requested int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("read of %d bytes at position %d exceeds capacity %d",
		e.Requested, e.Position, e.Capacity)
}

// OutputError reports a write past the end of an Output cursor.
type OutputError struct {
	Capacity  int
	Position  int
	Requested int
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("write of %d bytes at position %d exceeds capacity %d",
		e.Requested, e.Position, e.Capacity)
}

// BoolError reports a boolean decode of a byte other than 0x00 or 0x01.
type BoolError struct {
	Value byte
}

func (e *BoolError) Error() string {
	return fmt.Sprintf("invalid boolean byte 0x%02X", e.Value)
}

// CharError reports a character decode (or encode of a Go rune) whose code
// point is not a Unicode scalar value: a surrogate, or above U+10FFFF.
type CharError struct {
	CodePoint uint32
}

func (e *CharError) Error() string {
	return fmt.Sprintf("invalid code point U+%04X", e.CodePoint)
}

// Utf8Error reports an invalid byte in a UTF-8 sequence.
type Utf8Error struct {
	Value byte
	Index int
}

func (e *Utf8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 byte 0x%02X at index %d", e.Value, e.Index)
}

// Utf16Error reports an invalid hextet in a UTF-16 sequence, such as an
// unpaired surrogate.
type Utf16Error struct {
	Value uint16
	Index int
}

func (e *Utf16Error) Error() string {
	return fmt.Sprintf("invalid UTF-16 hextet 0x%04X at index %d", e.Value, e.Index)
}

// SizeError reports a length that exceeds a fixed capacity: a decode whose
// length prefix is larger than the destination container, or an insertion
// into a full container.
type SizeError struct {
	Cap int
	Len int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("length %d exceeds capacity %d", e.Len, e.Cap)
}

// IsizeError reports a signed size whose value does not fit the 16-bit
// wire encoding.
type IsizeError struct {
	Value int
}

func (e *IsizeError) Error() string {
	return fmt.Sprintf("signed size %d outside 16-bit range", e.Value)
}

// UsizeError reports an unsigned size whose value does not fit the 16-bit
// wire encoding.
type UsizeError struct {
	Value uint
}

func (e *UsizeError) Error() string {
	return fmt.Sprintf("unsigned size %d outside 16-bit range", e.Value)
}

// DiscriminantError reports an enumeration decode whose discriminant
// matches no registered variant.
type DiscriminantError struct {
	Value uint16
}

func (e *DiscriminantError) Error() string {
	return fmt.Sprintf("unknown discriminant %d", e.Value)
}

// EncodeError is the umbrella error returned by composite encode
// operations. It wraps the field- or element-level cause.
type EncodeError struct {
	Cause error
}

func (e *EncodeError) Error() string {
	return "encode: " + e.Cause.Error()
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// DecodeError is the umbrella error returned by composite decode
// operations. It wraps the field- or element-level cause.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return "decode: " + e.Cause.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

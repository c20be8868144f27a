package codec

import (
	"github.com/bjoernager/bzipper-sub001/stream"
)

// Bool is a boolean carrying its wire encoding as methods.
type Bool bool

func (v Bool) Encode(out *stream.Output) error { return WriteBool(out, bool(v)) }

func (v *Bool) Decode(in *stream.Input) error {
	b, err := ReadBool(in)
	if err != nil {
		return err
	}
	*v = Bool(b)
	return nil
}

func (Bool) MaxEncodedSize() int { return SizeBool }

// U8 is an unsigned 8-bit integer carrying its wire encoding as methods.
type U8 uint8

func (v U8) Encode(out *stream.Output) error { return WriteU8(out, uint8(v)) }

func (v *U8) Decode(in *stream.Input) error {
	b, err := ReadU8(in)
	if err != nil {
		return err
	}
	*v = U8(b)
	return nil
}

func (U8) MaxEncodedSize() int { return SizeU8 }

// U16 is an unsigned 16-bit integer carrying its wire encoding as methods.
type U16 uint16

func (v U16) Encode(out *stream.Output) error { return WriteU16(out, uint16(v)) }

func (v *U16) Decode(in *stream.Input) error {
	b, err := ReadU16(in)
	if err != nil {
		return err
	}
	*v = U16(b)
	return nil
}

func (U16) MaxEncodedSize() int { return SizeU16 }

// U32 is an unsigned 32-bit integer carrying its wire encoding as methods.
type U32 uint32

func (v U32) Encode(out *stream.Output) error { return WriteU32(out, uint32(v)) }

func (v *U32) Decode(in *stream.Input) error {
	b, err := ReadU32(in)
	if err != nil {
		return err
	}
	*v = U32(b)
	return nil
}

func (U32) MaxEncodedSize() int { return SizeU32 }

// U64 is an unsigned 64-bit integer carrying its wire encoding as methods.
type U64 uint64

func (v U64) Encode(out *stream.Output) error { return WriteU64(out, uint64(v)) }

func (v *U64) Decode(in *stream.Input) error {
	b, err := ReadU64(in)
	if err != nil {
		return err
	}
	*v = U64(b)
	return nil
}

func (U64) MaxEncodedSize() int { return SizeU64 }

// I8 is a signed 8-bit integer carrying its wire encoding as methods.
type I8 int8

func (v I8) Encode(out *stream.Output) error { return WriteI8(out, int8(v)) }

func (v *I8) Decode(in *stream.Input) error {
	b, err := ReadI8(in)
	if err != nil {
		return err
	}
	*v = I8(b)
	return nil
}

func (I8) MaxEncodedSize() int { return SizeI8 }

// I16 is a signed 16-bit integer carrying its wire encoding as methods.
type I16 int16

func (v I16) Encode(out *stream.Output) error { return WriteI16(out, int16(v)) }

func (v *I16) Decode(in *stream.Input) error {
	b, err := ReadI16(in)
	if err != nil {
		return err
	}
	*v = I16(b)
	return nil
}

func (I16) MaxEncodedSize() int { return SizeI16 }

// I32 is a signed 32-bit integer carrying its wire encoding as methods.
type I32 int32

func (v I32) Encode(out *stream.Output) error { return WriteI32(out, int32(v)) }

func (v *I32) Decode(in *stream.Input) error {
	b, err := ReadI32(in)
	if err != nil {
		return err
	}
	*v = I32(b)
	return nil
}

func (I32) MaxEncodedSize() int { return SizeI32 }

// I64 is a signed 64-bit integer carrying its wire encoding as methods.
type I64 int64

func (v I64) Encode(out *stream.Output) error { return WriteI64(out, int64(v)) }

func (v *I64) Decode(in *stream.Input) error {
	b, err := ReadI64(in)
	if err != nil {
		return err
	}
	*v = I64(b)
	return nil
}

func (I64) MaxEncodedSize() int { return SizeI64 }

// F32 is a single-precision float carrying its wire encoding as methods.
type F32 float32

func (v F32) Encode(out *stream.Output) error { return WriteF32(out, float32(v)) }

func (v *F32) Decode(in *stream.Input) error {
	b, err := ReadF32(in)
	if err != nil {
		return err
	}
	*v = F32(b)
	return nil
}

func (F32) MaxEncodedSize() int { return SizeF32 }

// F64 is a double-precision float carrying its wire encoding as methods.
type F64 float64

func (v F64) Encode(out *stream.Output) error { return WriteF64(out, float64(v)) }

func (v *F64) Decode(in *stream.Input) error {
	b, err := ReadF64(in)
	if err != nil {
		return err
	}
	*v = F64(b)
	return nil
}

func (F64) MaxEncodedSize() int { return SizeF64 }

// Char is a Unicode scalar value carrying its wire encoding as methods.
type Char rune

func (v Char) Encode(out *stream.Output) error { return WriteChar(out, rune(v)) }

func (v *Char) Decode(in *stream.Input) error {
	r, err := ReadChar(in)
	if err != nil {
		return err
	}
	*v = Char(r)
	return nil
}

func (Char) MaxEncodedSize() int { return SizeChar }

// Usize is an unsigned size carrying the compact wire encoding as methods.
type Usize uint

func (v Usize) Encode(out *stream.Output) error { return WriteUsize(out, uint(v)) }

func (v *Usize) Decode(in *stream.Input) error {
	n, err := ReadUsize(in)
	if err != nil {
		return err
	}
	*v = Usize(n)
	return nil
}

func (Usize) MaxEncodedSize() int { return SizeUsize }

// Isize is a signed size carrying the compact wire encoding as methods.
type Isize int

func (v Isize) Encode(out *stream.Output) error { return WriteIsize(out, int(v)) }

func (v *Isize) Decode(in *stream.Input) error {
	n, err := ReadIsize(in)
	if err != nil {
		return err
	}
	*v = Isize(n)
	return nil
}

func (Isize) MaxEncodedSize() int { return SizeIsize }

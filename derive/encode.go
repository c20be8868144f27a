package derive

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	bzipper "github.com/bjoernager/bzipper-sub001"
	"github.com/bjoernager/bzipper-sub001/codec"
	"github.com/bjoernager/bzipper-sub001/errors"
	"github.com/bjoernager/bzipper-sub001/stream"
)

// Encode writes v's wire encoding through out. Any failure, from an
// unsupported type to a stream overflow, is wrapped in an EncodeError.
func (c *Compiler) Encode(v any, out *stream.Output) error {
	rv, err := addressable(v)
	if err != nil {
		return &errors.EncodeError{Cause: err}
	}
	ct, err := c.Compile(rv.Type())
	if err != nil {
		return &errors.EncodeError{Cause: err}
	}
	if err := c.encodeValue(ct, rv, out); err != nil {
		return &errors.EncodeError{Cause: err}
	}
	return nil
}

// addressable normalizes v into an addressable reflect.Value, so every
// field and element reached during the walk can produce a pointer for the
// delegated codec methods.
func addressable(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return reflect.Value{}, fmt.Errorf("nil value")
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("nil pointer of type %s", rv.Type())
		}
		return rv.Elem(), nil
	}
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	return p.Elem(), nil
}

func (c *Compiler) encodeValue(ct *CompiledType, rv reflect.Value, out *stream.Output) error {
	switch ct.Kind {
	case KindSelf:
		return rv.Addr().Interface().(bzipper.Encodable).Encode(out)
	case KindBool:
		return codec.WriteBool(out, rv.Bool())
	case KindU8:
		return codec.WriteU8(out, uint8(rv.Uint()))
	case KindU16:
		return codec.WriteU16(out, uint16(rv.Uint()))
	case KindU32:
		return codec.WriteU32(out, uint32(rv.Uint()))
	case KindU64:
		return codec.WriteU64(out, rv.Uint())
	case KindI8:
		return codec.WriteI8(out, int8(rv.Int()))
	case KindI16:
		return codec.WriteI16(out, int16(rv.Int()))
	case KindI32:
		return codec.WriteI32(out, int32(rv.Int()))
	case KindI64:
		return codec.WriteI64(out, rv.Int())
	case KindF32:
		return codec.WriteF32(out, float32(rv.Float()))
	case KindF64:
		return codec.WriteF64(out, rv.Float())
	case KindUsize:
		return codec.WriteUsize(out, uint(rv.Uint()))
	case KindIsize:
		return codec.WriteIsize(out, int(rv.Int()))
	case KindString:
		return encodeString(rv.String(), out)
	case KindArray:
		for i := 0; i < rv.Len(); i++ {
			if err := c.encodeValue(ct.Elem, rv.Index(i), out); err != nil {
				return err
			}
		}
		return nil
	case KindSlice:
		if err := codec.WriteUsize(out, uint(rv.Len())); err != nil {
			return err
		}
		for i := 0; i < rv.Len(); i++ {
			if err := c.encodeValue(ct.Elem, rv.Index(i), out); err != nil {
				return err
			}
		}
		return nil
	case KindStruct:
		for _, f := range ct.Fields {
			if err := c.encodeValue(f.typ, rv.Field(f.index), out); err != nil {
				return err
			}
		}
		return nil
	case KindEnum:
		return c.encodeEnum(ct, rv, out)
	default:
		return fmt.Errorf("unsupported kind %s", ct.Kind)
	}
}

// encodeString writes the scalar count followed by each scalar as UTF-32,
// the same wire form container.SizedStr uses.
func encodeString(s string, out *stream.Output) error {
	count := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return &errors.Utf8Error{Value: s[i], Index: i}
		}
		count++
		i += size
	}
	if err := codec.WriteUsize(out, uint(count)); err != nil {
		return err
	}
	for _, r := range s {
		if err := codec.WriteChar(out, r); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) encodeEnum(ct *CompiledType, rv reflect.Value, out *stream.Output) error {
	if rv.IsNil() {
		return fmt.Errorf("nil value for enum %s", ct.GoType)
	}
	dyn := rv.Elem()
	disc, ok := ct.Enum.disc[dyn.Type()]
	if !ok {
		return fmt.Errorf("enum %s: %s is not a registered variant", ct.GoType, dyn.Type())
	}
	if err := codec.WriteUsize(out, uint(disc)); err != nil {
		return err
	}
	vt, err := c.Compile(dyn.Type())
	if err != nil {
		return err
	}
	// Interface contents are not addressable; copy the variant out.
	p := reflect.New(dyn.Type())
	p.Elem().Set(dyn)
	return c.encodeValue(vt, p.Elem(), out)
}

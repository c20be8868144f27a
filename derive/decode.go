package derive

import (
	"fmt"
	"reflect"

	bzipper "github.com/bjoernager/bzipper-sub001"
	"github.com/bjoernager/bzipper-sub001/codec"
	"github.com/bjoernager/bzipper-sub001/errors"
	"github.com/bjoernager/bzipper-sub001/stream"
)

// Decode reads v's wire encoding from in. v must be a non-nil pointer.
// Any failure is wrapped in a DecodeError; on failure v's contents are
// unspecified and no partial value should be used.
func (c *Compiler) Decode(v any, in *stream.Input) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &errors.DecodeError{Cause: fmt.Errorf("decode destination must be a non-nil pointer, got %T", v)}
	}
	ct, err := c.Compile(rv.Type().Elem())
	if err != nil {
		return &errors.DecodeError{Cause: err}
	}
	if err := c.decodeValue(ct, rv.Elem(), in); err != nil {
		return &errors.DecodeError{Cause: err}
	}
	return nil
}

func (c *Compiler) decodeValue(ct *CompiledType, rv reflect.Value, in *stream.Input) error {
	switch ct.Kind {
	case KindSelf:
		return rv.Addr().Interface().(bzipper.Decodable).Decode(in)
	case KindBool:
		v, err := codec.ReadBool(in)
		if err != nil {
			return err
		}
		rv.SetBool(v)
		return nil
	case KindU8:
		v, err := codec.ReadU8(in)
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
		return nil
	case KindU16:
		v, err := codec.ReadU16(in)
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
		return nil
	case KindU32:
		v, err := codec.ReadU32(in)
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
		return nil
	case KindU64:
		v, err := codec.ReadU64(in)
		if err != nil {
			return err
		}
		rv.SetUint(v)
		return nil
	case KindI8:
		v, err := codec.ReadI8(in)
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
		return nil
	case KindI16:
		v, err := codec.ReadI16(in)
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
		return nil
	case KindI32:
		v, err := codec.ReadI32(in)
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
		return nil
	case KindI64:
		v, err := codec.ReadI64(in)
		if err != nil {
			return err
		}
		rv.SetInt(v)
		return nil
	case KindF32:
		v, err := codec.ReadF32(in)
		if err != nil {
			return err
		}
		rv.SetFloat(float64(v))
		return nil
	case KindF64:
		v, err := codec.ReadF64(in)
		if err != nil {
			return err
		}
		rv.SetFloat(v)
		return nil
	case KindUsize:
		v, err := codec.ReadUsize(in)
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
		return nil
	case KindIsize:
		v, err := codec.ReadIsize(in)
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
		return nil
	case KindString:
		n, err := codec.ReadUsize(in)
		if err != nil {
			return err
		}
		scalars := make([]rune, n)
		for i := range scalars {
			r, err := codec.ReadChar(in)
			if err != nil {
				return err
			}
			scalars[i] = r
		}
		rv.SetString(string(scalars))
		return nil
	case KindArray:
		for i := 0; i < rv.Len(); i++ {
			if err := c.decodeValue(ct.Elem, rv.Index(i), in); err != nil {
				return err
			}
		}
		return nil
	case KindSlice:
		n, err := codec.ReadUsize(in)
		if err != nil {
			return err
		}
		s := reflect.MakeSlice(ct.GoType, int(n), int(n))
		for i := 0; i < int(n); i++ {
			if err := c.decodeValue(ct.Elem, s.Index(i), in); err != nil {
				return err
			}
		}
		rv.Set(s)
		return nil
	case KindStruct:
		for _, f := range ct.Fields {
			if err := c.decodeValue(f.typ, rv.Field(f.index), in); err != nil {
				return err
			}
		}
		return nil
	case KindEnum:
		return c.decodeEnum(ct, rv, in)
	default:
		return fmt.Errorf("unsupported kind %s", ct.Kind)
	}
}

func (c *Compiler) decodeEnum(ct *CompiledType, rv reflect.Value, in *stream.Input) error {
	disc, err := codec.ReadUsize(in)
	if err != nil {
		return err
	}
	if int(disc) >= len(ct.Enum.variants) {
		return &errors.DiscriminantError{Value: uint16(disc)}
	}
	variant := ct.Enum.variants[disc]
	vt, err := c.Compile(variant)
	if err != nil {
		return err
	}
	p := reflect.New(variant)
	if err := c.decodeValue(vt, p.Elem(), in); err != nil {
		return err
	}
	rv.Set(p.Elem())
	return nil
}

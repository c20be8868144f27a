package derive

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	bzipper "github.com/bjoernager/bzipper-sub001"
	"github.com/bjoernager/bzipper-sub001/codec"
	"github.com/bjoernager/bzipper-sub001/stream"
)

var primitiveSizes = map[TypeKind]int{
	KindBool:  codec.SizeBool,
	KindU8:    codec.SizeU8,
	KindU16:   codec.SizeU16,
	KindU32:   codec.SizeU32,
	KindU64:   codec.SizeU64,
	KindI8:    codec.SizeI8,
	KindI16:   codec.SizeI16,
	KindI32:   codec.SizeI32,
	KindI64:   codec.SizeI64,
	KindF32:   codec.SizeF32,
	KindF64:   codec.SizeF64,
	KindUsize: codec.SizeUsize,
	KindIsize: codec.SizeIsize,
}

// MaxEncodedSize returns the upper bound on v's encoded byte length. It
// fails for values containing unbounded kinds: strings, bare slices, or
// delegated types without a size bound.
func (c *Compiler) MaxEncodedSize(v any) (int, error) {
	rv, err := addressable(v)
	if err != nil {
		return 0, err
	}
	ct, err := c.Compile(rv.Type())
	if err != nil {
		return 0, err
	}
	return c.maxSize(ct, rv)
}

func (c *Compiler) maxSize(ct *CompiledType, rv reflect.Value) (int, error) {
	if n, ok := primitiveSizes[ct.Kind]; ok {
		return n, nil
	}
	switch ct.Kind {
	case KindSelf:
		if se, ok := rv.Addr().Interface().(bzipper.SizedEncodable); ok {
			return se.MaxEncodedSize(), nil
		}
		return 0, fmt.Errorf("type %s carries codec methods but no encoded-size bound", ct.GoType)
	case KindArray:
		total := 0
		for i := 0; i < rv.Len(); i++ {
			n, err := c.maxSize(ct.Elem, rv.Index(i))
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	case KindStruct:
		total := 0
		for _, f := range ct.Fields {
			n, err := c.maxSize(f.typ, rv.Field(f.index))
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	case KindEnum:
		// Only one variant is ever materialized, so the bound is the
		// largest variant's bound, not the sum over variants.
		largest := 0
		for _, variant := range ct.Enum.variants {
			vt, err := c.Compile(variant)
			if err != nil {
				return 0, err
			}
			n, err := c.maxSize(vt, reflect.New(variant).Elem())
			if err != nil {
				return 0, err
			}
			if n > largest {
				largest = n
			}
		}
		return codec.SizeUsize + largest, nil
	case KindString, KindSlice:
		return 0, fmt.Errorf("type %s has no encoded-size bound", ct.GoType)
	default:
		return 0, fmt.Errorf("unsupported kind %s", ct.Kind)
	}
}

// EncodedSize returns the exact number of bytes Encode would produce for
// v. Unlike MaxEncodedSize it works for unbounded kinds, since it measures
// a concrete value.
func (c *Compiler) EncodedSize(v any) (int, error) {
	rv, err := addressable(v)
	if err != nil {
		return 0, err
	}
	ct, err := c.Compile(rv.Type())
	if err != nil {
		return 0, err
	}
	return c.exactSize(ct, rv)
}

func (c *Compiler) exactSize(ct *CompiledType, rv reflect.Value) (int, error) {
	if n, ok := primitiveSizes[ct.Kind]; ok {
		return n, nil
	}
	switch ct.Kind {
	case KindSelf:
		se, ok := rv.Addr().Interface().(bzipper.SizedEncodable)
		if !ok {
			return 0, fmt.Errorf("type %s carries codec methods but no encoded-size bound", ct.GoType)
		}
		// No sizing hook on delegated types; encode into scratch and
		// count.
		buf := make([]byte, se.MaxEncodedSize())
		out := stream.NewOutput(buf)
		if err := se.Encode(out); err != nil {
			return 0, err
		}
		return out.Position(), nil
	case KindString:
		return codec.SizeUsize + utf8.RuneCountInString(rv.String())*codec.SizeChar, nil
	case KindArray, KindSlice:
		total := 0
		if ct.Kind == KindSlice {
			total = codec.SizeUsize
		}
		for i := 0; i < rv.Len(); i++ {
			n, err := c.exactSize(ct.Elem, rv.Index(i))
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	case KindStruct:
		total := 0
		for _, f := range ct.Fields {
			n, err := c.exactSize(f.typ, rv.Field(f.index))
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	case KindEnum:
		if rv.IsNil() {
			return 0, fmt.Errorf("nil value for enum %s", ct.GoType)
		}
		dyn := rv.Elem()
		vt, err := c.Compile(dyn.Type())
		if err != nil {
			return 0, err
		}
		p := reflect.New(dyn.Type())
		p.Elem().Set(dyn)
		n, err := c.exactSize(vt, p.Elem())
		if err != nil {
			return 0, err
		}
		return codec.SizeUsize + n, nil
	default:
		return 0, fmt.Errorf("unsupported kind %s", ct.Kind)
	}
}

package derive

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"

	bzipper "github.com/bjoernager/bzipper-sub001"
)

// TypeKind identifies how a compiled type is laid out on the wire.
type TypeKind uint8

const (
	KindInvalid TypeKind = iota
	KindBool
	KindU8
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
	KindUsize
	KindIsize
	KindString
	KindArray
	KindSlice
	KindStruct
	KindEnum
	KindSelf
)

var kindNames = map[TypeKind]string{
	KindBool:   "bool",
	KindU8:     "u8",
	KindU16:    "u16",
	KindU32:    "u32",
	KindU64:    "u64",
	KindI8:     "i8",
	KindI16:    "i16",
	KindI32:    "i32",
	KindI64:    "i64",
	KindF32:    "f32",
	KindF64:    "f64",
	KindUsize:  "usize",
	KindIsize:  "isize",
	KindString: "string",
	KindArray:  "array",
	KindSlice:  "slice",
	KindStruct: "struct",
	KindEnum:   "enum",
	KindSelf:   "self",
}

func (k TypeKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "invalid"
}

// CompiledType is the cached wire layout of a Go type.
type CompiledType struct {
	GoType reflect.Type
	Elem   *CompiledType // arrays and slices
	Enum   *enumSpec     // registered enums
	Fields []compiledField
	Kind   TypeKind
}

type compiledField struct {
	typ   *CompiledType
	name  string
	index int
}

// Compiler turns Go types into compiled wire layouts, caching the result
// per type.
type Compiler struct {
	cache sync.Map // reflect.Type -> *CompiledType
}

// NewCompiler creates an empty Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

var (
	encodableType = reflect.TypeOf((*bzipper.Encodable)(nil)).Elem()
	decodableType = reflect.TypeOf((*bzipper.Decodable)(nil)).Elem()
	sizedType     = reflect.TypeOf((*bzipper.SizedEncodable)(nil)).Elem()
)

// Compile returns the wire layout for t, compiling and caching it on first
// use.
func (c *Compiler) Compile(t reflect.Type) (*CompiledType, error) {
	if cached, ok := c.cache.Load(t); ok {
		return cached.(*CompiledType), nil
	}

	ct, err := c.compile(t, t.String())
	if err != nil {
		return nil, err
	}

	c.cache.Store(t, ct)
	Logger().Debug("compiled type layout",
		zap.String("type", t.String()),
		zap.String("kind", ct.Kind.String()),
		zap.Int("fields", len(ct.Fields)))
	return ct, nil
}

func (c *Compiler) compile(t reflect.Type, path string) (*CompiledType, error) {
	if t.Kind() == reflect.Interface {
		if spec, ok := enumFor(t); ok {
			return &CompiledType{GoType: t, Kind: KindEnum, Enum: spec}, nil
		}
		return nil, fmt.Errorf("%s: interface %s is not a registered enum", path, t)
	}

	// Types carrying their own codec methods are delegated to, including
	// the codec wrapper types and the container types.
	pt := reflect.PointerTo(t)
	if pt.Implements(encodableType) && pt.Implements(decodableType) {
		return &CompiledType{GoType: t, Kind: KindSelf}, nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return &CompiledType{GoType: t, Kind: KindBool}, nil
	case reflect.Uint8:
		return &CompiledType{GoType: t, Kind: KindU8}, nil
	case reflect.Uint16:
		return &CompiledType{GoType: t, Kind: KindU16}, nil
	case reflect.Uint32:
		return &CompiledType{GoType: t, Kind: KindU32}, nil
	case reflect.Uint64:
		return &CompiledType{GoType: t, Kind: KindU64}, nil
	case reflect.Int8:
		return &CompiledType{GoType: t, Kind: KindI8}, nil
	case reflect.Int16:
		return &CompiledType{GoType: t, Kind: KindI16}, nil
	case reflect.Int32:
		return &CompiledType{GoType: t, Kind: KindI32}, nil
	case reflect.Int64:
		return &CompiledType{GoType: t, Kind: KindI64}, nil
	case reflect.Float32:
		return &CompiledType{GoType: t, Kind: KindF32}, nil
	case reflect.Float64:
		return &CompiledType{GoType: t, Kind: KindF64}, nil
	case reflect.Uint:
		return &CompiledType{GoType: t, Kind: KindUsize}, nil
	case reflect.Int:
		return &CompiledType{GoType: t, Kind: KindIsize}, nil
	case reflect.String:
		return &CompiledType{GoType: t, Kind: KindString}, nil
	case reflect.Array:
		elem, err := c.compile(t.Elem(), path+"[]")
		if err != nil {
			return nil, err
		}
		return &CompiledType{GoType: t, Kind: KindArray, Elem: elem}, nil
	case reflect.Slice:
		elem, err := c.compile(t.Elem(), path+"[]")
		if err != nil {
			return nil, err
		}
		return &CompiledType{GoType: t, Kind: KindSlice, Elem: elem}, nil
	case reflect.Struct:
		return c.compileStruct(t, path)
	default:
		return nil, fmt.Errorf("%s: unsupported type %s", path, t)
	}
}

func (c *Compiler) compileStruct(t reflect.Type, path string) (*CompiledType, error) {
	ct := &CompiledType{GoType: t, Kind: KindStruct}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("codec") == "-" {
			continue
		}
		ft, err := c.compile(f.Type, path+"."+f.Name)
		if err != nil {
			return nil, err
		}
		ct.Fields = append(ct.Fields, compiledField{typ: ft, name: f.Name, index: i})
	}
	return ct, nil
}

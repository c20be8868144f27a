// Package derive implements the composite codec for structs and enums.
//
// The wire form of a struct is the concatenation of its exported fields'
// encodings in declaration order, with no tags and no padding. The wire
// form of an enum is a compact discriminant followed by the active
// variant's fields. Both are produced by walking a compiled layout derived
// from reflection, so user types need no hand-written codec methods.
//
// # Structs
//
//	type Point struct {
//	    X codec.I32
//	    Y codec.I32
//	    internal string `codec:"-"` // unexported and tagged fields are skipped
//	}
//
//	data, err := derive.Marshal(Point{X: 3, Y: -4})
//
//	var p Point
//	err = derive.Unmarshal(data, &p)
//
// # Enums
//
// An enum is a Go interface with a registered, ordered set of variant
// types. Registration order assigns discriminants 0..n-1:
//
//	type Shape interface{ isShape() }
//
//	func init() {
//	    derive.MustRegisterEnum[Shape](Circle{}, Rect{})
//	}
//
// Encoding writes the active variant's discriminant and fields. Decoding
// reads the discriminant and fails with a DiscriminantError when it
// matches no registered variant. The encoded-size bound of an enum is the
// discriminant size plus the largest variant bound, never the sum over
// variants: only one variant is ever materialized.
//
// Decoding materializes variants as zero values, so fields whose capacity
// is fixed at construction (the container types) cannot be pre-sized
// inside a variant and do not belong there. Variants should carry
// primitives, fixed arrays, strings or slices; capacity-bearing containers
// belong in the enclosing struct, where the decode destination is built by
// the caller.
//
// # Field type mappings
//
//	Go type                 Wire form
//	────────────────────────────────────────────────────────────
//	bool, fixed-width ints  the codec package's primitive forms
//	float32/float64         IEEE-754, big-endian
//	int, uint               compact 2-byte size (range-checked)
//	int32                   fixed 4-byte integer (rune is int32;
//	                        use codec.Char for char semantics)
//	string                  scalar count + UTF-32 scalars
//	[N]T                    N element encodings, no prefix
//	[]T                     compact length + element encodings
//	registered interface    discriminant + variant fields
//	codec-method types      delegated to their own methods
//
// Strings and bare slices have no static bound, so MaxEncodedSize fails
// for types containing them; EncodedSize always reports the exact byte
// count for a concrete value.
//
// Every failure inside Encode or Decode is wrapped in the errors package's
// EncodeError or DecodeError umbrella; errors.As reaches the leaf cause.
//
// Compiled layouts are cached per type. Compilation diagnostics are logged
// at debug level through the package logger, a no-op unless SetLogger is
// called.
package derive

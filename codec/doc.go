// Package codec implements the primitive wire encodings.
//
// Every multi-byte value is big-endian. The wire forms are:
//
//	Type              Bytes   Form
//	─────────────────────────────────────────────────────────
//	bool              1       0x00 false, 0x01 true
//	u8/i8             1       fixed width
//	u16/i16           2       fixed width
//	u32/i32/f32       4       fixed width
//	u64/i64/f64       8       fixed width
//	char              4       UTF-32 code point, scalar only
//	usize/isize       2       compact size, 16-bit range
//
// Compact sizes bound the wire width of lengths and indices to two bytes:
// most collection lengths fit in 16 bits, and the narrow width keeps the
// worst-case encoded size of collection-bearing types small. Values outside
// the 16-bit range fail at encode time; decode always succeeds by widening.
//
// The Bool, U8 through U64, I8 through I64, F32, F64, Char, Usize and Isize
// wrapper types carry these encodings as methods, so primitives can be
// container elements and struct fields with explicit wire semantics.
package codec

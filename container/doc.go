// Package container provides the fixed-capacity owned storage types.
//
// All three types fix their capacity at construction and never grow:
//
//	SizedSlice   up to N elements of a codec-capable element type
//	SizedStr     up to N Unicode scalar values
//	Buffer       reusable byte scratch for whole encode/decode cycles
//
// SizedSlice and SizedStr implement the codec contracts themselves, so they
// nest inside larger structures. Their wire form is a compact unsigned size
// holding the live length, followed by each live element in order.
//
// Construction policy differs deliberately between the two: collecting a
// SizedSlice from an iterator truncates silently at capacity, while
// building a SizedStr from text fails on overflow. Truncating text could
// split a grapheme or drop scalars mid-word, so strings refuse rather than
// corrupt.
package container

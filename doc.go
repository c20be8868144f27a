// Package bzipper is a binary serialization codec for fixed-capacity byte
// buffers whose maximum size is known up front.
//
// Every encodable type declares an upper bound on its encoded size, so
// callers can allocate exactly-sized buffers with no growth, no allocation
// during encode or decode, and no unbounded memory use when decoding
// untrusted input.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	bzipper/             Root package with the Encodable/Decodable/SizedEncodable contracts
//	├── stream/          Fixed-capacity Input and Output byte cursors
//	├── codec/           Primitive wire encodings and wrapper value types
//	├── container/       Fixed-capacity slice, string and buffer types
//	├── derive/          Reflection-based codec for structs and enums
//	├── errors/          Structured error types for diagnostics
//	└── cmd/inspect/     Encoded-buffer inspector CLI
//
// # Quick Start
//
// Encode a value into a buffer sized from its bound:
//
//	v := codec.U32(0xDEADBEEF)
//	buf := container.BufferFor(v)
//	if _, err := buf.Write(v); err != nil {
//	    log.Fatal(err)
//	}
//
//	var back codec.U32
//	if err := buf.Read(&back); err != nil {
//	    log.Fatal(err)
//	}
//
// Structs and enums go through the derive package:
//
//	type Point struct {
//	    X codec.I32
//	    Y codec.I32
//	}
//
//	data, err := derive.Marshal(Point{X: 3, Y: -4})
//
// # Wire Format
//
// All multi-byte integers are big-endian. Booleans are one byte, 0x00 or
// 0x01. Characters are 4-byte UTF-32 code points restricted to Unicode
// scalar values. Collection lengths and enum discriminants use a compact
// 2-byte size encoding with an encode-time range check. Structs are the
// concatenation of their fields' encodings in declaration order, with no
// tags and no padding. Enums are a discriminant followed by the active
// variant's fields.
//
// # Thread Safety
//
// Encoding is read-only over the value and safe to run concurrently from
// multiple goroutines. Decoding mutates the destination value; concurrent
// decodes into the same destination must be serialized by the caller.
// Input and Output cursors are owned by a single call and never escape it.
package bzipper

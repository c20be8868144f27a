package bzipper

import (
	"github.com/bjoernager/bzipper-sub001/stream"
)

// Encodable is a value that can write its wire encoding through an Output
// cursor. Encode fails fast: bytes already written before a failure remain
// in the destination, which the caller is expected to discard on error.
type Encodable interface {
	Encode(out *stream.Output) error
}

// Decodable is a value that can reconstruct itself from an Input cursor.
// Decode must consume exactly the bytes the matching Encode produced and
// must not retain the cursor or its backing slice beyond the call. On
// failure the receiver's contents are unspecified and must be discarded.
type Decodable interface {
	Decode(in *stream.Input) error
}

// SizedEncodable is an Encodable with a known upper bound on its encoded
// byte length. The bound need not be tight, but no call to Encode may ever
// produce more bytes than it. The bound is constant for the life of a
// value: capacities are fixed at construction and never change.
type SizedEncodable interface {
	Encodable
	MaxEncodedSize() int
}

// Package stream provides the fixed-capacity byte cursors used by every
// encode and decode operation.
//
// An Output writes into a caller-owned slice and an Input reads from one.
// Both track a position within a capacity that is fixed at construction:
// a write or read past the capacity is rejected, never grown or truncated,
// and leaves the cursor position untouched.
//
// Neither cursor allocates. Neither may outlive the slice it was created
// over; the caller owns the backing storage.
package stream

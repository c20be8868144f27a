// Package errors provides the structured error types raised by the codec.
//
// The taxonomy has two tiers. Leaf errors name the exact failure and carry
// the offending values: a stream overflow reports capacity, position and
// requested count; a boolean decode failure reports the invalid byte; a
// capacity overflow reports the declared capacity and the requested length.
// Composite operations (the derive package's struct and enum codec) funnel
// leaf errors into the two umbrella types, EncodeError and DecodeError,
// which wrap the original cause.
//
// All types implement the standard error interface. The umbrellas implement
// Unwrap, so errors.Is and errors.As reach the leaf cause:
//
//	var sizeErr *errors.SizeError
//	if errors.As(err, &sizeErr) {
//	    log.Printf("needs %d, capacity %d", sizeErr.Len, sizeErr.Cap)
//	}
//
// Errors are plain values. They are never retained by the codec beyond the
// failing call.
package errors

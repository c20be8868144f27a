package container

import (
	"iter"
	"reflect"

	bzipper "github.com/bjoernager/bzipper-sub001"
	"github.com/bjoernager/bzipper-sub001/codec"
	"github.com/bjoernager/bzipper-sub001/errors"
	"github.com/bjoernager/bzipper-sub001/stream"
)

// Element constrains a SizedSlice element: a pointer to the element type
// that carries the codec methods. The pointer shape lets elements encode
// and decode in place, with no per-element allocation.
type Element[T any] interface {
	*T
	bzipper.Decodable
	bzipper.SizedEncodable
}

// SizedSlice is a sequence with a capacity fixed at construction. Storage
// is a single backing allocation that is never grown. Slots at or beyond
// the live length hold zero values and are never read by any method.
type SizedSlice[T any, PT Element[T]] struct {
	elems  []T
	length int
	pos    int
}

// NewSizedSlice creates an empty SizedSlice with the given capacity.
func NewSizedSlice[T any, PT Element[T]](capacity int) *SizedSlice[T, PT] {
	return &SizedSlice[T, PT]{elems: make([]T, capacity)}
}

// Collect builds a SizedSlice from an iterator, accepting elements until
// the capacity is reached and silently discarding the rest. Capacity is a
// hard ceiling here, not an error; use Push for failure on overflow.
func Collect[T any, PT Element[T]](capacity int, seq iter.Seq[T]) *SizedSlice[T, PT] {
	s := NewSizedSlice[T, PT](capacity)
	for v := range seq {
		if s.length == capacity {
			break
		}
		s.elems[s.length] = v
		s.length++
	}
	return s
}

// Len returns the number of live elements.
func (s *SizedSlice[T, PT]) Len() int {
	return s.length - s.pos
}

// Cap returns the fixed capacity.
func (s *SizedSlice[T, PT]) Cap() int {
	return len(s.elems)
}

// Push appends an element. It fails with a SizeError when the slice is at
// capacity.
func (s *SizedSlice[T, PT]) Push(v T) error {
	if s.length == len(s.elems) {
		return &errors.SizeError{Cap: len(s.elems), Len: s.length + 1}
	}
	s.elems[s.length] = v
	s.length++
	return nil
}

// Get returns the live element at index i, counted from the front of the
// live range. It panics when i is out of range, like a slice index.
func (s *SizedSlice[T, PT]) Get(i int) T {
	if i < 0 || i >= s.Len() {
		panic("container: index out of range")
	}
	return s.elems[s.pos+i]
}

// Set replaces the live element at index i.
func (s *SizedSlice[T, PT]) Set(i int, v T) {
	if i < 0 || i >= s.Len() {
		panic("container: index out of range")
	}
	s.elems[s.pos+i] = v
}

// Shift removes and returns the front element, advancing the internal read
// cursor. The second result is false when no live elements remain.
func (s *SizedSlice[T, PT]) Shift() (T, bool) {
	if s.pos >= s.length {
		var zero T
		return zero, false
	}
	v := s.elems[s.pos]
	s.pos++
	return v, true
}

// Slice returns the live elements as a view into the backing storage.
func (s *SizedSlice[T, PT]) Slice() []T {
	return s.elems[s.pos:s.length]
}

// All iterates over the live elements without consuming them.
func (s *SizedSlice[T, PT]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.pos; i < s.length; i++ {
			if !yield(s.elems[i]) {
				return
			}
		}
	}
}

// Clear resets the slice to empty without touching the backing storage.
func (s *SizedSlice[T, PT]) Clear() {
	s.length = 0
	s.pos = 0
}

// Equal reports whether the live contents of both slices match, element by
// element. Declared capacities do not participate: two slices of different
// capacity but equal live contents are equal.
func (s *SizedSlice[T, PT]) Equal(other *SizedSlice[T, PT]) bool {
	if s.Len() != other.Len() {
		return false
	}
	return reflect.DeepEqual(s.Slice(), other.Slice())
}

// Encode writes the live length as a compact unsigned size, then each live
// element in order.
func (s *SizedSlice[T, PT]) Encode(out *stream.Output) error {
	if err := codec.WriteUsize(out, uint(s.Len())); err != nil {
		return err
	}
	for i := s.pos; i < s.length; i++ {
		if err := PT(&s.elems[i]).Encode(out); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a compact unsigned size and then that many elements,
// replacing the slice contents. A length prefix above the capacity fails
// with a SizeError before any element is read; an element failure aborts
// the whole decode.
func (s *SizedSlice[T, PT]) Decode(in *stream.Input) error {
	n, err := codec.ReadUsize(in)
	if err != nil {
		return err
	}
	if int(n) > len(s.elems) {
		return &errors.SizeError{Cap: len(s.elems), Len: int(n)}
	}
	for i := 0; i < int(n); i++ {
		if err := PT(&s.elems[i]).Decode(in); err != nil {
			return err
		}
	}
	s.length = int(n)
	s.pos = 0
	return nil
}

// MaxEncodedSize returns the worst-case encoded length: the size prefix
// plus the capacity times the element bound.
func (s *SizedSlice[T, PT]) MaxEncodedSize() int {
	var zero T
	return codec.SizeUsize + len(s.elems)*PT(&zero).MaxEncodedSize()
}

package container

import (
	"unicode/utf8"

	"github.com/bjoernager/bzipper-sub001/codec"
	"github.com/bjoernager/bzipper-sub001/errors"
	"github.com/bjoernager/bzipper-sub001/stream"
)

// SizedStr is a string with a capacity fixed at construction, counted in
// Unicode scalar values rather than bytes. Unlike SizedSlice, building a
// SizedStr from a source with more scalars than the capacity fails instead
// of truncating: cutting text at an arbitrary scalar boundary would corrupt
// it silently.
type SizedStr struct {
	chars  []rune
	length int
}

// NewSizedStr creates an empty SizedStr with the given capacity.
func NewSizedStr(capacity int) *SizedStr {
	return &SizedStr{chars: make([]rune, capacity)}
}

// SizedStrFromString builds a SizedStr from UTF-8 text. It fails with a
// Utf8Error on malformed input and with a SizeError when the text holds
// more scalars than the capacity.
func SizedStrFromString(capacity int, s string) (*SizedStr, error) {
	str := NewSizedStr(capacity)
	if err := str.Set(s); err != nil {
		return nil, err
	}
	return str, nil
}

// SizedStrFromUTF16 builds a SizedStr from a UTF-16 hextet sequence. It
// fails with a Utf16Error on unpaired surrogates and with a SizeError when
// the decoded text holds more scalars than the capacity.
func SizedStrFromUTF16(capacity int, units []uint16) (*SizedStr, error) {
	scalars, err := codec.DecodeUTF16(units)
	if err != nil {
		return nil, err
	}
	if len(scalars) > capacity {
		return nil, &errors.SizeError{Cap: capacity, Len: len(scalars)}
	}
	str := NewSizedStr(capacity)
	copy(str.chars, scalars)
	str.length = len(scalars)
	return str, nil
}

// Set replaces the contents with the given UTF-8 text, with the same
// validation and overflow behavior as SizedStrFromString.
func (s *SizedStr) Set(text string) error {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			return &errors.Utf8Error{Value: text[i], Index: i}
		}
		i += size
	}
	n := utf8.RuneCountInString(text)
	if n > len(s.chars) {
		return &errors.SizeError{Cap: len(s.chars), Len: n}
	}
	i := 0
	for _, r := range text {
		s.chars[i] = r
		i++
	}
	s.length = n
	return nil
}

// Len returns the number of live scalars.
func (s *SizedStr) Len() int {
	return s.length
}

// Cap returns the fixed capacity in scalars.
func (s *SizedStr) Cap() int {
	return len(s.chars)
}

// Runes returns the live scalars as a view into the backing storage.
func (s *SizedStr) Runes() []rune {
	return s.chars[:s.length]
}

// String returns the contents as a Go string.
func (s *SizedStr) String() string {
	return string(s.chars[:s.length])
}

// Compare orders two strings lexicographically by scalar value. It returns
// -1, 0 or 1 in the manner of strings.Compare.
func (s *SizedStr) Compare(other *SizedStr) int {
	a, b := s.Runes(), other.Runes()
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Equal reports whether both strings hold the same scalars. Capacities do
// not participate.
func (s *SizedStr) Equal(other *SizedStr) bool {
	return s.Compare(other) == 0
}

// Encode writes the scalar count as a compact unsigned size, then each
// scalar as a 4-byte UTF-32 code point.
func (s *SizedStr) Encode(out *stream.Output) error {
	if err := codec.WriteUsize(out, uint(s.length)); err != nil {
		return err
	}
	for i := 0; i < s.length; i++ {
		if err := codec.WriteChar(out, s.chars[i]); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a compact unsigned size and then that many code points,
// replacing the contents. A count above the capacity fails with a
// SizeError before any scalar is read.
func (s *SizedStr) Decode(in *stream.Input) error {
	n, err := codec.ReadUsize(in)
	if err != nil {
		return err
	}
	if int(n) > len(s.chars) {
		return &errors.SizeError{Cap: len(s.chars), Len: int(n)}
	}
	for i := 0; i < int(n); i++ {
		r, err := codec.ReadChar(in)
		if err != nil {
			return err
		}
		s.chars[i] = r
	}
	s.length = int(n)
	return nil
}

// MaxEncodedSize returns the worst-case encoded length: the size prefix
// plus four bytes per scalar of capacity.
func (s *SizedStr) MaxEncodedSize() int {
	return codec.SizeUsize + len(s.chars)*codec.SizeChar
}

package codec

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/bjoernager/bzipper-sub001/errors"
)

// ValidateUTF8 checks that b is well-formed UTF-8. On failure it returns a
// Utf8Error naming the first offending byte and its index.
func ValidateUTF8(b []byte) error {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return &errors.Utf8Error{Value: b[i], Index: i}
		}
		i += size
	}
	return nil
}

// ValidateUTF16 checks that units is a well-formed UTF-16 hextet sequence:
// every high surrogate is followed by a low surrogate and no low surrogate
// stands alone. On failure it returns a Utf16Error naming the offending
// hextet and its index.
func ValidateUTF16(units []uint16) error {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u <= 0xDBFF:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return &errors.Utf16Error{Value: u, Index: i}
			}
			i++
		case u >= 0xDC00 && u <= 0xDFFF:
			return &errors.Utf16Error{Value: u, Index: i}
		}
	}
	return nil
}

// DecodeUTF16 validates units and converts them to Unicode scalar values.
func DecodeUTF16(units []uint16) ([]rune, error) {
	if err := ValidateUTF16(units); err != nil {
		return nil, err
	}
	return utf16.Decode(units), nil
}

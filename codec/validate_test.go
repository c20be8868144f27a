package codec_test

import (
	stderrors "errors"
	"testing"

	"github.com/bjoernager/bzipper-sub001/codec"
	"github.com/bjoernager/bzipper-sub001/errors"
)

func TestValidateUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		value byte
		index int
		ok    bool
	}{
		{"ascii", []byte("hello"), 0, 0, true},
		{"multibyte", []byte("héllo, 世界"), 0, 0, true},
		{"empty", nil, 0, 0, true},
		{"lone continuation", []byte{0x61, 0x80}, 0x80, 1, false},
		{"truncated sequence", []byte{0xE4, 0xB8}, 0xE4, 0, false},
		{"invalid byte", []byte{0xFF}, 0xFF, 0, false},
		{"overlong", []byte{0xC0, 0xAF}, 0xC0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := codec.ValidateUTF8(tt.input)
			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ue *errors.Utf8Error
			if !stderrors.As(err, &ue) {
				t.Fatalf("expected Utf8Error, got %v", err)
			}
			if ue.Value != tt.value || ue.Index != tt.index {
				t.Errorf("got byte 0x%02X at %d, want 0x%02X at %d", ue.Value, ue.Index, tt.value, tt.index)
			}
		})
	}
}

func TestValidateUTF16(t *testing.T) {
	tests := []struct {
		name  string
		input []uint16
		value uint16
		index int
		ok    bool
	}{
		{"bmp", []uint16{0x0048, 0x0069}, 0, 0, true},
		{"surrogate pair", []uint16{0xD83D, 0xDC4D}, 0, 0, true},
		{"empty", nil, 0, 0, true},
		{"lone high", []uint16{0xD800}, 0xD800, 0, false},
		{"high then bmp", []uint16{0xD800, 0x0041}, 0xD800, 0, false},
		{"lone low", []uint16{0x0041, 0xDC00}, 0xDC00, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := codec.ValidateUTF16(tt.input)
			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ue *errors.Utf16Error
			if !stderrors.As(err, &ue) {
				t.Fatalf("expected Utf16Error, got %v", err)
			}
			if ue.Value != tt.value || ue.Index != tt.index {
				t.Errorf("got hextet 0x%04X at %d, want 0x%04X at %d", ue.Value, ue.Index, tt.value, tt.index)
			}
		})
	}
}

func TestDecodeUTF16(t *testing.T) {
	scalars, err := codec.DecodeUTF16([]uint16{0x0048, 0xD83D, 0xDC4D})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(scalars) != "H\U0001F44D" {
		t.Errorf("got %q", string(scalars))
	}

	if _, err := codec.DecodeUTF16([]uint16{0xDC00}); err == nil {
		t.Fatal("expected error for lone low surrogate")
	}
}

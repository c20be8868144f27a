package container_test

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/bjoernager/bzipper-sub001/container"
	"github.com/bjoernager/bzipper-sub001/errors"
	"github.com/bjoernager/bzipper-sub001/stream"
)

func TestSizedStrRoundTrip(t *testing.T) {
	s, err := container.SizedStrFromString(8, "Hi\U0001F44D")
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("scalar count: got %d, want 3", s.Len())
	}

	buf := make([]byte, s.MaxEncodedSize())
	out := stream.NewOutput(buf)
	if err := s.Encode(out); err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{
		0x00, 0x03,
		0x00, 0x00, 0x00, 0x48,
		0x00, 0x00, 0x00, 0x69,
		0x00, 0x01, 0xF4, 0x4D,
	}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("encoded: got %v, want %v", out.Bytes(), want)
	}

	back := container.NewSizedStr(8)
	if err := back.Decode(stream.NewInput(out.Bytes())); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !s.Equal(back) {
		t.Errorf("round trip: got %q, want %q", back.String(), s.String())
	}
}

func TestSizedStrOverflowErrors(t *testing.T) {
	// String construction must fail on overflow, never truncate:
	// truncating could split text mid-word.
	_, err := container.SizedStrFromString(4, "overflow")
	var se *errors.SizeError
	if !stderrors.As(err, &se) {
		t.Fatalf("expected SizeError, got %v", err)
	}
	if se.Cap != 4 || se.Len != 8 {
		t.Errorf("error fields: {cap:%d, len:%d}", se.Cap, se.Len)
	}
}

func TestSizedStrInvalidUTF8(t *testing.T) {
	_, err := container.SizedStrFromString(8, string([]byte{0x61, 0xFF}))
	var ue *errors.Utf8Error
	if !stderrors.As(err, &ue) {
		t.Fatalf("expected Utf8Error, got %v", err)
	}
	if ue.Value != 0xFF || ue.Index != 1 {
		t.Errorf("error fields: byte 0x%02X at %d", ue.Value, ue.Index)
	}
}

func TestSizedStrFromUTF16(t *testing.T) {
	s, err := container.SizedStrFromUTF16(4, []uint16{0x0048, 0xD83D, 0xDC4D})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if s.String() != "H\U0001F44D" {
		t.Errorf("got %q", s.String())
	}

	_, err = container.SizedStrFromUTF16(4, []uint16{0xD800, 0x0041})
	var ue *errors.Utf16Error
	if !stderrors.As(err, &ue) {
		t.Fatalf("expected Utf16Error, got %v", err)
	}
	if ue.Value != 0xD800 || ue.Index != 0 {
		t.Errorf("error fields: hextet 0x%04X at %d", ue.Value, ue.Index)
	}
}

func TestSizedStrDecodeOverflow(t *testing.T) {
	s := container.NewSizedStr(2)
	err := s.Decode(stream.NewInput([]byte{0x00, 0x03}))
	var se *errors.SizeError
	if !stderrors.As(err, &se) {
		t.Fatalf("expected SizeError, got %v", err)
	}
	if se.Cap != 2 || se.Len != 3 {
		t.Errorf("error fields: {cap:%d, len:%d}", se.Cap, se.Len)
	}
}

func TestSizedStrDecodeInvalidScalar(t *testing.T) {
	s := container.NewSizedStr(2)
	err := s.Decode(stream.NewInput([]byte{0x00, 0x01, 0x00, 0x00, 0xD8, 0x00}))
	var ce *errors.CharError
	if !stderrors.As(err, &ce) {
		t.Fatalf("expected CharError, got %v", err)
	}
	if ce.CodePoint != 0xD800 {
		t.Errorf("reported code point: U+%04X", ce.CodePoint)
	}
}

func TestSizedStrCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"a", "a", 0},
		{"a", "b", -1},
		{"b", "a", 1},
		{"a", "ab", -1},
		{"ab", "a", 1},
		{"世", "界", -1}, // U+4E16 < U+754C
	}

	for _, tt := range tests {
		a, err := container.SizedStrFromString(8, tt.a)
		if err != nil {
			t.Fatalf("construct %q: %v", tt.a, err)
		}
		b, err := container.SizedStrFromString(16, tt.b)
		if err != nil {
			t.Fatalf("construct %q: %v", tt.b, err)
		}
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%q, %q): got %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

package derive_test

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/bjoernager/bzipper-sub001/codec"
	"github.com/bjoernager/bzipper-sub001/container"
	"github.com/bjoernager/bzipper-sub001/derive"
	"github.com/bjoernager/bzipper-sub001/errors"
	"github.com/bjoernager/bzipper-sub001/stream"
)

type point struct {
	X codec.I32
	Y codec.I32
}

type header struct {
	Magic   uint32
	Ready   bool
	Count   uint
	scratch int   // unexported, skipped
	Local   uint8 `codec:"-"`
}

func TestStructWireFormat(t *testing.T) {
	// Fields concatenate in declaration order with no tags and no padding.
	data, err := derive.Marshal(point{X: 3, Y: -4})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := []byte{0x00, 0x00, 0x00, 0x03, 0xFF, 0xFF, 0xFF, 0xFC}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded: got %v, want %v", data, want)
	}

	var back point
	if err := derive.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != (point{X: 3, Y: -4}) {
		t.Errorf("round trip: %+v", back)
	}
}

func TestStructSkipsNonFields(t *testing.T) {
	h := header{Magic: 0xCAFEBABE, Ready: true, Count: 7, scratch: 99, Local: 5}
	data, err := derive.Marshal(h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// u32 + bool + usize; scratch and Local contribute nothing.
	if len(data) != codec.SizeU32+codec.SizeBool+codec.SizeUsize {
		t.Fatalf("encoded length: %d", len(data))
	}

	var back header
	if err := derive.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Magic != h.Magic || back.Ready != h.Ready || back.Count != h.Count {
		t.Errorf("round trip: %+v", back)
	}
	if back.scratch != 0 || back.Local != 0 {
		t.Errorf("skipped fields were touched: %+v", back)
	}
}

func TestStringFieldMatchesSizedStr(t *testing.T) {
	// A string field and a SizedStr of the same text must be
	// byte-identical on the wire.
	type wrapped struct{ Name string }
	data, err := derive.Marshal(wrapped{Name: "hi"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	str, err := container.SizedStrFromString(2, "hi")
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	buf := make([]byte, str.MaxEncodedSize())
	out := stream.NewOutput(buf)
	if err := str.Encode(out); err != nil {
		t.Fatalf("encode: %v", err)
	}

	if !bytes.Equal(data, out.Bytes()) {
		t.Errorf("string %v != SizedStr %v", data, out.Bytes())
	}
}

func TestArraysAndSlices(t *testing.T) {
	type packet struct {
		Tag  [2]uint8
		Body []uint16
	}
	p := packet{Tag: [2]uint8{0xAA, 0xBB}, Body: []uint16{0x0102, 0x0304}}

	data, err := derive.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// Arrays carry no prefix; slices carry a compact length.
	want := []byte{0xAA, 0xBB, 0x00, 0x02, 0x01, 0x02, 0x03, 0x04}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded: got %v, want %v", data, want)
	}

	var back packet
	if err := derive.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Tag != p.Tag || len(back.Body) != 2 || back.Body[0] != 0x0102 || back.Body[1] != 0x0304 {
		t.Errorf("round trip: %+v", back)
	}
}

func TestDelegatedContainerField(t *testing.T) {
	// Containers nest by value through their own codec methods.
	type record struct {
		ID    codec.U16
		Title container.SizedStr
	}
	title, err := container.SizedStrFromString(8, "log")
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	f := record{ID: 7, Title: *title}
	data, err := derive.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	back := record{Title: *container.NewSizedStr(8)}
	if err := derive.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ID != 7 || back.Title.String() != "log" {
		t.Errorf("round trip: id=%d title=%q", back.ID, back.Title.String())
	}
}

func TestFailureFailsWholeDecode(t *testing.T) {
	// The second field's boolean byte is invalid; no partial struct may
	// surface, and the umbrella must wrap the leaf cause.
	type pair struct {
		A uint8
		B bool
	}
	var back pair
	err := derive.Unmarshal([]byte{0x07, 0x02}, &back)
	if err == nil {
		t.Fatal("expected decode failure")
	}

	var de *errors.DecodeError
	if !stderrors.As(err, &de) {
		t.Fatalf("expected DecodeError umbrella, got %T", err)
	}
	var be *errors.BoolError
	if !stderrors.As(err, &be) {
		t.Fatalf("umbrella did not wrap BoolError: %v", err)
	}
	if be.Value != 0x02 {
		t.Errorf("reported byte: 0x%02X", be.Value)
	}
}

func TestEncodeRangeFailure(t *testing.T) {
	type counted struct{ N uint }
	_, err := derive.Marshal(counted{N: 1 << 20})

	var ee *errors.EncodeError
	if !stderrors.As(err, &ee) {
		t.Fatalf("expected EncodeError umbrella, got %T", err)
	}
	var ue *errors.UsizeError
	if !stderrors.As(err, &ue) {
		t.Fatalf("umbrella did not wrap UsizeError: %v", err)
	}
}

func TestMaxEncodedSize(t *testing.T) {
	type fixed struct {
		A codec.U32
		B [4]uint8
		C bool
	}
	n, err := derive.MaxEncodedSize(fixed{})
	if err != nil {
		t.Fatalf("max size: %v", err)
	}
	if n != 4+4+1 {
		t.Errorf("bound: got %d, want 9", n)
	}

	type unbounded struct{ S []uint8 }
	if _, err := derive.MaxEncodedSize(unbounded{}); err == nil {
		t.Error("expected error for unbounded type")
	}
}

func TestEncodedSizeIsExact(t *testing.T) {
	type doc struct {
		Title string
		Words []uint16
	}
	d := doc{Title: "abc", Words: []uint16{1, 2, 3}}

	n, err := derive.EncodedSize(d)
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	data, err := derive.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(data) != n {
		t.Errorf("EncodedSize %d != encoded length %d", n, len(data))
	}
}

func TestDecodeRequiresPointer(t *testing.T) {
	var p point
	if err := derive.Decode(p, stream.NewInput(make([]byte, 8))); err == nil {
		t.Error("expected error for non-pointer destination")
	}
}

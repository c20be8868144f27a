package container_test

import (
	"bytes"
	"testing"

	"github.com/bjoernager/bzipper-sub001/codec"
	"github.com/bjoernager/bzipper-sub001/container"
)

func TestBufferWriteRead(t *testing.T) {
	v := codec.U32(0xDEADBEEF)
	buf := container.BufferFor(v)
	if buf.Size() != codec.SizeU32 {
		t.Fatalf("size: got %d, want %d", buf.Size(), codec.SizeU32)
	}

	n, err := buf.Write(v)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if n != 4 {
		t.Errorf("wrote %d bytes, want 4", n)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("contents: %v", buf.Bytes())
	}

	var back codec.U32
	if err := buf.Read(&back); err != nil {
		t.Fatalf("read: %v", err)
	}
	if back != v {
		t.Errorf("round trip: got 0x%08X", uint32(back))
	}
}

func TestBufferReusable(t *testing.T) {
	// Each Write starts from offset zero: the buffer is scratch storage,
	// not a growing stream.
	buf := container.NewBuffer(codec.SizeU16)

	for _, v := range []codec.U16{0x1111, 0x2222, 0x3333} {
		if _, err := buf.Write(v); err != nil {
			t.Fatalf("write 0x%04X: %v", uint16(v), err)
		}
		var back codec.U16
		if err := buf.Read(&back); err != nil {
			t.Fatalf("read: %v", err)
		}
		if back != v {
			t.Errorf("cycle: got 0x%04X, want 0x%04X", uint16(back), uint16(v))
		}
	}
}

func TestBufferOverflow(t *testing.T) {
	buf := container.NewBuffer(2)
	if _, err := buf.Write(codec.U32(1)); err == nil {
		t.Fatal("expected overflow writing 4 bytes into a 2-byte buffer")
	}
}

func TestBufferForContainer(t *testing.T) {
	s := container.NewSizedSlice[codec.U64](3)
	buf := container.BufferFor(s)
	want := codec.SizeUsize + 3*codec.SizeU64
	if buf.Size() != want {
		t.Errorf("size: got %d, want %d", buf.Size(), want)
	}
}

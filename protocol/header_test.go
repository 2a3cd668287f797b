package protocol

import (
	"bytes"
	"testing"
)

func TestHeaderToWireFromWire(t *testing.T) {
	t.Parallel()
	h := Header{MessageLength: 40, RequestID: 7, ResponseTo: 0, OpCode: OpKillCursors}
	wire := h.ToWire()
	if len(wire) != HeaderLen {
		t.Fatalf("expected %d bytes, got %d", HeaderLen, len(wire))
	}

	var got Header
	got.FromWire(wire)
	if got != h {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, h)
	}
}

func TestHeaderString(t *testing.T) {
	t.Parallel()
	h := Header{MessageLength: 10, RequestID: 42, ResponseTo: 43, OpCode: OpQuery}
	want := "opCode:QUERY (2004) msgLen:10 reqID:42 respID:43"
	if got := h.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestHeaderWireIsLittleEndian(t *testing.T) {
	t.Parallel()
	h := Header{MessageLength: 0x01020304}
	wire := h.ToWire()
	want := []byte{0x04, 0x03, 0x02, 0x01}
	if !bytes.Equal(wire[0:4], want) {
		t.Fatalf("expected little-endian bytes %v, got %v", want, wire[0:4])
	}
}

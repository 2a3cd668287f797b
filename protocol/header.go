package protocol

import "fmt"

// HeaderLen is the fixed size, in bytes, of every wire protocol message
// header.
const HeaderLen = 16

// Header is the common 16 byte message header that precedes every wire
// protocol message, always encoded little-endian.
type Header struct {
	// MessageLength is the total message size, including this header.
	MessageLength int32
	// RequestID identifies this message.
	RequestID int32
	// ResponseTo is the RequestID of the message being responded to.
	ResponseTo int32
	// OpCode is the operation type.
	OpCode OpCode
}

// ToWire encodes the header to its 16 byte little-endian wire form.
func (h Header) ToWire() []byte {
	var d [HeaderLen]byte
	b := d[:]
	PutInt32(b[0:4], h.MessageLength)
	PutInt32(b[4:8], h.RequestID)
	PutInt32(b[8:12], h.ResponseTo)
	PutInt32(b[12:16], int32(h.OpCode))
	return b
}

// FromWire decodes a 16 byte little-endian header. The caller must ensure
// len(b) >= HeaderLen.
func (h *Header) FromWire(b []byte) {
	h.MessageLength = GetInt32(b[0:4])
	h.RequestID = GetInt32(b[4:8])
	h.ResponseTo = GetInt32(b[8:12])
	h.OpCode = OpCode(GetInt32(b[12:16]))
}

// String returns a string representation useful for debugging.
func (h Header) String() string {
	return fmt.Sprintf(
		"opCode:%s (%d) msgLen:%d reqID:%d respID:%d",
		h.OpCode, h.OpCode, h.MessageLength, h.RequestID, h.ResponseTo,
	)
}

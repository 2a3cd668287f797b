package protocol

import (
	"fmt"

	"github.com/facebookgo/stackerr"
)

// ErrTruncatedHeader is returned by Scatter when the input buffer is
// shorter than HeaderLen.
var ErrTruncatedHeader = stackerr.New("protocol: truncated header")

// ErrUnterminatedCString is returned when a cstring field has no NUL byte
// within the remaining buffer.
type ErrUnterminatedCString struct {
	Field string
}

func (e *ErrUnterminatedCString) Error() string {
	return fmt.Sprintf("protocol: unterminated cstring field %q", e.Field)
}

// ErrTruncatedField is returned when a fixed width field runs past the end
// of the remaining buffer.
type ErrTruncatedField struct {
	Field string
}

func (e *ErrTruncatedField) Error() string {
	return fmt.Sprintf("protocol: truncated field %q", e.Field)
}

// ErrBadBSONLength is returned when a BSON field's declared length is
// outside [5, remaining buffer].
var ErrBadBSONLength = stackerr.New("protocol: bad bson length")

// ErrUnknownOpCode is returned when scatter sees an opcode outside the
// closed set enumerated in OpCode. ScatterReplyHeader also returns it for
// any opcode other than OpReply.
type ErrUnknownOpCode struct {
	OpCode int32
}

func (e *ErrUnknownOpCode) Error() string {
	return fmt.Sprintf("protocol: unknown opcode %d", e.OpCode)
}

// ErrDecompressionFailed is returned by wirecompress when a compressor
// reports failure or returns an unexpected size.
var ErrDecompressionFailed = stackerr.New("protocol: decompression failed")

// ErrProtocolInvalidReply is returned by the reply classifier when a
// message cannot be interpreted as a command response.
type ErrProtocolInvalidReply struct {
	Message string
}

func (e *ErrProtocolInvalidReply) Error() string {
	return "protocol: " + e.Message
}

// ErrBSONInvalid is returned when the first reply document cannot be
// decoded.
var ErrBSONInvalid = stackerr.New("protocol: failed to decode document from the server")

// Domain identifies which error namespace a classified server error
// belongs to.
type Domain string

const (
	// DomainServer is used for api_version >= 2.
	DomainServer = Domain("SERVER")
	// DomainQuery is used for api_version < 2.
	DomainQuery = Domain("QUERY")
)

// QueryCommandNotFound is the remapped code used in place of the server's
// internal 13390 "PROTOCOL_ERROR"-flavored code. It is a client-side
// classification label, not a value ever sent on the wire.
const QueryCommandNotFound int32 = -1

// QueryFailure represents a server reported command/query failure.
type QueryFailure struct {
	Domain  Domain
	Code    int32
	Message string
}

func (e *QueryFailure) Error() string {
	return fmt.Sprintf("protocol: %s error %d: %s", e.Domain, e.Code, e.Message)
}

// CursorNotFoundCode is the client-side classification code attached to
// CursorInvalidOrExpired. Like QueryCommandNotFound, it is never sent by
// the server; the server signals this case purely via the
// CURSOR_NOT_FOUND reply flag.
const CursorNotFoundCode int32 = -2

// CursorInvalidOrExpired is raised when a reply carries the
// CURSOR_NOT_FOUND flag.
var CursorInvalidOrExpired = &QueryFailure{
	Code:    CursorNotFoundCode,
	Message: "The cursor is invalid or has expired.",
}

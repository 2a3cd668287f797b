package protocol

import (
	"strconv"

	"gopkg.in/mgo.v2/bson"

	"github.com/mcuadros/mongowire/writeconcern"
)

// GetFirstDocument returns a borrowed view of the first document in an
// OP_REPLY's document tail (C8), or nil if msg isn't a reply or carries no
// documents.
func GetFirstDocument(msg *Message) []byte {
	reply, ok := msg.Variant.(*Reply)
	if !ok || len(reply.Documents) == 0 {
		return nil
	}
	return reply.Documents[0]
}

// replyFailureFlags reports whether reply carries the QUERY_FAILURE or
// CURSOR_NOT_FOUND bit, mirroring _mongoc_rpc_is_failure's flag check. Both
// IsFailure and ParseQueryError are built on this single check so the bit
// testing lives in exactly one place.
func replyFailureFlags(reply *Reply) bool {
	return reply.Flags&FlagQueryFailure != 0 || reply.Flags&FlagCursorNotFound != 0
}

// IsFailure reports whether msg is an OP_REPLY signalling a failure via
// the QUERY_FAILURE or CURSOR_NOT_FOUND flag bits (C8). It never inspects
// api_version; api-version-sensitive domain attribution, and the error
// detail itself, only matter once a failure is turned into a concrete
// error (see ParseCommandError/ParseQueryError).
func IsFailure(msg *Message) bool {
	reply, ok := msg.Variant.(*Reply)
	if !ok {
		return false
	}
	return replyFailureFlags(reply)
}

// commandDoc is the subset of a command reply document this package reads
// out via the BSON collaborator (gopkg.in/mgo.v2/bson), mirroring the
// teacher's pattern of bson.Unmarshal into a small typed struct
// (response_rewriter.go's isMasterResponse/replSetGetStatusResponse).
type commandDoc struct {
	OK        interface{} `bson:"ok"`
	Code      int32       `bson:"code"`
	ErrMsg    string      `bson:"errmsg"`
	DollarErr string      `bson:"$err"`
}

func (d *commandDoc) ok() bool {
	switch v := d.OK.(type) {
	case nil:
		return false
	case bool:
		return v
	case int:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}

// commandMessage mirrors _mongoc_populate_cmd_error's message precedence:
// errmsg, then $err, then a fixed fallback.
func (d *commandDoc) commandMessage() string {
	if d.ErrMsg != "" {
		return d.ErrMsg
	}
	if d.DollarErr != "" {
		return d.DollarErr
	}
	return "Unknown command error"
}

// queryMessage mirrors _mongoc_populate_query_error, which reads only $err
// (never errmsg) and falls back to its own fixed message.
func (d *commandDoc) queryMessage() string {
	if d.DollarErr != "" {
		return d.DollarErr
	}
	return "Unknown query failure."
}

// domainFor returns the error domain to attribute a populated error to:
// SERVER for api_version >= 2, QUERY otherwise (spec.md §4.6).
func domainFor(apiVersion int) Domain {
	if apiVersion >= 2 {
		return DomainServer
	}
	return DomainQuery
}

// internalProtocolErrorCode is the server's internal 13390
// "PROTOCOL_ERROR"-flavored code, remapped by this classifier to
// QueryCommandNotFound (spec.md §8 scenario S6).
const internalProtocolErrorCode int32 = 13390

func classifyCode(code int32) int32 {
	if code == internalProtocolErrorCode {
		return QueryCommandNotFound
	}
	return code
}

// ParseCommandError treats msg as the response to a command: it requires
// exactly one OP_REPLY document and classifies it as success (nil) or a
// *QueryFailure/*ErrProtocolInvalidReply/ErrBSONInvalid.
func ParseCommandError(msg *Message, apiVersion int) error {
	reply, ok := msg.Variant.(*Reply)
	if !ok {
		return &ErrProtocolInvalidReply{Message: "Received rpc other than OP_REPLY"}
	}
	if reply.NReturned != 1 {
		return &ErrProtocolInvalidReply{Message: errTooManyDocs(reply.NReturned)}
	}

	raw := GetFirstDocument(msg)
	if raw == nil {
		return ErrBSONInvalid
	}

	var doc commandDoc
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return ErrBSONInvalid
	}
	if doc.ok() {
		return nil
	}

	return &QueryFailure{
		Domain:  domainFor(apiVersion),
		Code:    classifyCode(doc.Code),
		Message: doc.commandMessage(),
	}
}

func errTooManyDocs(n int32) string {
	return "Expected only one reply document, got " + strconv.FormatInt(int64(n), 10)
}

// unknownQueryFailureCode stands in for mongoc's MONGOC_ERROR_QUERY_FAILURE
// sentinel, used by ParseQueryError when a QUERY_FAILURE reply carries no
// document to read a real code from. The exact integer lives in
// mongoc-error.h, which the retrieved pack does not include; 0 is used here
// as a locally named placeholder, distinguishable from any code a server
// actually reports.
const unknownQueryFailureCode int32 = 0

// ParseQueryError is ParseCommandError's counterpart for legacy queries,
// mirroring _mongoc_rpc_is_failure: it checks QUERY_FAILURE before
// CURSOR_NOT_FOUND (the two are not mutually exclusive bits), and a
// QUERY_FAILURE reply with no readable document gets a fixed QUERY-domain
// error rather than ErrBSONInvalid.
func ParseQueryError(msg *Message, apiVersion int) error {
	reply, ok := msg.Variant.(*Reply)
	if !ok {
		return &ErrProtocolInvalidReply{Message: "Received rpc other than OP_REPLY"}
	}
	if !replyFailureFlags(reply) {
		return nil
	}

	if reply.Flags&FlagQueryFailure != 0 {
		raw := GetFirstDocument(msg)
		if raw == nil {
			return &QueryFailure{Domain: DomainQuery, Code: unknownQueryFailureCode, Message: "Unknown query failure."}
		}
		var doc commandDoc
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return &QueryFailure{Domain: DomainQuery, Code: unknownQueryFailureCode, Message: "Unknown query failure."}
		}
		return &QueryFailure{
			Domain:  domainFor(apiVersion),
			Code:    classifyCode(doc.Code),
			Message: doc.queryMessage(),
		}
	}

	return CursorInvalidOrExpired
}

// NeedsGLE reports whether a fire-and-forget legacy write should be
// followed up with a getLastError call: true only for INSERT/UPDATE/DELETE
// when wc is non-nil and acknowledged (w != 0).
func NeedsGLE(msg *Message, wc *writeconcern.WriteConcern) bool {
	if msg.Variant == nil {
		return false
	}
	if !msg.Variant.OpCode().IsMutation() {
		return false
	}
	return wc != nil && !wc.Unacknowledged()
}

// PrepCommand populates a Query variant for command-over-query legacy
// transport (spec.md §4.6): skip=0, n_return=-1, no fields selector,
// query=body, and flags masked down to only the SLAVE_OK bit - per the
// find/getMore/killCursors spec, no other bit is legal on a command-typed
// query.
func PrepCommand(ns string, body []byte, flags QueryFlag) *Query {
	return &Query{
		Flags:                flags & FlagSlaveOK,
		Collection:           NewCString(ns),
		Skip:                 0,
		NReturn:              -1,
		Query:                body,
		ReturnFieldsSelector: nil,
	}
}

package protocol

// Update is the OP_UPDATE payload.
type Update struct {
	Collection CString
	Flags      int32
	Selector   []byte // BSON
	Update     []byte // BSON
}

func (m *Update) OpCode() OpCode { return OpUpdate }

func (m *Update) Fields() []field {
	return []field{
		{name: "zero", kind: kindInt32, i32: 0},
		{name: "collection", kind: kindCString, bytes: m.Collection},
		{name: "flags", kind: kindInt32, i32: m.Flags},
		{name: "selector", kind: kindBSON, bytes: m.Selector},
		{name: "update", kind: kindBSON, bytes: m.Update},
	}
}

// Insert is the OP_INSERT payload. Documents is the outbound iovec array:
// each entry is a caller-owned, already-framed BSON document.
type Insert struct {
	Flags      int32
	Collection CString
	Documents  [][]byte
}

func (m *Insert) OpCode() OpCode { return OpInsert }

func (m *Insert) Fields() []field {
	return []field{
		{name: "flags", kind: kindInt32, i32: m.Flags},
		{name: "collection", kind: kindCString, bytes: m.Collection},
		{name: "documents", kind: kindDocTail, docs: m.Documents},
	}
}

// Query is the OP_QUERY payload. ReturnFieldsSelector is nil when no fields selector was
// supplied by the caller.
type Query struct {
	Flags      QueryFlag
	Collection CString
	Skip       int32
	NReturn    int32
	Query      []byte // BSON
	ReturnFieldsSelector []byte // BSON, optional
}

func (m *Query) OpCode() OpCode { return OpQuery }

func (m *Query) Fields() []field {
	f := []field{
		{name: "flags", kind: kindQueryFlag, qflag: m.Flags},
		{name: "collection", kind: kindCString, bytes: m.Collection},
		{name: "skip", kind: kindInt32, i32: m.Skip},
		{name: "n_return", kind: kindInt32, i32: m.NReturn},
		{name: "query", kind: kindBSON, bytes: m.Query},
	}
	if len(m.ReturnFieldsSelector) > 0 {
		f = append(f, field{name: "fields", kind: kindBSON, bytes: m.ReturnFieldsSelector})
	}
	return f
}

// GetMore is the OP_GET_MORE payload.
type GetMore struct {
	Collection CString
	NReturn    int32
	CursorID   int64
}

func (m *GetMore) OpCode() OpCode { return OpGetMore }

func (m *GetMore) Fields() []field {
	return []field{
		{name: "zero", kind: kindInt32, i32: 0},
		{name: "collection", kind: kindCString, bytes: m.Collection},
		{name: "n_return", kind: kindInt32, i32: m.NReturn},
		{name: "cursor_id", kind: kindInt64, i64: m.CursorID},
	}
}

// Delete is the OP_DELETE payload.
type Delete struct {
	Collection CString
	Flags      int32
	Selector   []byte // BSON
}

func (m *Delete) OpCode() OpCode { return OpDelete }

func (m *Delete) Fields() []field {
	return []field{
		{name: "zero", kind: kindInt32, i32: 0},
		{name: "collection", kind: kindCString, bytes: m.Collection},
		{name: "flags", kind: kindInt32, i32: m.Flags},
		{name: "selector", kind: kindBSON, bytes: m.Selector},
	}
}

// KillCursors is the OP_KILL_CURSORS payload.
type KillCursors struct {
	Cursors []int64
}

func (m *KillCursors) OpCode() OpCode { return OpKillCursors }

func (m *KillCursors) Fields() []field {
	return []field{
		{name: "zero", kind: kindInt32, i32: 0},
		{name: "cursors", kind: kindInt64Array, ints64: m.Cursors},
	}
}

// Reply is the OP_REPLY payload.
type Reply struct {
	Flags        ReplyFlag
	CursorID     int64
	StartingFrom int32
	NReturned    int32
	Documents    [][]byte // BSON-array tail
}

func (m *Reply) OpCode() OpCode { return OpReply }

func (m *Reply) Fields() []field {
	return []field{
		{name: "flags", kind: kindReplyFlag, rflag: m.Flags},
		{name: "cursor_id", kind: kindInt64, i64: m.CursorID},
		{name: "starting_from", kind: kindInt32, i32: m.StartingFrom},
		{name: "n_returned", kind: kindInt32, i32: m.NReturned},
		{name: "documents", kind: kindBSONArray, docs: m.Documents},
	}
}

// Compressed is the OP_COMPRESSED envelope (C7).
type Compressed struct {
	OriginalOpCode    OpCode
	UncompressedSize  int32
	CompressorID      byte
	CompressedMessage []byte
}

func (m *Compressed) OpCode() OpCode { return OpCompressed }

func (m *Compressed) Fields() []field {
	return []field{
		{name: "original_opcode", kind: kindInt32, i32: int32(m.OriginalOpCode)},
		{name: "uncompressed_size", kind: kindInt32, i32: m.UncompressedSize},
		{name: "compressor_id", kind: kindUint8, u8: m.CompressorID},
		{name: "compressed_message", kind: kindRawTail, bytes: m.CompressedMessage},
	}
}

// Msg is the OP_MSG payload. Sections are treated as an opaque tail per
// spec.md §9's open question ("Full OP_MSG section parsing ... is
// deliberately left unspecified").
type Msg struct {
	Flags    int32
	Sections []byte
}

func (m *Msg) OpCode() OpCode { return OpMsg }

func (m *Msg) Fields() []field {
	return []field{
		{name: "flags", kind: kindInt32, i32: m.Flags},
		{name: "sections", kind: kindRawTail, bytes: m.Sections},
	}
}

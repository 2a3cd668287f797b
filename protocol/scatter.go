package protocol

// Scatter parses a flat byte buffer into a Message (C5), validating every
// length field of the payload (cstrings, BSON documents, the cursor count)
// against the remaining buffer. The header's MessageLength is decoded as
// is: it is not compared with len(buf) nor checked to be at least
// HeaderLen. Decoded fields borrow from buf; the returned Message must not
// outlive it (spec.md §3 invariant 5).
func Scatter(buf []byte) (*Message, error) {
	if len(buf) < HeaderLen {
		return nil, ErrTruncatedHeader
	}

	var h Header
	h.FromWire(buf[:HeaderLen])
	rest := buf[HeaderLen:]

	variant, err := scatterVariant(h.OpCode, rest)
	if err != nil {
		return nil, err
	}

	return &Message{Header: h, Variant: variant}, nil
}

func scatterVariant(op OpCode, b []byte) (Variant, error) {
	switch op {
	case OpUpdate:
		return scatterUpdate(b)
	case OpInsert:
		return scatterInsert(b)
	case OpQuery:
		return scatterQuery(b)
	case OpGetMore:
		return scatterGetMore(b)
	case OpDelete:
		return scatterDelete(b)
	case OpKillCursors:
		return scatterKillCursors(b)
	case OpReply:
		return scatterReply(b)
	case OpCompressed:
		return scatterCompressed(b)
	case OpMsg:
		return scatterMsg(b)
	default:
		return nil, &ErrUnknownOpCode{OpCode: int32(op)}
	}
}

// takeInt32 consumes a 4 byte scalar, returning the value and the
// remainder of b.
func takeInt32(b []byte, name string) (int32, []byte, error) {
	if len(b) < 4 {
		return 0, nil, &ErrTruncatedField{Field: name}
	}
	return GetInt32(b[:4]), b[4:], nil
}

func takeInt64(b []byte, name string) (int64, []byte, error) {
	if len(b) < 8 {
		return 0, nil, &ErrTruncatedField{Field: name}
	}
	return GetInt64(b[:8]), b[8:], nil
}

func takeUint8(b []byte, name string) (byte, []byte, error) {
	if len(b) < 1 {
		return 0, nil, &ErrTruncatedField{Field: name}
	}
	return b[0], b[1:], nil
}

func takeCString(b []byte, name string) (CString, []byte, error) {
	n := cstringLen(b)
	if n < 0 {
		return nil, nil, &ErrUnterminatedCString{Field: name}
	}
	return CString(b[:n]), b[n:], nil
}

func takeBSON(b []byte) ([]byte, []byte, error) {
	n, ok := bsonLen(b)
	if !ok {
		return nil, nil, ErrBadBSONLength
	}
	return b[:n], b[n:], nil
}

// takeBSONArray consumes zero or more concatenated BSON documents
// occupying the remainder of b.
func takeBSONArray(b []byte) ([][]byte, error) {
	var docs [][]byte
	for len(b) > 0 {
		doc, rest, err := takeBSON(b)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		b = rest
	}
	return docs, nil
}

func scatterUpdate(b []byte) (*Update, error) {
	_, b, err := takeInt32(b, "zero")
	if err != nil {
		return nil, err
	}
	collection, b, err := takeCString(b, "collection")
	if err != nil {
		return nil, err
	}
	flags, b, err := takeInt32(b, "flags")
	if err != nil {
		return nil, err
	}
	selector, b, err := takeBSON(b)
	if err != nil {
		return nil, err
	}
	update, _, err := takeBSON(b)
	if err != nil {
		return nil, err
	}
	return &Update{Collection: collection, Flags: flags, Selector: selector, Update: update}, nil
}

func scatterInsert(b []byte) (*Insert, error) {
	flags, b, err := takeInt32(b, "flags")
	if err != nil {
		return nil, err
	}
	collection, b, err := takeCString(b, "collection")
	if err != nil {
		return nil, err
	}
	docs, err := takeBSONArray(b)
	if err != nil {
		return nil, err
	}
	return &Insert{Flags: flags, Collection: collection, Documents: docs}, nil
}

func scatterQuery(b []byte) (*Query, error) {
	flags, b, err := takeInt32(b, "flags")
	if err != nil {
		return nil, err
	}
	collection, b, err := takeCString(b, "collection")
	if err != nil {
		return nil, err
	}
	skip, b, err := takeInt32(b, "skip")
	if err != nil {
		return nil, err
	}
	nreturn, b, err := takeInt32(b, "n_return")
	if err != nil {
		return nil, err
	}
	query, b, err := takeBSON(b)
	if err != nil {
		return nil, err
	}
	var selector []byte
	if len(b) > 0 {
		selector, b, err = takeBSON(b)
		if err != nil {
			return nil, err
		}
	}
	_ = b
	return &Query{
		Flags:                QueryFlag(flags),
		Collection:           collection,
		Skip:                 skip,
		NReturn:              nreturn,
		Query:                query,
		ReturnFieldsSelector: selector,
	}, nil
}

func scatterGetMore(b []byte) (*GetMore, error) {
	_, b, err := takeInt32(b, "zero")
	if err != nil {
		return nil, err
	}
	collection, b, err := takeCString(b, "collection")
	if err != nil {
		return nil, err
	}
	nreturn, b, err := takeInt32(b, "n_return")
	if err != nil {
		return nil, err
	}
	cursorID, _, err := takeInt64(b, "cursor_id")
	if err != nil {
		return nil, err
	}
	return &GetMore{Collection: collection, NReturn: nreturn, CursorID: cursorID}, nil
}

func scatterDelete(b []byte) (*Delete, error) {
	_, b, err := takeInt32(b, "zero")
	if err != nil {
		return nil, err
	}
	collection, b, err := takeCString(b, "collection")
	if err != nil {
		return nil, err
	}
	flags, b, err := takeInt32(b, "flags")
	if err != nil {
		return nil, err
	}
	selector, _, err := takeBSON(b)
	if err != nil {
		return nil, err
	}
	return &Delete{Collection: collection, Flags: flags, Selector: selector}, nil
}

func scatterKillCursors(b []byte) (*KillCursors, error) {
	_, b, err := takeInt32(b, "zero")
	if err != nil {
		return nil, err
	}
	count, b, err := takeInt32(b, "n_cursors")
	if err != nil {
		return nil, err
	}
	if count < 0 || int64(count)*8 > int64(len(b)) {
		return nil, &ErrTruncatedField{Field: "cursors"}
	}
	cursors := make([]int64, count)
	for i := range cursors {
		cursors[i] = GetInt64(b[8*i : 8*i+8])
	}
	return &KillCursors{Cursors: cursors}, nil
}

func scatterReply(b []byte) (*Reply, error) {
	flags, b, err := takeInt32(b, "flags")
	if err != nil {
		return nil, err
	}
	cursorID, b, err := takeInt64(b, "cursor_id")
	if err != nil {
		return nil, err
	}
	startingFrom, b, err := takeInt32(b, "starting_from")
	if err != nil {
		return nil, err
	}
	nreturned, b, err := takeInt32(b, "n_returned")
	if err != nil {
		return nil, err
	}
	docs, err := takeBSONArray(b)
	if err != nil {
		return nil, err
	}
	return &Reply{
		Flags:        ReplyFlag(flags),
		CursorID:     cursorID,
		StartingFrom: startingFrom,
		NReturned:    nreturned,
		Documents:    docs,
	}, nil
}

func scatterCompressed(b []byte) (*Compressed, error) {
	originalOpCode, b, err := takeInt32(b, "original_opcode")
	if err != nil {
		return nil, err
	}
	uncompressedSize, b, err := takeInt32(b, "uncompressed_size")
	if err != nil {
		return nil, err
	}
	compressorID, b, err := takeUint8(b, "compressor_id")
	if err != nil {
		return nil, err
	}
	return &Compressed{
		OriginalOpCode:    OpCode(originalOpCode),
		UncompressedSize:  uncompressedSize,
		CompressorID:      compressorID,
		CompressedMessage: b,
	}, nil
}

func scatterMsg(b []byte) (*Msg, error) {
	flags, b, err := takeInt32(b, "flags")
	if err != nil {
		return nil, err
	}
	return &Msg{Flags: flags, Sections: b}, nil
}

// replyPrefixLen is the size, after the header, of the fixed-width
// OP_REPLY prefix: flags, cursor_id, starting_from, n_returned.
const replyPrefixLen = 4 + 8 + 4 + 4

// ReplyHeader is the result of ScatterReplyHeader: the fixed-width prefix
// of an OP_REPLY without its document tail.
type ReplyHeader struct {
	Header       Header
	Flags        ReplyFlag
	CursorID     int64
	StartingFrom int32
	NReturned    int32
}

// ScatterReplyHeader validates and parses a reply's header and fixed-width
// prefix without parsing the document tail (spec.md §4.3), letting a
// caller peek at cursor state before reading the body.
func ScatterReplyHeader(buf []byte) (*ReplyHeader, error) {
	if len(buf) < HeaderLen {
		return nil, ErrTruncatedHeader
	}
	var h Header
	h.FromWire(buf[:HeaderLen])
	if h.OpCode != OpReply {
		return nil, &ErrUnknownOpCode{OpCode: int32(h.OpCode)}
	}
	rest := buf[HeaderLen:]
	flags, rest, err := takeInt32(rest, "flags")
	if err != nil {
		return nil, err
	}
	cursorID, rest, err := takeInt64(rest, "cursor_id")
	if err != nil {
		return nil, err
	}
	startingFrom, rest, err := takeInt32(rest, "starting_from")
	if err != nil {
		return nil, err
	}
	nreturned, _, err := takeInt32(rest, "n_returned")
	if err != nil {
		return nil, err
	}
	return &ReplyHeader{
		Header:       h,
		Flags:        ReplyFlag(flags),
		CursorID:     cursorID,
		StartingFrom: startingFrom,
		NReturned:    nreturned,
	}, nil
}

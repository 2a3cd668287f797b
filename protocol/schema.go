package protocol

// fieldKind enumerates the field primitives described in spec.md §3. Every
// variant's Fields() method returns an ordered []field built from these
// kinds; Gather (C4) and the debug formatter (C9) walk that single table
// rather than re-deriving field order independently. Scatter (C5) does not
// read it: each opcode has its own decoder in scatter.go, so adding a field
// to a variant means changing both its Fields() method and that decoder.
type fieldKind int

const (
	kindInt32 fieldKind = iota
	kindUint8
	kindInt64
	kindQueryFlag
	kindReplyFlag
	kindCString
	kindBSON
	kindBSONArray
	kindDocTail  // outbound iovec-array of pre-framed BSON documents
	kindRawTail
	kindInt64Array
)

// field is one entry of a variant's schema: a name, a kind, and the live
// value to encode/print. Scalars are carried by value; everything else is a
// borrowed/owned byte slice (or slice of byte slices) that Gather appends
// to the iovec sequence without copying.
type field struct {
	name string
	kind fieldKind

	i32    int32
	i64    int64
	u8     byte
	qflag  QueryFlag
	rflag  ReplyFlag
	bytes  []byte   // cstring, BSON, raw tail
	docs   [][]byte // BSON-array / doc-tail
	ints64 []int64  // int64 array
}

// Variant is implemented by each of the nine opcode payload structs. It is
// the Go idiom for the tagged union described in spec.md §9 ("struct per
// variant plus opcode-keyed dispatch table"): Message holds an interface
// value instead of a native sum type.
type Variant interface {
	// OpCode returns the opcode this variant encodes to.
	OpCode() OpCode
	// Fields returns the variant's field schema in on-wire order.
	Fields() []field
}

// Message is a header paired with exactly one variant payload, selected by
// Header.OpCode.
type Message struct {
	Header  Header
	Variant Variant
}

package protocol

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/mgo.v2/bson"
)

// Debug renders a one-line-per-field dump of msg (C9). It carries no
// stability guarantees; it exists for logging and manual inspection, not
// for parsing.
func Debug(msg *Message) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", msg.Header.String())

	if msg.Variant == nil {
		sb.WriteString("  <no variant>\n")
		return sb.String()
	}

	for _, f := range msg.Variant.Fields() {
		fmt.Fprintf(&sb, "  %s: %s\n", f.name, debugField(f))
	}
	return sb.String()
}

func debugField(f field) string {
	switch f.kind {
	case kindInt32:
		return fmt.Sprintf("%d", f.i32)
	case kindUint8:
		return fmt.Sprintf("%d", f.u8)
	case kindInt64:
		return fmt.Sprintf("%d", f.i64)
	case kindQueryFlag:
		return fmt.Sprintf("0x%x", int32(f.qflag))
	case kindReplyFlag:
		return fmt.Sprintf("0x%x", int32(f.rflag))
	case kindCString:
		return CString(f.bytes).String()
	case kindBSON:
		return debugBSON(f.bytes)
	case kindBSONArray:
		parts := make([]string, len(f.docs))
		for i, d := range f.docs {
			parts[i] = debugBSON(d)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case kindDocTail:
		parts := make([]string, len(f.docs))
		for i, d := range f.docs {
			parts[i] = hex.EncodeToString(d)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case kindRawTail:
		return hex.EncodeToString(f.bytes)
	case kindInt64Array:
		parts := make([]string, len(f.ints64))
		for i, v := range f.ints64 {
			parts[i] = fmt.Sprintf("%d", v)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return spew.Sdump(f)
	}
}

// debugBSON renders a BSON document as an extended-JSON-like string using
// the BSON library, the way the teacher's proxy logged decoded query
// documents with spew.Sdump(q) - here via bson.Unmarshal into an ordered
// bson.D instead, which preserves field order and prints it with fmt.
func debugBSON(doc []byte) string {
	var d bson.D
	if err := bson.Unmarshal(doc, &d); err != nil {
		return fmt.Sprintf("<invalid bson: %s>", err)
	}
	parts := make([]string, len(d))
	for i, e := range d {
		parts[i] = fmt.Sprintf("%s: %v", e.Name, e.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

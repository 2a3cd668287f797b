package protocol

import (
	"net"

	"github.com/facebookgo/stackerr"
)

// Gather produces the ordered iovec sequence for msg (C4). The returned
// net.Buffers is Go's vectored I/O type: a transport can hand it directly
// to a single writev-equivalent write, exactly as spec.md §4.2 requires
// ("the transport may write them with one writev-style call"). Gather
// copies no payload bytes; it writes the computed total length back into
// msg.Header.MessageLength.
func Gather(msg *Message) (net.Buffers, error) {
	if msg.Variant == nil {
		return nil, stackerr.New("protocol: gather of message with nil variant")
	}

	total := int32(HeaderLen)
	var bufs net.Buffers

	for _, f := range msg.Variant.Fields() {
		switch f.kind {
		case kindInt32:
			b := make([]byte, 4)
			PutInt32(b, f.i32)
			bufs = append(bufs, b)
			total += 4

		case kindQueryFlag:
			b := make([]byte, 4)
			PutInt32(b, int32(f.qflag))
			bufs = append(bufs, b)
			total += 4

		case kindReplyFlag:
			b := make([]byte, 4)
			PutInt32(b, int32(f.rflag))
			bufs = append(bufs, b)
			total += 4

		case kindInt64:
			b := make([]byte, 8)
			PutInt64(b, f.i64)
			bufs = append(bufs, b)
			total += 8

		case kindUint8:
			bufs = append(bufs, []byte{f.u8})
			total++

		case kindCString:
			if len(f.bytes) == 0 || f.bytes[len(f.bytes)-1] != 0 {
				return nil, stackerr.Newf("protocol: gather: field %q is not a valid cstring", f.name)
			}
			bufs = append(bufs, f.bytes)
			total += int32(len(f.bytes))

		case kindBSON:
			if _, ok := bsonLen(f.bytes); !ok {
				return nil, stackerr.Newf("protocol: gather: field %q has an invalid bson length", f.name)
			}
			bufs = append(bufs, f.bytes)
			total += int32(len(f.bytes))

		case kindBSONArray, kindDocTail:
			for _, doc := range f.docs {
				if _, ok := bsonLen(doc); !ok {
					return nil, stackerr.Newf("protocol: gather: field %q has a document with an invalid bson length", f.name)
				}
				bufs = append(bufs, doc)
				total += int32(len(doc))
			}

		case kindRawTail:
			bufs = append(bufs, f.bytes)
			total += int32(len(f.bytes))

		case kindInt64Array:
			b := make([]byte, 4+8*len(f.ints64))
			PutUint32(b[0:4], uint32(len(f.ints64)))
			for i, v := range f.ints64 {
				PutInt64(b[4+8*i:4+8*i+8], v)
			}
			bufs = append(bufs, b)
			total += int32(len(b))

		default:
			return nil, stackerr.Newf("protocol: gather: unknown field kind for %q", f.name)
		}
	}

	msg.Header.MessageLength = total
	msg.Header.OpCode = msg.Variant.OpCode()

	out := make(net.Buffers, 0, len(bufs)+1)
	out = append(out, msg.Header.ToWire())
	out = append(out, bufs...)
	return out, nil
}

// TotalLen returns the sum of iov_len over every iovec in bufs, as spec.md
// §8 property 2 requires: it must equal Header.MessageLength after Gather.
func TotalLen(bufs net.Buffers) int64 {
	var n int64
	for _, b := range bufs {
		n += int64(len(b))
	}
	return n
}

// Linearize concatenates bufs into one contiguous buffer, for transports
// that cannot perform vectored writes or for the compression wrapper,
// which must linearize before handing bytes to a compressor.
func Linearize(bufs net.Buffers) []byte {
	out := make([]byte, 0, TotalLen(bufs))
	for _, b := range bufs {
		out = append(out, b...)
	}
	return out
}

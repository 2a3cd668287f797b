package wirecompress

import (
	"github.com/facebookgo/stackerr"

	"github.com/mcuadros/mongowire/protocol"
)

// ErrUnknownCompressor is returned by Unwrap when an OP_COMPRESSED
// envelope names a compressor id nothing has Register'd.
var ErrUnknownCompressor = stackerr.New("wirecompress: unknown compressor id")

// Wrap implements the outbound half of C7: it gathers msg, linearizes its
// payload (everything after the 16 byte header), compresses that payload
// with c, and returns a fresh *protocol.Message carrying an OP_COMPRESSED
// envelope around it.
//
// On compressor failure, Wrap follows spec.md §4.5 step 4 exactly: it
// warns via log and returns the original message unchanged with ok=false,
// rather than an error - callers must not assume the message was
// rewritten.
func Wrap(msg *protocol.Message, c Compressor, level int, log Logger) (out *protocol.Message, ok bool, err error) {
	bufs, err := protocol.Gather(msg)
	if err != nil {
		return nil, false, err
	}
	full := protocol.Linearize(bufs)
	if len(full) < protocol.HeaderLen {
		return nil, false, stackerr.New("wirecompress: gathered message shorter than header")
	}
	src := full[protocol.HeaderLen:]

	compressed, cerr := c.Compress(level, src)
	if cerr != nil {
		if log != nil {
			log.Warnf("wirecompress: %s compression failed, sending uncompressed: %s", c.Name(), cerr)
		}
		return msg, false, nil
	}

	out = &protocol.Message{
		Header: protocol.Header{
			RequestID:  msg.Header.RequestID,
			ResponseTo: msg.Header.ResponseTo,
		},
		Variant: &protocol.Compressed{
			OriginalOpCode:    msg.Header.OpCode,
			UncompressedSize:  int32(len(src)),
			CompressorID:      c.ID(),
			CompressedMessage: compressed,
		},
	}
	return out, true, nil
}

// Unwrap implements the inbound half of C7: given a decoded OP_COMPRESSED
// message, it decompresses the payload, synthesizes the inner message's
// 16 byte header (writing a correctly sized int32 length - see spec.md
// §9's note on _mongoc_rpc_decompress's size_t bug), and re-scatters it.
// The returned Message's lifetime is that of the freshly allocated inner
// buffer, not the original receive buffer.
func Unwrap(msg *protocol.Message) (*protocol.Message, error) {
	env, ok := msg.Variant.(*protocol.Compressed)
	if !ok {
		return nil, stackerr.New("wirecompress: message is not OP_COMPRESSED")
	}

	c, found := Lookup(env.CompressorID)
	if !found {
		return nil, ErrUnknownCompressor
	}

	payload, err := c.Decompress(env.CompressedMessage, int(env.UncompressedSize))
	if err != nil || int32(len(payload)) != env.UncompressedSize {
		return nil, protocol.ErrDecompressionFailed
	}

	inner := make([]byte, protocol.HeaderLen+len(payload))
	h := protocol.Header{
		MessageLength: int32(len(inner)),
		RequestID:     msg.Header.RequestID,
		ResponseTo:    msg.Header.ResponseTo,
		OpCode:        env.OriginalOpCode,
	}
	copy(inner[:protocol.HeaderLen], h.ToWire())
	copy(inner[protocol.HeaderLen:], payload)

	return protocol.Scatter(inner)
}

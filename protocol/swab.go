package protocol

// SwabToLE and SwabFromLE correspond to the endian normalizer described in
// spec.md §4.4 (C6): on a big-endian host, a C implementation that
// overlays a native struct onto the wire buffer must explicitly byte-swap
// every multi-byte integer field before transmission and after decode.
//
// This Go implementation never performs that kind of struct overlay:
// Gather and Scatter always go through PutInt32/GetInt32 and
// PutInt64/GetInt64 (primitives.go), which assemble and disassemble the
// wire's little-endian bytes explicitly, one byte at a time, on every
// host regardless of native byte order. There is therefore nothing left
// for a separate swap pass to do - SwabToLE and SwabFromLE are identity
// functions, kept only so callers written against spec.md's interface
// have something to call. Composing them is trivially the identity, which
// is what spec.md §8 property 3 requires.
func SwabToLE(msg *Message) *Message { return msg }

// SwabFromLE is the inverse of SwabToLE; see its doc comment.
func SwabFromLE(msg *Message) *Message { return msg }

package wirecompress

import (
	"bytes"
	"compress/zlib"
	"io"
)

// zlibCompressor is compressor id 2. No third-party zlib implementation
// turned up anywhere in the retrieved pack (every zlib-shaped example
// reaches for the standard library), so this is one of the few places in
// this module that is deliberately stdlib-only - see DESIGN.md.
type zlibCompressor struct{}

func (zlibCompressor) ID() byte     { return 2 }
func (zlibCompressor) Name() string { return "zlib" }

// MaxCompressedLen is unknown (0): zlib's worst case bound isn't exposed
// by the standard library in a cheap way.
func (zlibCompressor) MaxCompressedLen(int) int { return 0 }

// DefaultLevel is used when the URI options collaborator has no
// zlibCompressionLevel entry, matching spec.md §4.5.
const DefaultLevel = -1

func (zlibCompressor) Compress(level int, src []byte) ([]byte, error) {
	if level < zlib.HuffmanOnly || level > zlib.BestCompression {
		level = zlib.DefaultCompression
	}
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (zlibCompressor) Decompress(src []byte, uncompressedSize int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	dst := make([]byte, uncompressedSize)
	if _, err := io.ReadFull(r, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

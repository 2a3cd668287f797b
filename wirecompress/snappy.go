package wirecompress

import "github.com/golang/snappy"

// snappyCompressor is compressor id 1, the compressor MongoDB clients
// negotiate by default when compression is enabled.
type snappyCompressor struct{}

func (snappyCompressor) ID() byte     { return 1 }
func (snappyCompressor) Name() string { return "snappy" }

func (snappyCompressor) MaxCompressedLen(n int) int {
	return snappy.MaxEncodedLen(n)
}

func (snappyCompressor) Compress(_ int, src []byte) ([]byte, error) {
	return snappy.Encode(nil, src), nil
}

func (snappyCompressor) Decompress(src []byte, _ int) ([]byte, error) {
	return snappy.Decode(nil, src)
}

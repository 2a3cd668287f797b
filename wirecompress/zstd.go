package wirecompress

import "github.com/klauspost/compress/zstd"

// zstdCompressor is compressor id 3.
type zstdCompressor struct{}

func (zstdCompressor) ID() byte     { return 3 }
func (zstdCompressor) Name() string { return "zstd" }

func (zstdCompressor) MaxCompressedLen(int) int { return 0 }

func (zstdCompressor) Compress(_ int, src []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(src, nil), nil
}

func (zstdCompressor) Decompress(src []byte, uncompressedSize int) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(src, make([]byte, 0, uncompressedSize))
}

// Package wirecompress implements the OP_COMPRESSED envelope (C7) and the
// concrete compressor registry spec.md §1 places out of scope for the
// codec proper ("the concrete compression codecs ... referenced only by an
// integer identifier"). protocol.Compressed only ever carries a
// compressor id byte; this package is where that id resolves to an actual
// algorithm.
package wirecompress

import "sync"

// Compressor is the collaborator surface spec.md §6 names:
// compress/uncompress/max_compressed_length/compressor_id_to_name, recast
// into idiomatic Go signatures (return values instead of out-parameters).
type Compressor interface {
	// ID is the wire identifier carried in Compressed.CompressorID.
	ID() byte
	// Name is the human readable compressor name.
	Name() string
	// MaxCompressedLen returns an upper bound for compressing n bytes, or
	// 0 if the codec has no cheap bound to offer.
	MaxCompressedLen(n int) int
	// Compress compresses src at the given level (meaningful only to
	// zlib; ignored elsewhere) and returns the compressed bytes.
	Compress(level int, src []byte) ([]byte, error)
	// Decompress inflates src, which is known to expand to exactly
	// uncompressedSize bytes.
	Decompress(src []byte, uncompressedSize int) ([]byte, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[byte]Compressor{}
)

// Register adds c to the default registry, keyed by c.ID(). Registering a
// second compressor under the same id replaces the first.
func Register(c Compressor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[c.ID()] = c
}

// Lookup returns the compressor registered for id, if any.
func Lookup(id byte) (Compressor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[id]
	return c, ok
}

// Name returns compressor id's name, or "unknown" if unregistered -
// spec.md §6's compressor_id_to_name.
func Name(id byte) string {
	if c, ok := Lookup(id); ok {
		return c.Name()
	}
	return "unknown"
}

func init() {
	Register(noopCompressor{})
	Register(snappyCompressor{})
	Register(zlibCompressor{})
	Register(zstdCompressor{})
}

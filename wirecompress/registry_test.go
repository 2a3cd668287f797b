package wirecompress

import (
	"bytes"
	"fmt"
	"testing"
)

func TestLookupAndName(t *testing.T) {
	t.Parallel()
	cases := []struct {
		id   byte
		name string
	}{
		{0, "noop"},
		{1, "snappy"},
		{2, "zlib"},
		{3, "zstd"},
	}
	for _, c := range cases {
		comp, ok := Lookup(c.id)
		if !ok {
			t.Fatalf("expected compressor registered for id %d", c.id)
		}
		if comp.Name() != c.name {
			t.Fatalf("id %d: expected name %q, got %q", c.id, c.name, comp.Name())
		}
		if Name(c.id) != c.name {
			t.Fatalf("Name(%d) = %q, want %q", c.id, Name(c.id), c.name)
		}
	}
	if _, ok := Lookup(255); ok {
		t.Fatal("expected no compressor registered for id 255")
	}
	if got := Name(255); got != "unknown" {
		t.Fatalf("Name(255) = %q, want \"unknown\"", got)
	}
}

func roundTripCompressor(t *testing.T, c Compressor, src []byte) {
	t.Helper()
	compressed, err := c.Compress(DefaultLevel, src)
	if err != nil {
		t.Fatalf("%s: Compress: %s", c.Name(), err)
	}
	if bound := c.MaxCompressedLen(len(src)); bound > 0 && len(compressed) > bound {
		t.Fatalf("%s: compressed length %d exceeds MaxCompressedLen bound %d", c.Name(), len(compressed), bound)
	}
	got, err := c.Decompress(compressed, len(src))
	if err != nil {
		t.Fatalf("%s: Decompress: %s", c.Name(), err)
	}
	if !bytes.Equal(got, src) {
		t.Fatalf("%s: round trip mismatch", c.Name())
	}
}

func TestCompressorRoundTrips(t *testing.T) {
	t.Parallel()
	src := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 50)
	for _, id := range []byte{0, 1, 2, 3} {
		c, ok := Lookup(id)
		if !ok {
			t.Fatalf("no compressor for id %d", id)
		}
		t.Run(fmt.Sprintf("id=%d/%s", id, c.Name()), func(t *testing.T) {
			t.Parallel()
			roundTripCompressor(t, c, src)
		})
	}
}

func TestCompressorRoundTripEmpty(t *testing.T) {
	t.Parallel()
	for _, id := range []byte{0, 1, 2, 3} {
		c, _ := Lookup(id)
		roundTripCompressor(t, c, nil)
	}
}

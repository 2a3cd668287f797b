package protocol

import (
	"errors"
	"testing"

	"gopkg.in/mgo.v2/bson"
)

// TestScatterTruncatedHeader is spec.md §8 boundary behavior 5.
func TestScatterTruncatedHeader(t *testing.T) {
	t.Parallel()
	for n := 0; n < HeaderLen; n++ {
		_, err := Scatter(make([]byte, n))
		if err != ErrTruncatedHeader {
			t.Fatalf("len %d: expected ErrTruncatedHeader, got %v", n, err)
		}
	}
}

func buildHeader(opcode OpCode, bodyLen int) []byte {
	h := Header{MessageLength: int32(HeaderLen + bodyLen), OpCode: opcode}
	return h.ToWire()
}

// TestScatterUnknownOpCode is spec.md §8 boundary behavior 8.
func TestScatterUnknownOpCode(t *testing.T) {
	t.Parallel()
	for _, code := range []int32{0, 3, 1000, 2003, 2008, 2014} {
		buf := buildHeader(OpCode(code), 0)
		_, err := Scatter(buf)
		var unk *ErrUnknownOpCode
		if !errors.As(err, &unk) {
			t.Fatalf("opcode %d: expected ErrUnknownOpCode, got %v", code, err)
		}
		if unk.OpCode != code {
			t.Fatalf("expected opcode %d in error, got %d", code, unk.OpCode)
		}
	}
}

// TestScatterBadBSONLength is spec.md §8 boundary behavior 6.
func TestScatterBadBSONLength(t *testing.T) {
	t.Parallel()
	cases := []uint32{4, 0xFFFFFFFF}

	for _, badLen := range cases {
		declared := make([]byte, 4)
		PutUint32(declared, badLen)

		payload := make([]byte, 0)
		payload = append(payload, make([]byte, 4)...) // zero
		payload = append(payload, 0)                  // empty collection cstring
		payload = append(payload, make([]byte, 4)...) // flags
		payload = append(payload, declared...)        // bogus selector length prefix

		buf := make([]byte, HeaderLen+len(payload))
		h := Header{MessageLength: int32(len(buf)), OpCode: OpDelete}
		copy(buf[:HeaderLen], h.ToWire())
		copy(buf[HeaderLen:], payload)

		_, err := Scatter(buf)
		if err != ErrBadBSONLength {
			t.Fatalf("declared length %d: expected ErrBadBSONLength, got %v", badLen, err)
		}
	}
}

// TestScatterBadBSONLengthTooLong covers the buflen+1 case from spec.md §8
// boundary behavior 6 separately, since it needs a length one past a real
// buffer rather than a fixed magic constant.
func TestScatterBadBSONLengthTooLong(t *testing.T) {
	t.Parallel()
	selector := mustBSON(t, bson.M{})
	body := make([]byte, len(selector))
	copy(body, selector)
	PutUint32(body, uint32(len(selector)+1))

	payload := make([]byte, 0)
	payload = append(payload, make([]byte, 4)...) // zero
	payload = append(payload, 0)                  // empty collection
	payload = append(payload, make([]byte, 4)...) // flags
	payload = append(payload, body...)

	buf := make([]byte, HeaderLen+len(payload))
	h := Header{MessageLength: int32(len(buf)), OpCode: OpDelete}
	copy(buf[:HeaderLen], h.ToWire())
	copy(buf[HeaderLen:], payload)

	_, err := Scatter(buf)
	if err != ErrBadBSONLength {
		t.Fatalf("expected ErrBadBSONLength, got %v", err)
	}
}

// TestScatterUnterminatedCString is spec.md §8 boundary behavior 7.
func TestScatterUnterminatedCString(t *testing.T) {
	t.Parallel()
	payload := make([]byte, 0)
	payload = append(payload, make([]byte, 4)...) // flags
	payload = append(payload, []byte("no-nul-here")...)

	buf := make([]byte, HeaderLen+len(payload))
	h := Header{MessageLength: int32(len(buf)), OpCode: OpQuery}
	copy(buf[:HeaderLen], h.ToWire())
	copy(buf[HeaderLen:], payload)

	_, err := Scatter(buf)
	var uc *ErrUnterminatedCString
	if !errors.As(err, &uc) {
		t.Fatalf("expected ErrUnterminatedCString, got %v", err)
	}
	if uc.Field != "collection" {
		t.Fatalf("expected field 'collection', got %q", uc.Field)
	}
}

func TestScatterTruncatedField(t *testing.T) {
	t.Parallel()
	// A GetMore body that stops right after the collection name, missing
	// n_return and cursor_id.
	payload := make([]byte, 0)
	payload = append(payload, make([]byte, 4)...) // zero
	payload = append(payload, []byte("test.coll\x00")...)

	buf := make([]byte, HeaderLen+len(payload))
	h := Header{MessageLength: int32(len(buf)), OpCode: OpGetMore}
	copy(buf[:HeaderLen], h.ToWire())
	copy(buf[HeaderLen:], payload)

	_, err := Scatter(buf)
	var tf *ErrTruncatedField
	if !errors.As(err, &tf) {
		t.Fatalf("expected ErrTruncatedField, got %v", err)
	}
}

func TestScatterReplyHeaderDoesNotParseDocuments(t *testing.T) {
	t.Parallel()
	// A malformed document tail would fail full Scatter, but
	// ScatterReplyHeader must not care.
	payload := make([]byte, 0)
	payload = append(payload, make([]byte, 4)...) // flags
	payload = append(payload, make([]byte, 8)...) // cursor_id
	payload = append(payload, make([]byte, 4)...) // starting_from
	n := make([]byte, 4)
	PutInt32(n, 1)
	payload = append(payload, n...)
	payload = append(payload, 0xFF, 0xFF) // garbage document tail

	buf := make([]byte, HeaderLen+len(payload))
	h := Header{MessageLength: int32(len(buf)), OpCode: OpReply}
	copy(buf[:HeaderLen], h.ToWire())
	copy(buf[HeaderLen:], payload)

	rh, err := ScatterReplyHeader(buf)
	if err != nil {
		t.Fatalf("ScatterReplyHeader: %s", err)
	}
	if rh.NReturned != 1 {
		t.Fatalf("expected NReturned 1, got %d", rh.NReturned)
	}

	if _, err := Scatter(buf); err == nil {
		t.Fatal("expected full Scatter to fail on the garbage document tail")
	}
}

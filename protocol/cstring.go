package protocol

import "bytes"

// CString is a NUL-terminated byte sequence as defined by the BSON/wire
// spec. Decoded CStrings borrow from the input buffer and include the
// trailing NUL; NewCString constructs an owned one from a plain Go string.
type CString []byte

// NewCString builds a CString from s, appending the trailing NUL.
func NewCString(s string) CString {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return CString(b)
}

// String strips the trailing NUL and returns the name as a Go string.
func (c CString) String() string {
	if n := bytes.IndexByte(c, 0); n >= 0 {
		return string(c[:n])
	}
	return string(c)
}

// Package writeconcern is the minimal stand-in for the write-concern
// object spec.md §1 names as an external collaborator: the codec only
// ever needs its `w` value, never the rest of a real write concern
// (journal, wtimeout, fsync, ...).
package writeconcern

// WriteConcern carries the one field the codec's needs_gle operation
// consults: the `w` value, which may legally be an integer (0, 1, 2, ...),
// the string "majority", or a custom tag set name.
type WriteConcern struct {
	W interface{}
}

// Unacknowledged reports whether w is the zero value (0, "", or nil),
// meaning the caller does not want a getLastError follow-up.
func (wc *WriteConcern) Unacknowledged() bool {
	if wc == nil {
		return true
	}
	switch w := wc.W.(type) {
	case nil:
		return true
	case int:
		return w == 0
	case int32:
		return w == 0
	case int64:
		return w == 0
	case string:
		return w == ""
	default:
		return false
	}
}

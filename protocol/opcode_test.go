package protocol

import "testing"

func TestOpCodeString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		code OpCode
		want string
	}{
		{OpCode(0), "UNKNOWN"},
		{OpReply, "REPLY"},
		{OpUpdate, "UPDATE"},
		{OpInsert, "INSERT"},
		{OpQuery, "QUERY"},
		{OpGetMore, "GET_MORE"},
		{OpDelete, "DELETE"},
		{OpKillCursors, "KILL_CURSORS"},
		{OpCompressed, "COMPRESSED"},
		{OpMsg, "MSG"},
	}
	for _, c := range cases {
		if got := c.code.String(); got != c.want {
			t.Errorf("OpCode(%d).String() = %q, want %q", c.code, got, c.want)
		}
	}
}

func TestOpCodeValid(t *testing.T) {
	t.Parallel()
	valid := []OpCode{OpReply, OpUpdate, OpInsert, OpQuery, OpGetMore, OpDelete, OpKillCursors, OpCompressed, OpMsg}
	for _, c := range valid {
		if !c.Valid() {
			t.Errorf("expected %s to be valid", c)
		}
	}

	invalid := []OpCode{0, 3, 1000, 2003, 2008, 2014, -1}
	for _, c := range invalid {
		if c.Valid() {
			t.Errorf("expected opcode %d to be invalid", c)
		}
	}
}

func TestOpCodeIsMutation(t *testing.T) {
	t.Parallel()
	for _, c := range []OpCode{OpInsert, OpUpdate, OpDelete} {
		if !c.IsMutation() {
			t.Errorf("expected %s to be a mutation", c)
		}
	}
	for _, c := range []OpCode{OpQuery, OpGetMore, OpReply, OpKillCursors, OpCompressed, OpMsg} {
		if c.IsMutation() {
			t.Errorf("expected %s not to be a mutation", c)
		}
	}
}

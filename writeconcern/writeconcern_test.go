package writeconcern

import "testing"

func TestUnacknowledged(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		wc   *WriteConcern
		want bool
	}{
		{"nil receiver", nil, true},
		{"nil w", &WriteConcern{}, true},
		{"w=0 int", &WriteConcern{W: 0}, true},
		{"w=1 int", &WriteConcern{W: 1}, false},
		{"w=0 int32", &WriteConcern{W: int32(0)}, true},
		{"w=majority", &WriteConcern{W: "majority"}, false},
		{"w=empty string", &WriteConcern{W: ""}, true},
	}
	for _, c := range cases {
		if got := c.wc.Unacknowledged(); got != c.want {
			t.Errorf("%s: Unacknowledged() = %v, want %v", c.name, got, c.want)
		}
	}
}

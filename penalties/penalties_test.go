package penalties

import (
	"math"
	"testing"
)

func TestPenalize(t *testing.T) {
	cases := []struct {
		p    Penalty
		w    float64
		want float64
	}{
		{L1(0.01), 3, 0.01},
		{L1(0.01), -0.5, -0.01},
		{L1(0.01), 0, 0},
		{L2(0.01), 3, 0.06},
		{L2(0.01), -0.5, -0.01},
		{ElasticNet(1, 0.01), -2, -0.01},
		{ElasticNet(0, 0.01), 3, 0.06},
		{ElasticNet(0.5, 0.1), 1, 0.1 * (0.5*2*1 + 0.5)},
	}

	for _, c := range cases {
		if got := c.p.Penalize(c.w); math.Abs(got-c.want) > 1e-15 {
			t.Errorf("%s.Penalize(%v) = %v, want %v", c.p.TypeString(), c.w, got, c.want)
		}
	}
}

func TestParse(t *testing.T) {
	cases := map[string]string{
		"l1:0.01":              "l1-lasso",
		"Ridge:0.5":            "l2-ridge",
		"elastic-net:0.5,0.01": "elastic-net",
	}
	for desc, want := range cases {
		p, err := Parse(desc)
		if err != nil {
			t.Errorf("Parse(%q): %v", desc, err)
		} else if p.TypeString() != want {
			t.Errorf("Parse(%q) gave %q, want %q", desc, p.TypeString(), want)
		}
	}

	if p, err := Parse("none"); p != nil || err != nil {
		t.Errorf("Parse(none) = %v, %v", p, err)
	}

	for _, bad := range []string{"l1", "l2:1,2", "elastic-net:1", "dropout:0.5", "l1:x"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded", bad)
		}
	}
}

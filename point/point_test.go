package point

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	a := New(1.0000000000005, 2)
	b := New(1.0000000000006, 2)
	if !a.Equal(b) {
		t.Errorf("expected %v == %v within rounding", a, b)
	}
	c := New(1.1, 2)
	if a.Equal(c) {
		t.Errorf("expected %v != %v", a, c)
	}
}

func TestDist(t *testing.T) {
	a := New(0, 0)
	b := New(3, 4)
	if got := a.Dist(b); math.Abs(got-5) > 1e-12 {
		t.Errorf("Dist = %v; want 5", got)
	}
}

func TestDedup(t *testing.T) {
	pts := []Point{New(0, 0), New(0, 0), New(1, 1)}
	got := Dedup(pts)
	if len(got) != 2 {
		t.Errorf("Dedup len = %d; want 2", len(got))
	}
}

func TestLexLess(t *testing.T) {
	cases := []struct {
		a, b Point
		want bool
	}{
		{New(0, 0), New(1, 0), true},
		{New(1, 0), New(0, 0), false},
		{New(0, 0), New(0, 1), true},
		{New(0, 1), New(0, 0), false},
	}
	for _, c := range cases {
		if got := LexLess(c.a, c.b); got != c.want {
			t.Errorf("LexLess(%v,%v) = %v; want %v", c.a, c.b, got, c.want)
		}
	}
}

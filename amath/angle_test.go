package amath

import "testing"

func TestWrapFullTurn(t *testing.T) {
	for _, x := range []int32{-200000, -65536, -32769, -1, 0, 1, 32768, 65535, 65536, 200000} {
		if Wrap(x+65536) != Wrap(x) {
			t.Fatalf("Wrap(%d+65536) = %d, Wrap(%d) = %d", x, Wrap(x+65536), x, Wrap(x))
		}
	}
	if Wrap(0x8000) != -0x8000 {
		t.Fatalf("expected 0x8000 to wrap to -0x8000, got %d", Wrap(0x8000))
	}
}

func TestDiffBounded(t *testing.T) {
	angles := []int16{-0x8000, -0x4000, -1, 0, 1, 0x3FFF, 0x7FFF}
	for _, a := range angles {
		for _, b := range angles {
			if d := AbsDiff(a, b); d > 0x8000 {
				t.Fatalf("|Diff(%d, %d)| = %d, above half turn", a, b, d)
			}
		}
	}
	// Wrap boundary: the short way from just below the boundary to just
	// above it is two units, not a full turn.
	if d := AbsDiff(0x7FFF, -0x7FFF); d != 2 {
		t.Fatalf("expected wrap-boundary diff of 2, got %d", d)
	}
}

func TestTrigQuadrants(t *testing.T) {
	approx := func(a, b float32) bool {
		d := a - b
		return d < 1e-5 && d > -1e-5
	}
	if s := Sins(0); s != 0 {
		t.Fatalf("Sins(0) = %v", s)
	}
	if c := Coss(0); !approx(c, 1) {
		t.Fatalf("Coss(0) = %v", c)
	}
	if s := Sins(QuarterTurn); !approx(s, 1) {
		t.Fatalf("Sins(0x4000) = %v", s)
	}
	if c := Coss(-0x8000); !approx(c, -1) {
		t.Fatalf("Coss(-0x8000) = %v", c)
	}
}

func TestAtan2sAxes(t *testing.T) {
	cases := []struct {
		z, x float32
		want int16
	}{
		{1, 0, 0},
		{0, 1, QuarterTurn},
		{-1, 0, -0x8000},
		{0, -1, -QuarterTurn},
	}
	for _, c := range cases {
		if got := Atan2s(c.z, c.x); got != c.want {
			t.Fatalf("Atan2s(%v, %v) = %#x, want %#x", c.z, c.x, got, c.want)
		}
	}
}

func TestApproachWrapsShortWay(t *testing.T) {
	got := Approach(0x7F00, -0x7F00, 0x400, 0x400)
	if got != Wrap(0x7F00+0x200) {
		t.Fatalf("Approach crossed the boundary wrong: got %#x", got)
	}
}

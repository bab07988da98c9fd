package loads

import (
	"math"
	"testing"
)

func TestMomentAt(t *testing.T) {
	// Simply supported, w = 5 kN/m over 18 m
	if m := MomentAt(5, 18, 9); math.Abs(m-202.5) > 1e-12 {
		t.Errorf("midspan moment = %g, want 202.5", m)
	}
	if m := MomentAt(5, 18, 0); m != 0 {
		t.Errorf("moment at support = %g, want 0", m)
	}
	if m := MomentAt(5, 18, 18); m != 0 {
		t.Errorf("moment at far support = %g, want 0", m)
	}
	if m, mid := MomentAt(5, 18, 9), MidspanMoment(5, 18); m != mid {
		t.Errorf("MomentAt(midspan) = %g, MidspanMoment = %g", m, mid)
	}
	// Symmetry
	if a, b := MomentAt(5, 18, 4), MomentAt(5, 18, 14); math.Abs(a-b) > 1e-12 {
		t.Errorf("moment not symmetric: %g vs %g", a, b)
	}
}

func TestCombinations(t *testing.T) {
	ls := LoadSet{SelfWeight: 5, Permanent: 3, Variable: 8}

	if w := ls.QuasiPermanent(); math.Abs(w-11.2) > 1e-12 {
		t.Errorf("quasi-permanent load = %g, want 11.2", w)
	}
	if w := ls.Frequent(); math.Abs(w-12.8) > 1e-12 {
		t.Errorf("frequent load = %g, want 12.8", w)
	}

	// Combined midspan moments for the 18 m reference beam
	if m := MidspanMoment(ls.QuasiPermanent(), 18); math.Abs(m-453.6) > 1e-9 {
		t.Errorf("M quasi-permanent = %g, want 453.6", m)
	}
	if m := MidspanMoment(ls.Frequent(), 18); math.Abs(m-518.4) > 1e-9 {
		t.Errorf("M frequent = %g, want 518.4", m)
	}
}

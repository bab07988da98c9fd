package cable

import (
	"math"
	"testing"
)

func TestConstantStraightPath(t *testing.T) {
	path, err := New(18, []Waypoint{
		{X: 0, Y: 0.3, Type: Straight},
		{X: 18, Y: 0.3},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	for _, x := range []float64{0, 1.5, 9, 13.2, 18} {
		if e := path.PositionAt(x); math.Abs(e-0.3) > 1e-12 {
			t.Errorf("PositionAt(%g) = %g, want 0.3", x, e)
		}
		if a := path.TangentAngleAt(x); math.Abs(a) > 1e-9 {
			t.Errorf("TangentAngleAt(%g) = %g, want 0", x, a)
		}
	}
}

func TestSingleWaypointIsConstant(t *testing.T) {
	path, err := New(10, []Waypoint{{X: 5, Y: 0.25}})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	for _, x := range []float64{0, 3, 10} {
		if e := path.PositionAt(x); e != 0.25 {
			t.Errorf("PositionAt(%g) = %g, want 0.25", x, e)
		}
	}
}

func TestSymmetricParabolaMirrored(t *testing.T) {
	// Half-span definition: parabola from the anchor to the midspan
	// vertex; the second half is mirrored.
	path, err := New(18, []Waypoint{
		{X: 0, Y: 0, Type: Parabolic},
		{X: 9, Y: 0.3},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if e := path.PositionAt(9); math.Abs(e-0.3) > 1e-12 {
		t.Errorf("PositionAt(midspan) = %g, want 0.3", e)
	}
	if e0, eL := path.PositionAt(0), path.PositionAt(18); math.Abs(e0-eL) > 1e-12 {
		t.Errorf("PositionAt(0) = %g and PositionAt(L) = %g should match", e0, eL)
	}

	// Mirror: e(13.5) == e(4.5)
	if a, b := path.PositionAt(13.5), path.PositionAt(4.5); math.Abs(a-b) > 1e-12 {
		t.Errorf("mirrored evaluation: e(13.5) = %g, e(4.5) = %g", a, b)
	}

	// Quarter point on the fitted parabola: a = -0.3/81, e = a·4.5² + 0.3
	want := -0.3/81*20.25 + 0.3
	if e := path.PositionAt(4.5); math.Abs(e-want) > 1e-12 {
		t.Errorf("PositionAt(4.5) = %g, want %g", e, want)
	}

	// The tangent is flat at the vertex
	if a := path.TangentAngleAt(9); math.Abs(a) > 1e-6 {
		t.Errorf("TangentAngleAt(vertex) = %g, want ~0", a)
	}
}

func TestParabolaVertexHeuristic(t *testing.T) {
	// Vertex must sit at the endpoint with the larger |y| even when it
	// is the first waypoint.
	path, err := New(10, []Waypoint{
		{X: 0, Y: 0.4, Type: Parabolic},
		{X: 5, Y: 0.1},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if a := path.TangentAngleAt(0); math.Abs(a) > 1e-4 {
		t.Errorf("tangent at the vertex endpoint = %g, want ~0", a)
	}
	if e := path.PositionAt(5); math.Abs(e-0.1) > 1e-12 {
		t.Errorf("PositionAt(5) = %g, want 0.1", e)
	}
}

func TestOutOfDomainFallback(t *testing.T) {
	// Last waypoint past midspan: no mirroring rule applies, evaluation
	// outside the segments falls back to the last waypoint.
	path, err := New(10, []Waypoint{
		{X: 2, Y: 0.1, Type: Straight},
		{X: 6, Y: 0.2},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if e := path.PositionAt(8); e != 0.2 {
		t.Errorf("PositionAt(8) = %g, want fallback 0.2", e)
	}
	if e := path.PositionAt(1); e != 0.2 {
		t.Errorf("PositionAt(1) = %g, want fallback 0.2", e)
	}
}

func TestInvalidPaths(t *testing.T) {
	if _, err := New(0, []Waypoint{{X: 0, Y: 0.1}}); err == nil {
		t.Error("expected error for non-positive span")
	}
	if _, err := New(10, nil); err == nil {
		t.Error("expected error for empty waypoint list")
	}
	if _, err := New(10, []Waypoint{{X: 5, Y: 0.1}, {X: 2, Y: 0.2}}); err == nil {
		t.Error("expected error for unordered waypoints")
	}
}

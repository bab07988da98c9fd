package cable

import (
	"fmt"
	"math"
)

// CurveType tags the segment running from a waypoint to the next one.
type CurveType string

const (
	Straight  CurveType = "straight"
	Parabolic CurveType = "parabolic"
)

// Waypoint is one tendon profile point. Y is the eccentricity of the
// tendon centroid measured from the section centroidal axis, positive
// below the axis (the usual drape direction).
type Waypoint struct {
	X    float64   `json:"x"` // position along the beam (m)
	Y    float64   `json:"y"` // eccentricity (m), positive downward
	Type CurveType `json:"type,omitempty"`
}

// positionTolerance absorbs floating noise when locating the segment
// that brackets an evaluation position.
const positionTolerance = 1e-9

// Path is a compiled tendon profile. Segments are built once from the
// waypoints; evaluation is pure dispatch over the compiled segments.
// Waypoints may describe only the first half of the span: positions past
// the last waypoint are then mirrored about midspan.
type Path struct {
	Span     float64
	points   []Waypoint
	segments []segment
}

// segment is one compiled curve piece over [x1, x2].
type segment interface {
	bounds() (x1, x2 float64)
	valueAt(x float64) float64
}

// linear interpolates between its two endpoints.
type linear struct {
	p1, p2 Waypoint
}

func (l linear) bounds() (float64, float64) { return l.p1.X, l.p2.X }

func (l linear) valueAt(x float64) float64 {
	dx := l.p2.X - l.p1.X
	if math.Abs(dx) < positionTolerance {
		return l.p1.Y
	}
	return l.p1.Y + (x-l.p1.X)*(l.p2.Y-l.p1.Y)/dx
}

// parabola is y = a(x-h)² + k with the vertex at (h, k). The vertex is
// the endpoint with the larger-magnitude eccentricity, which places the
// flat point of the drape at the deepest waypoint.
type parabola struct {
	x1, x2 float64
	h, k   float64
	a      float64
}

func (p parabola) bounds() (float64, float64) { return p.x1, p.x2 }

func (p parabola) valueAt(x float64) float64 {
	d := x - p.h
	return p.a*d*d + p.k
}

// New compiles a tendon path from ordered waypoints over a beam of the
// given span. At least one waypoint is required; a single waypoint yields
// a constant profile.
func New(span float64, points []Waypoint) (*Path, error) {
	if span <= 0 {
		return nil, fmt.Errorf("cable path: span must be positive, got %g", span)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("cable path: at least one waypoint is required")
	}
	for i := 1; i < len(points); i++ {
		if points[i].X < points[i-1].X {
			return nil, fmt.Errorf("cable path: waypoints must be ordered by x (waypoint %d)", i+1)
		}
	}

	p := &Path{Span: span, points: points}
	for i := 0; i+1 < len(points); i++ {
		p.segments = append(p.segments, compile(points[i], points[i+1]))
	}
	return p, nil
}

// compile builds the curve piece between two consecutive waypoints. The
// type tag of the first waypoint governs the segment.
func compile(p1, p2 Waypoint) segment {
	if p1.Type != Parabolic {
		return linear{p1: p1, p2: p2}
	}

	// Vertex at the endpoint with the larger-magnitude eccentricity
	vertex, other := p1, p2
	if math.Abs(p2.Y) > math.Abs(p1.Y) {
		vertex, other = p2, p1
	}

	dx := other.X - vertex.X
	if math.Abs(dx) < positionTolerance {
		// Degenerate span, constant at the shared ordinate
		return linear{p1: p1, p2: p2}
	}

	return parabola{
		x1: p1.X,
		x2: p2.X,
		h:  vertex.X,
		k:  vertex.Y,
		a:  (other.Y - vertex.Y) / (dx * dx),
	}
}

// PositionAt evaluates the tendon eccentricity at position x along the
// beam. When the profile only covers the first half of the span, x is
// mirrored about midspan. Positions outside every segment fall back to
// the last waypoint's eccentricity.
func (p *Path) PositionAt(x float64) float64 {
	if len(p.points) == 1 {
		return p.points[0].Y
	}

	last := p.points[len(p.points)-1]
	if x > last.X+positionTolerance && last.X <= p.Span/2+positionTolerance {
		x = p.Span - x
	}

	for _, seg := range p.segments {
		x1, x2 := seg.bounds()
		if x >= x1-positionTolerance && x <= x2+positionTolerance {
			return seg.valueAt(x)
		}
	}

	return last.Y
}

// TangentAngleAt returns the tendon slope angle (rad) at position x,
// obtained by central finite difference of the eccentricity profile.
// The difference window is clamped to [0, span] so the end anchors use a
// one-sided difference instead of sampling outside the beam.
func (p *Path) TangentAngleAt(x float64) float64 {
	h := p.Span * 1e-5
	x1 := math.Max(0, x-h)
	x2 := math.Min(p.Span, x+h)
	if x2 <= x1 {
		return 0
	}
	slope := (p.PositionAt(x2) - p.PositionAt(x1)) / (x2 - x1)
	return math.Atan(slope)
}

// Waypoints returns the waypoints the path was compiled from.
func (p *Path) Waypoints() []Waypoint {
	return p.points
}

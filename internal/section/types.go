package section

import (
	"encoding/json"
	"os"
)

// Section represents a beam cross-section defined by the vertices of a
// simple polygon. The section is defined in a local coordinate system where:
// - Y-axis points upward (positive = top fiber)
// - X-axis points to the right
// - Origin can be at any convenient location
type Section struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Section geometry defined by vertices (in m)
	// Vertices may be listed clockwise or counter-clockwise; the polygon
	// is implicitly closed and assumed simple (no self-intersections)
	Vertices []Point `json:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"` // m
	Y float64 `json:"y"` // m
}

// Properties holds the calculated geometric properties of a section.
type Properties struct {
	// Overall dimensions (m)
	Width  float64
	Height float64

	// Bounding box (m)
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64

	// Gross area (m²)
	Area float64

	// Centroid location (m)
	CentroidX float64
	CentroidY float64

	// Centroidal moments of inertia (m⁴)
	Ix float64
	Iy float64

	// Distances from the centroid to the extreme fibers (m)
	Yi float64 // to bottom fiber
	Ys float64 // to top fiber

	// Section moduli (m³), +Inf when the fiber distance degenerates
	Wi float64 // I/yi, bottom
	Ws float64 // I/ys, top

	// Radii of gyration (m)
	Rx float64
	Ry float64
}

// LoadFromFile loads a section definition from a JSON file
func LoadFromFile(filepath string) (*Section, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var sec Section
	if err := json.Unmarshal(data, &sec); err != nil {
		return nil, err
	}

	if err := sec.Validate(); err != nil {
		return nil, err
	}

	return &sec, nil
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &GeometryError{"section must have at least 3 vertices"}
	}
	return nil
}

// GeometryError represents an invalid or degenerate polygon definition
type GeometryError struct {
	msg string
}

func (e *GeometryError) Error() string {
	return e.msg
}

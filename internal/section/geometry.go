package section

import "math"

// degenerateArea is the signed-area magnitude below which a polygon is
// treated as collapsed.
const degenerateArea = 1e-6

// fiberTolerance guards the W = I/y division when an extreme fiber
// coincides with the centroid.
const fiberTolerance = 1e-6

// Properties computes the geometric properties of the section using the
// discrete form of Green's theorem (shoelace formula) extended to first
// and second moments. Second moments are accumulated about the origin and
// shifted to the centroidal axes with the parallel-axis theorem.
func (s *Section) Properties() (*Properties, error) {
	if len(s.Vertices) < 3 {
		return nil, &GeometryError{"section must have at least 3 vertices"}
	}

	props := &Properties{}

	// Bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y
	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}
	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Shoelace accumulators, all signed by the winding direction
	var signedArea, sumX, sumY, sumXX, sumYY float64
	n := len(s.Vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := s.Vertices[i], s.Vertices[j]
		cross := vi.X*vj.Y - vj.X*vi.Y

		signedArea += cross
		sumX += (vi.X + vj.X) * cross
		sumY += (vi.Y + vj.Y) * cross
		sumXX += (vi.X*vi.X + vi.X*vj.X + vj.X*vj.X) * cross
		sumYY += (vi.Y*vi.Y + vi.Y*vj.Y + vj.Y*vj.Y) * cross
	}

	signedArea /= 2
	if math.Abs(signedArea) < degenerateArea {
		return nil, &GeometryError{"degenerate section: polygon area is zero"}
	}

	props.Area = math.Abs(signedArea)
	props.CentroidX = sumX / (6 * signedArea)
	props.CentroidY = sumY / (6 * signedArea)

	// Second moments about the origin, then parallel-axis shift:
	// I_c = I_origin - A d²  (signed, absolute value taken at the end)
	ixOrigin := sumYY / 12
	iyOrigin := sumXX / 12
	props.Ix = math.Abs(ixOrigin - signedArea*props.CentroidY*props.CentroidY)
	props.Iy = math.Abs(iyOrigin - signedArea*props.CentroidX*props.CentroidX)

	// Extreme fiber distances and section moduli
	props.Yi = props.CentroidY - props.MinY
	props.Ys = props.MaxY - props.CentroidY
	props.Wi = modulus(props.Ix, props.Yi)
	props.Ws = modulus(props.Ix, props.Ys)

	props.Rx = math.Sqrt(props.Ix / props.Area)
	props.Ry = math.Sqrt(props.Iy / props.Area)

	return props, nil
}

// modulus calculates a section modulus I/y, substituting +Inf when the
// fiber distance degenerates so that downstream stress ratios resolve to
// zero instead of dividing by zero.
func modulus(inertia, y float64) float64 {
	if math.Abs(y) < fiberTolerance {
		return math.Inf(1)
	}
	return inertia / y
}

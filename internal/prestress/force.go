// Package prestress contains the prestressing force solver and the
// multi-stage loss pipeline for post-tensioned simply supported beams.
package prestress

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gopsc/internal/ec2"
	"github.com/alexiusacademia/gopsc/internal/section"
)

// Sign convention: tensile fiber stress is positive, compression negative.
// The section modulus is signed per fiber: +Wi at the bottom, -Ws at the
// top, so a single equation covers both fibers:
//
//	sigma = -P/A - P·e/W + M/W
//
// with P the prestressing force (kN), A the area (m²), e the tendon
// eccentricity below the centroid (m), M the bending moment (kN-m) and
// the result in kPa.

// limitKind says on which side of the limit the fiber stress must stay.
type limitKind int

const (
	maxTension     limitKind = iota // sigma <= limit (tension cap)
	maxCompression                  // sigma >= limit (compression cap, limit < 0)
)

// coefficientTolerance guards the closed-form inversion when the force
// coefficient (1/A + e/W) vanishes and the check no longer involves P.
const coefficientTolerance = 1e-12

// ForceBound is one solved stress-limit check.
type ForceBound struct {
	Name    string  // which fiber/stage/limit produced it
	Value   float64 // bounding force (kN)
	IsLower bool    // true when the check requires P >= Value
}

// ForceRange is the admissible initial prestressing force interval.
type ForceRange struct {
	Low    float64 // max of the lower bounds (kN)
	High   float64 // min of the upper bounds (kN)
	Bounds []ForceBound

	// EstimatedCapacity is the advisory nominal tendon capacity
	// Ap·0.75·fptk (kN). It is not part of the admissibility check.
	EstimatedCapacity float64
}

// RangeError reports that the stress-limit bounds cross: no initial force
// satisfies all four checks and the section or tendon layout must be
// redesigned.
type RangeError struct {
	Low  float64
	High float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("admissible prestress range is empty: lower bound %.1f kN exceeds upper bound %.1f kN", e.Low, e.High)
}

// solveBound inverts sigma_limit = -P/A - P·e/W + M/W for P.
//
// The fiber stress is linear in P with slope -(1/A + e/W). Whether the
// solved force is a lower or an upper bound follows from the slope sign
// and the side of the limit. A vanishing coefficient means the check does
// not constrain P; the bound is pushed to 0 or +Inf so it never governs.
func solveBound(name string, limit float64, w, moment, area, ecc float64, kind limitKind) ForceBound {
	coeff := 1/area + ecc/w // 1/m²; e/W resolves to 0 when W is +Inf
	isLower := (kind == maxTension) == (coeff > 0)

	if math.Abs(coeff) < coefficientTolerance {
		value := 0.0
		if !isLower {
			value = math.Inf(1)
		}
		return ForceBound{Name: name, Value: value, IsLower: isLower}
	}

	// Work in kPa so the solved force comes out in kN
	p := (moment/w - limit*1000) / coeff
	return ForceBound{Name: name, Value: p, IsLower: isLower}
}

// StressAt evaluates the fiber stress (MPa) for a force P (kN) using the
// same signed-modulus equation the solver inverts. Exposed for round-trip
// verification and reporting.
func StressAt(p, area, ecc, w, moment float64) float64 {
	return (-p/area - p*ecc/w + moment/w) / 1000
}

// SolveRange computes the admissible initial force interval from the four
// stress-limit checks:
//
//   - bottom fiber at transfer against the initial compression limit
//   - top fiber at transfer against the initial tension limit
//   - bottom fiber in service (frequent moment) against the service tension limit
//   - top fiber in service (quasi-permanent moment) against the service compression limit
//
// The transfer checks use the self-weight moment only. ecc is the tendon
// eccentricity at the governing section (m), moments in kN-m.
func SolveRange(props *section.Properties, ecc float64, mTransfer, mQuasi, mFrequent float64, lim ec2.StressLimits) (*ForceRange, error) {
	wb := props.Wi  // bottom fiber, signed positive
	wt := -props.Ws // top fiber, signed negative

	bounds := []ForceBound{
		solveBound("transfer, bottom fiber compression", lim.InitialCompression, wb, mTransfer, props.Area, ecc, maxCompression),
		solveBound("transfer, top fiber tension", lim.InitialTension, wt, mTransfer, props.Area, ecc, maxTension),
		solveBound("service, bottom fiber tension", lim.ServiceTension, wb, mFrequent, props.Area, ecc, maxTension),
		solveBound("service, top fiber compression", lim.ServiceCompression, wt, mQuasi, props.Area, ecc, maxCompression),
	}

	fr := &ForceRange{Low: 0, High: math.Inf(1), Bounds: bounds}
	for _, b := range bounds {
		if b.IsLower {
			fr.Low = math.Max(fr.Low, b.Value)
		} else {
			fr.High = math.Min(fr.High, b.Value)
		}
	}

	if fr.Low > fr.High {
		return fr, &RangeError{Low: fr.Low, High: fr.High}
	}
	return fr, nil
}

// EstimateCapacity returns the advisory nominal capacity of the tendon
// group (kN): total strand area (mm²) stressed to the standard fraction
// of the characteristic strength fptk (MPa).
func EstimateCapacity(areaMM2, fptk float64) float64 {
	return areaMM2 * ec2.NominalStressRatio * fptk / 1000
}

// Package loads evaluates service load combinations and bending moments
// for simply supported prestressed beams.
package loads

import "github.com/alexiusacademia/gopsc/internal/ec2"

// LoadSet holds the three unfactored distributed loads on the beam (kN/m).
type LoadSet struct {
	SelfWeight float64 `json:"self_weight"` // G0 - self weight
	Permanent  float64 `json:"permanent"`   // G - superimposed permanent load
	Variable   float64 `json:"variable"`    // Q - variable load
}

// QuasiPermanent returns the quasi-permanent combined load (kN/m).
func (ls LoadSet) QuasiPermanent() float64 {
	return ec2.QuasiPermanent.Combine(ls.SelfWeight, ls.Permanent, ls.Variable)
}

// Frequent returns the frequent combined load (kN/m).
func (ls LoadSet) Frequent() float64 {
	return ec2.Frequent.Combine(ls.SelfWeight, ls.Permanent, ls.Variable)
}

// MomentAt calculates the bending moment (kN-m) at position x of a simply
// supported beam under a uniform load w (kN/m):
//
//	M(x) = w·x·(L-x)/2
//
// which reduces to wL²/8 at midspan.
func MomentAt(w, span, x float64) float64 {
	return w * x * (span - x) / 2
}

// MidspanMoment calculates wL²/8 (kN-m).
func MidspanMoment(w, span float64) float64 {
	return w * span * span / 8
}

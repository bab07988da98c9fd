package ec2

import "math"

// EN 1992-1-1 Material Constants

const (
	// Moduli of elasticity (MPa)
	// Section 3.3.6 for prestressing steel, Section 3.2.7 for rebar
	Ep = 195000.0 // Prestressing strands
	Es = 200000.0 // Reinforcing steel

	// Cement strength-development coefficient for class N cement
	// Section 3.1.2(6)
	CementClassN = 0.25

	// Stress-limit coefficients
	KInitialCompression   = 0.60 // Section 5.10.2.2(5), at transfer
	KInitialCompressionHS = 0.55 // reduced for fck > 50 MPa
	KServiceCompression   = 0.60 // Section 7.2(2), characteristic combination

	// Maximum stressing ratio for nominal tendon capacity
	// Section 5.10.2.1: sigma_p,max = min(0.8 fpk, 0.9 fp0.1k) ~ 0.75 fpk in practice
	NominalStressRatio = 0.75

	// Long-term deformation parameters (normal indoor exposure defaults)
	ShrinkageStrain  = 3.0e-4 // total shrinkage strain eps_cs, Section 3.1.4
	CreepCoefficient = 2.0    // creep coefficient phi(inf, t0), Section 3.1.4
	AgingCoefficient = 0.8    // relaxation/creep interaction factor, Section 5.10.6
)

// Relaxation table parameters for class 2 (low relaxation) strands.
// The 1000-hour coefficient is mapped from the stress ratio
// zeta = sigma_p / fptk in three ranges (Section 3.3.2).
const (
	Relax1000      = 0.025 // rho_1000 at zeta = 0.70
	RelaxLowLimit  = 0.55  // no measurable relaxation below this ratio
	RelaxHighLimit = 0.70
	RelaxHighSlope = 9.0 // ramp multiplier above the high limit
	RelaxLongTerm  = 3.0 // chi_inf / chi_1000, Section 3.3.2(8)
)

// Concrete holds the strength and stiffness values derived from the
// characteristic cylinder strength fck.
type Concrete struct {
	Fck  float64 // Characteristic compressive strength (MPa)
	Fcm  float64 // Mean compressive strength (MPa)
	Fctm float64 // Mean tensile strength (MPa)
	Ecm  float64 // Secant modulus of elasticity (MPa)
}

// NewConcrete derives the 28-day concrete properties from fck.
// EN 1992-1-1 Table 3.1
func NewConcrete(fck float64) Concrete {
	return Concrete{
		Fck:  fck,
		Fcm:  fck + 8,
		Fctm: Fctm(fck),
		Ecm:  22000 * math.Pow((fck+8)/10, 0.3),
	}
}

// Fctm calculates the mean tensile strength from fck.
// EN 1992-1-1 Table 3.1: the formula changes at fck = 50 MPa.
func Fctm(fck float64) float64 {
	if fck <= 50 {
		return 0.30 * math.Pow(fck, 2.0/3.0)
	}
	return 2.12 * math.Log(1+(fck+8)/10)
}

// BetaCC calculates the strength maturity factor at age t (days).
// EN 1992-1-1 Section 3.1.2(6): beta_cc(t) = exp(s(1 - sqrt(28/t)))
func BetaCC(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Exp(CementClassN * (1 - math.Sqrt(28/t)))
}

// At returns the concrete properties corrected to age t (days) through
// the maturity factor. The modulus is kept at its 28-day value; the
// modular ratio at transfer uses EcmAt instead.
func (c Concrete) At(t float64) Concrete {
	beta := BetaCC(t)
	aged := NewConcrete(c.Fck)
	aged.Fck = beta * c.Fck
	aged.Fcm = beta * c.Fcm
	aged.Fctm = beta * c.Fctm
	return aged
}

// EcmAt calculates the modulus of elasticity at age t (days).
// EN 1992-1-1 Section 3.1.3(3): Ecm(t) = (fcm(t)/fcm)^0.3 * Ecm
func (c Concrete) EcmAt(t float64) float64 {
	return math.Pow(BetaCC(t), 0.3) * c.Ecm
}

// StressLimits holds the four fiber stress limits used to bound the
// prestressing force. Tension is positive, compression negative.
type StressLimits struct {
	InitialCompression float64 // at transfer (MPa, negative)
	InitialTension     float64 // at transfer (MPa, positive)
	ServiceCompression float64 // in service (MPa, negative)
	ServiceTension     float64 // in service (MPa, positive)
}

// Limits derives the fiber stress limits for a concrete grade and a
// transfer age (days). The initial compression coefficient is reduced
// for high-strength concrete (fck > 50 MPa).
func Limits(c Concrete, transferAge float64) StressLimits {
	k := KInitialCompression
	if c.Fck > 50 {
		k = KInitialCompressionHS
	}
	aged := c.At(transferAge)
	return StressLimits{
		InitialCompression: -k * aged.Fck,
		InitialTension:     aged.Fctm,
		ServiceCompression: -KServiceCompression * c.Fck,
		ServiceTension:     c.Fctm,
	}
}

// Relax1000Hours maps the tendon stress ratio zeta = sigma_p/fptk to the
// 1000-hour relaxation coefficient. Three ranges: below RelaxLowLimit
// relaxation is negligible, up to RelaxHighLimit it grows linearly to
// Relax1000, above it the ramp steepens.
func Relax1000Hours(zeta float64) float64 {
	switch {
	case zeta <= RelaxLowLimit:
		return 0
	case zeta <= RelaxHighLimit:
		return Relax1000 * (zeta - RelaxLowLimit) / (RelaxHighLimit - RelaxLowLimit)
	default:
		return Relax1000 * (1 + RelaxHighSlope*(zeta-RelaxHighLimit))
	}
}

// RelaxFinal calculates the asymptotic (long-term) relaxation coefficient
// chi_inf from the stress ratio.
func RelaxFinal(zeta float64) float64 {
	return RelaxLongTerm * Relax1000Hours(zeta)
}

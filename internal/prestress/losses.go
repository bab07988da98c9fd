package prestress

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gopsc/internal/cable"
	"github.com/alexiusacademia/gopsc/internal/ec2"
	"github.com/alexiusacademia/gopsc/internal/loads"
	"github.com/alexiusacademia/gopsc/internal/section"
)

// Tendon describes the prestressing tendon group.
type Tendon struct {
	Area   float64 `json:"area"`     // total strand area (mm²)
	Count  int     `json:"count"`    // number of sequentially stressed tendons
	Fptk   float64 `json:"fptk"`     // characteristic tensile strength (MPa)
	Mu     float64 `json:"friction"` // curvature friction coefficient
	Wobble float64 `json:"wobble"`   // wobble coefficient (1/m)
	Slip   float64 `json:"slip"`     // anchorage draw-in (mm)
}

// Validate checks the tendon definition.
func (t Tendon) Validate() error {
	if t.Area <= 0 {
		return fmt.Errorf("tendon area must be positive")
	}
	if t.Count < 1 {
		return fmt.Errorf("tendon count must be at least 1")
	}
	if t.Fptk <= 0 {
		return fmt.Errorf("tendon fptk must be positive")
	}
	return nil
}

// LossInput is the immutable snapshot a loss run is evaluated over.
type LossInput struct {
	Props       *section.Properties
	Path        *cable.Path
	Loads       loads.LoadSet
	Span        float64 // m
	Force       float64 // initial jacking force P0 (kN)
	Tendon      Tendon
	Concrete    ec2.Concrete
	TransferAge float64 // days
	Samples     int     // number of intervals along the span (default 40)
}

// DefaultSamples is the number of span intervals when LossInput.Samples
// is zero.
const DefaultSamples = 40

// LossTable is the tendon stress field per loss stage, all in MPa at the
// shared sample positions. Loss columns hold the stress drop contributed
// by that stage; stress columns hold the remaining tendon stress.
type LossTable struct {
	Positions    []float64 // m
	Eccentricity []float64 // m

	Friction  []float64 // stress after friction loss
	Anchorage []float64 // stress after anchorage slip
	Immediate []float64 // stress after immediate losses
	Final     []float64 // stress after all losses

	ElasticLoss    []float64
	RelaxationLoss []float64
	ShrinkageLoss  []float64
	CreepLoss      []float64
	DeferredLoss   []float64

	// PenetrationLength is the anchorage slip influence length (m).
	PenetrationLength float64

	// Warnings lists non-physical results detected mid-pipeline. They
	// never abort the run.
	Warnings []string
}

// run carries the state threaded through the stage chain.
type run struct {
	in LossInput
	t  *LossTable

	cumAngle []float64 // cumulative |Δangle| up to each sample (rad)
	sigma0   float64   // jacking stress (MPa)
}

// lossStage is one pure step of the pipeline. Each stage only reads the
// columns written by earlier stages.
type lossStage struct {
	name  string
	apply func(*run)
}

// stages is the fixed pipeline order. Reordering these changes the
// physics; each stage consumes the stress field of the one before it.
var stages = []lossStage{
	{"friction", frictionStage},
	{"anchorage slip", anchorageStage},
	{"elastic shortening", elasticStage},
	{"immediate", immediateStage},
	{"relaxation", relaxationStage},
	{"shrinkage and creep", shrinkageCreepStage},
	{"deferred interaction", deferredStage},
	{"final", finalStage},
}

// Losses runs the complete loss pipeline over a fixed sample set and
// returns the tendon stress field per stage. The run is single pass: no
// cross-stage convergence loop.
func Losses(in LossInput) *LossTable {
	n := in.Samples
	if n <= 0 {
		n = DefaultSamples
	}

	t := &LossTable{
		Positions:      make([]float64, n+1),
		Eccentricity:   make([]float64, n+1),
		Friction:       make([]float64, n+1),
		Anchorage:      make([]float64, n+1),
		Immediate:      make([]float64, n+1),
		Final:          make([]float64, n+1),
		ElasticLoss:    make([]float64, n+1),
		RelaxationLoss: make([]float64, n+1),
		ShrinkageLoss:  make([]float64, n+1),
		CreepLoss:      make([]float64, n+1),
		DeferredLoss:   make([]float64, n+1),
	}

	r := &run{
		in:       in,
		t:        t,
		cumAngle: make([]float64, n+1),
		sigma0:   1000 * in.Force / in.Tendon.Area, // kN over mm² -> MPa
	}

	dx := in.Span / float64(n)
	prevAngle := in.Path.TangentAngleAt(0)
	for i := 0; i <= n; i++ {
		x := float64(i) * dx
		t.Positions[i] = x
		t.Eccentricity[i] = in.Path.PositionAt(x)

		angle := in.Path.TangentAngleAt(x)
		if i > 0 {
			r.cumAngle[i] = r.cumAngle[i-1] + math.Abs(angle-prevAngle)
		}
		prevAngle = angle
	}

	for _, s := range stages {
		s.apply(r)
	}
	return t
}

// frictionStage applies the curvature and wobble loss:
//
//	sigma(x) = sigma0 · exp(-(mu·sum|Δangle| + k·x))
func frictionStage(r *run) {
	for i, x := range r.t.Positions {
		r.t.Friction[i] = r.sigma0 * math.Exp(-(r.in.Tendon.Mu*r.cumAngle[i] + r.in.Tendon.Wobble*x))
	}
}

// anchorageStage redistributes the friction curve for the anchorage
// draw-in. The penetration length x_a balances the area between the
// friction curve and its mirror against the slip energy Ep·g; within the
// penetration zone the stress mirrors about sigma(x_a).
//
// When the curve is too flat for the balance to resolve inside the beam,
// the whole tendon seats: the remaining slip is spread as a uniform drop
// and a warning is attached.
func anchorageStage(r *run) {
	t := r.t
	n := len(t.Positions) - 1
	slipEnergy := ec2.Ep * r.in.Tendon.Slip / 1000 // MPa·m

	if slipEnergy <= 0 {
		copy(t.Anchorage, t.Friction)
		return
	}

	// Scan for the first sample where the mirrored area reaches Ep·g.
	resolved := -1
	for i := 1; i <= n; i++ {
		if 2*mirrorArea(t.Positions, t.Friction, i) >= slipEnergy {
			resolved = i
			break
		}
	}

	if resolved >= 0 {
		t.PenetrationLength = t.Positions[resolved]
		sigmaA := t.Friction[resolved]
		for i := range t.Anchorage {
			if t.Positions[i] < t.PenetrationLength {
				t.Anchorage[i] = 2*sigmaA - t.Friction[i]
			} else {
				t.Anchorage[i] = t.Friction[i]
			}
		}
		return
	}

	// Unresolved: penetration clamps to the far end, leftover slip is a
	// uniform drop delta = (Ep·g - 2·area(L)) / L.
	t.PenetrationLength = r.in.Span
	delta := (slipEnergy - 2*mirrorArea(t.Positions, t.Friction, n)) / r.in.Span
	sigmaA := t.Friction[n]
	for i := range t.Anchorage {
		t.Anchorage[i] = 2*sigmaA - t.Friction[i] - delta
	}
	t.Warnings = append(t.Warnings,
		fmt.Sprintf("anchorage slip influence extends beyond the beam (penetration clamped to %.2f m)", r.in.Span))
}

// mirrorArea integrates sigma_friction(x) - sigma_friction(x_i) from the
// stressing end up to sample i (trapezoidal rule).
func mirrorArea(xs, sigma []float64, i int) float64 {
	ref := sigma[i]
	var area float64
	for j := 0; j < i; j++ {
		dx := xs[j+1] - xs[j]
		area += ((sigma[j] - ref) + (sigma[j+1] - ref)) / 2 * dx
	}
	return area
}

// elasticStage computes the elastic shortening loss: the modular-ratio
// scaled concrete stress at tendon level under the current force estimate
// and the self-weight moment, reduced by the sequential-stressing factor
// (n-1)/(2n) for n identical tendons.
func elasticStage(r *run) {
	t := r.t
	nc := float64(r.in.Tendon.Count)
	factor := (nc - 1) / (2 * nc)
	if factor < 0 {
		factor = 0
	}
	ratio := ec2.Ep / r.in.Concrete.EcmAt(r.in.TransferAge)

	for i := range t.ElasticLoss {
		p := t.Anchorage[i] * r.in.Tendon.Area / 1000 // kN
		m := loads.MomentAt(r.in.Loads.SelfWeight, r.in.Span, t.Positions[i])
		sigmaC := r.concreteStress(p, t.Eccentricity[i], m)
		t.ElasticLoss[i] = factor * ratio * sigmaC
	}
}

// immediateStage closes the instantaneous losses.
func immediateStage(r *run) {
	for i := range r.t.Immediate {
		r.t.Immediate[i] = r.t.Anchorage[i] - r.t.ElasticLoss[i]
	}
}

// relaxationStage maps the immediate stress ratio through the three-range
// relaxation table to the asymptotic coefficient.
func relaxationStage(r *run) {
	for i, sigma := range r.t.Immediate {
		zeta := sigma / r.in.Tendon.Fptk
		r.t.RelaxationLoss[i] = ec2.RelaxFinal(zeta) * sigma
	}
}

// shrinkageCreepStage computes the shrinkage loss (constant along the
// tendon) and the creep loss from the sustained concrete stress at tendon
// level, recomputed with the immediate-stage force and the
// quasi-permanent moment.
func shrinkageCreepStage(r *run) {
	t := r.t
	shrinkage := ec2.ShrinkageStrain * ec2.Ep
	ratio := ec2.Ep / r.in.Concrete.Ecm
	wQP := r.in.Loads.QuasiPermanent()

	for i := range t.ShrinkageLoss {
		t.ShrinkageLoss[i] = shrinkage

		p := t.Immediate[i] * r.in.Tendon.Area / 1000 // kN
		m := loads.MomentAt(wQP, r.in.Span, t.Positions[i])
		sigmaC := r.concreteStress(p, t.Eccentricity[i], m)
		t.CreepLoss[i] = ec2.CreepCoefficient * ratio * sigmaC
	}
}

// deferredStage couples relaxation, shrinkage and creep through the
// shared interaction denominator
//
//	1 + (Ep/Ecm)·(Ap/Ac)·(1 + Ac·e²/Ic)·(1 + 0.8·phi)
//
// so the three deferred losses are never summed independently.
func deferredStage(r *run) {
	t := r.t
	props := r.in.Props
	ratio := ec2.Ep / r.in.Concrete.Ecm
	apM2 := r.in.Tendon.Area * 1e-6

	for i := range t.DeferredLoss {
		e := t.Eccentricity[i]
		geom := 1 + props.Area*e*e/props.Ix
		denom := 1 + ratio*(apM2/props.Area)*geom*(1+ec2.AgingCoefficient*ec2.CreepCoefficient)

		numer := t.ShrinkageLoss[i] + t.CreepLoss[i] + ec2.AgingCoefficient*t.RelaxationLoss[i]
		t.DeferredLoss[i] = numer / denom
	}
}

// finalStage closes the pipeline and flags non-physical results.
func finalStage(r *run) {
	t := r.t
	negative := false
	increased := false
	for i := range t.Final {
		t.Final[i] = t.Immediate[i] - t.DeferredLoss[i]
		if t.Final[i] < 0 {
			negative = true
		}
		if t.Final[i] > t.Immediate[i]+1e-9 {
			increased = true
		}
	}
	if negative {
		t.Warnings = append(t.Warnings, "final tendon stress is negative at one or more positions")
	}
	if increased {
		t.Warnings = append(t.Warnings, "final tendon stress exceeds the immediate stress at one or more positions")
	}
}

// concreteStress evaluates the concrete compressive stress (MPa, positive
// in compression) at tendon level for a force p (kN), eccentricity e (m)
// and moment m (kN-m). Decompression at tendon level clamps to zero.
func (r *run) concreteStress(p, e, m float64) float64 {
	props := r.in.Props
	sigma := (p/props.Area + p*e*e/props.Ix - m*e/props.Ix) / 1000
	if sigma < 0 {
		return 0
	}
	return sigma
}

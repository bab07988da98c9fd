package prestress

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gopsc/internal/cable"
	"github.com/alexiusacademia/gopsc/internal/loads"
	"github.com/alexiusacademia/gopsc/internal/section"
)

// referenceBeam is the 20 cm x 80 cm, fck 35, 18 m beam with a straight
// tendon at e = 0.30 m used throughout the engine checks.
func referenceBeam() *Beam {
	return &Beam{
		Name: "reference",
		Section: section.Section{Vertices: []section.Point{
			{X: 0, Y: 0}, {X: 0.2, Y: 0}, {X: 0.2, Y: 0.8}, {X: 0, Y: 0.8},
		}},
		Fck:         35,
		TransferAge: 7,
		Span:        18,
		Loads:       loads.LoadSet{SelfWeight: 5, Permanent: 3, Variable: 8},
		Tendon:      Tendon{Area: 1800, Count: 2, Fptk: 1860, Mu: 0.19, Wobble: 0.002, Slip: 2},
		Cable: []cable.Waypoint{
			{X: 0, Y: 0.30, Type: cable.Straight},
			{X: 18, Y: 0.30},
		},
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	beam := referenceBeam()

	result, err := beam.Analyze(0)
	if err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}

	if math.Abs(result.Moments.SelfWeight-202.5) > 1e-9 {
		t.Errorf("M self-weight = %g, want 202.5", result.Moments.SelfWeight)
	}
	if math.Abs(result.Moments.QuasiPermanent-453.6) > 1e-9 {
		t.Errorf("M quasi-permanent = %g, want 453.6", result.Moments.QuasiPermanent)
	}
	if math.Abs(result.Moments.Frequent-518.4) > 1e-9 {
		t.Errorf("M frequent = %g, want 518.4", result.Moments.Frequent)
	}

	if math.Abs(result.Eccentricity-0.30) > 1e-12 {
		t.Errorf("midspan eccentricity = %g, want 0.30", result.Eccentricity)
	}

	if result.Force.Low >= result.Force.High {
		t.Fatalf("admissible range should be non-empty, got [%g, %g]", result.Force.Low, result.Force.High)
	}
	if result.AppliedForce < result.Force.Low || result.AppliedForce > result.Force.High {
		t.Errorf("applied force %g outside the admissible range [%g, %g]",
			result.AppliedForce, result.Force.Low, result.Force.High)
	}

	table := result.Losses
	wantLen := DefaultSamples + 1
	if len(table.Positions) != wantLen || len(table.Final) != wantLen {
		t.Fatalf("loss table has %d positions, want %d", len(table.Positions), wantLen)
	}
	for i := range table.Final {
		if table.Final[i] > table.Immediate[i]+1e-9 {
			t.Errorf("Final[%d] = %g exceeds Immediate[%d] = %g",
				i, table.Final[i], i, table.Immediate[i])
		}
	}
}

func TestAnalyzeExplicitForce(t *testing.T) {
	beam := referenceBeam()

	result, err := beam.Analyze(1100)
	if err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}
	if result.AppliedForce != 1100 {
		t.Errorf("applied force = %g, want the explicit 1100", result.AppliedForce)
	}
	sigma0 := 1000 * 1100.0 / beam.Tendon.Area
	if math.Abs(result.Losses.Friction[0]-sigma0) > 1e-9 {
		t.Errorf("jacking stress = %g, want %g", result.Losses.Friction[0], sigma0)
	}
}

func TestAnalyzeEmptyRange(t *testing.T) {
	beam := referenceBeam()
	beam.Loads.Variable = 50 // overload until the bounds cross

	result, err := beam.Analyze(0)
	if err == nil {
		t.Fatal("expected RangeError for the overloaded beam")
	}
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("error type = %T, want *RangeError", err)
	}
	if result == nil || result.Force == nil {
		t.Fatal("partial result with the crossed bounds expected")
	}
	if result.Losses != nil {
		t.Error("loss pipeline should not run when the force range is empty")
	}
}

func TestAnalyzeRepeatedRunsAreIdentical(t *testing.T) {
	beam := referenceBeam()

	first, err := beam.Analyze(0)
	if err != nil {
		t.Fatalf("first Analyze() failed: %v", err)
	}
	second, err := beam.Analyze(0)
	if err != nil {
		t.Fatalf("second Analyze() failed: %v", err)
	}

	if first.AppliedForce != second.AppliedForce {
		t.Errorf("applied force changed between runs: %g vs %g", first.AppliedForce, second.AppliedForce)
	}
	for i := range first.Losses.Final {
		if first.Losses.Final[i] != second.Losses.Final[i] {
			t.Fatalf("Final[%d] changed between runs", i)
		}
	}
}

func TestBeamValidate(t *testing.T) {
	beam := referenceBeam()
	if err := beam.Validate(); err != nil {
		t.Fatalf("reference beam should validate, got: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Beam)
	}{
		{"no vertices", func(b *Beam) { b.Section.Vertices = nil }},
		{"zero fck", func(b *Beam) { b.Fck = 0 }},
		{"zero transfer age", func(b *Beam) { b.TransferAge = 0 }},
		{"zero span", func(b *Beam) { b.Span = 0 }},
		{"no cable", func(b *Beam) { b.Cable = nil }},
		{"zero tendon area", func(b *Beam) { b.Tendon.Area = 0 }},
		{"zero tendon count", func(b *Beam) { b.Tendon.Count = 0 }},
		{"zero fptk", func(b *Beam) { b.Tendon.Fptk = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := referenceBeam()
			tc.mutate(b)
			if err := b.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tc.name)
			}
		})
	}
}

package prestress

import (
	"math"
	"strings"
	"testing"

	"github.com/alexiusacademia/gopsc/internal/cable"
	"github.com/alexiusacademia/gopsc/internal/ec2"
	"github.com/alexiusacademia/gopsc/internal/loads"
)

// referenceInput builds the 18 m reference beam with a draped parabolic
// tendon. Tests override fields as needed.
func referenceInput(t *testing.T) LossInput {
	t.Helper()
	path, err := cable.New(18, []cable.Waypoint{
		{X: 0, Y: 0, Type: cable.Parabolic},
		{X: 9, Y: 0.3},
	})
	if err != nil {
		t.Fatalf("cable.New() failed: %v", err)
	}
	return LossInput{
		Props:       rectangleProps(t),
		Path:        path,
		Loads:       loads.LoadSet{SelfWeight: 5, Permanent: 3, Variable: 8},
		Span:        18,
		Force:       1200,
		Tendon:      Tendon{Area: 1800, Count: 2, Fptk: 1860, Mu: 0.19, Wobble: 0.002, Slip: 2},
		Concrete:    ec2.NewConcrete(35),
		TransferAge: 7,
	}
}

func TestFrictionNoLossIdentity(t *testing.T) {
	in := referenceInput(t)
	in.Tendon.Mu = 0
	in.Tendon.Wobble = 0
	in.Tendon.Slip = 0

	table := Losses(in)
	sigma0 := 1000 * in.Force / in.Tendon.Area
	for i, s := range table.Friction {
		if math.Abs(s-sigma0) > 1e-9 {
			t.Fatalf("Friction[%d] = %g, want %g with mu = k = 0", i, s, sigma0)
		}
	}
}

func TestFrictionDecreasesFromJackingEnd(t *testing.T) {
	table := Losses(referenceInput(t))
	for i := 1; i < len(table.Friction); i++ {
		if table.Friction[i] > table.Friction[i-1]+1e-9 {
			t.Fatalf("friction stress increased between samples %d and %d", i-1, i)
		}
	}
	sigma0 := 1000 * 1200.0 / 1800
	if table.Friction[0] != sigma0 {
		t.Errorf("Friction[0] = %g, want jacking stress %g", table.Friction[0], sigma0)
	}
}

func TestAnchorageMirror(t *testing.T) {
	table := Losses(referenceInput(t))

	if table.PenetrationLength <= 0 || table.PenetrationLength >= 18 {
		t.Fatalf("penetration length = %g, want inside the span", table.PenetrationLength)
	}

	// Locate the penetration sample and verify the mirror relation
	// sigma(0) = 2·sigma(x_a) - sigma_friction(0).
	idx := -1
	for i, x := range table.Positions {
		if x == table.PenetrationLength {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.Fatal("penetration length is not one of the sample positions")
	}

	want := 2*table.Friction[idx] - table.Friction[0]
	if math.Abs(table.Anchorage[0]-want) > 1e-9 {
		t.Errorf("Anchorage[0] = %g, want mirrored %g", table.Anchorage[0], want)
	}

	// Beyond the penetration zone the friction curve is untouched.
	for i := idx; i < len(table.Positions); i++ {
		if table.Anchorage[i] != table.Friction[i] {
			t.Fatalf("Anchorage[%d] = %g, want friction value %g past the penetration zone",
				i, table.Anchorage[i], table.Friction[i])
		}
	}
}

func TestAnchorageZeroSlip(t *testing.T) {
	in := referenceInput(t)
	in.Tendon.Slip = 0

	table := Losses(in)
	for i := range table.Anchorage {
		if table.Anchorage[i] != table.Friction[i] {
			t.Fatalf("Anchorage[%d] differs from friction with zero slip", i)
		}
	}
	if table.PenetrationLength != 0 {
		t.Errorf("penetration length = %g, want 0", table.PenetrationLength)
	}
}

func TestAnchorageUnresolvedWarns(t *testing.T) {
	in := referenceInput(t)
	in.Tendon.Slip = 10 // draw-in too large for the friction slope

	table := Losses(in)
	if table.PenetrationLength != in.Span {
		t.Errorf("penetration length = %g, want clamped to the span %g", table.PenetrationLength, in.Span)
	}
	if !hasWarning(table.Warnings, "anchorage slip influence") {
		t.Errorf("expected an anchorage warning, got %v", table.Warnings)
	}
}

func TestSingleTendonHasNoElasticLoss(t *testing.T) {
	in := referenceInput(t)
	in.Tendon.Count = 1

	table := Losses(in)
	for i, loss := range table.ElasticLoss {
		if loss != 0 {
			t.Fatalf("ElasticLoss[%d] = %g, want 0 for a single tendon", i, loss)
		}
		if table.Immediate[i] != table.Anchorage[i] {
			t.Fatalf("Immediate[%d] should equal the anchorage stress for a single tendon", i)
		}
	}
}

func TestFinalNeverExceedsImmediate(t *testing.T) {
	table := Losses(referenceInput(t))
	for i := range table.Final {
		if table.Final[i] > table.Immediate[i]+1e-9 {
			t.Fatalf("Final[%d] = %g exceeds Immediate[%d] = %g",
				i, table.Final[i], i, table.Immediate[i])
		}
	}
	if hasWarning(table.Warnings, "exceeds the immediate") {
		t.Errorf("unexpected monotonicity warning: %v", table.Warnings)
	}
}

func TestDeferredCouplingReducesLosses(t *testing.T) {
	table := Losses(referenceInput(t))
	for i := range table.DeferredLoss {
		sum := table.ShrinkageLoss[i] + table.CreepLoss[i] + ec2.AgingCoefficient*table.RelaxationLoss[i]
		if table.DeferredLoss[i] >= sum {
			t.Fatalf("DeferredLoss[%d] = %g should be below the uncoupled sum %g",
				i, table.DeferredLoss[i], sum)
		}
	}
}

func TestNegativeFinalStressWarns(t *testing.T) {
	in := referenceInput(t)
	in.Force = 90 // jacking stress of 50 MPa is swamped by shrinkage
	in.Loads = loads.LoadSet{}
	in.Tendon.Mu = 0
	in.Tendon.Wobble = 0
	in.Tendon.Slip = 0

	table := Losses(in)
	if !hasWarning(table.Warnings, "negative") {
		t.Errorf("expected a negative-stress warning, got %v", table.Warnings)
	}
}

func hasWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

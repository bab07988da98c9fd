package ec2

// ServiceCombination represents an EN 1990 serviceability load combination
// for a single variable action, expressed as factors on the three
// distributed loads of a prestressed beam.
type ServiceCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	SelfWeight float64 // G0 - self weight
	Permanent  float64 // G - superimposed permanent load
	Variable   float64 // Q - variable load
}

// EN 1990 Section 6.5.3 - combination factors for serviceability
const (
	Psi1 = 0.6 // frequent value of the variable action
	Psi2 = 0.4 // quasi-permanent value of the variable action
)

// ServiceCombinations are the combinations checked on prestressed members.
var ServiceCombinations = []ServiceCombination{
	{
		ID:          "QP",
		Description: "G0 + G + 0.4Q (quasi-permanent)",
		SelfWeight:  1.0,
		Permanent:   1.0,
		Variable:    Psi2,
	},
	{
		ID:          "FR",
		Description: "G0 + G + 0.6Q (frequent)",
		SelfWeight:  1.0,
		Permanent:   1.0,
		Variable:    Psi1,
	},
}

// QuasiPermanent and Frequent are the two combinations by name.
var (
	QuasiPermanent = ServiceCombinations[0]
	Frequent       = ServiceCombinations[1]
)

// Combine applies the combination factors to the three distributed loads
// (kN/m) and returns the combined load (kN/m).
func (c ServiceCombination) Combine(selfWeight, permanent, variable float64) float64 {
	return c.SelfWeight*selfWeight + c.Permanent*permanent + c.Variable*variable
}

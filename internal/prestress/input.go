package prestress

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/alexiusacademia/gopsc/internal/cable"
	"github.com/alexiusacademia/gopsc/internal/ec2"
	"github.com/alexiusacademia/gopsc/internal/loads"
	"github.com/alexiusacademia/gopsc/internal/section"
)

// Beam is the complete input definition of a post-tensioned simply
// supported beam, loaded from a JSON file.
type Beam struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Section section.Section `json:"section"`

	// Materials
	Fck         float64 `json:"fck"`          // concrete grade (MPa)
	TransferAge float64 `json:"transfer_age"` // concrete age at transfer (days)

	Span   float64          `json:"span"` // m
	Loads  loads.LoadSet    `json:"loads"`
	Tendon Tendon           `json:"tendon"`
	Cable  []cable.Waypoint `json:"cable"`

	// Samples is the number of span intervals for the loss table
	// (optional, DefaultSamples when zero).
	Samples int `json:"samples,omitempty"`
}

// LoadFromFile loads a beam definition from a JSON file
func LoadFromFile(filepath string) (*Beam, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var beam Beam
	if err := json.Unmarshal(data, &beam); err != nil {
		return nil, err
	}

	if err := beam.Validate(); err != nil {
		return nil, err
	}

	return &beam, nil
}

// Validate checks the beam definition is complete enough to analyze.
func (b *Beam) Validate() error {
	if err := b.Section.Validate(); err != nil {
		return err
	}
	if b.Fck <= 0 {
		return fmt.Errorf("fck must be positive")
	}
	if b.TransferAge <= 0 {
		return fmt.Errorf("transfer age must be positive")
	}
	if b.Span <= 0 {
		return fmt.Errorf("span must be positive")
	}
	if len(b.Cable) == 0 {
		return fmt.Errorf("at least one cable waypoint is required")
	}
	return b.Tendon.Validate()
}

// Moments summarizes the midspan bending moments per combination (kN-m).
type Moments struct {
	SelfWeight     float64
	QuasiPermanent float64
	Frequent       float64
}

// Result is the full output of one engine run. It is rebuilt from the
// inputs on every call; nothing persists across runs.
type Result struct {
	Properties *section.Properties
	Concrete   ec2.Concrete
	AtTransfer ec2.Concrete
	Limits     ec2.StressLimits
	Moments    Moments

	// Eccentricity of the tendon at midspan (m)
	Eccentricity float64

	Force  *ForceRange
	Losses *LossTable

	// Force actually used for the loss run (kN)
	AppliedForce float64

	Warnings []string
}

// Analyze runs the complete engine: section geometry, materials, moments,
// admissible force range and the loss pipeline. jackingForce (kN)
// overrides the default initial force when positive; the default is the
// upper bound of the admissible range capped by the nominal tendon
// capacity.
//
// An empty admissible range is terminal: the partial result (with the
// crossed bounds) is returned together with the RangeError.
func (b *Beam) Analyze(jackingForce float64) (*Result, error) {
	props, err := b.Section.Properties()
	if err != nil {
		return nil, err
	}

	concrete := ec2.NewConcrete(b.Fck)
	limits := ec2.Limits(concrete, b.TransferAge)

	path, err := cable.New(b.Span, b.Cable)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Properties:   props,
		Concrete:     concrete,
		AtTransfer:   concrete.At(b.TransferAge),
		Limits:       limits,
		Eccentricity: path.PositionAt(b.Span / 2),
		Moments: Moments{
			SelfWeight:     loads.MidspanMoment(b.Loads.SelfWeight, b.Span),
			QuasiPermanent: loads.MidspanMoment(b.Loads.QuasiPermanent(), b.Span),
			Frequent:       loads.MidspanMoment(b.Loads.Frequent(), b.Span),
		},
	}

	res.Force, err = SolveRange(props, res.Eccentricity,
		res.Moments.SelfWeight, res.Moments.QuasiPermanent, res.Moments.Frequent, limits)
	res.Force.EstimatedCapacity = EstimateCapacity(b.Tendon.Area, b.Tendon.Fptk)
	if err != nil {
		return res, err
	}

	res.AppliedForce = jackingForce
	if res.AppliedForce <= 0 {
		res.AppliedForce = math.Min(res.Force.High, res.Force.EstimatedCapacity)
		if math.IsInf(res.AppliedForce, 1) {
			res.AppliedForce = res.Force.EstimatedCapacity
		}
		if res.AppliedForce < res.Force.Low {
			res.AppliedForce = res.Force.Low
			res.Warnings = append(res.Warnings,
				"nominal tendon capacity is below the required minimum force; consider more strands")
		}
	}

	res.Losses = Losses(LossInput{
		Props:       props,
		Path:        path,
		Loads:       b.Loads,
		Span:        b.Span,
		Force:       res.AppliedForce,
		Tendon:      b.Tendon,
		Concrete:    concrete,
		TransferAge: b.TransferAge,
		Samples:     b.Samples,
	})
	res.Warnings = append(res.Warnings, res.Losses.Warnings...)

	return res, nil
}

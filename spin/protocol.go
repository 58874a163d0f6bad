package spin

import (
	"fmt"
	"math"
)

// Retain selects which phase is kept after a centrifugation step.
type Retain string

const (
	RetainPellet      Retain = "pellet"
	RetainSupernatant Retain = "supernatant"
)

// Step is one centrifugation step of a protocol: spin at RCF (referenced at
// the rotor's average radius) for Minutes, then keep the selected phase.
type Step struct {
	RCF     float64 `yaml:"rcf"`
	Minutes float64 `yaml:"minutes"`
	Retain  Retain  `yaml:"retain"`
}

// Validate checks a single protocol step.
func (s Step) Validate() error {
	if math.IsNaN(s.RCF) || math.IsInf(s.RCF, 0) || s.RCF <= 0 {
		return fmt.Errorf("%w: step RCF %.1f must be positive", ErrInvalidConditions, s.RCF)
	}
	if math.IsNaN(s.Minutes) || math.IsInf(s.Minutes, 0) || s.Minutes < 0 {
		return fmt.Errorf("%w: step time %.1f min must be non-negative", ErrInvalidConditions, s.Minutes)
	}
	if s.Retain != RetainPellet && s.Retain != RetainSupernatant {
		return fmt.Errorf("%w: retain must be %q or %q, got %q",
			ErrInvalidConditions, RetainPellet, RetainSupernatant, s.Retain)
	}
	return nil
}

// StepResult is the snapshot recorded after applying one protocol step.
// Pelleted and Remaining are aligned with the diameter set of the enclosing
// ProtocolResult: Pelleted[i] is this step's pelleted fraction for
// Diameters[i], Remaining[i] the population fraction still in play afterward.
type StepResult struct {
	Step      Step
	Pelleted  []float64
	Remaining []float64
}

// ProtocolResult is the full per-step history of a protocol run.
type ProtocolResult struct {
	DiametersNm []float64
	Steps       []StepResult
}

// DefaultDiameters returns the standard probe set for protocol tracking,
// spanning the exosome-to-apoptotic-body range (30–1000 nm) and including
// the manuscript's 70/100/120/150 nm reference sizes.
func DefaultDiameters() []float64 {
	return []float64{30, 50, 70, 100, 120, 150, 200, 300, 500, 1000}
}

// RunProtocol sequentially applies steps to a population that starts with
// remaining fraction 1.0 at every diameter. Retaining the pellet keeps only
// what pelleted this step; retaining the supernatant discards it. Remaining
// fractions can therefore only shrink or stay constant across steps.
//
// diametersNm may be nil, in which case DefaultDiameters is used. The steps
// and the geometry/medium pair are assumed pre-validated.
func RunProtocol(steps []Step, geom Geometry, medium Medium, diametersNm []float64) ProtocolResult {
	if diametersNm == nil {
		diametersNm = DefaultDiameters()
	}

	remaining := make([]float64, len(diametersNm))
	for i := range remaining {
		remaining[i] = 1.0
	}

	result := ProtocolResult{
		DiametersNm: diametersNm,
		Steps:       make([]StepResult, 0, len(steps)),
	}
	for _, step := range steps {
		omega2 := OmegaSquaredFromRCF(step.RCF, geom.AverageRadiusMm)
		tSec := step.Minutes * 60

		pelleted := make([]float64, len(diametersNm))
		for i, d := range diametersNm {
			p := PelletedFraction(d, tSec, omega2, geom, medium)
			pelleted[i] = p
			if step.Retain == RetainPellet {
				remaining[i] *= p
			} else {
				remaining[i] *= 1 - p
			}
		}

		snapshot := StepResult{
			Step:      step,
			Pelleted:  pelleted,
			Remaining: append([]float64(nil), remaining...),
		}
		result.Steps = append(result.Steps, snapshot)
	}
	return result
}

package spin

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMedium reports medium properties under which no net sedimentation
// is possible (vesicles not denser than the medium, non-positive viscosity).
var ErrInvalidMedium = errors.New("invalid medium")

// ErrInvalidConditions reports non-physical run conditions (speed or time).
var ErrInvalidConditions = errors.New("invalid run conditions")

// Medium holds the fluid and particle densities and the medium viscosity.
// Densities are in g/cm³, viscosity in centipoise.
type Medium struct {
	VesicleDensity float64
	MediumDensity  float64
	ViscosityCP    float64
}

// ReferenceMedium holds the manuscript's reference conditions: vesicles at
// 1.15 g/cm³ in a PBS-like buffer of 1.0 g/cm³ at 1.55 cP.
var ReferenceMedium = Medium{VesicleDensity: 1.15, MediumDensity: 1.0, ViscosityCP: 1.55}

// Validate checks the physical preconditions for sedimentation.
func (m Medium) Validate() error {
	for _, v := range []float64{m.VesicleDensity, m.MediumDensity, m.ViscosityCP} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: properties must be finite", ErrInvalidMedium)
		}
	}
	if m.VesicleDensity <= m.MediumDensity {
		return fmt.Errorf("%w: vesicle density %.3f g/cm³ must exceed medium density %.3f g/cm³",
			ErrInvalidMedium, m.VesicleDensity, m.MediumDensity)
	}
	if m.ViscosityCP <= 0 {
		return fmt.Errorf("%w: viscosity %.3f cP must be positive", ErrInvalidMedium, m.ViscosityCP)
	}
	return nil
}

// deltaDensity is the buoyant density difference in g/cm³.
func (m Medium) deltaDensity() float64 {
	return m.VesicleDensity - m.MediumDensity
}

// viscosityPoise converts the viscosity to CGS poise.
func (m Medium) viscosityPoise() float64 {
	return m.ViscosityCP * 1e-2
}

// SpeedUnit is the representation of rotation speed in run conditions.
type SpeedUnit string

const (
	RPM SpeedUnit = "rpm"
	RCF SpeedUnit = "rcf"
)

// Conditions describes one centrifugation run: a speed in either unit and a
// duration. RCF speeds are interpreted at the rotor's average radius.
type Conditions struct {
	SpeedValue float64
	SpeedUnit  SpeedUnit
	Seconds    float64
}

// Validate checks the run conditions independent of any rotor.
func (c Conditions) Validate() error {
	if math.IsNaN(c.SpeedValue) || math.IsInf(c.SpeedValue, 0) || c.SpeedValue <= 0 {
		return fmt.Errorf("%w: speed %.2f %s must be positive", ErrInvalidConditions, c.SpeedValue, c.SpeedUnit)
	}
	if c.SpeedUnit != RPM && c.SpeedUnit != RCF {
		return fmt.Errorf("%w: unknown speed unit %q", ErrInvalidConditions, c.SpeedUnit)
	}
	if math.IsNaN(c.Seconds) || math.IsInf(c.Seconds, 0) || c.Seconds < 0 {
		return fmt.Errorf("%w: run time %.1f s must be non-negative", ErrInvalidConditions, c.Seconds)
	}
	return nil
}

// OmegaSquared resolves the conditions against a rotor geometry into squared
// angular velocity in rad²/s².
func (c Conditions) OmegaSquared(geom Geometry) float64 {
	if c.SpeedUnit == RPM {
		omega := OmegaFromRPM(c.SpeedValue)
		return omega * omega
	}
	return OmegaSquaredFromRCF(c.SpeedValue, geom.AverageRadiusMm)
}

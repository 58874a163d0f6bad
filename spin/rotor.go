package spin

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry reports non-physical rotor parameters (radii, tilt
// angle, tube diameter). Returned wrapped by the geometry constructors.
var ErrInvalidGeometry = errors.New("invalid rotor geometry")

// RotorKind distinguishes the two supported rotor families.
type RotorKind string

const (
	SwingingBucket RotorKind = "swinging-bucket"
	FixedAngle     RotorKind = "fixed-angle"
)

// Geometry is a resolved rotor geometry. It is an immutable value: construct
// it with NewSwingingBucket or NewFixedAngle (or from a preset) and pass it
// into every computation; never mutate the fields after construction.
//
// MinRadiusMm and MaxRadiusMm are the *effective* sedimentation radii used by
// the kinetics formulas. For a swinging-bucket rotor they equal the physical
// tube-end radii. For a fixed-angle rotor the sedimentation path is the tube
// diameter divided by cos(tilt), centred on the average radius, so the
// effective radii differ from the physical ones; the physical radii are kept
// in PhysicalMinRadiusMm/PhysicalMaxRadiusMm because the K-factor is defined
// on actual tube-end radii.
type Geometry struct {
	Kind RotorKind

	MinRadiusMm float64 // effective minimum radius
	MaxRadiusMm float64 // effective maximum radius

	PhysicalMinRadiusMm float64
	PhysicalMaxRadiusMm float64

	AverageRadiusMm     float64
	SedimentationPathMm float64

	// Fixed-angle only; zero for swinging-bucket rotors.
	TiltAngleDeg   float64
	TubeDiameterMm float64
}

// NewSwingingBucket resolves a swinging-bucket geometry from the physical
// minimum and maximum radii in millimetres.
func NewSwingingBucket(minRadiusMm, maxRadiusMm float64) (Geometry, error) {
	if err := validateRadii(minRadiusMm, maxRadiusMm); err != nil {
		return Geometry{}, err
	}
	return Geometry{
		Kind:                SwingingBucket,
		MinRadiusMm:         minRadiusMm,
		MaxRadiusMm:         maxRadiusMm,
		PhysicalMinRadiusMm: minRadiusMm,
		PhysicalMaxRadiusMm: maxRadiusMm,
		AverageRadiusMm:     (minRadiusMm + maxRadiusMm) / 2,
		SedimentationPathMm: maxRadiusMm - minRadiusMm,
	}, nil
}

// NewFixedAngle resolves a fixed-angle geometry from the physical tube-end
// radii, the tilt angle from the rotation axis, and the tube diameter.
//
// The sedimentation path across the tilted tube is tubeDiameter/cos(tilt) —
// cosine, not sine; the sine form is a known defect of earlier
// implementations and understates the path for shallow tilts.
func NewFixedAngle(minRadiusMm, maxRadiusMm, tiltAngleDeg, tubeDiameterMm float64) (Geometry, error) {
	if err := validateRadii(minRadiusMm, maxRadiusMm); err != nil {
		return Geometry{}, err
	}
	if !(tiltAngleDeg > 0 && tiltAngleDeg < 90) {
		return Geometry{}, fmt.Errorf("%w: tilt angle %.2f° outside (0°, 90°)", ErrInvalidGeometry, tiltAngleDeg)
	}
	if !(tubeDiameterMm > 0) || math.IsNaN(tubeDiameterMm) || math.IsInf(tubeDiameterMm, 0) {
		return Geometry{}, fmt.Errorf("%w: tube diameter %.2f mm must be positive", ErrInvalidGeometry, tubeDiameterMm)
	}

	path := tubeDiameterMm / math.Cos(tiltAngleDeg*math.Pi/180)
	average := (minRadiusMm + maxRadiusMm) / 2
	if average-path/2 <= 0 {
		return Geometry{}, fmt.Errorf("%w: sedimentation path %.1f mm reaches the rotation axis (effective minimum radius %.1f mm)",
			ErrInvalidGeometry, path, average-path/2)
	}
	return Geometry{
		Kind:                FixedAngle,
		MinRadiusMm:         average - path/2,
		MaxRadiusMm:         average + path/2,
		PhysicalMinRadiusMm: minRadiusMm,
		PhysicalMaxRadiusMm: maxRadiusMm,
		AverageRadiusMm:     average,
		SedimentationPathMm: path,
		TiltAngleDeg:        tiltAngleDeg,
		TubeDiameterMm:      tubeDiameterMm,
	}, nil
}

func validateRadii(minRadiusMm, maxRadiusMm float64) error {
	if math.IsNaN(minRadiusMm) || math.IsNaN(maxRadiusMm) ||
		math.IsInf(minRadiusMm, 0) || math.IsInf(maxRadiusMm, 0) {
		return fmt.Errorf("%w: radii must be finite", ErrInvalidGeometry)
	}
	if minRadiusMm <= 0 {
		return fmt.Errorf("%w: minimum radius %.2f mm must be positive", ErrInvalidGeometry, minRadiusMm)
	}
	if maxRadiusMm <= minRadiusMm {
		return fmt.Errorf("%w: maximum radius %.2f mm must exceed minimum radius %.2f mm",
			ErrInvalidGeometry, maxRadiusMm, minRadiusMm)
	}
	return nil
}

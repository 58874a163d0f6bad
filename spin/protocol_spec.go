package spin

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProtocolSpec is the on-disk YAML description of a multi-step protocol.
// Either Rotor (a preset name) or Geometry (explicit parameters) selects the
// rotor; Medium and DiametersNm default to ReferenceMedium and DefaultDiameters.
//
// Example:
//
//	rotor: SW 40Ti
//	medium:
//	  vesicle_density: 1.15
//	  medium_density: 1.0
//	  viscosity_cp: 1.55
//	steps:
//	  - {rcf: 300, minutes: 10, retain: supernatant}
//	  - {rcf: 2000, minutes: 10, retain: supernatant}
//	  - {rcf: 10000, minutes: 30, retain: pellet}
type ProtocolSpec struct {
	Rotor       string        `yaml:"rotor,omitempty"`
	Geometry    *GeometrySpec `yaml:"geometry,omitempty"`
	Medium      *MediumSpec   `yaml:"medium,omitempty"`
	DiametersNm []float64     `yaml:"diameters_nm,omitempty"`
	Steps       []Step        `yaml:"steps"`
}

// GeometrySpec is the inline rotor description of a ProtocolSpec.
type GeometrySpec struct {
	Kind           RotorKind `yaml:"kind"`
	MinRadiusMm    float64   `yaml:"min_radius_mm"`
	MaxRadiusMm    float64   `yaml:"max_radius_mm"`
	TiltAngleDeg   float64   `yaml:"tilt_angle_deg,omitempty"`
	TubeDiameterMm float64   `yaml:"tube_diameter_mm,omitempty"`
}

// MediumSpec mirrors Medium with YAML tags.
type MediumSpec struct {
	VesicleDensity float64 `yaml:"vesicle_density"`
	MediumDensity  float64 `yaml:"medium_density"`
	ViscosityCP    float64 `yaml:"viscosity_cp"`
}

// LoadProtocolSpec reads and validates a protocol spec from a YAML file.
func LoadProtocolSpec(path string) (*ProtocolSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading protocol spec: %w", err)
	}
	var spec ProtocolSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing protocol spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the spec for a resolvable rotor, a valid medium, and at
// least one valid step.
func (s *ProtocolSpec) Validate() error {
	if _, err := s.ResolveGeometry(); err != nil {
		return err
	}
	if err := s.ResolveMedium().Validate(); err != nil {
		return err
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: protocol has no steps", ErrInvalidConditions)
	}
	for i, step := range s.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	for _, d := range s.DiametersNm {
		if d <= 0 {
			return fmt.Errorf("%w: diameter %.1f nm must be positive", ErrInvalidConditions, d)
		}
	}
	return nil
}

// ResolveGeometry builds the rotor geometry named or described by the spec.
func (s *ProtocolSpec) ResolveGeometry() (Geometry, error) {
	switch {
	case s.Rotor != "" && s.Geometry != nil:
		return Geometry{}, fmt.Errorf("%w: specify either a rotor preset or an explicit geometry, not both", ErrInvalidGeometry)
	case s.Rotor != "":
		return GeometryForPreset(s.Rotor)
	case s.Geometry != nil:
		g := s.Geometry
		switch g.Kind {
		case FixedAngle:
			return NewFixedAngle(g.MinRadiusMm, g.MaxRadiusMm, g.TiltAngleDeg, g.TubeDiameterMm)
		case SwingingBucket, "":
			return NewSwingingBucket(g.MinRadiusMm, g.MaxRadiusMm)
		default:
			return Geometry{}, fmt.Errorf("%w: unknown rotor kind %q", ErrInvalidGeometry, g.Kind)
		}
	default:
		return Geometry{}, fmt.Errorf("%w: protocol spec names no rotor", ErrInvalidGeometry)
	}
}

// ResolveMedium returns the spec's medium, defaulting to ReferenceMedium.
func (s *ProtocolSpec) ResolveMedium() Medium {
	if s.Medium == nil {
		return ReferenceMedium
	}
	return Medium{
		VesicleDensity: s.Medium.VesicleDensity,
		MediumDensity:  s.Medium.MediumDensity,
		ViscosityCP:    s.Medium.ViscosityCP,
	}
}

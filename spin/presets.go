package spin

import "fmt"

// RotorPreset is a catalog entry carrying the raw physical parameters of a
// commercial rotor, from manuscript Table 1. TiltAngleDeg and TubeDiameterMm
// are zero for swinging-bucket rotors.
type RotorPreset struct {
	Name           string
	Kind           RotorKind
	MinRadiusMm    float64
	MaxRadiusMm    float64
	TiltAngleDeg   float64
	TubeDiameterMm float64
}

// rotorPresets reproduces Table 1 verbatim. The numeric values are literal
// domain constants: the manuscript-table regression oracle depends on them,
// so they must not be re-derived or "corrected".
var rotorPresets = []RotorPreset{
	{Name: "SW 40Ti", Kind: SwingingBucket, MinRadiusMm: 66.7, MaxRadiusMm: 158.8},
	{Name: "SW28", Kind: SwingingBucket, MinRadiusMm: 75.3, MaxRadiusMm: 161.0},
	{Name: "MLS-50", Kind: SwingingBucket, MinRadiusMm: 47.5, MaxRadiusMm: 95.8},
	{Name: "Type 45 Ti", Kind: FixedAngle, MinRadiusMm: 35.9, MaxRadiusMm: 103.8, TiltAngleDeg: 24, TubeDiameterMm: 38},
	{Name: "Type 60 Ti", Kind: FixedAngle, MinRadiusMm: 36.9, MaxRadiusMm: 89.9, TiltAngleDeg: 23.5, TubeDiameterMm: 25},
	{Name: "Type 70 Ti", Kind: FixedAngle, MinRadiusMm: 39.5, MaxRadiusMm: 91.9, TiltAngleDeg: 23, TubeDiameterMm: 25},
	{Name: "F-45-24-15", Kind: FixedAngle, MinRadiusMm: 54.0, MaxRadiusMm: 82.0, TiltAngleDeg: 45, TubeDiameterMm: 11},
	{Name: "TLA 110", Kind: FixedAngle, MinRadiusMm: 26.0, MaxRadiusMm: 48.5, TiltAngleDeg: 28, TubeDiameterMm: 13},
}

// Presets returns the rotor catalog in manuscript order. The returned slice
// is a copy; the catalog itself is read-only.
func Presets() []RotorPreset {
	out := make([]RotorPreset, len(rotorPresets))
	copy(out, rotorPresets)
	return out
}

// PresetByName looks up a catalog entry by its exact name.
func PresetByName(name string) (RotorPreset, bool) {
	for _, p := range rotorPresets {
		if p.Name == name {
			return p, true
		}
	}
	return RotorPreset{}, false
}

// Geometry resolves the preset into a full rotor geometry.
func (p RotorPreset) Geometry() (Geometry, error) {
	switch p.Kind {
	case SwingingBucket:
		return NewSwingingBucket(p.MinRadiusMm, p.MaxRadiusMm)
	case FixedAngle:
		return NewFixedAngle(p.MinRadiusMm, p.MaxRadiusMm, p.TiltAngleDeg, p.TubeDiameterMm)
	default:
		return Geometry{}, fmt.Errorf("%w: unknown rotor kind %q", ErrInvalidGeometry, p.Kind)
	}
}

// GeometryForPreset resolves the catalog entry named name, failing when the
// name is not in the catalog.
func GeometryForPreset(name string) (Geometry, error) {
	p, ok := PresetByName(name)
	if !ok {
		return Geometry{}, fmt.Errorf("%w: no rotor preset named %q", ErrInvalidGeometry, name)
	}
	return p.Geometry()
}

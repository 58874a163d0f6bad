package spin

import "math"

// KFactor returns the rotor clearing efficiency at squared angular velocity
// omegaSquared:
//
//	K = ln(Rmax/Rmin) · 1e13 / (3600·ω²)
//
// K is defined on the *physical* tube-end radii. For fixed-angle rotors these
// differ from the effective sedimentation radii used by the kinetics
// formulas; using the effective radii here is a plausible-looking mistake
// that shifts every fixed-angle K. Lower K means faster clearing.
func KFactor(geom Geometry, omegaSquared float64) float64 {
	return math.Log(geom.PhysicalMaxRadiusMm/geom.PhysicalMinRadiusMm) * 1e13 / (3600 * omegaSquared)
}

// KFactorAtRCF evaluates KFactor at the ω² implied by rcf referenced at the
// rotor's own average radius.
func KFactorAtRCF(geom Geometry, rcf float64) float64 {
	return KFactor(geom, OmegaSquaredFromRCF(rcf, geom.AverageRadiusMm))
}

// EquivalentRunTime converts a run time in the source rotor into the time
// that gives the same clearing in the target rotor, both rotors spinning at
// the same RCF (each referenced at its own average radius):
//
//	t_target = t_source · K_target / K_source
func EquivalentRunTime(sourceSec float64, source, target Geometry, rcf float64) float64 {
	return sourceSec * KFactorAtRCF(target, rcf) / KFactorAtRCF(source, rcf)
}

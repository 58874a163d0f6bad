package spin

import "math"

// gravityCmPerS2 is the standard acceleration of free fall in CGS units,
// rounded as in the manuscript.
const gravityCmPerS2 = 980.0

const mmPerCm = 10.0

// OmegaFromRPM converts rotation speed in revolutions per minute to angular
// velocity in rad/s.
func OmegaFromRPM(rpm float64) float64 {
	return rpm * math.Pi / 30
}

// RPMFromOmega converts angular velocity in rad/s to revolutions per minute.
func RPMFromOmega(omega float64) float64 {
	return omega * 30 / math.Pi
}

// OmegaSquaredFromRCF converts a relative centrifugal force (multiples of g)
// referenced at radiusMm into squared angular velocity in rad²/s².
//
// Convention: RCF is always referenced at the rotor's *average* radius
// (MinRadiusMm+MaxRadiusMm)/2, never at the maximum radius. Callers passing a
// Geometry should hand in Geometry.AverageRadiusMm; every downstream
// angular-velocity value depends on this choice.
func OmegaSquaredFromRCF(rcf, radiusMm float64) float64 {
	return rcf * gravityCmPerS2 / (radiusMm / mmPerCm)
}

// RCFFromOmegaSquared is the inverse of OmegaSquaredFromRCF at the same
// reference radius.
func RCFFromOmegaSquared(omegaSquared, radiusMm float64) float64 {
	return omegaSquared * (radiusMm / mmPerCm) / gravityCmPerS2
}

package spin

import "math"

const (
	cmPerNm            = 1e-7
	secondsPerSvedberg = 1e-13
)

// SedimentationCoefficient returns the Stokes sedimentation coefficient of a
// spherical particle of diameter diameterNm in the given medium, in seconds:
//
//	s = d² · Δρ / (18 · η)
//
// with d in cm, densities in g/cm³, and η in poise.
func SedimentationCoefficient(diameterNm float64, medium Medium) float64 {
	dCm := diameterNm * cmPerNm
	return dCm * dCm * medium.deltaDensity() / (18 * medium.viscosityPoise())
}

// Svedberg converts a sedimentation coefficient in seconds to Svedberg units.
func Svedberg(coefficientSec float64) float64 {
	return coefficientSec / secondsPerSvedberg
}

// CutoffDiameter returns the minimum particle diameter (nm) that fully
// sediments within timeSec at omegaSquared, the d* of the manuscript:
//
//	d* = sqrt(18·η·ln(Rmax/Rmin) / (Δρ·ω²·t))
//
// The formula is geometry-agnostic: the swinging-bucket vs fixed-angle
// distinction is already absorbed into the effective radii of geom.
//
// timeSec must be positive: at timeSec == 0 no diameter sediments fully and
// the result is +Inf. Callers wanting an error instead must reject zero
// times before calling.
func CutoffDiameter(timeSec, omegaSquared float64, geom Geometry, medium Medium) float64 {
	lnRatio := math.Log(geom.MaxRadiusMm / geom.MinRadiusMm)
	dCm := math.Sqrt(18 * medium.viscosityPoise() * lnRatio / (medium.deltaDensity() * omegaSquared * timeSec))
	return dCm / cmPerNm
}

// CompleteSedimentationTime returns the time in seconds for a particle of
// diameter diameterNm to traverse the full sedimentation path:
//
//	t* = ln(Rmax/Rmin) / (s·ω²)
func CompleteSedimentationTime(diameterNm, omegaSquared float64, geom Geometry, medium Medium) float64 {
	s := SedimentationCoefficient(diameterNm, medium)
	return math.Log(geom.MaxRadiusMm/geom.MinRadiusMm) / (s * omegaSquared)
}

// PelletedFraction returns the fraction of particles of diameter diameterNm
// that reach the pellet within timeSec at omegaSquared, in [0, 1].
//
// Swinging-bucket rotors assume a uniform particle distribution along a
// straight radial tube: particles that started outside the boundary radius
// Rmax·exp(−s·ω²·t) have pelleted.
//
// Fixed-angle rotors use the elliptical horizontal cross-section of the
// tilted tube, via the displacement fraction ξ = s·ω²·Rav·t / Lsed:
//
//	P = (2/π)·(arcsin ξ + ξ·sqrt(1 − ξ²))
//
// The arcsin form is the supplement-derived one for a tilted cylinder; the
// manuscript body's circular arccos approximation diverges from it for
// mid-range ξ and is deliberately not used.
func PelletedFraction(diameterNm, timeSec, omegaSquared float64, geom Geometry, medium Medium) float64 {
	s := SedimentationCoefficient(diameterNm, medium)
	switch geom.Kind {
	case FixedAngle:
		xi := s * omegaSquared * (geom.AverageRadiusMm / mmPerCm) * timeSec / (geom.SedimentationPathMm / mmPerCm)
		if xi >= 1 {
			return 1
		}
		if xi <= 0 {
			return 0
		}
		return (2 / math.Pi) * (math.Asin(xi) + xi*math.Sqrt(1-xi*xi))
	default:
		rMin := geom.MinRadiusMm / mmPerCm
		rMax := geom.MaxRadiusMm / mmPerCm
		boundary := rMax * math.Exp(-s*omegaSquared*timeSec)
		if boundary <= rMin {
			return 1
		}
		// Clamp absorbs floating-point overshoot at the formula boundaries.
		return clamp01((rMax - boundary) / (rMax - rMin))
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

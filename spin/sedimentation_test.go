package spin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func referenceSW(t *testing.T) Geometry {
	t.Helper()
	geom, err := GeometryForPreset("SW 40Ti")
	require.NoError(t, err)
	return geom
}

func referenceFA(t *testing.T) Geometry {
	t.Helper()
	geom, err := GeometryForPreset("TLA 110")
	require.NoError(t, err)
	return geom
}

func TestSedimentationCoefficient_KnownValue(t *testing.T) {
	// GIVEN a 100 nm vesicle in the reference medium
	// THEN s = (1e-5 cm)² · 0.15 / (18 · 0.0155 poise)
	got := SedimentationCoefficient(100, ReferenceMedium)
	want := 1e-10 * 0.15 / (18 * 0.0155)
	if math.Abs(got-want)/want > 1e-12 {
		t.Errorf("SedimentationCoefficient(100nm) = %v, want %v", got, want)
	}

	// AND the Svedberg conversion divides by 1e-13
	if sv := Svedberg(got); math.Abs(sv-got/1e-13) > 1e-9 {
		t.Errorf("Svedberg(%v) = %v", got, sv)
	}
}

func TestSedimentationCoefficient_QuadraticInDiameter(t *testing.T) {
	s70 := SedimentationCoefficient(70, ReferenceMedium)
	s140 := SedimentationCoefficient(140, ReferenceMedium)
	if ratio := s140 / s70; math.Abs(ratio-4) > 1e-9 {
		t.Errorf("s(140)/s(70) = %v, want 4 (quadratic in diameter)", ratio)
	}
}

func TestCutoffDiameter_SW40Ti_Table2(t *testing.T) {
	// Manuscript Table 2: SW 40Ti, 30 min at 10,000×g -> d* ≈ 321 nm
	geom := referenceSW(t)
	omega2 := OmegaSquaredFromRCF(10000, geom.AverageRadiusMm)
	dStar := CutoffDiameter(30*60, omega2, geom, ReferenceMedium)
	if math.Abs(dStar-321) > 5 {
		t.Errorf("cut-off diameter = %.1f nm, want 321 ± 5 nm", dStar)
	}
}

func TestCutoffDiameter_TLA110_Table2(t *testing.T) {
	// Manuscript Table 2: TLA 110, 30 min at 10,000×g -> d* ≈ 125 nm
	geom := referenceFA(t)
	omega2 := OmegaSquaredFromRCF(10000, geom.AverageRadiusMm)
	dStar := CutoffDiameter(30*60, omega2, geom, ReferenceMedium)
	if math.Abs(dStar-125) > 5 {
		t.Errorf("cut-off diameter = %.1f nm, want 125 ± 5 nm", dStar)
	}
}

func TestPelletedFraction_SW40Ti_150nm(t *testing.T) {
	geom := referenceSW(t)
	omega2 := OmegaSquaredFromRCF(10000, geom.AverageRadiusMm)
	p := PelletedFraction(150, 30*60, omega2, geom, ReferenceMedium)
	if math.Abs(100*p-30) > 5 {
		t.Errorf("pelleted fraction at 150 nm = %.1f%%, want 30 ± 5 points", 100*p)
	}
}

func TestPelletedFraction_TLA110_70nm(t *testing.T) {
	geom := referenceFA(t)
	omega2 := OmegaSquaredFromRCF(10000, geom.AverageRadiusMm)
	p := PelletedFraction(70, 30*60, omega2, geom, ReferenceMedium)
	if math.Abs(100*p-40) > 5 {
		t.Errorf("pelleted fraction at 70 nm = %.1f%%, want 40 ± 5 points", 100*p)
	}
}

func TestPelletedFraction_WithinUnitInterval(t *testing.T) {
	for _, geom := range []Geometry{referenceSW(t), referenceFA(t)} {
		omega2 := OmegaSquaredFromRCF(10000, geom.AverageRadiusMm)
		for _, d := range []float64{10, 30, 70, 150, 321, 500, 1000, 5000} {
			for _, tSec := range []float64{0, 1, 60, 1800, 36000, 360000} {
				p := PelletedFraction(d, tSec, omega2, geom, ReferenceMedium)
				if p < 0 || p > 1 {
					t.Fatalf("P(%gnm, %gs, %s) = %v outside [0,1]", d, tSec, geom.Kind, p)
				}
			}
		}
	}
}

func TestPelletedFraction_MonotonicInTime(t *testing.T) {
	for _, geom := range []Geometry{referenceSW(t), referenceFA(t)} {
		omega2 := OmegaSquaredFromRCF(10000, geom.AverageRadiusMm)
		prev := -1.0
		for tSec := 0.0; tSec <= 7200; tSec += 60 {
			p := PelletedFraction(120, tSec, omega2, geom, ReferenceMedium)
			if p < prev {
				t.Fatalf("%s: P decreased from %v to %v at t=%gs", geom.Kind, prev, p, tSec)
			}
			prev = p
		}
	}
}

func TestPelletedFraction_MonotonicInDiameter(t *testing.T) {
	for _, geom := range []Geometry{referenceSW(t), referenceFA(t)} {
		omega2 := OmegaSquaredFromRCF(10000, geom.AverageRadiusMm)
		prev := -1.0
		for d := 10.0; d <= 1000; d += 10 {
			p := PelletedFraction(d, 1800, omega2, geom, ReferenceMedium)
			if p < prev {
				t.Fatalf("%s: P decreased from %v to %v at d=%gnm", geom.Kind, prev, p, d)
			}
			prev = p
		}
	}
}

func TestCutoffDiameter_ConsistentWithPelletedFraction(t *testing.T) {
	// The cut-off diameter is exactly the size that finishes sedimenting in t,
	// so P(d*, t) must be 1 within numerical tolerance. This holds for the
	// fixed-angle elliptical model too: at d* the displacement fraction is
	// ξ = Rav·ln(Rmax/Rmin)/Lsed, which is ≥ 1 for any valid geometry
	// because ln(x) ≥ 2(x−1)/(x+1).
	for _, geom := range []Geometry{referenceSW(t), referenceFA(t)} {
		omega2 := OmegaSquaredFromRCF(10000, geom.AverageRadiusMm)
		for _, tSec := range []float64{600, 1800, 7200} {
			dStar := CutoffDiameter(tSec, omega2, geom, ReferenceMedium)
			p := PelletedFraction(dStar, tSec, omega2, geom, ReferenceMedium)
			if math.Abs(p-1) > 1e-6 {
				t.Errorf("%s: P(d*=%.1fnm, t=%gs) = %v, want ≈ 1", geom.Kind, dStar, tSec, p)
			}
		}
	}
}

func TestCompleteSedimentationTime_InverseOfCutoff(t *testing.T) {
	// GIVEN the time t* a 200 nm particle needs to clear the SW 40Ti
	geom := referenceSW(t)
	omega2 := OmegaSquaredFromRCF(10000, geom.AverageRadiusMm)
	tStar := CompleteSedimentationTime(200, omega2, geom, ReferenceMedium)

	// THEN the cut-off diameter at t* is 200 nm again
	dStar := CutoffDiameter(tStar, omega2, geom, ReferenceMedium)
	if math.Abs(dStar-200) > 1e-6 {
		t.Errorf("CutoffDiameter(t*=%gs) = %v nm, want 200", tStar, dStar)
	}

	// AND the particle is fully pelleted at t*
	if p := PelletedFraction(200, tStar, omega2, geom, ReferenceMedium); math.Abs(p-1) > 1e-9 {
		t.Errorf("P(200nm, t*) = %v, want 1", p)
	}
}

func TestCutoffDiameter_ZeroTimeIsInfinite(t *testing.T) {
	// No diameter sediments fully in zero time; the documented result is +Inf.
	geom := referenceSW(t)
	omega2 := OmegaSquaredFromRCF(10000, geom.AverageRadiusMm)
	if d := CutoffDiameter(0, omega2, geom, ReferenceMedium); !math.IsInf(d, 1) {
		t.Errorf("CutoffDiameter(t=0) = %v, want +Inf", d)
	}
}

func TestPelletedFraction_ZeroTime(t *testing.T) {
	for _, geom := range []Geometry{referenceSW(t), referenceFA(t)} {
		omega2 := OmegaSquaredFromRCF(10000, geom.AverageRadiusMm)
		if p := PelletedFraction(150, 0, omega2, geom, ReferenceMedium); p != 0 {
			t.Errorf("%s: P at t=0 = %v, want 0", geom.Kind, p)
		}
	}
}

package spin

import (
	"math"
	"testing"
)

func TestOmegaFromRPM(t *testing.T) {
	// 30 rpm is exactly π rad/s
	if got := OmegaFromRPM(30); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("OmegaFromRPM(30) = %v, want π", got)
	}
	// Round trip back to rpm
	if got := RPMFromOmega(OmegaFromRPM(12345)); math.Abs(got-12345) > 1e-9 {
		t.Errorf("RPMFromOmega(OmegaFromRPM(12345)) = %v, want 12345", got)
	}
}

func TestOmegaSquaredFromRCF_KnownValue(t *testing.T) {
	// GIVEN 10,000×g referenced at the SW 40Ti average radius (112.75 mm)
	got := OmegaSquaredFromRCF(10000, 112.75)

	// THEN ω² = rcf·g/r_cm = 10000·980/11.275
	want := 10000 * 980.0 / 11.275
	if math.Abs(got-want)/want > 1e-12 {
		t.Errorf("OmegaSquaredFromRCF = %v, want %v", got, want)
	}
}

func TestRCFOmegaSquared_RoundTrip(t *testing.T) {
	radii := []float64{37.25, 71.65, 112.75}
	rcfs := []float64{300, 2000, 10000, 120000}
	for _, r := range radii {
		for _, rcf := range rcfs {
			back := RCFFromOmegaSquared(OmegaSquaredFromRCF(rcf, r), r)
			if math.Abs(back-rcf)/rcf > 1e-12 {
				t.Errorf("round trip at r=%.2f mm: %v -> %v", r, rcf, back)
			}
		}
	}
}

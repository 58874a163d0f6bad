package spin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeStepCleanup is the classic differential-centrifugation sequence:
// two clearing spins keeping the supernatant, then a pelleting spin.
func threeStepCleanup() []Step {
	return []Step{
		{RCF: 300, Minutes: 10, Retain: RetainSupernatant},
		{RCF: 2000, Minutes: 10, Retain: RetainSupernatant},
		{RCF: 10000, Minutes: 30, Retain: RetainPellet},
	}
}

func TestRunProtocol_SnapshotPerStep(t *testing.T) {
	geom, err := GeometryForPreset("SW 40Ti")
	require.NoError(t, err)

	result := RunProtocol(threeStepCleanup(), geom, ReferenceMedium, nil)

	require.Len(t, result.Steps, 3)
	assert.Equal(t, DefaultDiameters(), result.DiametersNm)
	for _, step := range result.Steps {
		require.Len(t, step.Pelleted, len(result.DiametersNm))
		require.Len(t, step.Remaining, len(result.DiametersNm))
	}
}

func TestRunProtocol_RemainingNonIncreasing(t *testing.T) {
	// Fractions only shrink or stay constant: no step can return population
	// to a diameter, whichever phase it retains.
	geom, err := GeometryForPreset("TLA 110")
	require.NoError(t, err)

	steps := []Step{
		{RCF: 500, Minutes: 5, Retain: RetainPellet},
		{RCF: 1500, Minutes: 15, Retain: RetainSupernatant},
		{RCF: 12000, Minutes: 45, Retain: RetainPellet},
		{RCF: 100000, Minutes: 90, Retain: RetainSupernatant},
	}
	result := RunProtocol(steps, geom, ReferenceMedium, nil)

	for i, d := range result.DiametersNm {
		prev := 1.0
		for stepIdx, step := range result.Steps {
			rem := step.Remaining[i]
			if rem > prev {
				t.Fatalf("d=%gnm: remaining rose from %v to %v at step %d", d, prev, rem, stepIdx+1)
			}
			if rem < 0 || rem > 1 {
				t.Fatalf("d=%gnm: remaining %v outside [0,1] at step %d", d, rem, stepIdx+1)
			}
			prev = rem
		}
	}
}

func TestRunProtocol_ThreeStepStrictlyDecreasingAt30nm(t *testing.T) {
	// GIVEN the three-step cleanup protocol in a swinging-bucket rotor
	geom, err := GeometryForPreset("SW 40Ti")
	require.NoError(t, err)

	// WHEN tracking a 30 nm particle population
	result := RunProtocol(threeStepCleanup(), geom, ReferenceMedium, []float64{30})

	// THEN every step strictly reduces the remaining fraction: the clearing
	// spins each pellet a little of the population, and the final pellet
	// retention keeps only the small pelleted share.
	require.Len(t, result.Steps, 3)
	prev := 1.0
	for stepIdx, step := range result.Steps {
		rem := step.Remaining[0]
		if rem >= prev {
			t.Fatalf("remaining fraction not strictly decreasing: %v -> %v at step %d", prev, rem, stepIdx+1)
		}
		prev = rem
	}
}

func TestRunProtocol_RetainSemantics(t *testing.T) {
	geom, err := GeometryForPreset("SW 40Ti")
	require.NoError(t, err)

	diameters := []float64{150}
	omega2 := OmegaSquaredFromRCF(10000, geom.AverageRadiusMm)
	p := PelletedFraction(150, 30*60, omega2, geom, ReferenceMedium)

	pellet := RunProtocol([]Step{{RCF: 10000, Minutes: 30, Retain: RetainPellet}}, geom, ReferenceMedium, diameters)
	assert.InDelta(t, p, pellet.Steps[0].Remaining[0], 1e-12, "retaining the pellet keeps what pelleted")

	supernatant := RunProtocol([]Step{{RCF: 10000, Minutes: 30, Retain: RetainSupernatant}}, geom, ReferenceMedium, diameters)
	assert.InDelta(t, 1-p, supernatant.Steps[0].Remaining[0], 1e-12, "retaining the supernatant discards what pelleted")
}

func TestRunProtocol_SnapshotsAreIndependent(t *testing.T) {
	// Each snapshot owns its remaining slice; later steps must not rewrite
	// earlier history.
	geom, err := GeometryForPreset("MLS-50")
	require.NoError(t, err)

	result := RunProtocol(threeStepCleanup(), geom, ReferenceMedium, []float64{100})
	first := result.Steps[0].Remaining[0]
	last := result.Steps[2].Remaining[0]
	assert.Less(t, last, first)
}

func TestStepValidate(t *testing.T) {
	require.NoError(t, Step{RCF: 300, Minutes: 10, Retain: RetainSupernatant}.Validate())

	cases := []struct {
		name string
		step Step
	}{
		{"zero rcf", Step{RCF: 0, Minutes: 10, Retain: RetainPellet}},
		{"negative minutes", Step{RCF: 300, Minutes: -1, Retain: RetainPellet}},
		{"bad retain", Step{RCF: 300, Minutes: 10, Retain: "both"}},
		{"empty retain", Step{RCF: 300, Minutes: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.step.Validate())
		})
	}
}

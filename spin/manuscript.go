package spin

// Reference conditions shared by manuscript Tables 2 and 3: 10,000×g at the
// average radius, vesicles of 1.15 g/cm³ in a 1.55 cP medium.
const (
	ReferenceRCF     = 10000.0
	Table2Minutes    = 30.0
	Table3RefMinutes = 30.0
	Table3RefRotor   = "MLS-50"
)

// ProbeDiametersNm are the particle sizes tabulated in the manuscript.
var ProbeDiametersNm = []float64{150, 120, 100, 70}

// Table2Row holds the cut-off diameter and pelleting percentages (aligned
// with ProbeDiametersNm) for one rotor under the Table 2 conditions.
type Table2Row struct {
	Rotor       string
	CutoffNm    float64
	PelletedPct []float64
}

// Table3Row holds the K-factor results for one rotor: the equivalent run
// time relative to the reference rotor and the cut-off/pelleting values at
// that K-scaled time.
type Table3Row struct {
	Rotor         string
	K             float64
	EquivalentMin float64
	CutoffNm      float64
	PelletedPct   []float64
}

// Table2Reference reproduces the manuscript's Table 2 values (30 min at
// 10,000×g). Literal oracle data, not derived.
var Table2Reference = []Table2Row{
	{Rotor: "SW 40Ti", CutoffNm: 321, PelletedPct: []float64{30, 20, 14, 7}},
	{Rotor: "SW28", CutoffNm: 308, PelletedPct: []float64{31, 21, 15, 7}},
	{Rotor: "MLS-50", CutoffNm: 230, PelletedPct: []float64{51, 34, 25, 12}},
	{Rotor: "Type 45 Ti", CutoffNm: 210, PelletedPct: []float64{62, 41, 29, 14}},
	{Rotor: "Type 60 Ti", CutoffNm: 170, PelletedPct: []float64{88, 61, 43, 22}},
	{Rotor: "Type 70 Ti", CutoffNm: 169, PelletedPct: []float64{88, 62, 43, 22}},
	{Rotor: "F-45-24-15", CutoffNm: 128, PelletedPct: []float64{100, 95, 73, 38}},
	{Rotor: "TLA 110", CutoffNm: 125, PelletedPct: []float64{100, 98, 76, 40}},
}

// Table3Reference reproduces the manuscript's Table 3 values (K-factors and
// MLS-50-equivalent run times at 10,000×g). Literal oracle data, not derived.
var Table3Reference = []Table3Row{
	{Rotor: "SW 40Ti", K: 2774.6, EquivalentMin: 58, CutoffNm: 231, PelletedPct: []float64{53, 36, 26, 13}},
	{Rotor: "SW28", K: 2547.2, EquivalentMin: 54, CutoffNm: 229, PelletedPct: []float64{52, 35, 25, 13}},
	{Rotor: "MLS-50", K: 1426, EquivalentMin: 30, CutoffNm: 230, PelletedPct: []float64{51, 34, 25, 12}},
	{Rotor: "Type 45 Ti", K: 2103.9, EquivalentMin: 44, CutoffNm: 173, PelletedPct: []float64{86, 59, 42, 21}},
	{Rotor: "Type 60 Ti", K: 1601, EquivalentMin: 34, CutoffNm: 159, PelletedPct: []float64{96, 68, 49, 24}},
	{Rotor: "Type 70 Ti", K: 1573.8, EquivalentMin: 33, CutoffNm: 161, PelletedPct: []float64{94, 67, 48, 24}},
	{Rotor: "F-45-24-15", K: 765.9, EquivalentMin: 16, CutoffNm: 175, PelletedPct: []float64{84, 57, 41, 20}},
	{Rotor: "TLA 110", K: 658.9, EquivalentMin: 14, CutoffNm: 182, PelletedPct: []float64{79, 53, 38, 19}},
}

// ComputeTable2 evaluates the model over the whole rotor catalog under the
// Table 2 conditions (30 min at 10,000×g in medium), in catalog order.
func ComputeTable2(medium Medium) ([]Table2Row, error) {
	tSec := Table2Minutes * 60
	rows := make([]Table2Row, 0, len(rotorPresets))
	for _, preset := range rotorPresets {
		geom, err := preset.Geometry()
		if err != nil {
			return nil, err
		}
		omega2 := OmegaSquaredFromRCF(ReferenceRCF, geom.AverageRadiusMm)
		row := Table2Row{
			Rotor:       preset.Name,
			CutoffNm:    CutoffDiameter(tSec, omega2, geom, medium),
			PelletedPct: make([]float64, len(ProbeDiametersNm)),
		}
		for i, d := range ProbeDiametersNm {
			row.PelletedPct[i] = 100 * PelletedFraction(d, tSec, omega2, geom, medium)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ComputeTable3 evaluates K-factors over the catalog and re-runs the cut-off
// and pelleting computations at each rotor's MLS-50-equivalent run time.
func ComputeTable3(medium Medium) ([]Table3Row, error) {
	ref, err := GeometryForPreset(Table3RefRotor)
	if err != nil {
		return nil, err
	}
	refK := KFactorAtRCF(ref, ReferenceRCF)

	rows := make([]Table3Row, 0, len(rotorPresets))
	for _, preset := range rotorPresets {
		geom, err := preset.Geometry()
		if err != nil {
			return nil, err
		}
		k := KFactorAtRCF(geom, ReferenceRCF)
		minutes := Table3RefMinutes * k / refK
		tSec := minutes * 60
		omega2 := OmegaSquaredFromRCF(ReferenceRCF, geom.AverageRadiusMm)

		row := Table3Row{
			Rotor:         preset.Name,
			K:             k,
			EquivalentMin: minutes,
			CutoffNm:      CutoffDiameter(tSec, omega2, geom, medium),
			PelletedPct:   make([]float64, len(ProbeDiametersNm)),
		}
		for i, d := range ProbeDiametersNm {
			row.PelletedPct[i] = 100 * PelletedFraction(d, tSec, omega2, geom, medium)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

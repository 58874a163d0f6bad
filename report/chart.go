// Package report renders model output for human consumption: HTML charts of
// pelleting curves, xlsx workbooks of the manuscript tables, and PDF
// summaries of protocol runs. Nothing here feeds back into the model.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"

	"github.com/evspin/evspin/spin"
)

// CurveSeries is one rotor's pelleting curve to plot.
type CurveSeries struct {
	Name     string
	Geometry spin.Geometry
}

// curvePoints is the sampling resolution of the diameter axis.
const curvePoints = 195

// PelletingCurveChart renders P(d) for each rotor at the given RCF and run
// time as an HTML line chart. Diameters are sampled on a uniform grid from
// minNm to maxNm.
func PelletingCurveChart(series []CurveSeries, medium spin.Medium, rcf, minutes, minNm, maxNm float64, w io.Writer) error {
	if len(series) == 0 {
		return fmt.Errorf("no rotors to chart")
	}
	if !(maxNm > minNm) || minNm <= 0 {
		return fmt.Errorf("bad diameter range [%g, %g] nm", minNm, maxNm)
	}

	diameters := floats.Span(make([]float64, curvePoints), minNm, maxNm)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       "Pelleting fraction vs particle diameter",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Pelleting fraction",
			Subtitle: fmt.Sprintf("%.0f×g for %.0f min, Δρ=%.3f g/cm³, η=%.2f cP", rcf, minutes, medium.VesicleDensity-medium.MediumDensity, medium.ViscosityCP),
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient: "horizontal",
			Show:   opts.Bool(true),
			Type:   "scroll",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Diameter, nm",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Pelleted fraction",
			Type:      "value",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	line.SetXAxis(diameters)
	tSec := minutes * 60
	for _, s := range series {
		omega2 := spin.OmegaSquaredFromRCF(rcf, s.Geometry.AverageRadiusMm)
		data := make([]opts.LineData, len(diameters))
		for i, d := range diameters {
			data[i] = opts.LineData{Value: spin.PelletedFraction(d, tSec, omega2, s.Geometry, medium)}
		}
		line.AddSeries(s.Name, data)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/evspin/evspin/report"
	"github.com/evspin/evspin/spin"
)

var (
	chartOutPath   string   // Output HTML path
	chartRotors    []string // Rotor preset names to plot (default: whole catalog)
	chartRCF       float64  // RCF for the plotted run
	chartMinutes   float64  // Run time for the plotted run (minutes)
	chartMinDiamNm float64  // Lower bound of the diameter axis (nm)
	chartMaxDiamNm float64  // Upper bound of the diameter axis (nm)
)

// chartCmd renders pelleting curves as an HTML chart
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render pelleting-fraction curves as an HTML chart",
	Run: func(cmd *cobra.Command, args []string) {
		medium := resolveMedium()

		names := chartRotors
		if len(names) == 0 {
			for _, p := range spin.Presets() {
				names = append(names, p.Name)
			}
		}
		series := make([]report.CurveSeries, 0, len(names))
		for _, name := range names {
			geom, err := spin.GeometryForPreset(name)
			if err != nil {
				logrus.Fatalf("Unknown rotor %q. Run `evspin rotors` for the catalog.", name)
			}
			series = append(series, report.CurveSeries{Name: name, Geometry: geom})
		}

		f, err := os.Create(chartOutPath)
		if err != nil {
			logrus.Fatalf("Unable to create chart file: %v", err)
		}
		defer f.Close()

		if err := report.PelletingCurveChart(series, medium, chartRCF, chartMinutes, chartMinDiamNm, chartMaxDiamNm, f); err != nil {
			logrus.Fatalf("Chart rendering failed: %v", err)
		}
		logrus.Infof("Wrote chart for %d rotors to %s", len(series), chartOutPath)
	},
}

func init() {
	addMediumFlags(chartCmd)
	chartCmd.Flags().StringVar(&chartOutPath, "out", "pelleting.html", "Output HTML file")
	chartCmd.Flags().StringSliceVar(&chartRotors, "rotors", nil, "Rotor preset names to plot (default: whole catalog)")
	chartCmd.Flags().Float64Var(&chartRCF, "rcf", 10000, "RCF (×g)")
	chartCmd.Flags().Float64Var(&chartMinutes, "minutes", 30, "Run time (minutes)")
	chartCmd.Flags().Float64Var(&chartMinDiamNm, "min-diameter", 30, "Smallest plotted diameter (nm)")
	chartCmd.Flags().Float64Var(&chartMaxDiamNm, "max-diameter", 1000, "Largest plotted diameter (nm)")

	rootCmd.AddCommand(chartCmd)
}

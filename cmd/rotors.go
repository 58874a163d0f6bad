package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/evspin/evspin/spin"
)

// rotorsCmd prints the preset catalog with resolved geometries
var rotorsCmd = &cobra.Command{
	Use:   "rotors",
	Short: "List the rotor preset catalog",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tKIND\tRMIN (mm)\tRMAX (mm)\tANGLE (°)\tTUBE (mm)\tRAV (mm)\tLSED (mm)")
		for _, p := range spin.Presets() {
			geom, err := p.Geometry()
			if err != nil {
				logrus.Fatalf("Preset %q failed to resolve: %v", p.Name, err)
			}
			angle, tube := "-", "-"
			if p.Kind == spin.FixedAngle {
				angle = fmt.Sprintf("%g", p.TiltAngleDeg)
				tube = fmt.Sprintf("%g", p.TubeDiameterMm)
			}
			fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%s\t%s\t%.1f\t%.1f\n",
				p.Name, p.Kind, p.MinRadiusMm, p.MaxRadiusMm, angle, tube,
				geom.AverageRadiusMm, geom.SedimentationPathMm)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(rotorsCmd)
}

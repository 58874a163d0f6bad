package cmd

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/evspin/evspin/spin"
)

var (
	runRCF       float64   // Relative centrifugal force (×g at the average radius)
	runRPM       float64   // Rotation speed in revolutions per minute
	runMinutes   float64   // Run time in minutes
	runDiameters []float64 // Particle diameters to evaluate (nm)
)

// runCmd computes the single-run quantities for one rotor
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute cut-off diameter, K-factor, and pelleting for one run",
	Run: func(cmd *cobra.Command, args []string) {
		geom, name := resolveRotor()
		medium := resolveMedium()

		conditions := runConditions()
		if err := conditions.Validate(); err != nil {
			logrus.Fatalf("Invalid run conditions: %v", err)
		}
		// A zero-length run has no cut-off diameter; reject it here rather
		// than printing the +Inf the formula yields.
		if runMinutes <= 0 {
			logrus.Fatalf("Run time must be positive (got %.1f min)", runMinutes)
		}
		omega2 := conditions.OmegaSquared(geom)
		tSec := conditions.Seconds

		logrus.Infof("Resolved %s: Rmin=%.1fmm Rmax=%.1fmm Rav=%.1fmm Lsed=%.1fmm",
			name, geom.MinRadiusMm, geom.MaxRadiusMm, geom.AverageRadiusMm, geom.SedimentationPathMm)

		fmt.Printf("Rotor:            %s (%s)\n", name, geom.Kind)
		fmt.Printf("Angular velocity: %.0f rpm (ω² = %.3e rad²/s²)\n", spin.RPMFromOmega(math.Sqrt(omega2)), omega2)
		fmt.Printf("K-factor:         %.1f\n", spin.KFactor(geom, omega2))
		fmt.Printf("Cut-off diameter: %.0f nm at %.0f min\n", spin.CutoffDiameter(tSec, omega2, geom, medium), runMinutes)
		fmt.Println()
		fmt.Printf("%10s %14s %14s %16s\n", "d (nm)", "s (Svedberg)", "pelleted %", "t* (min)")
		for _, d := range runDiameters {
			s := spin.SedimentationCoefficient(d, medium)
			p := spin.PelletedFraction(d, tSec, omega2, geom, medium)
			tStar := spin.CompleteSedimentationTime(d, omega2, geom, medium)
			fmt.Printf("%10g %14.1f %14.1f %16.1f\n", d, spin.Svedberg(s), 100*p, tStar/60)
		}
	},
}

// runConditions maps the speed flags onto run conditions; exactly one of
// --rcf and --rpm must be set.
func runConditions() spin.Conditions {
	if runRPM > 0 && runRCF > 0 {
		logrus.Fatalf("Specify --rcf or --rpm, not both")
	}
	if runRPM > 0 {
		return spin.Conditions{SpeedValue: runRPM, SpeedUnit: spin.RPM, Seconds: runMinutes * 60}
	}
	return spin.Conditions{SpeedValue: runRCF, SpeedUnit: spin.RCF, Seconds: runMinutes * 60}
}

func init() {
	addRotorFlags(runCmd)
	addMediumFlags(runCmd)
	runCmd.Flags().Float64Var(&runRCF, "rcf", 0, "Relative centrifugal force (×g, referenced at the average radius)")
	runCmd.Flags().Float64Var(&runRPM, "rpm", 0, "Rotation speed (rpm); alternative to --rcf")
	runCmd.Flags().Float64Var(&runMinutes, "minutes", 30, "Run time (minutes)")
	runCmd.Flags().Float64SliceVar(&runDiameters, "diameters", []float64{70, 100, 120, 150}, "Particle diameters to evaluate (nm)")

	rootCmd.AddCommand(runCmd)
}

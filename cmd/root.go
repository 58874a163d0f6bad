package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/evspin/evspin/spin"
)

var logLevel string // Log verbosity level

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "evspin",
	Short: "Centrifugation calculator for extracellular-vesicle isolation",
	Long: "evspin computes sedimentation kinetics, cut-off diameters, pelleting fractions,\n" +
		"rotor K-factors, and multi-step protocol outcomes for EV isolation, following\n" +
		"Livshts et al., Sci. Rep. 5, 17319 (2015).",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
}

// Shared rotor-selection flags: either a preset name or an explicit geometry.
var (
	rotorName      string  // Rotor preset name from the catalog
	rotorKind      string  // Rotor kind for explicit geometry (swinging-bucket, fixed-angle)
	minRadiusMm    float64 // Physical minimum radius in mm
	maxRadiusMm    float64 // Physical maximum radius in mm
	tiltAngleDeg   float64 // Tube tilt angle in degrees (fixed-angle only)
	tubeDiameterMm float64 // Tube diameter in mm (fixed-angle only)
)

func addRotorFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rotorName, "rotor", "", "Rotor preset name (see `evspin rotors`)")
	cmd.Flags().StringVar(&rotorKind, "kind", string(spin.SwingingBucket), "Rotor kind for explicit geometry (swinging-bucket, fixed-angle)")
	cmd.Flags().Float64Var(&minRadiusMm, "min-radius", 0, "Physical minimum radius (mm)")
	cmd.Flags().Float64Var(&maxRadiusMm, "max-radius", 0, "Physical maximum radius (mm)")
	cmd.Flags().Float64Var(&tiltAngleDeg, "angle", 0, "Tube tilt angle (degrees, fixed-angle only)")
	cmd.Flags().Float64Var(&tubeDiameterMm, "tube-diameter", 0, "Tube diameter (mm, fixed-angle only)")
}

// resolveRotor builds the geometry selected by the shared rotor flags and a
// display name for it. Fatal on invalid input: these are CLI-boundary
// validation failures, matching the validation policy of the spin package.
func resolveRotor() (spin.Geometry, string) {
	if rotorName != "" {
		geom, err := spin.GeometryForPreset(rotorName)
		if err != nil {
			logrus.Fatalf("Unknown rotor %q. Run `evspin rotors` for the catalog.", rotorName)
		}
		return geom, rotorName
	}

	var (
		geom spin.Geometry
		err  error
	)
	switch spin.RotorKind(rotorKind) {
	case spin.SwingingBucket:
		geom, err = spin.NewSwingingBucket(minRadiusMm, maxRadiusMm)
	case spin.FixedAngle:
		geom, err = spin.NewFixedAngle(minRadiusMm, maxRadiusMm, tiltAngleDeg, tubeDiameterMm)
	default:
		logrus.Fatalf("Unknown rotor kind %q", rotorKind)
	}
	if err != nil {
		logrus.Fatalf("Invalid rotor geometry: %v", err)
	}
	return geom, string(geom.Kind)
}

// Shared medium flags, defaulting to the manuscript's reference medium.
var (
	vesicleDensity float64 // Vesicle density (g/cm³)
	mediumDensity  float64 // Medium density (g/cm³)
	viscosityCP    float64 // Medium viscosity (cP)
)

func addMediumFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&vesicleDensity, "vesicle-density", spin.ReferenceMedium.VesicleDensity, "Vesicle density (g/cm³)")
	cmd.Flags().Float64Var(&mediumDensity, "medium-density", spin.ReferenceMedium.MediumDensity, "Medium density (g/cm³)")
	cmd.Flags().Float64Var(&viscosityCP, "viscosity", spin.ReferenceMedium.ViscosityCP, "Medium viscosity (cP)")
}

// resolveMedium validates and returns the medium from the shared flags.
func resolveMedium() spin.Medium {
	medium := spin.Medium{
		VesicleDensity: vesicleDensity,
		MediumDensity:  mediumDensity,
		ViscosityCP:    viscosityCP,
	}
	if err := medium.Validate(); err != nil {
		logrus.Fatalf("Invalid medium: %v", err)
	}
	return medium
}

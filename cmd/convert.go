package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/evspin/evspin/spin"
)

var (
	convertFrom    string  // Source rotor preset name
	convertTo      string  // Target rotor preset name
	convertMinutes float64 // Run time in the source rotor (minutes)
	convertRCF     float64 // Shared RCF for both rotors
)

// convertCmd converts run times between rotors at equal RCF via K-factors
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a run time between rotors at the same RCF",
	Long: "Convert a centrifugation time from one rotor to the time giving the same\n" +
		"clearing in another rotor at the same RCF, using the K-factor ratio. Both\n" +
		"K-factors are evaluated at the ω² implied by the shared RCF at each rotor's\n" +
		"own average radius.",
	Run: func(cmd *cobra.Command, args []string) {
		source, err := spin.GeometryForPreset(convertFrom)
		if err != nil {
			logrus.Fatalf("Unknown source rotor %q. Run `evspin rotors` for the catalog.", convertFrom)
		}
		target, err := spin.GeometryForPreset(convertTo)
		if err != nil {
			logrus.Fatalf("Unknown target rotor %q. Run `evspin rotors` for the catalog.", convertTo)
		}
		if convertRCF <= 0 || convertMinutes <= 0 {
			logrus.Fatalf("RCF and minutes must be positive (got %.0f×g, %.1f min)", convertRCF, convertMinutes)
		}

		sourceK := spin.KFactorAtRCF(source, convertRCF)
		targetK := spin.KFactorAtRCF(target, convertRCF)
		targetMin := spin.EquivalentRunTime(convertMinutes*60, source, target, convertRCF) / 60

		fmt.Printf("%s: K = %.1f, t = %.1f min\n", convertFrom, sourceK, convertMinutes)
		fmt.Printf("%s: K = %.1f, t = %.1f min\n", convertTo, targetK, targetMin)
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "Source rotor preset name")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Target rotor preset name")
	convertCmd.Flags().Float64Var(&convertMinutes, "minutes", 30, "Run time in the source rotor (minutes)")
	convertCmd.Flags().Float64Var(&convertRCF, "rcf", 10000, "Shared RCF (×g)")
	convertCmd.MarkFlagRequired("from")
	convertCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(convertCmd)
}

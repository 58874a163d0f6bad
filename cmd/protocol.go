package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/evspin/evspin/report"
	"github.com/evspin/evspin/spin"
)

var (
	protocolSpecPath string // Path to the protocol YAML spec
	protocolPDFPath  string // Optional PDF report output path
)

// protocolCmd runs a multi-step protocol from a YAML spec
var protocolCmd = &cobra.Command{
	Use:   "protocol",
	Short: "Simulate a multi-step centrifugation protocol from a YAML spec",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := spin.LoadProtocolSpec(protocolSpecPath)
		if err != nil {
			logrus.Fatalf("Unable to load protocol spec: %v", err)
		}
		geom, err := spec.ResolveGeometry()
		if err != nil {
			logrus.Fatalf("Unable to resolve rotor: %v", err)
		}
		medium := spec.ResolveMedium()
		rotorLabel := spec.Rotor
		if rotorLabel == "" {
			rotorLabel = string(geom.Kind)
		}

		logrus.Infof("Running %d-step protocol in %s", len(spec.Steps), rotorLabel)
		result := spin.RunProtocol(spec.Steps, geom, medium, spec.DiametersNm)

		for i, step := range result.Steps {
			fmt.Printf("Step %d: %.0f×g for %.0f min, retain %s\n",
				i+1, step.Step.RCF, step.Step.Minutes, step.Step.Retain)
			fmt.Printf("%10s %14s %14s\n", "d (nm)", "pelleted %", "remaining %")
			for j, d := range result.DiametersNm {
				fmt.Printf("%10g %14.1f %14.1f\n", d, 100*step.Pelleted[j], 100*step.Remaining[j])
			}
			fmt.Println()
		}

		if protocolPDFPath != "" {
			f, err := os.Create(protocolPDFPath)
			if err != nil {
				logrus.Fatalf("Unable to create PDF report: %v", err)
			}
			defer f.Close()
			if err := report.WriteProtocolPDF(result, rotorLabel, medium, f); err != nil {
				logrus.Fatalf("PDF report failed: %v", err)
			}
			logrus.Infof("Wrote PDF report to %s", protocolPDFPath)
		}
	},
}

func init() {
	protocolCmd.Flags().StringVar(&protocolSpecPath, "spec", "", "Protocol spec YAML file")
	protocolCmd.Flags().StringVar(&protocolPDFPath, "pdf", "", "Write a PDF report to this path")
	protocolCmd.MarkFlagRequired("spec")

	rootCmd.AddCommand(protocolCmd)
}

package cmd

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/evspin/evspin/report"
	"github.com/evspin/evspin/spin"
)

var tableXLSXPath string // Optional xlsx output path

// tableCmd reproduces the manuscript validation tables from the model
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Reproduce manuscript Tables 2 and 3 and compare to the reference",
	Run: func(cmd *cobra.Command, args []string) {
		medium := resolveMedium()

		table2, err := spin.ComputeTable2(medium)
		if err != nil {
			logrus.Fatalf("Table 2 computation failed: %v", err)
		}
		table3, err := spin.ComputeTable3(medium)
		if err != nil {
			logrus.Fatalf("Table 3 computation failed: %v", err)
		}

		fmt.Printf("Table 2 — 30 min at %.0f×g (computed/reference)\n", spin.ReferenceRCF)
		fmt.Printf("%-12s %12s", "Rotor", "d* (nm)")
		for _, d := range spin.ProbeDiametersNm {
			fmt.Printf(" %10s", fmt.Sprintf("P%gnm %%", d))
		}
		fmt.Println()
		for i, row := range table2 {
			ref := spin.Table2Reference[i]
			fmt.Printf("%-12s %12s", row.Rotor, pair(row.CutoffNm, ref.CutoffNm))
			for j := range spin.ProbeDiametersNm {
				fmt.Printf(" %10s", pair(row.PelletedPct[j], ref.PelletedPct[j]))
			}
			fmt.Println()
		}

		fmt.Printf("\nTable 3 — K-factors at %.0f×g, times equivalent to %s at %.0f min\n",
			spin.ReferenceRCF, spin.Table3RefRotor, spin.Table3RefMinutes)
		fmt.Printf("%-12s %16s %10s %12s\n", "Rotor", "K", "tK (min)", "d* (nm)")
		for i, row := range table3 {
			ref := spin.Table3Reference[i]
			fmt.Printf("%-12s %16s %10s %12s\n", row.Rotor,
				fmt.Sprintf("%.1f/%.1f", row.K, ref.K),
				pair(row.EquivalentMin, ref.EquivalentMin),
				pair(row.CutoffNm, ref.CutoffNm))
		}

		if tableXLSXPath != "" {
			if err := report.WriteTablesWorkbook(tableXLSXPath, table2, table3); err != nil {
				logrus.Fatalf("xlsx export failed: %v", err)
			}
			logrus.Infof("Wrote workbook to %s", tableXLSXPath)
		}
	},
}

// pair formats a computed value against its reference as "computed/reference".
func pair(computed, reference float64) string {
	return fmt.Sprintf("%.0f/%.0f", math.Round(computed), reference)
}

func init() {
	addMediumFlags(tableCmd)
	tableCmd.Flags().StringVar(&tableXLSXPath, "xlsx", "", "Write the tables to this xlsx path")

	rootCmd.AddCommand(tableCmd)
}

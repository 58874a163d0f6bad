package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/evspin/evspin/spin"
)

// WriteProtocolPDF renders the per-step history of a protocol run as a PDF
// summary: run metadata, then one table block per step with the pelleted and
// remaining fraction for every tracked diameter.
func WriteProtocolPDF(result spin.ProtocolResult, rotorName string, medium spin.Medium, w io.Writer) error {
	if len(result.Steps) == 0 {
		return fmt.Errorf("protocol result has no steps")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Centrifugation protocol report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Rotor: %s", rotorName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Medium: vesicles %.3f g/cm³ in %.3f g/cm³ at %.2f cP",
		medium.VesicleDensity, medium.MediumDensity, medium.ViscosityCP))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	for i, step := range result.Steps {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Step %d: %.0f×g for %.0f min, retain %s",
			i+1, step.Step.RCF, step.Step.Minutes, step.Step.Retain))
		pdf.Ln(9)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(30, 6, "d (nm)", "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, "pelleted %", "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, "remaining %", "1", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for j, d := range result.DiametersNm {
			pdf.CellFormat(30, 6, fmt.Sprintf("%g", d), "1", 0, "R", false, 0, "")
			pdf.CellFormat(35, 6, fmt.Sprintf("%.1f", 100*step.Pelleted[j]), "1", 0, "R", false, 0, "")
			pdf.CellFormat(35, 6, fmt.Sprintf("%.1f", 100*step.Remaining[j]), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

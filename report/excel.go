package report

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/evspin/evspin/spin"
)

// WriteTablesWorkbook writes the computed manuscript tables next to their
// reference values as a two-sheet xlsx workbook at path.
func WriteTablesWorkbook(path string, table2 []spin.Table2Row, table3 []spin.Table3Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeTable2Sheet(f, table2); err != nil {
		return err
	}
	if err := writeTable3Sheet(f, table3); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeTable2Sheet(f *excelize.File, rows []spin.Table2Row) error {
	const sheet = "Table 2"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %q: %w", sheet, err)
	}

	header := []interface{}{"Rotor", "d* (nm)", "d* ref (nm)"}
	for _, d := range spin.ProbeDiametersNm {
		header = append(header, fmt.Sprintf("P(%gnm) %%", d), fmt.Sprintf("P(%gnm) ref %%", d))
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, row := range rows {
		ref := spin.Table2Reference[i]
		cells := []interface{}{row.Rotor, round1(row.CutoffNm), ref.CutoffNm}
		for j := range spin.ProbeDiametersNm {
			cells = append(cells, round1(row.PelletedPct[j]), ref.PelletedPct[j])
		}
		if err := setRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeTable3Sheet(f *excelize.File, rows []spin.Table3Row) error {
	const sheet = "Table 3"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %q: %w", sheet, err)
	}

	header := []interface{}{"Rotor", "K", "K ref", "tK (min)", "tK ref (min)", "d* (nm)", "d* ref (nm)"}
	for _, d := range spin.ProbeDiametersNm {
		header = append(header, fmt.Sprintf("P(%gnm) %%", d), fmt.Sprintf("P(%gnm) ref %%", d))
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, row := range rows {
		ref := spin.Table3Reference[i]
		cells := []interface{}{
			row.Rotor,
			round1(row.K), ref.K,
			round1(row.EquivalentMin), ref.EquivalentMin,
			round1(row.CutoffNm), ref.CutoffNm,
		}
		for j := range spin.ProbeDiametersNm {
			cells = append(cells, round1(row.PelletedPct[j]), ref.PelletedPct[j])
		}
		if err := setRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("writing %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

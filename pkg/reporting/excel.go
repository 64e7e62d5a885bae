package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ducminhle1904/portfolio-optimizer/internal/portfolio"
	"github.com/ducminhle1904/portfolio-optimizer/pkg/optimization"
)

// ExcelReporter writes the optimization outcome to an Excel workbook.
type ExcelReporter struct{}

// NewExcelReporter creates a new Excel reporter.
func NewExcelReporter() *ExcelReporter {
	return &ExcelReporter{}
}

// WriteReport writes two sheets: the final allocation and the
// per-generation convergence history.
func (r *ExcelReporter) WriteReport(universe portfolio.Universe, history []optimization.RunResult, path string) error {
	if len(history) == 0 {
		return fmt.Errorf("no generation history to report")
	}

	// Ensure directory exists before creating file
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const allocationSheet = "Allocation"
	const convergenceSheet = "Convergence"

	fx.SetSheetName(fx.GetSheetName(0), allocationSheet)
	if _, err := fx.NewSheet(convergenceSheet); err != nil {
		return err
	}

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := r.writeAllocationSheet(fx, allocationSheet, universe, history[len(history)-1], headerStyle); err != nil {
		return err
	}

	if err := r.writeConvergenceSheet(fx, convergenceSheet, universe, history, headerStyle); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *ExcelReporter) writeAllocationSheet(fx *excelize.File, sheet string, universe portfolio.Universe, final optimization.RunResult, headerStyle int) error {
	if err := fx.SetSheetRow(sheet, "A1", &[]interface{}{"Asset", "Expected Return", "Risk", "Weight"}); err != nil {
		return err
	}
	if err := fx.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
		return err
	}

	for i, asset := range universe {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{asset.Name, asset.ExpectedReturn, asset.Risk, final.BestGenome[i]}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	scoreCell := fmt.Sprintf("A%d", len(universe)+3)
	return fx.SetSheetRow(sheet, scoreCell, &[]interface{}{"Optimized score", final.BestFitness})
}

func (r *ExcelReporter) writeConvergenceSheet(fx *excelize.File, sheet string, universe portfolio.Universe, history []optimization.RunResult, headerStyle int) error {
	header := []interface{}{"Generation", "Best Fitness"}
	for _, asset := range universe {
		header = append(header, asset.Name)
	}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := fx.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, result := range history {
		row := []interface{}{result.Generation, result.BestFitness}
		for _, w := range result.BestGenome {
			row = append(row, w)
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return nil
}

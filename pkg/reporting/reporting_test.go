package reporting

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ducminhle1904/portfolio-optimizer/internal/portfolio"
	"github.com/ducminhle1904/portfolio-optimizer/pkg/optimization"
)

func testUniverse() portfolio.Universe {
	return portfolio.Universe{
		{Name: "VUSA", ExpectedReturn: 0.1, Risk: 0.3},
		{Name: "CNDX", ExpectedReturn: 0.15, Risk: 0.4},
	}
}

func testHistory() []optimization.RunResult {
	return []optimization.RunResult{
		{Generation: 0, BestFitness: 0.18, BestGenome: optimization.Genome{0.5, 0.5}},
		{Generation: 1, BestFitness: 0.21, BestGenome: optimization.Genome{0.7, 0.3}},
	}
}

func TestConsoleReporter_PrintAllocation(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporter()
	reporter.SetOutput(&buf)

	reporter.PrintAllocation(testUniverse(), testHistory()[1])

	out := buf.String()
	assert.Contains(t, out, "VUSA")
	assert.Contains(t, out, "CNDX")
	assert.Contains(t, out, "0.7000")
	assert.Contains(t, out, "0.210000")
	assert.Contains(t, out, "OPTIMIZED SCORE")
}

func TestExcelReporter_WriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "allocation.xlsx")

	err := NewExcelReporter().WriteReport(testUniverse(), testHistory(), path)
	require.NoError(t, err)

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	name, err := fx.GetCellValue("Allocation", "A2")
	require.NoError(t, err)
	assert.Equal(t, "VUSA", name)

	weight, err := fx.GetCellValue("Allocation", "D3")
	require.NoError(t, err)
	assert.Equal(t, "0.3", weight)

	generations, err := fx.GetCellValue("Convergence", "A3")
	require.NoError(t, err)
	assert.Equal(t, "1", generations)

	fitness, err := fx.GetCellValue("Convergence", "B3")
	require.NoError(t, err)
	assert.Equal(t, "0.21", fitness)
}

func TestExcelReporter_EmptyHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allocation.xlsx")

	err := NewExcelReporter().WriteReport(testUniverse(), nil, path)

	assert.ErrorContains(t, err, "no generation history")
}

package reporting

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ducminhle1904/portfolio-optimizer/internal/portfolio"
	"github.com/ducminhle1904/portfolio-optimizer/pkg/optimization"
)

// ConsoleReporter renders the final allocation as a terminal table.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a reporter writing to stdout.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{out: os.Stdout}
}

// SetOutput redirects the reporter, used by tests.
func (r *ConsoleReporter) SetOutput(out io.Writer) {
	r.out = out
}

// PrintAllocation prints each asset's weight in the best allocation found,
// with the optimized score as a footer.
func (r *ConsoleReporter) PrintAllocation(universe portfolio.Universe, result optimization.RunResult) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("Best Allocation")
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Asset", "Exp. Return", "Risk", "Weight"})
	for i, asset := range universe {
		t.AppendRow(table.Row{
			asset.Name,
			fmt.Sprintf("%.2f%%", asset.ExpectedReturn*100),
			fmt.Sprintf("%.2f%%", asset.Risk*100),
			fmt.Sprintf("%.4f", result.BestGenome[i]),
		})
	}
	t.AppendFooter(table.Row{"Optimized score", "", "", fmt.Sprintf("%.6f", result.BestFitness)})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 15, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	t.Render()
}

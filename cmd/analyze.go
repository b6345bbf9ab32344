package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	yieldcurve "github.com/shravya-kantayapalam/bond-yield-analyzer"
	"github.com/shravya-kantayapalam/bond-yield-analyzer/renderer"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	series seriesFlags
	csv    string
	chart  string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "run the full yield curve analysis pipeline" }
func (*analyzeCmd) Usage() string {
	return `bya analyze [-days <n>] [-seed <n>] [-in <csv>] [-csv <file>] [-chart <file>]

  Generates the synthetic Treasury yield dataset (or re-reads an exported
  one), prints the curve metrics and inversion analysis, renders the
  two-panel chart, and exports the dataset to CSV.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	c.series.setFlags(f)
	f.StringVar(&c.csv, "csv", "treasury_yields_data.csv", "Path of the exported dataset")
	f.StringVar(&c.chart, "chart", "yield_curve_analysis.png", "Path of the rendered chart image")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := c.series.load()
	if err != nil {
		return fail(err)
	}

	report, err := yieldcurve.NewReport(series)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AnalysisMarkdown(report))

	if err := yieldcurve.WriteChart(c.chart, series); err != nil {
		return fail(err)
	}

	out, err := os.Create(c.csv)
	if err != nil {
		return fail(fmt.Errorf("cannot create dataset file %q: %w", c.csv, err))
	}
	defer out.Close()
	if err := yieldcurve.EncodeCSV(out, series); err != nil {
		return fail(err)
	}

	fmt.Printf("Data saved to %q\n", c.csv)
	fmt.Printf("Chart saved to %q\n", c.chart)
	return subcommands.ExitSuccess
}

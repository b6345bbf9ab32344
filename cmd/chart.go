package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	yieldcurve "github.com/shravya-kantayapalam/bond-yield-analyzer"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	series seriesFlags
	out    string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the two-panel yield curve chart" }
func (*chartCmd) Usage() string {
	return `bya chart [-days <n>] [-seed <n>] [-in <csv>] [-o <file>]

  Renders a PNG with the current curve snapshot on top and the historical
  yield trends below.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.series.setFlags(f)
	f.StringVar(&c.out, "o", "yield_curve_analysis.png", "Path of the rendered chart image")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := c.series.load()
	if err != nil {
		return fail(err)
	}

	if err := yieldcurve.WriteChart(c.out, series); err != nil {
		return fail(err)
	}

	fmt.Printf("Chart saved to %q\n", c.out)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	yieldcurve "github.com/shravya-kantayapalam/bond-yield-analyzer"
	"github.com/shravya-kantayapalam/bond-yield-analyzer/renderer"
)

// inversionsCmd holds the flags for the 'inversions' subcommand.
type inversionsCmd struct {
	series seriesFlags
}

func (*inversionsCmd) Name() string     { return "inversions" }
func (*inversionsCmd) Synopsis() string { return "display the 2Y-10Y inversion analysis" }
func (*inversionsCmd) Usage() string {
	return `bya inversions [-days <n>] [-seed <n>] [-in <csv>]

  Scans the whole series for days where the 10Y-2Y spread is negative and
  summarizes their frequency and depth.
`
}

func (c *inversionsCmd) SetFlags(f *flag.FlagSet) {
	c.series.setFlags(f)
}

func (c *inversionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := c.series.load()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.InversionsMarkdown(yieldcurve.DetectInversions(series)))
	return subcommands.ExitSuccess
}

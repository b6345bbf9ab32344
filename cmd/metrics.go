package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	yieldcurve "github.com/shravya-kantayapalam/bond-yield-analyzer"
	"github.com/shravya-kantayapalam/bond-yield-analyzer/renderer"
)

// metricsCmd holds the flags for the 'metrics' subcommand.
type metricsCmd struct {
	series seriesFlags
}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "display the current yield curve metrics" }
func (*metricsCmd) Usage() string {
	return `bya metrics [-days <n>] [-seed <n>] [-in <csv>]

  Displays the point-in-time curve metrics derived from the latest
  observation: slope, steepness, short and long rates, and whether the
  curve is inverted.
`
}

func (c *metricsCmd) SetFlags(f *flag.FlagSet) {
	c.series.setFlags(f)
}

func (c *metricsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := c.series.load()
	if err != nil {
		return fail(err)
	}

	metrics, err := yieldcurve.ComputeMetrics(series)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.MetricsMarkdown(metrics))
	return subcommands.ExitSuccess
}

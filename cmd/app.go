// Package cmd implements the CLI application to analyze the yield curve dataset.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	yieldcurve "github.com/shravya-kantayapalam/bond-yield-analyzer"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&analyzeCmd{}, "analysis")
	c.Register(&metricsCmd{}, "analysis")
	c.Register(&inversionsCmd{}, "analysis")

	c.Register(&chartCmd{}, "outputs")
	c.Register(&exportCmd{}, "outputs")
}

// seriesFlags holds the flags shared by every subcommand to obtain a yield
// series: either generate a synthetic one, or re-read a previously
// exported dataset.
type seriesFlags struct {
	days int
	seed int64
	in   string
}

func (s *seriesFlags) setFlags(f *flag.FlagSet) {
	f.IntVar(&s.days, "days", yieldcurve.DefaultWindow, "lookback window in days")
	f.Int64Var(&s.seed, "seed", yieldcurve.DefaultSeed, "seed of the series generator")
	f.StringVar(&s.in, "in", "", "re-analyze a previously exported CSV dataset instead of generating")
}

// load returns the series selected by the flags.
func (s *seriesFlags) load() (*yieldcurve.YieldSeries, error) {
	if s.in != "" {
		f, err := os.Open(s.in)
		if err != nil {
			return nil, fmt.Errorf("cannot open dataset %q: %w", s.in, err)
		}
		defer f.Close()
		series, err := yieldcurve.DecodeCSV(f)
		if err != nil {
			return nil, fmt.Errorf("cannot decode dataset %q: %w", s.in, err)
		}
		return series, nil
	}
	return yieldcurve.Generate(s.days, s.seed)
}

// fail reports the error on stderr and converts it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

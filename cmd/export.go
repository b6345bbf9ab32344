package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	yieldcurve "github.com/shravya-kantayapalam/bond-yield-analyzer"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	series seriesFlags
	format string
	out    string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the yield dataset to a flat file" }
func (*exportCmd) Usage() string {
	return `bya export [-days <n>] [-seed <n>] [-in <csv>] [-format csv|jsonl] [-o <file>]

  Writes the dataset to a flat file: CSV with one row per day, or the
  JSONL import/export format with one tenor history per line. With no -o
  the dataset is written to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.series.setFlags(f)
	f.StringVar(&c.format, "format", "csv", "Export format: csv or jsonl")
	f.StringVar(&c.out, "o", "", "Path of the exported file (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var encode func(io.Writer, *yieldcurve.YieldSeries) error
	switch c.format {
	case "csv":
		encode = yieldcurve.EncodeCSV
	case "jsonl":
		encode = yieldcurve.ExportSeries
	default:
		fmt.Fprintf(os.Stderr, "unknown export format %q, want csv or jsonl\n", c.format)
		return subcommands.ExitUsageError
	}

	series, err := c.series.load()
	if err != nil {
		return fail(err)
	}

	w := io.Writer(os.Stdout)
	if c.out != "" {
		f, err := os.Create(c.out)
		if err != nil {
			return fail(fmt.Errorf("cannot create export file %q: %w", c.out, err))
		}
		defer f.Close()
		w = f
	}

	if err := encode(w, series); err != nil {
		return fail(err)
	}

	if c.out != "" {
		fmt.Printf("Data saved to %q\n", c.out)
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ngaspar/salesboard"
	"github.com/ngaspar/salesboard/renderer"
)

// abcCmd holds the flags for the 'abc' subcommand.
type abcCmd struct {
	from string
	to   string
}

func (*abcCmd) Name() string     { return "abc" }
func (*abcCmd) Synopsis() string { return "rank customers by revenue into ABC classes" }
func (*abcCmd) Usage() string {
	return `sbd abc [-from <date>] [-to <date>]

  Ranks the period's customers by revenue and partitions them into ABC
  classes by cumulative share of the total.
`
}

func (c *abcCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First day of the period, YYYY-MM-DD.")
	f.StringVar(&c.to, "to", "", "Last day of the period, YYYY-MM-DD.")
}

func (c *abcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, err := parseRangeFlags(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	params := []string{rng.Identifier()}
	files := []string{*configFile, *transactionsFile}
	md, err := cached("abc", params, files, func() (string, error) {
		cfg, err := LoadConfig()
		if err != nil {
			return "", err
		}
		txs, err := DecodeTransactions(cfg.Reporting.Currency)
		if err != nil {
			return "", err
		}

		filter := cfg.Filter()
		filter.Range = rng
		kept := filter.Filter(txs)

		report := salesboard.NewConcentrationReport(salesboard.EntityTotals(kept))
		return renderer.ConcentrationMarkdown(report), nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(md)
	return subcommands.ExitSuccess
}

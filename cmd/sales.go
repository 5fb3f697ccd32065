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

// salesCmd holds the flags for the 'sales' subcommand.
type salesCmd struct {
	from        string
	to          string
	salesperson string
	rank        string
	top         int
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "aggregate sales per channel, day and salesperson" }
func (*salesCmd) Usage() string {
	return `sbd sales [-from <date>] [-to <date>] [-salesperson <name>] [-rank <channel> [-top <n>]]

  Classifies the period's transactions into the configured channels and
  prints the channel totals with the daily and salesperson tables. With
  -rank, prints the top salespeople for one channel instead.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First day of the period, YYYY-MM-DD.")
	f.StringVar(&c.to, "to", "", "Last day of the period, YYYY-MM-DD.")
	f.StringVar(&c.salesperson, "salesperson", "", "Keep only one salesperson's transactions.")
	f.StringVar(&c.rank, "rank", "", "Print the ranking for this channel instead of the summary.")
	f.IntVar(&c.top, "top", 5, "Number of salespeople in the ranking.")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, err := parseRangeFlags(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	params := []string{rng.Identifier(), c.salesperson, c.rank, fmt.Sprint(c.top)}
	files := []string{*configFile, *transactionsFile}
	md, err := cached("sales", params, files, func() (string, error) {
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
		filter.Salesperson = c.salesperson
		kept := filter.Filter(txs)
		channels := cfg.ChannelSet()

		if c.rank != "" {
			table := salesboard.NewSalespersonTable(kept, channels)
			return renderer.RankingMarkdown(salesboard.Ranking(table, c.rank, c.top), c.rank), nil
		}

		summary := salesboard.NewSalesSummary(kept, channels, rng)
		daily := salesboard.NewDailySalesTable(kept, channels)
		people := salesboard.NewSalespersonTable(kept, channels)
		return renderer.SalesMarkdown(summary, daily, people), nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(md)
	return subcommands.ExitSuccess
}

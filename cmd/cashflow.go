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

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct {
	from     string
	to       string
	opening  float64
	scenario string
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "project the daily cash balance over a period" }
func (*cashflowCmd) Usage() string {
	return `sbd cashflow [-from <date>] [-to <date>] [-opening <amount>] [-scenario <file>]

  Reconciles the receivable and payable ledgers into a dense daily balance
  projection. Scenario entries from a JSONL file are applied for this call
  only and never persist.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First day of the period, YYYY-MM-DD.")
	f.StringVar(&c.to, "to", "", "Last day of the period, YYYY-MM-DD.")
	f.Float64Var(&c.opening, "opening", 0, "Opening cash balance on the first day.")
	f.StringVar(&c.scenario, "scenario", "", "JSONL file of what-if ledger entries.")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, err := parseRangeFlags(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	currency := cfg.Reporting.Currency

	var scenario []salesboard.ScenarioEntry
	if c.scenario != "" {
		sf, err := os.Open(c.scenario)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scenario file %q: %v\n", c.scenario, err)
			return subcommands.ExitFailure
		}
		scenario, err = salesboard.DecodeScenarioEntries(sf, currency)
		sf.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	compute := func() (string, error) {
		receivable, err := DecodeLedger(*receivableFile, currency)
		if err != nil {
			return "", err
		}
		payable, err := DecodeLedger(*payableFile, currency)
		if err != nil {
			return "", err
		}
		report, err := salesboard.NewCashFlowReport(receivable, payable, salesboard.M(c.opening, currency), rng, scenario...)
		if err != nil {
			return "", err
		}
		return renderer.CashFlowMarkdown(report), nil
	}

	var md string
	if c.scenario != "" {
		// What-if projections are one-offs, never cached.
		md, err = compute()
	} else {
		params := []string{rng.Identifier(), fmt.Sprint(c.opening)}
		files := []string{*configFile, *receivableFile, *payableFile}
		md, err = cached("cashflow", params, files, compute)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(md)
	return subcommands.ExitSuccess
}

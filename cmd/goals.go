package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ngaspar/salesboard"
	"github.com/ngaspar/salesboard/date"
	"github.com/ngaspar/salesboard/renderer"
)

// goalsCmd holds the flags for the 'goals' subcommand.
type goalsCmd struct {
	category     string
	month        string
	policy       string
	ref          string
	includeToday bool
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "evaluate a category's goal ladder for one month" }
func (*goalsCmd) Usage() string {
	return `sbd goals -category <name> [-month <YYYY-MM>] [-policy sequential|trend]

  Evaluates the month's realized revenue against the category's goal ladder,
  with the projection extrapolated over the remaining business days.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Goal category, usually a channel name.")
	f.StringVar(&c.month, "month", "", "Month to evaluate, YYYY-MM. Defaults to the current month.")
	f.StringVar(&c.policy, "policy", "sequential", "Attainment policy: sequential or trend.")
	f.StringVar(&c.ref, "ref", "", "Reference day for the business day counts. Defaults to today.")
	f.BoolVar(&c.includeToday, "include-today", false, "Count the reference day as remaining instead of elapsed.")
}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -category is required")
		return subcommands.ExitUsageError
	}
	policy, err := salesboard.ParseGoalPolicy(c.policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ref := date.Today()
	if c.ref != "" {
		if ref, err = date.Parse(c.ref); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -ref: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	month := ref
	if c.month != "" {
		if month, err = date.Parse(c.month + "-01"); err != nil {
			fmt.Fprintf(os.Stderr, "Error: -month must be YYYY-MM: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	params := []string{c.category, month.Format("2006-01"), policy.String(), ref.String(), fmt.Sprint(c.includeToday)}
	files := []string{*configFile, *transactionsFile, *holidaysFile}
	md, err := cached("goals", params, files, func() (string, error) {
		cfg, err := LoadConfig()
		if err != nil {
			return "", err
		}
		tiers, err := cfg.TiersFor(c.category, month.Month())
		if err != nil {
			return "", err
		}
		txs, err := DecodeTransactions(cfg.Reporting.Currency)
		if err != nil {
			return "", err
		}
		cal, err := DecodeCalendar()
		if err != nil {
			return "", err
		}

		rng := date.MonthOf(month)
		filter := cfg.Filter()
		filter.Range = rng
		kept := filter.Filter(txs)
		realized := salesboard.NewSalesSummary(kept, cfg.ChannelSet(), rng).ChannelTotal(c.category)

		elapsed := cal.BusinessDaysElapsed(month.Month(), ref, !c.includeToday)
		remaining := cal.BusinessDaysRemaining(month.Month(), ref, c.includeToday)

		report, err := salesboard.NewGoalReport(c.category, month.Month(), realized, tiers, elapsed, remaining, policy)
		if err != nil {
			return "", err
		}
		return renderer.GoalMarkdown(report), nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(md)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ngaspar/salesboard/date"
)

// businessdaysCmd holds the flags for the 'businessdays' subcommand.
type businessdaysCmd struct {
	ref          string
	includeToday bool
}

func (*businessdaysCmd) Name() string     { return "businessdays" }
func (*businessdaysCmd) Synopsis() string { return "count the month's business days" }
func (*businessdaysCmd) Usage() string {
	return `sbd businessdays [-ref <date>] [-include-today]

  Counts the elapsed and remaining business days of the reference day's
  month, honoring the holiday calendar. Weekends and listed holidays are
  never business days.
`
}

func (c *businessdaysCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ref, "ref", "", "Reference day, YYYY-MM-DD. Defaults to today.")
	f.BoolVar(&c.includeToday, "include-today", false, "Count the reference day as remaining instead of elapsed.")
}

func (c *businessdaysCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ref := date.Today()
	if c.ref != "" {
		var err error
		if ref, err = date.Parse(c.ref); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -ref: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	cal, err := DecodeCalendar()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	elapsed := cal.BusinessDaysElapsed(ref.Month(), ref, !c.includeToday)
	remaining := cal.BusinessDaysRemaining(ref.Month(), ref, c.includeToday)
	total := cal.BusinessDaysIn(ref.Year(), ref.Month())

	fmt.Printf("%s %d: %d business days, %d elapsed, %d remaining as of %s\n",
		ref.Month(), ref.Year(), total, elapsed, remaining, ref)
	return subcommands.ExitSuccess
}

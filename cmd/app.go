// Package cmd implements the CLI application to run the sales dashboard
// reports.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"
	"github.com/ngaspar/salesboard"
	"github.com/ngaspar/salesboard/date"
	"github.com/ngaspar/salesboard/store"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&salesCmd{},
	&goalsCmd{},
	&abcCmd{},
	&cashflowCmd{},
	&businessdaysCmd{},
	&importCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "salesboard.toml", "Path to the configuration file")
var transactionsFile = flag.String("transactions-file", "transactions.jsonl", "Path to the transaction table (JSONL format)")
var receivableFile = flag.String("receivable-file", "receivable.jsonl", "Path to the receivable ledger (JSONL format)")
var payableFile = flag.String("payable-file", "payable.jsonl", "Path to the payable ledger (JSONL format)")
var holidaysFile = flag.String("holidays-file", "holidays.jsonl", "Path to the holiday calendar (JSONL format)")
var cacheFile = flag.String("cache-file", ".salesboard/cache.db", "Path to the report cache database")
var noCache = flag.Bool("no-cache", false, "Recompute reports instead of serving them from the cache")

// LoadConfig reads the app configuration, falling back to the defaults when
// the file does not exist.
func LoadConfig() (salesboard.Config, error) {
	return salesboard.LoadConfig(*configFile)
}

// DecodeTransactions decodes the app transaction table. A missing file is an
// empty table.
func DecodeTransactions(currency string) ([]salesboard.Transaction, error) {
	f, err := os.Open(*transactionsFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not open transactions file %q: %w", *transactionsFile, err)
	}
	defer f.Close()
	return salesboard.DecodeTransactions(f, currency)
}

// DecodeLedger decodes one side of the books. A missing file is an empty
// ledger.
func DecodeLedger(path, currency string) ([]salesboard.LedgerEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()
	return salesboard.DecodeLedgerEntries(f, currency)
}

// DecodeCalendar decodes the app holiday calendar. A missing file is a
// calendar without holidays.
func DecodeCalendar() (*date.Calendar, error) {
	f, err := os.Open(*holidaysFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return date.NewCalendar(), nil
		}
		return nil, fmt.Errorf("could not open holidays file %q: %w", *holidaysFile, err)
	}
	defer f.Close()
	return salesboard.DecodeHolidays(f)
}

// cached serves a report from the cache when its data files are untouched,
// otherwise computes and stores it. With -no-cache, or when the cache cannot
// be opened, it simply computes.
func cached(kind string, params []string, files []string, compute func() (string, error)) (string, error) {
	if *noCache {
		return compute()
	}
	cache, err := store.Open(*cacheFile)
	if err != nil {
		return compute()
	}
	defer cache.Close()

	key := store.Key(kind, params...)
	if fresh, _ := cache.Fresh(files...); fresh {
		if md, ok, _ := cache.GetReport(key); ok {
			return md, nil
		}
	}

	md, err := compute()
	if err != nil {
		return "", err
	}
	if err := cache.SaveReport(key, kind, md, files...); err != nil {
		// A broken cache never fails the report.
		return md, nil
	}
	return md, nil
}

// parseRangeFlags turns the -from and -to flags into a range, defaulting to
// the current month when both are empty.
func parseRangeFlags(from, to string) (date.Range, error) {
	if from == "" && to == "" {
		return date.MonthOf(date.Today()), nil
	}
	f, err := date.Parse(from)
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid -from date: %w", err)
	}
	t, err := date.Parse(to)
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid -to date: %w", err)
	}
	rng := date.Range{From: f, To: t}
	if !rng.IsValid() {
		return date.Range{}, fmt.Errorf("invalid range: %s after %s", from, to)
	}
	return rng, nil
}

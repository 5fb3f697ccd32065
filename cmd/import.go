package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ngaspar/salesboard"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	mappingFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import an ERP JSON export into the transaction table" }
func (*importCmd) Usage() string {
	return `sbd import [-mapping <file>] <export.json>

  Maps an ERP JSON export onto transactions with jsonpath expressions and
  appends them to the transaction table. The default mapping matches the
  historical ERP column names; see 'sbd topic import'.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mappingFile, "mapping", "", "JSON file with a custom jsonpath mapping.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one export file is required")
		return subcommands.ExitUsageError
	}

	mapping := salesboard.DefaultImportMapping()
	if c.mappingFile != "" {
		data, err := os.ReadFile(c.mappingFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading mapping file %q: %v\n", c.mappingFile, err)
			return subcommands.ExitFailure
		}
		if err := json.Unmarshal(data, &mapping); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing mapping file %q: %v\n", c.mappingFile, err)
			return subcommands.ExitFailure
		}
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	export, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export file %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	txs, err := salesboard.ImportTransactions(export, mapping, cfg.Reporting.Currency)
	export.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// Append so repeated imports accumulate; deduplication is the ERP's job.
	out, err := os.OpenFile(*transactionsFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening transactions file %q: %v\n", *transactionsFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := salesboard.EncodeTransactions(out, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to transactions file %q: %v\n", *transactionsFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %d transactions to %s\n", len(txs), *transactionsFile)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/ngaspar/salesboard"
	"github.com/ngaspar/salesboard/agent"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	opening float64
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `sbd assist [-opening <amount>] [initial question]

  Starts an interactive session with the AI assistant. A facilitator routes
  questions to the sales analyst, the treasurer and the market watcher;
  every figure comes from the engine.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.opening, "opening", 0, "Opening cash balance for treasury questions.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	data, err := loadDataset(c.opening)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading data:", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin,
		agent.NewAnalyst(data),
		agent.NewTreasurer(data),
		agent.NewMarketWatcher(),
	)
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// loadDataset loads everything the experts answer from.
func loadDataset(opening float64) (*agent.Dataset, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	currency := cfg.Reporting.Currency

	txs, err := DecodeTransactions(currency)
	if err != nil {
		return nil, err
	}
	receivable, err := DecodeLedger(*receivableFile, currency)
	if err != nil {
		return nil, err
	}
	payable, err := DecodeLedger(*payableFile, currency)
	if err != nil {
		return nil, err
	}
	cal, err := DecodeCalendar()
	if err != nil {
		return nil, err
	}

	return &agent.Dataset{
		Config:       cfg,
		Transactions: txs,
		Receivable:   receivable,
		Payable:      payable,
		Calendar:     cal,
		Opening:      salesboard.M(opening, currency),
	}, nil
}

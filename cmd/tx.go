package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"tradejournal"
	"tradejournal/renderer"
)

type txCmd struct {
	rangeFlags
	symbol string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the journal" }
func (*txCmd) Usage() string {
	return `tj tx [-p <period> | -s <start_date>] [-d <end_date>] [-sym <symbol>] [-head <n>] [-tail <n>]

  Lists transactions from the journal, with options for filtering and limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	p.rangeFlags.SetFlags(f)
	f.StringVar(&p.symbol, "sym", "", "Show only transactions for this symbol.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	periodRange, full, err := p.rangeFlags.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	filters := []tradejournal.Filter{}
	if !full {
		filters = append(filters, tradejournal.Within(periodRange))
	}
	if p.symbol != "" {
		filters = append(filters, tradejournal.BySymbol(strings.ToUpper(p.symbol)))
	}

	var transactions []tradejournal.Transaction
	for tx := range ledger.Transactions(filters...) {
		transactions = append(transactions, tx)
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.Transactions(transactions))

	return subcommands.ExitSuccess
}

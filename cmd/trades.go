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

type tradesCmd struct {
	rangeFlags
	symbol string
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "list closed trades" }
func (*tradesCmd) Usage() string {
	return `tj trades [-p <period> | -s <start_date>] [-d <end_date>] [-sym <symbol>]

  Lists the closed trades: each sell matched against its buy lots, with the
  realized P&L per pairing.
`
}

func (p *tradesCmd) SetFlags(f *flag.FlagSet) {
	p.rangeFlags.SetFlags(f)
	f.StringVar(&p.symbol, "sym", "", "Show only trades for this symbol.")
}

func (p *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report, err := tradejournal.Compute(ledger, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	periodRange, full, err := p.rangeFlags.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var trades []tradejournal.ClosedTrade
	for _, t := range report.Trades {
		if !full && !periodRange.Contains(tradejournal.DateOf(t.SellTime)) {
			continue
		}
		if p.symbol != "" && t.Symbol != strings.ToUpper(p.symbol) {
			continue
		}
		trades = append(trades, t)
	}

	printMarkdown(renderer.Trades(trades))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"tradejournal"
	"tradejournal/renderer"
)

type positionsCmd struct{}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "show open positions" }
func (*positionsCmd) Usage() string {
	return `tj positions

  Shows the open positions derived from the FIFO lots: quantity, weighted
  average buy price, total cost, and unrealized P&L for symbols with a
  known price (see 'tj quote').
`
}

func (*positionsCmd) SetFlags(f *flag.FlagSet) {}

func (p *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	market, err := DecodeMarketData(ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report, err := tradejournal.Compute(ledger, market)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Positions(report.Positions))
	return subcommands.ExitSuccess
}

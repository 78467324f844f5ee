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

type statsCmd struct {
	byStrategy bool
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "show performance statistics" }
func (*statsCmd) Usage() string {
	return `tj stats [-by-strategy]

  Shows the realized performance of the whole journal: P&L, win rate,
  profit factor, averages and extremes, plus the open position count.
`
}

func (p *statsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.byStrategy, "by-strategy", false, "Include the per-strategy breakdown.")
}

func (p *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var strategies []tradejournal.StrategyStats
	if p.byStrategy {
		strategies = report.Strategies
	}
	printMarkdown(renderer.Stats(report.Stats, strategies))
	return subcommands.ExitSuccess
}

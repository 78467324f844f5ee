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

type reviewCmd struct {
	rangeFlags
	skipTrades  bool
	skipEntries bool
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "review a period: stats, trades and journal entries" }
func (*reviewCmd) Usage() string {
	return `tj review [-p <period> | -s <start_date>] [-d <end_date>] [-skip-trades] [-skip-entries]

  Builds the period review document: performance over the period, the
  trades closed in it, and the journal entries written during it.

Usage Examples:
# Review the current week.
$ tj review -p week

`
}

func (p *reviewCmd) SetFlags(f *flag.FlagSet) {
	p.rangeFlags.SetFlags(f)
	f.BoolVar(&p.skipTrades, "skip-trades", false, "Do not render the closed trades section.")
	f.BoolVar(&p.skipEntries, "skip-entries", false, "Do not render the journal entries section.")
}

func (p *reviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if full {
		// Default the review to the current week.
		periodRange = tradejournal.Weekly.Range(tradejournal.Today())
	}

	report, err := tradejournal.Compute(ledger, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Narrow the report to the period: trades closed in it, stats over them.
	var trades []tradejournal.ClosedTrade
	for _, t := range report.Trades {
		if periodRange.Contains(tradejournal.DateOf(t.SellTime)) {
			trades = append(trades, t)
		}
	}
	periodReport := &tradejournal.Report{
		Positions:  report.Positions,
		Trades:     trades,
		Stats:      tradejournal.StatsOf(trades, ledger.Capital(), len(report.Positions)),
		Strategies: report.Strategies,
	}

	allEntries, err := tradejournal.LoadEntries(entriesPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var entries []tradejournal.Entry
	for _, e := range allEntries {
		if periodRange.Contains(e.Date()) {
			entries = append(entries, e)
		}
	}

	review := renderer.NewReview(periodRange, periodReport, entries)
	printMarkdown(renderer.RenderReview(review, renderer.ReviewRenderOptions{
		SkipTrades:  p.skipTrades,
		SkipEntries: p.skipEntries,
	}))
	return subcommands.ExitSuccess
}

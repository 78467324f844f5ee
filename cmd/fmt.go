package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"tradejournal"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the journal files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `tj fmt

  Validates and formats the journal files. This command reads all
  transactions, validates them, replays the lot matching to catch
  oversells, sorts everything by time then id, and writes the files back
  in a canonical JSONL format.

Usage Examples:
# Rewrites the journal files in place.
$ tj fmt

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	formatted, err := ledger.Fmt()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := tradejournal.SaveLedger(ledgerPath(), formatted); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	// Plans and strategies round-trip through their canonical encoders too.
	if plans, err := tradejournal.LoadPlans(plansPath()); err == nil && plans != nil {
		if err := tradejournal.SavePlans(plansPath(), plans); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving plans: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if book, err := tradejournal.LoadStrategies(strategiesPath()); err == nil && book.Len() > 0 {
		if err := tradejournal.SaveStrategies(strategiesPath(), book); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving strategies: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Fprintf(os.Stderr, "Formatted journal in %q.\n", *journalDir)
	return subcommands.ExitSuccess
}

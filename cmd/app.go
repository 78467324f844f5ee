// Package cmd implements the CLI application to manage a trading journal.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"tradejournal"
	"tradejournal/renderer"
)

// Commands is the list of all subcommands, in the order they show in help.
// A main package registers them on a commander and executes the selected one.
var Commands = []subcommands.Command{
	&initCmd{},
	&buyCmd{},
	&sellCmd{},
	&txCmd{},
	&positionsCmd{},
	&tradesCmd{},
	&statsCmd{},
	&reviewCmd{},
	&noteCmd{},
	&strategyCmd{},
	&planCmd{},
	&quoteCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var journalDir = flag.String("journal-dir", defaultJournalDir(), "Path to the journal folder (env TRADEJOURNAL_DIR)")

func defaultJournalDir() string {
	if dir := os.Getenv("TRADEJOURNAL_DIR"); dir != "" {
		return dir
	}
	return "."
}

func ledgerPath() string     { return filepath.Join(*journalDir, tradejournal.LedgerFile) }
func entriesPath() string    { return filepath.Join(*journalDir, tradejournal.EntriesFile) }
func strategiesPath() string { return filepath.Join(*journalDir, tradejournal.StrategiesFile) }
func plansPath() string      { return filepath.Join(*journalDir, tradejournal.PlansFile) }
func pricesPath() string     { return filepath.Join(*journalDir, tradejournal.PricesFile) }

// DecodeLedger loads the journal ledger. A missing file is an empty journal.
func DecodeLedger() (*tradejournal.Ledger, error) {
	ledger, err := tradejournal.LoadLedger(ledgerPath())
	if errors.Is(err, fs.ErrNotExist) {
		return tradejournal.NewLedger(), nil
	}
	return ledger, err
}

// DecodeMarketData loads the price database in the journal's currency.
func DecodeMarketData(ledger *tradejournal.Ledger) (*tradejournal.MarketData, error) {
	return tradejournal.LoadMarketData(pricesPath(), ledger.Currency())
}

// EncodeTransaction validates a transaction against the current ledger (an
// oversell is rejected here, before anything is written) and appends it to
// the ledger file.
func EncodeTransaction(tx tradejournal.Transaction) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.Append(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if _, _, err := ledger.MatchLots(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	f, err := os.OpenFile(ledgerPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", ledgerPath(), err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := tradejournal.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", ledgerPath(), err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded: %s\n", renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

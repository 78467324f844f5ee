package tradejournal

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// The journal folder layout. Everything is JSONL and git-friendly.
const (
	LedgerFile     = "transactions.jsonl"
	EntriesFile    = "entries.jsonl"
	StrategiesFile = "strategies.jsonl"
	PlansFile      = "plans.jsonl"
	PricesFile     = "prices.jsonl"
)

// Journal bundles everything stored in a journal directory.
type Journal struct {
	Dir        string
	Ledger     *Ledger
	Market     *MarketData
	Entries    []Entry
	Strategies *Strategies
	Plans      []Plan
}

// LoadJournal reads all journal files from dir. Missing files load as
// empty, a directory with no journal yet is a valid empty journal.
func LoadJournal(dir string) (*Journal, error) {
	j := &Journal{Dir: dir}

	ledger, err := LoadLedger(filepath.Join(dir, LedgerFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load ledger: %w", err)
		}
		ledger = NewLedger()
	}
	j.Ledger = ledger

	if j.Market, err = LoadMarketData(filepath.Join(dir, PricesFile), ledger.Currency()); err != nil {
		return nil, fmt.Errorf("could not load prices: %w", err)
	}
	if j.Entries, err = LoadEntries(filepath.Join(dir, EntriesFile)); err != nil {
		return nil, fmt.Errorf("could not load entries: %w", err)
	}
	if j.Strategies, err = LoadStrategies(filepath.Join(dir, StrategiesFile)); err != nil {
		return nil, fmt.Errorf("could not load strategies: %w", err)
	}
	if j.Plans, err = LoadPlans(filepath.Join(dir, PlansFile)); err != nil {
		return nil, fmt.Errorf("could not load plans: %w", err)
	}
	return j, nil
}

// Report computes the full report of the journal's ledger at current
// market prices.
func (j *Journal) Report() (*Report, error) {
	return Compute(j.Ledger, j.Market)
}

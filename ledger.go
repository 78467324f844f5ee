package tradejournal

import (
	"iter"
	"slices"
	"sort"
)

// Ledger represents the list of journal transactions.
//
// In a Ledger transactions are always in deterministic order: time
// ascending, ties broken by id, so identical inputs produce identical
// reports.
type Ledger struct {
	name         string
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Name returns the ledger's name (usually the file base name).
func (l *Ledger) Name() string { return l.name }

// SetName sets the ledger's name.
func (l *Ledger) SetName(name string) { l.name = name }

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append validates and inserts transactions, keeping the ledger sorted.
func (l *Ledger) Append(txs ...Transaction) error {
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return err
		}
		l.transactions = append(l.transactions, tx)
	}
	l.stableSort()
	return nil
}

// stableSort sorts transactions by time then id.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Less(l.transactions[j])
	})
}

// Filter is a predicate to select transactions during iteration.
type Filter func(Transaction) bool

// AcceptAll accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// BySymbol accepts transactions for the given symbol.
func BySymbol(symbol string) Filter {
	return func(t Transaction) bool { return t.Symbol == symbol }
}

// Within accepts transactions whose date falls inside the range.
func Within(r Range) Filter {
	return func(t Transaction) bool { return r.Contains(t.Date()) }
}

// Transactions returns an iterator over transactions matching all filters,
// in ledger order.
func (l *Ledger) Transactions(filters ...Filter) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
	next:
		for _, tx := range l.transactions {
			for _, accept := range filters {
				if !accept(tx) {
					continue next
				}
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// Symbols returns the sorted set of symbols traded in the ledger.
func (l *Ledger) Symbols() []string {
	var symbols []string
	for _, tx := range l.transactions {
		if tx.Symbol == "" {
			continue
		}
		if !slices.Contains(symbols, tx.Symbol) {
			symbols = append(symbols, tx.Symbol)
		}
	}
	slices.Sort(symbols)
	return symbols
}

// Capital returns the starting capital declared by the latest init record,
// or a zero Money when the journal has none.
func (l *Ledger) Capital() Money {
	var capital Money
	for _, tx := range l.transactions {
		if tx.Kind == KindInit {
			capital = tx.Price
		}
	}
	return capital
}

// Currency returns the journal currency, taken from the first transaction
// carrying one.
func (l *Ledger) Currency() string {
	for _, tx := range l.transactions {
		if c := tx.Price.Currency(); c != "" {
			return c
		}
	}
	return ""
}

// Get returns the transaction with the given id.
func (l *Ledger) Get(id string) (Transaction, bool) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Fmt re-validates and re-sorts the ledger and returns its canonical form.
// It also replays the lot matching, so a ledger that oversells somewhere in
// the middle is caught before being rewritten.
func (l *Ledger) Fmt() (*Ledger, error) {
	canonical := NewLedger()
	canonical.name = l.name
	if err := canonical.Append(l.transactions...); err != nil {
		return nil, err
	}
	if _, _, err := canonical.MatchLots(); err != nil {
		return nil, err
	}
	return canonical, nil
}

package tradejournal

import "time"

// USD is a helper for tests to create dollar money from a const.
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for tests to create money with no currency set.
func NO(v float64) Money { return M(v, "") }

// at parses a test timestamp, panicking on bad input.
func at(s string) time.Time {
	t, err := ParseTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

// testLedger builds a sorted ledger, panicking on invalid transactions.
func testLedger(txs ...Transaction) *Ledger {
	l := NewLedger()
	if err := l.Append(txs...); err != nil {
		panic(err)
	}
	return l
}

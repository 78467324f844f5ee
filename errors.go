package tradejournal

import "fmt"

// InvalidTransactionError reports a transaction that fails validation.
// Use errors.As to distinguish it from I/O errors.
type InvalidTransactionError struct {
	ID     string
	Kind   Kind
	Reason string
}

func (e *InvalidTransactionError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("invalid %s transaction: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("invalid %s transaction %s: %s", e.Kind, e.ID, e.Reason)
}

// OversellError reports a sell that exceeds the open quantity for its symbol
// at the time it executes. The sell is rejected whole; no partial matching
// is applied.
type OversellError struct {
	Symbol        string
	TransactionID string
	Requested     Quantity
	Available     Quantity
}

func (e *OversellError) Error() string {
	return fmt.Sprintf("cannot sell %s %s: only %s held (transaction %s)",
		e.Requested, e.Symbol, e.Available, e.TransactionID)
}

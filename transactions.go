package tradejournal

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind is a typed string identifying the transaction record kind.
type Kind string

const (
	KindInit Kind = "init" // declares the journal's starting capital
	KindBuy  Kind = "buy"
	KindSell Kind = "sell"
)

// Transaction is a single journal record: an executed buy or sell, or the
// init record carrying the starting capital.
type Transaction struct {
	ID       string    // unique identifier, assigned at creation
	Kind     Kind      // init, buy or sell
	Time     time.Time // execution timestamp, UTC
	Symbol   string    // ticker, empty for init
	Quantity Quantity  // shares, positive for buy/sell
	Price    Money     // per-share price; for init, the starting capital
	Fees     Money     // total fees for the transaction, zero or more
	Strategy string    // optional strategy name this trade followed
	Note     string    // optional free-form memo
}

// NewBuy creates a new buy transaction with a fresh id.
func NewBuy(at time.Time, symbol string, quantity Quantity, price, fees Money) Transaction {
	return Transaction{
		ID:       uuid.NewString(),
		Kind:     KindBuy,
		Time:     at.UTC(),
		Symbol:   strings.ToUpper(strings.TrimSpace(symbol)),
		Quantity: quantity,
		Price:    price,
		Fees:     fees,
	}
}

// NewSell creates a new sell transaction with a fresh id.
func NewSell(at time.Time, symbol string, quantity Quantity, price, fees Money) Transaction {
	t := NewBuy(at, symbol, quantity, price, fees)
	t.Kind = KindSell
	return t
}

// NewInit creates the init record declaring the starting capital.
func NewInit(at time.Time, capital Money) Transaction {
	return Transaction{
		ID:    uuid.NewString(),
		Kind:  KindInit,
		Time:  at.UTC(),
		Price: capital,
	}
}

// Date returns the day the transaction falls on, for period filtering.
func (t Transaction) Date() Date { return DateOf(t.Time) }

// Amount returns quantity times price, the traded value before fees.
func (t Transaction) Amount() Money { return t.Price.Mul(t.Quantity) }

// Equal reports whether two transactions are the same record.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Kind == o.Kind &&
		t.Time.Equal(o.Time) &&
		t.Symbol == o.Symbol &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.Fees.Equal(o.Fees) &&
		t.Strategy == o.Strategy &&
		t.Note == o.Note
}

// Less orders transactions by time, ties broken by id. This ordering is the
// single source of determinism for matching and reporting.
func (t Transaction) Less(o Transaction) bool {
	if !t.Time.Equal(o.Time) {
		return t.Time.Before(o.Time)
	}
	return t.ID < o.ID
}

// Validate checks the transaction fields and returns a typed
// *InvalidTransactionError describing the first problem found.
// Validation never mutates amounts.
func (t Transaction) Validate() error {
	fail := func(reason string) error {
		return &InvalidTransactionError{ID: t.ID, Kind: t.Kind, Reason: reason}
	}
	if t.ID == "" {
		return fail("missing id")
	}
	if t.Time.IsZero() {
		return fail("missing timestamp")
	}
	switch t.Kind {
	case KindInit:
		if t.Price.IsNegative() {
			return fail(fmt.Sprintf("starting capital must not be negative, got %s", t.Price))
		}
		return nil
	case KindBuy, KindSell:
		if t.Symbol == "" {
			return fail("missing symbol")
		}
		if !t.Quantity.IsPositive() {
			return fail(fmt.Sprintf("quantity must be positive, got %s", t.Quantity))
		}
		if !t.Price.IsPositive() {
			return fail(fmt.Sprintf("price must be positive, got %s", t.Price))
		}
		if t.Fees.IsNegative() {
			return fail(fmt.Sprintf("fees must not be negative, got %s", t.Fees))
		}
		return nil
	default:
		return fail(fmt.Sprintf("unknown kind %q", t.Kind))
	}
}

// MarshalJSON implements the json.Marshaler interface with a stable key
// order, so that the JSONL files diff cleanly under version control.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", t.Kind)
	w.Append("id", t.ID)
	w.Append("time", t.Time.UTC().Format(TimeFormat))
	w.Optional("symbol", t.Symbol)
	if t.Kind != KindInit {
		w.Append("quantity", t.Quantity)
	}
	w.EmbedFrom(priceField{t.Price})
	if !t.Fees.IsZero() {
		w.EmbedFrom(feesField{t.Fees})
	}
	w.Optional("strategy", t.Strategy)
	w.Optional("note", t.Note)
	return w.MarshalJSON()
}

// priceField and feesField name the Money sub-objects in the JSON encoding.
type priceField struct{ Price Money }

func (p priceField) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("price", p.Price.value)
	w.Optional("currency", p.Price.cur)
	return w.MarshalJSON()
}

type feesField struct{ Fees Money }

func (p feesField) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("fees", p.Fees.value)
	return w.MarshalJSON()
}

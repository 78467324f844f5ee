package tradejournal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// txRecord is a specialized struct for decoding a transaction line; the
// wire format spreads Money over value and currency fields.
type txRecord struct {
	Kind     Kind            `json:"kind"`
	ID       string          `json:"id"`
	Time     string          `json:"time"`
	Symbol   string          `json:"symbol"`
	Quantity Quantity        `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Fees     decimal.Decimal `json:"fees"`
	Currency string          `json:"currency"`
	Strategy string          `json:"strategy"`
	Note     string          `json:"note"`
}

func (r txRecord) transaction() (Transaction, error) {
	at, err := time.Parse(TimeFormat, r.Time)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid time %q: %w", r.Time, err)
	}
	return Transaction{
		ID:       r.ID,
		Kind:     r.Kind,
		Time:     at.UTC(),
		Symbol:   r.Symbol,
		Quantity: r.Quantity,
		Price:    M(r.Price, r.Currency),
		Fees:     M(r.Fees, r.Currency),
		Strategy: r.Strategy,
		Note:     r.Note,
	}, nil
}

// DecodeLedger reads a stream of JSONL transaction lines and returns a
// sorted Ledger. Empty lines are skipped.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var rec txRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("line %d: could not decode transaction %q: %w", line, string(lineBytes), err)
		}
		tx, err := rec.transaction()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := ledger.Append(tx); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// EncodeTransaction writes a single transaction as one JSONL line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	b, err := json.Marshal(tx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// EncodeLedger writes the whole ledger in canonical JSONL form.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, tx := range l.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// LoadLedger reads a ledger from a JSONL file. The ledger's name is the file
// base name without extension.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("in %s: %w", path, err)
	}
	ledger.SetName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	return ledger, nil
}

// SaveLedger writes the ledger to its JSONL file, going through a temporary
// file and a rename so a failed write never truncates the journal.
func SaveLedger(path string, l *Ledger) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".ledger-*.jsonl")
	if err != nil {
		return err
	}
	if err := EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

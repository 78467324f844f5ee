package tradejournal

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestLedger_EncodeDecodeRoundTrip(t *testing.T) {
	buy := NewBuy(at("2025-01-10T14:30:00Z"), "AAPL", Q(10.5), USD(150.25), USD(1.1))
	buy.Strategy = "pullback"
	buy.Note = "gap fill"
	l := testLedger(
		NewInit(at("2025-01-01"), USD(10000)),
		buy,
		NewSell(at("2025-02-01"), "AAPL", Q(10.5), USD(170), USD(1)),
	)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Len() != l.Len() {
		t.Fatalf("got %d transactions, want %d", decoded.Len(), l.Len())
	}
	for tx := range l.Transactions() {
		got, found := decoded.Get(tx.ID)
		if !found {
			t.Fatalf("transaction %s lost in round trip", tx.ID)
		}
		if !got.Equal(tx) {
			t.Errorf("round trip changed the transaction:\ngot  %+v\nwant %+v", got, tx)
		}
	}
}

func TestDecodeLedger_SortsFileOrder(t *testing.T) {
	// Lines out of time order still load into a sorted ledger.
	jsonl := `{"kind":"sell","id":"s","time":"2025-02-01T00:00:00Z","symbol":"AAPL","quantity":1,"price":110,"currency":"USD"}
{"kind":"buy","id":"b","time":"2025-01-10T00:00:00Z","symbol":"AAPL","quantity":1,"price":100,"currency":"USD"}
`
	l, err := DecodeLedger(strings.NewReader(jsonl))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	var ids []string
	for tx := range l.Transactions() {
		ids = append(ids, tx.ID)
	}
	if ids[0] != "b" || ids[1] != "s" {
		t.Errorf("ledger order: got %v, want [b s]", ids)
	}

	if _, _, err := l.MatchLots(); err != nil {
		t.Errorf("sorted replay must match, got %v", err)
	}
}

func TestDecodeLedger_ReportsLine(t *testing.T) {
	jsonl := `{"kind":"buy","id":"b","time":"2025-01-10T00:00:00Z","symbol":"AAPL","quantity":1,"price":100}
not json
`
	_, err := DecodeLedger(strings.NewReader(jsonl))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("decode error must name the line, got %v", err)
	}
}

func TestDecodeLedger_SkipsEmptyLines(t *testing.T) {
	jsonl := `{"kind":"buy","id":"b","time":"2025-01-10T00:00:00Z","symbol":"AAPL","quantity":1,"price":100}

`
	l, err := DecodeLedger(strings.NewReader(jsonl))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if l.Len() != 1 {
		t.Errorf("got %d transactions, want 1", l.Len())
	}
}

func TestSaveLoadLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.jsonl")
	l := testLedger(NewBuy(at("2025-01-10"), "AAPL", Q(1), USD(100), NO(0)))

	if err := SaveLedger(path, l); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadLedger(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Name() != "transactions" {
		t.Errorf("ledger name: got %q, want transactions", loaded.Name())
	}
	if loaded.Len() != 1 {
		t.Errorf("got %d transactions, want 1", loaded.Len())
	}
}

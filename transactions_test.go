package tradejournal

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestTransaction_Validate(t *testing.T) {
	valid := NewBuy(at("2025-01-10"), "AAPL", Q(10), USD(150), USD(1))

	testCases := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr bool
	}{
		{name: "valid buy", mutate: func(*Transaction) {}},
		{name: "missing id", mutate: func(tx *Transaction) { tx.ID = "" }, wantErr: true},
		{name: "missing timestamp", mutate: func(tx *Transaction) { tx.Time = time.Time{} }, wantErr: true},
		{name: "missing symbol", mutate: func(tx *Transaction) { tx.Symbol = "" }, wantErr: true},
		{name: "zero quantity", mutate: func(tx *Transaction) { tx.Quantity = Q(0) }, wantErr: true},
		{name: "negative quantity", mutate: func(tx *Transaction) { tx.Quantity = Q(-1) }, wantErr: true},
		{name: "zero price", mutate: func(tx *Transaction) { tx.Price = NO(0) }, wantErr: true},
		{name: "negative fees", mutate: func(tx *Transaction) { tx.Fees = USD(-1) }, wantErr: true},
		{name: "unknown kind", mutate: func(tx *Transaction) { tx.Kind = "dividend" }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := valid
			tc.mutate(&tx)
			err := tx.Validate()
			if tc.wantErr {
				var invalid *InvalidTransactionError
				if !errors.As(err, &invalid) {
					t.Fatalf("got %v, want *InvalidTransactionError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestTransaction_ValidateInit(t *testing.T) {
	if err := NewInit(at("2025-01-01"), USD(0)).Validate(); err != nil {
		t.Errorf("zero starting capital is valid, got %v", err)
	}
	if err := NewInit(at("2025-01-01"), USD(-1)).Validate(); err == nil {
		t.Error("negative starting capital must fail validation")
	}
}

func TestTransaction_Less(t *testing.T) {
	early := Transaction{ID: "z", Time: at("2025-01-10")}
	late := Transaction{ID: "a", Time: at("2025-01-11")}
	if !early.Less(late) || late.Less(early) {
		t.Error("time must order before id")
	}

	tieA := Transaction{ID: "a", Time: at("2025-01-10")}
	tieB := Transaction{ID: "b", Time: at("2025-01-10")}
	if !tieA.Less(tieB) || tieB.Less(tieA) {
		t.Error("equal times must fall back to id order")
	}
}

func TestNewBuy_NormalizesSymbol(t *testing.T) {
	tx := NewBuy(at("2025-01-10"), " aapl ", Q(1), USD(100), NO(0))
	if tx.Symbol != "AAPL" {
		t.Errorf("symbol: got %q, want %q", tx.Symbol, "AAPL")
	}
	if tx.ID == "" {
		t.Error("a new transaction must get an id")
	}
}

func TestTransaction_Amount(t *testing.T) {
	tx := NewBuy(at("2025-01-10"), "AAPL", Q(10), USD(150.5), NO(0))
	if want := USD(1505); !tx.Amount().Equal(want) {
		t.Errorf("amount: got %s, want %s", tx.Amount(), want)
	}
}

func TestTransaction_MarshalOrder(t *testing.T) {
	tx := Transaction{
		ID:       "t1",
		Kind:     KindBuy,
		Time:     at("2025-01-10"),
		Symbol:   "AAPL",
		Quantity: Q(10),
		Price:    USD(150.5),
		Fees:     USD(1),
	}
	b, err := json.Marshal(tx)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"buy","id":"t1","time":"2025-01-10T00:00:00Z","symbol":"AAPL","quantity":10,"price":150.5,"currency":"USD","fees":1}`
	if string(b) != want {
		t.Errorf("got  %s\nwant %s", b, want)
	}
}

func TestTransaction_MarshalInit(t *testing.T) {
	tx := Transaction{ID: "i1", Kind: KindInit, Time: at("2025-01-01"), Price: USD(10000)}
	b, err := json.Marshal(tx)
	if err != nil {
		t.Fatal(err)
	}
	// No symbol, no quantity: the init line carries only the capital.
	want := `{"kind":"init","id":"i1","time":"2025-01-01T00:00:00Z","price":10000,"currency":"USD"}`
	if string(b) != want {
		t.Errorf("got  %s\nwant %s", b, want)
	}
}

func TestTransaction_MarshalOptionalFields(t *testing.T) {
	tx := Transaction{
		ID:       "t2",
		Kind:     KindSell,
		Time:     at("2025-02-01"),
		Symbol:   "AAPL",
		Quantity: Q(5),
		Price:    USD(170),
		Strategy: "pullback",
		Note:     "first target",
	}
	b, err := json.Marshal(tx)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"sell","id":"t2","time":"2025-02-01T00:00:00Z","symbol":"AAPL","quantity":5,"price":170,"currency":"USD","strategy":"pullback","note":"first target"}`
	if string(b) != want {
		t.Errorf("got  %s\nwant %s", b, want)
	}
}

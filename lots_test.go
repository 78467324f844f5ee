package tradejournal

import (
	"errors"
	"testing"
)

func TestMatchLots_RoundTrip(t *testing.T) {
	l := testLedger(
		NewBuy(at("2025-01-10"), "AAPL", Q(10), USD(150), USD(1)),
		NewSell(at("2025-02-01"), "AAPL", Q(10), USD(170), USD(1)),
	)

	closed, open, err := l.MatchLots()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(closed) != 1 {
		t.Fatalf("got %d closed trades, want 1", len(closed))
	}
	if len(open) != 0 {
		t.Fatalf("got %d open lots, want 0", len(open))
	}

	trade := closed[0]
	if !trade.Quantity.Equal(Q(10)) {
		t.Errorf("quantity: got %s, want 10", trade.Quantity)
	}
	// 10 * (170-150) - (1 + 1) = 198
	if want := USD(198); !trade.RealizedPnL.Equal(want) {
		t.Errorf("realized pnl: got %s, want %s", trade.RealizedPnL, want)
	}
	// 198 / 1500 * 100
	if want := Percent(13.2); !trade.RealizedPnLPercent.Equal(want) {
		t.Errorf("realized pnl percent: got %s, want %s", trade.RealizedPnLPercent, want)
	}
}

func TestMatchLots_PartialFillLeavesRemainder(t *testing.T) {
	buy := NewBuy(at("2025-01-10"), "AAPL", Q(10), USD(100), NO(0))
	l := testLedger(
		buy,
		NewSell(at("2025-02-01"), "AAPL", Q(4), USD(120), NO(0)),
	)

	closed, open, err := l.MatchLots()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(closed) != 1 || len(open) != 1 {
		t.Fatalf("got %d closed, %d open, want 1 and 1", len(closed), len(open))
	}
	if !closed[0].Quantity.Equal(Q(4)) {
		t.Errorf("closed quantity: got %s, want 4", closed[0].Quantity)
	}

	lot := open[0]
	if lot.BuyID != buy.ID {
		t.Errorf("open lot buy id: got %s, want %s", lot.BuyID, buy.ID)
	}
	if !lot.Quantity.Equal(Q(6)) {
		t.Errorf("open lot quantity: got %s, want 6", lot.Quantity)
	}
	if !lot.Original.Equal(Q(10)) {
		t.Errorf("open lot original: got %s, want 10", lot.Original)
	}
}

func TestMatchLots_SellSpansLots(t *testing.T) {
	first := NewBuy(at("2025-01-10"), "AAPL", Q(10), USD(100), USD(2))
	second := NewBuy(at("2025-02-10"), "AAPL", Q(10), USD(110), NO(0))
	l := testLedger(
		first,
		second,
		NewSell(at("2025-03-01"), "AAPL", Q(15), USD(120), USD(3)),
	)

	closed, open, err := l.MatchLots()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(closed) != 2 {
		t.Fatalf("got %d closed trades, want 2", len(closed))
	}

	// The oldest lot closes first and whole.
	if closed[0].BuyID != first.ID {
		t.Errorf("first trade closes lot %s, want the oldest %s", closed[0].BuyID, first.ID)
	}
	if !closed[0].Quantity.Equal(Q(10)) {
		t.Errorf("first trade quantity: got %s, want 10", closed[0].Quantity)
	}
	// fees: whole buy (2) + 10/15 of the sell (2); pnl: 10*(120-100) - 4
	if want := USD(4); !closed[0].Fees.Equal(want) {
		t.Errorf("first trade fees: got %s, want %s", closed[0].Fees, want)
	}
	if want := USD(196); !closed[0].RealizedPnL.Equal(want) {
		t.Errorf("first trade pnl: got %s, want %s", closed[0].RealizedPnL, want)
	}

	// The second lot covers the remaining 5 shares.
	if closed[1].BuyID != second.ID {
		t.Errorf("second trade closes lot %s, want %s", closed[1].BuyID, second.ID)
	}
	if !closed[1].Quantity.Equal(Q(5)) {
		t.Errorf("second trade quantity: got %s, want 5", closed[1].Quantity)
	}
	// fees: 5/15 of the sell (1); pnl: 5*(120-110) - 1
	if want := USD(49); !closed[1].RealizedPnL.Equal(want) {
		t.Errorf("second trade pnl: got %s, want %s", closed[1].RealizedPnL, want)
	}

	if len(open) != 1 || !open[0].Quantity.Equal(Q(5)) {
		t.Fatalf("open lots: got %v, want one lot of 5 shares", open)
	}
}

func TestMatchLots_FeeConservation(t *testing.T) {
	// The buy's fees spread over the sells that consume the lot, and add
	// back up to the original amount.
	l := testLedger(
		NewBuy(at("2025-01-10"), "AAPL", Q(10), USD(100), USD(10)),
		NewSell(at("2025-02-01"), "AAPL", Q(4), USD(110), NO(0)),
		NewSell(at("2025-03-01"), "AAPL", Q(6), USD(110), NO(0)),
	)

	closed, _, err := l.MatchLots()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(closed) != 2 {
		t.Fatalf("got %d closed trades, want 2", len(closed))
	}
	if want := USD(4); !closed[0].Fees.Equal(want) {
		t.Errorf("first trade fees: got %s, want %s", closed[0].Fees, want)
	}
	if want := USD(6); !closed[1].Fees.Equal(want) {
		t.Errorf("second trade fees: got %s, want %s", closed[1].Fees, want)
	}
	total := closed[0].Fees.Add(closed[1].Fees)
	if want := USD(10); !total.Equal(want) {
		t.Errorf("total fees: got %s, want %s", total, want)
	}
}

func TestMatchLots_Oversell(t *testing.T) {
	sell := NewSell(at("2025-02-01"), "AAPL", Q(15), USD(120), NO(0))
	l := testLedger(
		NewBuy(at("2025-01-10"), "AAPL", Q(10), USD(100), NO(0)),
		sell,
	)

	closed, open, err := l.MatchLots()
	if err == nil {
		t.Fatal("expected an oversell error")
	}
	var oversell *OversellError
	if !errors.As(err, &oversell) {
		t.Fatalf("got %T, want *OversellError", err)
	}
	if oversell.Symbol != "AAPL" || oversell.TransactionID != sell.ID {
		t.Errorf("oversell names %s/%s, want AAPL/%s", oversell.Symbol, oversell.TransactionID, sell.ID)
	}
	if !oversell.Requested.Equal(Q(15)) || !oversell.Available.Equal(Q(10)) {
		t.Errorf("oversell quantities: requested %s available %s, want 15 and 10", oversell.Requested, oversell.Available)
	}
	if closed != nil || open != nil {
		t.Error("a failed matching must not return partial results")
	}
}

func TestMatchLots_OversellAcrossSymbols(t *testing.T) {
	// Shares of another symbol must not cover a sell.
	l := testLedger(
		NewBuy(at("2025-01-10"), "GOOG", Q(100), USD(100), NO(0)),
		NewBuy(at("2025-01-11"), "AAPL", Q(5), USD(100), NO(0)),
		NewSell(at("2025-02-01"), "AAPL", Q(10), USD(120), NO(0)),
	)

	_, _, err := l.MatchLots()
	var oversell *OversellError
	if !errors.As(err, &oversell) {
		t.Fatalf("got %v, want *OversellError", err)
	}
	if oversell.Symbol != "AAPL" {
		t.Errorf("oversell symbol: got %s, want AAPL", oversell.Symbol)
	}
}

func TestMatchLots_DecimalQuantities(t *testing.T) {
	l := testLedger(
		NewBuy(at("2025-01-10"), "AAPL", Q(2.5), USD(100), NO(0)),
		NewSell(at("2025-02-01"), "AAPL", Q(1.25), USD(110), NO(0)),
	)

	closed, open, err := l.MatchLots()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !closed[0].Quantity.Equal(Q(1.25)) {
		t.Errorf("closed quantity: got %s, want 1.25", closed[0].Quantity)
	}
	// 1.25 * 10
	if want := USD(12.5); !closed[0].RealizedPnL.Equal(want) {
		t.Errorf("realized pnl: got %s, want %s", closed[0].RealizedPnL, want)
	}
	if !open[0].Quantity.Equal(Q(1.25)) {
		t.Errorf("open quantity: got %s, want 1.25", open[0].Quantity)
	}
}

func TestMatchLots_SameInstantOrderedByID(t *testing.T) {
	when := at("2025-01-10T10:00:00Z")
	a := Transaction{ID: "a", Kind: KindBuy, Time: when, Symbol: "AAPL", Quantity: Q(1), Price: USD(100)}
	b := Transaction{ID: "b", Kind: KindBuy, Time: when, Symbol: "AAPL", Quantity: Q(1), Price: USD(200)}
	sell := Transaction{ID: "s", Kind: KindSell, Time: at("2025-02-01"), Symbol: "AAPL", Quantity: Q(1), Price: USD(150)}

	// Same instant: the id breaks the tie, whatever the append order.
	l := testLedger(b, sell, a)

	closed, _, err := l.MatchLots()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closed[0].BuyID != "a" {
		t.Errorf("matched against lot %s, want the id-ordered first lot a", closed[0].BuyID)
	}
}

func TestMatchLots_StrategyResolution(t *testing.T) {
	buy := NewBuy(at("2025-01-10"), "AAPL", Q(2), USD(100), NO(0))
	buy.Strategy = "pullback"
	plain := NewSell(at("2025-02-01"), "AAPL", Q(1), USD(110), NO(0))
	tagged := NewSell(at("2025-03-01"), "AAPL", Q(1), USD(110), NO(0))
	tagged.Strategy = "exit-rule"

	l := testLedger(buy, plain, tagged)
	closed, _, err := l.MatchLots()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := closed[0].Strategy; got != "pullback" {
		t.Errorf("untagged sell inherits the buy's strategy: got %q, want %q", got, "pullback")
	}
	if got := closed[1].Strategy; got != "exit-rule" {
		t.Errorf("tagged sell keeps its own strategy: got %q, want %q", got, "exit-rule")
	}
}

func TestMatchLots_InitIsIgnored(t *testing.T) {
	l := testLedger(
		NewInit(at("2025-01-01"), USD(10000)),
		NewBuy(at("2025-01-10"), "AAPL", Q(10), USD(100), NO(0)),
	)

	closed, open, err := l.MatchLots()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(closed) != 0 || len(open) != 1 {
		t.Errorf("got %d closed, %d open, want 0 and 1", len(closed), len(open))
	}
}

func TestMatchLots_OpenLotsSorted(t *testing.T) {
	l := testLedger(
		NewBuy(at("2025-02-10"), "NVDA", Q(1), USD(100), NO(0)),
		NewBuy(at("2025-01-10"), "AAPL", Q(1), USD(100), NO(0)),
		NewBuy(at("2025-03-10"), "AAPL", Q(1), USD(110), NO(0)),
	)

	_, open, err := l.MatchLots()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []string
	for _, lot := range open {
		got = append(got, lot.Symbol)
	}
	want := []string{"AAPL", "AAPL", "NVDA"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("open lots order: got %v, want %v", got, want)
		}
	}
	if open[0].Time.After(open[1].Time) {
		t.Error("lots of a symbol must stay in buy order")
	}
}

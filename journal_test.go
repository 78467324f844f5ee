package tradejournal

import (
	"path/filepath"
	"testing"
)

func TestLoadJournal_EmptyDir(t *testing.T) {
	j, err := LoadJournal(t.TempDir())
	if err != nil {
		t.Fatalf("an empty directory is an empty journal, got %v", err)
	}
	if j.Ledger.Len() != 0 || len(j.Entries) != 0 || j.Strategies.Len() != 0 || len(j.Plans) != 0 {
		t.Error("empty journal must load empty")
	}

	r, err := j.Report()
	if err != nil {
		t.Fatalf("empty journal must report, got %v", err)
	}
	if r.Stats.TotalTrades != 0 {
		t.Errorf("got %d trades, want 0", r.Stats.TotalTrades)
	}
}

func TestLoadJournal_FullDir(t *testing.T) {
	dir := t.TempDir()

	ledger := testLedger(
		NewInit(at("2025-01-01"), USD(10000)),
		NewBuy(at("2025-01-10"), "AAPL", Q(10), USD(100), NO(0)),
		NewSell(at("2025-02-01"), "AAPL", Q(4), USD(120), NO(0)),
	)
	if err := SaveLedger(filepath.Join(dir, LedgerFile), ledger); err != nil {
		t.Fatal(err)
	}

	market := NewMarketData("USD")
	market.SetPrice("AAPL", MustParse("2025-02-10"), 130)
	if err := SaveMarketData(filepath.Join(dir, PricesFile), market); err != nil {
		t.Fatal(err)
	}

	if err := AppendEntry(filepath.Join(dir, EntriesFile), NewEntry(at("2025-02-01"), "Debrief", "sold into strength", nil, []string{"AAPL"})); err != nil {
		t.Fatal(err)
	}

	book := NewStrategies()
	book.Add(NewStrategy("pullback", "", nil))
	if err := SaveStrategies(filepath.Join(dir, StrategiesFile), book); err != nil {
		t.Fatal(err)
	}

	plan := NewPlan(MustParse("2025-02-01"))
	plan.Focus = "scale out"
	if err := SavePlans(filepath.Join(dir, PlansFile), []Plan{plan}); err != nil {
		t.Fatal(err)
	}

	j, err := LoadJournal(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if j.Ledger.Len() != 3 || len(j.Entries) != 1 || j.Strategies.Len() != 1 || len(j.Plans) != 1 {
		t.Errorf("journal incomplete: %d txs, %d entries, %d strategies, %d plans",
			j.Ledger.Len(), len(j.Entries), j.Strategies.Len(), len(j.Plans))
	}

	r, err := j.Report()
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(r.Trades) != 1 || len(r.Positions) != 1 {
		t.Fatalf("report: got %d trades, %d positions", len(r.Trades), len(r.Positions))
	}
	// 4 * (120-100)
	if want := USD(80); !r.Trades[0].RealizedPnL.Equal(want) {
		t.Errorf("realized pnl: got %s, want %s", r.Trades[0].RealizedPnL, want)
	}
	if !r.Positions[0].Priced {
		t.Error("the position must pick up the market price")
	}
	// 6 * 130 - 6 * 100
	if want := USD(180); !r.Positions[0].UnrealizedPnL.Equal(want) {
		t.Errorf("unrealized pnl: got %s, want %s", r.Positions[0].UnrealizedPnL, want)
	}
}

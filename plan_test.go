package tradejournal

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestPlan_Edit(t *testing.T) {
	plan := NewPlan(MustParse("2025-08-20"))
	plan.Focus = "only A setups"
	plan.Watch(" nvda ", "LONG", "held the gap")
	plan.Check("premarket levels marked")
	plan.Check("news checked")

	if got := plan.Watchlist[0]; got.Symbol != "NVDA" || got.Bias != "long" {
		t.Errorf("watch item not normalized: %+v", got)
	}

	if err := plan.Tick(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.Checklist[1].Done || plan.Checklist[0].Done {
		t.Error("Tick must mark exactly the n-th item")
	}
	if err := plan.Tick(0); err == nil {
		t.Error("Tick(0) is out of range")
	}
	if err := plan.Tick(3); err == nil {
		t.Error("Tick beyond the checklist is out of range")
	}
}

func TestUpsertPlan(t *testing.T) {
	monday := NewPlan(MustParse("2025-08-18"))
	wednesday := NewPlan(MustParse("2025-08-20"))
	plans := []Plan{monday, wednesday}

	// Replacing keeps one plan per day.
	replacement := NewPlan(MustParse("2025-08-18"))
	replacement.Focus = "revised"
	plans = UpsertPlan(plans, replacement)
	if len(plans) != 2 || plans[0].Focus != "revised" {
		t.Errorf("upsert must replace in place, got %+v", plans)
	}

	// Inserting keeps the list sorted.
	tuesday := NewPlan(MustParse("2025-08-19"))
	plans = UpsertPlan(plans, tuesday)
	if len(plans) != 3 || plans[1].Date != tuesday.Date {
		t.Errorf("upsert must keep plans sorted, got %+v", plans)
	}
}

func TestPlanOn(t *testing.T) {
	plans := []Plan{NewPlan(MustParse("2025-08-18"))}
	if _, found := PlanOn(plans, MustParse("2025-08-18")); !found {
		t.Error("the plan exists")
	}
	if _, found := PlanOn(plans, MustParse("2025-08-19")); found {
		t.Error("no plan on that day")
	}
}

func TestPlans_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.jsonl")

	plan := NewPlan(MustParse("2025-08-20"))
	plan.Focus = "only A setups"
	plan.Watch("NVDA", "long", "held the gap")
	plan.Check("levels marked")
	plan.Tick(1)

	if err := SavePlans(path, []Plan{plan}); err != nil {
		t.Fatalf("save: %v", err)
	}
	plans, err := LoadPlans(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("got %d plans, want 1", len(plans))
	}

	got := plans[0]
	if got.Focus != plan.Focus || got.Date != plan.Date {
		t.Errorf("round trip changed the plan: %+v", got)
	}
	if got.Watchlist[0] != plan.Watchlist[0] {
		t.Errorf("round trip changed the watchlist: %+v", got.Watchlist)
	}
	if !got.Checklist[0].Done {
		t.Error("round trip lost the ticked state")
	}
}

func TestDecodePlans_LaterLineWins(t *testing.T) {
	jsonl := `{"date":"2025-08-20","focus":"first draft"}
{"date":"2025-08-20","focus":"final"}
`
	plans, err := DecodePlans(strings.NewReader(jsonl))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(plans) != 1 || plans[0].Focus != "final" {
		t.Errorf("the later line must replace the earlier, got %+v", plans)
	}
}

func TestLoadPlans_Missing(t *testing.T) {
	plans, err := LoadPlans(filepath.Join(t.TempDir(), "plans.jsonl"))
	if err != nil || plans != nil {
		t.Errorf("a missing file means no plans, got %v, %v", plans, err)
	}
}

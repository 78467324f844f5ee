package tradejournal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Plan is the trading plan for one day: what to focus on, what to watch,
// and the preparation checklist. One plan per date; re-planning a date
// replaces the previous plan.
type Plan struct {
	Date      Date
	Focus     string // the day's intent in one line
	Watchlist []WatchItem
	Checklist []ChecklistItem
}

// WatchItem is a ticker to watch, with the bias and the reason.
type WatchItem struct {
	Symbol string
	Bias   string // long, short, or empty when undecided
	Note   string
}

// ChecklistItem is a preparation step to tick off before trading.
type ChecklistItem struct {
	Text string
	Done bool
}

// NewPlan creates an empty plan for the given day.
func NewPlan(on Date) Plan { return Plan{Date: on} }

// Watch adds a symbol to the watchlist.
func (p *Plan) Watch(symbol, bias, note string) {
	p.Watchlist = append(p.Watchlist, WatchItem{
		Symbol: strings.ToUpper(strings.TrimSpace(symbol)),
		Bias:   strings.ToLower(strings.TrimSpace(bias)),
		Note:   note,
	})
}

// Check adds an unticked item to the checklist.
func (p *Plan) Check(text string) {
	p.Checklist = append(p.Checklist, ChecklistItem{Text: text})
}

// Tick marks the n-th checklist item (1-based) as done.
func (p *Plan) Tick(n int) error {
	if n < 1 || n > len(p.Checklist) {
		return fmt.Errorf("no checklist item %d, plan has %d", n, len(p.Checklist))
	}
	p.Checklist[n-1].Done = true
	return nil
}

// MarshalJSON implements the json.Marshaler interface with a stable key order.
func (p Plan) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", p.Date)
	w.Optional("focus", p.Focus)
	w.Optional("watchlist", p.Watchlist)
	w.Optional("checklist", p.Checklist)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for WatchItem.
func (i WatchItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", i.Symbol)
	w.Optional("bias", i.Bias)
	w.Optional("note", i.Note)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for ChecklistItem.
func (i ChecklistItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("text", i.Text)
	w.Optional("done", i.Done)
	return w.MarshalJSON()
}

// planRecord is a specialized struct for decoding a plan line.
type planRecord struct {
	Date      Date   `json:"date"`
	Focus     string `json:"focus"`
	Watchlist []struct {
		Symbol string `json:"symbol"`
		Bias   string `json:"bias"`
		Note   string `json:"note"`
	} `json:"watchlist"`
	Checklist []struct {
		Text string `json:"text"`
		Done bool   `json:"done"`
	} `json:"checklist"`
}

// DecodePlans reads a JSONL stream of daily plans. A later line for the same
// date replaces the earlier one.
func DecodePlans(r io.Reader) ([]Plan, error) {
	byDate := make(map[Date]Plan)
	scanner := bufio.NewScanner(r)

	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec planRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("line %d: could not decode plan: %w", i, err)
		}
		plan := Plan{Date: rec.Date, Focus: rec.Focus}
		for _, w := range rec.Watchlist {
			plan.Watchlist = append(plan.Watchlist, WatchItem(w))
		}
		for _, c := range rec.Checklist {
			plan.Checklist = append(plan.Checklist, ChecklistItem(c))
		}
		byDate[plan.Date] = plan
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	plans := make([]Plan, 0, len(byDate))
	for _, p := range byDate {
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Date.Before(plans[j].Date) })
	return plans, nil
}

// EncodePlans writes plans in canonical JSONL form, one line per day.
func EncodePlans(w io.Writer, plans []Plan) error {
	for _, p := range plans {
		b, err := json.Marshal(p)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}

// LoadPlans reads the plans file; a missing file means no plans yet.
func LoadPlans(path string) ([]Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return DecodePlans(f)
}

// SavePlans writes the plans file.
func SavePlans(path string, plans []Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodePlans(f, plans)
}

// PlanOn returns the plan for a given day from the list.
func PlanOn(plans []Plan, on Date) (Plan, bool) {
	for _, p := range plans {
		if p.Date == on {
			return p, true
		}
	}
	return Plan{}, false
}

// UpsertPlan replaces or inserts the plan for its date and keeps the list
// sorted.
func UpsertPlan(plans []Plan, p Plan) []Plan {
	for i := range plans {
		if plans[i].Date == p.Date {
			plans[i] = p
			return plans
		}
	}
	plans = append(plans, p)
	sort.Slice(plans, func(i, j int) bool { return plans[i].Date.Before(plans[j].Date) })
	return plans
}

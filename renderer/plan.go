package renderer

import (
	"fmt"
	"strings"

	"tradejournal"
)

// Plan renders a daily trading plan.
func Plan(p tradejournal.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Plan for %s\n\n", p.Date)
	if p.Focus != "" {
		fmt.Fprintf(&b, "Focus: %s\n\n", p.Focus)
	}

	if len(p.Watchlist) > 0 {
		fmt.Fprintf(&b, "## Watchlist\n\n")
		fmt.Fprintln(&b, "| Symbol | Bias | Note |")
		fmt.Fprintln(&b, "|:---|:---|:---|")
		for _, w := range p.Watchlist {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", w.Symbol, w.Bias, w.Note)
		}
		fmt.Fprintln(&b)
	}

	if len(p.Checklist) > 0 {
		fmt.Fprintf(&b, "## Checklist\n\n")
		for i, c := range p.Checklist {
			mark := " "
			if c.Done {
				mark = "x"
			}
			fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, mark, c.Text)
		}
	}
	return b.String()
}

// Strategies renders the strategy book with each strategy's rule checklist.
func Strategies(strategies []tradejournal.Strategy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Strategies\n\n")
	if len(strategies) == 0 {
		fmt.Fprintln(&b, "No strategies defined.")
		return b.String()
	}
	for _, s := range strategies {
		name := s.Name
		if s.Archived {
			name += " (archived)"
		}
		fmt.Fprintf(&b, "## %s\n\n", name)
		if s.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", s.Description)
		}
		for _, rule := range s.Rules {
			fmt.Fprintf(&b, "- %s\n", rule)
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}

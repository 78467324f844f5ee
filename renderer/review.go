package renderer

import (
	"tradejournal"
)

// Review is the view model for the period review document: the stats, the
// closed trades and the journal entries of the period, in one place.
type Review struct {
	Period       string
	From, To     string
	Stats        tradejournal.Stats
	ProfitFactor string
	Strategies   []tradejournal.StrategyStats
	Trades       []tradejournal.ClosedTrade
	Entries      []tradejournal.Entry
	Positions    []tradejournal.Position
}

// ReviewRenderOptions holds configuration for rendering a review report.
type ReviewRenderOptions struct {
	SkipTrades  bool // Do not render the closed trades section.
	SkipEntries bool // Do not render the journal entries section.
}

// NewReview assembles the review view model for a period.
func NewReview(period tradejournal.Range, report *tradejournal.Report, entries []tradejournal.Entry) *Review {
	return &Review{
		Period:       period.Identifier(),
		From:         period.From.String(),
		To:           period.To.String(),
		Stats:        report.Stats,
		ProfitFactor: profitFactor(report.Stats.ProfitFactor),
		Strategies:   report.Strategies,
		Trades:       report.Trades,
		Entries:      entries,
		Positions:    report.Positions,
	}
}

// RenderReview renders the Review struct to a markdown string.
func RenderReview(r *Review, opts ReviewRenderOptions) string {
	// Declare template dependencies: which partials are needed and how they
	// are aliased in the main template.
	partials := map[string]string{
		"review_title": "review_title.md",
		"review_stats": "review_stats.md",
	}

	if opts.SkipTrades {
		partials["review_trades"] = ""
	} else {
		partials["review_trades"] = "review_trades.md"
	}
	if opts.SkipEntries {
		partials["review_entries"] = ""
	} else {
		partials["review_entries"] = "review_entries.md"
	}

	return renderTemplate("review", "review.md", partials, r)
}

package renderer

import (
	"fmt"
	"strings"

	"tradejournal"
)

// Trades renders closed trades as a markdown table, one row per matched
// (buy, sell) pairing, in sell order.
func Trades(trades []tradejournal.ClosedTrade) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Closed Trades\n\n")
	if len(trades) == 0 {
		fmt.Fprintln(&b, "No closed trades.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Closed | Symbol | Quantity | Buy | Sell | Fees | P&L | P&L % |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|")

	var total tradejournal.Money
	for _, t := range trades {
		total = total.Add(t.RealizedPnL)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			t.SellTime.Format("2006-01-02"),
			t.Symbol,
			t.Quantity,
			t.BuyPrice,
			t.SellPrice,
			t.Fees,
			t.RealizedPnL.SignedString(),
			t.RealizedPnLPercent.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **Total** | | | | | | **%s** | |\n", total.SignedString())
	return b.String()
}

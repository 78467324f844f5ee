package renderer

import (
	"fmt"
	"strings"

	"tradejournal"
)

// Positions renders the open positions as a markdown table. Market columns
// show "-" for symbols without a known price.
func Positions(positions []tradejournal.Position) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Open Positions\n\n")
	if len(positions) == 0 {
		fmt.Fprintln(&b, "No open positions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Quantity | Avg Buy Price | Total Cost | Price | Market Value | Unrealized |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")

	var totalCost, totalValue tradejournal.Money
	allPriced := true
	for _, p := range positions {
		price, value, unrealized := "-", "-", "-"
		if p.Priced {
			price = p.CurrentPrice.String()
			value = p.MarketValue.String()
			unrealized = fmt.Sprintf("%s (%s)", p.UnrealizedPnL.SignedString(), p.UnrealizedPnLPercent.SignedString())
			totalValue = totalValue.Add(p.MarketValue)
		} else {
			allPriced = false
		}
		totalCost = totalCost.Add(p.TotalCost)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			p.Symbol, p.Quantity, p.AvgBuyPrice, p.TotalCost, price, value, unrealized)
	}

	if allPriced {
		fmt.Fprintf(&b, "| **Total** | | | **%s** | | **%s** | **%s** |\n",
			totalCost, totalValue, totalValue.Sub(totalCost).SignedString())
	} else {
		fmt.Fprintf(&b, "| **Total** | | | **%s** | | | |\n", totalCost)
	}
	return b.String()
}

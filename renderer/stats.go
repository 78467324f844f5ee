package renderer

import (
	"fmt"
	"math"
	"strings"

	"tradejournal"
)

// profitFactor formats the sentinel-carrying profit factor for display.
func profitFactor(pf float64) string {
	if math.IsInf(pf, 1) {
		return "∞ (no losses)"
	}
	return fmt.Sprintf("%.2f", pf)
}

// Stats renders the performance statistics, and the per-strategy breakdown
// when one is provided.
func Stats(s tradejournal.Stats, strategies []tradejournal.StrategyStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Performance\n\n")

	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Realized P&L | %s |\n", s.RealizedPnL.SignedString())
	fmt.Fprintf(&b, "| Total Return | %s |\n", s.TotalReturnPercent.SignedString())
	fmt.Fprintf(&b, "| Closed Trades | %d |\n", s.TotalTrades)
	fmt.Fprintf(&b, "| Winning / Losing | %d / %d |\n", s.WinningTrades, s.LosingTrades)
	fmt.Fprintf(&b, "| Win Rate | %s |\n", s.WinRate)
	fmt.Fprintf(&b, "| Profit Factor | %s |\n", profitFactor(s.ProfitFactor))
	fmt.Fprintf(&b, "| Average Gain | %s |\n", s.AverageGain)
	fmt.Fprintf(&b, "| Average Loss | %s |\n", s.AverageLoss)
	fmt.Fprintf(&b, "| Largest Win | %s |\n", s.LargestWin.SignedString())
	fmt.Fprintf(&b, "| Largest Loss | %s |\n", s.LargestLoss.SignedString())
	fmt.Fprintf(&b, "| Open Positions | %d |\n", s.CurrentPositions)

	if len(strategies) > 0 {
		fmt.Fprintf(&b, "\n## By Strategy\n\n")
		fmt.Fprintln(&b, "| Strategy | Trades | Wins | Losses | Win Rate | Realized P&L |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
		for _, st := range strategies {
			fmt.Fprintf(&b, "| %s | %d | %d | %d | %s | %s |\n",
				st.Strategy, st.Trades, st.Wins, st.Losses, st.WinRate, st.RealizedPnL.SignedString())
		}
	}
	return b.String()
}

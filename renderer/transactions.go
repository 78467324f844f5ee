package renderer

import (
	"fmt"
	"strings"

	"tradejournal"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx tradejournal.Transaction) string {
	switch tx.Kind {
	case tradejournal.KindBuy:
		return fmt.Sprintf("Bought %s %s at %s", tx.Quantity, tx.Symbol, tx.Price)
	case tradejournal.KindSell:
		return fmt.Sprintf("Sold %s %s at %s", tx.Quantity, tx.Symbol, tx.Price)
	case tradejournal.KindInit:
		return fmt.Sprintf("Started journal with %s", tx.Price)
	default:
		return string(tx.Kind)
	}
}

// Transactions renders the transaction log as a markdown table.
func Transactions(txs []tradejournal.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	if len(txs) == 0 {
		fmt.Fprintln(&b, "No transactions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Time | Kind | Symbol | Quantity | Price | Fees | Strategy |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|:---|")
	for _, tx := range txs {
		symbol, quantity := tx.Symbol, tx.Quantity.String()
		if tx.Kind == tradejournal.KindInit {
			symbol, quantity = "", ""
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Time.Format("2006-01-02 15:04"),
			tx.Kind,
			symbol,
			quantity,
			tx.Price,
			tx.Fees,
			tx.Strategy,
		)
	}
	return b.String()
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"tradejournal"
)

// tradeFlags holds the flags shared by buy and sell.
type tradeFlags struct {
	symbol   string
	quantity float64
	price    float64
	fees     float64
	currency string
	when     string
	strategy string
	note     string
}

func (t *tradeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.symbol, "sym", "", "Ticker symbol (required).")
	f.Float64Var(&t.quantity, "q", 0, "Number of shares (required).")
	f.Float64Var(&t.price, "price", 0, "Per-share price (required).")
	f.Float64Var(&t.fees, "fees", 0, "Total fees for the transaction.")
	f.StringVar(&t.currency, "c", "USD", "Currency of price and fees.")
	f.StringVar(&t.when, "d", "", "Execution time (RFC3339, '2006-01-02 15:04', or a date). Defaults to now.")
	f.StringVar(&t.strategy, "strategy", "", "Strategy name this trade follows.")
	f.StringVar(&t.note, "note", "", "Free-form memo.")
}

func (t *tradeFlags) transaction(sell bool) (tradejournal.Transaction, error) {
	at := nowUTC()
	if t.when != "" {
		var err error
		at, err = tradejournal.ParseTime(t.when)
		if err != nil {
			return tradejournal.Transaction{}, err
		}
	}

	quantity := tradejournal.Q(t.quantity)
	price := tradejournal.M(t.price, t.currency)
	fees := tradejournal.M(t.fees, t.currency)

	var tx tradejournal.Transaction
	if sell {
		tx = tradejournal.NewSell(at, t.symbol, quantity, price, fees)
	} else {
		tx = tradejournal.NewBuy(at, t.symbol, quantity, price, fees)
	}
	tx.Strategy = t.strategy
	tx.Note = t.note
	return tx, nil
}

type buyCmd struct {
	tradeFlags
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy in the journal" }
func (*buyCmd) Usage() string {
	return `tj buy -sym <symbol> -q <quantity> -price <price> [-fees <fees>] [-d <time>] [-strategy <name>] [-note <memo>]

  Records a buy transaction. The purchase opens a new lot that later sells
  will be matched against, oldest first.

Usage Examples:
# Buy 10 AAPL at 231.50 with 1.00 of fees.
$ tj buy -sym AAPL -q 10 -price 231.50 -fees 1

`
}

func (p *buyCmd) SetFlags(f *flag.FlagSet) { p.tradeFlags.SetFlags(f) }

func (p *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := p.transaction(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return EncodeTransaction(tx)
}

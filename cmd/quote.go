package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"tradejournal"
)

type quoteCmd struct {
	set string
	sym string
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "fetch or set prices for held symbols" }
func (*quoteCmd) Usage() string {
	return `tj quote [-sym <symbol>] [-set <SYM=price>]

  Fetches the latest price for every held symbol (or just -sym) and stores
  it in the price database used for unrealized P&L. -set records a price
  by hand for symbols the provider does not know.

Usage Examples:
# Refresh all held symbols.
$ tj quote

# Record a manual price.
$ tj quote -set PRIVATECO=12.50

`
}

func (p *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.sym, "sym", "", "Fetch only this symbol.")
	f.StringVar(&p.set, "set", "", "Record a manual price, SYM=price.")
}

func (p *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	market, err := DecodeMarketData(ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	today := tradejournal.Today()

	if p.set != "" {
		symbol, priceStr, ok := strings.Cut(p.set, "=")
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: -set wants SYM=price.")
			return subcommands.ExitUsageError
		}
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", priceStr, err)
			return subcommands.ExitUsageError
		}
		market.SetPrice(strings.ToUpper(strings.TrimSpace(symbol)), today, price)
	} else {
		symbols := ledger.Symbols()
		if p.sym != "" {
			symbols = []string{strings.ToUpper(p.sym)}
		}
		if len(symbols) == 0 {
			fmt.Fprintln(os.Stderr, "Warning: no symbols to quote.")
			return subcommands.ExitSuccess
		}

		provider := tradejournal.NewYahooProvider()
		for _, symbol := range symbols {
			price, err := provider.Latest(symbol)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				continue
			}
			market.SetPrice(symbol, today, price)
			fmt.Printf("%s: %.4f\n", symbol, price)
		}
	}

	if err := tradejournal.SaveMarketData(pricesPath(), market); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving prices: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"tradejournal"
)

type initCmd struct {
	capital  float64
	currency string
	when     string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "record the journal's starting capital" }
func (*initCmd) Usage() string {
	return `tj init -capital <amount> [-c <currency>] [-d <time>]

  Records the starting capital. The total return percentage in the stats
  report is computed against it. Recording it again replaces the value.

Usage Examples:
# Start the journal with 10000 USD.
$ tj init -capital 10000

`
}

func (p *initCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.capital, "capital", 0, "Starting capital (required).")
	f.StringVar(&p.currency, "c", "USD", "Currency of the journal.")
	f.StringVar(&p.when, "d", "", "Time of the record. Defaults to now.")
}

func (p *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	at := nowUTC()
	if p.when != "" {
		var err error
		at, err = tradejournal.ParseTime(p.when)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	tx := tradejournal.NewInit(at, tradejournal.M(p.capital, p.currency))
	return EncodeTransaction(tx)
}

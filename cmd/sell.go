package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
)

// nowUTC is a variable so tests can pin the clock.
var nowUTC = func() time.Time { return time.Now().UTC() }

type sellCmd struct {
	tradeFlags
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell in the journal" }
func (*sellCmd) Usage() string {
	return `tj sell -sym <symbol> -q <quantity> -price <price> [-fees <fees>] [-d <time>] [-strategy <name>] [-note <memo>]

  Records a sell transaction. The sell is matched against the oldest open
  lots of the symbol (FIFO) and refused if it exceeds the open quantity.

Usage Examples:
# Sell 5 AAPL at 240.00.
$ tj sell -sym AAPL -q 5 -price 240

`
}

func (p *sellCmd) SetFlags(f *flag.FlagSet) { p.tradeFlags.SetFlags(f) }

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := p.transaction(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return EncodeTransaction(tx)
}

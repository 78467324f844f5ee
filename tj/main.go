// Command tj is a personal stock-trading journal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"tradejournal/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{Args: predict.Nothing}
	}

	// Shell completion. Exits here when invoked by the shell's completer.
	completer := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"journal-dir": predict.Dirs("*"),
		},
	}
	completer.Complete("tj")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

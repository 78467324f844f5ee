package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"tradejournal"
	"tradejournal/renderer"
)

func splitSemicolons(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

type strategyCmd struct {
	add      string
	desc     string
	rules    string
	archive  string
	withDead bool
}

func (*strategyCmd) Name() string     { return "strategy" }
func (*strategyCmd) Synopsis() string { return "manage the strategy book" }
func (*strategyCmd) Usage() string {
	return `tj strategy [-add <name> [-desc <text>] [-rules <a;b;c>]] [-archive <name>] [-all]

  Without flags, lists the active strategies and their rule checklists.
  Trades reference strategies by name (see 'tj buy -strategy').

Usage Examples:
# Define a strategy with its checklist.
$ tj strategy -add pullback -desc "Buy the first pullback to the 20 EMA" -rules "trend up;volume above average;risk under 1R"

# Retire one.
$ tj strategy -archive pullback

`
}

func (p *strategyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.add, "add", "", "Add a strategy with this name.")
	f.StringVar(&p.desc, "desc", "", "Description for -add.")
	f.StringVar(&p.rules, "rules", "", "Semicolon-separated rule checklist for -add.")
	f.StringVar(&p.archive, "archive", "", "Archive the strategy with this name.")
	f.BoolVar(&p.withDead, "all", false, "Include archived strategies in the listing.")
}

func (p *strategyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := tradejournal.LoadStrategies(strategiesPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	changed := false
	if p.add != "" {
		rules := splitSemicolons(p.rules)
		if err := book.Add(tradejournal.NewStrategy(p.add, p.desc, rules)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		changed = true
	}
	if p.archive != "" {
		if err := book.Archive(p.archive); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		changed = true
	}

	if changed {
		if err := tradejournal.SaveStrategies(strategiesPath(), book); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving strategies: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	strategies := book.Active()
	if p.withDead {
		strategies = book.All()
	}
	printMarkdown(renderer.Strategies(strategies))
	return subcommands.ExitSuccess
}

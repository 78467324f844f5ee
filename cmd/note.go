package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"

	"tradejournal"
)

type noteCmd struct {
	title   string
	tags    string
	symbols string
	when    string
}

func (*noteCmd) Name() string     { return "note" }
func (*noteCmd) Synopsis() string { return "add a journal entry" }
func (*noteCmd) Usage() string {
	return `tj note [-title <title>] [-tags <a,b>] [-sym <A,B>] [-d <time>] [<markdown body>]

  Adds a markdown entry to the journal. The body is taken from the
  arguments, or read from stdin when no argument is given.

Usage Examples:
# Quick one-liner.
$ tj note -sym AAPL "Chased the open again. Stop doing that."

# Longer note from stdin.
$ tj note -title "Weekly debrief" < debrief.md

`
}

func (p *noteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.title, "title", "", "Entry title. Defaults to the body's first heading.")
	f.StringVar(&p.tags, "tags", "", "Comma-separated tags.")
	f.StringVar(&p.symbols, "sym", "", "Comma-separated related symbols.")
	f.StringVar(&p.when, "d", "", "Entry time. Defaults to now.")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (p *noteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	at := nowUTC()
	if p.when != "" {
		var err error
		at, err = tradejournal.ParseTime(p.when)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	body := strings.Join(f.Args(), " ")
	if body == "" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			return subcommands.ExitFailure
		}
		body = string(content)
	}
	if strings.TrimSpace(body) == "" {
		fmt.Fprintln(os.Stderr, "Error: the entry body is empty.")
		return subcommands.ExitUsageError
	}

	entry := tradejournal.NewEntry(at, p.title, body, splitList(p.tags), splitList(p.symbols))
	if err := tradejournal.AppendEntry(entriesPath(), entry); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing entry: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Noted: %s\n", entry.Headline())
	return subcommands.ExitSuccess
}

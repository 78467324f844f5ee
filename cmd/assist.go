package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"tradejournal/agent"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI coach" }
func (*assistCmd) Usage() string {
	return `tj assist [initial question]

  Starts an interactive coaching session over your journal. The coach can
  read your positions, trades and statistics, and ground market questions
  with web search. Requires a Gemini API key in the environment.

Usage Examples:
# Open the coach and ask away.
$ tj assist

# Start with a question.
$ tj assist "what do my losing trades have in common?"

`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(*journalDir)
	markets := agent.NewMarkets()
	a := agent.New(os.Stdout, os.Stdin, analyst, markets)

	if initialPrompt == "" {
		err = a.Run(ctx, client)
	} else {
		err = a.Run(ctx, client, initialPrompt)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Coach failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

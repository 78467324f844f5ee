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

type planCmd struct {
	date  string
	focus string
	watch string
	check string
	done  int
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "create or show the daily trading plan" }
func (*planCmd) Usage() string {
	return `tj plan [-d <date>] [-focus <text>] [-watch <SYM[:bias[:note]]>] [-check <item>] [-done <n>]

  Without flags, shows today's plan. Flags edit the plan of the day:
  -watch and -check append, -done ticks a checklist item off.

Usage Examples:
# Plan the day.
$ tj plan -focus "Only A setups, max 3 trades"
$ tj plan -watch NVDA:long:"held the gap"
$ tj plan -check "premarket levels marked"

# Tick the first checklist item.
$ tj plan -done 1

`
}

func (p *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Plan date. Defaults to today.")
	f.StringVar(&p.focus, "focus", "", "Set the day's focus line.")
	f.StringVar(&p.watch, "watch", "", "Add a watchlist item, SYM[:bias[:note]].")
	f.StringVar(&p.check, "check", "", "Add a checklist item.")
	f.IntVar(&p.done, "done", 0, "Tick the n-th checklist item (1-based).")
}

func (p *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := tradejournal.Today()
	if p.date != "" {
		var err error
		on, err = tradejournal.ParseDate(p.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	plans, err := tradejournal.LoadPlans(plansPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	plan, found := tradejournal.PlanOn(plans, on)
	if !found {
		plan = tradejournal.NewPlan(on)
	}

	changed := false
	if p.focus != "" {
		plan.Focus = p.focus
		changed = true
	}
	if p.watch != "" {
		symbol, rest, _ := strings.Cut(p.watch, ":")
		bias, note, _ := strings.Cut(rest, ":")
		plan.Watch(symbol, bias, note)
		changed = true
	}
	if p.check != "" {
		plan.Check(p.check)
		changed = true
	}
	if p.done > 0 {
		if err := plan.Tick(p.done); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		changed = true
	}

	if changed {
		plans = tradejournal.UpsertPlan(plans, plan)
		if err := tradejournal.SavePlans(plansPath(), plans); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving plans: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.Plan(plan))
	return subcommands.ExitSuccess
}

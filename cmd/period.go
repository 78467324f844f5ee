package cmd

import (
	"flag"
	"fmt"

	"tradejournal"
)

// rangeFlags is the shared -p/-s/-d flag triple used by every report command.
type rangeFlags struct {
	period string
	start  string
	date   string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&r.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&r.date, "d", "", "The end date for the range. Defaults to today.")
}

// Parse resolves the flags into a date range. full is true when no flag was
// given: the caller should then use the ledger's whole history.
func (r *rangeFlags) Parse() (rng tradejournal.Range, full bool, err error) {
	if r.period == "" && r.start == "" && r.date == "" {
		return tradejournal.Range{}, true, nil
	}

	endStr := r.date
	if endStr == "" {
		endStr = tradejournal.Today().String()
	}
	end, err := tradejournal.ParseDate(endStr)
	if err != nil {
		return rng, false, fmt.Errorf("parsing end date: %w", err)
	}

	if r.start != "" {
		start, err := tradejournal.ParseDate(r.start)
		if err != nil {
			return rng, false, fmt.Errorf("parsing start date: %w", err)
		}
		return tradejournal.NewRange(start, end), false, nil
	}

	period, err := tradejournal.ParsePeriod(r.period)
	if err != nil {
		return rng, false, fmt.Errorf("parsing period: %w", err)
	}
	return period.Range(end), false, nil
}

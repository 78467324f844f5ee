package tradejournal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
)

const attrOn = "on"

// Market data persists as a single JSONL file, one line per day:
//
//	{"on":"2026-08-21","AAPL":231.5,"NVDA":178.2}
//
// human-readable and git-friendly, the same way the ledger is.

// DecodeMarketData reads the daily price lines. The currency is the
// journal's; the price file itself is currency-free.
func DecodeMarketData(r io.Reader, currency string) (*MarketData, error) {
	m := NewMarketData(currency)
	scanner := bufio.NewScanner(r)

	i := 0
	for scanner.Scan() {
		i++
		txt := scanner.Text()
		if len(txt) == 0 {
			continue
		}

		jobj := make(map[string]any)
		if err := json.Unmarshal([]byte(txt), &jobj); err != nil {
			return nil, fmt.Errorf("parse error line %d: not a correct json: %w", i, err)
		}

		jvalue, ok := jobj[attrOn]
		if !ok {
			return nil, fmt.Errorf("parse error line %d: missing the property %q with a date", i, attrOn)
		}
		jstring, ok := jvalue.(string)
		if !ok {
			return nil, fmt.Errorf("parse error line %d: property %q must be of type 'string'", i, attrOn)
		}
		on, err := ParseDate(jstring)
		if err != nil {
			return nil, fmt.Errorf("parse error line %d: property %q must be a valid date: %w", i, attrOn, err)
		}

		// Read all other attributes as (symbol, price) pairs.
		for symbol, price := range jobj {
			if symbol == attrOn {
				continue
			}
			p, ok := price.(float64)
			if !ok {
				return nil, fmt.Errorf("parse error line %d: property %q must be of type 'number'", i, symbol)
			}
			m.SetPrice(symbol, on, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// EncodeMarketData writes the price database back, one day per line, symbols
// in alphabetical order for a stable output.
func EncodeMarketData(w io.Writer, m *MarketData) error {
	symbols := m.Symbols()

	// Collect the union of all days, in order.
	var days []Date
	seen := make(map[Date]bool)
	for _, symbol := range symbols {
		for day := range m.Prices(symbol) {
			if !seen[day] {
				seen[day] = true
				days = append(days, day)
			}
		}
	}
	slices.SortFunc(days, func(a, b Date) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	})

	for _, day := range days {
		var jw jsonObjectWriter
		jw.Append(attrOn, day.String())
		for _, symbol := range symbols {
			// Only write the symbol on the days it actually has a value.
			v, ok := m.priceOn(symbol, day)
			if !ok || math.IsNaN(v) { // json does not support NaN
				continue
			}
			jw.Append(symbol, v)
		}
		b, err := jw.MarshalJSON()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}

// LoadMarketData reads the price file; a missing file is an empty database.
func LoadMarketData(path, currency string) (*MarketData, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewMarketData(currency), nil
		}
		return nil, err
	}
	defer f.Close()
	return DecodeMarketData(f, currency)
}

// SaveMarketData writes the price file.
func SaveMarketData(path string, m *MarketData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeMarketData(f, m)
}

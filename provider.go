package tradejournal

import (
	"fmt"
	"math"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// QuoteProvider fetches the latest traded price for a ticker.
type QuoteProvider interface {
	Latest(symbol string) (float64, error)
}

// yahooChart reads the latest price from Yahoo's public chart endpoint.
//
// The response is a deep JSON document; jsonpath keeps the extraction at a
// one-liner instead of a tower of temp structs:
//
//	{"chart":{"result":[{"meta":{"regularMarketPrice":231.59,...}}]}}
type yahooChart struct{}

// NewYahooProvider returns the default quote provider. Responses go through
// the daily disk cache, so repeated report runs in a day do not re-fetch.
func NewYahooProvider() QuoteProvider { return yahooChart{} }

func (yahooChart) Latest(symbol string) (float64, error) {
	addr := "https://query1.finance.yahoo.com/v8/finance/chart/" + url.PathEscape(symbol)

	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing quote for %q: %q %w", symbol, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing quote for %q: %q not a float: %v", symbol, path, jval)
	}
	if val == 0 {
		return math.NaN(), fmt.Errorf("empty quote for %q", symbol)
	}
	return val, nil
}

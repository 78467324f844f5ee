package tradejournal

import (
	"iter"
	"slices"
)

// MarketData holds per-symbol price histories, used for unrealized P&L.
type MarketData struct {
	currency string
	prices   map[string]*History[float64]
}

// NewMarketData returns a new empty price collection.
func NewMarketData(currency string) *MarketData {
	return &MarketData{
		currency: currency,
		prices:   make(map[string]*History[float64]),
	}
}

// Currency returns the currency prices are quoted in.
func (m *MarketData) Currency() string { return m.currency }

// Has reports whether any price is known for the symbol.
func (m *MarketData) Has(symbol string) bool {
	h, ok := m.prices[symbol]
	return ok && h.Len() > 0
}

// SetPrice records the price of a symbol on a given day, overwriting any
// previous value for that day.
func (m *MarketData) SetPrice(symbol string, on Date, price float64) {
	h, ok := m.prices[symbol]
	if !ok {
		h = &History[float64]{}
		m.prices[symbol] = h
	}
	h.Append(on, price)
}

// Price returns the latest known price for the symbol.
func (m *MarketData) Price(symbol string) (Money, bool) {
	h, ok := m.prices[symbol]
	if !ok || h.Len() == 0 {
		return Money{}, false
	}
	_, v := h.Latest()
	return M(v, m.currency), true
}

// priceOn returns the price recorded exactly on a given day.
func (m *MarketData) priceOn(symbol string, day Date) (float64, bool) {
	h, ok := m.prices[symbol]
	if !ok {
		return 0, false
	}
	return h.Get(day)
}

// PriceAsOf returns the price on a given day, or the most recent one before it.
func (m *MarketData) PriceAsOf(symbol string, day Date) (Money, bool) {
	h, ok := m.prices[symbol]
	if !ok {
		return Money{}, false
	}
	v, ok := h.ValueAsOf(day)
	if !ok {
		return Money{}, false
	}
	return M(v, m.currency), true
}

// Symbols returns the sorted list of symbols with at least one price.
func (m *MarketData) Symbols() []string {
	symbols := make([]string, 0, len(m.prices))
	for s, h := range m.prices {
		if h.Len() > 0 {
			symbols = append(symbols, s)
		}
	}
	slices.Sort(symbols)
	return symbols
}

// Prices returns an iterator over the price history of a symbol.
func (m *MarketData) Prices(symbol string) iter.Seq2[Date, float64] {
	h, ok := m.prices[symbol]
	if !ok {
		return func(yield func(Date, float64) bool) {}
	}
	return h.Values()
}

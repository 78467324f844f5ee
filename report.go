package tradejournal

import (
	"math"
	"slices"
)

// Position is an open holding in one symbol, derived from the open lots.
type Position struct {
	Symbol      string
	Quantity    Quantity
	AvgBuyPrice Money // weighted average of the remaining lots, fees excluded
	TotalCost   Money

	// Market-dependent fields, only meaningful when Priced is true.
	Priced               bool
	CurrentPrice         Money
	MarketValue          Money
	UnrealizedPnL        Money
	UnrealizedPnLPercent Percent
}

// MarshalJSON implements the json.Marshaler interface with a stable key
// order; market fields are omitted for unpriced positions.
func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", p.Symbol)
	w.Append("quantity", p.Quantity)
	w.Append("averageBuyPrice", p.AvgBuyPrice.value)
	w.Append("totalCost", p.TotalCost.value)
	if p.Priced {
		w.Append("currentPrice", p.CurrentPrice.value)
		w.Append("marketValue", p.MarketValue.value)
		w.Append("unrealizedPnl", p.UnrealizedPnL.value)
		w.Append("unrealizedPnlPercent", float64(p.UnrealizedPnLPercent))
	}
	w.Optional("currency", p.AvgBuyPrice.cur)
	return w.MarshalJSON()
}

// Stats summarizes realized performance over the closed trades.
type Stats struct {
	RealizedPnL        Money
	TotalReturnPercent Percent // realized P&L over starting capital
	TotalTrades        int
	WinningTrades      int // closed trades with positive P&L
	LosingTrades       int // closed trades with negative P&L; break-even counts in neither
	WinRate            Percent
	// ProfitFactor is gross gains over absolute gross losses. It is
	// math.Inf(1) when there are gains and no losses, and 0 when there are
	// no gains at all.
	ProfitFactor     float64
	AverageGain      Money
	AverageLoss      Money // reported as a positive magnitude
	LargestWin       Money
	LargestLoss      Money // the most negative realized P&L, kept negative
	CurrentPositions int
}

// StrategyStats is the per-strategy slice of the overall stats.
type StrategyStats struct {
	Strategy    string
	Trades      int
	Wins        int
	Losses      int
	RealizedPnL Money
	WinRate     Percent
}

// Report is the full derived view of a journal: open positions, closed
// trades, and performance statistics.
type Report struct {
	Positions  []Position
	Trades     []ClosedTrade
	Stats      Stats
	Strategies []StrategyStats
}

// Compute matches the ledger's lots and aggregates positions and statistics.
// market may be nil; positions are then reported without market fields.
// An empty ledger yields an empty report with zeroed stats and no error.
func Compute(l *Ledger, market *MarketData) (*Report, error) {
	closed, open, err := l.MatchLots()
	if err != nil {
		return nil, err
	}

	r := &Report{Trades: closed}
	r.Positions = positions(open, market)
	r.Stats = stats(closed, l.Capital(), len(r.Positions))
	r.Strategies = strategyStats(closed)
	return r, nil
}

// StatsOf aggregates statistics over an arbitrary set of closed trades,
// typically the trades of one period. The capital still scales the total
// return; openPositions is carried through.
func StatsOf(closed []ClosedTrade, capital Money, openPositions int) Stats {
	return stats(closed, capital, openPositions)
}

// positions folds open lots into one position per symbol. Lots arrive sorted
// by symbol, so a simple scan groups them.
func positions(open []Lot, market *MarketData) []Position {
	var out []Position
	for _, lot := range open {
		if lot.Quantity.IsZero() {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Symbol == lot.Symbol {
			p := &out[n-1]
			p.Quantity = p.Quantity.Add(lot.Quantity)
			p.TotalCost = p.TotalCost.Add(lot.Cost())
			continue
		}
		out = append(out, Position{
			Symbol:    lot.Symbol,
			Quantity:  lot.Quantity,
			TotalCost: lot.Cost(),
		})
	}

	for i := range out {
		p := &out[i]
		p.AvgBuyPrice = p.TotalCost.Div(p.Quantity)
		if market == nil {
			continue
		}
		price, ok := market.Price(p.Symbol)
		if !ok {
			continue
		}
		p.Priced = true
		p.CurrentPrice = price
		p.MarketValue = price.Mul(p.Quantity)
		p.UnrealizedPnL = p.MarketValue.Sub(p.TotalCost)
		p.UnrealizedPnLPercent = Percent(p.UnrealizedPnL.Ratio(p.TotalCost) * 100)
	}
	return out
}

func stats(closed []ClosedTrade, capital Money, openPositions int) Stats {
	s := Stats{
		TotalTrades:      len(closed),
		CurrentPositions: openPositions,
	}

	var grossGains, grossLosses Money
	for _, t := range closed {
		s.RealizedPnL = s.RealizedPnL.Add(t.RealizedPnL)
		switch {
		case t.RealizedPnL.IsPositive():
			s.WinningTrades++
			grossGains = grossGains.Add(t.RealizedPnL)
			if t.RealizedPnL.GreaterThan(s.LargestWin) {
				s.LargestWin = t.RealizedPnL
			}
		case t.RealizedPnL.IsNegative():
			s.LosingTrades++
			grossLosses = grossLosses.Add(t.RealizedPnL)
			if t.RealizedPnL.LessThan(s.LargestLoss) {
				s.LargestLoss = t.RealizedPnL
			}
		}
	}

	if decided := s.WinningTrades + s.LosingTrades; decided > 0 {
		s.WinRate = Percent(float64(s.WinningTrades) / float64(decided) * 100)
	}
	switch {
	case grossGains.IsZero():
		s.ProfitFactor = 0
	case grossLosses.IsZero():
		s.ProfitFactor = math.Inf(1)
	default:
		s.ProfitFactor = grossGains.Ratio(grossLosses.Abs())
	}
	if s.WinningTrades > 0 {
		s.AverageGain = grossGains.Div(Q(s.WinningTrades))
	}
	if s.LosingTrades > 0 {
		s.AverageLoss = grossLosses.Abs().Div(Q(s.LosingTrades))
	}
	if !capital.IsZero() {
		s.TotalReturnPercent = Percent(s.RealizedPnL.Ratio(capital) * 100)
	}
	return s
}

func strategyStats(closed []ClosedTrade) []StrategyStats {
	byName := make(map[string]*StrategyStats)
	var names []string
	for _, t := range closed {
		name := t.Strategy
		if name == "" {
			continue
		}
		st, ok := byName[name]
		if !ok {
			st = &StrategyStats{Strategy: name}
			byName[name] = st
			names = append(names, name)
		}
		st.Trades++
		st.RealizedPnL = st.RealizedPnL.Add(t.RealizedPnL)
		if t.RealizedPnL.IsPositive() {
			st.Wins++
		} else if t.RealizedPnL.IsNegative() {
			st.Losses++
		}
	}

	slices.Sort(names)
	out := make([]StrategyStats, 0, len(names))
	for _, name := range names {
		st := byName[name]
		if decided := st.Wins + st.Losses; decided > 0 {
			st.WinRate = Percent(float64(st.Wins) / float64(decided) * 100)
		}
		out = append(out, *st)
	}
	return out
}

package tradejournal

import (
	"slices"
	"strings"
	"time"
)

// Lot is an open purchase: the not-yet-sold remainder of a buy transaction.
type Lot struct {
	Symbol   string
	BuyID    string
	Time     time.Time
	Quantity Quantity // remaining shares in the lot
	Original Quantity // shares as bought; fee proration base
	Price    Money    // per-share buy price
	Fees     Money    // total fees of the original buy
	Strategy string   // strategy recorded on the buy
}

// Cost returns the remaining cost of the lot, fees excluded.
func (l Lot) Cost() Money { return l.Price.Mul(l.Quantity) }

type lots []Lot

// quantity sums the remaining shares over the lots.
func (l lots) quantity() Quantity {
	var q Quantity
	for _, lot := range l {
		q = q.Add(lot.Quantity)
	}
	return q
}

// ClosedTrade is the pairing of a portion of a sell against a portion of a
// buy lot. One sell spanning several lots produces several closed trades.
type ClosedTrade struct {
	Symbol             string
	BuyID              string
	SellID             string
	Quantity           Quantity
	BuyPrice           Money
	SellPrice          Money
	BuyTime            time.Time
	SellTime           time.Time
	Fees               Money // prorated share of both buy and sell fees
	RealizedPnL        Money
	RealizedPnLPercent Percent
	Strategy           string // from the sell, falling back to the buy
}

// MarshalJSON implements the json.Marshaler interface with a stable key order.
func (t ClosedTrade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", t.Symbol)
	w.Append("buyId", t.BuyID)
	w.Append("sellId", t.SellID)
	w.Append("quantity", t.Quantity)
	w.Append("buyPrice", t.BuyPrice.value)
	w.Append("sellPrice", t.SellPrice.value)
	w.Append("buyTime", t.BuyTime.UTC().Format(TimeFormat))
	w.Append("sellTime", t.SellTime.UTC().Format(TimeFormat))
	w.Append("fees", t.Fees.value)
	w.Append("realizedPnl", t.RealizedPnL.value)
	w.Append("realizedPnlPercent", float64(t.RealizedPnLPercent))
	w.Optional("currency", t.SellPrice.cur)
	w.Optional("strategy", t.Strategy)
	return w.MarshalJSON()
}

// MatchLots replays the ledger and pairs every sell against the oldest open
// buy lots of its symbol (FIFO). It returns the closed trades in sell order
// and the lots still open, sorted by symbol then buy time.
//
// A sell exceeding the open quantity of its symbol fails the whole matching
// with an *OversellError; no clamping, and nothing of the offending sell is
// applied. All arithmetic stays decimal, nothing is rounded here.
func (l *Ledger) MatchLots() ([]ClosedTrade, []Lot, error) {
	open := make(map[string]lots)
	var closed []ClosedTrade

	for _, tx := range l.transactions {
		switch tx.Kind {
		case KindBuy:
			open[tx.Symbol] = append(open[tx.Symbol], Lot{
				Symbol:   tx.Symbol,
				BuyID:    tx.ID,
				Time:     tx.Time,
				Quantity: tx.Quantity,
				Original: tx.Quantity,
				Price:    tx.Price,
				Fees:     tx.Fees,
				Strategy: tx.Strategy,
			})

		case KindSell:
			queue := open[tx.Symbol]
			if available := queue.quantity(); tx.Quantity.GreaterThan(available) {
				return nil, nil, &OversellError{
					Symbol:        tx.Symbol,
					TransactionID: tx.ID,
					Requested:     tx.Quantity,
					Available:     available,
				}
			}

			remaining := tx.Quantity
			for !remaining.IsZero() {
				lot := &queue[0]
				matched := remaining.Min(lot.Quantity)

				// Fees follow the matched shares: the buy side against the
				// lot's original size, the sell side against the sell size.
				buyFees := lot.Fees.Mul(matched).Div(lot.Original)
				sellFees := tx.Fees.Mul(matched).Div(tx.Quantity)
				fees := buyFees.Add(sellFees)

				gross := tx.Price.Sub(lot.Price).Mul(matched)
				pnl := gross.Sub(fees)
				basis := lot.Price.Mul(matched)

				closed = append(closed, ClosedTrade{
					Symbol:             tx.Symbol,
					BuyID:              lot.BuyID,
					SellID:             tx.ID,
					Quantity:           matched,
					BuyPrice:           lot.Price,
					SellPrice:          tx.Price,
					BuyTime:            lot.Time,
					SellTime:           tx.Time,
					Fees:               fees,
					RealizedPnL:        pnl,
					RealizedPnLPercent: Percent(pnl.Ratio(basis) * 100),
					Strategy:           strategyOf(tx, *lot),
				})

				lot.Quantity = lot.Quantity.Sub(matched)
				remaining = remaining.Sub(matched)
				if lot.Quantity.IsZero() {
					queue = queue[1:]
				}
			}
			open[tx.Symbol] = queue
		}
	}

	var openLots []Lot
	symbols := make([]string, 0, len(open))
	for s := range open {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	for _, s := range symbols {
		openLots = append(openLots, open[s]...)
	}

	return closed, openLots, nil
}

// strategyOf resolves the strategy a closed trade belongs to: the sell's
// when set, otherwise the buy's.
func strategyOf(sell Transaction, lot Lot) string {
	if s := strings.TrimSpace(sell.Strategy); s != "" {
		return s
	}
	return lot.Strategy
}

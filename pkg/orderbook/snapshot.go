package orderbook

// OrderBookEntry is the flattened projection of one resting order, derived
// at snapshot time and never stored.
type OrderBookEntry struct {
	OrderID   string `json:"order_id"`
	AccountID string `json:"account_id"`
	Pair      string `json:"pair"`
	Side      string `json:"side"`
	Amount    string `json:"amount"`
	Price     string `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// GenerateOrderBookOutput flattens every resting order in storage order:
// bids by ascending price key, then asks by ascending price key. This is
// the book's iteration order, not a best-price-first view; consumers who
// want best-first re-sort. Calling it twice without an intervening Process
// returns identical results.
func (ob *OrderBook) GenerateOrderBookOutput() []OrderBookEntry {
	entries := []OrderBookEntry{}

	collect := func(lvl *priceLevel) bool {
		for i := 0; i < lvl.orders.Len(); i++ {
			o := lvl.orders.At(i)
			entries = append(entries, OrderBookEntry{
				OrderID:   o.id,
				AccountID: o.accountID,
				Pair:      o.pair,
				Side:      string(o.side),
				Amount:    renderDecimal(o.amount),
				Price:     renderDecimal(lvl.price),
				Timestamp: o.timestamp,
			})
		}
		return true
	}

	ob.bids.Scan(collect)
	ob.asks.Scan(collect)
	return entries
}

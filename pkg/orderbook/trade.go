package orderbook

// Trade records one match. The price is always the maker's resting price,
// never the taker's limit. Trades are immutable once recorded.
type Trade struct {
	TradeID      string `json:"trade_id"`
	TakerOrderID string `json:"taker_order_id"`
	MakerOrderID string `json:"maker_order_id"`
	Pair         string `json:"pair"`
	Price        string `json:"price"`
	Amount       string `json:"amount"`
	Timestamp    int64  `json:"timestamp"`
}

package tradelog

import "github.com/joripage/matching-engine/pkg/orderbook"

// Log is an append-only trade log with per-order lookup. The book's own
// ledger stays the source of truth; the log adds the indexes reporting
// needs.
type Log interface {
	Append(trades ...orderbook.Trade)
	All() []orderbook.Trade
	ByTaker(orderID string) []orderbook.Trade
	ByMaker(orderID string) []orderbook.Trade
	Len() int
}

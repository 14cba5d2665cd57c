package rule

import "github.com/joripage/matching-engine/pkg/orderbook"

// Rule is a pre-trade check applied to CREATE instructions before they
// reach the book.
type Rule interface {
	Check(order *orderbook.Order) error
}

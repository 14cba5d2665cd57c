package rule

import (
	"fmt"

	"github.com/joripage/matching-engine/pkg/orderbook"
)

type pairRule struct {
	pair string
}

// Pair rejects instructions for any pair other than the engine's own; an
// engine instance routes exactly one pair.
func Pair(pair string) Rule {
	return &pairRule{pair: pair}
}

func (r *pairRule) Check(order *orderbook.Order) error {
	if order.Pair != r.pair {
		return fmt.Errorf("pair %q not served by this book", order.Pair)
	}
	return nil
}

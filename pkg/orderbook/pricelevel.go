package orderbook

import (
	"github.com/gammazero/deque"
	"github.com/shopspring/decimal"
	"github.com/tidwall/btree"
)

// priceLevel holds the resting orders at one exact price, oldest first.
// Levels are keyed by numeric comparison, so textual variants of one price
// ("50000.0", "50000.00") land on the same level; the level keeps the first
// decimal it saw and renders prices from it.
type priceLevel struct {
	price  decimal.Decimal
	orders *deque.Deque[*bookOrder]
}

func newLevelTree() *btree.BTreeG[*priceLevel] {
	return btree.NewBTreeG(func(a, b *priceLevel) bool {
		return a.price.LessThan(b.price)
	})
}

package intake

import (
	"context"

	"github.com/joripage/matching-engine/pkg/orderbook"
)

// Source yields a batch of fully formed instructions in arrival order.
// Sources assign each instruction its arrival timestamp; the engine and the
// book never do.
type Source interface {
	ReadOrders(ctx context.Context) ([]orderbook.Order, error)
}

package orderbook

import (
	"fmt"

	"github.com/gammazero/deque"
	"github.com/shopspring/decimal"
	"github.com/tidwall/btree"
)

// OrderBook owns the two resting sides and the trade ledger for one pair.
// It is single-threaded: price-time priority is only meaningful under one
// total arrival order, so the caller serializes access (one writer at a
// time) instead of the book taking locks.
type OrderBook struct {
	bids *btree.BTreeG[*priceLevel]
	asks *btree.BTreeG[*priceLevel]

	trades []Trade
}

func NewOrderBook() *OrderBook {
	return &OrderBook{
		bids:   newLevelTree(),
		asks:   newLevelTree(),
		trades: []Trade{},
	}
}

// Process applies one instruction and returns the trades it generated,
// which are also appended to the ledger before returning. The error is
// scoped to this instruction: when it is non-nil the book is untouched.
func (ob *OrderBook) Process(order *Order) ([]Trade, error) {
	switch order.TypeOp {
	case OpCreate:
		return ob.create(order)
	case OpDelete:
		return nil, ob.remove(order)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, order.TypeOp)
	}
}

func (ob *OrderBook) create(order *Order) ([]Trade, error) {
	price, err := decimal.NewFromString(order.LimitPrice)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedPrice, order.LimitPrice)
	}
	amount, err := decimal.NewFromString(order.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedAmount, order.Amount)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %q", ErrNonPositiveAmount, order.Amount)
	}

	taker := &bookOrder{
		id:        order.OrderID,
		accountID: order.AccountID,
		pair:      order.Pair,
		side:      order.Side,
		price:     price,
		amount:    amount,
		timestamp: order.Timestamp,
	}

	var trades []Trade
	switch order.Side {
	case BUY:
		trades = ob.matchBuy(taker)
	case SELL:
		trades = ob.matchSell(taker)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSide, order.Side)
	}

	// Unfilled remainder rests at the back of its level, keeping the
	// taker's original id, account and arrival timestamp.
	if taker.amount.IsPositive() {
		ob.addToBook(taker)
	}

	ob.trades = append(ob.trades, trades...)
	return trades, nil
}

func (ob *OrderBook) addToBook(o *bookOrder) {
	tree := ob.asks
	if o.side == BUY {
		tree = ob.bids
	}
	lvl, ok := tree.Get(&priceLevel{price: o.price})
	if !ok {
		lvl = &priceLevel{price: o.price, orders: &deque.Deque[*bookOrder]{}}
		tree.Set(lvl)
	}
	lvl.orders.PushBack(o)
}

// remove drops the resting order named by (side, limit_price, order_id).
// A missing level or order is a no-op: upstream deletions legitimately race
// with fills.
func (ob *OrderBook) remove(order *Order) error {
	price, err := decimal.NewFromString(order.LimitPrice)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedPrice, order.LimitPrice)
	}

	tree := ob.asks
	if order.Side == BUY {
		tree = ob.bids
	}
	lvl, ok := tree.Get(&priceLevel{price: price})
	if !ok {
		return nil
	}
	if i := lvl.orders.Index(func(o *bookOrder) bool { return o.id == order.OrderID }); i >= 0 {
		lvl.orders.Remove(i)
	}
	if lvl.orders.Len() == 0 {
		tree.Delete(lvl)
	}
	return nil
}

// Trades returns the append-only ledger of every trade this book produced.
func (ob *OrderBook) Trades() []Trade {
	return ob.trades
}

// BestBid returns the highest resting bid price.
func (ob *OrderBook) BestBid() (decimal.Decimal, bool) {
	lvl, ok := ob.bids.Max()
	if !ok {
		return decimal.Decimal{}, false
	}
	return lvl.price, true
}

// BestAsk returns the lowest resting ask price.
func (ob *OrderBook) BestAsk() (decimal.Decimal, bool) {
	lvl, ok := ob.asks.Min()
	if !ok {
		return decimal.Decimal{}, false
	}
	return lvl.price, true
}

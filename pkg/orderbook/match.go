package orderbook

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// matchBuy sweeps asks from the lowest price up while the level price stays
// within the taker's limit. Emptied levels are collected during the sweep
// and deleted afterwards, so the tree is never mutated mid-iteration.
func (ob *OrderBook) matchBuy(taker *bookOrder) []Trade {
	var trades []Trade
	var emptied []*priceLevel

	ob.asks.Scan(func(lvl *priceLevel) bool {
		if lvl.price.GreaterThan(taker.price) {
			return false
		}
		trades = append(trades, ob.sweepLevel(taker, lvl)...)
		if lvl.orders.Len() == 0 {
			emptied = append(emptied, lvl)
		}
		return taker.amount.IsPositive()
	})

	for _, lvl := range emptied {
		ob.asks.Delete(lvl)
	}
	return trades
}

// matchSell mirrors matchBuy: bids from the highest price down while the
// level price stays at or above the taker's limit. Deeper levels are never
// touched by shallower fills, so each level is visited at most once.
func (ob *OrderBook) matchSell(taker *bookOrder) []Trade {
	top, ok := ob.bids.Max()
	if !ok {
		return nil
	}

	var trades []Trade
	var emptied []*priceLevel

	ob.bids.Descend(top, func(lvl *priceLevel) bool {
		if lvl.price.LessThan(taker.price) {
			return false
		}
		trades = append(trades, ob.sweepLevel(taker, lvl)...)
		if lvl.orders.Len() == 0 {
			emptied = append(emptied, lvl)
		}
		return taker.amount.IsPositive()
	})

	for _, lvl := range emptied {
		ob.bids.Delete(lvl)
	}
	return trades
}

// sweepLevel fills the taker against one level in time priority. Makers pop
// off the front as they fill completely; a partially filled maker keeps its
// reduced amount in place, which also means the taker is done.
func (ob *OrderBook) sweepLevel(taker *bookOrder, lvl *priceLevel) []Trade {
	var trades []Trade

	for taker.amount.IsPositive() && lvl.orders.Len() > 0 {
		maker := lvl.orders.Front()
		qty := decimal.Min(taker.amount, maker.amount)

		trades = append(trades, Trade{
			TradeID:      uuid.NewString(),
			TakerOrderID: taker.id,
			MakerOrderID: maker.id,
			Pair:         taker.pair,
			Price:        renderDecimal(lvl.price),
			Amount:       renderDecimal(qty),
			Timestamp:    time.Now().UnixMilli(),
		})

		taker.amount = taker.amount.Sub(qty)
		if maker.amount.Equal(qty) {
			lvl.orders.PopFront()
		} else {
			maker.amount = maker.amount.Sub(qty)
		}
	}
	return trades
}

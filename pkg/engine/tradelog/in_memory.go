package tradelog

import "github.com/joripage/matching-engine/pkg/orderbook"

type InMemoryLog struct {
	trades  []orderbook.Trade
	byTaker map[string][]int
	byMaker map[string][]int
}

func NewInMemoryLog() *InMemoryLog {
	return &InMemoryLog{
		byTaker: make(map[string][]int),
		byMaker: make(map[string][]int),
	}
}

func (l *InMemoryLog) Append(trades ...orderbook.Trade) {
	for _, t := range trades {
		i := len(l.trades)
		l.trades = append(l.trades, t)
		l.byTaker[t.TakerOrderID] = append(l.byTaker[t.TakerOrderID], i)
		l.byMaker[t.MakerOrderID] = append(l.byMaker[t.MakerOrderID], i)
	}
}

func (l *InMemoryLog) All() []orderbook.Trade {
	return l.trades
}

func (l *InMemoryLog) ByTaker(orderID string) []orderbook.Trade {
	return l.pick(l.byTaker[orderID])
}

func (l *InMemoryLog) ByMaker(orderID string) []orderbook.Trade {
	return l.pick(l.byMaker[orderID])
}

func (l *InMemoryLog) Len() int {
	return len(l.trades)
}

func (l *InMemoryLog) pick(indexes []int) []orderbook.Trade {
	if len(indexes) == 0 {
		return nil
	}
	out := make([]orderbook.Trade, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, l.trades[i])
	}
	return out
}

package tradelog

import (
	"testing"

	"github.com/joripage/matching-engine/pkg/orderbook"
)

func trade(id, taker, maker string) orderbook.Trade {
	return orderbook.Trade{
		TradeID:      id,
		TakerOrderID: taker,
		MakerOrderID: maker,
		Pair:         "BTC/USDC",
		Price:        "100.0",
		Amount:       "1",
	}
}

func TestInMemoryLog(t *testing.T) {
	l := NewInMemoryLog()

	l.Append(trade("t1", "B1", "S1"), trade("t2", "B1", "S2"))
	l.Append(trade("t3", "B2", "S2"))

	if l.Len() != 3 {
		t.Fatalf("expected 3 trades, got %d", l.Len())
	}

	byTaker := l.ByTaker("B1")
	if len(byTaker) != 2 || byTaker[0].TradeID != "t1" || byTaker[1].TradeID != "t2" {
		t.Errorf("incorrect taker index: %+v", byTaker)
	}

	byMaker := l.ByMaker("S2")
	if len(byMaker) != 2 || byMaker[0].TradeID != "t2" || byMaker[1].TradeID != "t3" {
		t.Errorf("incorrect maker index: %+v", byMaker)
	}

	if l.ByTaker("missing") != nil {
		t.Error("expected nil for an unknown taker id")
	}

	all := l.All()
	if len(all) != 3 || all[0].TradeID != "t1" || all[2].TradeID != "t3" {
		t.Errorf("ledger out of append order: %+v", all)
	}
}

func TestAppendEmptyIsNoOp(t *testing.T) {
	l := NewInMemoryLog()
	l.Append()
	if l.Len() != 0 {
		t.Errorf("empty append grew the log to %d", l.Len())
	}
}

package orderbook

import (
	"fmt"
	"testing"
	"time"
)

func createOrder(id, account string, side Side, price, amount string) *Order {
	return &Order{
		TypeOp:     OpCreate,
		AccountID:  account,
		Amount:     amount,
		OrderID:    id,
		Pair:       "BTC/USDC",
		LimitPrice: price,
		Side:       side,
		Timestamp:  time.Now().UnixMilli(),
	}
}

func mustProcess(t *testing.T, ob *OrderBook, order *Order) []Trade {
	t.Helper()
	trades, err := ob.Process(order)
	if err != nil {
		t.Fatalf("process %s %s: %v", order.TypeOp, order.OrderID, err)
	}
	return trades
}

func TestSimpleTradeMatch(t *testing.T) {
	ob := NewOrderBook()

	trades := mustProcess(t, ob, createOrder("1", "1", SELL, "50000.0", "1.0"))
	if len(trades) != 0 {
		t.Fatalf("expected no trades yet, got %d", len(trades))
	}

	trades = mustProcess(t, ob, createOrder("2", "2", BUY, "50000.0", "0.5"))
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	trade := trades[0]
	if trade.TakerOrderID != "2" || trade.MakerOrderID != "1" {
		t.Errorf("incorrect order IDs in trade: %+v", trade)
	}
	if trade.Price != "50000.0" || trade.Amount != "0.5" {
		t.Errorf("incorrect price/amount: %+v", trade)
	}

	// Maker still rests with the reduced amount.
	entries := ob.GenerateOrderBookOutput()
	if len(entries) != 1 {
		t.Fatalf("expected 1 resting order, got %d", len(entries))
	}
	if entries[0].OrderID != "1" || entries[0].Amount != "0.5" {
		t.Errorf("incorrect resting order: %+v", entries[0])
	}
}

func TestCompleteFill(t *testing.T) {
	ob := NewOrderBook()

	mustProcess(t, ob, createOrder("1", "1", SELL, "50000.0", "1.0"))
	trades := mustProcess(t, ob, createOrder("2", "2", BUY, "50000.0", "1.0"))

	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	if trades[0].Amount != "1.0" {
		t.Errorf("expected trade amount 1.0, got %s", trades[0].Amount)
	}

	if entries := ob.GenerateOrderBookOutput(); len(entries) != 0 {
		t.Errorf("expected empty book, got %+v", entries)
	}
	if _, ok := ob.BestAsk(); ok {
		t.Error("expected ask side to have no levels left")
	}
}

func TestPricePriority(t *testing.T) {
	ob := NewOrderBook()

	mustProcess(t, ob, createOrder("1", "1", SELL, "51000.0", "1.0"))
	mustProcess(t, ob, createOrder("2", "1", SELL, "50000.0", "1.0"))

	trades := mustProcess(t, ob, createOrder("3", "2", BUY, "51000.0", "1.0"))
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	if trades[0].MakerOrderID != "2" || trades[0].Price != "50000.0" {
		t.Errorf("expected match with lowest-priced ask, got %+v", trades[0])
	}
}

func TestTimePriority(t *testing.T) {
	ob := NewOrderBook()

	// Two asks at the same price; the earlier one must fill first.
	mustProcess(t, ob, createOrder("S1", "1", SELL, "100", "5"))
	mustProcess(t, ob, createOrder("S2", "2", SELL, "100", "5"))

	trades := mustProcess(t, ob, createOrder("B1", "3", BUY, "100", "10"))
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trades))
	}
	if trades[0].MakerOrderID != "S1" || trades[1].MakerOrderID != "S2" {
		t.Errorf("expected FIFO match order, got %+v", trades)
	}
}

func TestNoMatchDueToPrice(t *testing.T) {
	ob := NewOrderBook()

	mustProcess(t, ob, createOrder("S1", "1", SELL, "100.0", "10"))
	trades := mustProcess(t, ob, createOrder("B1", "2", BUY, "98.0", "10"))
	if len(trades) != 0 {
		t.Fatalf("expected no trades, got %d", len(trades))
	}

	// Both rest, uncrossed.
	bid, _ := ob.BestBid()
	ask, _ := ob.BestAsk()
	if !bid.LessThan(ask) {
		t.Errorf("book left crossed: bid %s >= ask %s", bid, ask)
	}
}

func TestMultiLevelMatch(t *testing.T) {
	ob := NewOrderBook()

	mustProcess(t, ob, createOrder("S1", "1", SELL, "101.0", "5"))
	mustProcess(t, ob, createOrder("S2", "1", SELL, "102.0", "5"))
	mustProcess(t, ob, createOrder("S3", "1", SELL, "103.0", "5"))

	trades := mustProcess(t, ob, createOrder("B1", "2", BUY, "105.0", "15"))
	if len(trades) != 3 {
		t.Fatalf("expected 3 trades, got %d", len(trades))
	}
	if trades[0].Price != "101.0" || trades[2].Price != "103.0" {
		t.Errorf("expected matching from best price up, got %+v", trades)
	}
	if entries := ob.GenerateOrderBookOutput(); len(entries) != 0 {
		t.Errorf("expected empty book, got %+v", entries)
	}
}

func TestSellSweepsBidsDescending(t *testing.T) {
	ob := NewOrderBook()

	mustProcess(t, ob, createOrder("B1", "1", BUY, "100.0", "5"))
	mustProcess(t, ob, createOrder("B2", "1", BUY, "101.0", "5"))
	mustProcess(t, ob, createOrder("B3", "1", BUY, "102.0", "5"))

	// Crosses the two best bids, partially eats the third.
	trades := mustProcess(t, ob, createOrder("S1", "2", SELL, "100.0", "12"))
	if len(trades) != 3 {
		t.Fatalf("expected 3 trades, got %d", len(trades))
	}
	wantPrices := []string{"102.0", "101.0", "100.0"}
	for i, want := range wantPrices {
		if trades[i].Price != want {
			t.Errorf("trade %d: expected price %s, got %s", i, want, trades[i].Price)
		}
	}

	// The deepest level keeps the untraded remainder; no level is visited
	// twice.
	entries := ob.GenerateOrderBookOutput()
	if len(entries) != 1 {
		t.Fatalf("expected 1 resting order, got %d", len(entries))
	}
	if entries[0].OrderID != "B1" || entries[0].Amount != "3" {
		t.Errorf("incorrect remainder: %+v", entries[0])
	}
}

func TestTakerRemainderRests(t *testing.T) {
	ob := NewOrderBook()

	mustProcess(t, ob, createOrder("S1", "1", SELL, "50000.0", "1.0"))
	trades := mustProcess(t, ob, createOrder("B1", "2", BUY, "50000.0", "2.0"))
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}

	entries := ob.GenerateOrderBookOutput()
	if len(entries) != 1 {
		t.Fatalf("expected 1 resting order, got %d", len(entries))
	}
	e := entries[0]
	if e.OrderID != "B1" || e.Side != "BUY" || e.Amount != "1.0" || e.Price != "50000.0" {
		t.Errorf("incorrect resting remainder: %+v", e)
	}
}

func TestLedgerAccumulatesAcrossCalls(t *testing.T) {
	ob := NewOrderBook()

	mustProcess(t, ob, createOrder("S1", "1", SELL, "100", "5"))
	mustProcess(t, ob, createOrder("S2", "1", SELL, "100", "5"))

	first := mustProcess(t, ob, createOrder("B1", "2", BUY, "100", "5"))
	second := mustProcess(t, ob, createOrder("B2", "2", BUY, "100", "5"))

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected 1 trade per call, got %d and %d", len(first), len(second))
	}
	if len(ob.Trades()) != 2 {
		t.Errorf("expected ledger of 2 trades, got %d", len(ob.Trades()))
	}
}

func TestEquivalentPriceTextsShareLevel(t *testing.T) {
	ob := NewOrderBook()

	// Same numeric price in two spellings: one level, FIFO across both.
	mustProcess(t, ob, createOrder("S1", "1", SELL, "50000.0", "1.0"))
	mustProcess(t, ob, createOrder("S2", "1", SELL, "50000.00", "1.0"))

	trades := mustProcess(t, ob, createOrder("B1", "2", BUY, "50000", "2.0"))
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trades))
	}
	for _, trade := range trades {
		if trade.Price != "50000.0" {
			t.Errorf("expected level price 50000.0, got %s", trade.Price)
		}
	}
	if entries := ob.GenerateOrderBookOutput(); len(entries) != 0 {
		t.Errorf("expected empty book, got %+v", entries)
	}
}

func BenchmarkOrderBookMatch(b *testing.B) {
	ob := NewOrderBook()

	for i := 0; i < 10_000; i++ {
		_, _ = ob.Process(&Order{
			TypeOp:     OpCreate,
			AccountID:  "1",
			Amount:     "10",
			OrderID:    fmt.Sprintf("SELL-%d", i),
			Pair:       "BTC/USDC",
			LimitPrice: fmt.Sprintf("%d", 100+i%5),
			Side:       SELL,
		})
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = ob.Process(&Order{
			TypeOp:     OpCreate,
			AccountID:  "2",
			Amount:     "10",
			OrderID:    fmt.Sprintf("BUY-%d", i),
			Pair:       "BTC/USDC",
			LimitPrice: "101",
			Side:       BUY,
		})
	}
}

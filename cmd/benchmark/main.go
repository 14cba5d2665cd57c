package main

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/joripage/matching-engine/pkg/orderbook"
)

const (
	numOrders = 1_000_000
	minPrice  = 100.0
	maxPrice  = 200.0
	minQty    = 1
	maxQty    = 100
)

func randomOrder(id int) *orderbook.Order {
	side := orderbook.BUY
	if rand.Intn(2) == 0 {
		side = orderbook.SELL
	}
	price := minPrice + rand.Float64()*(maxPrice-minPrice)
	qty := rand.Intn(maxQty-minQty+1) + minQty

	return &orderbook.Order{
		TypeOp:     orderbook.OpCreate,
		AccountID:  "bench",
		OrderID:    fmt.Sprintf("ORD-%06d", id),
		Pair:       "BTC/USDC",
		Side:       side,
		LimitPrice: strconv.FormatFloat(float64(int(price*100))/100, 'f', 2, 64),
		Amount:     strconv.Itoa(qty),
		Timestamp:  time.Now().UnixMilli(),
	}
}

func main() {
	rand.Seed(time.Now().UnixNano())

	ob := orderbook.NewOrderBook()

	totalMatched := 0
	start := time.Now()
	for i := 0; i < numOrders; i++ {
		trades, err := ob.Process(randomOrder(i + 1))
		if err != nil {
			log.Fatalf("process: %v", err)
		}
		// In vài dòng đầu để kiểm tra
		if totalMatched < 5 && len(trades) > 0 {
			t := trades[0]
			log.Printf("✅ Match: taker[%s] <=> maker[%s] @ %s qty %s\n",
				t.TakerOrderID, t.MakerOrderID, t.Price, t.Amount)
		}
		totalMatched += len(trades)
	}
	elapsed := time.Since(start)

	fmt.Println("--------")
	fmt.Printf("🏁 Total Orders  : %d\n", numOrders)
	fmt.Printf("✅ Total Matches : %d\n", totalMatched)
	fmt.Printf("📦 Resting Orders: %d\n", len(ob.GenerateOrderBookOutput()))
	fmt.Printf("⏱️ Time Taken    : %s\n", elapsed)
}

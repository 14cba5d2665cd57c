package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/joripage/matching-engine/pkg/engine/rule"
	"github.com/joripage/matching-engine/pkg/engine/tradelog"
	"github.com/joripage/matching-engine/pkg/intake"
	"github.com/joripage/matching-engine/pkg/orderbook"
)

// Engine drives one order book for one pair: pre-trade checks, matching,
// trade-log indexing. Like the book it wraps, it is owned by a single
// caller; hosts wanting concurrent submission serialize in front of it.
type Engine struct {
	pair   string
	book   *orderbook.OrderBook
	log    tradelog.Log
	rules  []rule.Rule
	seen   map[string]struct{}
	logger *zap.Logger
}

type Config struct {
	Pair   string
	Rules  []rule.Rule
	Logger *zap.Logger
}

func New(cfg *Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		pair:   cfg.Pair,
		book:   orderbook.NewOrderBook(),
		log:    tradelog.NewInMemoryLog(),
		rules:  cfg.Rules,
		seen:   make(map[string]struct{}),
		logger: logger,
	}
}

// Submit runs one instruction through the rule chain and the book. The
// error is scoped to this instruction; the book is unchanged when it is
// non-nil. Order ids are unique for the lifetime of the book, so a CREATE
// reusing an id is rejected before it can shadow the earlier order.
func (e *Engine) Submit(order *orderbook.Order) ([]orderbook.Trade, error) {
	if order.TypeOp == orderbook.OpCreate {
		if _, ok := e.seen[order.OrderID]; ok {
			return nil, errDuplicateOrder
		}
		for _, r := range e.rules {
			if err := r.Check(order); err != nil {
				return nil, err
			}
		}
	}

	trades, err := e.book.Process(order)
	if err != nil {
		return nil, err
	}

	if order.TypeOp == orderbook.OpCreate {
		e.seen[order.OrderID] = struct{}{}
	}
	e.log.Append(trades...)
	return trades, nil
}

// Run drains the source and submits every instruction in arrival order.
// Rejected instructions are logged and skipped: one bad instruction never
// aborts the batch.
func (e *Engine) Run(ctx context.Context, src intake.Source) error {
	orders, err := src.ReadOrders(ctx)
	if err != nil {
		return err
	}

	for i := range orders {
		order := &orders[i]
		if _, err := e.Submit(order); err != nil {
			e.logger.Warn("order rejected",
				zap.String("order_id", order.OrderID),
				zap.String("type_op", string(order.TypeOp)),
				zap.Error(err))
		}
	}

	e.logger.Info("batch processed",
		zap.String("pair", e.pair),
		zap.Int("orders", len(orders)),
		zap.Int("trades", e.log.Len()))
	return nil
}

func (e *Engine) Book() *orderbook.OrderBook { return e.book }

func (e *Engine) TradeLog() tradelog.Log { return e.log }

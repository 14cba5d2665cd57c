package intake

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/joripage/matching-engine/pkg/orderbook"
)

type KafkaSourceConfig struct {
	Brokers            []string `yaml:"brokers"`
	Topic              string   `yaml:"topic"`
	GroupID            string   `yaml:"group_id"`
	MaxOrders          int      `yaml:"max_orders"`
	IdleTimeoutSeconds int      `yaml:"idle_timeout_seconds"`
}

// KafkaSource drains one topic with a single sequential reader. The topic
// carries one partition: matching needs a total arrival order, so a worker
// pool that interleaves instructions is exactly what this source avoids.
// Message log-append time becomes the arrival timestamp.
type KafkaSource struct {
	cfg    KafkaSourceConfig
	r      *kafka.Reader
	logger *zap.Logger
}

func NewKafkaSource(cfg KafkaSourceConfig, logger *zap.Logger) *KafkaSource {
	if cfg.MaxOrders <= 0 {
		cfg.MaxOrders = 10_000
	}
	if cfg.IdleTimeoutSeconds <= 0 {
		cfg.IdleTimeoutSeconds = 2
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		GroupID:     cfg.GroupID,
		Topic:       cfg.Topic,
		StartOffset: kafka.FirstOffset,
		MaxWait:     500 * time.Millisecond,
		MinBytes:    1,
		MaxBytes:    10 << 20,
	})

	return &KafkaSource{cfg: cfg, r: r, logger: logger}
}

// ReadOrders fetches until MaxOrders instructions arrive or the topic goes
// idle, so a batch run terminates. Malformed payloads are skipped with a
// diagnostic and committed, matching the per-instruction failure scoping of
// the engine.
func (s *KafkaSource) ReadOrders(ctx context.Context) ([]orderbook.Order, error) {
	idle := time.Duration(s.cfg.IdleTimeoutSeconds) * time.Second
	orders := make([]orderbook.Order, 0, s.cfg.MaxOrders)

	for len(orders) < s.cfg.MaxOrders {
		fetchCtx, cancel := context.WithTimeout(ctx, idle)
		m, err := s.r.FetchMessage(fetchCtx)
		cancel()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				break // topic drained for this batch
			}
			return nil, err
		}

		var order orderbook.Order
		if err := json.Unmarshal(m.Value, &order); err != nil {
			s.logger.Warn("skip malformed order payload",
				zap.String("topic", m.Topic),
				zap.Int64("offset", m.Offset),
				zap.Error(err))
			_ = s.r.CommitMessages(ctx, m)
			continue
		}
		order.Timestamp = m.Time.UnixMilli()
		orders = append(orders, order)

		if err := s.r.CommitMessages(ctx, m); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (s *KafkaSource) Close() error {
	return s.r.Close()
}

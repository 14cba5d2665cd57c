package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/joripage/matching-engine/config"
	"github.com/joripage/matching-engine/pkg/engine"
	"github.com/joripage/matching-engine/pkg/engine/rule"
	"github.com/joripage/matching-engine/pkg/intake"
	"github.com/joripage/matching-engine/pkg/logging"
	"github.com/joripage/matching-engine/pkg/report"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = logging.WithRequestID(ctx, "")
	logger = logging.For(ctx, logger)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	rules := []rule.Rule{rule.Pair(cfg.Pair)}
	if cfg.TickRuleFile != "" {
		tickRule, err := rule.NewTickSizeRuleFromFile(cfg.TickRuleFile)
		if err != nil {
			logger.Fatal("load tick rules", zap.Error(err))
		}
		rules = append(rules, tickRule)
	}

	var source intake.Source
	switch cfg.Input.Kind {
	case "kafka":
		if cfg.Input.Kafka == nil {
			logger.Fatal("input kind is kafka but no kafka config given")
		}
		ks := intake.NewKafkaSource(*cfg.Input.Kafka, logger)
		defer ks.Close() //nolint:errcheck
		source = ks
	default:
		source = intake.NewFileSource(cfg.Input.File)
	}

	eng := engine.New(&engine.Config{Pair: cfg.Pair, Rules: rules, Logger: logger})
	if err := eng.Run(ctx, source); err != nil {
		logger.Fatal("process batch", zap.Error(err))
	}

	book := eng.Book()
	writer := report.NewWriter(cfg.Output.OrderBookFile, cfg.Output.TradesFile)
	if err := writer.Write(book.GenerateOrderBookOutput(), book.Trades()); err != nil {
		logger.Fatal("write results", zap.Error(err))
	}

	logger.Info("processing complete",
		zap.Int("trades", len(book.Trades())),
		zap.String("order_book_file", cfg.Output.OrderBookFile),
		zap.String("trades_file", cfg.Output.TradesFile))
}

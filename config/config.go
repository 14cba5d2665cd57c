package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/joripage/matching-engine/pkg/intake"
)

type InputConfig struct {
	Kind  string                    `yaml:"kind"` // "file" (default) or "kafka"
	File  string                    `yaml:"file"`
	Kafka *intake.KafkaSourceConfig `yaml:"kafka"`
}

type OutputConfig struct {
	OrderBookFile string `yaml:"order_book_file"`
	TradesFile    string `yaml:"trades_file"`
}

type AppConfig struct {
	ServiceName  string        `yaml:"service_name"`
	Pair         string        `yaml:"pair"`
	LogLevel     string        `yaml:"log_level"`
	TickRuleFile string        `yaml:"tick_rule_file"`
	Input        *InputConfig  `yaml:"input"`
	Output       *OutputConfig `yaml:"output"`
}

// Load load config from file and environment variables.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	fields := []interface{}{
		"func",
		"config.readFromFile",
		"filePath",
		filePath,
	}

	sugar := zap.S().With(fields...)

	sugar.Debug("Load config...")

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	cfg := &AppConfig{}

	err = yaml.Unmarshal(configBytes, cfg)
	if err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	if cfg.Input == nil {
		cfg.Input = &InputConfig{Kind: "file", File: "orders.json"}
	}
	if cfg.Output == nil {
		cfg.Output = &OutputConfig{OrderBookFile: "orderbook.json", TradesFile: "trades.json"}
	}

	return cfg, nil
}

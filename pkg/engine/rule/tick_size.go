package rule

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/joripage/matching-engine/pkg/orderbook"
)

type tickSizeConfig struct {
	MaxPrice string `json:"maxPrice"` // "" = no upper bound
	Step     string `json:"step"`
}

type tickStep struct {
	maxPrice decimal.Decimal // zero = no upper bound
	step     decimal.Decimal
}

// TickSizeRule holds per-pair price steps: a limit price must be a multiple
// of the step that covers its band.
type TickSizeRule struct {
	steps map[string][]tickStep
}

// NewTickSizeRuleFromFile loads the step table from a JSON file keyed by
// pair.
func NewTickSizeRuleFromFile(path string) (*TickSizeRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg map[string][]tickSizeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	r := &TickSizeRule{steps: make(map[string][]tickStep)}
	for pair, bands := range cfg {
		for _, band := range bands {
			step, err := decimal.NewFromString(band.Step)
			if err != nil || !step.IsPositive() {
				return nil, fmt.Errorf("invalid step %q for %s", band.Step, pair)
			}
			maxPrice := decimal.Zero
			if band.MaxPrice != "" {
				maxPrice, err = decimal.NewFromString(band.MaxPrice)
				if err != nil {
					return nil, fmt.Errorf("invalid maxPrice %q for %s", band.MaxPrice, pair)
				}
			}
			r.steps[pair] = append(r.steps[pair], tickStep{maxPrice: maxPrice, step: step})
		}
	}
	return r, nil
}

func (r *TickSizeRule) Check(order *orderbook.Order) error {
	bands, ok := r.steps[order.Pair]
	if !ok { // no config -> no rule
		return nil
	}

	price, err := decimal.NewFromString(order.LimitPrice)
	if err != nil {
		return nil // malformed prices are the book's rejection, not ours
	}

	for _, band := range bands {
		if band.maxPrice.IsZero() || price.LessThanOrEqual(band.maxPrice) {
			if !price.Mod(band.step).IsZero() {
				return fmt.Errorf("price %s not aligned to tick %s", order.LimitPrice, band.step)
			}
			return nil
		}
	}

	return nil
}

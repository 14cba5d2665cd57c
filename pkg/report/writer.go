package report

import (
	"encoding/json"
	"os"

	"github.com/joripage/matching-engine/pkg/orderbook"
)

// Writer serializes the final book snapshot and trade ledger to two
// pretty-printed JSON files.
type Writer struct {
	OrderBookPath string
	TradesPath    string
}

func NewWriter(orderBookPath, tradesPath string) *Writer {
	return &Writer{OrderBookPath: orderBookPath, TradesPath: tradesPath}
}

func (w *Writer) Write(entries []orderbook.OrderBookEntry, trades []orderbook.Trade) error {
	if err := writeJSON(w.OrderBookPath, entries); err != nil {
		return err
	}
	return writeJSON(w.TradesPath, trades)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

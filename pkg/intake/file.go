package intake

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/joripage/matching-engine/pkg/orderbook"
)

// FileSource reads a JSON array of instructions from one file and stamps
// arrival timestamps in file order.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) ReadOrders(_ context.Context) ([]orderbook.Order, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}

	var orders []orderbook.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, err
	}

	// Repeated millis are fine: arrival order only has to be
	// non-decreasing, queue position breaks ties.
	for i := range orders {
		orders[i].Timestamp = time.Now().UnixMilli()
	}
	return orders, nil
}

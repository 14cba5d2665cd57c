package orderbook

import "github.com/shopspring/decimal"

type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

type OpType string

const (
	OpCreate OpType = "CREATE"
	OpDelete OpType = "DELETE"
)

// Order is a single book instruction as it crosses the process boundary.
// Price and amount stay exact-decimal text until Process parses them; the
// timestamp is assigned by the caller at arrival time, never by the book.
type Order struct {
	TypeOp     OpType `json:"type_op"`
	AccountID  string `json:"account_id"`
	Amount     string `json:"amount"`
	OrderID    string `json:"order_id"`
	Pair       string `json:"pair"`
	LimitPrice string `json:"limit_price"`
	Side       Side   `json:"side"`
	Timestamp  int64  `json:"-"`
}

// bookOrder is an order resting in the book, numerics parsed. The book owns
// it exclusively once inserted; only matching mutates its amount.
type bookOrder struct {
	id        string
	accountID string
	pair      string
	side      Side
	price     decimal.Decimal
	amount    decimal.Decimal
	timestamp int64
}

// renderDecimal re-renders a decimal keeping the scale it carried in, so
// "50000.0" round-trips as "50000.0" and not "50000".
func renderDecimal(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}

package orderbook

import "errors"

var (
	ErrUnknownOp         = errors.New("unknown order operation")
	ErrUnknownSide       = errors.New("unknown order side")
	ErrMalformedPrice    = errors.New("malformed limit price")
	ErrMalformedAmount   = errors.New("malformed amount")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

package engine

import "errors"

var errDuplicateOrder = errors.New("duplicate order id")

package exchange

import (
	"errors"
	"fmt"
)

// ErrQuoteNotFound is returned when no quote exists for a composite
// code. Non-fatal: price resolution falls back or returns zero.
var ErrQuoteNotFound = errors.New("exchange quote not found")

// ErrMalformedExchangeCode indicates an exchange preference string that
// is not two underscore-delimited parts. Resolution still falls back to
// the universe average; the anomaly should be logged.
type ErrMalformedExchangeCode struct {
	Code string
}

func (e *ErrMalformedExchangeCode) Error() string {
	return fmt.Sprintf("invalid exchange code %q, must be two underscore-separated parts", e.Code)
}

package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for amount text that is not a number.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount converts edit input to an amount in minor currency units.
// Blank input is zero. Non-numeric input is rejected rather than stored, so a
// bad edit never reaches the ledger.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q", ErrInvalidAmount, s)
	}
	return d, nil
}

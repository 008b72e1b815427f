package render

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money formats amounts held in minor currency units, e.g. "UGX 150,000".
type Money struct {
	code string
	f    *money.Formatter
}

// NewMoney returns a formatter for an ISO currency code. Separators and the
// number of fraction digits come from the currency table; unknown codes are
// shown without fraction digits.
func NewMoney(code string) Money {
	code = strings.ToUpper(strings.TrimSpace(code))
	fraction, dec, thousand := 0, ".", ","
	if cur := money.GetCurrency(code); cur != nil {
		fraction, dec, thousand = cur.Fraction, cur.Decimal, cur.Thousand
	}
	return Money{code: code, f: money.NewFormatter(fraction, dec, thousand, code, "$ 1")}
}

// Code returns the currency code.
func (m Money) Code() string {
	return m.code
}

// Format renders an amount with its sign, e.g. "-UGX 54,000".
func (m Money) Format(d decimal.Decimal) string {
	return m.f.Format(d.Round(0).IntPart())
}

// Paren renders negative amounts in parentheses, e.g. "(UGX 137,000)".
func (m Money) Paren(d decimal.Decimal) string {
	if d.IsNegative() {
		return "(" + m.Format(d.Abs()) + ")"
	}
	return m.Format(d)
}

package decimal

import (
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO 4217 code used when none is configured.
const DefaultCurrency = gomoney.INR

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// FormatIn formats the amount with the grapheme and grouping of the given
// ISO 4217 currency code. Unknown codes fall back to the default currency.
func (m Money) FormatIn(code string) string {
	cur := currency(code)
	minor := m.Decimal.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}

// FormatCode formats the amount prefixed with the currency code instead of
// its grapheme ("INR 1,234.50"). Used where only Latin-1 text is available.
func (m Money) FormatCode(code string) string {
	cur := currency(code)
	minor := m.Decimal.Shift(int32(cur.Fraction)).Round(0).IntPart()
	f := gomoney.NewFormatter(cur.Fraction, cur.Decimal, cur.Thousand, "", "1")
	return cur.Code + " " + f.Format(minor)
}

// ValidCurrency reports whether go-money knows the given code.
func ValidCurrency(code string) bool {
	return gomoney.GetCurrency(strings.ToUpper(strings.TrimSpace(code))) != nil
}

func currency(code string) *gomoney.Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	if c := gomoney.GetCurrency(code); c != nil {
		return c
	}
	return gomoney.GetCurrency(DefaultCurrency)
}

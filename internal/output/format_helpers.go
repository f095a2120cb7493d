package output

import (
	"strconv"

	money "github.com/aslearntocode/financial-health-sub000/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal with the grapheme and grouping of the
// given ISO 4217 code. Unknown codes use the default currency.
func FormatCurrency(amount decimal.Decimal, code string) string {
	return money.NewMoneyFromDecimal(amount).FormatIn(code)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatImpact renders a point delta with an explicit sign.
func FormatImpact(points int) string {
	if points > 0 {
		return "+" + strconv.Itoa(points)
	}
	return strconv.Itoa(points)
}

package dateutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted on the command line.
const DateLayout = "2006-01-02"

var monthsPerYear = decimal.NewFromInt(12)

// ParseDate parses a YYYY-MM-DD date in UTC
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// MonthsUntilDate counts the whole calendar months from fromDate to toDate.
// A month is only complete once its day of month is reached, the same way a
// birthday completes a year of age. Dates in the past give a negative count.
func MonthsUntilDate(fromDate, toDate time.Time) int {
	months := (toDate.Year()-fromDate.Year())*12 + int(toDate.Month()) - int(fromDate.Month())
	switch {
	case months > 0 && toDate.Day() < fromDate.Day():
		months--
	case months < 0 && toDate.Day() > fromDate.Day():
		months++
	}
	return months
}

// YearsUntilDate returns the whole-month horizon between two dates in years
func YearsUntilDate(fromDate, toDate time.Time) decimal.Decimal {
	return decimal.NewFromInt(int64(MonthsUntilDate(fromDate, toDate))).Div(monthsPerYear)
}

package calculation

import (
	"errors"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidHorizon is returned when a goal is solved over a non-positive horizon.
var ErrInvalidHorizon = errors.New("savings horizon must be positive")

var (
	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
	one           = decimal.NewFromInt(1)
)

const (
	// growthPrecision bounds the digits kept for compounding factors.
	growthPrecision = 18
	// monthsPrecision absorbs the division error of horizons built from a
	// month count, so 61/12 years is exactly 61 months again.
	monthsPrecision = 8
)

// horizonMonths converts a horizon in years into months.
func horizonMonths(years decimal.Decimal) decimal.Decimal {
	return years.Mul(monthsPerYear).Round(monthsPrecision)
}

// MonthlyRate converts an annual percentage return into a monthly rate.
func MonthlyRate(annualReturnPercent decimal.Decimal) decimal.Decimal {
	return annualReturnPercent.Div(hundred).Div(monthsPerYear)
}

// growthFactor returns (1 + monthlyRate)^months.
func growthFactor(monthlyRate, months decimal.Decimal) decimal.Decimal {
	return one.Add(monthlyRate).Pow(months).Round(growthPrecision)
}

// futureValues returns the future value of the lump sum and of the monthly
// contribution series after the given number of months.
func futureValues(currentSavings, monthlySavings, monthlyRate, months decimal.Decimal) (lump, contributions decimal.Decimal) {
	growth := growthFactor(monthlyRate, months)
	lump = currentSavings.Mul(growth)
	if monthlyRate.IsZero() {
		// No growth: the annuity formula would divide by zero.
		return lump, monthlySavings.Mul(months)
	}
	contributions = monthlySavings.Mul(growth.Sub(one).Div(monthlyRate))
	return lump, contributions
}

// ProjectCorpus projects the value of a savings plan combining a lump sum and a
// monthly contribution, rounded to the nearest whole currency unit. Inputs are
// not range checked.
func ProjectCorpus(currentSavings, monthlySavings, years, annualReturnPercent decimal.Decimal) decimal.Decimal {
	rate := MonthlyRate(annualReturnPercent)
	lump, contributions := futureValues(currentSavings, monthlySavings, rate, horizonMonths(years))
	return lump.Add(contributions).Round(0)
}

// ProjectCorpusDetailed returns the same projection as ProjectCorpus with its breakdown.
func ProjectCorpusDetailed(input domain.CorpusProjectionInput) domain.CorpusProjection {
	rate := MonthlyRate(input.ExpectedAnnualReturnPercent)
	months := horizonMonths(input.Years)
	lump, contributions := futureValues(input.CurrentSavings, input.MonthlySavings, rate, months)
	contributed := input.CurrentSavings.Add(input.MonthlySavings.Mul(months))
	final := lump.Add(contributions).Round(0)

	return domain.CorpusProjection{
		Input:                   input,
		MonthlyRate:             rate,
		TotalMonths:             months,
		LumpSumFutureValue:      lump.Round(2),
		ContributionFutureValue: contributions.Round(2),
		TotalContributed:        contributed.Round(2),
		TotalGrowth:             final.Sub(contributed).Round(2),
		FinalValue:              final,
	}
}

// ProjectCorpusSchedule evaluates the projection at the end of every year of the
// horizon. A fractional final year gets its own row. Non-positive horizons
// produce an empty schedule.
func ProjectCorpusSchedule(input domain.CorpusProjectionInput) []domain.YearlyBalance {
	if !input.Years.IsPositive() {
		return []domain.YearlyBalance{}
	}

	rate := MonthlyRate(input.ExpectedAnnualReturnPercent)
	totalMonths := horizonMonths(input.Years)
	fullYears := int(input.Years.Floor().IntPart())

	schedule := make([]domain.YearlyBalance, 0, fullYears+1)
	row := func(year int, months decimal.Decimal) domain.YearlyBalance {
		lump, contributions := futureValues(input.CurrentSavings, input.MonthlySavings, rate, months)
		balance := lump.Add(contributions).Round(2)
		contributed := input.CurrentSavings.Add(input.MonthlySavings.Mul(months)).Round(2)
		return domain.YearlyBalance{
			Year:        year,
			Months:      months,
			Contributed: contributed,
			Growth:      balance.Sub(contributed),
			Balance:     balance,
		}
	}

	for year := 1; year <= fullYears; year++ {
		schedule = append(schedule, row(year, decimal.NewFromInt(int64(year)).Mul(monthsPerYear)))
	}
	if !input.Years.Equal(decimal.NewFromInt(int64(fullYears))) {
		schedule = append(schedule, row(fullYears+1, totalMonths))
	}
	return schedule
}

// RequiredMonthlySavings solves for the monthly contribution that brings
// currentSavings to target over the horizon, rounded up to a whole unit.
// It returns zero when the lump sum alone reaches the target.
func RequiredMonthlySavings(target, currentSavings, years, annualReturnPercent decimal.Decimal) (decimal.Decimal, error) {
	if !years.IsPositive() {
		return decimal.Zero, ErrInvalidHorizon
	}

	rate := MonthlyRate(annualReturnPercent)
	months := horizonMonths(years)
	growth := growthFactor(rate, months)

	remaining := target.Sub(currentSavings.Mul(growth))
	if !remaining.IsPositive() {
		return decimal.Zero, nil
	}

	var required decimal.Decimal
	if rate.IsZero() {
		required = remaining.Div(months)
	} else {
		required = remaining.Mul(rate).Div(growth.Sub(one))
	}
	return required.Ceil(), nil
}

// EvaluateGoal checks a plan against a target corpus.
func EvaluateGoal(goal domain.SavingsGoal, plan domain.CorpusPlan) (domain.GoalReport, error) {
	required, err := RequiredMonthlySavings(goal.Target, plan.CurrentSavings, plan.Years, plan.ExpectedAnnualReturnPercent)
	if err != nil {
		return domain.GoalReport{}, err
	}

	projected := ProjectCorpus(plan.CurrentSavings, plan.MonthlySavings, plan.Years, plan.ExpectedAnnualReturnPercent)
	shortfall := goal.Target.Sub(projected)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}

	return domain.GoalReport{
		Name:                   goal.Name,
		Plan:                   plan.Name,
		Target:                 goal.Target,
		ProjectedValue:         projected,
		CurrentMonthlySavings:  plan.MonthlySavings,
		RequiredMonthlySavings: required,
		Shortfall:              shortfall,
		OnTrack:                shortfall.IsZero(),
	}, nil
}

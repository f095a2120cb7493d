package domain

import "github.com/shopspring/decimal"

// CorpusProjectionInput holds the parameters of a savings plan projection.
type CorpusProjectionInput struct {
	CurrentSavings              decimal.Decimal `yaml:"current_savings" json:"current_savings"`
	MonthlySavings              decimal.Decimal `yaml:"monthly_savings" json:"monthly_savings"`
	Years                       decimal.Decimal `yaml:"years" json:"years"`
	ExpectedAnnualReturnPercent decimal.Decimal `yaml:"expected_annual_return_percent" json:"expected_annual_return_percent"`
}

// CorpusProjection is the breakdown of a projected corpus.
type CorpusProjection struct {
	Input                   CorpusProjectionInput `json:"input"`
	MonthlyRate             decimal.Decimal       `json:"monthly_rate"`
	TotalMonths             decimal.Decimal       `json:"total_months"`
	LumpSumFutureValue      decimal.Decimal       `json:"lump_sum_future_value"`
	ContributionFutureValue decimal.Decimal       `json:"contribution_future_value"`
	TotalContributed        decimal.Decimal       `json:"total_contributed"`
	TotalGrowth             decimal.Decimal       `json:"total_growth"`
	// FinalValue is rounded to the nearest whole currency unit.
	FinalValue decimal.Decimal `json:"final_value"`
}

// YearlyBalance is one row of a year-by-year corpus schedule.
type YearlyBalance struct {
	Year        int             `json:"year"`
	Months      decimal.Decimal `json:"months"`
	Contributed decimal.Decimal `json:"contributed"`
	Growth      decimal.Decimal `json:"growth"`
	Balance     decimal.Decimal `json:"balance"`
}

// CorpusPlan is a named projection input from a configuration file.
type CorpusPlan struct {
	Name                  string `yaml:"name" json:"name"`
	CorpusProjectionInput `yaml:",inline"`
}

// SavingsGoal is a target corpus to reach under a named plan's horizon and return.
type SavingsGoal struct {
	Name   string          `yaml:"name" json:"name"`
	Plan   string          `yaml:"plan" json:"plan"`
	Target decimal.Decimal `yaml:"target" json:"target"`
}

// CorpusReport pairs a plan with its projection and schedule.
type CorpusReport struct {
	Name       string           `json:"name"`
	Projection CorpusProjection `json:"projection"`
	Schedule   []YearlyBalance  `json:"schedule"`
}

// GoalReport tells whether a plan reaches its goal and what it would take.
type GoalReport struct {
	Name                   string          `json:"name"`
	Plan                   string          `json:"plan"`
	Target                 decimal.Decimal `json:"target"`
	ProjectedValue         decimal.Decimal `json:"projected_value"`
	CurrentMonthlySavings  decimal.Decimal `json:"current_monthly_savings"`
	RequiredMonthlySavings decimal.Decimal `json:"required_monthly_savings"`
	Shortfall              decimal.Decimal `json:"shortfall"`
	OnTrack                bool            `json:"on_track"`
}

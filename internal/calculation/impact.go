package calculation

import (
	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	scoreScale = decimal.NewFromInt(domain.MaxScore)

	newLoanWeight       = decimal.RequireFromString("-0.279")
	payOverdueWeight    = decimal.RequireFromString("0.145")
	writeOffWeight      = decimal.RequireFromString("0.151")
	settlementCredit    = decimal.RequireFromString("0.7")
	accountAgeWeight    = decimal.RequireFromString("0.16")
	utilizationWeight   = decimal.RequireFromString("0.07")
	utilizationPerPoint = decimal.RequireFromString("0.7")

	newLoanBasePenalty  = decimal.NewFromInt(-25)
	newLoanStep         = decimal.NewFromInt(100000)
	payDivisor          = decimal.NewFromInt(5000)
	settleDivisor       = decimal.NewFromInt(7000)
	accountAgeScaleYear = decimal.NewFromInt(10)
)

// weightBound returns floor(MaxScore * weight).
func weightBound(weight decimal.Decimal) decimal.Decimal {
	return scoreScale.Mul(weight).Floor()
}

func weightCap(weight decimal.Decimal) int {
	return int(weightBound(weight).IntPart())
}

// toInt converts an already bounded whole number of points.
func toInt(d decimal.Decimal) int {
	return int(d.Floor().IntPart())
}

// CalculateImpact returns the illustrative point delta for a hypothetical action.
// The magnitude is an amount, a year count or a percentage depending on kind.
// Unknown kinds have no impact. Any magnitude saturates at the kind's cap.
func CalculateImpact(kind domain.ActionKind, magnitude decimal.Decimal) int {
	switch kind {
	case domain.ActionNewLoan:
		// Larger loans cost more, but never more than the base penalty.
		penalty := newLoanBasePenalty.Sub(magnitude.Div(newLoanStep).Floor())
		return toInt(decimal.Max(weightBound(newLoanWeight), penalty))
	case domain.ActionPayOverdue:
		return toInt(decimal.Min(weightBound(payOverdueWeight), magnitude.Div(payDivisor).Floor()))
	case domain.ActionPayWriteOff:
		return toInt(decimal.Min(weightBound(writeOffWeight), magnitude.Div(payDivisor).Floor()))
	case domain.ActionSettleWriteOff:
		return toInt(decimal.Min(weightBound(writeOffWeight.Mul(settlementCredit)), magnitude.Div(settleDivisor).Floor()))
	case domain.ActionAccountAge:
		perYear := weightBound(accountAgeWeight).Div(accountAgeScaleYear).Floor()
		return toInt(decimal.Min(magnitude.Mul(perYear).Floor(), weightBound(accountAgeWeight)))
	case domain.ActionUtilization:
		return toInt(decimal.Min(magnitude.Mul(utilizationPerPoint).Floor(), weightBound(utilizationWeight)))
	default:
		return 0
	}
}

// ImpactCap returns the bound on the delta for kind: the most negative value
// for a new loan, the largest gain for everything else.
func ImpactCap(kind domain.ActionKind) int {
	switch kind {
	case domain.ActionNewLoan:
		return weightCap(newLoanWeight)
	case domain.ActionPayOverdue:
		return weightCap(payOverdueWeight)
	case domain.ActionPayWriteOff:
		return weightCap(writeOffWeight)
	case domain.ActionSettleWriteOff:
		return weightCap(writeOffWeight.Mul(settlementCredit))
	case domain.ActionAccountAge:
		return weightCap(accountAgeWeight)
	case domain.ActionUtilization:
		return weightCap(utilizationWeight)
	default:
		return 0
	}
}

// ImpactWeights lists every known action with its cap.
func ImpactWeights() []domain.ActionWeight {
	kinds := domain.AllActionKinds()
	weights := make([]domain.ActionWeight, 0, len(kinds))
	for _, k := range kinds {
		weights = append(weights, domain.ActionWeight{
			Action:      k,
			Description: k.Description(),
			Unit:        k.Unit(),
			Cap:         ImpactCap(k),
		})
	}
	return weights
}

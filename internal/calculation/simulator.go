package calculation

import (
	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// Simulator holds the what-if actions recorded during one session.
// It is owned by a single caller and is not safe for concurrent use.
type Simulator struct {
	actions []domain.SimulatedAction
}

// NewSimulator creates an empty simulator
func NewSimulator() *Simulator {
	return &Simulator{}
}

// RestoreSimulator rebuilds a simulator from previously recorded actions.
// Stored impacts are kept as they are.
func RestoreSimulator(actions []domain.SimulatedAction) *Simulator {
	return &Simulator{actions: append([]domain.SimulatedAction(nil), actions...)}
}

// Record computes the impact of an action and appends it to the session.
// currentValue is carried for display only.
func (s *Simulator) Record(kind domain.ActionKind, currentValue, newValue decimal.Decimal) domain.SimulatedAction {
	action := domain.SimulatedAction{
		Action:       kind,
		CurrentValue: currentValue,
		NewValue:     newValue,
		Impact:       CalculateImpact(kind, newValue),
	}
	s.actions = append(s.actions, action)
	return action
}

// Actions returns a copy of the recorded actions in recording order.
func (s *Simulator) Actions() []domain.SimulatedAction {
	return append([]domain.SimulatedAction(nil), s.actions...)
}

// Len returns the number of recorded actions.
func (s *Simulator) Len() int {
	return len(s.actions)
}

// TotalImpact sums the recorded deltas.
func (s *Simulator) TotalImpact() int {
	total := 0
	for _, a := range s.actions {
		total += a.Impact
	}
	return total
}

// ProjectedScore returns baseScore plus every recorded delta. The result is
// not clamped to the score range.
func (s *Simulator) ProjectedScore(baseScore decimal.Decimal) decimal.Decimal {
	return baseScore.Add(decimal.NewFromInt(int64(s.TotalImpact())))
}

// Clear discards every recorded action.
func (s *Simulator) Clear() {
	s.actions = nil
}

// Report summarises the session against baseScore.
func (s *Simulator) Report(baseScore decimal.Decimal) domain.SimulationReport {
	projected := s.ProjectedScore(baseScore)
	actions := s.Actions()
	if actions == nil {
		actions = []domain.SimulatedAction{}
	}
	return domain.SimulationReport{
		BaseScore:      baseScore,
		Actions:        actions,
		TotalImpact:    s.TotalImpact(),
		ProjectedScore: projected,
		OutOfRange:     projected.IsNegative() || projected.GreaterThan(decimal.NewFromInt(domain.MaxScore)),
	}
}

package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	money "github.com/aslearntocode/financial-health-sub000/pkg/decimal"
)

// CalculationEngine runs a configuration through both calculators
type CalculationEngine struct {
	Logger Logger
	// Now stamps generated results; overridable for deterministic output.
	Now func() time.Time
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger: NopLogger{},
		Now:    time.Now,
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunConfiguration replays the configured simulations against the base score,
// projects every corpus plan and evaluates every goal.
func (ce *CalculationEngine) RunConfiguration(ctx context.Context, config *domain.Configuration) (*domain.CalculationResults, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	currency := config.Currency
	if currency == "" {
		currency = money.DefaultCurrency
	}

	results := &domain.CalculationResults{
		GeneratedAt: ce.Now(),
		Currency:    currency,
		Simulation:  ce.RunSimulations(config),
		Corpus:      make([]domain.CorpusReport, 0, len(config.CorpusPlans)),
	}

	for _, plan := range config.CorpusPlans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results.Corpus = append(results.Corpus, ce.ProjectPlan(plan))
	}

	for _, goal := range config.Goals {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		plan, ok := config.Plan(goal.Plan)
		if !ok {
			return nil, fmt.Errorf("goal %q references unknown plan %q", goal.Name, goal.Plan)
		}
		report, err := EvaluateGoal(goal, plan)
		if err != nil {
			return nil, fmt.Errorf("goal %q: %w", goal.Name, err)
		}
		ce.Logger.Debugf("goal %s: target=%s required_monthly=%s on_track=%t",
			goal.Name, goal.Target.StringFixed(0), report.RequiredMonthlySavings.StringFixed(0), report.OnTrack)
		results.Goals = append(results.Goals, report)
	}

	return results, nil
}

// RunSimulations replays the configured steps through a fresh simulator.
func (ce *CalculationEngine) RunSimulations(config *domain.Configuration) domain.SimulationReport {
	sim := NewSimulator()
	for _, step := range config.Simulations {
		action := sim.Record(step.Action, step.CurrentValue, step.NewValue)
		ce.Logger.Debugf("simulated %s new_value=%s impact=%d", action.Action, action.NewValue.String(), action.Impact)
	}

	report := sim.Report(config.BaseScore)
	if report.OutOfRange {
		ce.Logger.Warnf("projected score %s is outside 0-%d", report.ProjectedScore.String(), domain.MaxScore)
	}
	return report
}

// ProjectPlan projects a single named plan with its yearly schedule.
func (ce *CalculationEngine) ProjectPlan(plan domain.CorpusPlan) domain.CorpusReport {
	projection := ProjectCorpusDetailed(plan.CorpusProjectionInput)
	ce.Logger.Debugf("plan %s: months=%s final=%s", plan.Name, projection.TotalMonths.String(), projection.FinalValue.String())
	return domain.CorpusReport{
		Name:       plan.Name,
		Projection: projection,
		Schedule:   ProjectCorpusSchedule(plan.CorpusProjectionInput),
	}
}

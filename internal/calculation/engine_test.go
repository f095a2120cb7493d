package calculation

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.add("DEBUG", format, args...) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.add("INFO", format, args...) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.add("WARN", format, args...) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.add("ERROR", format, args...) }
func (r *recordingLogger) add(level, format string, args ...any) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func testConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Currency:  "INR",
		BaseScore: decimal.NewFromInt(700),
		Simulations: []domain.SimulationStep{
			{Action: domain.ActionPayOverdue, CurrentValue: decimal.NewFromInt(40000), NewValue: decimal.NewFromInt(40000)},
			{Action: domain.ActionUtilization, NewValue: decimal.NewFromInt(30)},
			{Action: domain.ActionNewLoan, NewValue: decimal.NewFromInt(500000)},
		},
		CorpusPlans: []domain.CorpusPlan{
			{
				Name: "retirement",
				CorpusProjectionInput: domain.CorpusProjectionInput{
					CurrentSavings:              decimal.NewFromInt(100000),
					MonthlySavings:              decimal.NewFromInt(5000),
					Years:                       decimal.NewFromInt(5),
					ExpectedAnnualReturnPercent: decimal.NewFromInt(12),
				},
			},
		},
		Goals: []domain.SavingsGoal{
			{Name: "ten lakh", Plan: "retirement", Target: decimal.NewFromInt(1000000)},
		},
	}
}

func TestRunConfiguration(t *testing.T) {
	engine := NewCalculationEngine()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	engine.Now = func() time.Time { return fixed }

	results, err := engine.RunConfiguration(context.Background(), testConfiguration())
	require.NoError(t, err)

	assert.Equal(t, fixed, results.GeneratedAt)
	assert.Equal(t, "INR", results.Currency)

	// 8 + 21 - 30
	assert.Equal(t, -1, results.Simulation.TotalImpact)
	assert.Equal(t, "699", results.Simulation.ProjectedScore.String())
	assert.Len(t, results.Simulation.Actions, 3)

	require.Len(t, results.Corpus, 1)
	assert.Equal(t, "590018", results.Corpus[0].Projection.FinalValue.String())
	assert.Len(t, results.Corpus[0].Schedule, 5)

	require.Len(t, results.Goals, 1)
	assert.False(t, results.Goals[0].OnTrack)
}

func TestRunConfigurationDefaultsCurrency(t *testing.T) {
	cfg := testConfiguration()
	cfg.Currency = ""
	results, err := NewCalculationEngine().RunConfiguration(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "INR", results.Currency)
}

func TestRunConfigurationUnknownGoalPlan(t *testing.T) {
	cfg := testConfiguration()
	cfg.Goals[0].Plan = "house"
	_, err := NewCalculationEngine().RunConfiguration(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown plan")
}

func TestRunConfigurationCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCalculationEngine().RunConfiguration(ctx, testConfiguration())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunConfigurationNil(t *testing.T) {
	_, err := NewCalculationEngine().RunConfiguration(context.Background(), nil)
	assert.Error(t, err)
}

func TestRunSimulationsWarnsWhenOutOfRange(t *testing.T) {
	logger := &recordingLogger{}
	engine := NewCalculationEngine()
	engine.SetLogger(logger)

	cfg := &domain.Configuration{
		BaseScore: decimal.NewFromInt(880),
		Simulations: []domain.SimulationStep{
			{Action: domain.ActionPayWriteOff, NewValue: decimal.NewFromInt(1000000)},
		},
	}
	report := engine.RunSimulations(cfg)
	assert.True(t, report.OutOfRange)
	assert.Contains(t, logger.lines[len(logger.lines)-1], "WARN projected score 1015")
}

func TestSetLoggerNil(t *testing.T) {
	engine := NewCalculationEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestStdLogger(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewStdLogger(&buf, false)
	quiet.Debugf("hidden %d", 1)
	quiet.Infof("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "INFO shown 2")

	buf.Reset()
	verbose := NewStdLogger(&buf, true)
	verbose.Debugf("detail")
	verbose.Warnf("careful")
	verbose.Errorf("broken")
	assert.Contains(t, buf.String(), "DEBUG detail")
	assert.Contains(t, buf.String(), "WARN careful")
	assert.Contains(t, buf.String(), "ERROR broken")
}

package calculation

import (
	"testing"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatorRecord(t *testing.T) {
	sim := NewSimulator()

	action := sim.Record(domain.ActionPayOverdue, decimal.NewFromInt(40000), decimal.NewFromInt(25000))
	assert.Equal(t, domain.ActionPayOverdue, action.Action)
	assert.True(t, action.CurrentValue.Equal(decimal.NewFromInt(40000)))
	assert.True(t, action.NewValue.Equal(decimal.NewFromInt(25000)))
	assert.Equal(t, 5, action.Impact)
	assert.Equal(t, 1, sim.Len())
}

func TestSimulatorProjectedScoreIsAdditive(t *testing.T) {
	sim := NewSimulator()
	steps := []struct {
		kind  domain.ActionKind
		value decimal.Decimal
	}{
		{domain.ActionNewLoan, decimal.NewFromInt(500000)},
		{domain.ActionUtilization, decimal.NewFromInt(30)},
		{domain.ActionAccountAge, decimal.NewFromInt(2)},
	}

	sum := 0
	for _, s := range steps {
		sim.Record(s.kind, decimal.Zero, s.value)
		sum += CalculateImpact(s.kind, s.value)
	}

	base := decimal.NewFromInt(712)
	assert.Equal(t, sum, sim.TotalImpact())
	assert.True(t, sim.ProjectedScore(base).Equal(base.Add(decimal.NewFromInt(int64(sum)))))
	// -30 + 21 + 28
	assert.Equal(t, "731", sim.ProjectedScore(base).String())
	// Asking twice yields the same projection.
	assert.True(t, sim.ProjectedScore(base).Equal(sim.ProjectedScore(base)))
}

func TestSimulatorClear(t *testing.T) {
	sim := NewSimulator()
	sim.Record(domain.ActionPayWriteOff, decimal.Zero, decimal.NewFromInt(100000))
	sim.Record(domain.ActionUtilization, decimal.Zero, decimal.NewFromInt(50))

	sim.Clear()
	assert.Equal(t, 0, sim.Len())
	assert.Empty(t, sim.Actions())
	assert.Equal(t, "700", sim.ProjectedScore(decimal.NewFromInt(700)).String())
}

func TestSimulatorDoesNotClamp(t *testing.T) {
	sim := NewSimulator()
	sim.Record(domain.ActionPayWriteOff, decimal.Zero, decimal.NewFromInt(10000000))
	sim.Record(domain.ActionAccountAge, decimal.Zero, decimal.NewFromInt(20))

	report := sim.Report(decimal.NewFromInt(850))
	assert.Equal(t, "1129", report.ProjectedScore.String())
	assert.True(t, report.OutOfRange)

	sim.Clear()
	sim.Record(domain.ActionNewLoan, decimal.Zero, decimal.NewFromInt(100000000))
	report = sim.Report(decimal.NewFromInt(100))
	assert.Equal(t, "-152", report.ProjectedScore.String())
	assert.True(t, report.OutOfRange)
}

func TestSimulatorUnknownActionRecorded(t *testing.T) {
	sim := NewSimulator()
	action := sim.Record(domain.ActionKind("close_card"), decimal.Zero, decimal.NewFromInt(1000))
	assert.Equal(t, 0, action.Impact)
	assert.Equal(t, 1, sim.Len())
}

func TestRestoreSimulatorKeepsStoredImpacts(t *testing.T) {
	stored := []domain.SimulatedAction{
		{Action: domain.ActionPayOverdue, NewValue: decimal.NewFromInt(25000), Impact: 7},
	}
	sim := RestoreSimulator(stored)
	assert.Equal(t, 7, sim.TotalImpact())

	// Mutating the simulator must not touch the caller's slice.
	sim.Record(domain.ActionUtilization, decimal.Zero, decimal.NewFromInt(10))
	require.Len(t, stored, 1)
	assert.Equal(t, 2, sim.Len())

	actions := sim.Actions()
	actions[0].Impact = 99
	assert.Equal(t, 7, sim.Actions()[0].Impact)
}

func TestSimulatorReportEmpty(t *testing.T) {
	report := NewSimulator().Report(decimal.NewFromInt(650))
	assert.NotNil(t, report.Actions)
	assert.Equal(t, 0, report.TotalImpact)
	assert.False(t, report.OutOfRange)
	assert.Equal(t, "650", report.ProjectedScore.String())
}

func TestSimulatorReportRangeBoundaries(t *testing.T) {
	tests := []struct {
		base       int64
		outOfRange bool
	}{
		{0, false},
		{900, false},
		{901, true},
		{-1, true},
	}
	for _, tt := range tests {
		report := NewSimulator().Report(decimal.NewFromInt(tt.base))
		assert.Equal(t, tt.outOfRange, report.OutOfRange, "base %d", tt.base)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const validYAML = `currency: INR
base_score: 710
simulations:
  - action: pay_overdue
    current_value: 40000
    new_value: 40000
  - action: utilization
    new_value: 30
corpus_plans:
  - name: retirement
    current_savings: 100000
    monthly_savings: 5000
    years: 5
    expected_annual_return_percent: 12
goals:
  - name: ten lakh
    plan: retirement
    target: 1000000
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, validYAML))

	require.NoError(t, err)
	assert.Equal(t, "INR", config.Currency)
	assert.True(t, config.BaseScore.Equal(decimal.NewFromInt(710)))
	require.Len(t, config.Simulations, 2)
	assert.Equal(t, domain.ActionPayOverdue, config.Simulations[0].Action)
	assert.True(t, config.Simulations[1].NewValue.Equal(decimal.NewFromInt(30)))
	require.Len(t, config.CorpusPlans, 1)
	plan := config.CorpusPlans[0]
	assert.Equal(t, "retirement", plan.Name)
	assert.True(t, plan.MonthlySavings.Equal(decimal.NewFromInt(5000)))
	assert.True(t, plan.ExpectedAnnualReturnPercent.Equal(decimal.NewFromInt(12)))
	require.Len(t, config.Goals, 1)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testConfig := `
base_score: 700
simulations:
	- action: pay_overdue
		new_value: "not-a-number"
`
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, testConfig))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_NonNumericValue(t *testing.T) {
	testConfig := `
base_score: 700
simulations:
  - action: pay_overdue
    new_value: lots
`
	_, err := NewInputParser().LoadFromFile(writeTemp(t, testConfig))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseNormalizesActionKinds(t *testing.T) {
	const mixedCase = `base_score: 700
simulations:
  - action: Pay_Overdue
    new_value: 50000
  - action: " utilization "
    new_value: 30
`
	config, err := NewInputParser().Parse([]byte(mixedCase))
	require.NoError(t, err)
	require.Len(t, config.Simulations, 2)
	assert.Equal(t, domain.ActionPayOverdue, config.Simulations[0].Action)
	assert.Equal(t, domain.ActionUtilization, config.Simulations[1].Action)
}

func TestValidateSimulationStep(t *testing.T) {
	parser := NewInputParser()

	kind, err := parser.ValidateSimulationStep(domain.SimulationStep{Action: "NEW_LOAN", NewValue: decimal.NewFromInt(1)})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionNewLoan, kind)

	_, err = parser.ValidateSimulationStep(domain.SimulationStep{Action: "UTILIZATION", NewValue: decimal.NewFromInt(500)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "utilization reduction cannot exceed 100%")
}

func TestValidateConfiguration(t *testing.T) {
	valid := func(t *testing.T) *domain.Configuration {
		t.Helper()
		c, err := NewInputParser().Parse([]byte(validYAML))
		require.NoError(t, err)
		return c
	}

	tests := []struct {
		name    string
		mutate  func(c *domain.Configuration)
		wantErr string
	}{
		{"valid", func(c *domain.Configuration) {}, ""},
		{"unknown currency", func(c *domain.Configuration) { c.Currency = "XXQ" }, "unknown currency"},
		{"base score too high", func(c *domain.Configuration) { c.BaseScore = decimal.NewFromInt(901) }, "base score"},
		{"base score negative", func(c *domain.Configuration) { c.BaseScore = decimal.NewFromInt(-1) }, "base score"},
		{"nothing to do", func(c *domain.Configuration) {
			c.Simulations = nil
			c.CorpusPlans = nil
			c.Goals = nil
		}, "no simulations or corpus plans"},
		{"unknown action", func(c *domain.Configuration) { c.Simulations[0].Action = "close_card" }, "unknown action kind"},
		{"negative magnitude", func(c *domain.Configuration) { c.Simulations[0].NewValue = decimal.NewFromInt(-5) }, "new value cannot be negative"},
		{"utilization above 100", func(c *domain.Configuration) { c.Simulations[1].NewValue = decimal.NewFromInt(120) }, "utilization"},
		{"plan without name", func(c *domain.Configuration) { c.CorpusPlans[0].Name = "" }, "name is required"},
		{"duplicate plan", func(c *domain.Configuration) { c.CorpusPlans = append(c.CorpusPlans, c.CorpusPlans[0]) }, "more than once"},
		{"negative savings", func(c *domain.Configuration) { c.CorpusPlans[0].CurrentSavings = decimal.NewFromInt(-1) }, "current savings"},
		{"negative monthly", func(c *domain.Configuration) { c.CorpusPlans[0].MonthlySavings = decimal.NewFromInt(-1) }, "monthly savings"},
		{"zero years", func(c *domain.Configuration) { c.CorpusPlans[0].Years = decimal.Zero }, "years"},
		{"too many years", func(c *domain.Configuration) { c.CorpusPlans[0].Years = decimal.NewFromInt(101) }, "years"},
		{"rate too low", func(c *domain.Configuration) { c.CorpusPlans[0].ExpectedAnnualReturnPercent = decimal.NewFromInt(-101) }, "expected annual return"},
		{"goal unknown plan", func(c *domain.Configuration) { c.Goals[0].Plan = "house" }, "unknown plan"},
		{"goal without target", func(c *domain.Configuration) { c.Goals[0].Target = decimal.Zero }, "target must be positive"},
		{"goal without name", func(c *domain.Configuration) { c.Goals[0].Name = "" }, "name is required"},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid(t)
			tt.mutate(c)
			err := parser.ValidateConfiguration(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateExampleConfigurationIsValid(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleConfiguration()
	require.NoError(t, parser.ValidateConfiguration(example))

	// The example survives a YAML round trip through the loader.
	data, err := yaml.Marshal(example)
	require.NoError(t, err)
	loaded, err := parser.LoadFromFile(writeTemp(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, len(example.Simulations), len(loaded.Simulations))
	assert.Equal(t, example.CorpusPlans[0].Name, loaded.CorpusPlans[0].Name)
	assert.True(t, example.CorpusPlans[0].MonthlySavings.Equal(loaded.CorpusPlans[0].MonthlySavings))
}

package config

import (
	"fmt"
	"os"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	money "github.com/aslearntocode/financial-health-sub000/pkg/decimal"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	maxYears      = decimal.NewFromInt(100)
	maxReturnRate = decimal.NewFromInt(100)
	minReturnRate = decimal.NewFromInt(-100)
	maxScore      = decimal.NewFromInt(domain.MaxScore)
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a configuration document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration checks the inputs the calculators themselves accept
// without question.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Currency != "" && !money.ValidCurrency(config.Currency) {
		return fmt.Errorf("unknown currency %q", config.Currency)
	}
	if config.BaseScore.IsNegative() || config.BaseScore.GreaterThan(maxScore) {
		return fmt.Errorf("base score must be between 0 and %d", domain.MaxScore)
	}
	if len(config.Simulations) == 0 && len(config.CorpusPlans) == 0 {
		return fmt.Errorf("no simulations or corpus plans provided")
	}

	for i, step := range config.Simulations {
		kind, err := ip.ValidateSimulationStep(step)
		if err != nil {
			return fmt.Errorf("simulation %d validation failed: %w", i, err)
		}
		config.Simulations[i].Action = kind
	}

	names := make(map[string]bool, len(config.CorpusPlans))
	for i, plan := range config.CorpusPlans {
		if plan.Name == "" {
			return fmt.Errorf("corpus plan %d: name is required", i)
		}
		if names[plan.Name] {
			return fmt.Errorf("corpus plan %q is defined more than once", plan.Name)
		}
		names[plan.Name] = true
		if err := ip.ValidateCorpusInput(plan.CorpusProjectionInput); err != nil {
			return fmt.Errorf("corpus plan %q validation failed: %w", plan.Name, err)
		}
	}

	for i, goal := range config.Goals {
		if goal.Name == "" {
			return fmt.Errorf("goal %d: name is required", i)
		}
		if !names[goal.Plan] {
			return fmt.Errorf("goal %q references unknown plan %q", goal.Name, goal.Plan)
		}
		if !goal.Target.IsPositive() {
			return fmt.Errorf("goal %q: target must be positive", goal.Name)
		}
	}

	return nil
}

// ValidateSimulationStep validates a single simulated action and returns its
// normalized kind
func (ip *InputParser) ValidateSimulationStep(step domain.SimulationStep) (domain.ActionKind, error) {
	kind, err := domain.ParseActionKind(string(step.Action))
	if err != nil {
		return "", err
	}
	if step.NewValue.IsNegative() {
		return "", fmt.Errorf("new value cannot be negative")
	}
	if kind == domain.ActionUtilization && step.NewValue.GreaterThan(decimal.NewFromInt(100)) {
		return "", fmt.Errorf("utilization reduction cannot exceed 100%%")
	}
	return kind, nil
}

// ValidateCorpusInput validates a savings plan
func (ip *InputParser) ValidateCorpusInput(input domain.CorpusProjectionInput) error {
	if input.CurrentSavings.IsNegative() {
		return fmt.Errorf("current savings cannot be negative")
	}
	if input.MonthlySavings.IsNegative() {
		return fmt.Errorf("monthly savings cannot be negative")
	}
	if !input.Years.IsPositive() || input.Years.GreaterThan(maxYears) {
		return fmt.Errorf("years must be greater than 0 and at most 100")
	}
	if input.ExpectedAnnualReturnPercent.LessThan(minReturnRate) || input.ExpectedAnnualReturnPercent.GreaterThan(maxReturnRate) {
		return fmt.Errorf("expected annual return must be between -100%% and 100%%")
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Currency:  money.DefaultCurrency,
		BaseScore: decimal.NewFromInt(720),
		Simulations: []domain.SimulationStep{
			{Action: domain.ActionPayOverdue, CurrentValue: decimal.NewFromInt(45000), NewValue: decimal.NewFromInt(45000)},
			{Action: domain.ActionUtilization, CurrentValue: decimal.NewFromInt(65), NewValue: decimal.NewFromInt(30)},
			{Action: domain.ActionAccountAge, NewValue: decimal.NewFromInt(2)},
			{Action: domain.ActionNewLoan, NewValue: decimal.NewFromInt(800000)},
		},
		CorpusPlans: []domain.CorpusPlan{
			{
				Name: "Retirement",
				CorpusProjectionInput: domain.CorpusProjectionInput{
					CurrentSavings:              decimal.NewFromInt(500000),
					MonthlySavings:              decimal.NewFromInt(15000),
					Years:                       decimal.NewFromInt(25),
					ExpectedAnnualReturnPercent: decimal.NewFromInt(10),
				},
			},
			{
				Name: "Child Education",
				CorpusProjectionInput: domain.CorpusProjectionInput{
					CurrentSavings:              decimal.NewFromInt(100000),
					MonthlySavings:              decimal.NewFromInt(5000),
					Years:                       decimal.NewFromInt(12),
					ExpectedAnnualReturnPercent: decimal.NewFromInt(8),
				},
			},
		},
		Goals: []domain.SavingsGoal{
			{Name: "Retire with 3 crore", Plan: "Retirement", Target: decimal.NewFromInt(30000000)},
			{Name: "College fund", Plan: "Child Education", Target: decimal.NewFromInt(2000000)},
		},
	}
}

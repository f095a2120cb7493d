package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Configuration is the YAML document driving a batch run: a list of
// what-if credit actions against a base score plus savings plans to project.
type Configuration struct {
	Currency    string           `yaml:"currency,omitempty" json:"currency,omitempty"`
	BaseScore   decimal.Decimal  `yaml:"base_score" json:"base_score"`
	Simulations []SimulationStep `yaml:"simulations,omitempty" json:"simulations,omitempty"`
	CorpusPlans []CorpusPlan     `yaml:"corpus_plans,omitempty" json:"corpus_plans,omitempty"`
	Goals       []SavingsGoal    `yaml:"goals,omitempty" json:"goals,omitempty"`
}

// Plan returns the corpus plan with the given name.
func (c *Configuration) Plan(name string) (CorpusPlan, bool) {
	for _, p := range c.CorpusPlans {
		if p.Name == name {
			return p, true
		}
	}
	return CorpusPlan{}, false
}

// CalculationResults is everything a report renders for one run.
type CalculationResults struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Currency    string           `json:"currency"`
	Simulation  SimulationReport `json:"simulation"`
	Corpus      []CorpusReport   `json:"corpus"`
	Goals       []GoalReport     `json:"goals,omitempty"`
}

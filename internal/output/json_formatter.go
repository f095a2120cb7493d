package output

import (
	"encoding/json"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
)

// JSONFormatter serializes the calculation results as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.CalculationResults) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}

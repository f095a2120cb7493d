package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// SimulationsCSVExporter writes one row per simulated action with the running
// projected score after each step.
type SimulationsCSVExporter struct{}

func (c SimulationsCSVExporter) Name() string { return "simulations-csv" }

func (c SimulationsCSVExporter) Format(results *domain.CalculationResults) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Step", "Action", "CurrentValue", "NewValue", "Impact", "RunningScore"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	running := results.Simulation.BaseScore
	for i, a := range results.Simulation.Actions {
		running = running.Add(decimal.NewFromInt(int64(a.Impact)))
		row := []string{
			strconv.Itoa(i + 1),
			string(a.Action),
			a.CurrentValue.String(),
			a.NewValue.String(),
			strconv.Itoa(a.Impact),
			running.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

package output

import (
	"bytes"
	"encoding/csv"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per corpus plan).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.CalculationResults) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Plan", "CurrentSavings", "MonthlySavings", "Years", "AnnualReturnPercent", "TotalContributed", "TotalGrowth", "FinalValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, rep := range results.Corpus {
		p := rep.Projection
		row := []string{
			rep.Name,
			p.Input.CurrentSavings.StringFixed(2),
			p.Input.MonthlySavings.StringFixed(2),
			p.Input.Years.String(),
			p.Input.ExpectedAnnualReturnPercent.String(),
			p.TotalContributed.StringFixed(2),
			p.TotalGrowth.StringFixed(2),
			p.FinalValue.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

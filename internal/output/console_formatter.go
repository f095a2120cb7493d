package output

import (
	"bytes"
	"fmt"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
)

// ConsoleFormatter provides a plain text summary of a run.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.CalculationResults) ([]byte, error) {
	var buf bytes.Buffer
	cur := results.Currency

	fmt.Fprintln(&buf, "FINANCIAL HEALTH REPORT")
	fmt.Fprintln(&buf, "================================")
	if !results.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Generated: %s\n", results.GeneratedAt.Format("2006-01-02 15:04"))
	}

	sim := results.Simulation
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "CREDIT SCORE SIMULATION")
	fmt.Fprintln(&buf, "--------------------------------")
	fmt.Fprintf(&buf, "Base score: %s / %d\n", sim.BaseScore, domain.MaxScore)
	if len(sim.Actions) == 0 {
		fmt.Fprintln(&buf, "No simulated actions.")
	}
	for i, a := range sim.Actions {
		fmt.Fprintf(&buf, "%d. %s (%s): %s -> %s  %s\n",
			i+1, a.Action.Description(), a.Action, a.CurrentValue, a.NewValue, FormatImpact(a.Impact))
	}
	fmt.Fprintf(&buf, "Total impact: %s\n", FormatImpact(sim.TotalImpact))
	fmt.Fprintf(&buf, "Projected score: %s\n", sim.ProjectedScore)
	if sim.OutOfRange {
		fmt.Fprintf(&buf, "  note: projected score is outside 0-%d\n", domain.MaxScore)
	}

	if len(results.Corpus) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "CORPUS PROJECTIONS")
		fmt.Fprintln(&buf, "--------------------------------")
	}
	for _, rep := range results.Corpus {
		p := rep.Projection
		fmt.Fprintf(&buf, "%s: %s after %s years at %s\n",
			rep.Name, FormatCurrency(p.FinalValue, cur), p.Input.Years, FormatPercentage(p.Input.ExpectedAnnualReturnPercent))
		fmt.Fprintf(&buf, "  Contributed=%s Growth=%s\n",
			FormatCurrency(p.TotalContributed, cur), FormatCurrency(p.TotalGrowth, cur))
	}

	if len(results.Goals) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "GOALS")
		fmt.Fprintln(&buf, "--------------------------------")
	}
	for _, g := range results.Goals {
		status := "on track"
		if !g.OnTrack {
			status = "short by " + FormatCurrency(g.Shortfall, cur)
		}
		fmt.Fprintf(&buf, "%s (%s): target %s, projected %s, %s\n",
			g.Name, g.Plan, FormatCurrency(g.Target, cur), FormatCurrency(g.ProjectedValue, cur), status)
		fmt.Fprintf(&buf, "  Monthly savings needed: %s (currently %s)\n",
			FormatCurrency(g.RequiredMonthlySavings, cur), FormatCurrency(g.CurrentMonthlySavings, cur))
	}
	return buf.Bytes(), nil
}

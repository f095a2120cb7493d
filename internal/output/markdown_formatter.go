package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	md "github.com/nao1215/markdown"
)

// MarkdownFormatter renders the results as a markdown document.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(results *domain.CalculationResults) ([]byte, error) {
	return []byte(renderMarkdown(results)), nil
}

func renderMarkdown(results *domain.CalculationResults) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := results.Currency

	doc.H1("Financial Health Report")
	if !results.GeneratedAt.IsZero() {
		doc.PlainText(fmt.Sprintf("Generated on %s", results.GeneratedAt.Format("2006-01-02 15:04")))
	}

	sim := results.Simulation
	doc.H2("Credit Score Simulation")
	doc.PlainText(fmt.Sprintf("Base score: %s out of %d", sim.BaseScore, domain.MaxScore))
	if len(sim.Actions) > 0 {
		rows := make([][]string, 0, len(sim.Actions))
		for i, a := range sim.Actions {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				a.Action.Description(),
				a.CurrentValue.String(),
				a.NewValue.String(),
				FormatImpact(a.Impact),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"#", "Action", "Current", "New", "Impact"},
			Rows:   rows,
		})
	}
	doc.PlainText(fmt.Sprintf("%s %s", md.Bold("Total impact:"), FormatImpact(sim.TotalImpact)))
	doc.PlainText(fmt.Sprintf("%s %s", md.Bold("Projected score:"), sim.ProjectedScore))
	if sim.OutOfRange {
		doc.PlainText(fmt.Sprintf("The projected score is outside 0-%d.", domain.MaxScore))
	}

	if len(results.Corpus) > 0 {
		doc.H2("Corpus Projections")
		rows := make([][]string, 0, len(results.Corpus))
		for _, rep := range results.Corpus {
			p := rep.Projection
			rows = append(rows, []string{
				rep.Name,
				p.Input.Years.String(),
				FormatPercentage(p.Input.ExpectedAnnualReturnPercent),
				FormatCurrency(p.TotalContributed, cur),
				FormatCurrency(p.TotalGrowth, cur),
				FormatCurrency(p.FinalValue, cur),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Plan", "Years", "Return", "Contributed", "Growth", "Final Value"},
			Rows:   rows,
		})

		for _, rep := range results.Corpus {
			if len(rep.Schedule) == 0 {
				continue
			}
			doc.H3("Schedule: " + rep.Name)
			rows := make([][]string, 0, len(rep.Schedule))
			for _, y := range rep.Schedule {
				rows = append(rows, []string{
					strconv.Itoa(y.Year),
					FormatCurrency(y.Contributed, cur),
					FormatCurrency(y.Growth, cur),
					FormatCurrency(y.Balance, cur),
				})
			}
			doc.Table(md.TableSet{
				Header: []string{"Year", "Contributed", "Growth", "Balance"},
				Rows:   rows,
			})
		}
	}

	if len(results.Goals) > 0 {
		doc.H2("Goals")
		rows := make([][]string, 0, len(results.Goals))
		for _, g := range results.Goals {
			status := "On track"
			if !g.OnTrack {
				status = "Short by " + FormatCurrency(g.Shortfall, cur)
			}
			rows = append(rows, []string{
				g.Name,
				g.Plan,
				FormatCurrency(g.Target, cur),
				FormatCurrency(g.ProjectedValue, cur),
				FormatCurrency(g.RequiredMonthlySavings, cur),
				status,
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Goal", "Plan", "Target", "Projected", "Monthly Needed", "Status"},
			Rows:   rows,
		})
	}

	return doc.String()
}

package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	money "github.com/aslearntocode/financial-health-sub000/pkg/decimal"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders an A4 report. Amounts use ISO codes rather than
// currency symbols because the core fonts only cover Latin-1.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(results *domain.CalculationResults) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	if !results.GeneratedAt.IsZero() {
		pdf.SetCreationDate(results.GeneratedAt)
		pdf.SetModificationDate(results.GeneratedAt)
	}
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 12, "Financial Health Report", "", 1, "C", false, 0, "")
	if !results.GeneratedAt.IsZero() {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(pdfContentWidth, 6, "Generated "+results.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	amount := func(d decimal.Decimal) string {
		return money.NewMoneyFromDecimal(d).FormatCode(results.Currency)
	}

	sim := results.Simulation
	pdfSection(pdf, "Credit Score Simulation")
	pdfLine(pdf, fmt.Sprintf("Base score: %s out of %d", sim.BaseScore, domain.MaxScore))
	if len(sim.Actions) > 0 {
		widths := []float64{10, 80, 35, 35, 20}
		rows := make([][]string, 0, len(sim.Actions))
		for i, a := range sim.Actions {
			rows = append(rows, []string{strconv.Itoa(i + 1), a.Action.Description(), a.CurrentValue.String(), a.NewValue.String(), FormatImpact(a.Impact)})
		}
		pdfTable(pdf, widths, 2, []string{"#", "Action", "Current", "New", "Impact"}, rows)
	}
	pdfLine(pdf, "Total impact: "+FormatImpact(sim.TotalImpact))
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(pdfContentWidth, 7, "Projected score: "+sim.ProjectedScore.String(), "", 1, "L", false, 0, "")
	if sim.OutOfRange {
		pdfLine(pdf, fmt.Sprintf("The projected score is outside 0-%d.", domain.MaxScore))
	}

	if len(results.Corpus) > 0 {
		pdf.Ln(4)
		pdfSection(pdf, "Corpus Projections")
		widths := []float64{45, 15, 20, 35, 35, 30}
		rows := make([][]string, 0, len(results.Corpus))
		for _, rep := range results.Corpus {
			in := rep.Projection.Input
			rows = append(rows, []string{
				rep.Name,
				in.Years.String(),
				FormatPercentage(in.ExpectedAnnualReturnPercent),
				amount(rep.Projection.TotalContributed),
				amount(rep.Projection.TotalGrowth),
				amount(rep.Projection.FinalValue),
			})
		}
		pdfTable(pdf, widths, 1, []string{"Plan", "Years", "Return", "Contributed", "Growth", "Final Value"}, rows)
	}

	if len(results.Goals) > 0 {
		pdf.Ln(4)
		pdfSection(pdf, "Goals")
		widths := []float64{40, 35, 35, 35, 35}
		rows := make([][]string, 0, len(results.Goals))
		for _, g := range results.Goals {
			status := "On track"
			if !g.OnTrack {
				status = "Short " + amount(g.Shortfall)
			}
			rows = append(rows, []string{g.Name, amount(g.Target), amount(g.ProjectedValue), amount(g.RequiredMonthlySavings), status})
		}
		pdfTable(pdf, widths, 1, []string{"Goal", "Target", "Projected", "Monthly Needed", "Status"}, rows)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfSection(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 9, title, "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetTextColor(0, 0, 0)
}

func pdfLine(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(pdfContentWidth, 7, text, "", 1, "L", false, 0, "")
}

// pdfTable draws a bordered table; the first textCols columns are left aligned.
func pdfTable(pdf *fpdf.Fpdf, widths []float64, textCols int, header []string, rows [][]string) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(0, 51, 102)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		for i, cell := range row {
			align := "R"
			if i < textCols {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(2)
}

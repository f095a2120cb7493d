package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aslearntocode/financial-health-sub000/internal/calculation"
	"github.com/aslearntocode/financial-health-sub000/internal/config"
	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/aslearntocode/financial-health-sub000/internal/output"
	"github.com/spf13/cobra"
)

func newCorpusCmd(opts *rootOptions) *cobra.Command {
	var schedule bool
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Project a savings corpus under monthly compounding",
		Long: `Project the future value of current savings plus a fixed monthly
contribution. The result is rounded to a whole currency unit.

Example:
  finhealth corpus --current 100000 --monthly 5000 --years 5 --rate 12 --schedule
  finhealth corpus --monthly 10000 --by 2030-12-31 --rate 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := decimalFlags(cmd, "current", "monthly", "rate")
			if err != nil {
				return err
			}
			years, err := opts.horizonYears(cmd)
			if err != nil {
				return err
			}
			input := domain.CorpusProjectionInput{
				CurrentSavings:              values["current"],
				MonthlySavings:              values["monthly"],
				Years:                       years,
				ExpectedAnnualReturnPercent: values["rate"],
			}
			if err := config.NewInputParser().ValidateCorpusInput(input); err != nil {
				return err
			}

			p := calculation.ProjectCorpusDetailed(input)
			opts.logger(cmd).Debugf("corpus months=%s monthly_rate=%s", p.TotalMonths, p.MonthlyRate)

			cur := opts.currency
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Projected corpus: %s\n", output.FormatCurrency(p.FinalValue, cur))
			fmt.Fprintf(out, "  Current savings grow to: %s\n", output.FormatCurrency(p.LumpSumFutureValue, cur))
			fmt.Fprintf(out, "  Contributions grow to:   %s\n", output.FormatCurrency(p.ContributionFutureValue, cur))
			fmt.Fprintf(out, "  Total contributed:       %s\n", output.FormatCurrency(p.TotalContributed, cur))
			fmt.Fprintf(out, "  Total growth:            %s\n", output.FormatCurrency(p.TotalGrowth, cur))

			if !schedule {
				return nil
			}
			fmt.Fprintln(out)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "YEAR\tCONTRIBUTED\tGROWTH\tBALANCE\t")
			for _, y := range calculation.ProjectCorpusSchedule(input) {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", y.Year,
					output.FormatCurrency(y.Contributed, cur), output.FormatCurrency(y.Growth, cur), output.FormatCurrency(y.Balance, cur))
			}
			return w.Flush()
		},
	}

	cmd.Flags().String("current", "0", "current savings")
	cmd.Flags().String("monthly", "0", "monthly contribution")
	cmd.Flags().String("rate", "0", "expected annual return in percent")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "print the year-by-year balance")
	addHorizonFlags(cmd)
	return cmd
}

func newGoalCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Solve for the monthly saving that reaches a target corpus",
		Long: `Solve for the monthly contribution that brings current savings to a target
over the horizon, rounded up to a whole currency unit. With --monthly the
current plan is compared against the target.

Example:
  finhealth goal --target 1000000 --current 100000 --years 5 --rate 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := decimalFlags(cmd, "target", "current", "monthly", "rate")
			if err != nil {
				return err
			}
			years, err := opts.horizonYears(cmd)
			if err != nil {
				return err
			}
			if !values["target"].IsPositive() {
				return fmt.Errorf("target must be positive")
			}
			plan := domain.CorpusPlan{
				Name: "cli",
				CorpusProjectionInput: domain.CorpusProjectionInput{
					CurrentSavings:              values["current"],
					MonthlySavings:              values["monthly"],
					Years:                       years,
					ExpectedAnnualReturnPercent: values["rate"],
				},
			}
			if err := config.NewInputParser().ValidateCorpusInput(plan.CorpusProjectionInput); err != nil {
				return err
			}

			report, err := calculation.EvaluateGoal(domain.SavingsGoal{Name: "target", Plan: plan.Name, Target: values["target"]}, plan)
			if err != nil {
				return err
			}

			cur := opts.currency
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Required monthly savings: %s\n", output.FormatCurrency(report.RequiredMonthlySavings, cur))
			if cmd.Flags().Changed("monthly") {
				fmt.Fprintf(out, "Projected with %s/month: %s\n",
					output.FormatCurrency(report.CurrentMonthlySavings, cur), output.FormatCurrency(report.ProjectedValue, cur))
				if report.OnTrack {
					fmt.Fprintln(out, "On track")
				} else {
					fmt.Fprintf(out, "Short by %s\n", output.FormatCurrency(report.Shortfall, cur))
				}
			}
			return nil
		},
	}

	cmd.Flags().String("target", "", "target corpus")
	cmd.Flags().String("current", "0", "current savings")
	cmd.Flags().String("monthly", "0", "current monthly contribution to compare")
	cmd.Flags().String("rate", "0", "expected annual return in percent")
	addHorizonFlags(cmd)
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

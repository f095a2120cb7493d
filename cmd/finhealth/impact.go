package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aslearntocode/financial-health-sub000/internal/calculation"
	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/aslearntocode/financial-health-sub000/internal/output"
	"github.com/spf13/cobra"
)

func newImpactCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "impact <action> <magnitude>",
		Short: "Estimate the score delta of a single credit action",
		Long: `Estimate the score delta of a single credit action.

Actions: new_loan, pay_overdue, pay_writeoff, settle_writeoff (magnitude is an
amount), account_age (years) and utilization (percentage points).

Examples:
  finhealth impact settle_writeoff 100000
  finhealth impact utilization 30`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseActionKind(args[0])
			if err != nil {
				return err
			}
			magnitude, err := parseDecimal("magnitude", args[1])
			if err != nil {
				return err
			}
			impact := calculation.CalculateImpact(kind, magnitude)
			opts.logger(cmd).Debugf("impact %s magnitude=%s -> %d", kind, magnitude, impact)

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s points (cap %s)\n",
				kind.Description(), kind, output.FormatImpact(impact), output.FormatImpact(calculation.ImpactCap(kind)))
			return nil
		},
	}
}

func newActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the simulated action kinds and their caps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ACTION\tUNIT\tCAP\tDESCRIPTION")
			for _, weight := range calculation.ImpactWeights() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", weight.Action, weight.Unit, output.FormatImpact(weight.Cap), weight.Description)
			}
			return w.Flush()
		},
	}
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/aslearntocode/financial-health-sub000/internal/calculation"
	"github.com/aslearntocode/financial-health-sub000/pkg/dateutil"
	money "github.com/aslearntocode/financial-health-sub000/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose  bool
	currency string
	now      func() time.Time
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{now: time.Now}
	rootCmd := &cobra.Command{
		Use:   "finhealth",
		Short: "Credit score what-ifs and savings corpus projections",
		Long: `finhealth estimates how hypothetical credit actions move a score on a
0-900 scale and projects savings corpora under monthly compounding.

Point deltas are illustrative. They are not produced by any bureau's model.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !money.ValidCurrency(opts.currency) {
				return fmt.Errorf("unknown currency %q", opts.currency)
			}
			opts.currency = strings.ToUpper(strings.TrimSpace(opts.currency))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.currency, "currency", money.DefaultCurrency, "ISO 4217 currency code for amounts")

	rootCmd.AddCommand(newImpactCmd(opts))
	rootCmd.AddCommand(newActionsCmd())
	rootCmd.AddCommand(newSimulateCmd(opts))
	rootCmd.AddCommand(newCorpusCmd(opts))
	rootCmd.AddCommand(newGoalCmd(opts))
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newServeCmd(opts))
	return rootCmd
}

// logger writes progress to stderr; debug lines only appear with --verbose.
func (o *rootOptions) logger(cmd *cobra.Command) calculation.Logger {
	return calculation.NewStdLogger(cmd.ErrOrStderr(), o.verbose)
}

func parseDecimal(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: must be a number", name, value)
	}
	return d, nil
}

// decimalFlags parses the named string flags of cmd as decimals.
func decimalFlags(cmd *cobra.Command, names ...string) (map[string]decimal.Decimal, error) {
	values := make(map[string]decimal.Decimal, len(names))
	for _, name := range names {
		raw, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, err
		}
		d, err := parseDecimal(name, raw)
		if err != nil {
			return nil, err
		}
		values[name] = d
	}
	return values, nil
}

// addHorizonFlags registers --years and its calendar alternative --by.
func addHorizonFlags(cmd *cobra.Command) {
	cmd.Flags().String("years", "", "horizon in years (fractions allowed)")
	cmd.Flags().String("by", "", "target date (YYYY-MM-DD), counted in whole months from today")
	cmd.MarkFlagsMutuallyExclusive("years", "by")
	cmd.MarkFlagsOneRequired("years", "by")
}

// horizonYears reads the horizon from --years or derives it from --by.
func (o *rootOptions) horizonYears(cmd *cobra.Command) (decimal.Decimal, error) {
	by, err := cmd.Flags().GetString("by")
	if err != nil {
		return decimal.Zero, err
	}
	if by == "" {
		years, err := cmd.Flags().GetString("years")
		if err != nil {
			return decimal.Zero, err
		}
		return parseDecimal("years", years)
	}

	target, err := dateutil.ParseDate(by)
	if err != nil {
		return decimal.Zero, err
	}
	months := dateutil.MonthsUntilDate(o.now(), target)
	if months <= 0 {
		return decimal.Zero, fmt.Errorf("target date %s must be at least one month away", by)
	}
	o.logger(cmd).Debugf("horizon until %s: %d months", by, months)
	return dateutil.YearsUntilDate(o.now(), target), nil
}

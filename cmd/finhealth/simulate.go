package main

import (
	"fmt"
	"strings"

	"github.com/aslearntocode/financial-health-sub000/internal/calculation"
	"github.com/aslearntocode/financial-health-sub000/internal/config"
	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/aslearntocode/financial-health-sub000/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type simulateOptions struct {
	format    string
	outputDir string
	baseScore string
}

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	so := &simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate <config.yaml>",
		Short: "Run the simulations, plans and goals of a configuration file",
		Long: `Replay the configured credit actions against the base score, project every
corpus plan and evaluate every goal.

Without --output-dir the report is written to stdout. With it, a timestamped
file is written; --format all writes one file per format.

Examples:
  finhealth simulate finhealth.yaml
  finhealth simulate finhealth.yaml --format markdown --output-dir reports
  finhealth simulate finhealth.yaml --base-score 650`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, opts, so, args[0])
		},
	}

	cmd.Flags().StringVarP(&so.format, "format", "f", "console", "report format ("+strings.Join(output.AvailableFormatterNames(), ", ")+", all)")
	cmd.Flags().StringVarP(&so.outputDir, "output-dir", "o", "", "write the report to a timestamped file in this directory")
	cmd.Flags().StringVar(&so.baseScore, "base-score", "", "override the configured base score")
	return cmd
}

func runSimulate(cmd *cobra.Command, opts *rootOptions, so *simulateOptions, path string) error {
	logger := opts.logger(cmd)
	parser := config.NewInputParser()

	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		return err
	}
	if so.baseScore != "" {
		base, err := parseDecimal("base score", so.baseScore)
		if err != nil {
			return err
		}
		if base.IsNegative() || base.GreaterThan(decimal.NewFromInt(domain.MaxScore)) {
			return fmt.Errorf("base score must be between 0 and %d", domain.MaxScore)
		}
		cfg.BaseScore = base
	}
	if cmd.Flags().Changed("currency") || cfg.Currency == "" {
		cfg.Currency = opts.currency
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	results, err := engine.RunConfiguration(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	if so.format == "all" {
		if so.outputDir == "" {
			return fmt.Errorf("--format all requires --output-dir")
		}
		paths, err := output.GenerateAllReports(results, so.outputDir)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	}

	if so.outputDir != "" {
		p, err := output.GenerateReport(results, so.format, so.outputDir)
		if err != nil {
			return err
		}
		logger.Infof("report written to %s", p)
		fmt.Fprintln(cmd.OutOrStdout(), p)
		return nil
	}

	f := output.GetFormatterByName(so.format)
	if f == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, so.format)
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

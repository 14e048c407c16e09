package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/iwvelando/uprating-calculator/internal/calculator"
	"github.com/iwvelando/uprating-calculator/internal/uprating"
	"github.com/iwvelando/uprating-calculator/pkg/constants"
	"github.com/iwvelando/uprating-calculator/pkg/output"
	"github.com/iwvelando/uprating-calculator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCalculateCmd(a *app) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Project a value forward and print the uprated table.",
		Example: `  uprating-calculator calculate --value 2500 --start-year 2022 --horizon 10
  uprating-calculator calculate --parameter gov.bls.cpi.cpi_w --rounding-base 50 --rounding-method downwards -o csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			defer a.sync()
			return a.runCalculate(cmd, noColor)
		},
	}

	flags := cmd.Flags()
	flags.Float64("value", constants.DefaultValue, "starting value to uprate")
	flags.Int("start-year", constants.DefaultStartYear, "first year of the projection")
	flags.Int("horizon", constants.DefaultHorizon, "number of years to project past the start year")
	flags.String("parameter", constants.DefaultParameter, "uprating parameter path")
	flags.Float64("rounding-base", constants.DefaultRoundingBase, "round results to a multiple of this value (0 disables rounding)")
	flags.String("rounding-method", constants.DefaultRoundingMethod, "rounding method: nearest, upwards or downwards")
	flags.StringP("output-format", "o", "", "type of output override: pretty, csv, json")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")

	for key, name := range map[string]string{
		"calculation.value":           "value",
		"calculation.startYear":       "start-year",
		"calculation.horizon":         "horizon",
		"calculation.parameter":       "parameter",
		"calculation.rounding.base":   "rounding-base",
		"calculation.rounding.method": "rounding-method",
		"output.format":               "output-format",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	return cmd
}

func (a *app) runCalculate(cmd *cobra.Command, noColor bool) error {
	conf := a.conf

	outputFormat := conf.Output.Format
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	for _, warning := range conf.ValidateConfiguration() {
		a.logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.calculate"),
		)
	}

	tree, err := a.loadParameters()
	if err != nil {
		return fmt.Errorf("failed to load parameters: %w", err)
	}

	calc := calculator.New(a.logger, tree, conf.Limits, conf.Parameters.Options)
	result, err := calc.Run(calculator.InputFromConfig(conf.Calculation))
	if err != nil {
		if errors.Is(err, calculator.ErrCalculation) {
			return fmt.Errorf("%w. %s", err, calculator.Hint)
		}
		return err
	}

	counts := output.LabelCounts(result)
	a.logger.Debug("label summary",
		zap.String("op", "main.calculate"),
		zap.String("runId", result.RunID),
		zap.Int("resolved", counts[uprating.Resolved]),
		zap.Int("missing", counts[uprating.Missing]),
		zap.Int("projected", counts[uprating.ProjectedForward]),
		zap.Int("noProjectionData", counts[uprating.NoProjectionData]),
	)

	return output.Write(cmd.OutOrStdout(), result, outputFormat, output.Options{
		UseColors: !noColor && !color.NoColor,
	})
}

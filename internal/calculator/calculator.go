// Package calculator runs a complete uprating calculation: it validates the
// inputs, resolves the selected parameter, projects the value forward and
// applies the requested rounding.
package calculator

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/uprating-calculator/internal/config"
	"github.com/iwvelando/uprating-calculator/internal/parameters"
	"github.com/iwvelando/uprating-calculator/internal/uprating"
	"github.com/iwvelando/uprating-calculator/pkg/constants"
	"github.com/iwvelando/uprating-calculator/pkg/format"
	"github.com/iwvelando/uprating-calculator/pkg/rounding"
	"github.com/iwvelando/uprating-calculator/pkg/validation"
	"go.uber.org/zap"
)

// Hint accompanies unexpected calculation failures shown to users.
const Hint = "Please try a different uprating parameter or check your inputs."

var (
	// ErrInvalidInput wraps input validation failures.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnresolvableParameter is returned when the parameter path does not
	// resolve to an indexed parameter.
	ErrUnresolvableParameter = errors.New("could not find parameter")
	// ErrCalculation wraps any other failure during a run.
	ErrCalculation = errors.New("error in calculation")
)

const (
	columnYear   = "year"
	columnFactor = "factor"
	columnValue  = "value"
)

// Input is a calculation request.
type Input struct {
	Value          float64 `json:"value"`
	StartYear      int     `json:"startYear"`
	Horizon        int     `json:"horizon"`
	Parameter      string  `json:"parameter"`
	RoundingBase   float64 `json:"roundingBase"`
	RoundingMethod string  `json:"roundingMethod"`
}

// InputFromConfig builds an Input from the calculation section of conf.
func InputFromConfig(conf config.CalculationConfig) Input {
	return Input{
		Value:          conf.Value,
		StartYear:      conf.StartYear,
		Horizon:        conf.Horizon,
		Parameter:      conf.Parameter,
		RoundingBase:   conf.Rounding.Base,
		RoundingMethod: conf.Rounding.Method,
	}
}

// Row is one displayed year of a result.
type Row struct {
	Year          int                 `json:"year"`
	Factor        float64             `json:"factor"`
	FactorDisplay string              `json:"factorDisplay"`
	Value         float64             `json:"value"`
	Rounded       float64             `json:"rounded"`
	Month         uprating.MonthLabel `json:"month"`
}

// Result is the output of a calculation run.
type Result struct {
	RunID         string        `json:"runId"`
	Input         Input         `json:"input"`
	Description   string        `json:"description,omitempty"`
	RoundedHeader string        `json:"roundedHeader"`
	Rows          []Row         `json:"rows"`
	Warnings      []string      `json:"warnings,omitempty"`
	Duration      time.Duration `json:"-"`
}

// Calculator runs calculations against a parameter source.
type Calculator struct {
	logger  *zap.Logger
	source  parameters.PathResolvable
	limits  uprating.Limits
	options []string
}

// New constructs a Calculator. A nil options list allows every path in
// constants.UpratingParameters.
func New(logger *zap.Logger, source parameters.PathResolvable, limits uprating.Limits, options []string) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(options) == 0 {
		options = constants.UpratingParameters
	}
	return &Calculator{logger: logger, source: source, limits: limits, options: options}
}

// Options returns the parameter paths that may be selected.
func (c *Calculator) Options() []string {
	return append([]string(nil), c.options...)
}

// Limits returns the data-horizon limits used by the calculator.
func (c *Calculator) Limits() uprating.Limits {
	return c.limits
}

// Describe returns the description of the parameter at path when the
// source carries descriptions.
func (c *Calculator) Describe(path string) string {
	if describer, ok := c.source.(interface{ Describe(string) string }); ok {
		return describer.Describe(path)
	}
	return ""
}

// Validate checks in against the supported ranges.
func (c *Calculator) Validate(in Input) error {
	checks := []error{
		validation.ValidateValue(in.Value),
		validation.ValidateStartYear(in.StartYear, constants.MinStartYear, c.limits.CeilingYear),
		validation.ValidateHorizon(in.Horizon),
		validation.ValidateParameterPath(in.Parameter, c.options),
		validation.ValidateRoundingBase(in.RoundingBase),
	}
	if _, err := rounding.ParseMethod(in.RoundingMethod); err != nil {
		checks = append(checks, err)
	}
	for _, err := range checks {
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	return nil
}

// Run performs one calculation. Any failure aborts the run and no partial
// result is returned.
func (c *Calculator) Run(in Input) (result *Result, err error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := c.logger.With(zap.String("runId", runID))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("calculation panicked",
				zap.String("op", "calculator.Run"),
				zap.Any("panic", r),
			)
			result = nil
			err = fmt.Errorf("%w: %v", ErrCalculation, r)
		}
	}()

	if err := c.Validate(in); err != nil {
		return nil, err
	}
	method, _ := rounding.ParseMethod(in.RoundingMethod)

	param, ok := c.source.Resolve(in.Parameter)
	if !ok || param == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvableParameter, in.Parameter)
	}

	series, err := uprating.Project(logger, uprating.Request{
		InitialValue: in.Value,
		StartYear:    in.StartYear,
		Horizon:      in.Horizon,
	}, param, c.limits)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCalculation, err)
	}

	rows, err := buildRows(series, in.RoundingBase, method)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCalculation, err)
	}

	result = &Result{
		RunID:         runID,
		Input:         in,
		RoundedHeader: format.RoundedHeader(string(method), in.RoundingBase),
		Rows:          rows,
		Warnings:      series.Warnings,
		Duration:      time.Since(start),
	}
	result.Description = c.Describe(in.Parameter)

	logger.Info("calculation completed",
		zap.String("op", "calculator.Run"),
		zap.String("parameter", in.Parameter),
		zap.Int("startYear", in.StartYear),
		zap.Int("horizon", in.Horizon),
		zap.Int("rows", len(rows)),
		zap.Int("warnings", len(result.Warnings)),
		zap.Duration("duration", result.Duration),
	)

	return result, nil
}

func buildRows(series uprating.Series, base float64, method rounding.Method) ([]Row, error) {
	factors := make([]float64, len(series.Records))
	years := make([]float64, len(series.Records))
	for i, r := range series.Records {
		factors[i] = r.Factor
		years[i] = float64(r.Year)
	}

	table := rounding.Table{
		columnYear:   years,
		columnFactor: factors,
		columnValue:  series.Values(),
	}
	rounded, err := rounding.ApplyToColumn(table, columnValue, base, method)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(series.Records))
	for i, r := range series.Records {
		rows[i] = Row{
			Year:          r.Year,
			Factor:        r.Factor,
			FactorDisplay: format.Factor(r.Factor),
			Value:         r.Value,
			Rounded:       rounded[columnValue][i],
			Month:         r.Label,
		}
	}
	return rows, nil
}

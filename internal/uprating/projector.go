package uprating

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/uprating-calculator/internal/parameters"
	"github.com/iwvelando/uprating-calculator/pkg/constants"
	"github.com/iwvelando/uprating-calculator/pkg/datetime"
	"github.com/iwvelando/uprating-calculator/pkg/mathutil"
	"go.uber.org/zap"
)

var (
	// ErrNilParameter is returned when no parameter is supplied to Project.
	ErrNilParameter = errors.New("uprating parameter is nil")
	// ErrInvalidFactor is returned when two consecutive index values do not
	// give a finite growth factor, e.g. when the earlier value is zero.
	ErrInvalidFactor = errors.New("uprating factor is not finite")
)

// Request describes a single projection.
type Request struct {
	InitialValue float64
	StartYear    int
	Horizon      int
}

// Record is one year of a projection.
type Record struct {
	Year   int        `json:"year"`
	Factor float64    `json:"factor"`
	Value  float64    `json:"value"`
	Label  MonthLabel `json:"month"`
}

// Series is the output of a projection. Records[0] is always the start year
// with the initial value and a zero factor.
type Series struct {
	Records  []Record
	Warnings []string
}

// Years returns the year of every record.
func (s Series) Years() []int {
	years := make([]int, len(s.Records))
	for i, r := range s.Records {
		years[i] = r.Year
	}
	return years
}

// Values returns the projected value of every record.
func (s Series) Values() []float64 {
	values := make([]float64, len(s.Records))
	for i, r := range s.Records {
		values[i] = r.Value
	}
	return values
}

// Project uprates req.InitialValue from req.StartYear over req.Horizon years
// using the year-on-year growth of param.
//
// Years past limits.CeilingYear are never read from param; they reuse the
// factor observed at the ceiling year. A year whose data, or whose previous
// year's data, is missing keeps the running value and is reported in
// Series.Warnings. A zero or non-finite index value fails the whole
// projection with ErrInvalidFactor.
func Project(logger *zap.Logger, req Request, param parameters.Parameter, limits Limits) (Series, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if param == nil {
		return Series{}, ErrNilParameter
	}
	if req.Horizon < 0 {
		return Series{}, fmt.Errorf("projection horizon must be non-negative, got %d", req.Horizon)
	}
	if err := limits.Validate(); err != nil {
		return Series{}, err
	}

	lastYear := req.StartYear + req.Horizon

	resolved := make(map[int]YearValue)
	for year := req.StartYear - 1; year <= lastYear; year++ {
		if year > limits.CeilingYear {
			break
		}
		if yv := ResolveYear(param, year, limits); yv.Found {
			resolved[year] = yv
		}
	}

	series := Series{Records: make([]Record, 0, req.Horizon+1)}

	// The start year is the baseline and is never uprated.
	startLabel := MonthLabel{Kind: Unavailable}
	if yv, ok := resolved[req.StartYear]; ok {
		startLabel = yv.Month
	}
	series.Records = append(series.Records, Record{
		Year:   req.StartYear,
		Factor: 0,
		Value:  req.InitialValue,
		Label:  startLabel,
	})

	current := req.InitialValue
	var ceilingFactor *float64
	warned := make(map[int]bool)

	for year := req.StartYear + 1; year <= lastYear; year++ {
		prev := year - 1

		if year > limits.CeilingYear {
			if ceilingFactor != nil {
				current = mathutil.Compound(current, *ceilingFactor)
				series.Records = append(series.Records, Record{Year: year, Factor: *ceilingFactor, Value: current, Label: MonthLabel{Kind: ProjectedForward}})
			} else {
				series.Records = append(series.Records, Record{Year: year, Factor: 0, Value: current, Label: MonthLabel{Kind: NoProjectionData}})
			}
			continue
		}

		cur, curOK := resolved[year]
		before, prevOK := resolved[prev]
		if !curOK || !prevOK {
			for _, missing := range []struct {
				year int
				ok   bool
			}{{year, curOK}, {prev, prevOK}} {
				if missing.ok || warned[missing.year] {
					continue
				}
				warned[missing.year] = true
				msg := fmt.Sprintf("No data available for %d", missing.year)
				series.Warnings = append(series.Warnings, msg)
				logger.Warn(msg,
					zap.String("op", "uprating.Project"),
					zap.Int("year", missing.year),
				)
			}
			series.Records = append(series.Records, Record{Year: year, Factor: 0, Value: current, Label: MonthLabel{Kind: Missing}})
			continue
		}

		if before.Value == 0 {
			return Series{}, fmt.Errorf("%w: value for %d is zero", ErrInvalidFactor, prev)
		}
		factor := mathutil.GrowthFactor(cur.Value, before.Value)

		if math.Abs(factor) < limits.NearZeroThreshold && limits.IsProjectionYear(year) {
			// A placeholder January value can mask the year's real change.
			if feb, ok := param.ValueAt(datetime.FirstOfMonth(year, constants.CorrectionMonth)); ok && feb != cur.Value {
				logger.Debug("near-zero uprating factor corrected from February value",
					zap.String("op", "uprating.Project"),
					zap.Int("year", year),
					zap.Float64("factor", factor),
					zap.Float64("resolvedValue", cur.Value),
					zap.Float64("februaryValue", feb),
				)
				factor = mathutil.GrowthFactor(feb, before.Value)
				cur.Value = feb
				cur.Month = ResolvedMonth(constants.CorrectionMonth)
				resolved[year] = cur
			}
		}

		if math.IsNaN(factor) || math.IsInf(factor, 0) {
			return Series{}, fmt.Errorf("%w: %d to %d gives %v", ErrInvalidFactor, prev, year, factor)
		}

		current = mathutil.Compound(current, factor)
		series.Records = append(series.Records, Record{Year: year, Factor: factor, Value: current, Label: cur.Month})

		if year == limits.CeilingYear {
			f := factor
			ceilingFactor = &f
		}
	}

	logger.Debug("projection computed",
		zap.String("op", "uprating.Project"),
		zap.Int("startYear", req.StartYear),
		zap.Int("horizon", req.Horizon),
		zap.Int("records", len(series.Records)),
		zap.Int("warnings", len(series.Warnings)),
	)

	return series, nil
}

// Package constants provides shared constants for the uprating-calculator application.
package constants

// InstantLayout is the date format used to address indexed parameters.
const InstantLayout = "2006-01-02"

// Data horizon constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// HistoricalBoundaryYear is the last year treated as historical data. Later
	// years are projections published once at the start of the year.
	HistoricalBoundaryYear = 2024

	// CeilingYear is the last year for which parameter data is assumed to exist.
	CeilingYear = 2035

	// NearZeroThreshold is the absolute uprating factor below which a
	// projection year is re-checked against its February value.
	NearZeroThreshold = 0.0001

	// CorrectionMonth is the month consulted by the near-zero correction.
	CorrectionMonth = 2
)

// Calculation input defaults and bounds
const (
	// DefaultValue is the default amount to uprate
	DefaultValue = 1000.0

	// DefaultStartYear is the default first year of a projection
	DefaultStartYear = 2024

	// MinStartYear is the earliest supported start year
	MinStartYear = 2015

	// DefaultHorizon is the default number of years projected past the start year
	DefaultHorizon = 20

	// MaxHorizon is the largest supported projection horizon
	MaxHorizon = 50

	// DefaultParameter is the default uprating parameter path
	DefaultParameter = "gov.irs.uprating"

	// DefaultRoundingBase is the default rounding base (nearest dollar)
	DefaultRoundingBase = 1.0

	// MaxRoundingBase is the largest supported rounding base
	MaxRoundingBase = 10000.0

	// DefaultRoundingMethod is the default rounding method
	DefaultRoundingMethod = "nearest"
)

// UpratingParameters lists the parameter paths offered for selection.
var UpratingParameters = []string{
	"gov.irs.uprating",
	"gov.bls.cpi.cpi_u",
	"gov.bls.cpi.cpi_w",
	"gov.bls.cpi.c_cpi_u",
}

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "UPRATING"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024
)

// Display constants
const (
	// DecimalPrecision is the precision for currency display (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// NotAvailable is displayed when a value has no meaningful representation
	NotAvailable = "N/A"
)

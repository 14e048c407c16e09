// Package config defines the data structures related to configuration and
// includes functions for loading and validating it.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/iwvelando/uprating-calculator/internal/uprating"
	"github.com/iwvelando/uprating-calculator/pkg/constants"
	"github.com/iwvelando/uprating-calculator/pkg/format"
	"github.com/iwvelando/uprating-calculator/pkg/rounding"
	"github.com/iwvelando/uprating-calculator/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for uprating-calculator.
type Configuration struct {
	Calculation CalculationConfig `mapstructure:"calculation" yaml:"calculation"`
	Limits      uprating.Limits   `mapstructure:"limits" yaml:"limits"`
	Parameters  ParametersConfig  `mapstructure:"parameters" yaml:"parameters"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging,omitempty"`
	Output      OutputConfig      `mapstructure:"output" yaml:"output,omitempty"`
}

// CalculationConfig holds the inputs of a calculation run.
type CalculationConfig struct {
	Value     float64        `mapstructure:"value" yaml:"value"`
	StartYear int            `mapstructure:"startYear" yaml:"startYear"`
	Horizon   int            `mapstructure:"horizon" yaml:"horizon"`
	Parameter string         `mapstructure:"parameter" yaml:"parameter"`
	Rounding  RoundingConfig `mapstructure:"rounding" yaml:"rounding"`
}

// RoundingConfig selects how projected values are rounded. A base of 0
// disables rounding.
type RoundingConfig struct {
	Base   float64 `mapstructure:"base" yaml:"base"`
	Method string  `mapstructure:"method" yaml:"method"`
}

// ParametersConfig locates the parameter tree. An empty File uses the
// embedded default data.
type ParametersConfig struct {
	File    string   `mapstructure:"file" yaml:"file,omitempty"`
	Options []string `mapstructure:"options" yaml:"options,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"` // pretty, csv, json
}

// NewViper returns a viper instance with defaults and environment overrides
// (prefix UPRATING_, e.g. UPRATING_CALCULATION_STARTYEAR) registered.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("calculation.value", constants.DefaultValue)
	v.SetDefault("calculation.startYear", constants.DefaultStartYear)
	v.SetDefault("calculation.horizon", constants.DefaultHorizon)
	v.SetDefault("calculation.parameter", constants.DefaultParameter)
	v.SetDefault("calculation.rounding.base", constants.DefaultRoundingBase)
	v.SetDefault("calculation.rounding.method", constants.DefaultRoundingMethod)
	v.SetDefault("limits.historicalBoundary", constants.HistoricalBoundaryYear)
	v.SetDefault("limits.ceilingYear", constants.CeilingYear)
	v.SetDefault("limits.nearZeroThreshold", constants.NearZeroThreshold)
	v.SetDefault("parameters.file", "")
	v.SetDefault("parameters.options", constants.UpratingParameters)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	return v
}

// LoadDotEnv loads environment variables from the given .env files, or from
// ./.env when none are given. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("error reading env file %s, %w", path, err)
		}
	}
	return nil
}

// Load reads the YAML configuration at configPath into v and decodes the
// merged result of defaults, file, environment and bound flags. An empty
// configPath skips the file.
func Load(v *viper.Viper, configPath string) (*Configuration, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}
	return decode(v)
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	return Load(NewViper(), configPath)
}

// LoadConfigurationFromReader loads YAML configuration from r on top of the
// defaults.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := NewViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// Validate returns an error describing the first invalid setting.
func (c *Configuration) Validate() error {
	if err := c.Limits.Validate(); err != nil {
		return fmt.Errorf("invalid limits: %w", err)
	}
	calc := c.Calculation
	if err := validation.ValidateValue(calc.Value); err != nil {
		return err
	}
	if err := validation.ValidateStartYear(calc.StartYear, constants.MinStartYear, c.Limits.CeilingYear); err != nil {
		return err
	}
	if err := validation.ValidateHorizon(calc.Horizon); err != nil {
		return err
	}
	if err := validation.ValidateParameterPath(calc.Parameter, c.Parameters.Options); err != nil {
		return err
	}
	if err := validation.ValidateRoundingBase(calc.Rounding.Base); err != nil {
		return err
	}
	if _, err := rounding.ParseMethod(calc.Rounding.Method); err != nil {
		return err
	}
	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			return err
		}
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	calc := c.Calculation

	if last := calc.StartYear + calc.Horizon; last > c.Limits.CeilingYear {
		warnings = append(warnings, fmt.Sprintf(
			"projection ends in %d; years after %d are extrapolated from the %d uprating factor",
			last, c.Limits.CeilingYear, c.Limits.CeilingYear))
	}

	if calc.Rounding.Base == 0 {
		warnings = append(warnings, "rounding base is 0; rounded values equal pre-rounded values")
	} else if calc.Rounding.Base > calc.Value && calc.Value > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"rounding base %s exceeds the starting value %s",
			format.Base(calc.Rounding.Base), format.Currency(calc.Value)))
	}

	if calc.Value == 0 {
		warnings = append(warnings, "starting value is 0; every projected value will be 0")
	}

	return warnings
}

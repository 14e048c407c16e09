package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iwvelando/uprating-calculator/internal/config"
	"github.com/iwvelando/uprating-calculator/internal/parameters"
	"github.com/iwvelando/uprating-calculator/pkg/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// All linker flags are set at build time.
var (
	version = "dev"
	commit  = "none"
)

// app carries state shared by the subcommands.
type app struct {
	v        *viper.Viper
	conf     *config.Configuration
	logger   *zap.Logger
	logLevel string
	envFiles []string
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	rootCmd := &cobra.Command{
		Use:   "uprating-calculator",
		Short: "Project a monetary value forward using published uprating indices.",
		Long: `uprating-calculator projects a starting value across future years using
an inflation or uprating index such as CPI-U, CPI-W, chained CPI-U or the
IRS uprating factor, and rounds the results the way tax thresholds are
rounded.

Settings are merged from defaults, a YAML configuration file, environment
variables prefixed with UPRATING_ (optionally loaded from a .env file) and
command line flags.`,
		SilenceErrors:      true,
		SilenceUsage:       true,
		DisableSuggestions: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", constants.DefaultConfigFile, "path to configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.StringSliceVar(&a.envFiles, "env-file", []string{".env"}, "environment files to load before reading configuration")
	flags.String("parameters-file", "", "YAML parameter tree to use instead of the embedded data")
	_ = a.v.BindPFlag("parameters.file", flags.Lookup("parameters-file"))

	rootCmd.AddCommand(
		newCalculateCmd(a),
		newParametersCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads the environment, the configuration and the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(a.envFiles...); err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			configPath = ""
		}
	}

	conf, err := config.Load(a.v, configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", configPath, err)
	}
	a.conf = conf

	logger, err := initializeLogger(a.logLevel, conf.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// loadParameters returns the parameter tree named by the configuration, or
// the embedded default tree.
func (a *app) loadParameters() (*parameters.Tree, error) {
	if a.conf.Parameters.File == "" {
		return parameters.Default()
	}
	tree, err := parameters.LoadFile(a.conf.Parameters.File)
	if err != nil {
		return nil, err
	}
	a.logger.Info("loaded parameter tree",
		zap.String("op", "main.loadParameters"),
		zap.String("file", a.conf.Parameters.File),
		zap.Int("parameters", len(tree.Paths())),
	)
	return tree, nil
}

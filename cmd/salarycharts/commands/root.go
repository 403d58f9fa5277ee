package commands

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Techinterview-space/web-api-sub003/internal/config"
	"github.com/Techinterview-space/web-api-sub003/internal/export"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/charts"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/samples"
	"github.com/Techinterview-space/web-api-sub003/internal/utils"
	"github.com/Techinterview-space/web-api-sub003/pkg/logger"
)

// app is the state shared by subcommands once flags are parsed
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	charts *charts.Service
}

type rootFlags struct {
	format   string
	timezone string
	logLevel string
	pretty   bool
}

// Execute runs the CLI and logs the failure, if any
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		return err
	}
	return nil
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	a := &app{}

	root := &cobra.Command{
		Use:           "salarycharts",
		Short:         "Salary chart buckets, grade bands and week-by-week charts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, flags)
		},
	}

	root.PersistentFlags().StringVarP(&flags.format, "format", "f", "", "output format: json, csv or msgpack (default from SALARY_CHARTS_OUTPUT_FORMAT)")
	root.PersistentFlags().StringVar(&flags.timezone, "timezone", "", "timezone for dates without offset (default from SALARY_CHARTS_TIMEZONE)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().BoolVar(&flags.pretty, "pretty", false, "human readable logs")

	root.AddCommand(
		bucketsCmd(a),
		axisCmd(a),
		monthCmd(a),
		quarterCmd(a),
		gradesCmd(a),
		chartCmd(a),
	)
	return root
}

// setup loads the environment config, applies flag overrides and sets up logging
func (a *app) setup(cmd *cobra.Command, flags *rootFlags) error {
	cfg := config.FromEnv()

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.OutputFormat = flags.format
	}
	if changed("timezone") {
		cfg.Timezone = flags.timezone
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("pretty") {
		cfg.LogPretty = flags.pretty
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.log = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Output: cmd.ErrOrStderr(),
	})
	logger.SetGlobalLogger(a.log)
	a.charts = charts.NewService(a.log)

	a.log.Debug().
		Str("command", cmd.Name()).
		Str("format", cfg.OutputFormat).
		Str("timezone", cfg.Timezone).
		Msg("Configuration loaded")
	return nil
}

func (a *app) write(cmd *cobra.Command, result export.Result) error {
	enc, err := export.NewEncoder(a.cfg.OutputFormat, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return enc.Encode(result)
}

func (a *app) parseTime(flag, value string) (time.Time, error) {
	t, err := utils.ParseTime(value, a.cfg.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", flag, err)
	}
	return t, nil
}

func (a *app) readSamples(path string) ([]charts.SalarySample, error) {
	return samples.NewReader(a.cfg.Location(), a.log).ReadFile(path)
}

// Command pinotfn converts function expressions into Pinot function syntax.
//
//	pinotfn --time-range 1h 'AVGRATE(bytes, "PT1M")' 'PERCENTILE95(duration)'
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rulego/pinotsql"
	"github.com/rulego/pinotsql/logger"
	"github.com/rulego/pinotsql/types"
)

type flags struct {
	configPath         string
	percentileFunction string
	timeRange          time.Duration
	period             time.Duration
	logLevel           string
	strictColumns      bool
}

func newRootCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "pinotfn [flags] EXPRESSION...",
		Short:         "Convert query function calls into Pinot function syntax",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML config file.")
	cmd.Flags().StringVar(&f.percentileFunction, "percentile-function", "", "Percentile aggregation function, overrides the config file.")
	cmd.Flags().DurationVar(&f.timeRange, "time-range", 0, "Length of the queried time range, e.g. 1h.")
	cmd.Flags().DurationVar(&f.period, "period", 0, "Time series period; takes precedence over --time-range for AVGRATE.")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "Log level: debug, info, warn, error, off.")
	cmd.Flags().BoolVar(&f.strictColumns, "strict-columns", false, "Fail on columns missing from the config's column mapping.")
	return cmd
}

func run(cmd *cobra.Command, f flags, args []string) error {
	cfg := types.NewConfig()
	if f.configPath != "" {
		var err error
		if cfg, err = types.LoadConfigFile(f.configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("percentile-function") {
		cfg.PercentileAggregationFunction = f.percentileFunction
	}
	if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = f.logLevel
	}
	if f.strictColumns {
		cfg.StrictColumns = true
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	translator, err := pinotsql.New(
		pinotsql.WithConfig(cfg),
		pinotsql.WithLogOutput(cmd.ErrOrStderr(), level),
	)
	if err != nil {
		return err
	}

	ctx := types.EmptyWindow
	if f.timeRange > 0 {
		ctx = types.RangeOf(f.timeRange)
	}
	ctx = ctx.WithPeriod(f.period)

	for _, arg := range args {
		out, err := translator.ConvertString(ctx, arg)
		if err != nil {
			return errors.Wrapf(err, "convert %q", arg)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

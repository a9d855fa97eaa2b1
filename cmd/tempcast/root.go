package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sartorproj/tempcast/config"
	"github.com/sartorproj/tempcast/errs"
	"github.com/sartorproj/tempcast/forecast"
	"github.com/sartorproj/tempcast/report"
)

const version = "v0.3.0"

type options struct {
	configPath string
	logLevel   string
	plotPath   string
	progress   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "tempcast <input_csv> <output_csv>",
		Short:   "Forecast daily average temperature 45 days ahead",
		Version: version,
		Long: `tempcast fits a damped-trend additive Holt-Winters model (ETS(A,Ad,A),
yearly season) to a CSV of daily temperatures and writes a 45 day forecast.

The input needs a "date" column and an "avtemp" column; rows may be in any
order and missing days are filled by linear interpolation. The forecast is
written as date,avtemp rows and a comparison plot is saved to plot_path
(default ./output/forecast_plot.png, the directory must exist).`,
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			logger := setupLogger(cfg, cmd.ErrOrStderr())

			p := forecast.New(report.NewConsole(logger), report.NewPlotRenderer(cfg.PlotPath), logger)
			p.Progress = report.NewProgress("fitting model", report.ProgressMode(cfg.Progress), cmd.ErrOrStderr(), logger)

			_, err = p.Run(args[0], args[1])
			return err
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errs.Argument("tempcast", err.Error())
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML settings file")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	flags.StringVar(&opts.plotPath, "plot", config.DefaultPlotPath, "Output path of the comparison plot")
	flags.StringVar(&opts.progress, "progress", config.ProgressAuto, "Fit progress output (auto|plain|none)")

	rootCmd.AddCommand(newDerivativeCmd(opts))
	return rootCmd
}

func newDerivativeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "derivative <forecast_csv> <output_csv>",
		Short: "Write day-over-day differences of a forecast",
		Long: `Reads a forecast CSV (date,avtemp) and writes forward, backward and central
differences per day:

  Date,Temperature,ForwardDerivative,BackwardDerivative,CentralDerivative`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			logger := setupLogger(cfg, cmd.ErrOrStderr())

			_, err = forecast.New(report.NewConsole(logger), nil, logger).Derivative(args[0], args[1])
			return err
		},
	}
}

// exactArgs rejects any other argument count before RunE touches the files.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errs.Argument(cmd.Name(),
				fmt.Sprintf("accepts %d arg(s), received %d; usage: %s", n, len(args), cmd.UseLine()))
		}
		return nil
	}
}

// load reads the settings file and applies flags set on the command line.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("plot") {
		cfg.PlotPath = o.plotPath
	}
	if flags.Changed("progress") {
		cfg.Progress = o.progress
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogger builds the run logger and makes it the global one so the
// error boundary in main reports in the same format.
func setupLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	level, _ := cfg.Level()

	out := w
	if cfg.LogFormat != config.FormatJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !report.IsTerminal(w)}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

// Package forecast runs the end-to-end temperature forecast: load, resample,
// standardize, fit, forecast, invert, write and render.
package forecast

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sartorproj/tempcast/errs"
	"github.com/sartorproj/tempcast/ets"
	"github.com/sartorproj/tempcast/stats"
	"github.com/sartorproj/tempcast/timeseries"
)

// Fixed model structure.
const (
	Horizon        = 45   // Forecast days
	SeasonalPeriod = 365  // Days per seasonal cycle
	MaxIterations  = 1000 // Optimizer iteration cap
	HistoryWindow  = 365  // Trailing history days shown on the plot
)

// Reporter receives human-readable status messages.
type Reporter interface {
	Info(msg string)
	Success(msg string)
}

// Renderer draws the trailing history next to the forecast.
type Renderer interface {
	Render(history, forecast *timeseries.Series) error
}

// Progress receives model fit iterations.
type Progress interface {
	Update(iteration int, logLik float64)
	Done()
}

// Pipeline holds the collaborators of a forecast run. Renderer and Progress
// may be nil.
type Pipeline struct {
	Reporter Reporter
	Renderer Renderer
	Progress Progress
	Logger   zerolog.Logger
	CSV      *timeseries.CSVOptions
}

// Result describes a completed run.
type Result struct {
	RunID          string
	History        *timeseries.Series // Gap-free input series
	Forecast       *timeseries.Series // Forecast in original units
	Scale          timeseries.Standardization
	Summary        *ets.Summary
	FilledReadings int // Readings filled by interpolation
}

// New creates a pipeline with the default CSV layout.
func New(reporter Reporter, renderer Renderer, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		Reporter: reporter,
		Renderer: renderer,
		Logger:   logger,
		CSV:      timeseries.DefaultCSVOptions(),
	}
}

// Run forecasts Horizon days past the end of the series in input and writes
// them to output. Nothing is written unless the forecast succeeds.
func (p *Pipeline) Run(input, output string) (*Result, error) {
	runID := uuid.NewString()
	log := p.Logger.With().Str("run_id", runID).Logger()

	p.Reporter.Info("Loading data from " + input)
	raw, err := timeseries.LoadCSV(input, p.CSV)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("rows", raw.Len()).Msg("data loaded")

	p.Reporter.Info("Resampling to a daily calendar")
	gaps := timeseries.Gaps(raw)
	history, err := timeseries.Resample(raw)
	if err != nil {
		return nil, err
	}
	if !history.IsDaily() {
		return nil, errs.DataFormat("forecast.Run", "resampled series is not on a daily calendar", nil)
	}
	if gaps > 0 {
		log.Info().Int("filled", gaps).Int("days", history.Len()).Msg("interpolated missing readings")
	}
	log.Debug().
		Str("from", history.First().Format(timeseries.DateLayout)).
		Str("to", history.Last().Format(timeseries.DateLayout)).
		Float64("min", history.Min()).
		Float64("max", history.Max()).
		Float64("mean", history.Mean()).
		Float64("std", history.Std()).
		Float64("seasonal_strength", stats.SeasonalStrength(history, SeasonalPeriod)).
		Msg("daily history")

	p.Reporter.Info("Standardizing series")
	standardized, scale, err := timeseries.Standardize(history)
	if err != nil {
		return nil, err
	}
	log.Debug().Float64("mean", scale.Mean).Float64("stddev", scale.StdDev).Msg("standardization parameters")

	p.Reporter.Info("Fitting ETS(A,Ad,A) model")
	model, err := p.fit(standardized, log)
	if err != nil {
		return nil, err
	}
	summary := model.Summary()
	log.Info().Object("model", summary).Msg("model fitted")

	p.Reporter.Info(fmt.Sprintf("Forecasting %d days", Horizon))
	z, err := model.Predict(Horizon)
	if err != nil {
		return nil, errs.ModelFit("forecast.Run", "forecast failed", err)
	}

	forecast, err := timeseries.NewWithTimestamps(
		timeseries.FutureDates(history.Last(), Horizon),
		scale.InvertValues(z),
	)
	if err != nil {
		return nil, errs.ModelFit("forecast.Run", "forecast failed", err)
	}
	forecast.Name = "forecast"

	p.Reporter.Info("Writing forecast to " + output)
	if err := timeseries.WriteCSV(forecast, output, p.CSV); err != nil {
		return nil, err
	}

	if p.Renderer != nil {
		p.Reporter.Info("Rendering plot")
		if err := p.Renderer.Render(history.Tail(HistoryWindow), forecast); err != nil {
			return nil, err
		}
	}

	p.Reporter.Success(fmt.Sprintf("Forecast of %d days written to %s", Horizon, output))

	return &Result{
		RunID:          runID,
		History:        history,
		Forecast:       forecast,
		Scale:          scale,
		Summary:        summary,
		FilledReadings: gaps,
	}, nil
}

func (p *Pipeline) fit(series *timeseries.Series, log zerolog.Logger) (*ets.Model, error) {
	cfg := ets.DefaultConfig()
	cfg.Period = SeasonalPeriod
	cfg.MaxIterations = MaxIterations
	cfg.Logger = log
	if p.Progress != nil {
		cfg.Progress = p.Progress.Update
		defer p.Progress.Done()
	}

	model := ets.New(cfg)
	if err := model.Fit(series); err != nil {
		return nil, err
	}
	return model, nil
}

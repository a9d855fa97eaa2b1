package ets

import (
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/sartorproj/tempcast/errs"
	"github.com/sartorproj/tempcast/stats"
	"github.com/sartorproj/tempcast/timeseries"
)

// Number of smoothing parameters estimated by Fit (alpha, beta, gamma, phi).
const NumParams = 4

// ProgressFunc receives the optimizer's major iterations as they happen.
type ProgressFunc func(iteration int, logLik float64)

// Config holds the fixed model structure and fitting options.
type Config struct {
	Period        int // Seasonal period (365 for daily data with a yearly cycle)
	MaxIterations int // Cap on optimizer major iterations
	// Logger receives fit diagnostics. The zero value discards them.
	Logger   zerolog.Logger
	Progress ProgressFunc
}

// DefaultConfig returns the configuration for daily data with a yearly cycle.
func DefaultConfig() *Config {
	return &Config{
		Period:        365,
		MaxIterations: 1000,
		Logger:        zerolog.Nop(),
	}
}

// Params are the smoothing parameters.
type Params struct {
	Alpha float64 // Level
	Beta  float64 // Trend
	Gamma float64 // Seasonal
	Phi   float64 // Damping
}

// State is the smoothing state. Seasonal[i] applies to every observation t
// with t % Period == i, counting from the first observation.
type State struct {
	Level    float64
	Trend    float64
	Seasonal []float64
}

func (s State) clone() State {
	seasonal := make([]float64, len(s.Seasonal))
	copy(seasonal, s.Seasonal)
	return State{Level: s.Level, Trend: s.Trend, Seasonal: seasonal}
}

// Model represents an ETS(A,Ad,A) model.
type Model struct {
	Config  Config
	Params  Params
	Initial State // Heuristic starting state
	Final   State // State after the last observation

	SSE        float64
	Variance   float64
	LogLik     float64
	AIC        float64
	AICc       float64 // Corrected AIC for small sample sizes
	BIC        float64
	Iterations int  // Optimizer major iterations used
	Converged  bool // False when the iteration cap was reached

	fitted     bool
	residuals  []float64
	fittedVals []float64
}

// New creates a model. A nil config means DefaultConfig.
func New(config *Config) *Model {
	if config == nil {
		config = DefaultConfig()
	}
	return &Model{Config: *config}
}

// Fit estimates the smoothing parameters on the whole series by maximizing
// the Gaussian likelihood. When the optimizer stops at the iteration cap the
// best parameters found are kept and Converged is false.
func (m *Model) Fit(series *timeseries.Series) error {
	const op = "ets.Fit"

	period := m.Config.Period
	if period < 2 {
		return errs.ModelFit(op, "seasonal period must be at least 2", nil)
	}
	n := series.Len()
	if n < 2*period {
		return errs.ModelFit(op, "insufficient history: need at least two full seasonal cycles", nil)
	}
	for _, v := range series.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errs.ModelFit(op, "series contains non-finite values", nil)
		}
	}

	m.fitted = false

	start, err := initialState(series, period)
	if err != nil {
		return errs.ModelFit(op, "initial state estimation failed", err)
	}
	m.Initial = start

	log := m.Config.Logger
	log.Debug().
		Int("observations", n).
		Int("period", period).
		Float64("level0", start.Level).
		Float64("trend0", start.Trend).
		Msg("initial state")

	params, iterations, converged, err := m.optimize(series.Values)
	if err != nil {
		return errs.ModelFit(op, "likelihood optimization failed", err)
	}
	m.Params = params
	m.Iterations = iterations
	m.Converged = converged
	if !converged {
		log.Warn().Int("iterations", iterations).Msg("optimizer did not converge, using best parameters found")
	}

	m.residuals = make([]float64, n)
	m.fittedVals = make([]float64, n)
	final := m.Initial.clone()
	m.SSE = filter(series.Values, params, &final, m.residuals, m.fittedVals)
	if math.IsNaN(m.SSE) || math.IsInf(m.SSE, 0) {
		return errs.ModelFit(op, "fitted model produced non-finite residuals", nil)
	}
	m.Final = final

	m.calculateIC()
	m.fitted = true

	log.Debug().
		Float64("alpha", params.Alpha).
		Float64("beta", params.Beta).
		Float64("gamma", params.Gamma).
		Float64("phi", params.Phi).
		Float64("loglik", m.LogLik).
		Int("iterations", iterations).
		Bool("converged", converged).
		Msg("model fitted")

	return nil
}

// filter runs the state recursions over y starting from state, which is
// updated in place. Residuals and one-step fitted values are written to resid
// and fitted when they are non-nil. It returns the sum of squared residuals.
func filter(y []float64, p Params, state *State, resid, fitted []float64) float64 {
	period := len(state.Seasonal)
	l, b, s := state.Level, state.Trend, state.Seasonal

	sse := 0.0
	for t, obs := range y {
		pos := t % period
		yhat := l + p.Phi*b + s[pos]
		e := obs - yhat

		newLevel := l + p.Phi*b + p.Alpha*e
		b = p.Phi*b + p.Beta*e
		s[pos] += p.Gamma * e
		l = newLevel

		sse += e * e
		if resid != nil {
			resid[t] = e
		}
		if fitted != nil {
			fitted[t] = yhat
		}
	}

	state.Level, state.Trend = l, b
	return sse
}

// calculateIC calculates the log-likelihood and information criteria.
func (m *Model) calculateIC() {
	n := len(m.residuals)
	m.Variance = m.SSE / float64(n)
	m.LogLik = concentratedLogLik(m.SSE, n)

	ic := stats.CalculateIC(m.LogLik, n, NumParams)
	m.AIC = ic.AIC
	m.AICc = ic.AICc
	m.BIC = ic.BIC
}

// concentratedLogLik is the Gaussian log-likelihood with the error variance
// replaced by its estimate SSE/n.
func concentratedLogLik(sse float64, n int) float64 {
	nf := float64(n)
	if sse <= 0 {
		return math.Inf(1)
	}
	return -nf / 2 * (math.Log(2*math.Pi*sse/nf) + 1)
}

// Predict produces point forecasts for the next steps observations.
func (m *Model) Predict(steps int) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("model not fitted")
	}
	if steps < 1 {
		return nil, errors.New("steps must be positive")
	}

	n := len(m.residuals)
	period := len(m.Final.Seasonal)
	phi := m.Params.Phi

	forecasts := make([]float64, steps)
	damp := 0.0
	phiH := 1.0
	for h := 1; h <= steps; h++ {
		phiH *= phi
		damp += phiH
		pos := (n + h - 1) % period
		forecasts[h-1] = m.Final.Level + damp*m.Final.Trend + m.Final.Seasonal[pos]
	}

	return forecasts, nil
}

// Residuals returns the one-step-ahead residuals.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.residuals))
	copy(result, m.residuals)
	return result
}

// FittedValues returns the one-step-ahead fitted values.
func (m *Model) FittedValues() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.fittedVals))
	copy(result, m.fittedVals)
	return result
}

// Fitted reports whether Fit completed successfully.
func (m *Model) Fitted() bool {
	return m.fitted
}

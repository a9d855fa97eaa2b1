package ets

import (
	"github.com/rs/zerolog"

	"github.com/sartorproj/tempcast/stats"
)

// Number of residual lags checked by the Ljung-Box test in Summary.
const summaryLags = 10

// Summary represents a model summary.
type Summary struct {
	Params     Params
	Level0     float64
	Trend0     float64
	Variance   float64
	AIC        float64
	AICc       float64 // Corrected AIC
	BIC        float64
	LogLik     float64
	NObs       int
	Iterations int
	Converged  bool
	LjungBox   *stats.Portmanteau
	// Durbin-Watson statistic of the residuals, NaN when undefined.
	DurbinWatson float64
	// Residual lags whose autocorrelation falls outside the 95% bounds.
	SignificantLags []int
}

// Summary returns a summary of the fitted model.
func (m *Model) Summary() *Summary {
	if !m.fitted {
		return nil
	}

	s := &Summary{
		Params:       m.Params,
		Level0:       m.Initial.Level,
		Trend0:       m.Initial.Trend,
		Variance:     m.Variance,
		AIC:          m.AIC,
		AICc:         m.AICc,
		BIC:          m.BIC,
		LogLik:       m.LogLik,
		NObs:         len(m.residuals),
		Iterations:   m.Iterations,
		Converged:    m.Converged,
		LjungBox:     stats.LjungBox(m.residuals, summaryLags, NumParams),
		DurbinWatson: stats.DurbinWatson(m.residuals),
	}

	if c := stats.NewCorrelogram(m.residuals, summaryLags, 0.95); c != nil {
		s.SignificantLags = c.Significant()
	}

	return s
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (s *Summary) MarshalZerologObject(e *zerolog.Event) {
	e.Float64("alpha", s.Params.Alpha).
		Float64("beta", s.Params.Beta).
		Float64("gamma", s.Params.Gamma).
		Float64("phi", s.Params.Phi).
		Float64("loglik", s.LogLik).
		Float64("aic", s.AIC).
		Float64("aicc", s.AICc).
		Float64("bic", s.BIC).
		Int("nobs", s.NObs).
		Int("iterations", s.Iterations).
		Bool("converged", s.Converged).
		Float64("durbin_watson", s.DurbinWatson).
		Ints("significant_lags", s.SignificantLags)

	if s.LjungBox != nil {
		e.Float64("ljung_box_q", s.LjungBox.Q).
			Float64("ljung_box_p", s.LjungBox.PValue)
	}
}

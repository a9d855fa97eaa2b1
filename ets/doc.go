// Package ets implements additive Holt-Winters exponential smoothing with a
// damped trend, ETS(A,Ad,A) in the Hyndman et al. taxonomy.
//
// The model has additive error, a damped additive trend and an additive
// seasonal component:
//
//	yhat_t = l_{t-1} + phi*b_{t-1} + s_{t-m}
//	l_t    = l_{t-1} + phi*b_{t-1} + alpha*e_t
//	b_t    = phi*b_{t-1} + beta*e_t
//	s_t    = s_{t-m} + gamma*e_t
//
// Initial states come from a classical decomposition of the first cycles.
// Smoothing parameters are estimated by maximizing the Gaussian likelihood
// with Nelder-Mead.
//
// # Usage
//
//	model := ets.New(nil) // period 365, 1000 iterations
//	if err := model.Fit(series); err != nil {
//	    return err
//	}
//	forecasts, _ := model.Predict(45)
//
// Progress and diagnostics are scoped to a single model:
//
//	cfg := ets.DefaultConfig()
//	cfg.Logger = logger
//	cfg.Progress = func(iter int, logLik float64) { ... }
//	model := ets.New(cfg)
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice, ch. 8
//   - Hyndman, R.J., Koehler, A.B., Ord, J.K., & Snyder, R.D. (2008). Forecasting with Exponential Smoothing
package ets

// Package tempcast forecasts daily average temperature with exponential
// smoothing.
//
// A run loads a CSV of daily readings, places it on a gap-free daily calendar
// (missing days are linearly interpolated), standardizes it, fits an
// ETS(A,Ad,A) model with a yearly season and writes a 45 day forecast in the
// original units together with a comparison plot.
//
// # Command Line
//
//	tempcast history.csv forecast.csv
//	tempcast derivative forecast.csv derivative.csv
//
// # Library Use
//
//	raw, _ := timeseries.LoadCSV("history.csv", nil)
//	daily, _ := timeseries.Resample(raw)
//	z, scale, _ := timeseries.Standardize(daily)
//
//	model := ets.New(nil) // period 365
//	if err := model.Fit(z); err != nil {
//	    return err
//	}
//	pred, _ := model.Predict(45)
//	values := scale.InvertValues(pred)
//
// # Packages
//
//   - timeseries: Series type, CSV I/O, resampling and standardization
//   - stats: decomposition, autocorrelation and residual diagnostics
//   - ets: damped-trend additive Holt-Winters model
//   - forecast: the end-to-end pipeline
//   - report: console status, fit progress and plotting
//   - config: optional YAML settings
//   - errs: failure taxonomy
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
package tempcast

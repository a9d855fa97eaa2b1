// Package stats provides diagnostics and decomposition helpers for time series.
//
// # Autocorrelation Functions
//
//	acf := stats.ACF(residuals, 20)
//
//	// ACF with a 95% white-noise band
//	c := stats.NewCorrelogram(residuals, 20, 0.95)
//	significant := c.Significant()
//
// # Residual Diagnostics
//
// Test residuals for autocorrelation:
//
//	// Ljung-Box test, fitdf is the number of estimated parameters
//	lb := stats.LjungBox(residuals, 10, 4)
//	if lb.WhiteNoise(0.05) {
//	    // no autocorrelation left in the residuals
//	}
//
//	dw := stats.DurbinWatson(residuals)
//
// # Information Criteria
//
//	ic := stats.CalculateIC(logLik, n, 4)
//	// ic.AIC, ic.AICc, ic.BIC
//
// # Time Series Decomposition
//
// Classical additive decomposition. Pattern holds one centred value per
// position in the seasonal cycle and is used to seed seasonal models:
//
//	decomp := stats.Decompose(series, 365)
//	// decomp.Trend, decomp.Seasonal, decomp.Residual, decomp.Pattern
//
// # Finite Differences
//
//	d := stats.DiscreteDerivatives(forecast)
//	// d.Forward, d.Backward, d.Central
package stats

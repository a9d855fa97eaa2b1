package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/tempcast/timeseries"
)

// DecompositionResult represents the additive decomposition Y = T + S + R.
type DecompositionResult struct {
	Original *timeseries.Series
	Trend    *timeseries.Series
	Seasonal *timeseries.Series
	Residual *timeseries.Series
	// Pattern holds one centred seasonal value per position in the cycle;
	// Pattern[i] applies to observations i, i+period, i+2*period, ...
	Pattern []float64
	Period  int
}

// Decompose performs classical additive seasonal decomposition.
// The trend is a centred moving average (2xperiod for even periods), so the
// first and last period/2 trend and residual values are NaN.
func Decompose(series *timeseries.Series, period int) *DecompositionResult {
	n := series.Len()
	if period < 2 || n < 2*period {
		return nil
	}

	trend := calculateTrend(series, period)

	// Seasonal pattern: average detrended value per cycle position.
	pattern := make([]float64, period)
	counts := make([]int, period)
	for i := 0; i < n; i++ {
		if math.IsNaN(trend.Values[i]) {
			continue
		}
		pattern[i%period] += series.Values[i] - trend.Values[i]
		counts[i%period]++
	}
	for i := range pattern {
		if counts[i] > 0 {
			pattern[i] /= float64(counts[i])
		}
	}

	mean := stat.Mean(pattern, nil)
	for i := range pattern {
		pattern[i] -= mean
	}

	seasonal := make([]float64, n)
	residual := make([]float64, n)
	for i := 0; i < n; i++ {
		seasonal[i] = pattern[i%period]
		if math.IsNaN(trend.Values[i]) {
			residual[i] = math.NaN()
		} else {
			residual[i] = series.Values[i] - trend.Values[i] - seasonal[i]
		}
	}

	return &DecompositionResult{
		Original: series,
		Trend:    trend,
		Seasonal: &timeseries.Series{
			Values:     seasonal,
			Timestamps: series.Timestamps,
			Name:       "seasonal",
		},
		Residual: &timeseries.Series{
			Values:     residual,
			Timestamps: series.Timestamps,
			Name:       "residual",
		},
		Pattern: pattern,
		Period:  period,
	}
}

// calculateTrend calculates trend using centered moving average.
func calculateTrend(series *timeseries.Series, period int) *timeseries.Series {
	n := series.Len()
	trend := make([]float64, n)

	for i := range trend {
		trend[i] = math.NaN()
	}

	halfPeriod := period / 2

	if period%2 == 0 {
		// Even period: use 2xperiod MA (centered)
		for i := halfPeriod; i < n-halfPeriod; i++ {
			sum := 0.0
			// First and last values get half weight
			sum += series.Values[i-halfPeriod] * 0.5
			sum += series.Values[i+halfPeriod] * 0.5
			for j := i - halfPeriod + 1; j < i+halfPeriod; j++ {
				sum += series.Values[j]
			}
			trend[i] = sum / float64(period)
		}
	} else {
		// Odd period: simple centered MA, kept as a running sum
		sum := 0.0
		for j := 0; j < period && j < n; j++ {
			sum += series.Values[j]
		}
		for i := halfPeriod; i < n-halfPeriod; i++ {
			if i > halfPeriod {
				sum += series.Values[i+halfPeriod] - series.Values[i-halfPeriod-1]
			}
			trend[i] = sum / float64(period)
		}
	}

	return &timeseries.Series{
		Values:     trend,
		Timestamps: series.Timestamps,
		Name:       "trend",
	}
}

// SeasonalStrength calculates the strength of seasonality F_S.
// F_S = max(0, 1 - Var(R) / Var(S+R))
// where S is seasonal component and R is residual. Values near 1 indicate a
// dominant seasonal cycle.
func SeasonalStrength(series *timeseries.Series, period int) float64 {
	decomp := Decompose(series, period)
	if decomp == nil {
		return 0
	}

	var resid, seasonalPlusResid []float64
	for i, r := range decomp.Residual.Values {
		if math.IsNaN(r) {
			continue
		}
		resid = append(resid, r)
		seasonalPlusResid = append(seasonalPlusResid, decomp.Seasonal.Values[i]+r)
	}
	if len(resid) < 2 {
		return 0
	}

	varSR := stat.Variance(seasonalPlusResid, nil)
	if varSR == 0 {
		return 0
	}

	return math.Max(0, 1-stat.Variance(resid, nil)/varSR)
}

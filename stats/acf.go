package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ACF returns the sample autocorrelations of x for lags 0..maxLag, or nil when
// x has zero variance. maxLag is clipped to len(x)-1.
func ACF(x []float64, maxLag int) []float64 {
	n := len(x)
	maxLag = min(maxLag, n-1)
	if maxLag < 0 {
		return nil
	}

	centred := make([]float64, n)
	copy(centred, x)
	floats.AddConst(-stat.Mean(x, nil), centred)

	denom := floats.Dot(centred, centred)
	if denom == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := range acf {
		acf[k] = floats.Dot(centred[k:], centred[:n-k]) / denom
	}
	return acf
}

// Correlogram is an ACF together with its white-noise confidence band.
type Correlogram struct {
	Values []float64 // Values[k] is the autocorrelation at lag k
	Level  float64   // Confidence level of Bound, e.g. 0.95
	Bound  float64   // Autocorrelations within ±Bound are consistent with white noise
}

// NewCorrelogram computes the ACF of x with a two-sided band at the given
// confidence level (0.95 when level is outside (0, 1)).
func NewCorrelogram(x []float64, maxLag int, level float64) *Correlogram {
	acf := ACF(x, maxLag)
	if acf == nil {
		return nil
	}
	if level <= 0 || level >= 1 {
		level = 0.95
	}

	z := distuv.UnitNormal.Quantile(1 - (1-level)/2)
	return &Correlogram{
		Values: acf,
		Level:  level,
		Bound:  z / math.Sqrt(float64(len(x))),
	}
}

// Significant returns the lags, excluding 0, whose autocorrelation is outside
// the band.
func (c *Correlogram) Significant() []int {
	var lags []int
	for k := 1; k < len(c.Values); k++ {
		if math.Abs(c.Values[k]) > c.Bound {
			lags = append(lags, k)
		}
	}
	return lags
}

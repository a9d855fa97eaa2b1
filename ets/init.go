package ets

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/tempcast/stats"
	"github.com/sartorproj/tempcast/timeseries"
)

const (
	maxInitCycles = 5
	initTrendObs  = 10
)

// initialState estimates starting level, trend and seasonal terms.
// The seasonal pattern comes from a classical decomposition of the first few
// full cycles; level and trend are the intercept and slope of a least-squares
// line through the first deseasonalized observations.
func initialState(series *timeseries.Series, period int) (State, error) {
	cycles := min(maxInitCycles, series.Len()/period)
	if cycles < 2 {
		return State{}, errors.New("need at least two full cycles")
	}

	decomp := stats.Decompose(series.Slice(0, cycles*period), period)
	if decomp == nil {
		return State{}, errors.New("seasonal decomposition failed")
	}

	seasonal := make([]float64, period)
	copy(seasonal, decomp.Pattern)

	k := min(initTrendObs, series.Len())
	xs := make([]float64, k)
	ys := make([]float64, k)
	for i := 0; i < k; i++ {
		xs[i] = float64(i + 1)
		ys[i] = series.Values[i] - seasonal[i%period]
	}
	level, trend := stat.LinearRegression(xs, ys, nil, false)

	return State{Level: level, Trend: trend, Seasonal: seasonal}, nil
}

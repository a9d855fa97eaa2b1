package stats

import "github.com/sartorproj/tempcast/timeseries"

// Derivatives holds first-order finite differences of a series, one entry per
// observation. Differences that would reach past either end of the series are 0.
type Derivatives struct {
	Forward  []float64 // x[i+1] - x[i]
	Backward []float64 // x[i] - x[i-1]
	Central  []float64 // (x[i+1] - x[i-1]) / 2
}

// DiscreteDerivatives computes forward, backward and central differences of
// the series values. The step is one observation, i.e. one day for daily data.
func DiscreteDerivatives(series *timeseries.Series) *Derivatives {
	n := series.Len()
	d := &Derivatives{
		Forward:  make([]float64, n),
		Backward: make([]float64, n),
		Central:  make([]float64, n),
	}

	x := series.Values
	for i := 0; i < n; i++ {
		if i < n-1 {
			d.Forward[i] = x[i+1] - x[i]
		}
		if i > 0 {
			d.Backward[i] = x[i] - x[i-1]
		}
		if i > 0 && i < n-1 {
			d.Central[i] = (x[i+1] - x[i-1]) / 2
		}
	}
	return d
}

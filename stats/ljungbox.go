package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Portmanteau is the result of a Ljung-Box test on residuals.
type Portmanteau struct {
	Q      float64 // Test statistic
	PValue float64
	Lags   int
	DOF    int // Lags minus fitted parameters, at least 1
}

// WhiteNoise reports whether no autocorrelation is detected at significance
// level alpha.
func (p *Portmanteau) WhiteNoise(alpha float64) bool {
	return p.PValue > alpha
}

// LjungBox tests the residuals for autocorrelation up to lag h. fitdf is the
// number of model parameters estimated from the data. It returns nil when
// there are fewer than 10 residuals or they have zero variance.
func LjungBox(resid []float64, h, fitdf int) *Portmanteau {
	n := len(resid)
	if n < 10 || h < 1 {
		return nil
	}
	h = min(h, n-1)

	acf := ACF(resid, h)
	if acf == nil {
		return nil
	}

	nf := float64(n)
	q := 0.0
	for k := 1; k <= h; k++ {
		q += acf[k] * acf[k] / (nf - float64(k))
	}
	q *= nf * (nf + 2)

	dof := max(h-fitdf, 1)
	return &Portmanteau{
		Q:      q,
		PValue: distuv.ChiSquared{K: float64(dof)}.Survival(q),
		Lags:   h,
		DOF:    dof,
	}
}

// DurbinWatson returns sum((e_t - e_{t-1})^2) / sum(e_t^2). Values near 2 mean
// no first-order autocorrelation, below 2 positive, above 2 negative. It is
// NaN for fewer than two residuals or all-zero residuals.
func DurbinWatson(resid []float64) float64 {
	n := len(resid)
	if n < 2 {
		return math.NaN()
	}

	ss := floats.Dot(resid, resid)
	if ss == 0 {
		return math.NaN()
	}

	d := floats.Distance(resid[1:], resid[:n-1], 2)
	return d * d / ss
}

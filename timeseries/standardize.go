package timeseries

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/tempcast/errs"
)

// Standardization holds the sample mean and standard deviation used to map a
// series to zero mean and unit variance and back.
type Standardization struct {
	Mean   float64
	StdDev float64
}

// Standardize returns a z-scored copy of s together with the parameters needed
// to invert it. The standard deviation uses the N-1 denominator.
//
// Series shorter than two readings, containing NaN, or with zero variance
// cannot be standardized and yield a NumericDegeneracyError.
func Standardize(s *Series) (*Series, Standardization, error) {
	if s.Len() < 2 {
		return nil, Standardization{}, errs.NumericDegeneracy("standardize",
			fmt.Sprintf("need at least 2 readings, got %d", s.Len()))
	}
	if s.Missing() > 0 {
		return nil, Standardization{}, errs.NumericDegeneracy("standardize", "series contains missing values")
	}

	mean, std := stat.MeanStdDev(s.Values, nil)
	if std == 0 || math.IsNaN(std) || math.IsInf(std, 0) {
		return nil, Standardization{}, errs.NumericDegeneracy("standardize",
			"standard deviation is zero; the series is constant")
	}

	params := Standardization{Mean: mean, StdDev: std}
	out := s.Copy()
	for i, v := range out.Values {
		out.Values[i] = params.Apply(v)
	}
	out.Name = s.Name + "_standardized"
	return out, params, nil
}

// Apply maps an original-unit value to the standardized scale.
func (p Standardization) Apply(v float64) float64 {
	return (v - p.Mean) / p.StdDev
}

// Invert maps a standardized value back to original units.
func (p Standardization) Invert(z float64) float64 {
	return z*p.StdDev + p.Mean
}

// InvertValues applies Invert elementwise and returns a new slice.
func (p Standardization) InvertValues(z []float64) []float64 {
	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = p.Invert(v)
	}
	return out
}

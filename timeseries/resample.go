package timeseries

import (
	"fmt"
	"math"

	"github.com/sartorproj/tempcast/errs"
)

// Resample places the series on a gap-free daily calendar running from its first
// to its last date. Days without a reading, and readings whose value is NaN, are
// filled by linear interpolation between the nearest known neighbours.
//
// Interpolation never extrapolates: if the first or last value is missing the
// call fails with a DataFormatError. The input series is left untouched.
func Resample(s *Series) (*Series, error) {
	if s.Len() == 0 {
		return nil, errs.DataFormat("resample", "series is empty", nil)
	}
	if len(s.Timestamps) != s.Len() {
		return nil, errs.DataFormat("resample", "series has no date index", nil)
	}

	start := Day(s.First())
	span := DaysBetween(start, s.Last())
	if span < 0 {
		return nil, errs.DataFormat("resample", "dates are not in chronological order", nil)
	}

	values := make([]float64, span+1)
	filled := make([]bool, span+1)
	for i := range values {
		values[i] = math.NaN()
	}

	for i, ts := range s.Timestamps {
		idx := DaysBetween(start, ts)
		if idx < 0 || idx > span {
			return nil, errs.DataFormat("resample",
				fmt.Sprintf("date %s is not in chronological order", ts.Format(DateLayout)), nil)
		}
		if filled[idx] {
			return nil, errs.DataFormat("resample",
				fmt.Sprintf("duplicate date %s", ts.Format(DateLayout)), nil)
		}
		filled[idx] = true
		values[idx] = s.Values[i]
	}

	if err := interpolate(values); err != nil {
		return nil, err
	}

	return &Series{
		Timestamps: DaysFrom(start, len(values)),
		Values:     values,
		Name:       s.Name,
	}, nil
}

// interpolate fills NaN runs in place, linearly between their bounding values.
func interpolate(values []float64) error {
	n := len(values)
	if math.IsNaN(values[0]) || math.IsNaN(values[n-1]) {
		return errs.DataFormat("resample", "first and last readings must have values; extrapolation is not supported", nil)
	}

	prev := 0
	for i := 1; i < n; i++ {
		if math.IsNaN(values[i]) {
			continue
		}
		if gap := i - prev; gap > 1 {
			step := (values[i] - values[prev]) / float64(gap)
			for j := prev + 1; j < i; j++ {
				values[j] = values[prev] + step*float64(j-prev)
			}
		}
		prev = i
	}
	return nil
}

// Gaps reports how many calendar days between the first and last reading have
// no usable value, counting both absent days and NaN readings.
func Gaps(s *Series) int {
	if s.Len() == 0 || len(s.Timestamps) != s.Len() {
		return 0
	}
	present := make(map[int]bool, s.Len())
	start := s.First()
	for i, ts := range s.Timestamps {
		if !math.IsNaN(s.Values[i]) {
			present[DaysBetween(start, ts)] = true
		}
	}
	return DaysBetween(start, s.Last()) + 1 - len(present)
}

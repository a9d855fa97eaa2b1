// Package timeseries provides the daily Series type and the data preparation
// steps that run before model fitting.
//
// # Creating a Series
//
// Create a daily series from a slice:
//
//	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
//	series := timeseries.NewDaily(start, []float64{31.2, 30.8, 33.0})
//
// # Loading from CSV
//
// Rows may appear in any order; the loaded series is chronological:
//
//	series, err := timeseries.LoadCSV("readings.csv", timeseries.DefaultCSVOptions())
//
// Customize the column names or the preferred date layout:
//
//	opts := &timeseries.CSVOptions{
//	    DateColumn:  "date",
//	    ValueColumn: "avtemp",
//	    DateFormat:  "2006-01-02",
//	}
//
// # Preparing for a Model
//
// Put the series on a gap-free daily calendar, then z-score it:
//
//	daily, err := timeseries.Resample(series)
//	z, params, err := timeseries.Standardize(daily)
//
//	// ... fit on z.Values, forecast, then
//	values := params.InvertValues(forecast)
//	dates := timeseries.FutureDates(daily.Last(), len(values))
//
// Failures carry an errs.Kind: DataFormatError for malformed input,
// NumericDegeneracyError for constant series and IOError for file problems.
package timeseries

package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sartorproj/tempcast/errs"
)

// CSVOptions holds options for CSV loading and writing.
type CSVOptions struct {
	DateColumn  string // Column name for dates (default: "date")
	ValueColumn string // Column name for values (default: "avtemp")
	DateFormat  string // Preferred date layout (default: "2006-01-02")
	Delimiter   rune   // Field delimiter (default: ',')
}

// DefaultCSVOptions returns the options for the daily temperature format.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateColumn:  "date",
		ValueColumn: "avtemp",
		DateFormat:  DateLayout,
		Delimiter:   ',',
	}
}

// missingTokens are value cells read as a missing reading rather than an error.
var missingTokens = map[string]bool{
	"":     true,
	"NA":   true,
	"NaN":  true,
	"nan":  true,
	"null": true,
}

// LoadCSV loads a date-indexed series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errs.IO("load", "cannot open "+filename, err)
	}
	defer file.Close()

	series, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, err
	}
	series.Name = opts.valueColumn()
	return series, nil
}

// LoadCSVFromReader loads a date-indexed series from an io.Reader.
//
// Rows may appear in any order; the result is sorted chronologically. Empty or
// NA value cells become NaN readings. Missing columns, unparseable dates,
// non-numeric values and duplicate dates are reported as DataFormatError.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.delimiter()
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errs.DataFormat("load", "input is empty", nil)
	}
	if err != nil {
		return nil, errs.DataFormat("load", "cannot read header", err)
	}

	dateIdx, valueIdx := -1, -1
	for i, h := range header {
		h = strings.TrimSpace(strings.Trim(h, "\"\ufeff"))
		switch {
		case strings.EqualFold(h, opts.dateColumn()):
			dateIdx = i
		case strings.EqualFold(h, opts.valueColumn()):
			valueIdx = i
		}
	}
	if dateIdx == -1 {
		return nil, errs.DataFormat("load", fmt.Sprintf("missing %q column", opts.dateColumn()), nil)
	}
	if valueIdx == -1 {
		return nil, errs.DataFormat("load", fmt.Sprintf("missing %q column", opts.valueColumn()), nil)
	}

	type reading struct {
		date  time.Time
		value float64
	}
	var readings []reading

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errs.DataFormat("load", fmt.Sprintf("line %d", line), err)
		}

		date, err := ParseDate(strings.Trim(record[dateIdx], "\""), opts.DateFormat)
		if err != nil {
			return nil, errs.DataFormat("load", fmt.Sprintf("line %d", line), err)
		}

		value, err := parseValue(record[valueIdx])
		if err != nil {
			return nil, errs.DataFormat("load", fmt.Sprintf("line %d", line), err)
		}

		readings = append(readings, reading{date: date, value: value})
	}

	if len(readings) == 0 {
		return nil, errs.DataFormat("load", "no data rows found", nil)
	}

	sort.SliceStable(readings, func(i, j int) bool {
		return readings[i].date.Before(readings[j].date)
	})

	series := &Series{
		Timestamps: make([]time.Time, len(readings)),
		Values:     make([]float64, len(readings)),
	}
	for i, rd := range readings {
		if i > 0 && rd.date.Equal(readings[i-1].date) {
			return nil, errs.DataFormat("load", "duplicate date "+rd.date.Format(DateLayout), nil)
		}
		series.Timestamps[i] = rd.date
		series.Values[i] = rd.value
	}
	return series, nil
}

func parseValue(cell string) (float64, error) {
	s := strings.TrimSpace(strings.Trim(cell, "\""))
	if missingTokens[s] {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("value %q is not numeric", s)
	}
	if math.IsInf(v, 0) {
		return 0, fmt.Errorf("value %q is not finite", s)
	}
	return v, nil
}

// WriteCSV writes series to filename as a two column date/value CSV with a header.
func WriteCSV(series *Series, filename string, opts *CSVOptions) error {
	file, err := os.Create(filename)
	if err != nil {
		return errs.IO("write", "cannot create "+filename, err)
	}

	if err := WriteCSVTo(file, series, opts); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return errs.IO("write", "cannot close "+filename, err)
	}
	return nil
}

// WriteCSVTo writes series to w as a two column date/value CSV with a header.
func WriteCSVTo(w io.Writer, series *Series, opts *CSVOptions) error {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	if len(series.Timestamps) != series.Len() {
		return errs.DataFormat("write", "series has no date index", nil)
	}

	writer := csv.NewWriter(w)
	writer.Comma = opts.delimiter()

	if err := writer.Write([]string{opts.dateColumn(), opts.valueColumn()}); err != nil {
		return errs.IO("write", "cannot write header", err)
	}
	for i, v := range series.Values {
		row := []string{
			series.Timestamps[i].Format(DateLayout),
			strconv.FormatFloat(v, 'f', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return errs.IO("write", "cannot write row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errs.IO("write", "cannot flush rows", err)
	}
	return nil
}

func (o *CSVOptions) dateColumn() string {
	if o == nil || o.DateColumn == "" {
		return "date"
	}
	return o.DateColumn
}

func (o *CSVOptions) valueColumn() string {
	if o == nil || o.ValueColumn == "" {
		return "avtemp"
	}
	return o.ValueColumn
}

func (o *CSVOptions) delimiter() rune {
	if o == nil || o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

package forecast

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tempcast/errs"
	"github.com/sartorproj/tempcast/report"
	"github.com/sartorproj/tempcast/timeseries"
)

type recordingReporter struct {
	infos     []string
	successes []string
}

func (r *recordingReporter) Info(msg string)    { r.infos = append(r.infos, msg) }
func (r *recordingReporter) Success(msg string) { r.successes = append(r.successes, msg) }

type countingProgress struct {
	updates int
	done    bool
}

func (c *countingProgress) Update(int, float64) { c.updates++ }
func (c *countingProgress) Done()               { c.done = true }

var inputStart = time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

// writeInput writes days of synthetic temperatures in shuffled-ish order,
// leaving out the days in skip and blanking the days in blank.
func writeInput(t *testing.T, days int, skip, blank map[int]bool) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("date,avtemp\n")
	seed := uint32(1)
	rows := make([]string, 0, days)
	for i := 0; i < days; i++ {
		seed = seed*1664525 + 1013904223
		if skip[i] {
			continue
		}
		date := inputStart.AddDate(0, 0, i).Format(timeseries.DateLayout)
		if blank[i] {
			rows = append(rows, date+",NA\n")
			continue
		}
		noise := (float64(seed>>8)/float64(1<<24) - 0.5) * 6
		v := 55 + 25*math.Sin(2*math.Pi*float64(i-100)/365) + noise
		rows = append(rows, date+","+strconv.FormatFloat(v, 'f', 2, 64)+"\n")
	}
	// Reverse the second half so row order is not chronological.
	half := len(rows) / 2
	for i, j := half, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	for _, r := range rows {
		b.WriteString(r)
	}

	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func readOutput(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestRunEndToEnd(t *testing.T) {
	days := 3 * 365
	input := writeInput(t, days,
		map[int]bool{40: true, 41: true, 400: true, 777: true, 1000: true},
		map[int]bool{500: true},
	)
	dir := t.TempDir()
	output := filepath.Join(dir, "forecast.csv")
	plotPath := filepath.Join(dir, "forecast_plot.png")

	reporter := &recordingReporter{}
	progress := &countingProgress{}
	p := New(reporter, report.NewPlotRenderer(plotPath), zerolog.Nop())
	p.Progress = progress

	result, err := p.Run(input, output)
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, days, result.History.Len())
	assert.Zero(t, result.History.Missing())
	assert.Equal(t, 6, result.FilledReadings)
	require.NotNil(t, result.Summary)

	records := readOutput(t, output)
	require.Len(t, records, Horizon+1)
	assert.Equal(t, []string{"date", "avtemp"}, records[0])

	last := inputStart.AddDate(0, 0, days-1)
	for i, rec := range records[1:] {
		want := last.AddDate(0, 0, i+1).Format(timeseries.DateLayout)
		assert.Equal(t, want, rec[0])

		v, err := strconv.ParseFloat(rec[1], 64)
		require.NoError(t, err)
		assert.True(t, v > -20 && v < 110, "implausible forecast %v on %s", v, rec[0])
	}

	info, err := os.Stat(plotPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.Greater(t, progress.updates, 0)
	assert.True(t, progress.done)
	assert.Len(t, reporter.successes, 1)
	assert.Contains(t, reporter.infos, "Standardizing series")
}

func TestRunIsDeterministic(t *testing.T) {
	input := writeInput(t, 2*365+20, map[int]bool{10: true}, nil)
	dir := t.TempDir()

	p := New(&recordingReporter{}, nil, zerolog.Nop())

	first := filepath.Join(dir, "a.csv")
	second := filepath.Join(dir, "b.csv")
	_, err := p.Run(input, first)
	require.NoError(t, err)
	_, err = p.Run(input, second)
	require.NoError(t, err)

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestRunFailuresWriteNothing(t *testing.T) {
	constant := filepath.Join(t.TempDir(), "constant.csv")
	var b strings.Builder
	b.WriteString("date,avtemp\n")
	for i := 0; i < 800; i++ {
		fmt.Fprintf(&b, "%s,50\n", inputStart.AddDate(0, 0, i).Format(timeseries.DateLayout))
	}
	require.NoError(t, os.WriteFile(constant, []byte(b.String()), 0o600))

	badColumn := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(badColumn, []byte("date,temp\n2021-01-01,5\n"), 0o600))

	tests := []struct {
		name  string
		input string
		kind  errs.Kind
	}{
		{"missing file", filepath.Join(t.TempDir(), "absent.csv"), errs.KindIO},
		{"missing column", badColumn, errs.KindDataFormat},
		{"zero variance", constant, errs.KindNumericDegeneracy},
		{"insufficient history", writeInput(t, 400, nil, nil), errs.KindModelFit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "out.csv")
			_, err := New(&recordingReporter{}, nil, zerolog.Nop()).Run(tt.input, output)

			require.Error(t, err)
			assert.Equal(t, tt.kind, errs.KindOf(err))
			assert.NoFileExists(t, output)
		})
	}
}

func TestRunUnwritableOutput(t *testing.T) {
	input := writeInput(t, 2*365, nil, nil)
	output := filepath.Join(t.TempDir(), "missing", "out.csv")

	_, err := New(&recordingReporter{}, nil, zerolog.Nop()).Run(input, output)
	assert.True(t, errs.Is(err, errs.KindIO))
}

func TestDerivative(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "forecast.csv")
	output := filepath.Join(dir, "derivative.csv")
	content := "date,avtemp\n2024-01-01,10\n2024-01-02,12.5\n2024-01-03,11\n"
	require.NoError(t, os.WriteFile(input, []byte(content), 0o600))

	reporter := &recordingReporter{}
	d, err := New(reporter, nil, zerolog.Nop()).Derivative(input, output)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, -1.5, 0}, d.Forward)

	records := readOutput(t, output)
	assert.Equal(t, [][]string{
		{"Date", "Temperature", "ForwardDerivative", "BackwardDerivative", "CentralDerivative"},
		{"2024-01-01", "10.00", "2.50", "0.00", "0.00"},
		{"2024-01-02", "12.50", "-1.50", "2.50", "0.50"},
		{"2024-01-03", "11.00", "0.00", "-1.50", "0.00"},
	}, records)
	assert.Len(t, reporter.successes, 1)
}

func TestDerivativeEmptyForecast(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "forecast.csv")
	require.NoError(t, os.WriteFile(input, []byte("date,avtemp\n"), 0o600))

	_, err := New(&recordingReporter{}, nil, zerolog.Nop()).Derivative(input, filepath.Join(dir, "out.csv"))
	assert.True(t, errs.Is(err, errs.KindDataFormat))
	assert.NoFileExists(t, filepath.Join(dir, "out.csv"))
}

package stats

import (
	"math"
	"testing"

	"github.com/sartorproj/tempcast/timeseries"
)

func TestACF(t *testing.T) {
	// Create a simple AR(1) process
	n := 100
	phi := 0.8
	values := make([]float64, n)
	for i := 1; i < n; i++ {
		values[i] = phi*values[i-1] + (float64(i%10)-5)/10
	}

	acf := ACF(values, 10)
	if acf == nil {
		t.Fatal("ACF returned nil")
	}
	if len(acf) != 11 {
		t.Fatalf("Expected 11 lags, got %d", len(acf))
	}

	// ACF at lag 0 should be 1
	if math.Abs(acf[0]-1.0) > 1e-10 {
		t.Errorf("ACF at lag 0 should be 1, got %f", acf[0])
	}

	if acf[1] <= 0 {
		t.Errorf("ACF at lag 1 should be positive for AR(1) with phi=0.8, got %f", acf[1])
	}
}

func TestACFKnownValues(t *testing.T) {
	// Centred values -1.5, -0.5, 0.5, 1.5; sum of squares 5.
	acf := ACF([]float64{1, 2, 3, 4}, 2)

	expected := []float64{1, 1.25 / 5, -1.5 / 5}
	for k, want := range expected {
		if math.Abs(acf[k]-want) > 1e-12 {
			t.Errorf("ACF[%d]: expected %f, got %f", k, want, acf[k])
		}
	}
}

func TestACFConstantSeries(t *testing.T) {
	if acf := ACF([]float64{3, 3, 3, 3}, 2); acf != nil {
		t.Errorf("Expected nil ACF for zero variance, got %v", acf)
	}
}

func TestCorrelogram(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = math.Sin(float64(i) / 3)
	}

	c := NewCorrelogram(values, 20, 0.95)
	if c == nil {
		t.Fatal("NewCorrelogram returned nil")
	}
	if len(c.Values) != 21 {
		t.Errorf("Expected 21 lags, got %d", len(c.Values))
	}

	expected := 1.959964 / math.Sqrt(100)
	if math.Abs(c.Bound-expected) > 1e-6 {
		t.Errorf("Expected bound %f, got %f", expected, c.Bound)
	}

	// A slow sine is strongly autocorrelated at lag 1.
	significant := c.Significant()
	if len(significant) == 0 || significant[0] != 1 {
		t.Errorf("Expected lag 1 to be significant, got %v", significant)
	}

	if d := NewCorrelogram(values, 20, 2); d.Level != 0.95 {
		t.Errorf("Expected invalid level to fall back to 0.95, got %f", d.Level)
	}
}

func TestCorrelogramSignificant(t *testing.T) {
	c := &Correlogram{Values: []float64{1.0, 0.5, 0.1, -0.3, 0.05}, Bound: 0.2}
	got := c.Significant()

	expected := []int{1, 3}
	if len(got) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	}
}

func TestLjungBox(t *testing.T) {
	n := 200

	// Deterministic pseudo white noise
	noise := make([]float64, n)
	seed := uint32(7)
	for i := range noise {
		seed = seed*1664525 + 1013904223
		noise[i] = float64(seed>>8)/float64(1<<24) - 0.5
	}

	result := LjungBox(noise, 10, 0)
	if result == nil {
		t.Fatal("LjungBox returned nil")
	}
	if result.DOF != 10 {
		t.Errorf("Expected DOF 10, got %d", result.DOF)
	}
	if result.PValue < 0 || result.PValue > 1 {
		t.Errorf("p-value out of range: %f", result.PValue)
	}

	autocorrelated := make([]float64, n)
	for i := 1; i < n; i++ {
		autocorrelated[i] = 0.9*autocorrelated[i-1] + noise[i]
	}

	result2 := LjungBox(autocorrelated, 10, 0)
	if result2 == nil {
		t.Fatal("LjungBox returned nil for autocorrelated data")
	}

	if result2.WhiteNoise(0.05) {
		t.Errorf("Expected autocorrelation to be detected, p=%f", result2.PValue)
	}
	if result2.Q <= result.Q {
		t.Errorf("Expected larger Q for autocorrelated data: %f vs %f", result2.Q, result.Q)
	}

	t.Logf("Ljung-Box noise Q=%f p=%f, AR(1) Q=%f p=%f",
		result.Q, result.PValue, result2.Q, result2.PValue)
}

func TestLjungBoxDOFFloor(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = float64(i%7) - 3
	}

	result := LjungBox(values, 3, 4)
	if result == nil {
		t.Fatal("LjungBox returned nil")
	}
	if result.DOF != 1 {
		t.Errorf("Expected DOF floored at 1, got %d", result.DOF)
	}

	if LjungBox(values[:5], 3, 0) != nil {
		t.Error("Expected nil for fewer than 10 observations")
	}
}

func TestDurbinWatson(t *testing.T) {
	tests := []struct {
		name      string
		residuals []float64
		expected  float64
	}{
		{
			name:      "alternating",
			residuals: []float64{1, -1, 1, -1, 1, -1, 1, -1},
			expected:  28.0 / 8.0,
		},
		{
			name:      "positive autocorrelation",
			residuals: []float64{1, 1, 1, 1, -1, -1, -1, -1},
			expected:  4.0 / 8.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DurbinWatson(tt.residuals)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}

	if !math.IsNaN(DurbinWatson([]float64{0, 0, 0})) {
		t.Error("Expected NaN for all-zero residuals")
	}
	if !math.IsNaN(DurbinWatson([]float64{1})) {
		t.Error("Expected NaN for a single residual")
	}
}

func TestDecompose(t *testing.T) {
	// Create data with trend and seasonality
	n := 120 // 10 years of monthly data
	period := 12
	values := make([]float64, n)

	for i := 0; i < n; i++ {
		trend := float64(i) * 0.5
		seasonal := 10 * math.Sin(2*math.Pi*float64(i%period)/float64(period))
		values[i] = trend + seasonal
	}

	series := timeseries.New(values)
	result := Decompose(series, period)

	if result == nil {
		t.Fatal("Decompose returned nil")
	}

	if len(result.Pattern) != period {
		t.Fatalf("Expected pattern of length %d, got %d", period, len(result.Pattern))
	}

	// The centred pattern sums to zero and recovers the sine wave.
	sum := 0.0
	for i, s := range result.Pattern {
		sum += s
		want := 10 * math.Sin(2*math.Pi*float64(i)/float64(period))
		if math.Abs(s-want) > 1e-9 {
			t.Errorf("Pattern[%d]: expected %f, got %f", i, want, s)
		}
	}
	if math.Abs(sum) > 1e-9 {
		t.Errorf("Seasonal pattern should sum to 0, got %f", sum)
	}

	// Trend is undefined at the edges and linear in the middle.
	if !math.IsNaN(result.Trend.Values[0]) {
		t.Error("Expected NaN trend at the start")
	}
	if math.Abs(result.Trend.Values[60]-30) > 1e-9 {
		t.Errorf("Expected trend 30 at index 60, got %f", result.Trend.Values[60])
	}
}

func TestDecomposeOddPeriod(t *testing.T) {
	period := 7
	values := make([]float64, 70)
	for i := range values {
		values[i] = 20 + float64(i%period)
	}

	result := Decompose(timeseries.New(values), period)
	if result == nil {
		t.Fatal("Decompose returned nil")
	}

	for i := 3; i < len(values)-3; i++ {
		if math.Abs(result.Trend.Values[i]-23) > 1e-9 {
			t.Fatalf("Expected flat trend 23 at %d, got %f", i, result.Trend.Values[i])
		}
	}
	for i, s := range result.Pattern {
		if math.Abs(s-float64(i-3)) > 1e-9 {
			t.Errorf("Pattern[%d]: expected %d, got %f", i, i-3, s)
		}
	}
}

func TestDecomposeTooShort(t *testing.T) {
	if Decompose(timeseries.New(make([]float64, 20)), 12) != nil {
		t.Error("Expected nil when fewer than two periods are available")
	}
}

func TestSeasonalStrength(t *testing.T) {
	n := 120
	strong := make([]float64, n)
	for i := 0; i < n; i++ {
		strong[i] = 100 + 20*math.Sin(2*math.Pi*float64(i)/12) + float64(i%5-2)*0.1
	}

	strength := SeasonalStrength(timeseries.New(strong), 12)
	if strength < 0.9 {
		t.Errorf("Expected strong seasonality, got %.4f", strength)
	}

	weak := make([]float64, n)
	for i := 0; i < n; i++ {
		weak[i] = 100 + float64((i*7)%20-10)*0.5
	}

	weakStrength := SeasonalStrength(timeseries.New(weak), 12)
	if weakStrength >= strength {
		t.Errorf("Expected weaker seasonality for irregular data: %.4f vs %.4f", weakStrength, strength)
	}
}

func TestDiscreteDerivatives(t *testing.T) {
	series := timeseries.New([]float64{10, 12.5, 11, 15})
	d := DiscreteDerivatives(series)

	expected := map[string][]float64{
		"forward":  {2.5, -1.5, 4, 0},
		"backward": {0, 2.5, -1.5, 4},
		"central":  {0, 0.5, 1.25, 0},
	}
	got := map[string][]float64{
		"forward":  d.Forward,
		"backward": d.Backward,
		"central":  d.Central,
	}

	for name, want := range expected {
		for i := range want {
			if math.Abs(got[name][i]-want[i]) > 1e-12 {
				t.Errorf("%s[%d]: expected %f, got %f", name, i, want[i], got[name][i])
			}
		}
	}
}

func TestDiscreteDerivativesSingleValue(t *testing.T) {
	d := DiscreteDerivatives(timeseries.New([]float64{7}))
	if d.Forward[0] != 0 || d.Backward[0] != 0 || d.Central[0] != 0 {
		t.Errorf("Expected zero derivatives for a single value, got %+v", d)
	}
}

func TestCalculateIC(t *testing.T) {
	ic := CalculateIC(-100, 50, 4)

	if math.Abs(ic.AIC-208) > 1e-12 {
		t.Errorf("Expected AIC 208, got %f", ic.AIC)
	}
	if math.Abs(ic.AICc-(208+40.0/45)) > 1e-12 {
		t.Errorf("Expected AICc %f, got %f", 208+40.0/45, ic.AICc)
	}
	if math.Abs(ic.BIC-(200+4*math.Log(50))) > 1e-12 {
		t.Errorf("Expected BIC %f, got %f", 200+4*math.Log(50), ic.BIC)
	}

	if !math.IsInf(AICc(10, 5, 4), 1) {
		t.Error("Expected infinite AICc when n-k-1 <= 0")
	}
}

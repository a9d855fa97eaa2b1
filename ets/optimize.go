package ets

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// Damping bounds.
const (
	phiLower = 0.8
	phiUpper = 0.98
)

// Starting point for the optimizer.
var startParams = Params{Alpha: 0.2, Beta: 0.01, Gamma: 0.01, Phi: 0.9}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func logit(p float64) float64 {
	return math.Log(p / (1 - p))
}

// toParams maps an unconstrained point onto the admissible region
// 0 < alpha < 1, 0 < beta < alpha, 0 < gamma < 1-alpha, phiLower < phi < phiUpper.
func toParams(x []float64) Params {
	alpha := sigmoid(x[0])
	return Params{
		Alpha: alpha,
		Beta:  alpha * sigmoid(x[1]),
		Gamma: (1 - alpha) * sigmoid(x[2]),
		Phi:   phiLower + (phiUpper-phiLower)*sigmoid(x[3]),
	}
}

// fromParams is the inverse of toParams.
func fromParams(p Params) []float64 {
	return []float64{
		logit(p.Alpha),
		logit(p.Beta / p.Alpha),
		logit(p.Gamma / (1 - p.Alpha)),
		logit((p.Phi - phiLower) / (phiUpper - phiLower)),
	}
}

// progressRecorder forwards optimizer major iterations to a ProgressFunc.
type progressRecorder struct {
	fn ProgressFunc
	n  int
}

func (r *progressRecorder) Init() error {
	return nil
}

func (r *progressRecorder) Record(loc *optimize.Location, op optimize.Operation, st *optimize.Stats) error {
	if op != optimize.MajorIteration || r.fn == nil {
		return nil
	}
	r.fn(st.MajorIterations, objectiveLogLik(loc.F, r.n))
	return nil
}

// objectiveLogLik converts the minimized objective n*log(SSE/n) back to the
// concentrated log-likelihood.
func objectiveLogLik(f float64, n int) float64 {
	nf := float64(n)
	return -nf/2*(math.Log(2*math.Pi)+1) - f/2
}

// optimize minimizes n*log(SSE/n), which is equivalent to maximizing the
// concentrated likelihood, with Nelder-Mead over the logistic parameter space.
func (m *Model) optimize(y []float64) (Params, int, bool, error) {
	n := len(y)
	nf := float64(n)
	resid := make([]float64, n)
	work := State{Seasonal: make([]float64, len(m.Initial.Seasonal))}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			copy(work.Seasonal, m.Initial.Seasonal)
			work.Level, work.Trend = m.Initial.Level, m.Initial.Trend

			filter(y, toParams(x), &work, resid, nil)
			sse := floats.Dot(resid, resid)
			if sse <= 0 || math.IsNaN(sse) || math.IsInf(sse, 0) {
				return math.Inf(1)
			}
			return nf * math.Log(sse/nf)
		},
	}

	settings := &optimize.Settings{
		MajorIterations: m.Config.MaxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-8,
			Iterations: 100,
		},
		Recorder: &progressRecorder{fn: m.Config.Progress, n: n},
	}

	result, err := optimize.Minimize(problem, fromParams(startParams), settings, &optimize.NelderMead{SimplexSize: 0.5})
	if result == nil {
		if err == nil {
			err = errors.New("optimizer returned no result")
		}
		return Params{}, 0, false, err
	}
	if math.IsNaN(result.F) || math.IsInf(result.F, 0) {
		if err == nil {
			err = errors.New("no finite likelihood found")
		}
		return Params{}, result.MajorIterations, false, err
	}
	if err != nil {
		m.Config.Logger.Warn().Err(err).Msg("optimizer stopped early, using best parameters found")
	}

	converged := err == nil && result.Status != optimize.IterationLimit
	return toParams(result.X), result.MajorIterations, converged, nil
}

/*
Copyright © 2026 the LUMA authors.
This file is part of LUMA.

LUMA is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

LUMA is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with LUMA.  If not, see <http://www.gnu.org/licenses/>.
*/

package integrate

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Dormand–Prince 5(4) coefficients (Dormand & Prince 1980). The
// seventh stage equals the first stage of the next step (FSAL), so an
// accepted step costs six evaluations.
var (
	dpC = [7]float64{0, 1. / 5, 3. / 10, 4. / 5, 8. / 9, 1, 1}

	dpA = [7][6]float64{
		{},
		{1. / 5},
		{3. / 40, 9. / 40},
		{44. / 45, -56. / 15, 32. / 9},
		{19372. / 6561, -25360. / 2187, 64448. / 6561, -212. / 729},
		{9017. / 3168, -355. / 33, 46732. / 5247, 49. / 176, -5103. / 18656},
		{35. / 384, 0, 500. / 1113, 125. / 192, -2187. / 6784, 11. / 84},
	}

	// 5th-order solution weights (identical to the last tableau row).
	dpB5 = [7]float64{35. / 384, 0, 500. / 1113, 125. / 192, -2187. / 6784, 11. / 84, 0}

	// 4th-order embedded weights for the error estimate.
	dpB4 = [7]float64{5179. / 57600, 0, 7571. / 16695, 393. / 640,
		-92097. / 339200, 187. / 2100, 1. / 40}
)

// Step-size controller bounds.
const (
	dpSafety    = 0.9
	dpMinFactor = 0.2
	dpMaxFactor = 5.0
	dpOrder     = 5.0

	defaultAbsTol = 1e-6
	defaultRelTol = 1e-3
)

// DormandPrince is an adaptive explicit Runge–Kutta integrator of
// order 5 with an embedded order-4 error estimate. The zero value is
// ready to use and safe for concurrent use; all per-run state lives on
// the stack of Integrate.
type DormandPrince struct{}

// Name returns the integrator name.
func (dp *DormandPrince) Name() string { return "dormand-prince-5(4)" }

// Integrate advances y from t to tEnd. On failure it returns a
// *StepError holding the last accepted time and state; y is left at
// that state.
func (dp *DormandPrince) Integrate(f Function, t, tEnd float64, y []float64, cfg *Config) (Statistics, error) {
	var stats Statistics
	if cfg == nil {
		cfg = &Config{}
	}
	if tEnd < t {
		return stats, &StepError{T: t, Y: append([]float64(nil), y...),
			Reason: "end time precedes start time"}
	}

	atol := cfg.AbsTol
	if atol <= 0 {
		atol = defaultAbsTol
	}
	rtol := cfg.RelTol
	if rtol <= 0 {
		rtol = defaultRelTol
	}

	n := len(y)
	var k [7][]float64
	for i := range k {
		k[i] = make([]float64, n)
	}
	yTmp := make([]float64, n)
	yNew := make([]float64, n)
	errVec := make([]float64, n)

	h := cfg.InitialStep
	if h <= 0 {
		h = (tEnd - t) / 100
	}
	if cfg.MaxStep > 0 && h > cfg.MaxStep {
		h = cfg.MaxStep
	}

	f(t, y, k[0])
	stats.Evaluations++

	for t < tEnd {
		last := false
		if h >= tEnd-t {
			h = tEnd - t
			last = true
		}

		// Stages 2..7. The last stage is evaluated at t+h with the
		// 5th-order weights, so k[6] is f at the step end (FSAL).
		for s := 1; s < 7; s++ {
			copy(yTmp, y)
			for j := 0; j < s; j++ {
				if dpA[s][j] != 0 {
					floats.AddScaled(yTmp, h*dpA[s][j], k[j])
				}
			}
			f(t+dpC[s]*h, yTmp, k[s])
			stats.Evaluations++
		}

		copy(yNew, y)
		for s := 0; s < 7; s++ {
			if dpB5[s] != 0 {
				floats.AddScaled(yNew, h*dpB5[s], k[s])
			}
		}

		for i := range errVec {
			errVec[i] = 0
		}
		for s := 0; s < 7; s++ {
			if d := dpB5[s] - dpB4[s]; d != 0 {
				floats.AddScaled(errVec, h*d, k[s])
			}
		}

		// Weighted RMS error norm.
		var sum float64
		finite := true
		for i := 0; i < n; i++ {
			if math.IsNaN(yNew[i]) || math.IsInf(yNew[i], 0) {
				finite = false
				break
			}
			scale := atol + rtol*math.Max(math.Abs(y[i]), math.Abs(yNew[i]))
			e := errVec[i] / scale
			sum += e * e
		}
		norm := math.Sqrt(sum / float64(n))

		if !finite {
			return stats, &StepError{T: t, Y: append([]float64(nil), y...),
				Reason: "derivative produced a non-finite state"}
		}

		if norm <= 1 {
			if last {
				t = tEnd // avoid a float residue below tEnd
			} else {
				t += h
			}
			copy(y, yNew)
			copy(k[0], k[6])
			stats.Steps++
			stats.LastStep = h
			if cfg.Recorder != nil {
				cfg.Recorder(t, y)
			}
			if cfg.MaxSteps > 0 && stats.Steps >= cfg.MaxSteps && t < tEnd {
				return stats, &StepError{T: t, Y: append([]float64(nil), y...),
					Reason: "maximum step count exceeded"}
			}
			if last {
				// Done; a tiny residual step must not trip the
				// underflow check below.
				break
			}
		} else {
			stats.Rejected++
		}

		// Standard controller: h ← h·0.9·norm^(−1/5), clamped.
		factor := dpMaxFactor
		if norm > 0 {
			factor = dpSafety * math.Pow(norm, -1/dpOrder)
			if factor < dpMinFactor {
				factor = dpMinFactor
			} else if factor > dpMaxFactor {
				factor = dpMaxFactor
			}
		}
		h *= factor
		if cfg.MaxStep > 0 && h > cfg.MaxStep {
			h = cfg.MaxStep
		}
		if h < cfg.MinStep || t+h == t {
			return stats, &StepError{T: t, Y: append([]float64(nil), y...),
				Reason: "step size underflow: tolerance cannot be met"}
		}
	}
	return stats, nil
}

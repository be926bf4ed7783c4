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

package luma

import "math"

// epsilon is the single additive guard used in every state-dependent
// denominator in the model. Several response functions divide by
// quantities (LAI, C_buf, Stress, ROS) that can reach exactly zero.
const epsilon = 1e-9

// epsilonMass is the denominator guard for antioxidant masses, which
// are several orders of magnitude smaller than the other states [kg/m²].
const epsilonMass = 1e-12

// expClip bounds exponents before calling math.Exp so that extreme
// arguments saturate instead of overflowing to +Inf.
const expClip = 50.0

// clippedExp returns exp(x) with x clipped to ±expClip.
func clippedExp(x float64) float64 {
	if x > expClip {
		x = expClip
	} else if x < -expClip {
		x = -expClip
	}
	return math.Exp(x)
}

// gompertz is the S-shaped amplification function
//
//	f(x) = 1 + max·exp(−exp(−k·(x − x0)))
//
// used for nonlinear damage amplification as a function of exposure
// hours. It is continuous and differentiable everywhere, equals ≈1 for
// x well below the inflection x0, and saturates at 1+max.
func gompertz(x, max, steepness, x0 float64) float64 {
	return 1 + max*math.Exp(-clippedExp(-steepness*(x-x0)))
}

// hill is the saturating response x^n / (K^n + x^n) for x ≥ 0.
// With n = 1 it reduces to a Michaelis–Menten response.
func hill(x, K, n float64) float64 {
	xn := math.Pow(x, n)
	return xn / (math.Pow(K, n) + xn + epsilon)
}

// hillInhibition is the monotonically decreasing response
// 1 / (1 + (x/K)^n), used where a growing driver throttles a rate.
func hillInhibition(x, K, n float64) float64 {
	return 1 / (1 + math.Pow(x/K, n))
}

// saturate is the scaled Michaelis–Menten response x / (K + x) for
// x ≥ 0, guarded against K+x = 0.
func saturate(x, K float64) float64 {
	return x / (K + x + epsilon)
}

// softplus is the smooth ramp scale·log(1 + exp((x−center)/scale)).
// It approaches 0 for x well below center and x−center well above it,
// replacing hard threshold branches with a differentiable transition.
func softplus(x, center, scale float64) float64 {
	return scale * math.Log(1+clippedExp((x-center)/scale))
}

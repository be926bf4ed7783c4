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

// Indices of the individual state variables in the state vector.
const (
	iXd = iota
	iCbuf
	iLAI
	iAOX
	iStress
	iROS

	nState // number of state variables
)

// Floors applied to states before they are consumed by nonlinear
// terms. Solver overshoot can produce small negative excursions;
// these are clamped locally and are not errors.
const (
	xdFloor  = 1e-9 // structural biomass floor [kg/m²]
	laiFloor = 0.1  // leaf area index floor, keeps vuln(LAI) finite
)

// State is the full model state at one instant.
type State struct {
	Xd     float64 `desc:"Structural dry biomass" units:"kg/m²"`
	Cbuf   float64 `desc:"Non-structural carbon buffer" units:"kg/m²"`
	LAI    float64 `desc:"Leaf area index" units:"m²/m²"`
	AOX    float64 `desc:"Total antioxidant mass" units:"kg/m²"`
	Stress float64 `desc:"Cumulative oxidative damage index" units:"-"`
	ROS    float64 `desc:"Instantaneous reactive oxygen load" units:"-"`
}

// Vector returns the state as a slice in canonical index order.
func (s State) Vector() []float64 {
	return []float64{s.Xd, s.Cbuf, s.LAI, s.AOX, s.Stress, s.ROS}
}

// StateFromVector builds a State from a slice in canonical index order.
func StateFromVector(y []float64) State {
	return State{Xd: y[iXd], Cbuf: y[iCbuf], LAI: y[iLAI],
		AOX: y[iAOX], Stress: y[iStress], ROS: y[iROS]}
}

// clamped returns a copy of the state with every variable raised to
// its non-negativity floor.
func (s State) clamped() State {
	return State{
		Xd:     math.Max(s.Xd, xdFloor),
		Cbuf:   math.Max(s.Cbuf, 0),
		LAI:    math.Max(s.LAI, laiFloor),
		AOX:    math.Max(s.AOX, 0),
		Stress: math.Max(s.Stress, 0),
		ROS:    math.Max(s.ROS, 0),
	}
}

// finite reports whether every state variable is a finite number.
func (s State) finite() bool {
	for _, v := range s.Vector() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// InitialState constructs the state at the transplant reference time
// from the measured per-plant fresh weight [g]. The dry fraction is
// the unstressed baseline dry-matter ratio, the carbon buffer starts
// at 10% of structural mass, and the antioxidant pool is seeded so
// that anthocyanin starts at about 5 ppm of total fresh mass.
func InitialState(freshWeightGrams float64, p Params, plantDensity float64) State {
	const initialAnthPPM = 5.0

	dwGrams := freshWeightGrams * p.DWFWRatioBase
	xd := dwGrams / 1000 * plantDensity // [kg/m²]
	fwTotal := freshWeightGrams * plantDensity / 1000
	anth := initialAnthPPM * fwTotal / 1e6
	return State{
		Xd:   xd,
		Cbuf: xd * 0.1,
		// 0.01 kg DW per m² of leaf at 4% allocation to lamina.
		LAI: (dwGrams / 0.01) * 0.04,
		AOX: anth / p.AnthocyaninFraction,
	}
}

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

// Conditions is the instantaneous climate handed to a growth model:
// the base shortwave irradiance and air state of the growing space.
// Supplemental UVA is not included; its effects enter through the
// stress and morphology terms, not through photosynthesis.
type Conditions struct {
	Irradiance   float64 `desc:"Shortwave irradiance" units:"W/m²"`
	AirTemp      float64 `desc:"Air temperature" units:"°C"`
	CO2          float64 `desc:"CO2 concentration" units:"ppm"`
	RH           float64 `desc:"Relative humidity" units:"0–1"`
	Day          bool    `desc:"Whether the photoperiod lights are on"`
	PlantDensity float64 `desc:"Planting density" units:"plants/m²"`
}

// GrowthState is the carbon-allocation subset of the model state that
// a growth model evolves.
type GrowthState struct {
	Xd   float64 `desc:"Structural dry biomass" units:"kg/m²"`
	Cbuf float64 `desc:"Non-structural carbon buffer" units:"kg/m²"`
	LAI  float64 `desc:"Leaf area index" units:"m²/m²"`
}

// GrowthModel is an interface for baseline (stress-free) crop growth
// models. Implementations provide the structural growth, carbon buffer
// and leaf expansion rates from the current canopy state and climate;
// the simulation core then layers UVA morphology, stress inhibition
// and carbon competition on top of these rates.
type GrowthModel interface {
	// Rates returns dXd/dt, dCbuf/dt and dLAI/dt [per second] for the
	// given canopy state under the given climate.
	Rates(s GrowthState, c Conditions) (dXd, dCbuf, dLAI float64)

	// Name returns the name of the growth model.
	Name() string
}

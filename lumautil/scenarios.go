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

package lumautil

import (
	"fmt"

	"github.com/cropmodel/luma"
)

// Treatment is one experimental UVA regime together with the observed
// harvest outcomes it is validated against.
type Treatment struct {
	Name        string
	Description string
	Regime      luma.UVARegime

	// Observed harvest values: fresh weight [g/plant] and anthocyanin
	// concentration [mg/kg FW]. Zero means no observation.
	TargetFW   float64
	TargetAnth float64
}

// treatments is the experimental catalogue. The training set was used
// for calibration; the validation set is an independent 3-day dose
// gradient (days 32–35). Naming: intensity class (VL/L/M/H/VH by
// daily hours), then hours/day, then "D" and treatment days; "-N"
// marks overnight sessions.
var treatments = []Treatment{
	{
		Name:        "CK",
		Description: "control, no UVA",
		Regime:      luma.UVARegime{On: false},
		TargetFW:    87.0, TargetAnth: 433.0,
	},
	{
		Name:        "L6D6",
		Description: "6 h/day daytime, days 29-35",
		Regime: luma.UVARegime{On: true, Intensity: 11.0,
			StartDay: 29, EndDay: 35, HourOn: 10, HourOff: 16},
		TargetFW: 91.4, TargetAnth: 494.0,
	},
	{
		Name:        "L6D6-N",
		Description: "6 h/night overnight, days 29-35",
		Regime: luma.UVARegime{On: true, Intensity: 11.0,
			StartDay: 29, EndDay: 35, HourOn: 22, HourOff: 4},
		TargetFW: 80.8, TargetAnth: 493.0,
	},
	{
		Name:        "H12D3",
		Description: "12 h/day daytime, days 32-35",
		Regime: luma.UVARegime{On: true, Intensity: 11.0,
			StartDay: 32, EndDay: 35, HourOn: 6, HourOff: 18},
		TargetFW: 60.6, TargetAnth: 651.0,
	},
	{
		Name:        "VL3D12",
		Description: "3 h/day daytime, days 23-35",
		Regime: luma.UVARegime{On: true, Intensity: 11.0,
			StartDay: 23, EndDay: 35, HourOn: 10, HourOff: 13},
		TargetFW: 67.0, TargetAnth: 482.0,
	},
	{
		Name:        "L6D12",
		Description: "6 h/day daytime, days 23-35",
		Regime: luma.UVARegime{On: true, Intensity: 11.0,
			StartDay: 23, EndDay: 35, HourOn: 10, HourOff: 16},
		TargetFW: 60.4, TargetAnth: 518.0,
	},

	// Validation gradient.
	{
		Name:        "CK_val",
		Description: "validation control, no UVA",
		Regime:      luma.UVARegime{On: false},
		TargetFW:    85.2, TargetAnth: 413.0,
	},
	{
		Name:        "VL3D3",
		Description: "3 h/day daytime, days 32-35",
		Regime: luma.UVARegime{On: true, Intensity: 11.0,
			StartDay: 32, EndDay: 35, HourOn: 10, HourOff: 13},
		TargetFW: 89.0, TargetAnth: 437.0,
	},
	{
		Name:        "L6D3",
		Description: "6 h/day daytime, days 32-35",
		Regime: luma.UVARegime{On: true, Intensity: 11.0,
			StartDay: 32, EndDay: 35, HourOn: 10, HourOff: 16},
		TargetFW: 92.2, TargetAnth: 468.0,
	},
	{
		Name:        "M9D3",
		Description: "9 h/day daytime, days 32-35",
		Regime: luma.UVARegime{On: true, Intensity: 11.0,
			StartDay: 32, EndDay: 35, HourOn: 7, HourOff: 16},
		TargetFW: 83.8, TargetAnth: 539.0,
	},
	{
		Name:        "H12D3_val",
		Description: "12 h/day daytime, days 32-35 (validation)",
		Regime: luma.UVARegime{On: true, Intensity: 11.0,
			StartDay: 32, EndDay: 35, HourOn: 6, HourOff: 18},
		TargetFW: 62.2, TargetAnth: 657.0,
	},
	{
		Name:        "VH15D3",
		Description: "15 h/day daytime, days 32-35",
		Regime: luma.UVARegime{On: true, Intensity: 11.0,
			StartDay: 32, EndDay: 35, HourOn: 5, HourOff: 20},
		TargetFW: 51.3, TargetAnth: 578.0,
	},
}

// Dataset split used by `luma batch`.
var (
	trainingSet   = []string{"CK", "L6D6", "L6D6-N", "H12D3", "VL3D12", "L6D12"}
	validationSet = []string{"CK_val", "VL3D3", "L6D3", "M9D3", "H12D3_val", "VH15D3"}
)

// Treatments returns the full experimental catalogue.
func Treatments() []Treatment {
	out := make([]Treatment, len(treatments))
	copy(out, treatments)
	return out
}

// TreatmentByName returns the named treatment.
func TreatmentByName(name string) (Treatment, error) {
	for _, tr := range treatments {
		if tr.Name == name {
			return tr, nil
		}
	}
	return Treatment{}, fmt.Errorf("lumautil: unknown treatment %q", name)
}

// TreatmentSet resolves a dataset name ("train", "validation" or
// "all") to its treatments.
func TreatmentSet(set string) ([]Treatment, error) {
	var names []string
	switch set {
	case "train":
		names = trainingSet
	case "validation":
		names = validationSet
	case "all":
		names = append(append([]string{}, trainingSet...), validationSet...)
	default:
		return nil, fmt.Errorf("lumautil: unknown treatment set %q (want train, validation or all)", set)
	}
	out := make([]Treatment, len(names))
	for i, n := range names {
		tr, err := TreatmentByName(n)
		if err != nil {
			return nil, err
		}
		out[i] = tr
	}
	return out, nil
}

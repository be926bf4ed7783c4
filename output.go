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

import (
	"fmt"
	"math"
)

// Output holds the measurable quantities derived from a finished run.
type Output struct {
	FreshWeight    float64 `desc:"Harvest fresh weight per plant" units:"g"`
	AnthocyaninPPM float64 `desc:"Anthocyanin concentration" units:"mg/kg FW"`
	DryMatterRatio float64 `desc:"Leaf dry-matter content at harvest" units:"-"`
	DryWeight      float64 `desc:"Harvest dry weight per plant" units:"g"`
}

// dryMatterRatio computes the leaf dry-matter content (LDMC) from the
// mean stress over the treatment window. Stress reduces water uptake,
// concentrating dry matter; at extreme daily doses a softplus-gated
// acute dehydration term sharpens the response. The ratio is bounded
// above by dw_fw_ratio_max.
func dryMatterRatio(meanStress, dailyAmplification float64, p *Params) float64 {
	stressEffect := p.LDMCStressSensitivity * meanStress / (p.KLDMC + meanStress + epsilon)

	x := softplus(dailyAmplification, p.AcuteCenter, p.AcuteScale)
	xn := math.Pow(x, p.AcuteN)
	acute := 1 + p.AcuteK*xn/(math.Pow(p.AcuteKHalf, p.AcuteN)+xn+epsilon)

	ratio := p.DWFWRatioBase * (1 + stressEffect*acute)
	return math.Min(ratio, p.DWFWRatioMax)
}

// Convert turns a final state into harvest observables. meanStress is
// the average stress index over the treatment window, which sets the
// dry-matter ratio; the acute dehydration term is driven by the
// scheduled daily dose. A non-positive fresh weight or pigment
// concentration indicates a model defect upstream and is returned as
// an error, never clamped.
func Convert(final State, meanStress float64, sc *Schedule, p *Params) (Output, error) {
	dailyAmp := exposureAmplification(sc.DailyHours(), p)
	ratio := dryMatterRatio(meanStress, dailyAmp, p)

	density := sc.Env.PlantDensity
	dwPerPlant := final.Xd / density * 1000                   // [g/plant]
	fwPerPlant := final.Xd / density / ratio * 1000           // [g/plant]
	fwTotal := fwPerPlant / 1000 * density                    // [kg/m²]
	anthPPM := final.AOX * p.AnthocyaninFraction / fwTotal * 1e6

	o := Output{
		FreshWeight:    fwPerPlant,
		AnthocyaninPPM: anthPPM,
		DryMatterRatio: ratio,
		DryWeight:      dwPerPlant,
	}
	if !(o.FreshWeight > 0) || math.IsNaN(o.FreshWeight) {
		return o, fmt.Errorf("luma: non-positive fresh weight %g g/plant (X_d=%g kg/m²)",
			o.FreshWeight, final.Xd)
	}
	if o.AnthocyaninPPM < 0 || math.IsNaN(o.AnthocyaninPPM) {
		return o, fmt.Errorf("luma: negative anthocyanin concentration %g ppm (AOX=%g kg/m²)",
			o.AnthocyaninPPM, final.AOX)
	}
	return o, nil
}

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

// waterEfficiency discounts antioxidant synthesis as the leaf
// dry-matter ratio rises above the healthy threshold: a dehydrating
// leaf diverts resources away from secondary metabolism. The excess
// over the threshold is passed through a softplus ramp so the
// efficiency is smooth through the threshold instead of switching on
// a branch.
func waterEfficiency(dwfwRatio float64, p *Params) float64 {
	excess := softplus(dwfwRatio, p.WaterAOXThreshold, p.WaterSoftplusScale)
	inhibition := p.WaterAOXMaxInhib * hill(excess, p.WaterAOXK, p.WaterN)
	return 1 - inhibition
}

// doseEfficiency throttles stress-induced synthesis as the scheduled
// daily dose enters the damage-amplified regime: at extreme daily
// hours the synthesis machinery itself is impaired.
func doseEfficiency(dailyAmplification float64, p *Params) float64 {
	return hillInhibition(dailyAmplification, p.KNonlinAOX, p.NNonlinAOX)
}

// adaptationFactor attenuates induced synthesis over consecutive
// treatment days (acclimation); halves after K_adapt_days days.
func adaptationFactor(daysIrradiated float64, p *Params) float64 {
	return p.KAdaptDays / (p.KAdaptDays + daysIrradiated)
}

// laiEfficiency discounts induced synthesis in underdeveloped
// canopies, saturating at 1 for a healthy LAI.
func laiEfficiency(lai float64, p *Params) float64 {
	return math.Min(1, math.Pow(lai/p.LAIHealthy, p.NLAIEff))
}

// consumptionAmplification boosts ROS scavenging at extreme scheduled
// daily doses. The Gompertz daily amplification is rectified around
// cons_amp_center with a softplus and fed through a second-order Hill
// term, so amplification is negligible for normal regimes and grows
// smoothly for 12 h+ sessions.
func consumptionAmplification(dailyAmplification float64, p *Params) float64 {
	x := softplus(dailyAmplification, p.ConsAmpCenter, p.ConsAmpScale)
	return 1 + p.ConsAmpK*x*x/(p.ConsAmpKHalf*p.ConsAmpKHalf+x*x+epsilon)
}

// aoxBudget gathers the pieces of the antioxidant balance for one
// derivative evaluation. synthesis excludes the carbon-competition
// penalty, which is applied by the caller after the competition
// effect is known; stressInduced is the inducible component that
// competes with growth for carbon.
type aoxBudget struct {
	synthesis     float64 // [kg/(m²·s)] before competition penalty
	stressInduced float64 // inducible share of synthesis [kg/(m²·s)]
	degradation   float64 // [kg/(m²·s)]
	consumption   float64 // ROS scavenging [kg/(m²·s)]
}

// aoxDynamics evaluates antioxidant synthesis, degradation and
// ROS-scavenging consumption. Synthesis scales with leaf area and sums
// a constitutive day/night base rate, direct UV induction saturating
// in cumulative exposure hours, and mechanism-supplied stress
// induction discounted for night sessions, canopy immaturity,
// acclimation and extreme daily dose. The total is further reduced by
// high-stress shutdown and water limitation.
func aoxDynamics(s State, m Mechanism, dwfwRatio, totalUVAHours, daysIrradiated,
	dailyHours float64, isDay, nightSession bool, p *Params) aoxBudget {

	base := p.BaseAOXRateDark
	if isDay {
		base = p.BaseAOXRateLight
	}

	nightEff := 1.0
	if nightSession {
		nightEff = p.NightStressEfficiency
	}

	dailyAmp := exposureAmplification(dailyHours, p)

	stressInduced := m.Induction(s, p) * nightEff * laiEfficiency(s.LAI, p) *
		adaptationFactor(daysIrradiated, p) * doseEfficiency(dailyAmp, p)

	uvInduced := p.KUVAOX * totalUVAHours / (p.KUVHours + totalUVAHours + epsilonMass)

	stressEff := 1 - p.MaxStressInhib*hill(s.Stress, p.KStressInhib, p.NStressInhib)
	waterEff := waterEfficiency(dwfwRatio, p)

	b := aoxBudget{
		synthesis:     s.LAI * (base + uvInduced + stressInduced) * stressEff * waterEff,
		stressInduced: s.LAI * stressInduced * stressEff * waterEff,
		degradation:   p.KAOXDeg * s.AOX,
	}
	b.consumption = p.KAOXConsumption * consumptionAmplification(dailyAmp, p) *
		s.AOX * hill(s.ROS, p.KROSConsumption, p.NROSConsumption)
	return b
}

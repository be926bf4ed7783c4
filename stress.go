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

// vulnerability is the LAI-dependent damage susceptibility. Young
// canopies (small LAI) are orders of magnitude more vulnerable to the
// same ROS load; the exponential decays to a floor of 1 for developed
// canopies. The LAI floor is applied by the caller.
func vulnerability(lai float64, p *Params) float64 {
	return p.AVulnerability*clippedExp(-p.KVulnerability*lai) + 1
}

// exposureAmplification is the Gompertz amplification of damage as a
// function of exposure hours. It stays ≈1 below the daily-dose
// threshold and saturates at 1 + gompertz_max_factor above it,
// capturing the sharp transition from eustress to distress around
// 10–12 h/day. Evaluated on the running within-day exposure so damage
// accumulates progressively through a session.
func exposureAmplification(hours float64, p *Params) float64 {
	return gompertz(hours, p.GompertzMaxFactor, p.GompertzSteepness, p.GompertzThreshold)
}

// aoxProtection is the fraction of oxidative damage intercepted by the
// antioxidant pool. Saturates below alpha_aox_protection < 1, so
// protection is never complete.
func aoxProtection(aox float64, p *Params) float64 {
	return p.AlphaAOXProtection * aox / (p.KAOXProtection + aox + epsilonMass)
}

// circadianDamage is the extra damage from irradiating during the dark
// period, growing with time since lights-off. It models clock
// disruption rather than oxidative load and therefore bypasses
// antioxidant protection. Zero whenever UVA is off or lights are on,
// by the product structure (iUVA = 0 or hoursInDark = 0).
func circadianDamage(iUVA, hoursInDark float64, p *Params) float64 {
	if iUVA <= 0 || hoursInDark <= 0 {
		return 0
	}
	return p.KCircadian * iUVA * math.Pow(hoursInDark, p.NCircadian)
}

// stressRate returns dStress/dt: protected ROS damage plus circadian
// damage minus first-order relaxation. Decay is gated at the origin so
// the stress index cannot be driven negative.
func stressRate(stress, ros, lai, aox, iUVA, hoursToday, hoursInDark float64, p *Params) float64 {
	vulnDamage := p.StressDamageCoeff * ros * vulnerability(lai, p)
	nonlinDamage := p.KNonlinearStress * ros * exposureAmplification(hoursToday, p)
	damage := (vulnDamage+nonlinDamage)*(1-aoxProtection(aox, p)) +
		circadianDamage(iUVA, hoursInDark, p)

	raw := damage - p.KStressDecay*stress
	if stress <= 0 && raw < 0 {
		return 0
	}
	return raw
}

// stressGrowthInhibition applies the saturating stress penalties to
// the positive parts of the structural and leaf-expansion rates.
// Negative rates pass through unchanged: stress must not shrink
// respiratory losses.
func stressGrowthInhibition(dXd, dLAI, stress float64, p *Params) (float64, float64) {
	inhibition := stress / (p.KStress + stress + epsilon)
	if dXd > 0 {
		dXd *= 1 - p.StressPhotosynthesisInhibition*inhibition
	}
	if dLAI > 0 {
		dLAI *= 1 - p.StressLAIInhibition*inhibition
	}
	return dXd, dLAI
}

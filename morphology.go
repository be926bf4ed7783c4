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

// Weights applying the morphological boosts to the structural-growth
// rate. Leaf thinning raises light interception, which feeds back on
// dry-mass gain at about half strength; the reverse effect on negative
// (respiration-dominated) rates is weaker still.
const (
	slaToXdWeight      = 0.5
	laiShrinkageWeight = 0.3
	xdShrinkageWeight  = 0.15
)

// applyMorphology modifies the baseline structural and leaf-expansion
// rates for the photomorphogenic response to UVA: moderate UVA drives
// leaf thinning (higher specific leaf area) and faster canopy
// expansion. Both boosts saturate in intensity and are suppressed as
// stress accumulates. Positive rates are amplified; negative rates are
// reduced in magnitude by a smaller factor, so the boost never deepens
// a loss.
func applyMorphology(dXd, dLAI, iUVA, stress float64, p *Params) (float64, float64) {
	if iUVA <= 0 {
		return dXd, dLAI
	}

	slaBoost := p.UVASLAEnhancement * iUVA / (p.KUVASLA + iUVA)
	laiBoost := p.UVALAIBoost * iUVA / (p.KUVALAI + iUVA)

	suppression := 1 - stress/(p.KStress+stress+epsilon)
	slaBoost *= suppression
	laiBoost *= suppression

	if dLAI > 0 {
		dLAI *= 1 + laiBoost
	} else {
		dLAI *= 1 - laiBoost*laiShrinkageWeight
	}
	if dXd > 0 {
		dXd *= 1 + slaBoost*slaToXdWeight
	} else {
		dXd *= 1 - slaBoost*xdShrinkageWeight
	}
	return dXd, dLAI
}

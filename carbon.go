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

// Share of the carbon-competition effect that feeds back on the
// synthesis pathway itself: carbon scarcity throttles defense less
// than it throttles growth.
const synthesisCompetitionShare = 0.20

// carbonCompetition returns the growth-defense competition effect in
// [0, carbon_competition_max + stress_competition_max). Only the
// inducible share of synthesis competes: constitutive defense is part
// of baseline metabolism. Sustained stress adds a second, cumulative
// competition term.
func carbonCompetition(stressInducedDemand, stress float64, p *Params) float64 {
	demandEffect := stressInducedDemand /
		(p.CarbonCompetitionK + stressInducedDemand + epsilonMass)
	stressEffect := p.StressCompetitionMax * stress / (p.StressCompetitionK + stress + epsilon)
	return demandEffect*p.CarbonCompetitionMax + stressEffect
}

// applyCarbonCompetition debits the growth-defense trade-off against
// the derivatives: positive structural growth is penalized by the full
// competition effect, synthesis by a partial share, and the realized
// synthesis draws real carbon from the buffer. The buffer debit is
// capped at a fraction of the standing buffer so defense can never
// empty it within a step.
func applyCarbonCompetition(dXd float64, b aoxBudget, stress, cbuf float64,
	p *Params) (dXdOut, synthesisOut, debit float64) {

	effect := carbonCompetition(b.stressInduced*p.AOXCarbonCost, stress, p)

	if dXd > 0 {
		dXd *= 1 - effect
	}
	synthesis := b.synthesis * (1 - synthesisCompetitionShare*effect)

	if cbuf > 0 {
		demand := synthesis * p.AOXCarbonCost
		debit = math.Min(demand, cbuf*p.MaxCbufConsumption)
	}
	return dXd, synthesis, debit
}

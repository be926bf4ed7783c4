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

import "testing"

// testMechanism mirrors the default induction mechanism without
// importing it, which would cycle back into this package.
type testMechanism struct{}

func (testMechanism) Induction(s State, p *Params) float64 {
	return p.VMaxAOX * s.Stress / (p.KStressAOX + s.Stress + epsilonMass)
}

func (testMechanism) Clearance(ros float64, p *Params) float64 {
	return p.KROSClearance * ros
}

func (testMechanism) Name() string { return "test-mechanism" }

func TestWaterEfficiency(t *testing.T) {
	p := DefaultParams()
	// At and below the healthy ratio the discount is negligible, and
	// the response is smooth through the threshold.
	if v := waterEfficiency(p.DWFWRatioBase, &p); v < 0.99 {
		t.Errorf("water efficiency at healthy ratio = %g, want ≈1", v)
	}
	prev := waterEfficiency(0.04, &p)
	for r := 0.04; r <= 0.08; r += 0.0005 {
		v := waterEfficiency(r, &p)
		if v > prev+1e-9 {
			t.Fatalf("water efficiency not monotone at ratio=%g", r)
		}
		if prev-v > 0.05 {
			t.Fatalf("water efficiency jump at ratio=%g", r)
		}
		prev = v
	}
	// Bounded below by 1 - max inhibition.
	if v := waterEfficiency(0.2, &p); v < 1-p.WaterAOXMaxInhib-1e-9 {
		t.Errorf("water efficiency = %g, below its floor", v)
	}
}

func TestDoseEfficiency(t *testing.T) {
	p := DefaultParams()
	// Mild daily doses keep synthesis near full efficiency; extreme
	// amplification shuts it down.
	mild := doseEfficiency(exposureAmplification(6, &p), &p)
	if mild < 0.9 {
		t.Errorf("dose efficiency at 6 h/day = %g, want ≈1", mild)
	}
	extreme := doseEfficiency(exposureAmplification(15, &p), &p)
	if extreme >= mild {
		t.Errorf("dose efficiency not reduced at extreme dose: %g >= %g", extreme, mild)
	}
}

func TestAdaptationFactor(t *testing.T) {
	p := DefaultParams()
	if v := adaptationFactor(0, &p); v != 1 {
		t.Errorf("adaptation before treatment = %g, want 1", v)
	}
	if v := adaptationFactor(p.KAdaptDays, &p); different(v, 0.5, 1e-9) {
		t.Errorf("adaptation at K days = %g, want 0.5", v)
	}
	if v := adaptationFactor(12, &p); v >= adaptationFactor(3, &p) {
		t.Errorf("adaptation not decreasing: %g", v)
	}
}

func TestLAIEfficiency(t *testing.T) {
	p := DefaultParams()
	if v := laiEfficiency(p.LAIHealthy, &p); v != 1 {
		t.Errorf("efficiency at healthy LAI = %g, want 1", v)
	}
	if v := laiEfficiency(20, &p); v != 1 {
		t.Errorf("efficiency capped at 1, got %g", v)
	}
	if v := laiEfficiency(3, &p); v >= 1 || v <= 0 {
		t.Errorf("immature canopy efficiency = %g, want in (0,1)", v)
	}
}

func TestConsumptionAmplification(t *testing.T) {
	p := DefaultParams()
	normal := consumptionAmplification(exposureAmplification(6, &p), &p)
	if different(normal, 1, 1e-3) {
		t.Errorf("consumption amplification at 6 h/day = %g, want ≈1", normal)
	}
	extreme := consumptionAmplification(exposureAmplification(15, &p), &p)
	if extreme <= 1.5 {
		t.Errorf("consumption amplification at 15 h/day = %g, want > 1.5", extreme)
	}
	if extreme > 1+p.ConsAmpK {
		t.Errorf("consumption amplification exceeds ceiling: %g", extreme)
	}
}

func TestAOXDynamicsBudget(t *testing.T) {
	p := DefaultParams()
	m := testMechanism{}
	s := State{Xd: 0.1, Cbuf: 0.01, LAI: 5, AOX: 1e-4, Stress: 100, ROS: 200}

	b := aoxDynamics(s, m, p.DWFWRatioBase, 12, 2, 6, true, false, &p)
	if b.synthesis <= 0 || b.degradation <= 0 || b.consumption < 0 {
		t.Fatalf("budget signs wrong: %+v", b)
	}
	if b.stressInduced > b.synthesis {
		t.Errorf("inducible share %g exceeds total synthesis %g", b.stressInduced, b.synthesis)
	}

	// Night sessions induce less than day sessions, all else equal.
	night := aoxDynamics(s, m, p.DWFWRatioBase, 12, 2, 6, true, true, &p)
	if night.stressInduced >= b.stressInduced {
		t.Errorf("night session induction %g not below day %g",
			night.stressInduced, b.stressInduced)
	}

	// Zero stress and zero exposure leave only the constitutive term.
	calm := State{Xd: 0.1, Cbuf: 0.01, LAI: 5, AOX: 1e-4}
	cb := aoxDynamics(calm, m, p.DWFWRatioBase, 0, 0, 0, true, false, &p)
	want := calm.LAI * p.BaseAOXRateLight * waterEfficiency(p.DWFWRatioBase, &p)
	if different(cb.synthesis, want, 1e-6) {
		t.Errorf("constitutive synthesis = %g, want %g", cb.synthesis, want)
	}
	if cb.consumption != 0 {
		t.Errorf("consumption without ROS = %g", cb.consumption)
	}
}

func TestCarbonCompetition(t *testing.T) {
	p := DefaultParams()
	if v := carbonCompetition(0, 0, &p); v != 0 {
		t.Errorf("competition with no demand or stress = %g", v)
	}
	// Bounded by the two maxima.
	if v := carbonCompetition(1e-3, 1e6, &p); v >= p.CarbonCompetitionMax+p.StressCompetitionMax {
		t.Errorf("competition = %g, exceeds bound", v)
	}

	b := aoxBudget{synthesis: 1e-8, stressInduced: 5e-9}
	dXd, synth, debit := applyCarbonCompetition(1e-7, b, 100, 0.01, &p)
	if dXd >= 1e-7 {
		t.Errorf("growth not penalized: %g", dXd)
	}
	if synth >= b.synthesis {
		t.Errorf("synthesis not penalized: %g", synth)
	}
	if debit <= 0 || debit > 0.01*p.MaxCbufConsumption {
		t.Errorf("debit = %g, want in (0, %g]", debit, 0.01*p.MaxCbufConsumption)
	}

	// Negative growth is never penalized; an empty buffer yields no
	// debit.
	dXd, _, debit = applyCarbonCompetition(-1e-7, b, 100, 0, &p)
	if dXd != -1e-7 {
		t.Errorf("negative growth modified: %g", dXd)
	}
	if debit != 0 {
		t.Errorf("debit from empty buffer = %g", debit)
	}
}

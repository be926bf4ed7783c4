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

package luma_test

import (
	"testing"

	"github.com/cropmodel/luma"
	"github.com/cropmodel/luma/science/growth/sunmodel"
	"github.com/cropmodel/luma/science/induction/simpleinduction"
)

// newSimulator builds a Simulator for one UVA regime with the
// calibrated stack: Sun growth model (fitted conversion efficiency)
// and simple stress induction.
func newSimulator(u luma.UVARegime) *luma.Simulator {
	sp := sunmodel.DefaultParams()
	sp.CAlpha = 0.54 // conversion efficiency the UVA parameters were fitted with
	return &luma.Simulator{
		Params:    luma.DefaultParams(),
		Schedule:  luma.Schedule{Env: luma.DefaultEnvironment(), UVA: u},
		Growth:    sunmodel.NewWithParams(sp),
		Mechanism: simpleinduction.New(),
	}
}

func run(t *testing.T, u luma.UVARegime) *luma.Result {
	t.Helper()
	res, err := newSimulator(u).Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return res
}

var (
	regimeL6D6 = luma.UVARegime{On: true, Intensity: 11,
		StartDay: 29, EndDay: 35, HourOn: 10, HourOff: 16}
	regimeL6D6N = luma.UVARegime{On: true, Intensity: 11,
		StartDay: 29, EndDay: 35, HourOn: 22, HourOff: 4}
	regimeVL3D3 = luma.UVARegime{On: true, Intensity: 11,
		StartDay: 32, EndDay: 35, HourOn: 10, HourOff: 13}
	regimeL6D3 = luma.UVARegime{On: true, Intensity: 11,
		StartDay: 32, EndDay: 35, HourOn: 10, HourOff: 16}
	regimeM9D3 = luma.UVARegime{On: true, Intensity: 11,
		StartDay: 32, EndDay: 35, HourOn: 7, HourOff: 16}
	regimeH12D3 = luma.UVARegime{On: true, Intensity: 11,
		StartDay: 32, EndDay: 35, HourOn: 6, HourOff: 18}
	regimeVH15D3 = luma.UVARegime{On: true, Intensity: 11,
		StartDay: 32, EndDay: 35, HourOn: 5, HourOff: 20}
)

func TestControlRun(t *testing.T) {
	res := run(t, luma.UVARegime{On: false})

	// Without UVA there is no ROS source and no damage: both stay
	// identically zero for the whole run.
	if res.Final.ROS != 0 || res.Final.Stress != 0 {
		t.Errorf("untreated crop accumulated ROS=%g Stress=%g",
			res.Final.ROS, res.Final.Stress)
	}
	if res.PeakStress != 0 {
		t.Errorf("untreated peak stress = %g", res.PeakStress)
	}

	// Observed control harvest: 87 g/plant and ~433 ppm.
	fw := res.Output.FreshWeight
	if fw < 70 || fw > 105 {
		t.Errorf("control fresh weight = %.1f g/plant, want ≈87", fw)
	}
	anth := res.Output.AnthocyaninPPM
	if anth < 330 || anth > 540 {
		t.Errorf("control anthocyanin = %.0f ppm, want ≈433", anth)
	}
	if res.Output.DryMatterRatio != 0.05 {
		t.Errorf("unstressed dry-matter ratio = %g, want 0.05", res.Output.DryMatterRatio)
	}
}

func TestHighDoseStressRun(t *testing.T) {
	ck := run(t, luma.UVARegime{On: false})
	h12 := run(t, regimeH12D3)

	// 12 h/day is distress: growth is lost and pigment is gained.
	if h12.Output.FreshWeight >= ck.Output.FreshWeight {
		t.Errorf("high dose did not cost yield: %.1f >= %.1f g/plant",
			h12.Output.FreshWeight, ck.Output.FreshWeight)
	}
	if h12.Output.AnthocyaninPPM <= ck.Output.AnthocyaninPPM {
		t.Errorf("high dose did not raise pigment: %.0f <= %.0f ppm",
			h12.Output.AnthocyaninPPM, ck.Output.AnthocyaninPPM)
	}
	if h12.MeanStress <= 0 || h12.PeakStress <= h12.MeanStress {
		t.Errorf("implausible stress statistics: mean %g, peak %g",
			h12.MeanStress, h12.PeakStress)
	}

	// Observed H12D3 harvest: 60.6 g/plant and ~651 ppm.
	if fw := h12.Output.FreshWeight; fw < 45 || fw > 80 {
		t.Errorf("high-dose fresh weight = %.1f g/plant, want ≈61", fw)
	}
	if anth := h12.Output.AnthocyaninPPM; anth < 480 || anth > 830 {
		t.Errorf("high-dose anthocyanin = %.0f ppm, want ≈651", anth)
	}
}

func TestDoseResponse(t *testing.T) {
	// Over the 3-day gradient below saturation, more daily hours mean
	// more pigment (observed: 437 < 468 < 539 < 651 ppm).
	anth3 := run(t, regimeVL3D3).Output.AnthocyaninPPM
	anth6 := run(t, regimeL6D3).Output.AnthocyaninPPM
	anth9 := run(t, regimeM9D3).Output.AnthocyaninPPM
	anth12 := run(t, regimeH12D3).Output.AnthocyaninPPM
	if !(anth3 < anth6 && anth6 < anth9 && anth9 < anth12) {
		t.Errorf("dose response not monotone: %.0f, %.0f, %.0f, %.0f ppm",
			anth3, anth6, anth9, anth12)
	}
}

func TestHormesisReversal(t *testing.T) {
	// Past the optimum the pigment response reverses: 15 h/day yields
	// less anthocyanin than 12 h/day even though it is a higher dose,
	// because synthesis itself is impaired (observed 578 < 657 ppm).
	h12 := run(t, regimeH12D3)
	vh15 := run(t, regimeVH15D3)
	if vh15.Output.AnthocyaninPPM >= h12.Output.AnthocyaninPPM {
		t.Errorf("no hormesis reversal: 15 h/day %.0f ppm >= 12 h/day %.0f ppm",
			vh15.Output.AnthocyaninPPM, h12.Output.AnthocyaninPPM)
	}
	if vh15.Output.FreshWeight >= h12.Output.FreshWeight {
		t.Errorf("15 h/day should cost more yield: %.1f >= %.1f g/plant",
			vh15.Output.FreshWeight, h12.Output.FreshWeight)
	}
}

func TestNightIrradiationStress(t *testing.T) {
	day := run(t, regimeL6D6)
	night := run(t, regimeL6D6N)

	// The same dose at night adds circadian damage: more stress and
	// less fresh weight (observed 80.8 vs 91.4 g/plant).
	if night.PeakStress <= day.PeakStress {
		t.Errorf("night session peak stress %.1f not above day %.1f",
			night.PeakStress, day.PeakStress)
	}
	if night.Output.FreshWeight >= day.Output.FreshWeight {
		t.Errorf("night session fresh weight %.1f not below day %.1f",
			night.Output.FreshWeight, day.Output.FreshWeight)
	}
}

func TestNonNegativityUnderIntensitySweep(t *testing.T) {
	for _, intensity := range []float64{0, 5.5, 11, 22} {
		u := regimeH12D3
		u.Intensity = intensity
		u.On = intensity > 0
		res := run(t, u)
		for i, v := range res.Final.Vector() {
			if v < 0 {
				t.Errorf("intensity %g: state %d negative at harvest: %g",
					intensity, i, v)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	a := run(t, regimeH12D3)
	b := run(t, regimeH12D3)
	if a.Output.FreshWeight != b.Output.FreshWeight ||
		a.Output.AnthocyaninPPM != b.Output.AnthocyaninPPM ||
		a.Final != b.Final {
		t.Errorf("repeated runs differ: %+v vs %+v", a.Output, b.Output)
	}
	if a.Stats.Steps != b.Stats.Steps || a.Stats.Evaluations != b.Stats.Evaluations {
		t.Errorf("repeated runs took different paths: %+v vs %+v", a.Stats, b.Stats)
	}
}

func TestRunValidation(t *testing.T) {
	sim := newSimulator(luma.UVARegime{On: false})
	sim.Params.KROSClearance = 0
	if _, err := sim.Run(); err == nil {
		t.Error("Run accepted invalid parameters")
	}

	sim = newSimulator(luma.UVARegime{On: false})
	sim.Growth = nil
	if _, err := sim.Run(); err == nil {
		t.Error("Run accepted a nil growth model")
	}

	sim = newSimulator(luma.UVARegime{On: false})
	sim.Mechanism = nil
	if _, err := sim.Run(); err == nil {
		t.Error("Run accepted a nil mechanism")
	}
}

func TestTrajectoryRecording(t *testing.T) {
	sim := newSimulator(regimeL6D3)
	sim.KeepTrajectory = true
	res, err := sim.Run()
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Trajectory) != res.Stats.Steps {
		t.Fatalf("trajectory has %d points for %d accepted steps",
			len(res.Trajectory), res.Stats.Steps)
	}
	prev := sim.StartTime()
	maxStep := luma.DefaultMaxStep
	for _, pt := range res.Trajectory {
		if pt.T <= prev {
			t.Fatalf("trajectory time not increasing at t=%g", pt.T)
		}
		if pt.T-prev > maxStep+1e-6 {
			t.Fatalf("step of %g s exceeds the %g s bound", pt.T-prev, maxStep)
		}
		for i, v := range pt.State.Vector() {
			if v < 0 {
				t.Fatalf("trajectory state %d negative at t=%g: %g", i, pt.T, v)
			}
		}
		prev = pt.T
	}
	if prev != sim.EndTime() {
		t.Errorf("trajectory ends at %g, want %g", prev, sim.EndTime())
	}
}

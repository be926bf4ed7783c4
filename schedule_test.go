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

// at builds a simulation time from a day and an hour of day.
func at(day, hour float64) float64 {
	return day*SecondsPerDay + hour*SecondsPerHour
}

func daytimeSchedule() *Schedule {
	return &Schedule{
		Env: DefaultEnvironment(),
		UVA: UVARegime{On: true, Intensity: 11,
			StartDay: 29, EndDay: 35, HourOn: 10, HourOff: 16},
	}
}

func overnightSchedule() *Schedule {
	return &Schedule{
		Env: DefaultEnvironment(),
		UVA: UVARegime{On: true, Intensity: 11,
			StartDay: 29, EndDay: 35, HourOn: 22, HourOff: 4},
	}
}

func TestPhotoperiod(t *testing.T) {
	sc := &Schedule{Env: DefaultEnvironment()}
	cases := []struct {
		hour float64
		day  bool
	}{
		{0, false}, {5.99, false}, {6, true}, {12, true},
		{21.99, true}, {22, false}, {23.5, false},
	}
	for _, c := range cases {
		if got := sc.IsDay(at(30, c.hour)); got != c.day {
			t.Errorf("IsDay at %02.2f = %v, want %v", c.hour, got, c.day)
		}
	}

	cond := sc.Conditions(at(30, 12))
	if cond.Irradiance != sc.Env.IDay || cond.AirTemp != sc.Env.TDay {
		t.Errorf("daytime conditions = %+v", cond)
	}
	cond = sc.Conditions(at(30, 23))
	if cond.Irradiance != 0 || cond.AirTemp != sc.Env.TNight {
		t.Errorf("nighttime conditions = %+v", cond)
	}
}

func TestUVADaytimeWindow(t *testing.T) {
	sc := daytimeSchedule()

	if i, h := sc.UVAIrradiance(at(30, 9.99)); i != 0 || h != 0 {
		t.Errorf("before window: I=%g h=%g", i, h)
	}
	if i, h := sc.UVAIrradiance(at(30, 10)); i != 11 || h != 0 {
		t.Errorf("window start: I=%g h=%g", i, h)
	}
	if i, h := sc.UVAIrradiance(at(30, 13)); i != 11 || different(h, 3, 1e-9) {
		t.Errorf("mid window: I=%g h=%g, want 11, 3", i, h)
	}
	if i, _ := sc.UVAIrradiance(at(30, 16)); i != 0 {
		t.Errorf("after window: I=%g", i)
	}
	// Outside the treatment days.
	if i, _ := sc.UVAIrradiance(at(28, 12)); i != 0 {
		t.Errorf("before start day: I=%g", i)
	}
	if i, _ := sc.UVAIrradiance(at(36, 12)); i != 0 {
		t.Errorf("after end day: I=%g", i)
	}
	if got := sc.DailyHours(); got != 6 {
		t.Errorf("DailyHours = %g, want 6", got)
	}
	if sc.IsNightSession() {
		t.Error("daytime window flagged as night session")
	}
}

func TestUVAOvernightWindow(t *testing.T) {
	sc := overnightSchedule()

	if i, h := sc.UVAIrradiance(at(30, 23)); i != 11 || different(h, 1, 1e-9) {
		t.Errorf("before midnight: I=%g h=%g, want 11, 1", i, h)
	}
	// After midnight the session belongs to the previous day.
	if i, h := sc.UVAIrradiance(at(31, 2)); i != 11 || different(h, 4, 1e-9) {
		t.Errorf("after midnight: I=%g h=%g, want 11, 4", i, h)
	}
	if i, _ := sc.UVAIrradiance(at(31, 5)); i != 0 {
		t.Errorf("after session end: I=%g", i)
	}
	// A session must start by day EndDay, so the final session begins
	// at 22:00 of day 34 and its tail runs into day 35. This keeps the
	// session count of an overnight regime equal to a daytime regime
	// over the same treatment days.
	if i, h := sc.UVAIrradiance(at(35, 2)); i != 11 || different(h, 4, 1e-9) {
		t.Errorf("tail of final overnight session: I=%g h=%g, want 11, 4", i, h)
	}
	if i, _ := sc.UVAIrradiance(at(35, 23)); i != 0 {
		t.Errorf("session started past the end day: I=%g", i)
	}
	if i, _ := sc.UVAIrradiance(at(36, 2)); i != 0 {
		t.Errorf("irradiation after the final session: I=%g", i)
	}
	if got := sc.DailyHours(); got != 6 {
		t.Errorf("DailyHours = %g, want 6", got)
	}
	if !sc.IsNightSession() {
		t.Error("overnight window not flagged as night session")
	}
}

func TestCumulativeExposure(t *testing.T) {
	sc := daytimeSchedule()

	if got := sc.DaysIrradiated(at(28, 12)); got != 0 {
		t.Errorf("DaysIrradiated before start = %g", got)
	}
	if got := sc.DaysIrradiated(at(29, 0)); got != 1 {
		t.Errorf("DaysIrradiated on start day = %g, want 1", got)
	}
	if got := sc.DaysIrradiated(at(31, 12)); got != 3 {
		t.Errorf("DaysIrradiated on day 31 = %g, want 3", got)
	}
	// Capped at the treatment length.
	if got := sc.DaysIrradiated(at(40, 12)); got != 7 {
		t.Errorf("DaysIrradiated after end = %g, want 7", got)
	}

	// Day 31 at 13:00: two completed 6 h days plus 3 h today.
	if got := sc.TotalUVAHours(at(31, 13)); different(got, 15, 1e-9) {
		t.Errorf("TotalUVAHours = %g, want 15", got)
	}
	// Outside the daily window only completed days count.
	if got := sc.TotalUVAHours(at(31, 20)); different(got, 12, 1e-9) {
		t.Errorf("TotalUVAHours after window = %g, want 12", got)
	}
}

func TestHoursInDark(t *testing.T) {
	sc := &Schedule{Env: DefaultEnvironment()}
	if got := sc.HoursInDark(at(30, 12)); got != 0 {
		t.Errorf("HoursInDark during day = %g", got)
	}
	if got := sc.HoursInDark(at(30, 23)); different(got, 1, 1e-9) {
		t.Errorf("HoursInDark at 23:00 = %g, want 1", got)
	}
	// Past midnight the count keeps growing from the 22:00 lights-off.
	if got := sc.HoursInDark(at(31, 3)); different(got, 5, 1e-9) {
		t.Errorf("HoursInDark at 03:00 = %g, want 5", got)
	}
}

func TestUVAEmptyWindow(t *testing.T) {
	// HourOn == HourOff is a zero-length session: no irradiance and no
	// scheduled hours, so the dose-dependent terms see no exposure.
	sc := &Schedule{
		Env: DefaultEnvironment(),
		UVA: UVARegime{On: true, Intensity: 11,
			StartDay: 29, EndDay: 35, HourOn: 10, HourOff: 10},
	}
	if got := sc.DailyHours(); got != 0 {
		t.Errorf("DailyHours of empty window = %g, want 0", got)
	}
	for _, hour := range []float64{0, 9.99, 10, 10.01, 23} {
		if i, h := sc.UVAIrradiance(at(31, hour)); i != 0 || h != 0 {
			t.Errorf("empty window at %02.2f: I=%g h=%g", hour, i, h)
		}
	}
	if got := sc.TotalUVAHours(at(34, 12)); got != 0 {
		t.Errorf("TotalUVAHours of empty window = %g, want 0", got)
	}
}

func TestUVAOff(t *testing.T) {
	sc := &Schedule{Env: DefaultEnvironment()}
	for _, tm := range []float64{at(30, 12), at(33, 2), at(35, 18)} {
		if i, h := sc.UVAIrradiance(tm); i != 0 || h != 0 {
			t.Errorf("UVA off but I=%g h=%g at t=%g", i, h, tm)
		}
	}
	if sc.DailyHours() != 0 || sc.DaysIrradiated(at(34, 12)) != 0 || sc.TotalUVAHours(at(34, 12)) != 0 {
		t.Error("UVA off but exposure bookkeeping nonzero")
	}
}

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

// SecondsPerHour and SecondsPerDay convert the simulation clock, which
// runs in seconds from sowing, to wall-clock hours and days.
const (
	SecondsPerHour = 3600.0
	SecondsPerDay  = 86400.0
)

// Environment is the constant plant-factory climate. Lighting,
// temperature, CO2 and humidity switch between a day and a night value
// on the photoperiod boundary; there is no seasonal or weather signal.
type Environment struct {
	LightOnHour  float64 `toml:"light_on_hour" desc:"Photoperiod start" units:"h"`
	LightOffHour float64 `toml:"light_off_hour" desc:"Photoperiod end" units:"h"`
	IDay         float64 `toml:"I_day" desc:"Daytime shortwave irradiance" units:"W/m²"`
	TDay         float64 `toml:"T_day" desc:"Daytime air temperature" units:"°C"`
	TNight       float64 `toml:"T_night" desc:"Nighttime air temperature" units:"°C"`
	CO2Day       float64 `toml:"CO2_day" desc:"Daytime CO2 concentration" units:"ppm"`
	CO2Night     float64 `toml:"CO2_night" desc:"Nighttime CO2 concentration" units:"ppm"`
	RHDay        float64 `toml:"RH_day" desc:"Daytime relative humidity" units:"0–1"`
	RHNight      float64 `toml:"RH_night" desc:"Nighttime relative humidity" units:"0–1"`
	PlantDensity float64 `toml:"plant_density" desc:"Planting density" units:"plants/m²"`
}

// DefaultEnvironment returns the plant-factory climate the model was
// calibrated in: 16 h photoperiod (06:00–22:00), PPFD 130 µmol/m²/s
// (57 W/m² shortwave equivalent), 25/18 °C, 1200 ppm CO2.
func DefaultEnvironment() Environment {
	return Environment{
		LightOnHour:  6,
		LightOffHour: 22,
		IDay:         57,
		TDay:         25,
		TNight:       18,
		CO2Day:       1200,
		CO2Night:     1200,
		RHDay:        0.70,
		RHNight:      0.85,
		PlantDensity: 36,
	}
}

// UVARegime describes one supplemental UVA treatment: a daily on/off
// window repeated between a start and an end day (days counted from
// sowing, inclusive). A window with HourOn > HourOff spans midnight.
type UVARegime struct {
	On        bool    `toml:"uva_on" desc:"Whether supplemental UVA is applied"`
	Intensity float64 `toml:"uva_intensity" desc:"UVA irradiance while on" units:"W/m²"`
	StartDay  float64 `toml:"uva_start_day" desc:"First irradiation day after sowing" units:"d"`
	EndDay    float64 `toml:"uva_end_day" desc:"Last irradiation day after sowing" units:"d"`
	HourOn    float64 `toml:"uva_hour_on" desc:"Daily irradiation start" units:"h"`
	HourOff   float64 `toml:"uva_hour_off" desc:"Daily irradiation end" units:"h"`
}

// Schedule resolves the full forcing environment of the model at any
// simulation time: base light and climate from Environment, plus the
// UVA exposure bookkeeping (within-day and cumulative hours) that the
// stress and synthesis terms depend on. It is stateless; all methods
// are pure functions of t.
type Schedule struct {
	Env Environment
	UVA UVARegime
}

// Hour returns the wall-clock hour of day at simulation time t [s].
func (sc *Schedule) Hour(t float64) float64 {
	return math.Mod(t/SecondsPerHour, 24)
}

// Day returns fractional days from sowing at simulation time t [s].
func (sc *Schedule) Day(t float64) float64 {
	return t / SecondsPerDay
}

// IsDay reports whether the base lights are on at time t. A photoperiod
// with LightOnHour > LightOffHour spans midnight.
func (sc *Schedule) IsDay(t float64) bool {
	hour := sc.Hour(t)
	on, off := sc.Env.LightOnHour, sc.Env.LightOffHour
	if on <= off {
		return on <= hour && hour < off
	}
	return hour >= on || hour < off
}

// Conditions returns the base climate seen by the growth model at t.
func (sc *Schedule) Conditions(t float64) Conditions {
	day := sc.IsDay(t)
	c := Conditions{
		Day:          day,
		PlantDensity: sc.Env.PlantDensity,
	}
	if day {
		c.Irradiance = sc.Env.IDay
		c.AirTemp = sc.Env.TDay
		c.CO2 = sc.Env.CO2Day
		c.RH = sc.Env.RHDay
	} else {
		c.AirTemp = sc.Env.TNight
		c.CO2 = sc.Env.CO2Night
		c.RH = sc.Env.RHNight
	}
	return c
}

// UVAIrradiance returns the supplemental UVA intensity [W/m²] at t and
// the hours elapsed in the current session ("hours today"). Outside a
// session both are zero. For windows spanning midnight the session
// belongs to the day it started on, and a session must start no later
// than fractional day EndDay; its tail may run past it.
func (sc *Schedule) UVAIrradiance(t float64) (intensity, hoursToday float64) {
	u := sc.UVA
	if !u.On {
		return 0, 0
	}
	hour := sc.Hour(t)
	day := sc.Day(t)

	if u.HourOn <= u.HourOff {
		if u.StartDay <= day && day <= u.EndDay &&
			u.HourOn <= hour && hour < u.HourOff {
			return u.Intensity, hour - u.HourOn
		}
		return 0, 0
	}

	// Overnight window.
	if hour >= u.HourOn {
		if u.StartDay <= day && day <= u.EndDay {
			return u.Intensity, hour - u.HourOn
		}
	} else if hour < u.HourOff {
		started := day - 1
		if u.StartDay <= started && started <= u.EndDay {
			return u.Intensity, (24 - u.HourOn) + hour
		}
	}
	return 0, 0
}

// DailyHours returns the scheduled UVA session length [h/day]. An
// empty window (HourOn == HourOff) delivers no irradiation and has
// zero length.
func (sc *Schedule) DailyHours() float64 {
	u := sc.UVA
	if !u.On {
		return 0
	}
	if u.HourOn <= u.HourOff {
		return u.HourOff - u.HourOn
	}
	return 24 - u.HourOn + u.HourOff
}

// DaysIrradiated returns the number of treatment days reached by time
// t, counting the current day as soon as it begins. Days are counted
// on integer day boundaries so that cumulative exposure reflects only
// completed irradiation time.
func (sc *Schedule) DaysIrradiated(t float64) float64 {
	u := sc.UVA
	if !u.On {
		return 0
	}
	dayInt := math.Floor(sc.Day(t))
	if dayInt < u.StartDay {
		return 0
	}
	return math.Min(dayInt-u.StartDay+1, u.EndDay-u.StartDay+1)
}

// TotalUVAHours returns the cumulative exposure hours received by time
// t: full sessions for every completed treatment day plus the progress
// of the current session.
func (sc *Schedule) TotalUVAHours(t float64) float64 {
	_, hoursToday := sc.UVAIrradiance(t)
	completed := math.Max(0, sc.DaysIrradiated(t)-1)
	return completed*sc.DailyHours() + hoursToday
}

// HoursInDark returns how long the base lights have been off at t;
// zero during the photoperiod.
func (sc *Schedule) HoursInDark(t float64) float64 {
	if sc.IsDay(t) {
		return 0
	}
	hour := sc.Hour(t)
	off := sc.Env.LightOffHour
	if hour >= off {
		return hour - off
	}
	return hour + (24 - off)
}

// IsNightSession reports whether the regime irradiates during the dark
// period (sessions starting in the evening or ending in the early
// morning), which discounts stress-induced pigment synthesis.
func (sc *Schedule) IsNightSession() bool {
	return sc.UVA.On && (sc.UVA.HourOn >= 18 || sc.UVA.HourOff <= 6)
}

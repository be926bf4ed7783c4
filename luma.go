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

// Package luma implements a mechanistic model of lettuce growth and
// anthocyanin accumulation under supplemental UVA light. Six coupled
// state variables (structural biomass, carbon buffer, leaf area index,
// antioxidant pool, cumulative stress, reactive oxygen load) evolve
// under a plant-factory light schedule; the model predicts harvest
// fresh weight and anthocyanin concentration for a UVA regime.
package luma

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/cropmodel/luma/integrate"
)

// Version gives the version number.
const Version = "1.0.0"

// Default run timing: transplant on day 14 after sowing, 21 days of
// cultivation, harvest at 06:00 on the final day, 10 g/plant at
// transplant.
const (
	DefaultTransplantDay      = 14.0
	DefaultDays               = 21.0
	DefaultHarvestHour        = 6.0
	DefaultInitialFreshWeight = 10.0
	DefaultMaxStep            = 300.0 // [s], calibrated with the parameter set
)

// IntegrationError reports a failed run together with the time and
// state of the last valid solution, so a diverging parameter set can
// be diagnosed rather than silently clamped.
type IntegrationError struct {
	T      float64 // seconds from sowing at the last accepted step
	State  State   // model state at T
	Reason string
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("luma: integration failed at t=%.0f s (day %.2f): %s",
		e.T, e.T/SecondsPerDay, e.Reason)
}

// Point is one accepted integrator step of a run trajectory.
type Point struct {
	T     float64 // seconds from sowing
	State State
}

// Result holds the outcome of one simulation run.
type Result struct {
	Final      State
	Output     Output
	MeanStress float64 // mean stress index over the treatment window
	PeakStress float64
	Trajectory []Point
	Stats      integrate.Statistics
}

// Simulator runs the model for one treatment. The zero value is not
// usable; fill in Params, Schedule, Growth and Mechanism (and
// optionally timing and solver settings) before calling Run. A
// Simulator holds its own Params copy and is not safe for concurrent
// use, but distinct Simulators may run concurrently.
type Simulator struct {
	Params    Params
	Schedule  Schedule
	Growth    GrowthModel
	Mechanism Mechanism

	// Integrator defaults to Dormand–Prince 5(4).
	Integrator integrate.Integrator

	// TransplantDay, Days and HarvestHour define the simulated span:
	// from TransplantDay·86400 s to 86400·(TransplantDay+Days) +
	// 3600·HarvestHour. Zero values take the defaults above.
	TransplantDay float64
	Days          float64
	HarvestHour   float64

	// InitialFreshWeight is the per-plant fresh weight at transplant
	// [g]. Zero takes the default.
	InitialFreshWeight float64

	// MaxStep bounds the integrator step [s]; AbsTol and RelTol are
	// the solver tolerances. Zero values take defaults (300 s, 1e-6,
	// 1e-3).
	MaxStep float64
	AbsTol  float64
	RelTol  float64

	// KeepTrajectory retains every accepted step in the Result.
	KeepTrajectory bool

	// LogWriter, if non-nil, receives daily progress lines.
	LogWriter io.Writer
}

func (sim *Simulator) logf(format string, a ...interface{}) {
	if sim.LogWriter != nil {
		fmt.Fprintf(sim.LogWriter, format, a...)
	}
}

// StartTime returns the simulation start [s from sowing].
func (sim *Simulator) StartTime() float64 {
	return sim.transplantDay() * SecondsPerDay
}

// EndTime returns the harvest time [s from sowing].
func (sim *Simulator) EndTime() float64 {
	return (sim.transplantDay()+sim.days())*SecondsPerDay +
		sim.harvestHour()*SecondsPerHour
}

func (sim *Simulator) transplantDay() float64 {
	if sim.TransplantDay > 0 {
		return sim.TransplantDay
	}
	return DefaultTransplantDay
}

func (sim *Simulator) days() float64 {
	if sim.Days > 0 {
		return sim.Days
	}
	return DefaultDays
}

func (sim *Simulator) harvestHour() float64 {
	if sim.HarvestHour > 0 {
		return sim.HarvestHour
	}
	return DefaultHarvestHour
}

func (sim *Simulator) initialFreshWeight() float64 {
	if sim.InitialFreshWeight > 0 {
		return sim.InitialFreshWeight
	}
	return DefaultInitialFreshWeight
}

// treatmentWindowStart returns the time from which stress is averaged
// for the harvest dry-matter ratio: the first irradiation day, or the
// final cultivation day for untreated runs.
func (sim *Simulator) treatmentWindowStart() float64 {
	if sim.Schedule.UVA.On {
		return sim.Schedule.UVA.StartDay * SecondsPerDay
	}
	return (sim.transplantDay() + sim.days()) * SecondsPerDay
}

// derivative evaluates the full six-state right-hand side at time t.
func (sim *Simulator) derivative(t float64, y, dy []float64) {
	p := &sim.Params
	sc := &sim.Schedule

	s := StateFromVector(y).clamped()
	c := sc.Conditions(t)
	iUVA, hoursToday := sc.UVAIrradiance(t)

	// Baseline growth, then UVA morphology on top of it.
	dXd, dCbuf, dLAI := sim.Growth.Rates(GrowthState{Xd: s.Xd, Cbuf: s.Cbuf, LAI: s.LAI}, c)
	dXd, dLAI = applyMorphology(dXd, dLAI, iUVA, s.Stress, p)

	// Oxidative load and cumulative damage.
	dROS := p.KROSProduction*iUVA - sim.Mechanism.Clearance(s.ROS, p)
	dStress := stressRate(s.Stress, s.ROS, s.LAI, s.AOX, iUVA,
		hoursToday, sc.HoursInDark(t), p)
	dXd, dLAI = stressGrowthInhibition(dXd, dLAI, s.Stress, p)

	// Antioxidant balance and the growth-defense carbon trade-off.
	ratio := dryMatterRatio(s.Stress, exposureAmplification(hoursToday, p), p)
	b := aoxDynamics(s, sim.Mechanism, ratio, sc.TotalUVAHours(t),
		sc.DaysIrradiated(t), sc.DailyHours(), c.Day, sc.IsNightSession(), p)
	dXd, synthesis, debit := applyCarbonCompetition(dXd, b, s.Stress, s.Cbuf, p)
	dAOX := synthesis - b.degradation - b.consumption
	dCbuf -= debit

	dy[iXd] = dXd
	dy[iCbuf] = dCbuf
	dy[iLAI] = dLAI
	dy[iAOX] = dAOX
	dy[iStress] = dStress
	dy[iROS] = dROS
}

// Run integrates the model from transplant to harvest and converts
// the final state to harvest observables.
func (sim *Simulator) Run() (*Result, error) {
	if err := sim.Params.Check(); err != nil {
		return nil, err
	}
	if sim.Growth == nil {
		return nil, errors.New("luma: Simulator.Growth is nil")
	}
	if sim.Mechanism == nil {
		return nil, errors.New("luma: Simulator.Mechanism is nil")
	}
	integ := sim.Integrator
	if integ == nil {
		integ = &integrate.DormandPrince{}
	}
	maxStep := sim.MaxStep
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}

	tStart, tEnd := sim.StartTime(), sim.EndTime()
	y := InitialState(sim.initialFreshWeight(), sim.Params, sim.Schedule.Env.PlantDensity).Vector()

	sim.logf("Simulating %s growth over days %.0f–%.2f (UVA %s)\n",
		sim.Growth.Name(), sim.transplantDay(), tEnd/SecondsPerDay, describeRegime(sim.Schedule.UVA))

	windowStart := sim.treatmentWindowStart()
	var stressStats stats.Stats
	peakStress := 0.0
	var trajectory []Point
	lastLoggedDay := math.Floor(tStart / SecondsPerDay)

	cfg := &integrate.Config{
		InitialStep: 1,
		MaxStep:     maxStep,
		AbsTol:      sim.AbsTol,
		RelTol:      sim.RelTol,
		Recorder: func(t float64, y []float64) {
			st := StateFromVector(y).clamped()
			if t >= windowStart {
				stressStats.Update(st.Stress)
			}
			if st.Stress > peakStress {
				peakStress = st.Stress
			}
			if sim.KeepTrajectory {
				trajectory = append(trajectory, Point{T: t, State: st})
			}
			if day := math.Floor(t / SecondsPerDay); day > lastLoggedDay {
				lastLoggedDay = day
				sim.logf("day %2.0f: X_d=%.4f kg/m² LAI=%.2f AOX=%.3g Stress=%.1f\n",
					day, st.Xd, st.LAI, st.AOX, st.Stress)
			}
		},
	}

	runStats, err := integ.Integrate(sim.derivative, tStart, tEnd, y, cfg)
	if err != nil {
		var se *integrate.StepError
		if errors.As(err, &se) {
			return nil, &IntegrationError{T: se.T, State: StateFromVector(se.Y), Reason: se.Reason}
		}
		return nil, fmt.Errorf("luma: %w", err)
	}

	final := StateFromVector(y)
	if !final.finite() {
		return nil, &IntegrationError{T: tEnd, State: final,
			Reason: "non-finite state at harvest"}
	}
	// The solver can overshoot a floor by a rounding margin on an
	// accepted step; reported states get the same clamp the derivative
	// sees.
	final = final.clamped()

	meanStress := 0.0
	if stressStats.Count() > 0 {
		meanStress = stressStats.Mean()
	}

	out, err := Convert(final, meanStress, &sim.Schedule, &sim.Params)
	if err != nil {
		return nil, err
	}

	sim.logf("harvest: FW=%.1f g/plant Anth=%.0f ppm (LDMC=%.4f, mean stress %.1f)\n",
		out.FreshWeight, out.AnthocyaninPPM, out.DryMatterRatio, meanStress)

	return &Result{
		Final:      final,
		Output:     out,
		MeanStress: meanStress,
		PeakStress: peakStress,
		Trajectory: trajectory,
		Stats:      runStats,
	}, nil
}

func describeRegime(u UVARegime) string {
	if !u.On {
		return "off"
	}
	return fmt.Sprintf("%.0f W/m² %02.0f:00–%02.0f:00 days %.0f–%.0f",
		u.Intensity, u.HourOn, u.HourOff, u.StartDay, u.EndDay)
}

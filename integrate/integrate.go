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

// Package integrate provides adaptive explicit Runge-Kutta integration
// of initial value problems y'(t) = f(t, y(t)).
package integrate

import "fmt"

// Function evaluates the right-hand side of the differential equation,
// writing f(t, y) into dy. dy is owned by the integrator and must not
// be retained.
type Function func(t float64, y, dy []float64)

// Config controls one integration.
type Config struct {
	// InitialStep, if > 0, is the size of the first attempted step.
	// Otherwise the integrator picks a conservative default.
	InitialStep float64

	// MinStep, if > 0, is the smallest step the controller may select.
	// Integration fails if the error tolerance cannot be met at this
	// step size.
	MinStep float64

	// MaxStep, if > 0, bounds every step. The model's forcing switches
	// on sub-hour boundaries (photoperiod, irradiation windows), so
	// accuracy requires a bound well below the shortest window.
	MaxStep float64

	// AbsTol and RelTol are the per-component error tolerances. Zero
	// values default to 1e-6 (absolute) and 1e-3 (relative).
	AbsTol float64
	RelTol float64

	// MaxSteps, if > 0, bounds the number of accepted steps before the
	// integration aborts.
	MaxSteps int

	// Recorder, if non-nil, is called after every accepted step with
	// the step end time and state. The slice is reused; the recorder
	// must copy what it keeps.
	Recorder func(t float64, y []float64)
}

// Statistics reports the work performed by one integration.
type Statistics struct {
	Steps       int     // accepted steps
	Rejected    int     // rejected step attempts
	Evaluations int     // right-hand-side evaluations
	LastStep    float64 // size of the final accepted step
}

// Integrator advances an initial value problem from t to tEnd,
// modifying y in place to hold the solution at tEnd.
type Integrator interface {
	Integrate(f Function, t, tEnd float64, y []float64, cfg *Config) (Statistics, error)
	Name() string
}

// StepError reports an integration failure together with the last
// valid time and state, so the caller can see how far the solution
// got and what it looked like when it failed.
type StepError struct {
	T      float64   // time of the last accepted step
	Y      []float64 // state at T
	Reason string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("integrate: %s at t=%g", e.Reason, e.T)
}

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

// Mechanism is an interface for pigment-induction and ROS-clearance
// mechanisms. The default implementation drives induction from the
// instantaneous stress level and clears ROS with a single first-order
// pool; alternative mechanisms (time-integrated dose signalling,
// multi-enzyme clearance) can be swapped in without touching the
// simulation core.
type Mechanism interface {
	// Induction returns the stress-induced antioxidant synthesis rate
	// [kg/(m²·s)] per unit leaf area, before the adaptation, dose and
	// efficiency discounts applied by the core.
	Induction(s State, p *Params) float64

	// Clearance returns the ROS removal rate [1/s contribution] for
	// the current ROS load.
	Clearance(ros float64, p *Params) float64

	// Name returns the name of the mechanism.
	Name() string
}

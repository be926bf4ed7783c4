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

// Package simpleinduction implements the default LUMA pigment
// mechanism: antioxidant induction saturating in the instantaneous
// stress level, and a single first-order ROS clearance pool.
package simpleinduction

import "github.com/cropmodel/luma"

const epsilonMass = 1e-12

// Mechanism implements luma.Mechanism. The zero value is ready to use.
type Mechanism struct{}

// New returns the default induction mechanism.
func New() *Mechanism { return &Mechanism{} }

// Name returns the name of the mechanism.
func (m *Mechanism) Name() string { return "simple-stress-induction" }

// Induction returns the stress-induced synthesis rate per unit leaf
// area, saturating in the instantaneous stress index. Signalling is
// treated as fast relative to the 9-hour stress relaxation, so no
// separate induction state is carried.
func (m *Mechanism) Induction(s luma.State, p *luma.Params) float64 {
	return p.VMaxAOX * s.Stress / (p.KStressAOX + s.Stress + epsilonMass)
}

// Clearance returns the first-order ROS removal rate, modeling the
// scavenging enzyme pools (SOD, CAT, APX) as one aggregate.
func (m *Mechanism) Clearance(ros float64, p *luma.Params) float64 {
	return p.KROSClearance * ros
}

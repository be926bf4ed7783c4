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

import (
	"strings"
	"testing"
)

func TestDefaultParamsCheck(t *testing.T) {
	if err := DefaultParams().Check(); err != nil {
		t.Fatalf("default parameters failed validation: %v", err)
	}
}

func TestParamsCheckFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
		want   string
	}{
		{
			name:   "zero clearance",
			mutate: func(p *Params) { p.KROSClearance = 0 },
			want:   "k_ros_clearance",
		},
		{
			name:   "negative production",
			mutate: func(p *Params) { p.KROSProduction = -1 },
			want:   "k_ros_production",
		},
		{
			name:   "protection above one",
			mutate: func(p *Params) { p.AlphaAOXProtection = 1.5 },
			want:   "alpha_aox_protection",
		},
		{
			name:   "hill exponent below one",
			mutate: func(p *Params) { p.NROSConsumption = 0.5 },
			want:   "n_ros_consumption",
		},
		{
			name:   "ratio bounds inverted",
			mutate: func(p *Params) { p.DWFWRatioMax = p.DWFWRatioBase / 2 },
			want:   "dw_fw_ratio_max",
		},
		{
			name:   "threshold outside a day",
			mutate: func(p *Params) { p.GompertzThreshold = 30 },
			want:   "gompertz_threshold",
		},
	}
	for _, c := range cases {
		p := DefaultParams()
		c.mutate(&p)
		err := p.Check()
		if err == nil {
			t.Errorf("%s: Check passed, want error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: error %q does not name %q", c.name, err, c.want)
		}
	}
}

func TestStressDecayHalfLife(t *testing.T) {
	// The decay constant corresponds to a half-life of about 9 hours.
	p := DefaultParams()
	halfLife := 0.6931471805599453 / p.KStressDecay / SecondsPerHour
	if halfLife < 8 || halfLife > 10 {
		t.Errorf("stress half-life = %.2f h, want ≈9 h", halfLife)
	}
}

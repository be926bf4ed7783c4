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

package lumautil

import (
	"fmt"
	"os"

	"github.com/cropmodel/luma"
	"github.com/cropmodel/luma/science/growth/sunmodel"
	"github.com/cropmodel/luma/science/induction/simpleinduction"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"
)

// CalibratedCAlpha is the photosynthetic conversion efficiency the UVA
// response parameters were fitted with; it overrides the published Sun
// model default.
const CalibratedCAlpha = 0.54

// getFloat reads a configuration value as float64, accepting any
// numeric or string representation.
func getFloat(cfg *viper.Viper, key string) (float64, error) {
	v, err := cast.ToFloat64E(cfg.Get(key))
	if err != nil {
		return 0, fmt.Errorf("lumautil: configuration value %s: %v", key, err)
	}
	return v, nil
}

// environment assembles the plant-factory climate from configuration.
func environment(cfg *viper.Viper) (luma.Environment, error) {
	env := luma.DefaultEnvironment()
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"Env.LightOnHour", &env.LightOnHour},
		{"Env.LightOffHour", &env.LightOffHour},
		{"Env.IDay", &env.IDay},
		{"Env.TDay", &env.TDay},
		{"Env.TNight", &env.TNight},
		{"Env.CO2Day", &env.CO2Day},
		{"Env.CO2Night", &env.CO2Night},
		{"Env.RHDay", &env.RHDay},
		{"Env.RHNight", &env.RHNight},
		{"Env.PlantDensity", &env.PlantDensity},
	} {
		v, err := getFloat(cfg, f.key)
		if err != nil {
			return env, err
		}
		*f.dst = v
	}
	if env.PlantDensity <= 0 {
		return env, fmt.Errorf("lumautil: Env.PlantDensity must be positive, got %g", env.PlantDensity)
	}
	return env, nil
}

// regime assembles a custom UVA regime from the UVA.* configuration
// keys; used when no treatment preset is selected.
func regime(cfg *viper.Viper) (luma.UVARegime, error) {
	u := luma.UVARegime{On: cfg.GetBool("UVA.On")}
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"UVA.Intensity", &u.Intensity},
		{"UVA.StartDay", &u.StartDay},
		{"UVA.EndDay", &u.EndDay},
		{"UVA.HourOn", &u.HourOn},
		{"UVA.HourOff", &u.HourOff},
	} {
		v, err := getFloat(cfg, f.key)
		if err != nil {
			return u, err
		}
		*f.dst = v
	}
	if u.On {
		if u.Intensity <= 0 {
			return u, fmt.Errorf("lumautil: UVA.Intensity must be positive when UVA.On is set")
		}
		if u.EndDay < u.StartDay {
			return u, fmt.Errorf("lumautil: UVA.EndDay (%g) precedes UVA.StartDay (%g)", u.EndDay, u.StartDay)
		}
	}
	return u, nil
}

// modelParams loads the UVA response parameters: the calibrated
// defaults, or a TOML snapshot if ParamFile is set.
func modelParams(cfg *viper.Viper) (luma.Params, error) {
	if f := os.ExpandEnv(cfg.GetString("ParamFile")); f != "" {
		return ReadParams(f)
	}
	return luma.DefaultParams(), nil
}

// BuildSimulator assembles a ready-to-run Simulator for the given UVA
// regime from the configuration: calibrated UVA response parameters,
// the Sun growth model with the fitted conversion efficiency, and the
// default induction mechanism.
func BuildSimulator(cfg *viper.Viper, u luma.UVARegime) (*luma.Simulator, error) {
	p, err := modelParams(cfg)
	if err != nil {
		return nil, err
	}
	env, err := environment(cfg)
	if err != nil {
		return nil, err
	}

	sp := sunmodel.DefaultParams()
	sp.CAlpha = CalibratedCAlpha

	sim := &luma.Simulator{
		Params:    p,
		Schedule:  luma.Schedule{Env: env, UVA: u},
		Growth:    sunmodel.NewWithParams(sp),
		Mechanism: simpleinduction.New(),
	}

	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"Sim.TransplantDay", &sim.TransplantDay},
		{"Sim.Days", &sim.Days},
		{"Sim.HarvestHour", &sim.HarvestHour},
		{"Sim.InitialFreshWeight", &sim.InitialFreshWeight},
		{"Sim.MaxStep", &sim.MaxStep},
		{"Sim.AbsTol", &sim.AbsTol},
		{"Sim.RelTol", &sim.RelTol},
	} {
		v, err := getFloat(cfg, f.key)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	if !cfg.GetBool("quiet") {
		sim.LogWriter = os.Stdout
	}
	return sim, nil
}

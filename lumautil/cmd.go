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

// Package lumautil holds the configuration and command-line interface
// of the LUMA lettuce UVA model.
package lumautil

import (
	"fmt"
	"os"

	"github.com/cropmodel/luma"
	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to LUMA.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "quiet",
			usage: `
              quiet suppresses per-day progress output.`,
			shorthand:  "q",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "ParamFile",
			usage: `
              ParamFile is the path to a TOML parameter snapshot. If empty,
              the calibrated default parameters are used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "treatment",
			usage: `
              treatment selects an experimental treatment preset by name
              (for example CK, L6D6, H12D3). If empty, the UVA.* options
              define a custom regime.`,
			shorthand:  "t",
			defaultVal: "CK",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "UVA.On",
			usage: `
              UVA.On enables the custom supplemental UVA regime.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "UVA.Intensity",
			usage: `
              UVA.Intensity is the supplemental UVA irradiance while the
              lamps are on [W/m²].`,
			defaultVal: 11.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "UVA.StartDay",
			usage: `
              UVA.StartDay is the first irradiation day after sowing.`,
			defaultVal: 29.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "UVA.EndDay",
			usage: `
              UVA.EndDay is the last irradiation day after sowing.`,
			defaultVal: 35.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "UVA.HourOn",
			usage: `
              UVA.HourOn is the daily irradiation start hour. A start after
              the end hour makes the session span midnight.`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "UVA.HourOff",
			usage: `
              UVA.HourOff is the daily irradiation end hour.`,
			defaultVal: 16.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Env.LightOnHour",
			usage: `
              Env.LightOnHour is the photoperiod start hour.`,
			defaultVal: 6.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Env.LightOffHour",
			usage: `
              Env.LightOffHour is the photoperiod end hour.`,
			defaultVal: 22.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Env.IDay",
			usage: `
              Env.IDay is the daytime shortwave irradiance [W/m²].`,
			defaultVal: 57.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Env.TDay",
			usage: `
              Env.TDay is the daytime air temperature [°C].`,
			defaultVal: 25.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Env.TNight",
			usage: `
              Env.TNight is the nighttime air temperature [°C].`,
			defaultVal: 18.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Env.CO2Day",
			usage: `
              Env.CO2Day is the daytime CO2 concentration [ppm].`,
			defaultVal: 1200.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Env.CO2Night",
			usage: `
              Env.CO2Night is the nighttime CO2 concentration [ppm].`,
			defaultVal: 1200.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Env.RHDay",
			usage: `
              Env.RHDay is the daytime relative humidity [0-1].`,
			defaultVal: 0.70,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Env.RHNight",
			usage: `
              Env.RHNight is the nighttime relative humidity [0-1].`,
			defaultVal: 0.85,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Env.PlantDensity",
			usage: `
              Env.PlantDensity is the planting density [plants/m²].`,
			defaultVal: 36.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Sim.TransplantDay",
			usage: `
              Sim.TransplantDay is the day after sowing on which the
              simulation starts.`,
			defaultVal: luma.DefaultTransplantDay,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Sim.Days",
			usage: `
              Sim.Days is the number of cultivation days simulated.`,
			defaultVal: luma.DefaultDays,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Sim.HarvestHour",
			usage: `
              Sim.HarvestHour is the hour of day on which the final day's
              run ends.`,
			defaultVal: luma.DefaultHarvestHour,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Sim.InitialFreshWeight",
			usage: `
              Sim.InitialFreshWeight is the per-plant fresh weight at
              transplant [g].`,
			defaultVal: luma.DefaultInitialFreshWeight,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Sim.MaxStep",
			usage: `
              Sim.MaxStep is the maximum integrator step [s]. The light and
              irradiation windows switch on hour boundaries, so this must
              stay well below one hour.`,
			defaultVal: luma.DefaultMaxStep,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Sim.AbsTol",
			usage: `
              Sim.AbsTol is the absolute integration error tolerance.`,
			defaultVal: 1e-6,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Sim.RelTol",
			usage: `
              Sim.RelTol is the relative integration error tolerance.`,
			defaultVal: 1e-3,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "set",
			usage: `
              set selects the treatment set for batch runs: train,
              validation or all.`,
			defaultVal: "all",
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
		{
			name: "workers",
			usage: `
              workers is the number of concurrent simulations in batch
              runs; 0 means one per CPU.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path the params command writes the TOML
              parameter snapshot to.`,
			shorthand:  "o",
			defaultVal: "luma_params.toml",
			flagsets:   []*pflag.FlagSet{paramsCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("LUMA")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(batchCmd)
	Root.AddCommand(paramsCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("luma: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "luma",
	Short: "A mechanistic lettuce UVA response model.",
	Long: `LUMA simulates lettuce growth and anthocyanin accumulation under
supplemental UVA light in controlled-environment agriculture. It predicts
harvest fresh weight and anthocyanin concentration for a UVA regime from
six coupled state variables (biomass, carbon buffer, leaf area,
antioxidants, stress, reactive oxygen).

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'LUMA_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of LUMA.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("LUMA v%s\n", luma.Version)
	},
	DisableAutoGenTag: true,
}

// runCmd simulates a single treatment.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one UVA treatment.",
	Long: `run simulates one cultivation cycle under the selected treatment
preset (or a custom UVA.* regime if --treatment is empty) and prints the
harvest fresh weight and anthocyanin concentration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var u luma.UVARegime
		name := Cfg.GetString("treatment")
		if name != "" {
			tr, err := TreatmentByName(name)
			if err != nil {
				return err
			}
			u = tr.Regime
		} else {
			var err error
			u, err = regime(Cfg)
			if err != nil {
				return err
			}
		}
		sim, err := BuildSimulator(Cfg, u)
		if err != nil {
			return err
		}
		res, err := sim.Run()
		if err != nil {
			return err
		}
		cmd.Printf("FW %.1f g/plant, Anth %.0f ppm, mean stress %.1f, %d steps\n",
			res.Output.FreshWeight, res.Output.AnthocyaninPPM,
			res.MeanStress, res.Stats.Steps)
		return nil
	},
	DisableAutoGenTag: true,
}

// batchCmd simulates a treatment set and reports validation errors.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Simulate a treatment set against observations.",
	Long: `batch simulates every treatment of the selected set in parallel
and prints a table of simulated versus observed fresh weight and
anthocyanin concentration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		trs, err := TreatmentSet(Cfg.GetString("set"))
		if err != nil {
			return err
		}
		results, err := RunTreatments(Cfg, trs, Cfg.GetInt("workers"))
		if err != nil {
			return err
		}
		return WriteReport(cmd.OutOrStdout(), results)
	},
	DisableAutoGenTag: true,
}

// paramsCmd writes the active parameter set to a TOML snapshot.
var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Write the active parameter set to a TOML file.",
	Long: `params writes the active model parameters (the calibrated
defaults, or the ParamFile snapshot if one is configured) to a TOML file
that can be edited and passed back via ParamFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := modelParams(Cfg)
		if err != nil {
			return err
		}
		out := os.ExpandEnv(Cfg.GetString("OutputFile"))
		if err := WriteParams(out, p); err != nil {
			return err
		}
		cmd.Printf("wrote parameter snapshot to %s\n", out)
		return nil
	},
	DisableAutoGenTag: true,
}

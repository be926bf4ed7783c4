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

import "fmt"

// Params holds every calibrated coefficient of the UVA response model
// as a flat value type. A Simulator takes its own copy, so concurrent
// runs with different parameter sets never share state. Fields carry
// the TOML key used by parameter snapshot files.
type Params struct {
	// Morphology: UVA enhancement of leaf expansion.
	UVASLAEnhancement float64 `toml:"uva_sla_enhancement" desc:"Maximum UVA enhancement of specific leaf area" units:"-"`
	KUVASLA           float64 `toml:"K_uva_sla" desc:"Half-saturation UVA intensity for SLA enhancement" units:"W/m²"`
	UVALAIBoost       float64 `toml:"uva_lai_boost" desc:"Maximum UVA enhancement of LAI growth" units:"-"`
	KUVALAI           float64 `toml:"K_uva_lai" desc:"Half-saturation UVA intensity for LAI enhancement" units:"W/m²"`

	// ROS dynamics.
	KROSProduction float64 `toml:"k_ros_production" desc:"ROS production per unit UVA irradiance" units:"ROS/(W/m²·s)"`
	KROSClearance  float64 `toml:"k_ros_clearance" desc:"First-order ROS clearance rate" units:"1/s"`

	// Stress damage.
	StressDamageCoeff  float64 `toml:"stress_damage_coeff" desc:"Base ROS damage coefficient" units:"1/s"`
	AVulnerability     float64 `toml:"A_vulnerability" desc:"Vulnerability amplitude for small canopies" units:"-"`
	KVulnerability     float64 `toml:"k_vulnerability" desc:"Exponential decay of vulnerability with LAI" units:"m²/m²⁻¹"`
	GompertzMaxFactor  float64 `toml:"gompertz_max_factor" desc:"Maximum nonlinear damage amplification" units:"-"`
	GompertzThreshold  float64 `toml:"gompertz_threshold" desc:"Daily exposure hours at the amplification inflection" units:"h"`
	GompertzSteepness  float64 `toml:"gompertz_steepness" desc:"Steepness of the amplification sigmoid" units:"1/h"`
	AlphaAOXProtection float64 `toml:"alpha_aox_protection" desc:"Maximum antioxidant protection efficiency" units:"-"`
	KAOXProtection     float64 `toml:"K_aox_protection" desc:"Half-saturation AOX for protection" units:"kg/m²"`
	KCircadian         float64 `toml:"k_circadian" desc:"Circadian-disruption damage coefficient" units:"-"`
	NCircadian         float64 `toml:"n_circadian" desc:"Circadian damage exponent on hours in dark" units:"-"`
	KNonlinearStress   float64 `toml:"k_nonlinear_stress" desc:"Nonlinear (amplified) damage coefficient" units:"1/s"`

	// Stress relaxation and growth inhibition.
	KStressDecay                    float64 `toml:"k_stress_decay" desc:"First-order stress decay rate, half-life ≈ 9 h" units:"1/s"`
	StressPhotosynthesisInhibition  float64 `toml:"stress_photosynthesis_inhibition" desc:"Maximum stress inhibition of structural growth" units:"-"`
	StressLAIInhibition             float64 `toml:"stress_lai_inhibition" desc:"Maximum stress inhibition of LAI growth" units:"-"`
	KStress                         float64 `toml:"K_stress" desc:"Half-saturation stress for growth inhibition" units:"-"`

	// AOX synthesis.
	BaseAOXRateLight float64 `toml:"base_aox_rate_light" desc:"Constitutive AOX synthesis in light" units:"kg/(m²·s)"`
	BaseAOXRateDark  float64 `toml:"base_aox_rate_dark" desc:"Constitutive AOX synthesis in dark" units:"kg/(m²·s)"`
	VMaxAOX          float64 `toml:"V_max_aox" desc:"Maximum stress-induced AOX synthesis rate" units:"kg/(m²·s)"`
	KStressAOX       float64 `toml:"K_stress_aox" desc:"Half-saturation stress for induced synthesis" units:"-"`
	KAOXDeg          float64 `toml:"k_aox_deg" desc:"First-order AOX degradation rate" units:"1/s"`

	// Carbon competition between growth and defense.
	AOXCarbonCost       float64 `toml:"aox_carbon_cost" desc:"Carbon buffer consumed per unit AOX synthesized" units:"kg/kg"`
	CarbonCompetitionK  float64 `toml:"carbon_competition_K" desc:"Half-saturation AOX demand for competition" units:"kg/(m²·s)"`
	StressCompetitionK  float64 `toml:"stress_competition_K" desc:"Half-saturation stress for competition" units:"-"`
	StressCompetitionMax float64 `toml:"stress_competition_max" desc:"Maximum stress-based competition effect" units:"-"`
	CarbonCompetitionMax float64 `toml:"carbon_competition_max" desc:"Maximum demand-based competition effect" units:"-"`
	MaxCbufConsumption  float64 `toml:"max_cbuf_consumption" desc:"Maximum fraction of C_buf debited per unit time" units:"-"`

	// Water (dry-matter ratio) inhibition of synthesis.
	WaterAOXThreshold float64 `toml:"water_aox_threshold" desc:"Dry-matter ratio above which synthesis is inhibited" units:"-"`
	WaterAOXK         float64 `toml:"water_aox_K" desc:"Half-saturation of the ratio excess" units:"-"`
	WaterAOXMaxInhib  float64 `toml:"water_aox_max_inhib" desc:"Maximum water inhibition of synthesis" units:"-"`
	WaterN            float64 `toml:"water_n" desc:"Hill coefficient of water inhibition" units:"-"`
	WaterSoftplusScale float64 `toml:"water_softplus_scale" desc:"Smoothing scale of the ratio-excess ramp" units:"-"`

	// Stress inhibition of synthesis.
	KStressInhib   float64 `toml:"K_stress_inhib" desc:"Half-saturation stress for synthesis inhibition" units:"-"`
	NStressInhib   float64 `toml:"n_stress_inhib" desc:"Hill coefficient of synthesis inhibition" units:"-"`
	MaxStressInhib float64 `toml:"max_stress_inhib" desc:"Maximum stress inhibition of synthesis" units:"-"`

	// Adaptation, UV induction, LAI and night efficiencies.
	KAdaptDays            float64 `toml:"K_adapt_days" desc:"Days of exposure halving the adaptation factor" units:"d"`
	KUVAOX                float64 `toml:"k_uv_aox" desc:"Cumulative-exposure AOX induction coefficient" units:"kg/(m²·s)"`
	KUVHours              float64 `toml:"K_uv_hours" desc:"Half-saturation cumulative exposure hours" units:"h"`
	LAIHealthy            float64 `toml:"LAI_healthy" desc:"Reference LAI of an unstressed canopy" units:"m²/m²"`
	NLAIEff               float64 `toml:"n_LAI_eff" desc:"Hill coefficient of the LAI efficiency discount" units:"-"`
	NightStressEfficiency float64 `toml:"night_stress_efficiency" desc:"Synthesis efficiency multiplier for night sessions" units:"-"`
	KNonlinAOX            float64 `toml:"K_nonlin_aox" desc:"Half-saturation amplification for synthesis shutdown" units:"-"`
	NNonlinAOX            float64 `toml:"n_nonlin_aox" desc:"Hill coefficient of the shutdown" units:"-"`

	// AOX consumption by ROS scavenging.
	KAOXConsumption float64 `toml:"k_aox_consumption" desc:"Base AOX consumption rate" units:"1/s"`
	KROSConsumption float64 `toml:"K_ros_consumption" desc:"ROS half-saturation for consumption" units:"-"`
	NROSConsumption float64 `toml:"n_ros_consumption" desc:"Hill coefficient of consumption" units:"-"`
	ConsAmpCenter   float64 `toml:"cons_amp_center" desc:"Softplus center of the extreme-dose amplification" units:"-"`
	ConsAmpScale    float64 `toml:"cons_amp_scale" desc:"Softplus scale of the amplification" units:"-"`
	ConsAmpK        float64 `toml:"cons_amp_k" desc:"Amplification coefficient" units:"-"`
	ConsAmpKHalf    float64 `toml:"cons_amp_K" desc:"Amplification half-saturation" units:"-"`

	// Output conversion (leaf dry-matter content).
	DWFWRatioBase         float64 `toml:"dw_fw_ratio_base" desc:"Unstressed dry-matter to fresh-matter ratio" units:"-"`
	LDMCStressSensitivity float64 `toml:"ldmc_stress_sensitivity" desc:"Stress sensitivity of the dry-matter ratio" units:"-"`
	KLDMC                 float64 `toml:"K_ldmc" desc:"Half-saturation stress for the ratio increase" units:"-"`
	DWFWRatioMax          float64 `toml:"dw_fw_ratio_max" desc:"Upper bound of the dry-matter ratio" units:"-"`
	AcuteCenter           float64 `toml:"acute_center" desc:"Softplus center for acute dehydration" units:"-"`
	AcuteScale            float64 `toml:"acute_scale" desc:"Softplus scale for acute dehydration" units:"-"`
	AcuteK                float64 `toml:"acute_k" desc:"Acute dehydration coefficient" units:"-"`
	AcuteKHalf            float64 `toml:"acute_K" desc:"Acute dehydration half-saturation" units:"-"`
	AcuteN                float64 `toml:"acute_n" desc:"Acute dehydration Hill coefficient" units:"-"`

	// Pigment accounting.
	AnthocyaninFraction float64 `toml:"anthocyanin_fraction" desc:"Anthocyanin share of the antioxidant pool" units:"-"`
}

// DefaultParams returns the calibrated parameter set. All rates are per
// second and all masses are per square meter of floor area.
func DefaultParams() Params {
	return Params{
		UVASLAEnhancement: 5.00,
		KUVASLA:           7.5,
		UVALAIBoost:       1.70,
		KUVALAI:           7.5,

		KROSProduction: 0.010,
		KROSClearance:  5e-4,

		StressDamageCoeff:  1.6e-7,
		AVulnerability:     8.5e7,
		KVulnerability:     2.0,
		GompertzMaxFactor:  250.0,
		GompertzThreshold:  10.5,
		GompertzSteepness:  0.5,
		AlphaAOXProtection: 0.5,
		KAOXProtection:     2.78e-5,
		KCircadian:         3.0e-6,
		NCircadian:         2.0,
		KNonlinearStress:   5.0e-6,

		KStressDecay:                   2.14e-5, // half-life ≈ 9 h
		StressPhotosynthesisInhibition: 0.85,
		StressLAIInhibition:            0.80,
		KStress:                        50.0,

		BaseAOXRateLight: 3.53e-9,
		BaseAOXRateDark:  1.77e-9,
		VMaxAOX:          1.45e-8,
		KStressAOX:       100.0,
		KAOXDeg:          3.02e-6,

		AOXCarbonCost:        1.0,
		CarbonCompetitionK:   1e-8,
		StressCompetitionK:   21.0,
		StressCompetitionMax: 0.225,
		CarbonCompetitionMax: 0.30,
		MaxCbufConsumption:   0.10,

		WaterAOXThreshold:  0.055,
		WaterAOXK:          0.020,
		WaterAOXMaxInhib:   0.50,
		WaterN:             2.0,
		WaterSoftplusScale: 0.002,

		KStressInhib:   150.0,
		NStressInhib:   2.0,
		MaxStressInhib: 0.80,

		KAdaptDays:            4.0,
		KUVAOX:                7.78e-11,
		KUVHours:              30.0,
		LAIHealthy:            9.0,
		NLAIEff:               2.0,
		NightStressEfficiency: 0.4,
		KNonlinAOX:            800.0,
		NNonlinAOX:            1.5,

		KAOXConsumption: 1.8e-7,
		KROSConsumption: 500.0,
		NROSConsumption: 2.0,
		ConsAmpCenter:   200.0,
		ConsAmpScale:    15.0,
		ConsAmpK:        12.0,
		ConsAmpKHalf:    20.0,

		DWFWRatioBase:         0.05,
		LDMCStressSensitivity: 0.45,
		KLDMC:                 1400.0,
		DWFWRatioMax:          0.080,
		AcuteCenter:           50.0,
		AcuteScale:            10.0,
		AcuteK:                9.0,
		AcuteKHalf:            120.0,
		AcuteN:                2.0,

		AnthocyaninFraction: 0.18,
	}
}

// Check validates the parameter set and returns the first problem
// found. It must pass before a Simulator is run.
func (p Params) Check() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"K_uva_sla", p.KUVASLA},
		{"K_uva_lai", p.KUVALAI},
		{"k_ros_clearance", p.KROSClearance},
		{"K_aox_protection", p.KAOXProtection},
		{"k_stress_decay", p.KStressDecay},
		{"K_stress", p.KStress},
		{"K_stress_aox", p.KStressAOX},
		{"carbon_competition_K", p.CarbonCompetitionK},
		{"stress_competition_K", p.StressCompetitionK},
		{"water_aox_K", p.WaterAOXK},
		{"water_softplus_scale", p.WaterSoftplusScale},
		{"K_stress_inhib", p.KStressInhib},
		{"K_adapt_days", p.KAdaptDays},
		{"K_uv_hours", p.KUVHours},
		{"LAI_healthy", p.LAIHealthy},
		{"K_nonlin_aox", p.KNonlinAOX},
		{"K_ros_consumption", p.KROSConsumption},
		{"cons_amp_scale", p.ConsAmpScale},
		{"cons_amp_K", p.ConsAmpKHalf},
		{"dw_fw_ratio_base", p.DWFWRatioBase},
		{"K_ldmc", p.KLDMC},
		{"acute_scale", p.AcuteScale},
		{"acute_K", p.AcuteKHalf},
		{"anthocyanin_fraction", p.AnthocyaninFraction},
	}
	for _, c := range positive {
		if !(c.v > 0) {
			return fmt.Errorf("luma: parameter %s must be positive, got %g", c.name, c.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"uva_sla_enhancement", p.UVASLAEnhancement},
		{"uva_lai_boost", p.UVALAIBoost},
		{"k_ros_production", p.KROSProduction},
		{"stress_damage_coeff", p.StressDamageCoeff},
		{"A_vulnerability", p.AVulnerability},
		{"k_vulnerability", p.KVulnerability},
		{"gompertz_max_factor", p.GompertzMaxFactor},
		{"gompertz_steepness", p.GompertzSteepness},
		{"k_circadian", p.KCircadian},
		{"k_nonlinear_stress", p.KNonlinearStress},
		{"base_aox_rate_light", p.BaseAOXRateLight},
		{"base_aox_rate_dark", p.BaseAOXRateDark},
		{"V_max_aox", p.VMaxAOX},
		{"k_aox_deg", p.KAOXDeg},
		{"aox_carbon_cost", p.AOXCarbonCost},
		{"k_uv_aox", p.KUVAOX},
		{"k_aox_consumption", p.KAOXConsumption},
		{"cons_amp_k", p.ConsAmpK},
		{"ldmc_stress_sensitivity", p.LDMCStressSensitivity},
		{"acute_k", p.AcuteK},
		{"water_aox_threshold", p.WaterAOXThreshold},
	}
	for _, c := range nonNegative {
		if c.v < 0 {
			return fmt.Errorf("luma: parameter %s must be non-negative, got %g", c.name, c.v)
		}
	}

	unitInterval := []struct {
		name string
		v    float64
	}{
		{"alpha_aox_protection", p.AlphaAOXProtection},
		{"stress_photosynthesis_inhibition", p.StressPhotosynthesisInhibition},
		{"stress_lai_inhibition", p.StressLAIInhibition},
		{"stress_competition_max", p.StressCompetitionMax},
		{"carbon_competition_max", p.CarbonCompetitionMax},
		{"max_cbuf_consumption", p.MaxCbufConsumption},
		{"water_aox_max_inhib", p.WaterAOXMaxInhib},
		{"max_stress_inhib", p.MaxStressInhib},
		{"night_stress_efficiency", p.NightStressEfficiency},
		{"anthocyanin_fraction", p.AnthocyaninFraction},
	}
	for _, c := range unitInterval {
		if c.v < 0 || c.v > 1 {
			return fmt.Errorf("luma: parameter %s must be in [0,1], got %g", c.name, c.v)
		}
	}

	exponents := []struct {
		name string
		v    float64
	}{
		{"n_circadian", p.NCircadian},
		{"water_n", p.WaterN},
		{"n_stress_inhib", p.NStressInhib},
		{"n_LAI_eff", p.NLAIEff},
		{"n_nonlin_aox", p.NNonlinAOX},
		{"n_ros_consumption", p.NROSConsumption},
		{"acute_n", p.AcuteN},
	}
	for _, c := range exponents {
		if !(c.v >= 1) {
			return fmt.Errorf("luma: Hill exponent %s must be ≥ 1, got %g", c.name, c.v)
		}
	}

	if !(p.DWFWRatioMax > p.DWFWRatioBase) {
		return fmt.Errorf("luma: dw_fw_ratio_max (%g) must exceed dw_fw_ratio_base (%g)",
			p.DWFWRatioMax, p.DWFWRatioBase)
	}
	if p.GompertzThreshold <= 0 || p.GompertzThreshold >= 24 {
		return fmt.Errorf("luma: gompertz_threshold must lie in (0,24) hours, got %g",
			p.GompertzThreshold)
	}
	return nil
}

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

// Package sunmodel implements the Sun et al. mechanistic lettuce
// carbon-allocation model as a LUMA growth provider. Three states
// evolve: structural dry mass, a non-structural carbon buffer, and
// leaf area index. Canopy photosynthesis is computed from leaf-level
// CO2- and light-limited assimilation integrated over canopy depth
// with three-point Gaussian quadrature.
package sunmodel

import (
	"math"

	"github.com/cropmodel/luma"
)

const eps = 1e-9

// Params holds the physiological constants of the Sun model. All
// values are from the published calibration for butterhead lettuce in
// controlled environments.
type Params struct {
	MCO2     float64 `toml:"M_CO2" desc:"Molar mass of CO2" units:"kg/mol"`
	Rg       float64 `toml:"Rg" desc:"Universal gas constant" units:"J/(mol·K)"`
	T0K      float64 `toml:"T0_K" desc:"Zero Celsius" units:"K"`
	CAlpha   float64 `toml:"c_alpha" desc:"Photosynthetic conversion efficiency" units:"-"`
	CBeta    float64 `toml:"c_beta" desc:"Growth conversion efficiency" units:"-"`
	SigmaBuf float64 `toml:"sigma_buf" desc:"Buffer capacity as a fraction of structural mass" units:"-"`

	RGRMax20 float64 `toml:"RGR_max_20" desc:"Maximum relative growth rate at 20 °C" units:"1/s"`
	Q10Gr    float64 `toml:"Q10_gr" desc:"Q10 of growth" units:"-"`
	TcRGR    float64 `toml:"T_c_RGR" desc:"Temperature of peak growth" units:"°C"`

	CRd25Sh float64 `toml:"c_Rd_25_sh" desc:"Shoot maintenance respiration at 25 °C" units:"1/s"`
	CRd25R  float64 `toml:"c_Rd_25_r" desc:"Root maintenance respiration at 25 °C" units:"1/s"`
	Q10Rd   float64 `toml:"Q10_Rd" desc:"Q10 of respiration" units:"-"`

	CrI      float64 `toml:"cr_I" desc:"Canopy reflectance of shortwave radiation" units:"-"`
	CrPAR    float64 `toml:"cr_PAR" desc:"Canopy reflectance of PAR" units:"-"`
	KI       float64 `toml:"kI" desc:"Shortwave extinction coefficient" units:"-"`
	KPAR     float64 `toml:"kPAR" desc:"PAR extinction coefficient" units:"-"`
	SigmaPAR float64 `toml:"sigma_PAR" desc:"PAR fraction of shortwave radiation" units:"-"`

	SLARef  float64 `toml:"SLA_ref" desc:"Reference specific leaf area" units:"m²/kg"`
	IaLRef  float64 `toml:"Ia_L_ref" desc:"Reference absorbed irradiance per leaf layer" units:"W/m²"`
	XhRef   float64 `toml:"Xh_ref" desc:"Reference relative humidity" units:"0–1"`
	BetaI   float64 `toml:"beta_I" desc:"Irradiance sensitivity of SLA" units:"m²/W"`
	BetaXh  float64 `toml:"beta_Xh" desc:"Humidity sensitivity of SLA" units:"-"`
	CSigmaR1 float64 `toml:"c_sigma_r_1" desc:"Root fraction log coefficient" units:"-"`
	CSigmaR2 float64 `toml:"c_sigma_r_2" desc:"Root fraction offset" units:"-"`

	Epsilon0 float64 `toml:"epsilon_0" desc:"Quantum yield at high CO2" units:"kg/J"`
	GammaT20 float64 `toml:"Gamma_T20" desc:"CO2 compensation point at 20 °C" units:"ppm"`
	Q10Gamma float64 `toml:"Q10_Gamma" desc:"Q10 of the compensation point" units:"-"`

	Jmax25 float64 `toml:"Jmax_25" desc:"Maximum electron transport at 25 °C" units:"µmol/(m²·s)"`
	EJ     float64 `toml:"EJ" desc:"Activation energy of Jmax" units:"J/mol"`
	CH     float64 `toml:"cH" desc:"Deactivation enthalpy" units:"J/mol"`
	CS     float64 `toml:"cS" desc:"Entropy term" units:"J/(mol·K)"`
	T25K   float64 `toml:"T25_K" desc:"25 °C reference" units:"K"`

	CZeta   float64 `toml:"c_zeta" desc:"Stomatal resistance scaling" units:"-"`
	RH2OMin float64 `toml:"r_H2O_min" desc:"Minimum stomatal resistance to water vapor" units:"s/m"`
	Le      float64 `toml:"Le" desc:"Lewis number" units:"-"`
	Lf      float64 `toml:"lf" desc:"Characteristic leaf dimension" units:"m"`
	Va      float64 `toml:"va" desc:"Air speed over the canopy" units:"m/s"`
	Rt      float64 `toml:"rt" desc:"Residual transport resistance" units:"s/m"`
	CRc1    float64 `toml:"c_rc_1" desc:"Carboxylation resistance, quadratic term" units:"s/(m·°C²)"`
	CRc2    float64 `toml:"c_rc_2" desc:"Carboxylation resistance, linear term" units:"s/(m·°C)"`
	CRc3    float64 `toml:"c_rc_3" desc:"Carboxylation resistance, constant" units:"s/m"`
	RhoCO2T0 float64 `toml:"rho_CO2_T0" desc:"CO2 density at 0 °C" units:"kg/m³"`
}

// DefaultParams returns the published Sun model calibration.
func DefaultParams() Params {
	return Params{
		MCO2:     44e-3,
		Rg:       8.314,
		T0K:      273.15,
		CAlpha:   0.68,
		CBeta:    0.8,
		SigmaBuf: 0.2,

		RGRMax20: 1.54e-6,
		Q10Gr:    1.6,
		TcRGR:    25.0,

		CRd25Sh: 3.47e-7,
		CRd25R:  1.16e-7,
		Q10Rd:   2.0,

		CrI:      0.22,
		CrPAR:    0.07,
		KI:       0.48,
		KPAR:     0.9,
		SigmaPAR: 0.5,

		SLARef:   47.93,
		IaLRef:   50.3,
		XhRef:    0.75,
		BetaI:    -4.74e-3,
		BetaXh:   0.912,
		CSigmaR1: -0.026,
		CSigmaR2: -0.076,

		Epsilon0: 17e-9,
		GammaT20: 40.0,
		Q10Gamma: 2.0,

		Jmax25: 210.15,
		EJ:     3.7e4,
		CH:     2.2e5,
		CS:     710.0,
		T25K:   298.15,

		CZeta:   1.6,
		RH2OMin: 82.0,
		Le:      1.47,
		Lf:      0.1,
		Va:      0.09,
		Rt:      50.0,
		CRc1:    0.315,
		CRc2:    -27.35,
		CRc3:    790.7,
		RhoCO2T0: 1.98,
	}
}

// SunModel implements luma.GrowthModel.
type SunModel struct {
	Params Params
}

// New returns a Sun model with the published parameterization.
func New() *SunModel {
	return &SunModel{Params: DefaultParams()}
}

// NewWithParams returns a Sun model with custom parameters.
func NewWithParams(p Params) *SunModel {
	return &SunModel{Params: p}
}

// Name returns the name of the growth model.
func (m *SunModel) Name() string { return "sun-carbon-allocation" }

// rootFraction returns the dry-mass fraction allocated to roots,
// declining logarithmically with plant size within [0.05, 0.35].
func (m *SunModel) rootFraction(plantDW float64) float64 {
	p := &m.Params
	sr := p.CSigmaR1*math.Log(plantDW+eps) + p.CSigmaR2
	return math.Min(math.Max(sr, 0.05), 0.35)
}

// maintenanceRespiration returns R_d [kg/(m²·s)] for the canopy.
func (m *SunModel) maintenanceRespiration(xd, sr, tc float64) float64 {
	p := &m.Params
	return (p.CRd25Sh*(1-sr) + p.CRd25R*sr) * xd * math.Pow(p.Q10Rd, (tc-25)/10)
}

// Rates evaluates the three-state Sun model. UVA morphology, stress
// and carbon competition are layered on by the caller.
func (m *SunModel) Rates(s luma.GrowthState, c luma.Conditions) (dXd, dCbuf, dLAI float64) {
	p := &m.Params

	xd := math.Max(s.Xd, eps)
	cbuf := math.Max(s.Cbuf, 0)
	lai := math.Max(s.LAI, eps)

	i := c.Irradiance
	tc := c.AirTemp
	xcPPM := c.CO2
	xh := c.RH
	tcK := tc + p.T0K

	// Allocation and specific leaf area.
	plantDW := xd / c.PlantDensity
	sr := m.rootFraction(plantDW)
	iAbs := (1 - p.CrI) * i * (1 - math.Exp(-p.KI*lai))
	iaPerLayer := iAbs / (lai + eps)
	fISLA := 1 / (1 + p.BetaI*(p.IaLRef-iaPerLayer))
	fXhSLA := 1 / (1 + p.BetaXh*(p.XhRef-xh))
	sla := p.SLARef * fISLA * fXhSLA

	// CO2 compensation point and quantum yield.
	gamma := p.GammaT20 * math.Pow(p.Q10Gamma, (tc-20)/10)
	quantumYield := p.Epsilon0 * (xcPPM - gamma) / (xcPPM + 2*gamma + eps)

	// Light-saturated assimilation: the lesser of the electron
	// transport limit (Arrhenius with high-temperature deactivation)
	// and the CO2 diffusion limit through the resistance chain.
	jmax := p.Jmax25 * math.Exp(p.EJ*(tcK-p.T25K)/(tcK*p.Rg*p.T25K)) *
		(1 + math.Exp((p.CS*p.T25K-p.CH)/(p.Rg*p.T25K))) /
		(1 + math.Exp((p.CS*tcK-p.CH)/(p.Rg*tcK)) + eps)
	alMM := p.MCO2 * jmax / 4.0 * 1e-6

	rc := math.Max(p.CRc1*tc*tc+p.CRc2*tc+p.CRc3, 10.0)
	// Leaf and air temperature are taken equal, so the boundary-layer
	// resistance depends only on the air speed term.
	rb := math.Pow(p.Le, 0.67) * 1174 * math.Sqrt(p.Lf) /
		(math.Pow(207*p.Va*p.Va, 0.25) + eps)

	es := math.Pow(10, 2.7857+7.5*tc/(237.3+tc))
	ecA := es * (1 - xh)
	fXhS := 4.0 / (math.Pow(1+255*math.Exp(-0.54e-2*ecA), 0.25) + eps)
	var fXcS float64
	switch {
	case i > 3 && xcPPM < 1100:
		fXcS = 1 + 6.1e-7*(xcPPM-200)*(xcPPM-200)
	case i > 3:
		fXcS = 1.5
	default:
		fXcS = 1.0
	}
	var fTcS float64
	if i <= 3 {
		fTcS = 1 + 0.5e-2*(tc-33.6)*(tc-33.6)
	} else {
		fTcS = 1 + 2.3e-2*(tc-24.5)*(tc-24.5)
	}
	fIS := (iAbs/(2*lai+eps) + 4.3) / (iAbs/(2*lai+eps) + 0.54)
	rs := p.CZeta * p.RH2OMin * fIS * fTcS * fXcS * fXhS
	rCO2 := rs + rb + rc + p.Rt

	rho := p.RhoCO2T0 * p.T0K / (tcK + eps)
	alCN := math.Max(rho*(xcPPM-gamma)/(rCO2+eps)*1e-6, 0)
	alSatNet := math.Min(alCN, alMM)
	rdLeaf := m.maintenanceRespiration(xd, sr, tc)
	alSat := math.Max(alSatNet+(rdLeaf/(lai+eps))/p.CAlpha, 0)

	// Canopy photosynthesis by three-point Gaussian quadrature over
	// canopy depth.
	l1 := (0.5 - math.Sqrt(0.15)) * lai
	l2 := 0.5 * lai
	l3 := (0.5 + math.Sqrt(0.15)) * lai
	parAt := func(l float64) float64 {
		return p.KPAR * (1 - p.CrPAR) * i * p.SigmaPAR * math.Exp(-p.KPAR*l)
	}
	assim := func(par float64) float64 {
		return math.Max(alSat*(1-math.Exp(-quantumYield*par/(alSat+eps))), 0)
	}
	alC := (assim(parAt(l1)) + 1.6*assim(parAt(l2)) + assim(parAt(l3))) / 3.6
	aC := alC * lai

	// Carbon fluxes.
	rd := m.maintenanceRespiration(xd, sr, tc)
	cbufMax := p.SigmaBuf * xd
	dT := tc - 20
	if tc > p.TcRGR {
		dT = -dT
	}
	rgrMax := p.RGRMax20 * math.Pow(p.Q10Gr, dT/10)

	// Buffer overflow: once the buffer is full, assimilation is
	// throttled to what respiration and growth can take out.
	hBuf := 1.0
	if cbuf >= cbufMax {
		hBuf = math.Min((rd+rgrMax*xd/p.CBeta)/(p.CAlpha*aC+eps), 1.0)
	}

	net := p.CAlpha*aC*hBuf - rd
	dXd = p.CBeta * net
	dCbuf = net - rgrMax*xd/p.CBeta
	dLAI = dXd * (1 - sr) * sla

	// Boundary guards against solver overshoot near empty pools.
	const cbufMinThreshold = 1e-5
	if cbuf <= cbufMinThreshold && dCbuf < 0 {
		damping := math.Max(0, cbuf/cbufMinThreshold)
		dCbuf *= damping * damping
	}
	if cbuf >= cbufMax && dCbuf > 0 {
		dCbuf = 0
	}
	if xd < 0.03/1000*c.PlantDensity && dXd < 0 {
		dXd = 0
	}
	if lai < 0.01 && dLAI < 0 {
		dLAI = 0
	}
	return dXd, dCbuf, dLAI
}

package calculator

import (
	"math"

	"pipecalc/model"
)

// 雷诺数分界
const (
	LaminarLimit   = 2300
	TurbulentLimit = 4000
)

type FlowRegime int

const (
	Laminar      FlowRegime = iota // 层流
	Transitional                   // 过渡流
	Turbulent                      // 湍流
)

func (r FlowRegime) String() string {
	switch r {
	case Laminar:
		return "Laminar"
	case Transitional:
		return "Transitional"
	default:
		return "Turbulent"
	}
}

// Description 报告中使用的描述
func (r FlowRegime) Description() string {
	switch r {
	case Laminar:
		return "Laminar (smooth, organized)"
	case Transitional:
		return "Transitional (unstable)"
	default:
		return "Turbulent (chaotic, faster mixing)"
	}
}

// FlowArea returns the internal cross-section area in m², A = π × D² / 4.
func FlowArea(diameterM float64) (float64, error) {
	if err := mustPositive("diameter_m", diameterM); err != nil {
		return 0, err
	}
	return math.Pi * diameterM * diameterM / 4, nil
}

// FlowVelocity returns the mean velocity in m/s from a volumetric flow rate
// in m³/s and an internal diameter in m, V = Q / A.
func FlowVelocity(flowRateM3s, diameterM float64) (float64, error) {
	if err := mustPositive("flow_rate_m3_s", flowRateM3s); err != nil {
		return 0, err
	}
	area, err := FlowArea(diameterM)
	if err != nil {
		return 0, err
	}
	return flowRateM3s / area, nil
}

// VelocityFromHourlyFlow is FlowVelocity with the units used on process
// datasheets: flow rate in m³/h, internal diameter in mm.
func VelocityFromHourlyFlow(flowRateM3h, diameterMM float64) (float64, error) {
	if err := mustPositive("flow_rate_m3_h", flowRateM3h); err != nil {
		return 0, err
	}
	if err := mustPositive("diameter_mm", diameterMM); err != nil {
		return 0, err
	}
	return FlowVelocity(flowRateM3h/model.SecPerH, diameterMM/model.MMPerM)
}

// ReynoldsNumber Re = (ρ × V × D) / μ
//
// velocity m/s, diameterM m, densityKgM3 kg/m³, viscosityPaS 动力粘度 Pa·s
func ReynoldsNumber(velocity, diameterM, densityKgM3, viscosityPaS float64) (float64, error) {
	if err := mustNonNegative("velocity_ms", velocity); err != nil {
		return 0, err
	}
	if err := mustPositive("diameter_m", diameterM); err != nil {
		return 0, err
	}
	if err := mustPositive("density_kg_m3", densityKgM3); err != nil {
		return 0, err
	}
	if err := mustPositive("viscosity_pa_s", viscosityPaS); err != nil {
		return 0, err
	}
	return densityKgM3 * velocity * diameterM / viscosityPaS, nil
}

func ClassifyFlowRegime(re float64) FlowRegime {
	if re < LaminarLimit {
		return Laminar
	} else if re < TurbulentLimit {
		return Transitional
	}
	return Turbulent
}

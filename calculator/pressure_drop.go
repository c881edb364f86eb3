package calculator

import (
	"math"

	"pipecalc/model"
)

// 压降组成
// 1. 沿程摩阻损失 (Darcy-Weisbach)
// 2. 高程变化 (静压)
// 3. 局部损失, 按沿程损失的比例估算

// FrictionPressureDrop ΔP = f × (L/D) × (ρ × V² / 2), 单位 Pa
func FrictionPressureDrop(frictionFactor, lengthM, diameterM, velocityMs, densityKgM3 float64) (float64, error) {
	if err := mustNonNegative("friction_factor", frictionFactor); err != nil {
		return 0, err
	}
	if err := mustNonNegative("length_m", lengthM); err != nil {
		return 0, err
	}
	if err := mustPositive("diameter_m", diameterM); err != nil {
		return 0, err
	}
	if err := mustNonNegative("velocity_ms", velocityMs); err != nil {
		return 0, err
	}
	if err := mustPositive("density_kg_m3", densityKgM3); err != nil {
		return 0, err
	}
	return frictionFactor * (lengthM / diameterM) * (densityKgM3 * velocityMs * velocityMs / 2), nil
}

// ElevationPressureChange ΔP = ρ × g × Δh, 单位 Pa
//
// 上坡为正(需要额外压力)，下坡为负
func ElevationPressureChange(elevationGainM, densityKgM3 float64) (float64, error) {
	if err := mustFinite("elevation_gain_m", elevationGainM); err != nil {
		return 0, err
	}
	if err := mustPositive("density_kg_m3", densityKgM3); err != nil {
		return 0, err
	}
	return densityKgM3 * model.GAcceleration * elevationGainM, nil
}

// TotalPressureDrop 总压降 = 沿程 + 高程 + 局部损失, 返回 (总压降, 局部损失)
func TotalPressureDrop(frictionDpPa, elevationDpPa, minorLossFraction float64) (float64, float64, error) {
	if err := mustFinite("friction_dp_pa", frictionDpPa); err != nil {
		return 0, 0, err
	}
	if err := mustFinite("elevation_dp_pa", elevationDpPa); err != nil {
		return 0, 0, err
	}
	if err := mustNonNegative("minor_loss_fraction", minorLossFraction); err != nil {
		return 0, 0, err
	}
	minor := math.Abs(frictionDpPa) * minorLossFraction
	return frictionDpPa + elevationDpPa + minor, minor, nil
}

// PressureGradient 换算为 bar/100km
func PressureGradient(pressureDropPa, lengthKM float64) (float64, error) {
	if err := mustFinite("pressure_drop_pa", pressureDropPa); err != nil {
		return 0, err
	}
	if err := mustPositive("length_km", lengthKM); err != nil {
		return 0, err
	}
	return PaToBar(pressureDropPa) / lengthKM * 100, nil
}

package calculator

import (
	"fmt"
)

// 管径与壁厚
// 1. 按流速选择管径
// 2. 按压力和材质强度确定壁厚
// 3. 按 ASME B31 设计系数校核

// InternalDiameter ID = OD - 2 × t, 单位 mm
func InternalDiameter(outsideDiameterMM, wallThicknessMM float64) (float64, error) {
	if err := mustPositive("outside_diameter_mm", outsideDiameterMM); err != nil {
		return 0, err
	}
	if err := mustNonNegative("wall_thickness_mm", wallThicknessMM); err != nil {
		return 0, err
	}
	id := outsideDiameterMM - 2*wallThicknessMM
	if id <= 0 {
		return 0, invalid("wall_thickness_mm", wallThicknessMM, "must be less than half the outside diameter")
	}
	return id, nil
}

// RequiredWallThickness 最小壁厚(不含腐蚀裕量) t = (P × D) / (2 × F × SMYS), 单位 mm
//
// P 设计压力 MPa, D 外径 mm, SMYS MPa, F 设计系数
func RequiredWallThickness(pressureMPa, outsideDiameterMM, smysMPa, designFactor float64) (float64, error) {
	if err := mustNonNegative("pressure_mpa", pressureMPa); err != nil {
		return 0, err
	}
	if err := mustPositive("outside_diameter_mm", outsideDiameterMM); err != nil {
		return 0, err
	}
	if err := mustPositive("smys_mpa", smysMPa); err != nil {
		return 0, err
	}
	if err := mustPositive("design_factor", designFactor); err != nil {
		return 0, err
	}
	return pressureMPa * outsideDiameterMM / (2 * designFactor * smysMPa), nil
}

// HoopStress 环向应力 σ = (P × D) / (2 × t), 单位 MPa
func HoopStress(pressureMPa, outsideDiameterMM, wallThicknessMM float64) (float64, error) {
	if err := mustNonNegative("pressure_mpa", pressureMPa); err != nil {
		return 0, err
	}
	if err := mustPositive("outside_diameter_mm", outsideDiameterMM); err != nil {
		return 0, err
	}
	if err := mustPositive("wall_thickness_mm", wallThicknessMM); err != nil {
		return 0, err
	}
	return pressureMPa * outsideDiameterMM / (2 * wallThicknessMM), nil
}

type ContainmentCheck struct {
	Safe               bool
	MarginPercent      float64 // 不安全时为 0
	HoopStressMPa      float64
	AllowableStressMPa float64
	Message            string
}

// CheckPressureContainment 环向应力 ≤ F × SMYS 时安全
func CheckPressureContainment(hoopStressMPa, smysMPa, designFactor float64) (ContainmentCheck, error) {
	if err := mustNonNegative("hoop_stress_mpa", hoopStressMPa); err != nil {
		return ContainmentCheck{}, err
	}
	if err := mustPositive("smys_mpa", smysMPa); err != nil {
		return ContainmentCheck{}, err
	}
	if err := mustPositive("design_factor", designFactor); err != nil {
		return ContainmentCheck{}, err
	}

	allowable := designFactor * smysMPa
	margin := (allowable - hoopStressMPa) / allowable * 100
	if margin < 0 {
		margin = 0
	}
	safe := hoopStressMPa <= allowable
	status := "✓ SAFE"
	if !safe {
		status = "✗ UNSAFE"
	}
	return ContainmentCheck{
		Safe:               safe,
		MarginPercent:      margin,
		HoopStressMPa:      hoopStressMPa,
		AllowableStressMPa: allowable,
		Message:            fmt.Sprintf("%s: Hoop stress %.2f MPa vs allowable %.2f MPa", status, hoopStressMPa, allowable),
	}, nil
}

package model

// 管线综合分析结果
type Analysis struct {
	Input               Input               `json:"input"`
	PipeDimensions      PipeDimensions      `json:"pipe_dimensions"`
	FlowProperties      FlowProperties      `json:"flow_properties"`
	Friction            Friction            `json:"friction"`
	PressureDrop        PressureDrop        `json:"pressure_drop"`
	OutletPressure      OutletPressure      `json:"outlet_pressure"`
	PressureContainment PressureContainment `json:"pressure_containment"`
	VelocityCheck       VelocityCheck       `json:"velocity_check"`
}

// 输入参数
type Input struct {
	FlowRateM3s          float64 `json:"flow_rate_m3_s"`
	PipeODMM             float64 `json:"pipe_od_mm"`
	WallThicknessMM      float64 `json:"wall_thickness_mm"`
	PipeLengthKM         float64 `json:"pipe_length_km"`
	ElevationStartM      float64 `json:"elevation_start"`
	ElevationEndM        float64 `json:"elevation_end"`
	OperatingPressureBar float64 `json:"operating_pressure_bar"`
	PipeGrade            string  `json:"pipe_grade"`
}

// 管道尺寸
type PipeDimensions struct {
	OutsideDiameterMM  float64 `json:"outside_diameter_mm"`
	WallThicknessMM    float64 `json:"wall_thickness_mm"`
	InternalDiameterMM float64 `json:"internal_diameter_mm"`
	InternalDiameterM  float64 `json:"internal_diameter_m"`
}

// 流动参数
type FlowProperties struct {
	VelocityMs     float64 `json:"velocity_ms"`
	ReynoldsNumber float64 `json:"reynolds_number"`
	FlowRegime     string  `json:"flow_regime"`
	FluidDensity   float64 `json:"fluid_density"`
	FluidViscosity float64 `json:"fluid_viscosity"`
}

// 摩擦系数
type Friction struct {
	FrictionFactor    float64 `json:"friction_factor"`
	CalculationMethod string  `json:"calculation_method"`
	PipeRoughnessM    float64 `json:"pipe_roughness_m"`
}

// 压降
type PressureDrop struct {
	FrictionLossPa       float64 `json:"friction_loss_pa"`
	FrictionLossBar      float64 `json:"friction_loss_bar"`
	ElevationChangePa    float64 `json:"elevation_change_pa"`
	ElevationChangeBar   float64 `json:"elevation_change_bar"`
	MinorLossesPa        float64 `json:"minor_losses_pa"`
	MinorLossesBar       float64 `json:"minor_losses_bar"`
	TotalPressureDropPa  float64 `json:"total_pressure_drop_pa"`
	TotalPressureDropBar float64 `json:"total_pressure_drop_bar"`
	BarPer100KM          float64 `json:"bar_per_100km"`
}

// 出口压力
type OutletPressure struct {
	InletPressureBar    float64 `json:"inlet_pressure_bar"`
	OutletPressureBar   float64 `json:"outlet_pressure_bar"`
	PressureLossPercent float64 `json:"pressure_loss_percent"`
}

// 承压校核
type PressureContainment struct {
	DesignPressureBar   float64 `json:"design_pressure_bar"`
	DesignPressureMPa   float64 `json:"design_pressure_mpa"`
	HoopStressMPa       float64 `json:"hoop_stress_mpa"`
	AllowableStressMPa  float64 `json:"allowable_stress_mpa"`
	Safe                bool    `json:"safe"`
	SafetyMarginPercent float64 `json:"safety_margin_percent"`
	ComplianceMessage   string  `json:"compliance_message"`
}

// 流速校核
type VelocityCheck struct {
	VelocityMs    float64 `json:"velocity_ms"`
	VelocityLimit float64 `json:"velocity_limit_typical_ms"`
	WithinLimit   bool    `json:"within_limit"`
	Warning       string  `json:"warning,omitempty"`
}

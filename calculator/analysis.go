package calculator

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"pipecalc/model"
	"pipecalc/pipeline"
	"pipecalc/standard"
)

// Analyze 管线综合分析
//
// 依次计算管道尺寸、流速与流态、摩擦系数、压降、出口压力、承压校核和流速校核。
// 任一步骤输入非法时返回 InvalidInputError, 配置非法时返回普通错误。
func Analyze(p *pipeline.Pipeline, cfg Config) (*model.Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	line, fluid, op := p.Line, p.Fluid, p.Operating
	res := &model.Analysis{Input: p.Input()}

	// 1. 管道尺寸
	idMM, err := InternalDiameter(line.OutsideDiameterMM, line.WallThicknessMM)
	if err != nil {
		return nil, fmt.Errorf("pipe dimensions: %w", err)
	}
	idM := MMToM(idMM)
	res.PipeDimensions = model.PipeDimensions{
		OutsideDiameterMM:  line.OutsideDiameterMM,
		WallThicknessMM:    line.WallThicknessMM,
		InternalDiameterMM: idMM,
		InternalDiameterM:  idM,
	}

	// 2. 流速、雷诺数
	velocity, err := FlowVelocity(op.FlowRateM3s, idM)
	if err != nil {
		return nil, fmt.Errorf("flow velocity: %w", err)
	}
	re, err := ReynoldsNumber(velocity, idM, fluid.DensityKgM3, fluid.ViscosityPaS)
	if err != nil {
		return nil, fmt.Errorf("reynolds number: %w", err)
	}
	res.FlowProperties = model.FlowProperties{
		VelocityMs:     velocity,
		ReynoldsNumber: re,
		FlowRegime:     ClassifyFlowRegime(re).Description(),
		FluidDensity:   fluid.DensityKgM3,
		FluidViscosity: fluid.ViscosityPaS,
	}

	// 3. 摩擦系数
	f, method, err := frictionFactor(re, line.RoughnessM, idM, cfg)
	if err != nil {
		return nil, fmt.Errorf("friction factor: %w", err)
	}
	res.Friction = model.Friction{
		FrictionFactor:    f,
		CalculationMethod: method,
		PipeRoughnessM:    line.RoughnessM,
	}

	// 4. 压降
	dpFriction, err := FrictionPressureDrop(f, p.LengthM(), idM, velocity, fluid.DensityKgM3)
	if err != nil {
		return nil, fmt.Errorf("friction pressure drop: %w", err)
	}
	dpElevation, err := ElevationPressureChange(p.ElevationChange(), fluid.DensityKgM3)
	if err != nil {
		return nil, fmt.Errorf("elevation pressure change: %w", err)
	}
	dpTotal, dpMinor, err := TotalPressureDrop(dpFriction, dpElevation, cfg.MinorLossFraction)
	if err != nil {
		return nil, fmt.Errorf("total pressure drop: %w", err)
	}
	gradient, err := PressureGradient(dpFriction, line.LengthKM)
	if err != nil {
		return nil, fmt.Errorf("pressure gradient: %w", err)
	}
	res.PressureDrop = model.PressureDrop{
		FrictionLossPa:       dpFriction,
		FrictionLossBar:      PaToBar(dpFriction),
		ElevationChangePa:    dpElevation,
		ElevationChangeBar:   PaToBar(dpElevation),
		MinorLossesPa:        dpMinor,
		MinorLossesBar:       PaToBar(dpMinor),
		TotalPressureDropPa:  dpTotal,
		TotalPressureDropBar: PaToBar(dpTotal),
		BarPer100KM:          gradient,
	}

	// 5. 出口压力，不低于 0
	if err := mustNonNegative("operating_pressure_bar", op.PressureBar); err != nil {
		return nil, fmt.Errorf("outlet pressure: %w", err)
	}
	inletPa := BarToPa(op.PressureBar)
	outletBar := PaToBar(inletPa - dpTotal)
	if outletBar < 0 {
		outletBar = 0
	}
	lossPercent := 0.0
	if inletPa > 0 {
		lossPercent = dpTotal / inletPa * 100
	}
	res.OutletPressure = model.OutletPressure{
		InletPressureBar:    op.PressureBar,
		OutletPressureBar:   outletBar,
		PressureLossPercent: lossPercent,
	}

	// 6. 承压校核
	grade, err := standard.Grade(line.Grade)
	if err != nil {
		return nil, fmt.Errorf("pressure containment: %w", &InvalidInputError{Param: "grade", Value: line.Grade, Reason: fmt.Sprintf("%v (known: %s)", err, strings.Join(standard.Grades(), ", "))})
	}
	designFactor, err := standard.DesignFactor(cfg.DesignCode, cfg.LocationClass)
	if err != nil {
		return nil, fmt.Errorf("pressure containment: %w", err)
	}
	designBar := op.PressureBar * cfg.DesignPressureFactor
	designMPa := BarToMPa(designBar)
	hoop, err := HoopStress(designMPa, line.OutsideDiameterMM, line.WallThicknessMM)
	if err != nil {
		return nil, fmt.Errorf("hoop stress: %w", err)
	}
	check, err := CheckPressureContainment(hoop, grade.SMYS, designFactor)
	if err != nil {
		return nil, fmt.Errorf("pressure containment: %w", err)
	}
	res.PressureContainment = model.PressureContainment{
		DesignPressureBar:   designBar,
		DesignPressureMPa:   designMPa,
		HoopStressMPa:       hoop,
		AllowableStressMPa:  check.AllowableStressMPa,
		Safe:                check.Safe,
		SafetyMarginPercent: check.MarginPercent,
		ComplianceMessage:   check.Message,
	}

	// 7. 流速校核
	res.VelocityCheck = model.VelocityCheck{
		VelocityMs:    velocity,
		VelocityLimit: cfg.VelocityLimit,
		WithinLimit:   velocity <= cfg.VelocityLimit,
	}
	if velocity > cfg.VelocityLimit {
		res.VelocityCheck.Warning = fmt.Sprintf("⚠ High velocity (%.2f m/s). Consider larger diameter.", velocity)
	}

	log.WithFields(log.Fields{
		"pipeline":  p.Name,
		"velocity":  velocity,
		"re":        re,
		"method":    method,
		"totalBar":  res.PressureDrop.TotalPressureDropBar,
		"outletBar": outletBar,
		"safe":      check.Safe,
	}).Debug("管线分析完成")
	return res, nil
}

package pipeline

import (
	log "github.com/sirupsen/logrus"
	"pipecalc/model"
)

// 管线的规格 + 介质 + 运行参数

// 参数单位
// 1. 管径、壁厚 mm
// 2. 管线长度 km，高程 m
// 3. 粗糙度 m
// 4. 流量 m³/s，压力 bar

type Pipeline struct {
	Name      string
	Line      Line
	Fluid     Fluid
	Operating Operating
}

// 管道几何与材质
type Line struct {
	OutsideDiameterMM float64 // 外径
	WallThicknessMM   float64 // 壁厚
	LengthKM          float64 // 长度
	ElevationStartM   float64 // 起点高程
	ElevationEndM     float64 // 终点高程
	RoughnessM        float64 // 绝对粗糙度
	Grade             string  // API 5L 等级
}

// 输送介质
type Fluid struct {
	Name         string
	DensityKgM3  float64 // 密度
	ViscosityPaS float64 // 动力粘度
}

// 运行参数
type Operating struct {
	FlowRateM3s float64 // 体积流量
	PressureBar float64 // 入口运行压力
}

func New(name string) *Pipeline {
	return &Pipeline{Name: name}
}

func (p *Pipeline) SetLine(line Line) {
	p.Line = line
	log.WithFields(log.Fields{
		"pipeline":          p.Name,
		"OutsideDiameterMM": line.OutsideDiameterMM,
		"WallThicknessMM":   line.WallThicknessMM,
		"LengthKM":          line.LengthKM,
		"ElevationStartM":   line.ElevationStartM,
		"ElevationEndM":     line.ElevationEndM,
		"RoughnessM":        line.RoughnessM,
		"Grade":             line.Grade,
	}).Info("设置管道参数")
}

func (p *Pipeline) SetFluid(fluid Fluid) {
	p.Fluid = fluid
	log.WithFields(log.Fields{
		"pipeline":     p.Name,
		"Fluid":        fluid.Name,
		"DensityKgM3":  fluid.DensityKgM3,
		"ViscosityPaS": fluid.ViscosityPaS,
	}).Info("设置介质参数")
}

func (p *Pipeline) SetOperating(op Operating) {
	p.Operating = op
	log.WithFields(log.Fields{
		"pipeline":    p.Name,
		"FlowRateM3s": op.FlowRateM3s,
		"PressureBar": op.PressureBar,
	}).Info("设置运行参数")
}

// 管线长度 m
func (p *Pipeline) LengthM() float64 {
	return p.Line.LengthKM * model.MPerKM
}

// 高程变化，上坡为正
func (p *Pipeline) ElevationChange() float64 {
	return p.Line.ElevationEndM - p.Line.ElevationStartM
}

// 输入参数快照
func (p *Pipeline) Input() model.Input {
	return model.Input{
		FlowRateM3s:          p.Operating.FlowRateM3s,
		PipeODMM:             p.Line.OutsideDiameterMM,
		WallThicknessMM:      p.Line.WallThicknessMM,
		PipeLengthKM:         p.Line.LengthKM,
		ElevationStartM:      p.Line.ElevationStartM,
		ElevationEndM:        p.Line.ElevationEndM,
		OperatingPressureBar: p.Operating.PressureBar,
		PipeGrade:            p.Line.Grade,
	}
}

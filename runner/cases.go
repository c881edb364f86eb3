package runner

import (
	"pipecalc/pipeline"
	"pipecalc/standard"
)

type Style int

const (
	Full  Style = iota // 分节的完整报告
	Brief              // 只输出关键结果
)

// Case 一个示例算例
type Case struct {
	Name  string
	Title string
	Style Style
	Build func() (*pipeline.Pipeline, error)
}

// 12" 原油管线, X52, 新钢管, 上坡 100 m, 入口 20 bar
func crudeOilLine(name string, lengthKM float64) (*pipeline.Pipeline, error) {
	roughness, err := standard.PipeRoughness("new_steel")
	if err != nil {
		return nil, err
	}
	crude, err := standard.Fluid("crude_oil")
	if err != nil {
		return nil, err
	}

	p := pipeline.New(name)
	p.SetLine(pipeline.Line{
		OutsideDiameterMM: 323.9, // 12.75" (12" nominal)
		WallThicknessMM:   6.4,   // 1/4"
		LengthKM:          lengthKM,
		ElevationStartM:   0,
		ElevationEndM:     100,
		RoughnessM:        roughness.ValueM(),
		Grade:             "X52",
	})
	p.SetFluid(pipeline.Fluid{
		Name:         crude.Name,
		DensityKgM3:  crude.DefaultDensity,
		ViscosityPaS: 0.001, // 1 cP
	})
	p.SetOperating(pipeline.Operating{
		FlowRateM3s: 0.05, // 50 L/s
		PressureBar: 20,
	})
	return p, nil
}

// CrudeOilLine30KM 30 km 原油管线, 完整报告
func CrudeOilLine30KM() Case {
	return Case{
		Name:  "calculations",
		Title: "PIPELINE ANALYSIS EXAMPLE - Educational Tool",
		Style: Full,
		Build: func() (*pipeline.Pipeline, error) {
			return crudeOilLine("12in crude oil 30km", 30)
		},
	}
}

// LongerLine50KM 同一管线延长到 50 km, 简要报告
func LongerLine50KM() Case {
	return Case{
		Name:  "my_first_case",
		Title: "CASE 02 - LONGER 50 KM LINE",
		Style: Brief,
		Build: func() (*pipeline.Pipeline, error) {
			return crudeOilLine("12in crude oil 50km", 50)
		},
	}
}

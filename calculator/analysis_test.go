package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pipecalc/pipeline"
)

// 12 寸原油管线, 30 km, 上坡 100 m
func newCrudeLine(lengthKM float64) *pipeline.Pipeline {
	p := pipeline.New("test")
	p.SetLine(pipeline.Line{
		OutsideDiameterMM: 323.9,
		WallThicknessMM:   6.4,
		LengthKM:          lengthKM,
		ElevationStartM:   0,
		ElevationEndM:     100,
		RoughnessM:        0.045e-3,
		Grade:             "X52",
	})
	p.SetFluid(pipeline.Fluid{Name: "Crude Oil", DensityKgM3: 900, ViscosityPaS: 0.001})
	p.SetOperating(pipeline.Operating{FlowRateM3s: 0.05, PressureBar: 20})
	return p
}

func TestAnalyze(t *testing.T) {
	res, err := Analyze(newCrudeLine(30), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 30.0, res.Input.PipeLengthKM)
	assert.InDelta(t, 311.1, res.PipeDimensions.InternalDiameterMM, 1e-9)
	assert.InDelta(t, 0.3111, res.PipeDimensions.InternalDiameterM, 1e-12)

	assert.InDelta(t, 0.657779, res.FlowProperties.VelocityMs, 1e-6)
	assert.InDelta(t, 184171.58, res.FlowProperties.ReynoldsNumber, 0.01)
	assert.Equal(t, "Turbulent (chaotic, faster mixing)", res.FlowProperties.FlowRegime)

	assert.Equal(t, MethodColebrook, res.Friction.CalculationMethod)
	assert.InDelta(t, 0.016935, res.Friction.FrictionFactor, 1e-6)

	pd := res.PressureDrop
	assert.InDelta(t, 3.17965, pd.FrictionLossBar, 1e-4)
	assert.InDelta(t, 8.829, pd.ElevationChangeBar, 1e-9)
	assert.InDelta(t, 0.317965, pd.MinorLossesBar, 1e-5)
	assert.InDelta(t, 12.32661, pd.TotalPressureDropBar, 1e-4)
	assert.InDelta(t, 10.5988, pd.BarPer100KM, 1e-3)
	assert.InDelta(t, pd.FrictionLossPa+pd.ElevationChangePa+pd.MinorLossesPa, pd.TotalPressureDropPa, 1e-6)

	assert.Equal(t, 20.0, res.OutletPressure.InletPressureBar)
	assert.InDelta(t, 7.67339, res.OutletPressure.OutletPressureBar, 1e-4)
	assert.InDelta(t, 61.633, res.OutletPressure.PressureLossPercent, 1e-2)

	pc := res.PressureContainment
	assert.InDelta(t, 30, pc.DesignPressureBar, 1e-12)
	assert.InDelta(t, 3, pc.DesignPressureMPa, 1e-12)
	assert.InDelta(t, 75.9140625, pc.HoopStressMPa, 1e-9)
	assert.InDelta(t, 258.48, pc.AllowableStressMPa, 1e-9)
	assert.True(t, pc.Safe)
	assert.InDelta(t, 70.6306, pc.SafetyMarginPercent, 1e-4)

	assert.True(t, res.VelocityCheck.WithinLimit)
	assert.Equal(t, 4.0, res.VelocityCheck.VelocityLimit)
	assert.Empty(t, res.VelocityCheck.Warning)
}

func TestAnalyze_LongerLine(t *testing.T) {
	short, err := Analyze(newCrudeLine(30), DefaultConfig())
	require.NoError(t, err)
	long, err := Analyze(newCrudeLine(50), DefaultConfig())
	require.NoError(t, err)

	assert.InDelta(t, 14.65836, long.PressureDrop.TotalPressureDropBar, 1e-4)
	assert.InDelta(t, 5.34164, long.OutletPressure.OutletPressureBar, 1e-4)
	// 单位长度压降与长度无关
	assert.InDelta(t, short.PressureDrop.BarPer100KM, long.PressureDrop.BarPer100KM, 1e-9)
	assert.Greater(t, long.PressureDrop.FrictionLossPa, short.PressureDrop.FrictionLossPa)
}

func TestAnalyze_Deterministic(t *testing.T) {
	a, err := Analyze(newCrudeLine(30), DefaultConfig())
	require.NoError(t, err)
	b, err := Analyze(newCrudeLine(30), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAnalyze_HighVelocity(t *testing.T) {
	p := newCrudeLine(30)
	p.SetOperating(pipeline.Operating{FlowRateM3s: 0.5, PressureBar: 20})
	res, err := Analyze(p, DefaultConfig())
	require.NoError(t, err)
	assert.False(t, res.VelocityCheck.WithinLimit)
	assert.Contains(t, res.VelocityCheck.Warning, "High velocity")
	// 出口压力不低于 0
	assert.Equal(t, 0.0, res.OutletPressure.OutletPressureBar)
}

func TestAnalyze_Unsafe(t *testing.T) {
	p := newCrudeLine(30)
	p.SetOperating(pipeline.Operating{FlowRateM3s: 0.05, PressureBar: 120})
	res, err := Analyze(p, DefaultConfig())
	require.NoError(t, err)
	assert.False(t, res.PressureContainment.Safe)
	assert.Equal(t, 0.0, res.PressureContainment.SafetyMarginPercent)
}

func TestAnalyze_InvalidInput(t *testing.T) {
	cases := map[string]func(p *pipeline.Pipeline){
		"zero diameter":      func(p *pipeline.Pipeline) { p.Line.OutsideDiameterMM = 0 },
		"wall too thick":     func(p *pipeline.Pipeline) { p.Line.WallThicknessMM = 200 },
		"zero flow":          func(p *pipeline.Pipeline) { p.Operating.FlowRateM3s = 0 },
		"zero density":       func(p *pipeline.Pipeline) { p.Fluid.DensityKgM3 = 0 },
		"zero viscosity":     func(p *pipeline.Pipeline) { p.Fluid.ViscosityPaS = 0 },
		"zero length":        func(p *pipeline.Pipeline) { p.Line.LengthKM = 0 },
		"negative roughness": func(p *pipeline.Pipeline) { p.Line.RoughnessM = -1 },
		"negative pressure":  func(p *pipeline.Pipeline) { p.Operating.PressureBar = -1 },
		"unknown grade":      func(p *pipeline.Pipeline) { p.Line.Grade = "X100" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := newCrudeLine(30)
			mutate(p)
			res, err := Analyze(p, DefaultConfig())
			assert.Nil(t, res)
			assert.True(t, IsInvalidInput(err), "got %v", err)
		})
	}
}

func TestAnalyze_UnknownDesignCode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DesignCode = "ASME B31.3"
	_, err := Analyze(newCrudeLine(30), cfg)
	require.Error(t, err)
	assert.False(t, IsInvalidInput(err))
}

func TestAnalyze_GasCodeLowersAllowable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DesignCode = "ASME B31.8"
	cfg.LocationClass = "location_class_3"
	res, err := Analyze(newCrudeLine(30), cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*359, res.PressureContainment.AllowableStressMPa, 1e-9)
}

func TestAnalyze_InvalidConfig(t *testing.T) {
	cases := map[string]func(c *Config){
		"negative design factor": func(c *Config) { c.DesignPressureFactor = -1 },
		"negative minor loss":    func(c *Config) { c.MinorLossFraction = -0.1 },
		"zero max iter":          func(c *Config) { c.ColebrookMaxIter = 0 },
		"negative velocity":      func(c *Config) { c.VelocityLimit = -1 },
		"zero tolerance":         func(c *Config) { c.ColebrookTolerance = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			res, err := Analyze(newCrudeLine(30), cfg)
			assert.Nil(t, res)
			require.Error(t, err)
			assert.False(t, IsInvalidInput(err), "got %v", err)
			assert.Contains(t, err.Error(), "config: ")
		})
	}
}

func TestAnalyze_UnknownGradeListsKnown(t *testing.T) {
	p := newCrudeLine(30)
	p.Line.Grade = "X100"
	_, err := Analyze(p, DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "known: X42, X52, X60, X65")
}

package calculator

import (
	"math"

	log "github.com/sirupsen/logrus"
)

// 相对粗糙度低于该值按水力光滑管处理
const SmoothPipeLimit = 0.00001

// 摩擦系数计算方法
const (
	MethodLaminar   = "Laminar"
	MethodBlasius   = "Blasius"
	MethodColebrook = "Colebrook-White"
)

// LaminarFrictionFactor Darcy 摩擦系数, 层流 f = 64 / Re
func LaminarFrictionFactor(re float64) (float64, error) {
	if err := mustPositive("reynolds_number", re); err != nil {
		return 0, err
	}
	return 64 / re, nil
}

// BlasiusFrictionFactor 光滑管 f = 0.316 × Re^-0.25
func BlasiusFrictionFactor(re float64) (float64, error) {
	if err := mustPositive("reynolds_number", re); err != nil {
		return 0, err
	}
	return 0.316 * math.Pow(re, -0.25), nil
}

// SwameeJainFrictionFactor Colebrook-White 的显式近似，用作迭代初值
func SwameeJainFrictionFactor(re, relativeRoughness float64) (float64, error) {
	if err := mustPositive("reynolds_number", re); err != nil {
		return 0, err
	}
	if err := mustNonNegative("relative_roughness", relativeRoughness); err != nil {
		return 0, err
	}
	l := math.Log10(relativeRoughness/3.7 + 5.74/math.Pow(re, 0.9))
	return 0.25 / (l * l), nil
}

// ColebrookFrictionFactor solves the Colebrook-White equation
//
//	1/√f = -2 × log₁₀[(ε/D)/3.7 + 2.51/(Re × √f)]
//
// for the Darcy friction factor, using default iteration settings.
func ColebrookFrictionFactor(re, relativeRoughness float64) (float64, error) {
	d := DefaultConfig()
	return colebrook(re, relativeRoughness, d.ColebrookTolerance, d.ColebrookMaxIter)
}

// x = 1/√f 的不动点迭代, Swamee-Jain 给初值
func colebrook(re, relativeRoughness, tolerance float64, maxIter int) (float64, error) {
	if err := mustPositive("reynolds_number", re); err != nil {
		return 0, err
	}
	if err := mustNonNegative("relative_roughness", relativeRoughness); err != nil {
		return 0, err
	}
	if relativeRoughness < SmoothPipeLimit {
		return BlasiusFrictionFactor(re)
	}

	f0, err := SwameeJainFrictionFactor(re, relativeRoughness)
	if err != nil {
		return 0, err
	}
	x := 1 / math.Sqrt(f0)
	converged := false
	delta := 0.0
	for i := 0; i < maxIter; i++ {
		next := -2 * math.Log10(relativeRoughness/3.7+2.51*x/re)
		delta = math.Abs(next - x)
		x = next
		if delta < tolerance {
			converged = true
			break
		}
	}
	if !converged {
		log.WithFields(log.Fields{
			"re":        re,
			"rr":        relativeRoughness,
			"maxIter":   maxIter,
			"tolerance": tolerance,
			"delta":     delta,
		}).Warn("Colebrook 迭代未收敛")
	}
	return 1 / (x * x), nil
}

// FrictionFactor 根据流态选择计算方法
//
// roughnessM 绝对粗糙度 m, diameterM 内径 m
func FrictionFactor(re, roughnessM, diameterM float64) (float64, string, error) {
	return frictionFactor(re, roughnessM, diameterM, DefaultConfig())
}

func frictionFactor(re, roughnessM, diameterM float64, cfg Config) (float64, string, error) {
	if err := mustPositive("reynolds_number", re); err != nil {
		return 0, "", err
	}
	if err := mustNonNegative("roughness_m", roughnessM); err != nil {
		return 0, "", err
	}
	if err := mustPositive("diameter_m", diameterM); err != nil {
		return 0, "", err
	}

	if ClassifyFlowRegime(re) == Laminar {
		f, err := LaminarFrictionFactor(re)
		return f, MethodLaminar, err
	}

	// 过渡区按湍流处理
	relativeRoughness := roughnessM / diameterM
	method := MethodColebrook
	if relativeRoughness < SmoothPipeLimit {
		method = MethodBlasius
	}
	f, err := colebrook(re, relativeRoughness, cfg.ColebrookTolerance, cfg.ColebrookMaxIter)
	return f, method, err
}

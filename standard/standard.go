// Package standard 管材等级、设计系数、粗糙度、流体物性等参考数据
package standard

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed standards.yaml
var standardsData []byte

// ErrUnknown 查询的名称不在参考表中
var ErrUnknown = errors.New("unknown standard entry")

type PipeGrade struct {
	Name            string  `yaml:"name"`
	SMYS            float64 `yaml:"smys"` // Specified Minimum Yield Strength, MPa
	TensileStrength float64 `yaml:"tensile_strength"`
	Description     string  `yaml:"description"`
}

type DesignCode struct {
	Name    string             `yaml:"name"`
	Classes map[string]float64 `yaml:"classes"`
}

type Roughness struct {
	Value       float64 `yaml:"value"` // mm
	Description string  `yaml:"description"`
}

// ValueM 粗糙度换算为 m
func (r Roughness) ValueM() float64 {
	return r.Value / 1000
}

type FluidType struct {
	Name           string     `yaml:"name"`
	DensityRange   [2]float64 `yaml:"density_range"` // kg/m³
	ViscosityCSt   float64    `yaml:"viscosity_cst"`
	DefaultDensity float64    `yaml:"default_density"`
}

type FormulaReference struct {
	Key      string `yaml:"key"`
	Equation string `yaml:"equation"`
	Source   string `yaml:"source"`
}

type tables struct {
	PipeGrades        map[string]PipeGrade  `yaml:"pipe_grades"`
	DesignFactors     map[string]DesignCode `yaml:"design_factors"`
	PipeRoughness     map[string]Roughness  `yaml:"pipe_roughness"`
	FluidTypes        map[string]FluidType  `yaml:"fluid_types"`
	FormulaReferences []FormulaReference    `yaml:"formula_references"`
}

var std tables

func init() {
	if err := yaml.Unmarshal(standardsData, &std); err != nil {
		panic(fmt.Sprintf("standard: parse standards.yaml: %v", err))
	}
}

func Grade(name string) (PipeGrade, error) {
	g, ok := std.PipeGrades[name]
	if !ok {
		return PipeGrade{}, fmt.Errorf("pipe grade %q: %w", name, ErrUnknown)
	}
	return g, nil
}

// Grades 返回所有管材等级名称, 按名称排序
func Grades() []string {
	names := make([]string, 0, len(std.PipeGrades))
	for name := range std.PipeGrades {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func DesignFactor(code, class string) (float64, error) {
	c, ok := std.DesignFactors[code]
	if !ok {
		return 0, fmt.Errorf("design code %q: %w", code, ErrUnknown)
	}
	f, ok := c.Classes[class]
	if !ok {
		return 0, fmt.Errorf("location class %q of %s: %w", class, code, ErrUnknown)
	}
	return f, nil
}

func PipeRoughness(name string) (Roughness, error) {
	r, ok := std.PipeRoughness[name]
	if !ok {
		return Roughness{}, fmt.Errorf("pipe roughness %q: %w", name, ErrUnknown)
	}
	return r, nil
}

func Fluid(name string) (FluidType, error) {
	f, ok := std.FluidTypes[name]
	if !ok {
		return FluidType{}, fmt.Errorf("fluid type %q: %w", name, ErrUnknown)
	}
	return f, nil
}

// Formulas 公式引用, 保持 yaml 中的顺序
func Formulas() []FormulaReference {
	out := make([]FormulaReference, len(std.FormulaReferences))
	copy(out, std.FormulaReferences)
	return out
}

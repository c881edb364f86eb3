package calculator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// 默认配置文件路径，相对于运行目录或可执行文件所在目录
const DefaultConfigPath = "conf/config.ini"

type Config struct {
	VelocityLimit        float64 // 液体管线典型流速上限 m/s
	MinorLossFraction    float64 // 局部损失占沿程损失的比例
	DesignPressureFactor float64 // 设计压力 = 运行压力 × 系数
	DesignCode           string  // ASME B31.4 / ASME B31.8
	LocationClass        string  // 设计系数对应的地区等级

	ColebrookTolerance float64
	ColebrookMaxIter   int

	LogLevel string
}

func DefaultConfig() Config {
	return Config{
		VelocityLimit:        4.0,
		MinorLossFraction:    0.10,
		DesignPressureFactor: 1.5,
		DesignCode:           "ASME B31.4",
		LocationClass:        "normal_operation",
		ColebrookTolerance:   1e-10,
		ColebrookMaxIter:     50,
		LogLevel:             "info",
	}
}

// Validate 检查配置取值范围, 返回普通错误而非 InvalidInputError
func (c Config) Validate() error {
	switch {
	case !(c.VelocityLimit > 0):
		return fmt.Errorf("VelocityLimit = %v, must be positive", c.VelocityLimit)
	case !(c.MinorLossFraction >= 0):
		return fmt.Errorf("MinorLossFraction = %v, must not be negative", c.MinorLossFraction)
	case !(c.DesignPressureFactor > 0):
		return fmt.Errorf("DesignPressureFactor = %v, must be positive", c.DesignPressureFactor)
	case !(c.ColebrookTolerance > 0):
		return fmt.Errorf("ColebrookTolerance = %v, must be positive", c.ColebrookTolerance)
	case c.ColebrookMaxIter < 1:
		return fmt.Errorf("ColebrookMaxIter = %d, must be at least 1", c.ColebrookMaxIter)
	}
	return nil
}

// ResolveConfigPath 相对路径在运行目录下找不到时, 改到可执行文件所在目录下查找
func ResolveConfigPath(path string) string {
	if filepath.IsAbs(path) || fileExists(path) {
		return path
	}
	exe, err := os.Executable()
	if err != nil {
		return path
	}
	if p := filepath.Join(filepath.Dir(exe), path); fileExists(p) {
		return p
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadConfig 读取 ini 配置，文件不存在时使用默认值
func LoadConfig(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.WithField("path", path).Info("配置文件不存在, 使用默认配置")
	}
	file, err := ini.LooseLoad(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg := loadCfg(file)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	log.WithFields(log.Fields{
		"path":                 path,
		"VelocityLimit":        cfg.VelocityLimit,
		"MinorLossFraction":    cfg.MinorLossFraction,
		"DesignPressureFactor": cfg.DesignPressureFactor,
		"DesignCode":           cfg.DesignCode,
		"LocationClass":        cfg.LocationClass,
	}).Debug("加载配置")
	return cfg, nil
}

func loadCfg(file *ini.File) Config {
	d := DefaultConfig()
	analysis := file.Section("analysis")
	return Config{
		VelocityLimit:        analysis.Key("VelocityLimit").MustFloat64(d.VelocityLimit),
		MinorLossFraction:    analysis.Key("MinorLossFraction").MustFloat64(d.MinorLossFraction),
		DesignPressureFactor: analysis.Key("DesignPressureFactor").MustFloat64(d.DesignPressureFactor),
		DesignCode:           analysis.Key("DesignCode").MustString(d.DesignCode),
		LocationClass:        analysis.Key("LocationClass").MustString(d.LocationClass),
		ColebrookTolerance:   analysis.Key("ColebrookTolerance").MustFloat64(d.ColebrookTolerance),
		ColebrookMaxIter:     analysis.Key("ColebrookMaxIter").MustInt(d.ColebrookMaxIter),
		LogLevel:             file.Section("log").Key("Level").MustString(d.LogLevel),
	}
}

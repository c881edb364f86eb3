package calculator

import (
	"errors"
	"fmt"
	"math"
)

// InvalidInputError 输入超出物理上合理的取值范围
type InvalidInputError struct {
	Param  string      // 参数名
	Value  interface{} // 实际输入值
	Reason string      // 要求, 如 "must be positive"
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s = %v, %s", e.Param, e.Value, e.Reason)
}

// IsInvalidInput reports whether err, or any error it wraps, is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var e *InvalidInputError
	return errors.As(err, &e)
}

func invalid(param string, value float64, reason string) error {
	return &InvalidInputError{Param: param, Value: value, Reason: reason}
}

// 取值校验, NaN 和 Inf 一律视为非法

func mustPositive(param string, v float64) error {
	if err := mustFinite(param, v); err != nil {
		return err
	}
	if v <= 0 {
		return invalid(param, v, "must be positive")
	}
	return nil
}

func mustNonNegative(param string, v float64) error {
	if err := mustFinite(param, v); err != nil {
		return err
	}
	if v < 0 {
		return invalid(param, v, "must not be negative")
	}
	return nil
}

func mustFinite(param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(param, v, "must be finite")
	}
	return nil
}

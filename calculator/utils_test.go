package calculator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitConversion(t *testing.T) {
	assert.Equal(t, 1.0, PaToBar(100000))
	assert.Equal(t, 250000.0, BarToPa(2.5))
	assert.Equal(t, 3.0, BarToMPa(30))
	assert.InDelta(t, 0.3239, MMToM(323.9), 1e-12)
	assert.InDelta(t, 290.076, BarToPsi(20), 1e-9)
}

func TestIsInvalidInput(t *testing.T) {
	_, err := HoopStress(1, 100, -1)
	assert.True(t, IsInvalidInput(err))
	assert.EqualError(t, err, "invalid input: wall_thickness_mm = -1, must be positive")

	assert.False(t, IsInvalidInput(nil))
	assert.False(t, IsInvalidInput(errors.New("boom")))
	assert.True(t, IsInvalidInput(fmt.Errorf("step: %w", err)))
}

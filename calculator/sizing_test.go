package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternalDiameter(t *testing.T) {
	id, err := InternalDiameter(323.9, 6.4)
	require.NoError(t, err)
	assert.InDelta(t, 311.1, id, 1e-9)

	_, err = InternalDiameter(0, 6.4)
	assert.True(t, IsInvalidInput(err))
	_, err = InternalDiameter(323.9, -1)
	assert.True(t, IsInvalidInput(err))

	var e *InvalidInputError
	_, err = InternalDiameter(100, 50)
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "wall_thickness_mm", e.Param)
}

func TestRequiredWallThickness(t *testing.T) {
	tw, err := RequiredWallThickness(7, 323.9, 359, 0.72)
	require.NoError(t, err)
	assert.InDelta(t, 4.3858326, tw, 1e-6)

	_, err = RequiredWallThickness(7, 323.9, 0, 0.72)
	assert.True(t, IsInvalidInput(err))
	_, err = RequiredWallThickness(7, 323.9, 359, 0)
	assert.True(t, IsInvalidInput(err))
}

func TestHoopStress(t *testing.T) {
	s, err := HoopStress(7, 323.9, 6.4)
	require.NoError(t, err)
	assert.InDelta(t, 177.1328125, s, 1e-9)

	_, err = HoopStress(7, 323.9, 0)
	assert.True(t, IsInvalidInput(err))
}

// 按最小壁厚计算的环向应力正好等于许用应力
func TestRequiredWallThickness_HoopStressRoundTrip(t *testing.T) {
	tw, err := RequiredWallThickness(10, 508, 414, 0.6)
	require.NoError(t, err)
	s, err := HoopStress(10, 508, tw)
	require.NoError(t, err)
	assert.InDelta(t, 0.6*414, s, 1e-9)
}

func TestCheckPressureContainment(t *testing.T) {
	c, err := CheckPressureContainment(75.9140625, 359, 0.72)
	require.NoError(t, err)
	assert.True(t, c.Safe)
	assert.InDelta(t, 258.48, c.AllowableStressMPa, 1e-9)
	assert.InDelta(t, 70.6306, c.MarginPercent, 1e-4)
	assert.Equal(t, "✓ SAFE: Hoop stress 75.91 MPa vs allowable 258.48 MPa", c.Message)

	c, err = CheckPressureContainment(300, 359, 0.72)
	require.NoError(t, err)
	assert.False(t, c.Safe)
	assert.Equal(t, 0.0, c.MarginPercent)
	assert.Contains(t, c.Message, "✗ UNSAFE")

	_, err = CheckPressureContainment(100, 0, 0.72)
	assert.True(t, IsInvalidInput(err))
}

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMeasurer(t *testing.T) {
	m := NewBasicMeasurer()

	w, h := m.Measure("25", NativeSize)
	assert.InDelta(t, 14.0, w, 1e-9)
	assert.InDelta(t, 13.0, h, 1e-9)

	w, h = m.Measure("25", 0)
	assert.InDelta(t, 14.0, w, 1e-9, "zero size means native")
	assert.InDelta(t, 13.0, h, 1e-9)

	w, _ = m.Measure("25", 26)
	assert.InDelta(t, 28.0, w, 1e-9)

	w, _ = m.Measure("", 13)
	assert.Zero(t, w)
}

func TestShapingMeasurer(t *testing.T) {
	m, err := NewGoRegularMeasurer()
	require.NoError(t, err)

	short, h := m.Measure("1", 14)
	long, _ := m.Measure("1,234.5", 14)
	assert.Positive(t, short)
	assert.Greater(t, long, short)
	assert.Positive(t, h)

	big, _ := m.Measure("1,234.5", 28)
	assert.InDelta(t, 2*long, big, 0.5)

	w, h := m.Measure("", 0)
	assert.Zero(t, w)
	assert.Equal(t, float64(DefaultShapingSize), h)
}

func TestShapingMeasurerErrors(t *testing.T) {
	_, err := NewShapingMeasurer(nil)
	assert.ErrorIs(t, err, ErrEmptyFontData)

	_, err = NewShapingMeasurer([]byte("not a font"))
	assert.Error(t, err)
}

func TestFixedConversion(t *testing.T) {
	assert.Equal(t, 1.5, fixedToFloat(floatToFixed(1.5)))
}

var _ Measurer = (*BasicMeasurer)(nil)
var _ Measurer = (*ShapingMeasurer)(nil)

package source

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFixedPrecision(t *testing.T) {
	assert.Equal(t, "42.000000", Format(42))
	assert.Equal(t, "0.500000", Format(0.5))
	assert.Equal(t, "-3.141593", Format(-3.1415926535))
}

func TestFormatNaNIsEmpty(t *testing.T) {
	assert.Equal(t, "", Format(math.NaN()))
}

func TestNumericReadsLiveValue(t *testing.T) {
	v := 1.5
	s := NewNumeric("test_value", &v)

	assert.Equal(t, 1.5, s.Number())

	// A write between two queries must be visible on the second one.
	v = 2.5
	assert.Equal(t, 2.5, s.Number())
	assert.Equal(t, "2.500000", s.Text())
}

func TestNumericIntegerTypes(t *testing.T) {
	var counter uint64 = 7
	s := NewNumeric("test_counter", &counter)

	assert.Equal(t, 7.0, s.Number())
	assert.Equal(t, "7.000000", s.Text())
	assert.Equal(t, "test_counter", s.Name())
}

func TestDisabledAlwaysNaN(t *testing.T) {
	d := NewDisabled("battery", "battery_support")

	require.True(t, math.IsNaN(d.Number()))
	assert.Contains(t, d.Text(), "battery")
	assert.Contains(t, d.Text(), "battery_support")
}

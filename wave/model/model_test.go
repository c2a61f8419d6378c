package model

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestScaleFactor(t *testing.T) {
	cases := []struct {
		unit   TimeUnit
		factor float64
		name   string
	}{
		{UnitFs, 1e15, "fs"},
		{UnitPs, 1e12, "ps"},
		{UnitNs, 1e9, "ns"},
		{UnitUs, 1e6, "us"},
		{UnitMs, 1e3, "ms"},
		{UnitS, 1, "s"},
	}
	for _, c := range cases {
		ts := TimeScale{Time: 2, Unit: c.unit}
		assert.Equal(t, 2*c.factor, ts.ScaleFactor(), c.name)
		assert.Equal(t, c.name, c.unit.String())
	}
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "0", FormatTime(0))
	assert.Equal(t, "999", FormatTime(999.4))
	assert.Equal(t, "1,000", FormatTime(999.5))
	assert.Equal(t, "57,000,000", FormatTime(57e6))
	assert.Equal(t, "-1,234", FormatTime(-1234.2))
	assert.Equal(t, "12,345 ps", FormatTimeUnit(TimeScale{Time: 12345.3, Unit: UnitPs}))
	assert.Equal(t, "1 fs", DefaultScale.String())
}

func TestRangeHelpers(t *testing.T) {
	r := MakeRange(10, 30)
	assert.Equal(t, 20.0, r.Width())
	assert.Equal(t, 20.0, r.Mid())
	assert.True(t, r.Valid())
	assert.False(t, r.Degenerate())
	assert.True(t, MakeRange(5, 5).Degenerate())
	assert.False(t, MakeRange(5, 4).Valid())
	assert.False(t, MakeRange(math.NaN(), 4).Valid())

	assert.Equal(t, 10.0, r.Clamp(-3))
	assert.Equal(t, 30.0, r.Clamp(31))
	assert.Equal(t, 12.5, r.Clamp(12.5))

	outer := MakeRange(0, 25)
	assert.False(t, r.Within(outer))
	clamped := r.ClampInto(outer)
	assert.Equal(t, MakeRange(10, 25), clamped)
	assert.True(t, clamped.Within(outer))

	assert.Equal(t, MakeRange(15, 25), Centered(20, 10))
}

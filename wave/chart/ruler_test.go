package chart

import (
	"github.com/celskeggs/waveview/wave/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func countKinds(ticks []Tick) map[TickKind]int {
	out := map[TickKind]int{}
	for _, tick := range ticks {
		out[tick.Kind]++
	}
	return out
}

func labels(ticks []Tick) (out []string) {
	for _, tick := range ticks {
		if tick.Label != "" {
			out = append(out, tick.Label)
		}
	}
	return out
}

func TestTicksDecade(t *testing.T) {
	scale := model.TimeScale{Time: 1, Unit: model.UnitPs}
	ticks := Ticks(model.MakeRange(0, 1000), scale, 1000)
	require.Len(t, ticks, 100)
	for i, tick := range ticks {
		assert.Equal(t, float64(10*i), tick.X)
	}
	kinds := countKinds(ticks)
	assert.Equal(t, 10, kinds[TickMajor])
	assert.Equal(t, 10, kinds[TickMedium])
	assert.Equal(t, 80, kinds[TickMinor])
	assert.Equal(t, TickMajor, ticks[0].Kind)
	assert.Equal(t, TickMedium, ticks[5].Kind)
	assert.Equal(t, TickMajor, ticks[10].Kind)
	assert.Equal(t, []string{"0", "100", "200", "300", "400", "500", "600", "700", "800", "900"}, labels(ticks))
}

func TestTicksLabelThrottle(t *testing.T) {
	scale := model.TimeScale{Time: 1, Unit: model.UnitPs}
	ticks := Ticks(model.MakeRange(0, 1000), scale, 410)
	assert.Equal(t, 10, countKinds(ticks)[TickMajor])
	assert.Equal(t, []string{"0", "200", "400", "600", "800"}, labels(ticks))

	last := -LabelWidth * 2.0
	for _, tick := range ticks {
		if tick.Label != "" {
			assert.GreaterOrEqual(t, tick.X-last, float64(LabelWidth))
			last = tick.X
		}
	}
}

func TestTicksOffsetRange(t *testing.T) {
	scale := model.TimeScale{Time: 1, Unit: model.UnitPs}
	ticks := Ticks(model.MakeRange(1e6, 1e6+1000), scale, 1000)
	require.NotEmpty(t, ticks)
	assert.Equal(t, "1,000,000", ticks[0].Label)
	assert.Equal(t, "1,000,100", labels(ticks)[1])
}

func TestTicksSpacing(t *testing.T) {
	scale := model.TimeScale{Time: 1, Unit: model.UnitPs}
	for _, width := range []float64{37, 250, 999, 1500} {
		ticks := Ticks(model.MakeRange(0, 12345), scale, width)
		for i := 1; i < len(ticks); i++ {
			assert.GreaterOrEqual(t, ticks[i].X-ticks[i-1].X, TickMinPixels-1, "width %v", width)
		}
	}
}

func TestTicksDegenerate(t *testing.T) {
	scale := model.TimeScale{Time: 1, Unit: model.UnitPs}
	assert.Nil(t, Ticks(model.MakeRange(5, 5), scale, 100))
	assert.Nil(t, Ticks(model.MakeRange(0, 5), scale, 0))
	assert.Nil(t, Ticks(model.MakeRange(0, 5), model.TimeScale{Unit: model.UnitPs}, 100))
}

func TestLocator(t *testing.T) {
	c := newTestChart()
	x0, x1, ok := c.Locator(testViewport)
	require.True(t, ok)
	assert.Equal(t, 250.0, x0)
	assert.Equal(t, 1000.0, x1)

	c.SetRange(model.MakeRange(500, 500.1), c.Scale())
	x0, x1, ok = c.Locator(testViewport)
	require.True(t, ok)
	assert.InDelta(t, 2, x1-x0, 1e-9)
	assert.InDelta(t, 625.0375, (x0+x1)/2, 1e-9)

	_, _, ok = New().Locator(testViewport)
	assert.False(t, ok)
}

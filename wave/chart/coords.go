package chart

import (
	"fmt"
	"github.com/celskeggs/waveview/wave/model"
)

func checkMapping(rng model.TimeRange, width float64) {
	if rng.Degenerate() {
		panic(fmt.Sprintf("cannot map a zero-width time range %v", rng))
	}
	if !(width > 0) {
		panic(fmt.Sprintf("cannot map onto a pixel width of %v", width))
	}
}

// TimeToX converts time to a screen x position.
func TimeToX(t model.Time, rng model.TimeRange, xoffs, width float64) float64 {
	checkMapping(rng, width)
	return xoffs + width*(t-rng.Start)/(rng.End-rng.Start)
}

// XToTime converts a screen x position to time, clamped to rng.
func XToTime(x float64, rng model.TimeRange, xoffs, width float64) model.Time {
	checkMapping(rng, width)
	return rng.Clamp((x-xoffs)*(rng.End-rng.Start)/width + rng.Start)
}

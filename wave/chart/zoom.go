package chart

import (
	"github.com/celskeggs/waveview/wave/model"
	"math"
)

// Zoom scales the visible window by ratio around the cursor, or around the
// window midpoint when no cursor is set, and then trims it to the maximum
// range. Requests that would leave an empty or non-finite window are ignored.
func (c *Chart) Zoom(ratio float64) bool {
	if !(ratio > 0) || math.IsInf(ratio, 0) || c.max.Degenerate() {
		return false
	}
	if c.visible.Degenerate() {
		c.visible = c.max
		return true
	}
	center := c.visible.Mid()
	if c.hasCursor {
		center = c.cursor
	}
	next := model.Centered(center, ratio*c.visible.Width()).ClampInto(c.max)
	if !next.Valid() || next.Degenerate() {
		return false
	}
	c.visible = next
	return true
}

// MouseWheel zooms in one step for a positive exponent and out otherwise.
func (c *Chart) MouseWheel(exponent float64) bool {
	ratio := 2.0
	if exponent > 0 {
		ratio = 0.5
	}
	c.Zoom(ratio)
	return true
}

package chart

import (
	"fmt"
	"github.com/celskeggs/waveview/wave/model"
	"math"
)

const (
	// TickMinPixels is the smallest spacing between two ruler ticks.
	TickMinPixels = 4.0
	// LabelWidth is the estimated width of a tick label; labels closer than
	// this to the previous one are dropped.
	LabelWidth = 64
)

type TickKind uint8

const (
	TickMinor TickKind = iota
	TickMedium
	TickMajor
)

func (k TickKind) String() string {
	switch k {
	case TickMinor:
		return "minor"
	case TickMedium:
		return "medium"
	case TickMajor:
		return "major"
	default:
		return fmt.Sprintf("TickKind(%d)", uint8(k))
	}
}

// Tick is one ruler mark at pixel column X from the start of the ruler.
// Only some major ticks carry a Label.
type Tick struct {
	X     float64
	Kind  TickKind
	Label string
}

// Ticks lays out the marks of a ruler width pixels wide showing rng. The step
// between ticks is the smallest power of ten spanning at least TickMinPixels.
func Ticks(rng model.TimeRange, scale model.TimeScale, width float64) []Tick {
	if rng.Degenerate() || !(width >= 1) || !(scale.Time > 0) {
		return nil
	}
	span := rng.Width() * scale.Time
	minStep := math.Pow(10, math.Ceil(math.Log10(span*TickMinPixels/width)))
	if !(minStep > 0) || math.IsInf(minStep, 0) {
		return nil
	}

	epsilon := 16 * (math.Nextafter(1, 2) - 1)
	perPixel := span / width
	xv := rng.Start * scale.Time
	xvPrev := xv - perPixel
	lastLabel := -LabelWidth

	var ticks []Tick
	columns := int(math.Round(width))
	for xpos := 0; xpos < columns; xpos++ {
		step := math.Floor(xv / minStep)
		prevStep := math.Floor(xvPrev / minStep)
		if step-prevStep > epsilon {
			tick := Tick{X: float64(xpos), Kind: TickMinor}
			if math.Floor(step/10)-math.Floor(prevStep/10) > epsilon {
				tick.Kind = TickMajor
				if xpos-lastLabel >= LabelWidth {
					tick.Label = model.FormatTime(step * minStep)
					lastLabel = xpos
				}
			} else if math.Floor(step/5)-math.Floor(prevStep/5) > epsilon {
				tick.Kind = TickMedium
			}
			ticks = append(ticks, tick)
		}
		xvPrev = xv
		xv += perPixel
	}
	return ticks
}

// Locator returns the span of the bottom ruler covered by the visible window,
// widened to at least 2 pixels.
func (c *Chart) Locator(vp Viewport) (x0, x1 float64, ok bool) {
	l := c.layout(vp)
	if c.max.Degenerate() || !(l.sigW > 0) {
		return 0, 0, false
	}
	x0 = TimeToX(c.visible.Start, c.max, l.sigX, l.sigW)
	x1 = TimeToX(c.visible.End, c.max, l.sigX, l.sigW)
	if x1-x0 < 2 {
		mid := (x0 + x1) / 2
		x0, x1 = mid-1, mid+1
	}
	return x0, x1, true
}

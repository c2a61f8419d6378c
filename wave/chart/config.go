package chart

import (
	"github.com/celskeggs/waveview/wave/model"
	"image/color"
)

// Config holds the fixed layout of a chart, in pixels unless noted.
type Config struct {
	RuleHeight  float64
	ScrollWidth float64
	// ColHdrReach is how close the pointer has to be to a column divider to
	// grab it.
	ColHdrReach float64
	ColWidthMin float64
	SigWidthMin float64

	// initial column widths, as fractions of the drawing area
	NameColumn  float64
	ValueColumn float64

	Scale model.TimeScale
}

func DefaultConfig() Config {
	return Config{
		RuleHeight:  16,
		ScrollWidth: 16,
		ColHdrReach: 10,
		ColWidthMin: 16,
		SigWidthMin: 32,
		NameColumn:  0.2,
		ValueColumn: 0.05,
		Scale:       model.TimeScale{Time: 1, Unit: model.UnitPs},
	}
}

func (c Config) labelHeight() float64 {
	return c.RuleHeight - 4
}

var (
	colBackground = color.NRGBA{0, 0, 0, 255}
	colWaveLow    = color.NRGBA{0, 0, 200, 255}
	colWaveHigh   = color.NRGBA{0, 100, 200, 255}
	colWaveDown   = color.NRGBA{100, 0, 200, 255}
	colWaveUp     = color.NRGBA{100, 100, 200, 255}
	colWaveAnalog = color.NRGBA{255, 100, 0, 255}
	colScrollBox  = color.NRGBA{200, 0, 200, 255}
	colScrollArr  = color.NRGBA{0, 0, 0, 255}
	colLocator    = color.NRGBA{0, 180, 0, 180}
	colCursor     = color.NRGBA{255, 255, 0, 255}
	colRulerCurs  = color.NRGBA{255, 0, 0, 255}
	colRuler      = color.NRGBA{80, 80, 80, 255}
	colTick       = color.NRGBA{255, 255, 0, 255}
	colBorder     = color.NRGBA{211, 211, 211, 255}
	colLabel      = color.NRGBA{255, 255, 255, 255}
)

// Package chart is the waveform chart engine: view state, time/pixel mapping,
// pointer interaction, ruler ticks and frame rendering.
package chart

import (
	"fmt"
	"github.com/celskeggs/waveview/wave/model"
)

// Viewport is the size of the area the chart is drawn into.
type Viewport struct {
	Width, Height float64
}

func (vp Viewport) String() string {
	return fmt.Sprintf("%.0fx%.0f", vp.Width, vp.Height)
}

type Chart struct {
	cfg     Config
	visible model.TimeRange
	max     model.TimeRange
	scale   model.TimeScale

	colSigName float64
	colValue   float64

	cursor    model.Time
	hasCursor bool

	region  MouseRegion
	pressed bool

	// Trace logs pointer handling.
	Trace bool
}

func New() *Chart {
	return NewWithConfig(DefaultConfig())
}

func NewWithConfig(cfg Config) *Chart {
	return &Chart{
		cfg:        cfg,
		scale:      cfg.Scale,
		colSigName: cfg.NameColumn,
		colValue:   cfg.ValueColumn,
		region:     RegionNone,
	}
}

func (c *Chart) Config() Config {
	return c.cfg
}

func (c *Chart) SetRange(rng model.TimeRange, scale model.TimeScale) {
	c.visible = rng
	c.scale = scale
}

func (c *Chart) SetMaxRange(rng model.TimeRange) {
	c.max = rng
}

// Fit shows the whole of rng.
func (c *Chart) Fit(rng model.TimeRange) {
	c.SetMaxRange(rng)
	c.SetRange(rng, c.scale)
}

func (c *Chart) Range() model.TimeRange {
	return c.visible
}

func (c *Chart) MaxRange() model.TimeRange {
	return c.max
}

func (c *Chart) Scale() model.TimeScale {
	return c.scale
}

func (c *Chart) SetCursor(t model.Time) {
	c.cursor = t
	c.hasCursor = true
}

func (c *Chart) ClearCursor() {
	c.hasCursor = false
}

func (c *Chart) Cursor() (model.Time, bool) {
	return c.cursor, c.hasCursor
}

// Columns returns the signal-name and value column widths as fractions of the
// drawing area.
func (c *Chart) Columns() (name, value float64) {
	return c.colSigName, c.colValue
}

// ActiveRegion is the region recorded at the last mouse-down, or RegionNone
// once the button is released.
func (c *Chart) ActiveRegion() MouseRegion {
	return c.region
}

type layout struct {
	// area is the width left of the scrollbar gutter
	area   float64
	nameX  float64
	valueX float64
	sigX   float64
	sigW   float64
}

func (c *Chart) layout(vp Viewport) layout {
	area := vp.Width - c.cfg.ScrollWidth
	l := layout{
		area:   area,
		nameX:  area * c.colSigName,
		valueX: area * (c.colSigName + c.colValue),
	}
	l.sigX = l.valueX
	l.sigW = area - l.sigX
	return l
}

package chart

import (
	"fmt"
	"github.com/celskeggs/waveview/wave/model"
	"github.com/celskeggs/waveview/wave/scene"
	"log"
	"math"
)

type MouseRegion uint8

const (
	RegionNone MouseRegion = iota
	RegionWaveform
	RegionYScrollBar
	RegionXScrollRuler
	RegionSignalNameHeader
	RegionValueHeader
)

func (r MouseRegion) String() string {
	switch r {
	case RegionNone:
		return "None"
	case RegionWaveform:
		return "Waveform"
	case RegionYScrollBar:
		return "YScrollBar"
	case RegionXScrollRuler:
		return "XScrollRuler"
	case RegionSignalNameHeader:
		return "SignalNameHeader"
	case RegionValueHeader:
		return "ValueHeader"
	default:
		return fmt.Sprintf("MouseRegion(%d)", uint8(r))
	}
}

// MouseCursor is the pointer icon the chart would like shown.
type MouseCursor uint8

const (
	CursorNormal MouseCursor = iota
	CursorColumn
)

func (m MouseCursor) String() string {
	switch m {
	case CursorNormal:
		return "Normal"
	case CursorColumn:
		return "Column"
	default:
		return fmt.Sprintf("MouseCursor(%d)", uint8(m))
	}
}

func (c *Chart) nearDivider(pos scene.Point, x float64) bool {
	return pos.Y <= c.cfg.RuleHeight && math.Abs(pos.X-x) < c.cfg.ColHdrReach
}

// Region classifies a pointer position. The first matching region wins.
func (c *Chart) Region(pos scene.Point, vp Viewport) MouseRegion {
	l := c.layout(vp)
	switch {
	case pos.X >= l.area:
		return RegionYScrollBar
	case c.nearDivider(pos, l.nameX):
		return RegionSignalNameHeader
	case c.nearDivider(pos, l.valueX):
		return RegionValueHeader
	case pos.Y >= vp.Height-c.cfg.RuleHeight:
		return RegionXScrollRuler
	case pos.Y > c.cfg.RuleHeight && pos.Y < vp.Height-c.cfg.RuleHeight &&
		pos.X >= l.sigX && pos.X < l.sigX+l.sigW:
		return RegionWaveform
	default:
		return RegionNone
	}
}

// MouseDown records the region under pos and applies the click. It reports
// whether the chart state changed.
func (c *Chart) MouseDown(pos scene.Point, vp Viewport) bool {
	c.region = c.Region(pos, vp)
	c.pressed = true
	if c.Trace {
		l := c.layout(vp)
		log.Printf("mousedown %.0f,%.0f - %.0f,%.0f, region %v", pos.X, pos.Y, l.sigX, l.sigX+l.sigW, c.region)
	}
	return c.click(pos, vp)
}

// MouseMove continues a drag in the region recorded at mouse-down. With no
// button held it only computes the cursor hint.
func (c *Chart) MouseMove(pos scene.Point, vp Viewport) (bool, MouseCursor) {
	l := c.layout(vp)
	hint := CursorNormal
	if c.nearDivider(pos, l.nameX) || c.nearDivider(pos, l.valueX) {
		hint = CursorColumn
	}
	if !c.pressed {
		return false, hint
	}
	return c.click(pos, vp), hint
}

func (c *Chart) MouseUp(pos scene.Point, vp Viewport) bool {
	if c.Trace {
		log.Printf("mouseup %.0f,%.0f, region %v", pos.X, pos.Y, c.region)
	}
	c.pressed = false
	c.region = RegionNone
	return true
}

func (c *Chart) click(pos scene.Point, vp Viewport) bool {
	switch c.region {
	case RegionSignalNameHeader, RegionValueHeader:
		return c.columnClick(pos, vp)
	case RegionXScrollRuler:
		return c.xscrollClick(pos, vp)
	case RegionWaveform:
		return c.waveClick(pos, vp)
	default:
		return false
	}
}

func (c *Chart) waveClick(pos scene.Point, vp Viewport) bool {
	l := c.layout(vp)
	if c.visible.Degenerate() || !(l.sigW > 0) {
		return false
	}
	c.SetCursor(XToTime(pos.X, c.visible, l.sigX, l.sigW))
	return true
}

// xscrollClick centers a window of the current width on the point of the
// maximum range under the pointer.
func (c *Chart) xscrollClick(pos scene.Point, vp Viewport) bool {
	l := c.layout(vp)
	if c.max.Degenerate() || !(l.sigW > 0) {
		return false
	}
	width := c.visible.Width()
	if !(width > 0) || width > c.max.Width() {
		width = c.max.Width()
	}
	t := XToTime(pos.X, c.max, l.sigX, l.sigW)
	if t < c.max.Start+0.5*width {
		t = c.max.Start + 0.5*width
	}
	if t > c.max.End-0.5*width {
		t = c.max.End - 0.5*width
	}
	next := model.Centered(t, width).ClampInto(c.max)
	if next.Degenerate() {
		return false
	}
	c.visible = next
	return true
}

func clampFraction(frac, lo, hi float64) float64 {
	if frac < lo || hi < lo {
		return lo
	}
	if frac > hi {
		return hi
	}
	return frac
}

// columnClick moves the divider being dragged to the pointer, keeping the
// other column fixed, each column at least ColWidthMin wide and at least
// SigWidthMin left for the waveforms.
func (c *Chart) columnClick(pos scene.Point, vp Viewport) bool {
	area := c.layout(vp).area
	if !(area > 0) {
		return false
	}
	frac := pos.X / area
	lo := c.cfg.ColWidthMin / area
	switch c.region {
	case RegionSignalNameHeader:
		hi := 1 - (c.colValue + c.cfg.SigWidthMin/area)
		c.colSigName = clampFraction(frac, lo, hi)
	case RegionValueHeader:
		hi := 1 - (c.colSigName + c.cfg.SigWidthMin/area)
		c.colValue = clampFraction(frac-c.colSigName, lo, hi)
	default:
		return false
	}
	return true
}

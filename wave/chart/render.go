package chart

import (
	"fmt"
	"github.com/celskeggs/waveview/wave/datastore"
	"github.com/celskeggs/waveview/wave/model"
	"github.com/celskeggs/waveview/wave/sampler"
	"github.com/celskeggs/waveview/wave/scene"
	"image/color"
	"log"
)

// Render draws one frame of the chart. The output depends only on the chart
// state, the store and the viewport.
func (c *Chart) Render(s scene.Surface, store *datastore.Store, vp Viewport) {
	l := c.layout(vp)
	rh := c.cfg.RuleHeight

	s.FillRect(scene.R(0, 0, vp.Width, vp.Height), colBackground)

	c.drawRuler(s, l.sigX, 0, l.sigW, c.visible)
	c.drawRuler(s, l.sigX, vp.Height-rh, l.sigW, c.max)
	if x0, x1, ok := c.Locator(vp); ok {
		s.FillRect(scene.R(x0, vp.Height-rh, x1, vp.Height), colLocator)
	}

	s.PushClip(scene.R(0, rh, vp.Width, vp.Height-rh))
	if !c.visible.Degenerate() && l.sigW > 0 {
		for sig := 0; sig < store.NumSignals(); sig++ {
			c.drawSignal(s, store, sig, l)
		}
	}
	s.PopClip()

	c.drawCursor(s, l, vp)
	c.drawColumnHeaders(s, l)
	c.drawYScroll(s, vp)
}

func (c *Chart) drawSignal(s scene.Surface, store *datastore.Store, sig int, l layout) {
	st, idx := store.SignalTypeIndex(sig)
	y := c.cfg.RuleHeight + store.SignalYPos(sig)
	switch st {
	case datastore.Digital:
		smpl, release := store.BorrowDigital(idx)
		defer release()
		c.drawDigital(s, smpl, sig, y, l)
	case datastore.Analog:
		smpl, release := store.BorrowAnalog(idx)
		defer release()
		smpl.SetIterScale(c.visible, c.scale, l.sigW)
		c.drawAnalog(s, smpl, sig, y, l)
	}
}

// measureAt is where the value column is read: the cursor, or the start of
// the window.
func (c *Chart) measureAt() model.Time {
	if c.hasCursor {
		return c.cursor
	}
	return c.visible.Start
}

func (c *Chart) drawDigital(s scene.Surface, smpl sampler.DigitalSampler, sig int, y float64, l layout) {
	h := smpl.Height()
	lh := c.cfg.labelHeight()
	s.Text(smpl.Label(), lh, colLabel, scene.Pt(0, y+h-2))
	value := "0"
	if smpl.ValueAt(c.measureAt(), c.scale) {
		value = "1"
	}
	s.Text(value, lh, colLabel, scene.Pt(l.nameX, y+h-2))

	yHi, yLo := y+2, y+h-1
	level := func(high bool) (float64, color.Color) {
		if high {
			return yHi, colWaveHigh
		}
		return yLo, colWaveLow
	}
	curval := smpl.ValueAt(c.visible.Start, c.scale)
	curtime := c.visible.Start
	it := smpl.IterRange(c.visible)
	for {
		next, ok := it.Next()
		if !ok {
			break
		}
		xCur := TimeToX(curtime, c.visible, l.sigX, l.sigW)
		xNext := TimeToX(next.Time, c.visible, l.sigX, l.sigW)
		switch {
		case !curval && next.Value:
			s.StrokePath([]scene.Point{{X: xCur, Y: yLo}, {X: xNext, Y: yLo}}, 1, colWaveLow)
			s.StrokePath([]scene.Point{{X: xNext, Y: yLo}, {X: xNext, Y: yHi}}, 1, colWaveUp)
		case curval && !next.Value:
			s.StrokePath([]scene.Point{{X: xCur, Y: yHi}, {X: xNext, Y: yHi}}, 1, colWaveHigh)
			s.StrokePath([]scene.Point{{X: xNext, Y: yLo}, {X: xNext, Y: yHi}}, 1, colWaveDown)
		default:
			yv, col := level(next.Value)
			s.StrokePath([]scene.Point{{X: xCur, Y: yv}, {X: xNext, Y: yv}}, 1, col)
		}
		curval, curtime = next.Value, next.Time
	}
	if err := it.Err(); err != nil {
		log.Printf("signal %d (%s): %v", sig, smpl.Label(), err)
	}
	if curtime < c.visible.End {
		xCur := TimeToX(curtime, c.visible, l.sigX, l.sigW)
		yv, col := level(curval)
		s.StrokePath([]scene.Point{{X: xCur, Y: yv}, {X: l.area, Y: yv}}, 1, col)
	}
}

func valueToY(v, yscale, y, h float64) float64 {
	return h/yscale*(-v)/2 + y + h/2
}

func (c *Chart) drawAnalog(s scene.Surface, smpl sampler.AnalogSampler, sig int, y float64, l layout) {
	h := smpl.Height()
	lh := c.cfg.labelHeight()
	labelY := y + 0.5*h + lh/2
	yscale := smpl.YScale()
	s.Text(smpl.Label(), lh, colLabel, scene.Pt(0, labelY))
	s.Text(fmt.Sprintf("%.2f", smpl.ValueAt(c.measureAt(), c.scale)), lh, colLabel, scene.Pt(l.nameX, labelY))

	pts := []scene.Point{{
		X: TimeToX(c.visible.Start, c.visible, l.sigX, l.sigW),
		Y: valueToY(smpl.ValueAt(c.visible.Start, c.scale), yscale, y, h),
	}}
	it := smpl.IterRange(c.visible)
	for {
		next, ok := it.Next()
		if !ok {
			break
		}
		pts = append(pts, scene.Point{
			X: TimeToX(next.Time, c.visible, l.sigX, l.sigW),
			Y: valueToY(next.Value, yscale, y, h),
		})
	}
	if err := it.Err(); err != nil {
		log.Printf("signal %d (%s): %v", sig, smpl.Label(), err)
	}
	s.StrokePath(pts, 1, colWaveAnalog)
}

func (c *Chart) drawRuler(s scene.Surface, xoffs, yoffs, width float64, rng model.TimeRange) {
	rh := c.cfg.RuleHeight
	s.FillRect(scene.R(xoffs, yoffs, xoffs+width, yoffs+rh), colRuler)
	for _, tick := range Ticks(rng, c.scale, width) {
		x := xoffs + tick.X
		top := yoffs
		switch tick.Kind {
		case TickMedium:
			top += 0.5 * rh
		case TickMinor:
			top += 0.8 * rh
		}
		s.StrokePath([]scene.Point{{X: x, Y: top}, {X: x, Y: yoffs + rh}}, 1, colTick)
		if tick.Label != "" {
			s.Text(tick.Label, c.cfg.labelHeight(), colTick, scene.Pt(x+1, yoffs+rh-5))
		}
	}
	s.StrokePath([]scene.Point{{X: xoffs, Y: yoffs}, {X: xoffs + width, Y: yoffs}}, 1, colBorder)
	s.StrokePath([]scene.Point{{X: xoffs, Y: yoffs + rh}, {X: xoffs + width, Y: yoffs + rh}}, 1, colBorder)
}

func (c *Chart) drawCursor(s scene.Surface, l layout, vp Viewport) {
	if !c.hasCursor {
		return
	}
	rh := c.cfg.RuleHeight
	if !c.visible.Degenerate() && l.sigW > 0 && c.visible.Contains(c.cursor) {
		x := TimeToX(c.cursor, c.visible, l.sigX, l.sigW)
		s.StrokePath([]scene.Point{{X: x, Y: 0}, {X: x, Y: vp.Height - rh}}, 0.6, colCursor)
	}
	label := model.FormatTimeUnit(model.TimeScale{Time: c.cursor, Unit: c.scale.Unit})
	s.Text(label, c.cfg.labelHeight(), colCursor, scene.Pt(0, rh-5))
	if !c.max.Degenerate() && l.sigW > 0 {
		x := TimeToX(c.cursor, c.max, l.sigX, l.sigW)
		s.StrokePath([]scene.Point{{X: x, Y: vp.Height - rh}, {X: x, Y: vp.Height}}, 1, colRulerCurs)
	}
}

func (c *Chart) drawColumnHeaders(s scene.Surface, l layout) {
	rh := c.cfg.RuleHeight
	for _, x := range []float64{l.nameX, l.valueX} {
		s.StrokePath([]scene.Point{{X: x, Y: 0}, {X: x, Y: rh}}, 2, colTick)
	}
}

// drawYScroll draws the scrollbar gutter with its up and down arrows. The
// scrollbar does not react to input yet.
func (c *Chart) drawYScroll(s scene.Surface, vp Viewport) {
	rh := c.cfg.RuleHeight
	w, h := vp.Width, vp.Height
	x := w - c.cfg.ScrollWidth
	s.StrokePath([]scene.Point{{X: w, Y: 0}, {X: w, Y: h}, {X: x, Y: h}, {X: x, Y: 0}}, 1, colScrollBox)
	s.FillRect(scene.R(x+1, 1, w-1, rh-1), colScrollBox)
	s.FillRect(scene.R(x+1, h-rh+1, w-1, h-1), colScrollBox)

	aw := w - x
	mid := x + aw/2
	arrow := func(tip, shoulder, tail float64) []scene.Point {
		return []scene.Point{
			{X: mid, Y: tip},
			{X: w - 1, Y: shoulder},
			{X: x + aw*2/3, Y: shoulder},
			{X: x + aw*2/3, Y: tail},
			{X: x + aw/3, Y: tail},
			{X: x + aw/3, Y: shoulder},
			{X: x + 1, Y: shoulder},
			{X: mid, Y: tip},
		}
	}
	s.StrokePath(arrow(1, rh/3, rh-2), 1, colScrollArr)
	s.StrokePath(arrow(h-1, h-rh/3, h-rh+2), 1, colScrollArr)
}

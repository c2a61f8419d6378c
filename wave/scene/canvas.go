package scene

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"image/color"
)

// Canvas adapts a gonum/plot canvas to Surface. Pixel coordinates are mapped
// onto the canvas at the given DPI with the y axis flipped. vg canvases have
// no clip operation, so clipping is done geometrically: polylines are cut with
// draw.Canvas.ClipLinesXY, rectangles are intersected and text whose anchor
// lies outside the clip is dropped.
type Canvas struct {
	dc     draw.Canvas
	width  float64
	height float64
	scale  float64
	clips  []Rect
}

var _ Surface = &Canvas{}

func NewCanvas(c vg.CanvasSizer, dpi float64) *Canvas {
	scale := vg.Inch.Points() / dpi
	w, h := c.Size()
	return &Canvas{
		dc:     draw.New(c),
		width:  float64(w) / scale,
		height: float64(h) / scale,
		scale:  scale,
	}
}

// Size is the canvas size in pixels.
func (c *Canvas) Size() (width, height float64) {
	return c.width, c.height
}

func (c *Canvas) point(p Point) vg.Point {
	return vg.Point{
		X: vg.Length(p.X * c.scale),
		Y: vg.Length((c.height - p.Y) * c.scale),
	}
}

func (c *Canvas) clip() Rect {
	if len(c.clips) == 0 {
		return R(0, 0, c.width, c.height)
	}
	return c.clips[len(c.clips)-1]
}

func (c *Canvas) clipCanvas() draw.Canvas {
	r := c.clip()
	return draw.Canvas{
		Canvas: c.dc.Canvas,
		Rectangle: vg.Rectangle{
			Min: c.point(Point{X: r.Min.X, Y: r.Max.Y}),
			Max: c.point(Point{X: r.Max.X, Y: r.Min.Y}),
		},
	}
}

func (c *Canvas) FillRect(r Rect, clr color.Color) {
	r = r.Intersect(c.clip())
	if r.Empty() {
		return
	}
	c.dc.FillPolygon(clr, []vg.Point{
		c.point(r.Min),
		c.point(Point{X: r.Max.X, Y: r.Min.Y}),
		c.point(r.Max),
		c.point(Point{X: r.Min.X, Y: r.Max.Y}),
	})
}

func (c *Canvas) StrokePath(pts []Point, width float64, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	line := make([]vg.Point, len(pts))
	for i, p := range pts {
		line[i] = c.point(p)
	}
	cc := c.clipCanvas()
	lines := cc.ClipLinesXY(line)
	if len(lines) == 0 {
		return
	}
	cc.StrokeLines(draw.LineStyle{
		Color: clr,
		Width: vg.Length(width * c.scale),
	}, lines...)
}

func (c *Canvas) PushClip(r Rect) {
	c.clips = append(c.clips, r.Intersect(c.clip()))
}

func (c *Canvas) PopClip() {
	if len(c.clips) == 0 {
		panic("PopClip without matching PushClip")
	}
	c.clips = c.clips[:len(c.clips)-1]
}

func (c *Canvas) textStyle(height float64, clr color.Color) draw.TextStyle {
	return text.Style{
		Color:    clr,
		Font:     font.From(plotter.DefaultFont, vg.Length(height*c.scale)),
		Rotation: 0,
		XAlign:   draw.XLeft,
		YAlign:   draw.YBottom,
		Handler:  plot.DefaultTextHandler,
	}
}

func (c *Canvas) Text(s string, height float64, clr color.Color, pos Point) {
	if s == "" || !c.clip().Contains(pos) {
		return
	}
	c.dc.FillText(c.textStyle(height, clr), c.point(pos), s)
}


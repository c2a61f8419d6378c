// Package scene is the drawing boundary used by the chart: a small
// immediate-mode 2-D surface, a recorded command batch, and a backend that
// draws onto gonum/plot canvases.
package scene

import (
	"fmt"
	"image/color"
	"math"
)

// Point is a position in pixels; y grows downward.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

type Rect struct {
	Min, Max Point
}

func R(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: Point{X: x0, Y: y0}, Max: Point{X: x1, Y: y1}}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%.1f,%.1f)-(%.1f,%.1f)", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

func (r Rect) Dx() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		Min: Point{X: math.Max(r.Min.X, s.Min.X), Y: math.Max(r.Min.Y, s.Min.Y)},
		Max: Point{X: math.Min(r.Max.X, s.Max.X), Y: math.Min(r.Max.Y, s.Max.Y)},
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Surface is everything the chart needs from a drawing backend.
type Surface interface {
	FillRect(r Rect, c color.Color)
	// StrokePath draws connected line segments through pts.
	StrokePath(pts []Point, width float64, c color.Color)
	// PushClip restricts drawing to r (intersected with any enclosing clip)
	// until the matching PopClip.
	PushClip(r Rect)
	PopClip()
	// Text draws a run of text whose baseline starts at pos; height is the
	// font size in pixels.
	Text(s string, height float64, c color.Color, pos Point)
}

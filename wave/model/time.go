package model

import (
	"fmt"
	"math"
)

// Time is a point in (or span of) time, measured in the global base unit.
type Time = float64

type TimeRange struct {
	Start Time
	End   Time
}

func MakeRange(start, end Time) TimeRange {
	return TimeRange{Start: start, End: end}
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%s..%s]", FormatTime(r.Start), FormatTime(r.End))
}

func (r TimeRange) Valid() bool {
	return !math.IsNaN(r.Start) && !math.IsNaN(r.End) &&
		!math.IsInf(r.Start, 0) && !math.IsInf(r.End, 0) &&
		r.Start <= r.End
}

func (r TimeRange) Width() Time {
	return r.End - r.Start
}

func (r TimeRange) Mid() Time {
	return r.Start + 0.5*(r.End-r.Start)
}

// Degenerate reports whether the range cannot be used for coordinate mapping.
func (r TimeRange) Degenerate() bool {
	return !(r.End > r.Start)
}

func (r TimeRange) Contains(t Time) bool {
	return t >= r.Start && t <= r.End
}

func (r TimeRange) Clamp(t Time) Time {
	if t < r.Start {
		return r.Start
	} else if t > r.End {
		return r.End
	} else {
		return t
	}
}

// Within reports whether r is a subset of outer.
func (r TimeRange) Within(outer TimeRange) bool {
	return r.Start >= outer.Start && r.End <= outer.End
}

// ClampInto trims both edges of r so that they lie inside outer. The window is
// never widened.
func (r TimeRange) ClampInto(outer TimeRange) TimeRange {
	if r.Start < outer.Start {
		r.Start = outer.Start
	}
	if r.End > outer.End {
		r.End = outer.End
	}
	return r
}

// Centered returns a window of the given width centered on mid.
func Centered(mid Time, width Time) TimeRange {
	return TimeRange{Start: mid - 0.5*width, End: mid + 0.5*width}
}

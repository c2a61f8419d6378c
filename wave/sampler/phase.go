package sampler

import (
	"math"
)

// pulseLaw describes a signal that is "on" during [start+k*repeat,
// start+k*repeat+length) for every k >= 0 and "off" otherwise. Phase
// boundaries are addressed by an integer index j so that stepping through
// them never accumulates floating point drift:
//
//	j odd:  rising boundary at start + ((j+1)/2)*repeat
//	j even: falling boundary at start + (j/2)*repeat + length
//
// j == -1 is the first rising edge at start.
type pulseLaw struct {
	start, length, repeat float64
}

func makePulseLaw(start, end, repeat float64) pulseLaw {
	if !(repeat > 0) || math.IsInf(repeat, 0) {
		panic("pulse repeat must be positive and finite")
	}
	return pulseLaw{
		start:  start,
		length: end - start,
		repeat: repeat,
	}
}

// on reports whether t lies inside an on-phase.
func (p pulseLaw) on(t float64) bool {
	if t < p.start {
		return false
	}
	return positiveMod(t-p.start, p.repeat) < p.length
}

// toggles reports whether the law ever changes level after start.
func (p pulseLaw) toggles() bool {
	return p.length > 0 && p.length < p.repeat
}

func (p pulseLaw) boundary(j int64) float64 {
	if j%2 != 0 {
		return p.start + float64((j+1)/2)*p.repeat
	}
	return p.start + float64(j/2)*p.repeat + p.length
}

func (p pulseLaw) rising(j int64) bool {
	return j%2 != 0
}

// firstBoundary returns the index of the first phase boundary strictly after
// pos.
func (p pulseLaw) firstBoundary(pos float64) int64 {
	if pos < p.start {
		return -1
	}
	// start one cycle early; the division may round up past a boundary
	j := 2*int64(math.Floor((pos-p.start)/p.repeat)) - 2
	if j < -1 {
		j = -1
	}
	for p.boundary(j) <= pos {
		j++
	}
	return j
}

func positiveMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// Package sampler produces time-ordered samples for digital and analog
// signals over an arbitrary time window.
package sampler

import (
	"github.com/celskeggs/waveview/wave/model"
)

const (
	HeightDigital = 16.0
	HeightAnalog  = 64.0

	// MinYScale keeps near-flat analog signals from blowing up the lane mapping.
	MinYScale = 16.0
)

type DigitalSample struct {
	Value bool
	Time  model.Time
}

type AnalogSample struct {
	Value float64
	Time  model.Time
}

// Sampler is the part of the capability set shared by both value types.
type Sampler interface {
	// Height is the vertical footprint of the signal's lane, in pixels.
	Height() float64
	// YScale is the peak-to-peak span used to fit values into the lane.
	YScale() float64
	Label() string
	// SetIterScale lets a sampler size its iteration step so that at most one
	// sample is produced per pixel column of the visible window.
	SetIterScale(rng model.TimeRange, timescale model.TimeScale, pixelWidth float64)
}

// DigitalIter is a pull cursor over one IterRange call. Next returns false
// once the range is exhausted or a read failed; Err reports the failure.
type DigitalIter interface {
	Next() (DigitalSample, bool)
	Err() error
}

type AnalogIter interface {
	Next() (AnalogSample, bool)
	Err() error
}

type DigitalSampler interface {
	Sampler
	ValueAt(t model.Time, scale model.TimeScale) bool
	// IterRange returns a fresh cursor. The first sample is the value holding
	// at rng.Start; later samples are strictly later and never past rng.End.
	IterRange(rng model.TimeRange) DigitalIter
}

type AnalogSampler interface {
	Sampler
	ValueAt(t model.Time, scale model.TimeScale) float64
	IterRange(rng model.TimeRange) AnalogIter
}

// NoIterScale can be embedded by samplers whose iteration does not depend on
// the display resolution.
type NoIterScale struct{}

func (NoIterScale) SetIterScale(model.TimeRange, model.TimeScale, float64) {}

// CollectDigital drains an iterator into a slice.
func CollectDigital(it DigitalIter) ([]DigitalSample, error) {
	var out []DigitalSample
	for {
		s, ok := it.Next()
		if !ok {
			return out, it.Err()
		}
		out = append(out, s)
	}
}

func CollectAnalog(it AnalogIter) ([]AnalogSample, error) {
	var out []AnalogSample
	for {
		s, ok := it.Next()
		if !ok {
			return out, it.Err()
		}
		out = append(out, s)
	}
}

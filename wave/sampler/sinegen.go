package sampler

import (
	"fmt"
	"github.com/celskeggs/waveview/wave/model"
	"math"
)

// DefaultSineSteps is the number of steps used across a range when no
// iteration scale has been set.
const DefaultSineSteps = 256

type SineGen struct {
	sig    int
	height float64
	yoffs  float64
	period model.Time
	scale  model.TimeScale
	// step is the time between emitted samples; zero until SetIterScale
	step model.Time
}

func MakeSine(sig int, height, yoffs float64, period model.Time) *SineGen {
	if !(period > 0) || math.IsInf(period, 0) {
		panic("sine period must be positive and finite")
	}
	return &SineGen{
		sig:    sig,
		height: height,
		yoffs:  yoffs,
		period: period,
		scale:  model.DefaultScale,
	}
}

var _ AnalogSampler = &SineGen{}

func (g *SineGen) String() string {
	return fmt.Sprintf("SineGen{%s period=%v}", g.Label(), g.period)
}

func (g *SineGen) Height() float64 {
	return HeightAnalog
}

func (g *SineGen) YScale() float64 {
	return math.Max(g.height+math.Abs(g.yoffs/2), MinYScale)
}

func (g *SineGen) Label() string {
	return fmt.Sprintf("analog_%d", g.sig)
}

func (g *SineGen) SetIterScale(rng model.TimeRange, timescale model.TimeScale, pixelWidth float64) {
	g.scale = model.TimeScale{
		Time: rng.Width() / pixelWidth,
		Unit: timescale.Unit,
	}
	g.step = g.scale.Time
}

func (g *SineGen) Step() model.Time {
	return g.step
}

func (g *SineGen) ValueAt(t model.Time, _ model.TimeScale) float64 {
	return g.yoffs + g.height*math.Sin(2*math.Pi*t/g.period)
}

func (g *SineGen) IterRange(rng model.TimeRange) AnalogIter {
	step := g.step
	if !(step > 0) || math.IsInf(step, 0) {
		step = rng.Width() / DefaultSineSteps
	}
	return &sineIter{
		gen:  g,
		rng:  rng,
		step: step,
	}
}

// sineIter advances in fixed time steps rather than per value change, since
// an analog signal changes continuously.
type sineIter struct {
	gen  *SineGen
	rng  model.TimeRange
	step model.Time
	n    int64
	done bool
}

func (it *sineIter) Err() error {
	return nil
}

func (it *sineIter) Next() (AnalogSample, bool) {
	if it.done {
		return AnalogSample{}, false
	}
	t := it.rng.Start + float64(it.n)*it.step
	if t > it.rng.End || (it.n > 0 && !(it.step > 0)) {
		it.done = true
		return AnalogSample{}, false
	}
	it.n++
	return AnalogSample{
		Value: it.gen.ValueAt(t, it.gen.scale),
		Time:  t,
	}, true
}

package sampler

import (
	"fmt"
	"github.com/celskeggs/waveview/wave/model"
	"math"
)

// AnaGen is a synthetic analog signal: a constant height or a ramped pulse.
type AnaGen struct {
	sig   int
	gtype genType
	level float64
	off   float64
	on    float64
	pulse pulseLaw
	scale model.TimeScale
}

func MakeFixedAnalog(sig int, level float64) *AnaGen {
	return &AnaGen{
		sig:   sig,
		gtype: genFixed,
		level: level,
		scale: model.DefaultScale,
	}
}

// MakeAnalogPulse ramps from off to on ahead of start, then decays from on to
// off during each on-phase and ramps back up during each off-phase.
func MakeAnalogPulse(sig int, off, on float64, start, end, repeat float64) *AnaGen {
	return &AnaGen{
		sig:   sig,
		gtype: genPulse,
		off:   off,
		on:    on,
		pulse: makePulseLaw(start, end, repeat),
		scale: model.DefaultScale,
	}
}

var _ AnalogSampler = &AnaGen{}

func (g *AnaGen) String() string {
	return fmt.Sprintf("AnaGen{%s %s}", g.gtype, g.Label())
}

func (g *AnaGen) Height() float64 {
	return HeightAnalog
}

func (g *AnaGen) YScale() float64 {
	var height float64
	if g.gtype == genPulse {
		height = math.Abs(g.on - g.off)
	}
	return math.Max(height, MinYScale)
}

func (g *AnaGen) Label() string {
	return fmt.Sprintf("analog_%d", g.sig)
}

func (g *AnaGen) SetIterScale(rng model.TimeRange, timescale model.TimeScale, pixelWidth float64) {
	g.scale = model.TimeScale{
		Time: rng.Width() / pixelWidth,
		Unit: timescale.Unit,
	}
}

// IterScale is the sampling scale last set by SetIterScale.
func (g *AnaGen) IterScale() model.TimeScale {
	return g.scale
}

func (g *AnaGen) ValueAt(t model.Time, _ model.TimeScale) float64 {
	switch g.gtype {
	case genFixed:
		return g.level
	case genPulse:
		return g.pulseValue(t)
	default:
		panic("invalid generator type")
	}
}

func (g *AnaGen) pulseValue(t model.Time) float64 {
	law := g.pulse
	span := g.on - g.off
	if t < law.start {
		if law.start <= 0 {
			return g.off
		}
		delta := 1 - (law.start-t)/law.start
		return g.off + span*delta
	}
	if law.length <= 0 {
		return g.off
	}
	tdelta := positiveMod(t-law.start, law.repeat)
	if tdelta < law.length {
		return g.on - span*(tdelta/law.length)
	}
	offLength := law.repeat - law.length
	delta := (tdelta - law.length) / offLength
	return g.off + span*delta
}

func (g *AnaGen) IterRange(rng model.TimeRange) AnalogIter {
	return &anaGenIter{
		gen: g,
		rng: rng,
	}
}

type anaGenIter struct {
	gen     *AnaGen
	rng     model.TimeRange
	pos     model.Time
	started bool
	done    bool
	edge    int64
}

func (it *anaGenIter) Err() error {
	return nil
}

func (it *anaGenIter) Next() (AnalogSample, bool) {
	if it.done {
		return AnalogSample{}, false
	}
	if !it.started {
		it.started = true
		it.pos = it.rng.Start
		if it.gen.gtype == genPulse {
			it.edge = it.gen.pulse.firstBoundary(it.pos)
		}
		return AnalogSample{
			Value: it.gen.ValueAt(it.pos, it.gen.scale),
			Time:  it.pos,
		}, true
	}
	var s AnalogSample
	var ok bool
	switch it.gen.gtype {
	case genFixed:
		if it.pos < it.rng.End {
			s, ok = AnalogSample{Value: it.gen.level, Time: it.rng.End}, true
		}
	case genPulse:
		s, ok = it.nextPulse()
	}
	if !ok {
		it.done = true
		return AnalogSample{}, false
	}
	it.pos = s.Time
	return s, true
}

// nextPulse emits on/off at phase boundaries and, once the next boundary would
// reach the end of the range, a closing sample at rng.End.
func (it *anaGenIter) nextPulse() (AnalogSample, bool) {
	law := it.gen.pulse
	var next float64
	var rising bool
	if law.toggles() {
		next = law.boundary(it.edge)
		rising = law.rising(it.edge)
	} else if law.length > 0 && it.pos < law.start {
		next, rising = law.start, true
	} else {
		next = math.Inf(1)
	}
	if next < it.rng.End {
		it.edge++
		value := it.gen.off
		if rising {
			value = it.gen.on
		}
		return AnalogSample{Value: value, Time: next}, true
	}
	if it.pos < it.rng.End {
		it.done = true
		return AnalogSample{
			Value: it.gen.ValueAt(it.rng.End, it.gen.scale),
			Time:  it.rng.End,
		}, true
	}
	return AnalogSample{}, false
}

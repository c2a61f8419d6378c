package sampler

import (
	"fmt"
	"github.com/celskeggs/waveview/wave/model"
	"math"
)

type genType uint8

const (
	genFixed genType = iota
	genClock
	genPulse
)

func (g genType) String() string {
	switch g {
	case genFixed:
		return "fixed"
	case genClock:
		return "clock"
	case genPulse:
		return "pulse"
	default:
		return fmt.Sprintf("genType(%d)", uint8(g))
	}
}

// DigiGen is a synthetic digital signal: a constant level, a square clock, or
// a repeating pulse.
type DigiGen struct {
	NoIterScale
	sig    int
	gtype  genType
	value  bool
	period float64
	pulse  pulseLaw
}

func MakeFixedDigital(sig int, value bool) *DigiGen {
	return &DigiGen{
		sig:   sig,
		gtype: genFixed,
		value: value,
	}
}

func MakeClock(sig int, period float64) *DigiGen {
	if !(period > 0) || math.IsInf(period, 0) {
		panic("clock period must be positive and finite")
	}
	return &DigiGen{
		sig:    sig,
		gtype:  genClock,
		period: period,
	}
}

// MakePulse builds a signal that is high during [start, end) and again every
// repeat after start.
func MakePulse(sig int, start, end, repeat float64) *DigiGen {
	return &DigiGen{
		sig:   sig,
		gtype: genPulse,
		pulse: makePulseLaw(start, end, repeat),
	}
}

var _ DigitalSampler = &DigiGen{}

func (g *DigiGen) String() string {
	return fmt.Sprintf("DigiGen{%s %s}", g.gtype, g.Label())
}

func (g *DigiGen) Height() float64 {
	return HeightDigital
}

func (g *DigiGen) YScale() float64 {
	return 1
}

func (g *DigiGen) Label() string {
	return fmt.Sprintf("signal_%d", g.sig)
}

func (g *DigiGen) ValueAt(t model.Time, _ model.TimeScale) bool {
	switch g.gtype {
	case genFixed:
		return g.value
	case genClock:
		return positiveMod(t, g.period) < g.period/2
	case genPulse:
		return g.pulse.on(t)
	default:
		panic("invalid generator type")
	}
}

func (g *DigiGen) IterRange(rng model.TimeRange) DigitalIter {
	return &digiGenIter{
		gen: g,
		rng: rng,
	}
}

type digiGenIter struct {
	gen     *DigiGen
	rng     model.TimeRange
	pos     model.Time
	started bool
	done    bool
	// edge is the index of the next clock half-period or pulse phase boundary
	edge int64
}

func (it *digiGenIter) Err() error {
	return nil
}

func (it *digiGenIter) Next() (DigitalSample, bool) {
	if it.done {
		return DigitalSample{}, false
	}
	if !it.started {
		it.started = true
		it.pos = it.rng.Start
		it.seek()
		return DigitalSample{
			Value: it.startValue(),
			Time:  it.pos,
		}, true
	}
	var s DigitalSample
	var ok bool
	switch it.gen.gtype {
	case genFixed:
		s, ok = it.nextFixed()
	case genClock:
		s, ok = it.nextClock()
	case genPulse:
		s, ok = it.nextPulse()
	}
	if !ok {
		it.done = true
		return DigitalSample{}, false
	}
	it.pos = s.Time
	return s, true
}

// seek positions the edge index on the first boundary strictly after pos.
func (it *digiGenIter) seek() {
	switch it.gen.gtype {
	case genClock:
		half := it.gen.period / 2
		// pos/half may round up onto the next edge
		it.edge = int64(math.Floor(it.pos/half)) - 1
		for float64(it.edge)*half <= it.pos {
			it.edge++
		}
	case genPulse:
		it.edge = it.gen.pulse.firstBoundary(it.pos)
	}
}

// startValue is the level just before the edge found by seek, so the first
// sample always disagrees with the first edge emitted after it.
func (it *digiGenIter) startValue() bool {
	switch {
	case it.gen.gtype == genClock:
		return it.edge%2 != 0
	case it.gen.gtype == genPulse && it.gen.pulse.toggles():
		return !it.gen.pulse.rising(it.edge)
	default:
		return it.gen.ValueAt(it.pos, model.DefaultScale)
	}
}

func (it *digiGenIter) nextFixed() (DigitalSample, bool) {
	if it.pos < it.rng.End {
		return DigitalSample{Value: it.gen.value, Time: it.rng.End}, true
	}
	return DigitalSample{}, false
}

// nextClock walks forward in half-period steps; rising edges fall on
// multiples of the full period.
func (it *digiGenIter) nextClock() (DigitalSample, bool) {
	next := float64(it.edge) * (it.gen.period / 2)
	if next > it.rng.End {
		return DigitalSample{}, false
	}
	s := DigitalSample{
		Value: it.edge%2 == 0,
		Time:  next,
	}
	it.edge++
	return s, true
}

// nextPulse emits the next phase boundary. Unlike the analog pulse it emits
// no closing sample at the end of the range.
func (it *digiGenIter) nextPulse() (DigitalSample, bool) {
	law := it.gen.pulse
	if !law.toggles() {
		// permanently on (or off) after start: at most the initial rise
		if law.length > 0 && it.pos < law.start && law.start < it.rng.End {
			return DigitalSample{Value: true, Time: law.start}, true
		}
		return DigitalSample{}, false
	}
	next := law.boundary(it.edge)
	if next >= it.rng.End {
		return DigitalSample{}, false
	}
	s := DigitalSample{
		Value: law.rising(it.edge),
		Time:  next,
	}
	it.edge++
	return s, true
}

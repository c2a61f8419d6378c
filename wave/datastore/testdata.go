package datastore

import (
	"github.com/celskeggs/waveview/wave/model"
	"github.com/celskeggs/waveview/wave/sampler"
)

const (
	TestSignals = 64
	TestEnd     = 100000000.0
)

// NewTest builds a store of synthetic signals: a clock, a pair of pulse
// trains, a sine, a ramped analog pulse and assorted fixed levels.
func NewTest() *Store {
	s := NewStore(model.MakeRange(0, TestEnd))
	aidx := 0
	for sig := 0; sig < TestSignals; sig++ {
		if sig < 12 && (sig == 1 || sig == 5) {
			s.AddAnalog(testAnalog(aidx, sig))
			aidx++
		} else {
			s.AddDigital(testDigital(sig))
		}
	}
	return s
}

func testDigital(sig int) sampler.DigitalSampler {
	switch sig % 12 {
	case 0:
		if sig < 12 {
			return sampler.MakeClock(sig, 1000000)
		}
		return sampler.MakeFixedDigital(sig, false)
	case 1, 5, 6, 7:
		return sampler.MakeFixedDigital(sig, true)
	case 3:
		return sampler.MakePulse(sig, 57000000, 58000000, 8000000)
	case 9:
		return sampler.MakePulse(sig, 10000000, 99000000, 8000000)
	default:
		return sampler.MakeFixedDigital(sig, false)
	}
}

func testAnalog(aidx int, sig int) sampler.AnalogSampler {
	switch aidx {
	case 0:
		return sampler.MakeSine(sig, 15, 0, 500000)
	case 1:
		return sampler.MakeAnalogPulse(sig, 0, 10, 57000000, 58000000, 8000000)
	default:
		return sampler.MakeFixedAnalog(sig, 0.5)
	}
}

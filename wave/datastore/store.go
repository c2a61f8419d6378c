// Package datastore owns the ordered list of signals and the samplers that
// produce their data.
package datastore

import (
	"fmt"
	"github.com/celskeggs/waveview/wave/model"
	"github.com/celskeggs/waveview/wave/sampler"
)

type SigType uint8

const (
	Digital SigType = iota
	Analog
)

func (st SigType) String() string {
	switch st {
	case Digital:
		return "Digital"
	case Analog:
		return "Analog"
	default:
		return fmt.Sprintf("SigType(%d)", uint8(st))
	}
}

// Signal refers to a sampler by its index within the arena for its type.
type Signal struct {
	Type  SigType
	Index int
}

type digitalSlot struct {
	smpl     sampler.DigitalSampler
	borrowed bool
}

type analogSlot struct {
	smpl     sampler.AnalogSampler
	borrowed bool
}

// Store is the sole owner of its samplers. Callers borrow a sampler for the
// duration of one operation and must release it before borrowing it again.
type Store struct {
	signals []Signal
	digital []digitalSlot
	analog  []analogSlot
	rng     model.TimeRange
}

func NewStore(rng model.TimeRange) *Store {
	if !rng.Valid() {
		panic("invalid store time range")
	}
	return &Store{rng: rng}
}

// AddDigital appends a signal backed by smpl and returns its signal index.
func (s *Store) AddDigital(smpl sampler.DigitalSampler) int {
	s.digital = append(s.digital, digitalSlot{smpl: smpl})
	s.signals = append(s.signals, Signal{Type: Digital, Index: len(s.digital) - 1})
	return len(s.signals) - 1
}

func (s *Store) AddAnalog(smpl sampler.AnalogSampler) int {
	s.analog = append(s.analog, analogSlot{smpl: smpl})
	s.signals = append(s.signals, Signal{Type: Analog, Index: len(s.analog) - 1})
	return len(s.signals) - 1
}

// AddDigitalShared appends a signal that reuses an existing digital sampler.
func (s *Store) AddDigitalShared(index int) int {
	s.checkDigital(index)
	s.signals = append(s.signals, Signal{Type: Digital, Index: index})
	return len(s.signals) - 1
}

func (s *Store) NumSignals() int {
	return len(s.signals)
}

func (s *Store) NumDigital() int {
	return len(s.digital)
}

func (s *Store) NumAnalog() int {
	return len(s.analog)
}

func (s *Store) TimeRange() model.TimeRange {
	return s.rng
}

func (s *Store) SignalTypeIndex(sig int) (SigType, int) {
	if sig < 0 || sig >= len(s.signals) {
		panic(fmt.Sprintf("signal index %d out of range [0, %d)", sig, len(s.signals)))
	}
	st := s.signals[sig]
	return st.Type, st.Index
}

// SignalHeight is the lane height of the given signal.
func (s *Store) SignalHeight(sig int) float64 {
	st, idx := s.SignalTypeIndex(sig)
	if st == Digital {
		return s.digital[idx].smpl.Height()
	}
	return s.analog[idx].smpl.Height()
}

// SignalYPos is the offset of the signal's lane from the top of the first lane.
func (s *Store) SignalYPos(sig int) float64 {
	s.SignalTypeIndex(sig)
	var acc float64
	for n := 0; n < sig; n++ {
		acc += s.SignalHeight(n)
	}
	return acc
}

// TotalHeight is the combined height of all lanes.
func (s *Store) TotalHeight() float64 {
	var acc float64
	for n := range s.signals {
		acc += s.SignalHeight(n)
	}
	return acc
}

func (s *Store) checkDigital(index int) {
	if index < 0 || index >= len(s.digital) {
		panic(fmt.Sprintf("digital sampler index %d out of range [0, %d)", index, len(s.digital)))
	}
}

func (s *Store) checkAnalog(index int) {
	if index < 0 || index >= len(s.analog) {
		panic(fmt.Sprintf("analog sampler index %d out of range [0, %d)", index, len(s.analog)))
	}
}

// Digital returns the sampler for read-only queries; it does not take a borrow.
func (s *Store) Digital(index int) sampler.DigitalSampler {
	s.checkDigital(index)
	return s.digital[index].smpl
}

func (s *Store) Analog(index int) sampler.AnalogSampler {
	s.checkAnalog(index)
	return s.analog[index].smpl
}

// BorrowDigital hands out exclusive access to a digital sampler until release
// is called. Borrowing a sampler that is already out is a programming error.
func (s *Store) BorrowDigital(index int) (smpl sampler.DigitalSampler, release func()) {
	s.checkDigital(index)
	if s.digital[index].borrowed {
		panic(fmt.Sprintf("digital sampler %d already borrowed", index))
	}
	s.digital[index].borrowed = true
	return s.digital[index].smpl, func() {
		if !s.digital[index].borrowed {
			panic("digital sampler released twice")
		}
		s.digital[index].borrowed = false
	}
}

func (s *Store) BorrowAnalog(index int) (smpl sampler.AnalogSampler, release func()) {
	s.checkAnalog(index)
	if s.analog[index].borrowed {
		panic(fmt.Sprintf("analog sampler %d already borrowed", index))
	}
	s.analog[index].borrowed = true
	return s.analog[index].smpl, func() {
		if !s.analog[index].borrowed {
			panic("analog sampler released twice")
		}
		s.analog[index].borrowed = false
	}
}

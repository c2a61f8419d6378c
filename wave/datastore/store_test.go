package datastore

import (
	"errors"
	"github.com/celskeggs/waveview/wave/model"
	"github.com/celskeggs/waveview/wave/sampler"
	"github.com/celskeggs/waveview/wave/wavefmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewTestLayout(t *testing.T) {
	s := NewTest()
	require.Equal(t, TestSignals, s.NumSignals())
	assert.Equal(t, model.MakeRange(0, TestEnd), s.TimeRange())
	assert.Equal(t, 2, s.NumAnalog())
	assert.Equal(t, TestSignals-2, s.NumDigital())

	st, idx := s.SignalTypeIndex(0)
	assert.Equal(t, Digital, st)
	assert.Equal(t, 0, idx)
	st, idx = s.SignalTypeIndex(1)
	assert.Equal(t, Analog, st)
	assert.Equal(t, 0, idx)
	st, idx = s.SignalTypeIndex(5)
	assert.Equal(t, Analog, st)
	assert.Equal(t, 1, idx)
	st, idx = s.SignalTypeIndex(12)
	assert.Equal(t, Digital, st)
	assert.Equal(t, 10, idx)
	st, idx = s.SignalTypeIndex(63)
	assert.Equal(t, Digital, st)
	assert.Equal(t, 61, idx)

	// stable across calls
	st2, idx2 := s.SignalTypeIndex(63)
	assert.Equal(t, st, st2)
	assert.Equal(t, idx, idx2)

	assert.Equal(t, "signal_0", s.Digital(0).Label())
	assert.Equal(t, "analog_1", s.Analog(0).Label())
	assert.Equal(t, "analog_5", s.Analog(1).Label())
}

func TestSignalYPos(t *testing.T) {
	s := NewTest()
	assert.Equal(t, 0.0, s.SignalYPos(0))
	assert.Equal(t, sampler.HeightDigital, s.SignalYPos(1))
	assert.Equal(t, sampler.HeightDigital+sampler.HeightAnalog, s.SignalYPos(2))
	assert.Equal(t, 4*sampler.HeightDigital+2*sampler.HeightAnalog, s.SignalYPos(6))
	assert.Equal(t, 62*sampler.HeightDigital+2*sampler.HeightAnalog, s.TotalHeight())
}

func TestOutOfBounds(t *testing.T) {
	s := NewTest()
	assert.Panics(t, func() { s.SignalTypeIndex(TestSignals) })
	assert.Panics(t, func() { s.SignalTypeIndex(-1) })
	assert.Panics(t, func() { s.Digital(TestSignals) })
	assert.Panics(t, func() { s.Analog(2) })
	assert.Panics(t, func() { s.BorrowAnalog(5) })
}

func TestBorrowDiscipline(t *testing.T) {
	s := NewTest()
	smpl, release := s.BorrowAnalog(0)
	require.NotNil(t, smpl)
	assert.Panics(t, func() { s.BorrowAnalog(0) })

	// other slots remain available
	other, releaseOther := s.BorrowAnalog(1)
	assert.NotNil(t, other)
	releaseOther()

	release()
	assert.Panics(t, release)
	again, releaseAgain := s.BorrowAnalog(0)
	assert.Equal(t, smpl, again)
	releaseAgain()

	d, releaseD := s.BorrowDigital(2)
	assert.Equal(t, "signal_3", d.Label())
	assert.Panics(t, func() { s.BorrowDigital(2) })
	releaseD()
}

func TestSharedSampler(t *testing.T) {
	s := NewStore(model.MakeRange(0, 10))
	first := s.AddDigital(sampler.MakeClock(0, 2))
	second := s.AddDigitalShared(0)
	assert.Equal(t, 2, s.NumSignals())
	assert.Equal(t, 1, s.NumDigital())
	_, i1 := s.SignalTypeIndex(first)
	_, i2 := s.SignalTypeIndex(second)
	assert.Equal(t, i1, i2)
	assert.Panics(t, func() { s.AddDigitalShared(1) })
}

func TestNewStoreInvalidRange(t *testing.T) {
	assert.Panics(t, func() { NewStore(model.MakeRange(5, 1)) })
}

func TestLoadUnsupportedKeepsStore(t *testing.T) {
	s := NewTest()
	err := s.Load("capture.fst")
	require.Error(t, err)
	assert.True(t, errors.Is(err, wavefmt.ErrUnsupported))
	assert.Equal(t, TestSignals, s.NumSignals())
	assert.Equal(t, model.MakeRange(0, TestEnd), s.TimeRange())
}

type fakeWave struct {
	ok     bool
	fields []wavefmt.FieldInfo
	rng    model.TimeRange
}

func (f *fakeWave) CheckFormat() (bool, error)                   { return f.ok, nil }
func (f *fakeWave) RecordSize() (int, bool)                      { return 0, false }
func (f *fakeWave) Range() model.TimeRange                       { return f.rng }
func (f *fakeWave) NumFields() int                               { return len(f.fields) }
func (f *fakeWave) FieldInfo(field int) wavefmt.FieldInfo        { return f.fields[field] }
func (f *fakeWave) NumRows() (int, bool)                         { return 0, false }
func (f *fakeWave) PrepareRange(model.TimeRange) ([2]int, error) { return [2]int{}, nil }

func (f *fakeWave) ReadNext([]byte, int) (bool, model.Time, error) {
	return false, 0, wavefmt.MalformedError(0, "empty")
}

func TestFromWaveFile(t *testing.T) {
	wf := &fakeWave{
		ok: true,
		fields: []wavefmt.FieldInfo{
			{Name: "time", Type: wavefmt.FieldTimestamp},
			{Name: "clk", Type: wavefmt.FieldDigital},
			{Name: "addr", Type: wavefmt.FieldDigiBus, Width: 16},
			{Name: "vdd", Type: wavefmt.FieldAnalog},
			{Name: "en", Type: wavefmt.FieldDigital},
		},
		rng: model.MakeRange(0, 500),
	}
	s, err := FromWaveFile(wf)
	require.NoError(t, err)
	assert.Equal(t, 2, s.NumSignals())
	assert.Equal(t, "clk", s.Digital(0).Label())
	assert.Equal(t, "en", s.Digital(1).Label())
	assert.Equal(t, model.MakeRange(0, 500), s.TimeRange())

	_, err = sampler.CollectDigital(s.Digital(0).IterRange(model.MakeRange(0, 10)))
	assert.True(t, errors.Is(err, wavefmt.ErrMalformed))
}

func TestFromWaveFileRejects(t *testing.T) {
	_, err := FromWaveFile(&fakeWave{ok: false, rng: model.MakeRange(0, 1)})
	assert.True(t, errors.Is(err, wavefmt.ErrUnsupported))

	_, err = FromWaveFile(&fakeWave{ok: true, rng: model.MakeRange(3, 1)})
	assert.True(t, errors.Is(err, wavefmt.ErrMalformed))
}

package sampler

import (
	"errors"
	"github.com/celskeggs/waveview/wave/model"
	"github.com/celskeggs/waveview/wave/wavefmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

type memRecord struct {
	time   model.Time
	values []bool
	bad    bool
}

// memWave is an in-memory wavefmt.DigitalReader: one timestamp column plus
// one or more digital fields per record.
type memWave struct {
	fields  []wavefmt.FieldInfo
	records []memRecord
	next    int
	prepErr error
	bufLens []int
}

var _ wavefmt.DigitalReader = &memWave{}

func (m *memWave) CheckFormat() (bool, error) { return true, nil }
func (m *memWave) RecordSize() (int, bool)    { return 8 + len(m.fields), true }
func (m *memWave) NumFields() int             { return len(m.fields) }
func (m *memWave) NumRows() (int, bool)       { return len(m.records), true }

func (m *memWave) FieldInfo(field int) wavefmt.FieldInfo {
	return m.fields[field]
}

func (m *memWave) Range() model.TimeRange {
	return model.MakeRange(m.records[0].time, m.records[len(m.records)-1].time)
}

func (m *memWave) PrepareRange(rng model.TimeRange) ([2]int, error) {
	if m.prepErr != nil {
		return [2]int{}, m.prepErr
	}
	m.next = 0
	for m.next+1 < len(m.records) && m.records[m.next+1].time <= rng.Start {
		m.next++
	}
	end := m.next
	for end+1 < len(m.records) && m.records[end+1].time <= rng.End {
		end++
	}
	return [2]int{m.next, end}, nil
}

func (m *memWave) ReadNext(buf []byte, field int) (bool, model.Time, error) {
	m.bufLens = append(m.bufLens, len(buf))
	if m.next >= len(m.records) {
		return false, 0, io.EOF
	}
	rec := m.records[m.next]
	if rec.bad {
		return false, 0, wavefmt.MalformedError(m.next, "bad checksum")
	}
	m.next++
	return rec.values[field], rec.time, nil
}

func makeMemWave() *memWave {
	return &memWave{
		fields: []wavefmt.FieldInfo{
			{Name: "clk", Type: wavefmt.FieldDigital},
			{Name: "rst_n", Type: wavefmt.FieldDigital},
		},
		records: []memRecord{
			{time: 0, values: []bool{false, false}},
			{time: 10, values: []bool{true, false}},
			{time: 20, values: []bool{false, true}},
			{time: 30, values: []bool{true, true}},
			{time: 40, values: []bool{false, true}},
		},
	}
}

func TestDigiFileIterRange(t *testing.T) {
	wave := makeMemWave()
	d := MakeDigiFile(wave, 0)
	assert.Equal(t, "clk", d.Label())
	assert.Equal(t, HeightDigital, d.Height())

	samples, err := CollectDigital(d.IterRange(model.MakeRange(15, 35)))
	require.NoError(t, err)
	assert.Equal(t, []DigitalSample{
		{Value: true, Time: 15},
		{Value: false, Time: 20},
		{Value: true, Time: 30},
	}, samples)
	for _, n := range wave.bufLens {
		assert.Equal(t, 10, n)
	}

	// restartable: a second pass seeks again
	again, err := CollectDigital(d.IterRange(model.MakeRange(15, 35)))
	require.NoError(t, err)
	assert.Equal(t, samples, again)
}

func TestDigiFileRunsOutOfRecords(t *testing.T) {
	d := MakeDigiFile(makeMemWave(), 1)
	samples, err := CollectDigital(d.IterRange(model.MakeRange(25, 100)))
	require.NoError(t, err)
	assert.Equal(t, []DigitalSample{
		{Value: true, Time: 25},
		{Value: true, Time: 30},
		{Value: true, Time: 40},
	}, samples)
}

func TestDigiFileMalformedRecord(t *testing.T) {
	wave := makeMemWave()
	wave.records[3].bad = true
	d := MakeDigiFile(wave, 0)
	samples, err := CollectDigital(d.IterRange(model.MakeRange(0, 40)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, wavefmt.ErrMalformed))
	assert.Len(t, samples, 3)
}

func TestDigiFilePrepareFails(t *testing.T) {
	wave := makeMemWave()
	wave.prepErr = wavefmt.ErrUnsupported
	it := MakeDigiFile(wave, 0).IterRange(model.MakeRange(0, 40))
	_, ok := it.Next()
	assert.False(t, ok)
	assert.Equal(t, wavefmt.ErrUnsupported, it.Err())
}

func TestDigiFileBadField(t *testing.T) {
	assert.Panics(t, func() { MakeDigiFile(makeMemWave(), 2) })
}
